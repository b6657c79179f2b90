// Package merges provides implementations of the Merge interface.
// A merge is the only pipeline stage that consumes randomness.
package merges
