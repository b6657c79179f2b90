// Package file provides file-based implementations of driven port interfaces.
// These adapters read and write TOML files on the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based run configuration
//   - RecordStore: TOML record of a completed run
package file
