// Package transforms provides implementations of the Transform interface.
// Each transform is a pure text-to-text operation applied to a single
// pipeline input slot, or after the merge stage.
//
// Transforms are wired into a pipeline in code before a run starts.
package transforms
