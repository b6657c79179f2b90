// Package domain defines the core entities for the trigger corpus generator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TextEntity: A unit of text flowing through the pipeline
//   - Split, Class, Label: The corpus layout and its binary labels
//   - ManifestRow: One filename/label line of a clean manifest
//   - Example: A loaded entity with its filename and label
//   - RunParams, RunSummary: Inputs and outputs of one generation run
//   - CorpusChange: A change to an input file, reported in watch mode
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
