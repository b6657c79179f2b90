// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Transform: Pure single-input text operation
//   - Merge: Combines several entities into one using randomness
//   - RandomSource: The seeded random stream shared by a run
//   - CorpusReader: Loads a class directory as entities
//   - CorpusWriter: Writes output trees and manifests
//   - ConfigStore: Run configuration
//   - CorpusWatcher: Reports input changes in watch mode
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunRecorder: Persists a record of a completed run.
//   - RunHistory: Keeps every completed run for later listing.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, transform, or merge package
package driven
