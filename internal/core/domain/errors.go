package domain

import "errors"

// Domain errors represent generation failures.
// Every one of them is fatal for the run; there is no retry category.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputNotFound indicates a missing or unreadable corpus directory or file.
	ErrInputNotFound = errors.New("input not found")

	// ErrConfiguration indicates a pipeline whose shape does not match its inputs,
	// e.g. a slot count mismatch or a merge with too few entities.
	ErrConfiguration = errors.New("configuration error")

	// ErrIOFailure indicates an output directory or file could not be written.
	ErrIOFailure = errors.New("io failure")

	// ErrRunNotFound indicates a run ID that is not in the run history.
	ErrRunNotFound = errors.New("run not found")
)
