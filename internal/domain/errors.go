package domain

import "errors"

// Domain errors represent error conditions in the seqsift domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidTask is returned when task validation fails.
	ErrInvalidTask = errors.New("seqsift: invalid task")

	// ErrManifestNotFound is returned when no manifest exists for a run.
	ErrManifestNotFound = errors.New("seqsift: manifest not found")
)
