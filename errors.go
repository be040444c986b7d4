package glyphspeak

import "errors"

// Common errors used throughout the glyphspeak package
var (
	// ErrRosettaValidation is returned when a rosetta table fails validation.
	ErrRosettaValidation = errors.New("rosetta table validation failed")
	// ErrRosettaNotFound indicates the rosetta table file does not exist.
	ErrRosettaNotFound = errors.New("rosetta table file not found")
	// ErrEmptyRosetta indicates the rosetta table document has no entries.
	ErrEmptyRosetta = errors.New("rosetta table has no symbol entries")
)
