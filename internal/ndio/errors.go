package ndio

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrOffsetOverlap      = errors.New("array offsets overlap")
	ErrOutOfBounds        = errors.New("array extends beyond data section")
	ErrNegativeOffset     = errors.New("negative offset or size")
	ErrTooManyArrays      = errors.New("too many arrays in file")
	ErrArrayNameTooLong   = errors.New("array name too long")
	ErrInvalidArrayName   = errors.New("invalid array name")
	ErrMetadataTooLarge   = errors.New("metadata too large")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrCompressedPayload  = errors.New("compressed payloads not supported")
	ErrRaggedJSON         = errors.New("ragged json array")
)

// ValidationError provides detailed information about validation failures.
// Err carries the category sentinel so callers can match with errors.Is.
type ValidationError struct {
	Err     error  // Category (ErrOffsetOverlap, ErrOutOfBounds, ...)
	Array   string // Primary array name involved
	Array2  string // Secondary array name (for overlap errors)
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Array2 != "" {
		return fmt.Sprintf("%s: arrays %q and %q: %s", e.Err, e.Array, e.Array2, e.Details)
	}
	if e.Array != "" {
		return fmt.Sprintf("%s: array %q: %s", e.Err, e.Array, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

// Unwrap returns the category sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
