// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndio reads and writes the native .nda container format for named
// arrays.
//
// A .nda file holds any number of named arrays with a msgpack header and a
// SHA-256 checksum over the data section, so corruption is detected on
// load. All six element types round-trip, including scalars and zero
// extents, and custom string metadata is preserved.
//
// Example usage:
//
//	// Save arrays
//	arrays := map[string]*array.RawArray{"weights": raw}
//	if err := ndio.Save("weights.nda", arrays); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load them back
//	loaded, err := ndio.Load("weights.nda")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// WriteTo and ReadFrom provide the same container over arbitrary streams.
// A JSON bridge (FromJSON, ToJSON) converts between nested JSON arrays and
// RawArrays for interchange with text tooling.
package ndio

import (
	"io"

	"github.com/nda-dev/nda/array"
	"github.com/nda-dev/nda/internal/ndio"
)

// Format constants.
const (
	// MagicBytes identify a .nda file.
	MagicBytes = ndio.MagicBytes
	// FormatVersion is the current container version.
	FormatVersion = ndio.FormatVersion
)

// ValidationLevel controls the strictness of header validation on read.
type ValidationLevel = ndio.ValidationLevel

// Validation levels.
const (
	// ValidationStrict performs all validation checks (default).
	ValidationStrict ValidationLevel = ndio.ValidationStrict
	// ValidationNormal performs basic validation checks only.
	ValidationNormal ValidationLevel = ndio.ValidationNormal
	// ValidationNone skips validation. Use only with trusted input.
	ValidationNone ValidationLevel = ndio.ValidationNone
)

// Common errors, matchable with errors.Is.
var (
	ErrChecksumMismatch   = ndio.ErrChecksumMismatch
	ErrOffsetOverlap      = ndio.ErrOffsetOverlap
	ErrOutOfBounds        = ndio.ErrOutOfBounds
	ErrNegativeOffset     = ndio.ErrNegativeOffset
	ErrTooManyArrays      = ndio.ErrTooManyArrays
	ErrArrayNameTooLong   = ndio.ErrArrayNameTooLong
	ErrInvalidArrayName   = ndio.ErrInvalidArrayName
	ErrMetadataTooLarge   = ndio.ErrMetadataTooLarge
	ErrHeaderTooLarge     = ndio.ErrHeaderTooLarge
	ErrInvalidMagic       = ndio.ErrInvalidMagic
	ErrUnsupportedVersion = ndio.ErrUnsupportedVersion
	ErrCompressedPayload  = ndio.ErrCompressedPayload
	ErrRaggedJSON         = ndio.ErrRaggedJSON
)

// Header is the decoded header of a .nda file.
type Header = ndio.Header

// ArrayMeta describes one array in a .nda file.
type ArrayMeta = ndio.ArrayMeta

// ValidationError provides detailed information about validation failures.
// Its Unwrap returns the category sentinel (ErrOffsetOverlap, ...), so
// errors.Is works against the vars above.
type ValidationError = ndio.ValidationError

// Writer writes named arrays to a .nda file.
type Writer = ndio.Writer

// Reader reads named arrays from a .nda file. It gives access to header
// metadata and loads arrays individually or all at once.
type Reader = ndio.Reader

// ReaderOptions configures reading behavior.
type ReaderOptions = ndio.ReaderOptions

// Save writes arrays to a .nda file at path.
//
// Example:
//
//	arrays := map[string]*array.RawArray{
//	    "weights": weights.Raw(),
//	    "bias":    bias.Raw(),
//	}
//	err := ndio.Save("model.nda", arrays)
func Save(path string, arrays map[string]*array.RawArray) error {
	return ndio.Save(path, arrays)
}

// Load reads all arrays from a .nda file at path.
//
// Example:
//
//	arrays, err := ndio.Load("model.nda")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	weights := arrays["weights"]
func Load(path string) (map[string]*array.RawArray, error) {
	return ndio.Load(path)
}

// NewWriter creates a Writer for the .nda file at path. Use it instead of
// Save to attach custom metadata.
func NewWriter(path string) (*Writer, error) {
	return ndio.NewWriter(path)
}

// NewReader opens a .nda file with strict validation and checksum checking.
// Use it instead of Load to inspect the header or load arrays selectively.
func NewReader(path string) (*Reader, error) {
	return ndio.NewReader(path)
}

// NewReaderWithOptions opens a .nda file with the given options.
func NewReaderWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	return ndio.NewReaderWithOptions(path, opts)
}

// WriteTo writes arrays and metadata as a .nda container to an arbitrary
// stream.
func WriteTo(out io.Writer, arrays map[string]*array.RawArray, metadata map[string]string) error {
	return ndio.WriteTo(out, arrays, metadata)
}

// ReadFrom reads a .nda container from an arbitrary stream, returning the
// arrays and the decoded header.
func ReadFrom(in io.Reader) (map[string]*array.RawArray, Header, error) {
	return ndio.ReadFrom(in)
}

// FromJSON parses a nested JSON array into a RawArray. Integers parse as
// int64, any fractional or scientific value promotes the whole array to
// float64, and booleans parse as bool. Ragged nesting is rejected with
// ErrRaggedJSON.
//
// Example:
//
//	raw, err := ndio.FromJSON([]byte("[[1, 2], [3, 4]]"))
//	// raw.Shape() = [2 2], raw.DType() = Int64
func FromJSON(data []byte) (*array.RawArray, error) {
	return ndio.FromJSON(data)
}

// ToJSON renders a RawArray as a nested JSON array.
func ToJSON(raw *array.RawArray) ([]byte, error) {
	return ndio.ToJSON(raw)
}
