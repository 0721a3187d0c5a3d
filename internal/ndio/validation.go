package ndio

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize   = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxArrayCount   = 100_000           // Maximum number of arrays in a file
	MaxArrayNameLen = 4096              // Maximum array name length
	MaxMetadataSize = 10 * 1024 * 1024  // 10MB - maximum total metadata size
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal performs basic validation checks only.
	ValidationNormal
	// ValidationNone skips validation. Use only with trusted input.
	ValidationNone
)

// ValidateArrayOffsets checks for overlapping array regions and out-of-bounds
// access. A malformed file must not be able to alias one array's bytes into
// another or read past the data section.
func ValidateArrayOffsets(arrays []ArrayMeta, dataSize int64) error {
	if len(arrays) > MaxArrayCount {
		return &ValidationError{
			Err:     ErrTooManyArrays,
			Details: fmt.Sprintf("got %d, max %d", len(arrays), MaxArrayCount),
		}
	}

	// Sort by offset for pairwise overlap detection.
	sorted := make([]ArrayMeta, len(arrays))
	copy(sorted, arrays)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, a := range sorted {
		// Negative values would defeat the bounds checks below.
		if a.Offset < 0 || a.Size < 0 {
			return &ValidationError{
				Err:     ErrNegativeOffset,
				Array:   a.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", a.Offset, a.Size),
			}
		}

		if a.Offset+a.Size > dataSize {
			return &ValidationError{
				Err:     ErrOutOfBounds,
				Array:   a.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", a.Offset, a.Size, dataSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if a.Offset+a.Size > next.Offset {
				return &ValidationError{
					Err:    ErrOffsetOverlap,
					Array:  a.Name,
					Array2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						a.Offset, a.Offset+a.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}

	return nil
}

// ValidateArrayName checks array names for path traversal patterns. Names end
// up in log lines and derived file names, so they must stay inert.
func ValidateArrayName(name string) error {
	if len(name) > MaxArrayNameLen {
		return &ValidationError{
			Err:     ErrArrayNameTooLong,
			Array:   name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxArrayNameLen),
		}
	}

	if strings.Contains(name, "..") {
		return &ValidationError{
			Err:     ErrInvalidArrayName,
			Array:   name,
			Details: "contains '..' (path traversal attempt)",
		}
	}

	if strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return &ValidationError{
			Err:     ErrInvalidArrayName,
			Array:   name,
			Details: "contains path separator (/ or \\)",
		}
	}

	if strings.Contains(name, "\x00") {
		return &ValidationError{
			Err:     ErrInvalidArrayName,
			Array:   name,
			Details: "contains null byte",
		}
	}

	return nil
}

// ValidateHeader performs comprehensive header validation.
func ValidateHeader(h *Header, dataSize int64, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if len(h.Arrays) > MaxArrayCount {
		return &ValidationError{
			Err:     ErrTooManyArrays,
			Details: fmt.Sprintf("got %d, max %d", len(h.Arrays), MaxArrayCount),
		}
	}

	for _, a := range h.Arrays {
		if err := ValidateArrayName(a.Name); err != nil {
			return err
		}
	}

	metaSize := 0
	for k, v := range h.Metadata {
		metaSize += len(k) + len(v)
	}
	if metaSize > MaxMetadataSize {
		return &ValidationError{
			Err:     ErrMetadataTooLarge,
			Details: fmt.Sprintf("got %d bytes, max %d", metaSize, MaxMetadataSize),
		}
	}

	// Offset validation walks every pair, so strict mode only.
	if level == ValidationStrict {
		if err := ValidateArrayOffsets(h.Arrays, dataSize); err != nil {
			return err
		}
	}

	return nil
}
