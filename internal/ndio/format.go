package ndio

import (
	"time"

	"github.com/nda-dev/nda/internal/array"
)

// Format constants.
const (
	MagicBytes      = "NDAR"
	FormatVersion   = 1    // v1: msgpack header with SHA-256 checksum
	HeaderAlignment = 64   // Align array data to 64 bytes
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size (32 bytes)
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
)

// Data type string constants for serialization.
const (
	DTypeFloat32 = "float32"
	DTypeFloat64 = "float64"
	DTypeInt32   = "int32"
	DTypeInt64   = "int64"
	DTypeUint8   = "uint8"
	DTypeBool    = "bool"
)

// Flags for the .nda format.
const (
	FlagCompressed  uint32 = 1 << 0 // bit 0: gzip compression (reserved, not yet written)
	FlagHasMetadata uint32 = 1 << 1 // bit 1: custom metadata included
)

// Header is the msgpack-encoded header of a .nda file.
type Header struct {
	FormatVersion  int               `msgpack:"format_version"`  // Version of the .nda format
	LibraryVersion string            `msgpack:"library_version"` // Version of nda that created this file
	CreatedAt      time.Time         `msgpack:"created_at"`      // When the file was created
	Arrays         []ArrayMeta       `msgpack:"arrays"`          // Array metadata
	Metadata       map[string]string `msgpack:"metadata"`        // Custom metadata
}

// ArrayMeta describes one array in the .nda file.
type ArrayMeta struct {
	Name   string `msgpack:"name"`   // Array name (e.g. "weights")
	DType  string `msgpack:"dtype"`  // Data type (e.g. "float32", "int64")
	Shape  []int  `msgpack:"shape"`  // Array shape
	Offset int64  `msgpack:"offset"` // Offset in bytes from the start of the data section
	Size   int64  `msgpack:"size"`   // Size in bytes
}

// dtypeToString converts array.DataType to its string representation.
func dtypeToString(dt array.DataType) string {
	switch dt {
	case array.Float32:
		return DTypeFloat32
	case array.Float64:
		return DTypeFloat64
	case array.Int32:
		return DTypeInt32
	case array.Int64:
		return DTypeInt64
	case array.Uint8:
		return DTypeUint8
	case array.Bool:
		return DTypeBool
	default:
		return "unknown"
	}
}

// stringToDtype converts a string representation to array.DataType.
func stringToDtype(s string) (array.DataType, bool) {
	switch s {
	case DTypeFloat32:
		return array.Float32, true
	case DTypeFloat64:
		return array.Float64, true
	case DTypeInt32:
		return array.Int32, true
	case DTypeInt64:
		return array.Int64, true
	case DTypeUint8:
		return array.Uint8, true
	case DTypeBool:
		return array.Bool, true
	default:
		return 0, false
	}
}
