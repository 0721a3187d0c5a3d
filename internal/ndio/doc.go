// Package ndio implements the native .nda container format for saving and
// loading named arrays.
//
//	Format Structure:
//	  [4 bytes:  Magic "NDAR"]
//	  [4 bytes:  Version (uint32 LE)]
//	  [4 bytes:  Flags (uint32 LE)]
//	  [4 bytes:  Reserved]
//	  [8 bytes:  Header Size (uint64 LE)]
//	  [8 bytes:  Data Size (uint64 LE)]
//	  [32 bytes: SHA-256 checksum of the data section]
//	  [Header: msgpack array metadata]
//	  [Padding to a 64-byte boundary]
//	  [Array data: raw element bytes, little-endian]
//
// The format supports:
//   - Multiple data types (float32, float64, int32, int64, uint8, bool)
//   - Arbitrary array shapes, including scalars and zero extents
//   - Custom metadata preservation
//   - Corruption detection via a SHA-256 checksum over the data section
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
// A JSON bridge (FromJSON, ToJSON) converts between nested JSON numeric
// arrays and RawArrays for interchange with text tooling.
package ndio
