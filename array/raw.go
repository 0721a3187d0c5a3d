// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/nda-dev/nda/internal/array"
)

// RawArray is the low-level array representation.
//
// RawArray provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Shared-buffer handles via Clone(), detached copies via Copy()
//   - Reference counting for efficient memory management
//
// Most users should use the high-level Array[T, B] type instead.
//
// Example:
//
//	raw, _ := array.NewRaw(array.Shape{2, 3}, array.Float32, array.CPU)
//	data := raw.AsFloat32()  // Type-safe access
//	clone := raw.Clone()     // Shares buffer via reference counting
type RawArray = array.RawArray
