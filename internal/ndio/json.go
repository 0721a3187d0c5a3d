package ndio

import (
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"

	"github.com/nda-dev/nda/internal/array"
)

// FromJSON parses a JSON value into a RawArray. Nested arrays must be
// rectangular. The element type is inferred: bool for booleans, int64 when
// every number parses as an integer, float64 otherwise. A bare scalar parses
// as a zero-dimensional array.
func FromJSON(data []byte) (*array.RawArray, error) {
	value, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse json")
	}

	shape, err := jsonShape(value, vtype)
	if err != nil {
		return nil, err
	}

	vals := &jsonValues{allInt: true}
	if err := vals.collect(value, vtype, shape, 0); err != nil {
		return nil, err
	}

	var dtype array.DataType
	switch {
	case len(vals.bools) > 0:
		dtype = array.Bool
	case vals.allInt && len(vals.ints) > 0:
		dtype = array.Int64
	default:
		dtype = array.Float64
	}

	raw, err := array.NewRaw(shape, dtype, array.CPU)
	if err != nil {
		return nil, errors.Wrap(err, "create array")
	}

	switch dtype {
	case array.Bool:
		copy(raw.AsBool(), vals.bools)
	case array.Int64:
		copy(raw.AsInt64(), vals.ints)
	default:
		copy(raw.AsFloat64(), vals.floats)
	}

	return raw, nil
}

// jsonShape walks the first path of nested arrays to propose a shape. The
// collect pass verifies every other path against it.
func jsonShape(value []byte, vtype jsonparser.ValueType) (array.Shape, error) {
	shape := array.Shape{}
	for vtype == jsonparser.Array {
		n := 0
		var first []byte
		firstType := jsonparser.NotExist
		if _, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			if n == 0 {
				first, firstType = item, itemType
			}
			n++
		}); err != nil {
			return nil, errors.Wrap(err, "scan json array")
		}
		shape = append(shape, n)
		if n == 0 {
			break
		}
		value, vtype = first, firstType
	}
	return shape, nil
}

// jsonValues accumulates flattened elements. Integers are mirrored into the
// float slice so a late fractional value can demote the whole array to
// float64 without a second pass.
type jsonValues struct {
	floats []float64
	ints   []int64
	bools  []bool
	allInt bool
}

func (v *jsonValues) collect(value []byte, vtype jsonparser.ValueType, shape array.Shape, depth int) error {
	if depth < len(shape) {
		if vtype != jsonparser.Array {
			return errors.Wrapf(ErrRaggedJSON, "scalar at depth %d, want nesting depth %d", depth, len(shape))
		}
		n := 0
		var walkErr error
		if _, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			if walkErr != nil {
				return
			}
			walkErr = v.collect(item, itemType, shape, depth+1)
			n++
		}); err != nil {
			return errors.Wrap(err, "scan json array")
		}
		if walkErr != nil {
			return walkErr
		}
		if n != shape[depth] {
			return errors.Wrapf(ErrRaggedJSON, "row of length %d at depth %d, want %d", n, depth, shape[depth])
		}
		return nil
	}

	switch vtype {
	case jsonparser.Array:
		return errors.Wrapf(ErrRaggedJSON, "nested array at depth %d, want scalar", depth)
	case jsonparser.Number:
		if len(v.bools) > 0 {
			return errors.New("mixed boolean and numeric elements")
		}
		if i, err := jsonparser.GetInt(value); err == nil {
			v.ints = append(v.ints, i)
			v.floats = append(v.floats, float64(i))
			return nil
		}
		f, err := jsonparser.GetFloat(value)
		if err != nil {
			return errors.Wrap(err, "parse number")
		}
		v.allInt = false
		v.floats = append(v.floats, f)
		return nil
	case jsonparser.Boolean:
		if len(v.floats) > 0 {
			return errors.New("mixed boolean and numeric elements")
		}
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return errors.Wrap(err, "parse boolean")
		}
		v.bools = append(v.bools, b)
		return nil
	default:
		return errors.Errorf("unsupported json element type %d", vtype)
	}
}

// ToJSON renders a RawArray as nested JSON arrays. A zero-dimensional array
// renders as a bare value.
func ToJSON(raw *array.RawArray) ([]byte, error) {
	elems, err := elementValues(raw)
	if err != nil {
		return nil, err
	}

	nested, _ := nest(elems, raw.Shape())
	out, err := json.Marshal(nested)
	if err != nil {
		return nil, errors.Wrap(err, "render json")
	}
	return out, nil
}

func elementValues(raw *array.RawArray) ([]any, error) {
	elems := make([]any, raw.NumElements())
	switch raw.DType() {
	case array.Float32:
		for i, v := range raw.AsFloat32() {
			elems[i] = v
		}
	case array.Float64:
		for i, v := range raw.AsFloat64() {
			elems[i] = v
		}
	case array.Int32:
		for i, v := range raw.AsInt32() {
			elems[i] = v
		}
	case array.Int64:
		for i, v := range raw.AsInt64() {
			elems[i] = v
		}
	case array.Uint8:
		for i, v := range raw.AsUint8() {
			elems[i] = v
		}
	case array.Bool:
		for i, v := range raw.AsBool() {
			elems[i] = v
		}
	default:
		return nil, errors.Errorf("unsupported dtype %v", raw.DType())
	}
	return elems, nil
}

// nest folds a flat element list into nested slices following shape.
func nest(elems []any, shape array.Shape) (any, []any) {
	if len(shape) == 0 {
		return elems[0], elems[1:]
	}
	out := make([]any, 0, shape[0])
	rest := elems
	var item any
	for i := 0; i < shape[0]; i++ {
		item, rest = nest(rest, shape[1:])
		out = append(out, item)
	}
	return out, rest
}
