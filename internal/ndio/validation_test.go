package ndio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArrayOffsetsOK(t *testing.T) {
	arrays := []ArrayMeta{
		{Name: "a", Offset: 0, Size: 16},
		{Name: "b", Offset: 16, Size: 8},
	}
	require.NoError(t, ValidateArrayOffsets(arrays, 24))
}

func TestValidateArrayOffsetsGapOK(t *testing.T) {
	// Gaps between regions are legal, only overlap is not.
	arrays := []ArrayMeta{
		{Name: "a", Offset: 0, Size: 8},
		{Name: "b", Offset: 32, Size: 8},
	}
	require.NoError(t, ValidateArrayOffsets(arrays, 40))
}

func TestValidateArrayOffsetsOverlap(t *testing.T) {
	arrays := []ArrayMeta{
		{Name: "b", Offset: 8, Size: 16},
		{Name: "a", Offset: 0, Size: 12},
	}
	err := ValidateArrayOffsets(arrays, 64)
	require.ErrorIs(t, err, ErrOffsetOverlap)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "a", verr.Array)
	assert.Equal(t, "b", verr.Array2)
}

func TestValidateArrayOffsetsOutOfBounds(t *testing.T) {
	arrays := []ArrayMeta{{Name: "a", Offset: 0, Size: 100}}
	require.ErrorIs(t, ValidateArrayOffsets(arrays, 64), ErrOutOfBounds)
}

func TestValidateArrayOffsetsNegative(t *testing.T) {
	arrays := []ArrayMeta{{Name: "a", Offset: -8, Size: 8}}
	require.ErrorIs(t, ValidateArrayOffsets(arrays, 64), ErrNegativeOffset)
}

func TestValidateArrayNameHygiene(t *testing.T) {
	require.NoError(t, ValidateArrayName("layer.0.weight"))

	for _, name := range []string{"../up", "a/b", `a\b`, "nul\x00byte"} {
		require.ErrorIs(t, ValidateArrayName(name), ErrInvalidArrayName, "name %q", name)
	}

	long := strings.Repeat("n", MaxArrayNameLen+1)
	require.ErrorIs(t, ValidateArrayName(long), ErrArrayNameTooLong)
}

func TestValidateHeaderLevels(t *testing.T) {
	h := &Header{
		Arrays: []ArrayMeta{
			{Name: "a", Offset: 0, Size: 32},
			{Name: "b", Offset: 16, Size: 32},
		},
	}

	// Overlapping offsets only fail under strict validation.
	require.ErrorIs(t, ValidateHeader(h, 64, ValidationStrict), ErrOffsetOverlap)
	require.NoError(t, ValidateHeader(h, 64, ValidationNormal))
	require.NoError(t, ValidateHeader(h, 64, ValidationNone))

	bad := &Header{Arrays: []ArrayMeta{{Name: "../x", Offset: 0, Size: 8}}}
	require.ErrorIs(t, ValidateHeader(bad, 8, ValidationNormal), ErrInvalidArrayName)
	require.NoError(t, ValidateHeader(bad, 8, ValidationNone))
}

func TestValidateHeaderMetadataSize(t *testing.T) {
	h := &Header{Metadata: map[string]string{"blob": strings.Repeat("x", MaxMetadataSize)}}
	require.ErrorIs(t, ValidateHeader(h, 0, ValidationNormal), ErrMetadataTooLarge)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Err: ErrOffsetOverlap, Array: "a", Array2: "b", Details: "regions overlap"}
	assert.Contains(t, err.Error(), `"a"`)
	assert.Contains(t, err.Error(), `"b"`)

	err = &ValidationError{Err: ErrInvalidArrayName, Array: "a", Details: "bad"}
	assert.Contains(t, err.Error(), `"a"`)

	err = &ValidationError{Err: ErrTooManyArrays, Details: "got 5"}
	assert.Contains(t, err.Error(), "got 5")
}
