package ndio

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeChecksum(t *testing.T) {
	data := []byte("nda checksum payload")

	sum := ComputeChecksum(data)
	assert.Equal(t, sha256.Sum256(data), sum)
	assert.Equal(t, sum, ComputeChecksum(data))
	assert.NotEqual(t, sum, ComputeChecksum([]byte("nda checksum payloae")))
}

func TestComputeChecksumReader(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 100_000)
	want := ComputeChecksum(data)

	got, err := ComputeChecksumReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidateChecksum(t *testing.T) {
	a := ComputeChecksum([]byte("payload"))
	require.NoError(t, ValidateChecksum(a, a))

	b := ComputeChecksum([]byte("other"))
	require.ErrorIs(t, ValidateChecksum(a, b), ErrChecksumMismatch)
}
