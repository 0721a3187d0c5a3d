package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nda-dev/nda/array"
	"github.com/nda-dev/nda/internal/config"
	"github.com/nda-dev/nda/ndio"
)

// newTestCmd wires up the globals the run functions expect and returns a
// command whose output is captured in the buffer.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	cmd := &cobra.Command{}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	return cmd, buf
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		input   string
		want    array.Shape
		wantErr bool
	}{
		{"15,3,5", array.Shape{15, 3, 5}, false},
		{"(5,4)", array.Shape{5, 4}, false},
		{"(5, 4)", array.Shape{5, 4}, false},
		{" 3 , 4 ", array.Shape{3, 4}, false},
		{"7", array.Shape{7}, false},
		{"0,2", array.Shape{0, 2}, false},
		{"()", array.Shape{}, false},
		{"", array.Shape{}, false},
		{"3,x", nil, true},
		{"-2,4", nil, true},
	}

	for _, tt := range tests {
		got, err := parseShape(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "parseShape(%q)", tt.input)
			continue
		}
		require.NoError(t, err, "parseShape(%q)", tt.input)
		assert.Equal(t, tt.want, got, "parseShape(%q)", tt.input)
	}
}

func TestFormatShape(t *testing.T) {
	assert.Equal(t, "(15, 3, 5)", formatShape(array.Shape{15, 3, 5}))
	assert.Equal(t, "(7)", formatShape(array.Shape{7}))
	assert.Equal(t, "()", formatShape(array.Shape{}))
}

func TestRunBroadcast(t *testing.T) {
	cmd, buf := newTestCmd()

	err := runBroadcast(cmd, []string{"15,3,5", "3,1"})
	require.NoError(t, err)
	assert.Equal(t, "(15, 3, 5)\n", buf.String())
}

func TestRunBroadcastScalar(t *testing.T) {
	cmd, buf := newTestCmd()

	err := runBroadcast(cmd, []string{"5,4", "()"})
	require.NoError(t, err)
	assert.Equal(t, "(5, 4)\n", buf.String())
}

func TestRunBroadcastIncompatible(t *testing.T) {
	cmd, _ := newTestCmd()

	err := runBroadcast(cmd, []string{"3,4", "2,4"})
	require.Error(t, err)

	var shapeErr *array.IncompatibleShapesError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 0, shapeErr.Axis)
	assert.Equal(t, 3, shapeErr.DimA)
	assert.Equal(t, 2, shapeErr.DimB)
}

func TestRunRandSavesReproducibleFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.nda")
	second := filepath.Join(dir, "second.nda")

	run := func(path string) {
		cmd, _ := newTestCmd()
		randOut = path
		defer func() { randOut = "" }()

		require.NoError(t, runRand(cmd, []string{"2,3"}))
	}
	run(first)
	run(second)

	a, err := ndio.Load(first)
	require.NoError(t, err)
	b, err := ndio.Load(second)
	require.NoError(t, err)

	rawA, rawB := a["data"], b["data"]
	require.NotNil(t, rawA)
	require.NotNil(t, rawB)
	assert.Equal(t, array.Shape{2, 3}, rawA.Shape())
	assert.Equal(t, array.Float64, rawA.DType())
	assert.Equal(t, rawA.AsFloat64(), rawB.AsFloat64())
}

func TestRunRandIntRespectsBounds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dice.nda")

	cmd, _ := newTestCmd()
	randOut = path
	randDist = "int"
	randLow = 1
	randHigh = 7
	randDType = "int32"
	defer func() {
		randOut = ""
		randDist = "uniform"
		randLow = 0
		randHigh = 100
		randDType = ""
	}()

	require.NoError(t, runRand(cmd, []string{"100"}))

	arrays, err := ndio.Load(path)
	require.NoError(t, err)
	raw := arrays["data"]
	require.NotNil(t, raw)
	assert.Equal(t, array.Int32, raw.DType())
	for _, v := range raw.AsInt32() {
		assert.GreaterOrEqual(t, v, int32(1))
		assert.Less(t, v, int32(7))
	}
}

func TestRunRandRejectsBadDistribution(t *testing.T) {
	cmd, _ := newTestCmd()
	randDist = "poisson"
	defer func() { randDist = "uniform" }()

	err := runRand(cmd, []string{"3"})
	assert.Error(t, err)
}

func TestRunConvertRoundTrip(t *testing.T) {
	dir := t.TempDir()
	jsonIn := filepath.Join(dir, "points.json")
	ndaPath := filepath.Join(dir, "points.nda")
	jsonOut := filepath.Join(dir, "back.json")

	require.NoError(t, os.WriteFile(jsonIn, []byte("[[1, 2], [3, 4]]"), 0o600))

	cmd, _ := newTestCmd()
	require.NoError(t, runConvert(cmd, []string{jsonIn, ndaPath}))

	arrays, err := ndio.Load(ndaPath)
	require.NoError(t, err)
	raw := arrays["data"]
	require.NotNil(t, raw)
	assert.Equal(t, array.Shape{2, 2}, raw.Shape())

	require.NoError(t, runConvert(cmd, []string{ndaPath, jsonOut}))
	data, err := os.ReadFile(jsonOut)
	require.NoError(t, err)
	assert.JSONEq(t, "[[1, 2], [3, 4]]", string(data))
}

func TestRunConvertUnknownExtension(t *testing.T) {
	cmd, _ := newTestCmd()

	err := runConvert(cmd, []string{"a.csv", "b.nda"})
	assert.Error(t, err)
}

func TestRunDescribe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.nda")
	saveMatrix(t, path)

	cmd, buf := newTestCmd()
	require.NoError(t, runDescribe(cmd, []string{path}))

	output := buf.String()
	assert.Contains(t, output, "1 arrays:")
	assert.Contains(t, output, "m")
	assert.Contains(t, output, "float64")
	assert.Contains(t, output, "(3, 2)")
}

func TestRunStats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.nda")
	saveMatrix(t, path)

	cmd, buf := newTestCmd()
	require.NoError(t, runStats(cmd, []string{path}))

	output := buf.String()
	assert.Contains(t, output, "m  float64  (3, 2)")
	assert.Contains(t, output, "count=6")
	assert.Contains(t, output, "column argmin: [1 2]")
	assert.Contains(t, output, "standardized:")
}

// saveMatrix writes a 3x2 float64 matrix whose column minima sit at rows
// 1 and 2.
func saveMatrix(t *testing.T, path string) {
	t.Helper()

	raw, err := ndio.FromJSON([]byte("[[4.0, 1.5], [2.0, 5.5], [3.0, 0.5]]"))
	require.NoError(t, err)
	defer raw.Release()

	require.NoError(t, ndio.Save(path, map[string]*array.RawArray{"m": raw}))
}
