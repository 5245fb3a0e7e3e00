package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinKnots(t *testing.T) {
	ts, axes := BuiltinKnots()
	require.Len(t, ts, 15)
	for i := range axes {
		assert.Len(t, axes[i], len(ts))
	}

	// The built-in curve is closed.
	assert.Equal(t, 0.0, ts[0])
	assert.Equal(t, 1.0, ts[len(ts)-1])
	for i := range axes {
		assert.Equal(t, axes[i][0], axes[i][len(ts)-1])
	}

	// Callers get their own copy.
	ts[0], axes[2][0] = 5, 5
	ts2, axes2 := BuiltinKnots()
	assert.Equal(t, 0.0, ts2[0])
	assert.Equal(t, 12.0, axes2[2][0])
}

func TestWriteReadKnots(t *testing.T) {
	ts, axes := BuiltinKnots()
	fname := filepath.Join(t.TempDir(), "knots.txt")

	f, err := os.Create(fname)
	require.NoError(t, err)
	require.NoError(t, WriteKnots(f, ts, axes))
	require.NoError(t, f.Close())

	readTs, readAxes, err := ReadKnots(fname)
	require.NoError(t, err)
	assert.Equal(t, ts, readTs)
	assert.Equal(t, axes, readAxes)
}

func TestReadKnotsMissing(t *testing.T) {
	_, _, err := ReadKnots(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
