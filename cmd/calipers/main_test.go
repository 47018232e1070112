package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointsFile = filepath.Join("testdata", "points.txt")

func TestPrintHulls(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printHulls(&out, pointsFile, nil, false))
	// The point on the bottom edge is kept
	assert.Equal(t, "0 0\n5 0\n10 0\n10 10\n0 10\n\n0 0\n4 0\n0 3\n", out.String())
}

func TestPrintHulls_Strict(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printHulls(&out, pointsFile, nil, true))
	assert.Equal(t, "0 0\n10 0\n10 10\n0 10\n\n0 0\n4 0\n0 3\n", out.String())
}

func TestPrintHulls_Add(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printHulls(&out, pointsFile, []string{"20,5", "-1 -1"}, true))
	assert.Equal(t, "-1 -1\n10 0\n20 5\n10 10\n0 10\n\n-1 -1\n4 0\n20 5\n0 3\n", out.String())
}

func TestPrintHulls_Errors(t *testing.T) {
	var out bytes.Buffer
	err := printHulls(&out, pointsFile, []string{"nope"}, false)
	assert.Error(t, err)

	err = printHulls(&out, filepath.Join("testdata", "missing.txt"), nil, false)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
