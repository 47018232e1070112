package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector{3, 4}
	b := Vector{-1, 2}
	assert.Equal(t, Vector{2, 6}, a.Add(b))
	assert.Equal(t, Vector{4, 2}, a.Sub(b))
	assert.Equal(t, Vector{6, 8}, a.Scale(2))
	assert.Equal(t, 5.0, a.Length())
	// Operations never touch the receiver
	assert.Equal(t, Vector{3, 4}, a)
}

func TestVectorNormalized(t *testing.T) {
	n := Vector{3, 4}.Normalized()
	assert.InDelta(t, 1, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)

	t.Run("zero vector", func(t *testing.T) {
		z := Vector{}.Normalized()
		assert.True(t, math.IsNaN(z.X))
		assert.True(t, math.IsNaN(z.Y))
	})
}

func TestVectorEquals(t *testing.T) {
	assert.True(t, Vector{1, 2}.Equals(Vector{1, 2}))
	assert.False(t, Vector{1, 2}.Equals(Vector{1, 2 + 1e-12}))
	assert.Equal(t, "(1.5, -2)", Vector{1.5, -2}.String())
}
