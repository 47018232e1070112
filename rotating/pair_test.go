package rotating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainToFarthest(t *testing.T) {
	poly := hexagon()
	chain := ChainToFarthest(poly.Vertex(0), poly.Vertex(1))
	var indices []int
	for _, v := range chain {
		indices = append(indices, v.Index())
	}
	assert.Equal(t, []int{1, 2, 3}, indices)

	// Already at the farthest vertex
	chain = ChainToFarthest(poly.Vertex(0), poly.Vertex(3))
	assert.Len(t, chain, 1)
}

func TestFarthest(t *testing.T) {
	_, ok := Farthest(nil)
	assert.False(t, ok)

	poly := square()
	pairs := []Pair{
		{P: poly.Vertex(0), Q: poly.Vertex(1)},
		{P: poly.Vertex(1), Q: poly.Vertex(3)},
		{P: poly.Vertex(0), Q: poly.Vertex(2)},
	}
	best, ok := Farthest(pairs)
	assert.True(t, ok)
	// Ties go to the first
	assert.Equal(t, [2]int{1, 3}, best.Indices())
}

func TestPairSameVertices(t *testing.T) {
	poly := square()
	a := Pair{P: poly.Vertex(0), Q: poly.Vertex(2)}
	b := Pair{P: poly.Vertex(2), Q: poly.Vertex(0)}
	c := Pair{P: poly.Vertex(1), Q: poly.Vertex(3)}
	assert.True(t, a.SameVertices(b))
	assert.False(t, a.SameVertices(c))
	assert.Equal(t, "#0 (0, 0) and #2 (10, 10)", a.String())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Parallel", Parallel.String())
	assert.Equal(t, "Source(9)", Source(9).String())
	assert.Equal(t, "AdvanceQStep", AdvanceQStep.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.True(t, ParallelStep.IsStep())
	assert.False(t, PairFound.IsStep())
	assert.Equal(t, "FreeRun", FreeRun.String())
}
