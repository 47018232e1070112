package calipers

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/kr/pretty"
	"github.com/osuushi/calipers/geom"
	"github.com/osuushi/calipers/player"
	"github.com/osuushi/calipers/report"
	"github.com/osuushi/calipers/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.

func TestConvexHull(t *testing.T) {
	hull, err := ConvexHull(Vector{0, 0}, Vector{10, 0}, Vector{5, 3}, Vector{10, 10}, Vector{0, 10})
	require.NoError(t, err)
	assert.Equal(t, []Vector{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, hull.Vertices)

	_, err = ConvexHull(Vector{0, 0}, Vector{1, 1}, Vector{2, 2})
	var degenerate *geom.DegenerateInputError
	assert.True(t, errors.As(err, &degenerate))
}

func TestAntipodalPairs(t *testing.T) {
	// The midpoint of the bottom edge is dropped
	poly := geom.NewPolygon(Vector{0, 0}, Vector{5, 0}, Vector{10, 0}, Vector{10, 10}, Vector{0, 10})
	pairs, err := AntipodalPairs(poly)
	require.NoError(t, err)
	assert.Len(t, pairs, 10)
	assert.Equal(t, 4, pairs[0].P.Polygon().Len())
}

func TestAntipodalPairs_Invalid(t *testing.T) {
	clockwise := geom.NewPolygon(Vector{0, 0}, Vector{0, 10}, Vector{10, 10}, Vector{10, 0})
	_, err := AntipodalPairs(clockwise)
	var invalid *geom.InvalidPolygonError
	assert.True(t, errors.As(err, &invalid))

	_, err = Diameter(Polygon{})
	assert.True(t, errors.As(err, &invalid))
}

func TestDiameter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		points := make([]Vector, 50)
		for j := range points {
			points[j] = Vector{float64(rng.Intn(1000)), float64(rng.Intn(1000))}
		}
		hull, err := ConvexHull(points...)
		require.NoError(t, err)

		pair, err := Diameter(hull)
		require.NoError(t, err)

		best := 0.0
		for _, a := range points {
			for _, b := range points {
				best = math.Max(best, b.Sub(a).Length())
			}
		}
		assert.Equal(t, best, pair.Distance(), pretty.Sprint(hull.Vertices))
	}
}

func TestRun(t *testing.T) {
	hull, err := ConvexHull(Vector{0, 0}, Vector{4, 0}, Vector{0, 3})
	require.NoError(t, err)

	var transcript report.Recorder
	p := player.New(player.Config{Polygons: []Polygon{hull}, Reporter: &transcript})
	result, err := Run(context.Background(), scenario.Diameter, p)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.Diameter.Distance())
	assert.NotEmpty(t, transcript.Messages(report.Success))
}

func TestDiameter_RepeatedCorner(t *testing.T) {
	poly := geom.NewPolygon(Vector{-100, 0}, Vector{-100, 0}, Vector{10, 0}, Vector{10, 10}, Vector{0, 10})
	pair, err := Diameter(poly)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Vector{{-100, 0}, {10, 10}}, []Vector{pair.P.Position(), pair.Q.Position()})
	assert.InDelta(t, math.Hypot(110, 10), pair.Distance(), 1e-9)
}
