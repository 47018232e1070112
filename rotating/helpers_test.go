package rotating

import (
	"math"
	"math/rand"
	"testing"

	"github.com/osuushi/calipers/geom"
	"github.com/stretchr/testify/require"
)

// Test polygons. All of them are strictly convex and counterclockwise.

func square() *geom.Polygon {
	poly := geom.NewPolygon(
		geom.Vector{X: 0, Y: 0},
		geom.Vector{X: 10, Y: 0},
		geom.Vector{X: 10, Y: 10},
		geom.Vector{X: 0, Y: 10},
	)
	return &poly
}

func triangle() *geom.Polygon {
	poly := geom.NewPolygon(
		geom.Vector{X: 0, Y: 0},
		geom.Vector{X: 4, Y: 0},
		geom.Vector{X: 0, Y: 3},
	)
	return &poly
}

func hexagon() *geom.Polygon {
	poly := geom.NewPolygon(
		geom.Vector{X: 100, Y: 100},
		geom.Vector{X: 150, Y: 120},
		geom.Vector{X: 160, Y: 150},
		geom.Vector{X: 140, Y: 190},
		geom.Vector{X: 120, Y: 180},
		geom.Vector{X: 105, Y: 140},
	)
	return &poly
}

func regularPolygon(n int, radius float64) *geom.Polygon {
	points := make([]geom.Vector, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = geom.Vector{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	poly := geom.NewPolygon(points...)
	return &poly
}

// Hull of random integer points, with collinear vertices dropped
func randomConvexPolygon(t *testing.T, seed int64, n int) *geom.Polygon {
	rng := rand.New(rand.NewSource(seed))
	points := make([]geom.Vector, n)
	for i := range points {
		points[i] = geom.Vector{X: float64(rng.Intn(200) - 100), Y: float64(rng.Intn(200) - 100)}
	}
	hull, err := geom.ConvexHull(points)
	require.NoError(t, err)
	strict := hull.StrictlyConvex()
	require.NoError(t, strict.ValidateStrict())
	return &strict
}

func transform(poly *geom.Polygon, scale float64, offset geom.Vector) *geom.Polygon {
	points := make([]geom.Vector, poly.Len())
	for i, v := range poly.Vertices {
		points[i] = v.Scale(scale).Add(offset)
	}
	result := geom.NewPolygon(points...)
	return &result
}

func pairIndices(pairs []Pair) [][2]int {
	result := make([][2]int, len(pairs))
	for i, pair := range pairs {
		result[i] = pair.Indices()
	}
	return result
}

func collect(t *testing.T, poly *geom.Polygon) []Pair {
	w, err := NewWalk(poly)
	require.NoError(t, err)
	return w.Collect()
}

func bruteForceDiameter(poly *geom.Polygon) float64 {
	var best float64
	for i, a := range poly.Vertices {
		for _, b := range poly.Vertices[i+1:] {
			best = math.Max(best, b.Sub(a).Length())
		}
	}
	return best
}

// Visit every step-th vertex of poly. With a step that shares no factor with
// the vertex count, this is a star whose turns all go left.
func starOf(poly *geom.Polygon, step int) []geom.Vector {
	n := poly.Len()
	star := make([]geom.Vector, n)
	for i := range star {
		star[i] = poly.Vertices[(i*step)%n]
	}
	return star
}
