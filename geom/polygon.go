package geom

import (
	"fmt"
	"math"
	"strings"
)

// Polygon is a closed boundary: the last vertex is adjacent to the first. The
// vertex slice is never modified by this package. Hull results are always
// freshly allocated, so nothing outside can alias them either.
type Polygon struct {
	Vertices []Vector
}

func NewPolygon(vertices ...Vector) Polygon {
	return Polygon{Vertices: append([]Vector(nil), vertices...)}
}

func (poly Polygon) Len() int {
	return len(poly.Vertices)
}

// Vertex returns a cursor at index idx, taken modulo the vertex count. This
// panics with an InvalidPolygonError if the polygon is empty, since there is no
// index to land on.
func (poly *Polygon) Vertex(idx int) Vertex {
	n := len(poly.Vertices)
	if n == 0 {
		throw(&InvalidPolygonError{Vertices: 0, Reason: "no vertices to place a cursor on"})
	}
	return Vertex{polygon: poly, idx: CircularIndex(idx, n)}
}

// MergeWithPoint rebuilds the hull of the polygon's vertices plus p. It fails
// exactly when ConvexHull fails on that union.
func (poly Polygon) MergeWithPoint(p Vector) (Polygon, error) {
	points := make([]Vector, 0, len(poly.Vertices)+1)
	points = append(points, poly.Vertices...)
	points = append(points, p)
	return ConvexHull(points)
}

// Extent is the bounding box of the vertices. The polygon must not be empty.
func (poly Polygon) Extent() Extent {
	return ExtentOf(poly.Vertices...)
}

// Check that every turn along the boundary is counterclockwise or collinear,
// that at least one is strictly counterclockwise, and that the boundary goes
// around exactly once. This is what the calipers need from their input.
func (poly Polygon) Validate() error {
	n := len(poly.Vertices)
	if n < 3 {
		return &InvalidPolygonError{Vertices: n, Reason: "at least three vertices are required"}
	}
	anyTurn := false
	for i := range poly.Vertices {
		a := poly.Vertices[i]
		b := poly.Vertices[CircularIndex(i+1, n)]
		c := poly.Vertices[CircularIndex(i+2, n)]
		switch ClassifyTurn(a, b, c) {
		case Clockwise:
			return &InvalidPolygonError{
				Vertices: n,
				Reason:   fmt.Sprintf("clockwise turn at vertex %d %v", CircularIndex(i+1, n), b),
			}
		case CounterClockwise:
			anyTurn = true
		}
	}
	if !anyTurn {
		return &InvalidPolygonError{Vertices: n, Reason: "all vertices are collinear"}
	}

	// Left turns everywhere still allow a star that winds around more than
	// once. The exterior angles of a convex polygon add up to exactly one
	// full turn. Empty edges from repeated vertices don't turn at all.
	var edges []Vector
	for i, v := range poly.Vertices {
		if edge := poly.Vertices[CircularIndex(i+1, n)].Sub(v); !edge.Equals(Vector{}) {
			edges = append(edges, edge)
		}
	}
	total := 0.0
	for i, in := range edges {
		out := edges[CircularIndex(i+1, len(edges))]
		total += math.Atan2(in.X*out.Y-in.Y*out.X, in.X*out.X+in.Y*out.Y)
	}
	if winding := math.Round(total / (2 * math.Pi)); winding != 1 {
		return &InvalidPolygonError{
			Vertices: n,
			Reason:   fmt.Sprintf("boundary winds around %v times", winding),
		}
	}
	return nil
}

// StrictlyConvex collapses repeated vertices, then drops every vertex that
// lies on the straight line between its neighbors. For a convex polygon, the result passes ValidateStrict.
func (poly Polygon) StrictlyConvex() Polygon {
	// Repeated vertices look collinear with their copies, so collapse them
	// first or the corner they sit on would vanish along with them.
	distinct := make([]Vector, 0, len(poly.Vertices))
	for _, v := range poly.Vertices {
		if len(distinct) > 0 && distinct[len(distinct)-1].Equals(v) {
			continue
		}
		distinct = append(distinct, v)
	}
	for len(distinct) > 1 && distinct[0].Equals(distinct[len(distinct)-1]) {
		distinct = distinct[:len(distinct)-1]
	}

	n := len(distinct)
	result := Polygon{Vertices: make([]Vector, 0, n)}
	for i, v := range distinct {
		prev := distinct[CircularIndex(i-1, n)]
		next := distinct[CircularIndex(i+1, n)]
		if ClassifyTurn(prev, v, next) != Collinear {
			result.Vertices = append(result.Vertices, v)
		}
	}
	return result
}

// Point in polygon test for convex counterclockwise polygons. Points on the
// boundary count as inside.
func (poly Polygon) ContainsPoint(p Vector) bool {
	n := len(poly.Vertices)
	for i, vertex := range poly.Vertices {
		next := poly.Vertices[CircularIndex(i+1, n)]
		if ClassifyTurn(vertex, next, p) == Clockwise {
			return false
		}
	}
	return n > 0
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Vertices))
	for i, v := range poly.Vertices {
		parts[i] = v.String()
	}
	return fmt.Sprintf("Polygon[%s]", strings.Join(parts, " "))
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
