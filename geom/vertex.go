package geom

import "fmt"

// Vertex is a cursor onto a polygon: a borrowed polygon reference plus an
// index. It never copies the vertex slice, so it always reads whatever the
// polygon currently holds. Two cursors are equal when they point at the same
// index, regardless of whether different indices happen to hold the same
// coordinates.
type Vertex struct {
	polygon *Polygon
	idx     int
}

func (v Vertex) Index() int {
	return v.idx
}

func (v Vertex) Polygon() *Polygon {
	return v.polygon
}

// Position looks up the vertex coordinates.
func (v Vertex) Position() Vector {
	n := len(v.polygon.Vertices)
	if n == 0 {
		throw(&InvalidPolygonError{Vertices: 0, Reason: "cursor on an empty polygon"})
	}
	return v.polygon.Vertices[CircularIndex(v.idx, n)]
}

func (v Vertex) Next() Vertex {
	return v.polygon.Vertex(v.idx + 1)
}

func (v Vertex) Prev() Vertex {
	return v.polygon.Vertex(v.idx - 1)
}

// Is compares cursors by index.
func (v Vertex) Is(other Vertex) bool {
	return v.idx == other.idx
}

func (v Vertex) String() string {
	return fmt.Sprintf("#%d %v", v.idx, v.Position())
}
