package geom

import "fmt"

// DegenerateInputError is returned when a hull is requested for three or more
// points that all lie on one line. There is no hull to build, and retrying
// with the same points will fail the same way; at least one point off the line
// is needed.
type DegenerateInputError struct {
	Points int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("cannot create a convex hull from %d collinear points", e.Points)
}

// InvalidPolygonError reports a polygon that cannot be used for the requested
// operation, such as walking an empty polygon with the calipers.
type InvalidPolygonError struct {
	Vertices int
	Reason   string
}

func (e *InvalidPolygonError) Error() string {
	return fmt.Sprintf("invalid polygon with %d vertices: %s", e.Vertices, e.Reason)
}
