package geom

// PointSet is an append-only collection of raw input points. Adding points
// produces a new set and leaves the receiver alone.
type PointSet struct {
	points []Vector
}

func NewPointSet(points ...Vector) PointSet {
	return PointSet{points: append([]Vector(nil), points...)}
}

// Points returns a copy of the points, in insertion order.
func (s PointSet) Points() []Vector {
	return append([]Vector(nil), s.points...)
}

func (s PointSet) Len() int {
	return len(s.points)
}

func (s PointSet) AddPoints(points ...Vector) PointSet {
	merged := make([]Vector, 0, len(s.points)+len(points))
	merged = append(merged, s.points...)
	merged = append(merged, points...)
	return PointSet{points: merged}
}

func (s PointSet) Extent() Extent {
	return ExtentOf(s.points...)
}

func (s PointSet) ConvexHull() (Polygon, error) {
	return ConvexHull(s.points)
}
