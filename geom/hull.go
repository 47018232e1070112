package geom

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Facilities for building a convex hull with an angular (Graham style) sweep.
//
// The pivot is the lowest point, using the leftmost point to break ties. All
// other points are sorted by their polar angle around the pivot, with ties
// broken by distance. The sweep then walks the sorted points with a stack,
// popping whenever the boundary would turn clockwise. Collinear points on the
// boundary are kept.

// A point along with its sort keys relative to the pivot
type polarPoint struct {
	point    Vector
	angle    float64
	distance float64
}

// ConvexHull returns the hull of points as a counterclockwise polygon starting
// at the pivot. The first vertex is not repeated at the end.
//
// With fewer than three points, the points are returned as they are. If three
// or more points are all collinear, the result is a *DegenerateInputError.
// Exact duplicate points are collapsed before sorting.
func ConvexHull(points []Vector) (Polygon, error) {
	if len(points) < 3 {
		return NewPolygon(points...), nil
	}

	sorted := sortAroundPivot(dedupe(points))
	if arePointsCollinear(sorted) {
		return Polygon{}, errors.WithStack(&DegenerateInputError{Points: len(points)})
	}
	reverseClosingRay(sorted)

	stack := make(vectorStack, 0, len(sorted))
	stack.Push(sorted[0].point)
	stack.Push(sorted[1].point)
	for i := 2; i < len(sorted); {
		head := sorted[i].point
		middle := stack.Peek()
		tail := stack.PeekBelow()

		switch ClassifyTurn(tail, middle, head) {
		case CounterClockwise, Collinear:
			stack.Push(head)
			i++
		case Clockwise:
			// Reject the middle point, and try the same head again against the new
			// top of the stack.
			stack.Pop()
			if len(stack) < 2 {
				fatalf("hull stack underflow at %v", head)
			}
		}
	}

	return Polygon{Vertices: []Vector(stack)}, nil
}

// Remove exact duplicates, keeping the first occurrence of each point.
func dedupe(points []Vector) []Vector {
	seen := make(map[Vector]struct{}, len(points))
	result := make([]Vector, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}

// The lowest point, with the leftmost winning ties.
func lowestPoint(points []Vector) Vector {
	lowest := points[0]
	for _, p := range points[1:] {
		if p.Y < lowest.Y || (p.Y == lowest.Y && p.X < lowest.X) {
			lowest = p
		}
	}
	return lowest
}

func sortAroundPivot(points []Vector) []polarPoint {
	pivot := lowestPoint(points)
	result := make([]polarPoint, len(points))
	for i, p := range points {
		dir := p.Sub(pivot)
		result[i] = polarPoint{
			point:    p,
			angle:    math.Atan2(dir.Y, dir.X),
			distance: dir.Length(),
		}
	}
	// The pivot has angle 0 and distance 0, and every other point has an angle
	// in [0, π], so the pivot always sorts first.
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.angle != b.angle {
			return a.angle < b.angle
		}
		return a.distance < b.distance
	})
	return result
}

// Check whether every point lies on the line through the first two.
func arePointsCollinear(sorted []polarPoint) bool {
	if len(sorted) < 3 {
		return true
	}
	a := sorted[0].point
	b := sorted[1].point
	for _, c := range sorted[2:] {
		if ClassifyTurn(a, b, c.point) != Collinear {
			return false
		}
	}
	return true
}

// Points sharing the largest angle are sorted nearest first, but the boundary
// visits them on the way back to the pivot, so they must run farthest first.
// Without this, keeping collinear points would fold the closing edge back on
// itself.
func reverseClosingRay(sorted []polarPoint) {
	last := len(sorted) - 1
	start := last
	for start > 1 && sorted[start-1].angle == sorted[last].angle {
		start--
	}
	for i, j := start, last; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
}

type vectorStack []Vector

func (s *vectorStack) Push(v Vector) {
	*s = append(*s, v)
}

func (s *vectorStack) Pop() Vector {
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *vectorStack) Peek() Vector {
	return (*s)[len(*s)-1]
}

func (s *vectorStack) PeekBelow() Vector {
	return (*s)[len(*s)-2]
}
