package geom

import "math"

// Extent is an axis aligned bounding box.
type Extent struct {
	Min, Max Vector
}

// ExtentOf returns the bounding box of the given points. With no points, the
// result is inverted (Min at +Inf, Max at -Inf), which merges as an identity.
func ExtentOf(points ...Vector) Extent {
	e := Extent{
		Min: Vector{math.Inf(1), math.Inf(1)},
		Max: Vector{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range points {
		e = e.MergeWith(Extent{Min: p, Max: p})
	}
	return e
}

func (e Extent) Width() float64 {
	return e.Max.X - e.Min.X
}

func (e Extent) Height() float64 {
	return e.Max.Y - e.Min.Y
}

func (e Extent) Center() Vector {
	return e.Min.Add(Vector{e.Width() / 2, e.Height() / 2})
}

func (e Extent) IsEmpty() bool {
	return e.Min.X > e.Max.X || e.Min.Y > e.Max.Y
}

// MergeWith returns the smallest extent containing e and all of others.
func (e Extent) MergeWith(others ...Extent) Extent {
	for _, other := range others {
		e = Extent{
			Min: Vector{math.Min(e.Min.X, other.Min.X), math.Min(e.Min.Y, other.Min.Y)},
			Max: Vector{math.Max(e.Max.X, other.Max.X), math.Max(e.Max.Y, other.Max.Y)},
		}
	}
	return e
}
