package geom

import (
	"fmt"
	"math"
)

// Vector is both a point and a displacement in the plane. It is a plain value;
// every operation returns a new Vector.
type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector in the direction of v. A zero vector
// produces NaN components, so callers must check Length() first when that can
// happen.
func (v Vector) Normalized() Vector {
	rcp := 1 / v.Length()
	return Vector{v.X * rcp, v.Y * rcp}
}

// Equals is exact. There is deliberately no tolerance here, since the hull
// builder relies on exact comparisons to keep its ordering consistent.
func (v Vector) Equals(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
