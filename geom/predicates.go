package geom

import (
	"fmt"
	"math"
)

// Turn is the orientation of three points, as seen when walking from a through
// b to c.
type Turn int

const (
	Clockwise Turn = iota - 1
	Collinear
	CounterClockwise
)

var turnLabels = [3]string{"Clockwise", "Collinear", "CounterClockwise"}

func (t Turn) String() string {
	if t < Clockwise || t > CounterClockwise {
		return fmt.Sprintf("Turn(%d)", int(t))
	}
	return turnLabels[int(t+1)]
}

// Cross is the z component of (b-a) × (c-a). It is twice the signed area of
// triangle abc, positive when the triangle winds counterclockwise.
func Cross(a, b, c Vector) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Area is twice the unsigned area of triangle abc. The calipers only ever
// compare magnitudes, so they use this rather than Cross. Anything that needs
// to know which way a turn goes must use Cross or ClassifyTurn instead.
func Area(a, b, c Vector) float64 {
	return math.Abs(Cross(a, b, c))
}

// Classify the turn a -> b -> c. Zero is exact; there is no epsilon.
func ClassifyTurn(a, b, c Vector) Turn {
	cross := Cross(a, b, c)
	switch {
	case cross > 0:
		return CounterClockwise
	case cross < 0:
		return Clockwise
	default:
		return Collinear
	}
}
