// Package render describes what a step of a walk looks like, without caring
// where it ends up. Scenarios hand out Funcs, and drivers call them with
// whatever Context they have: a raster canvas, a recorder in tests, and so on.
package render

import (
	"fmt"
	"strings"

	"github.com/osuushi/calipers/geom"
)

// Color is a hex color ("#rrggbb" or "#rrggbbaa") or one of the names in
// NamedColors.
type Color string

var NamedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"orange": "#ffa500",
	"gray":   "#808080",
}

// Hex resolves named colors to hex.
func (c Color) Hex() string {
	if hex, ok := NamedColors[strings.ToLower(string(c))]; ok {
		return hex
	}
	return string(c)
}

type StrokeStyle int

const (
	Solid StrokeStyle = iota
	Dashed
)

func (s StrokeStyle) String() string {
	switch s {
	case Solid:
		return "Solid"
	case Dashed:
		return "Dashed"
	}
	return fmt.Sprintf("StrokeStyle(%d)", int(s))
}

type Stroke struct {
	Color     Color
	Thickness float64
	Style     StrokeStyle
}

type Brush struct {
	Color Color
}

// Context is the drawing surface a render Func draws on. Coordinates are in
// the same space as the polygon being walked.
type Context interface {
	// Seconds since the step being drawn began, for animating within a step
	DeltaSeconds() float64
	DrawLine(a, b geom.Vector, stroke Stroke)
	// Closed outline
	DrawPolygon(vertices []geom.Vector, stroke Stroke)
	// Open chain of segments
	DrawPolyline(vertices []geom.Vector, stroke Stroke)
	FillPolygon(vertices []geom.Vector, brush Brush)
	// A filled dot with a radius in pixels, not polygon units
	FillCircle(center geom.Vector, radius float64, brush Brush)
	Label(at geom.Vector, text string)
}

type Func func(Context)
