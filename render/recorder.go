package render

import (
	"fmt"

	"github.com/osuushi/calipers/geom"
)

// Op is one recorded drawing call.
type Op struct {
	Name     string
	Vertices []geom.Vector
	Stroke   Stroke
	Brush    Brush
	Radius   float64
	Text     string
}

func (op Op) String() string {
	return fmt.Sprintf("%s %v", op.Name, op.Vertices)
}

// Recorder is a Context that remembers what was drawn, rather than drawing it.
type Recorder struct {
	Delta float64
	Ops   []Op
}

func (r *Recorder) DeltaSeconds() float64 {
	return r.Delta
}

func (r *Recorder) DrawLine(a, b geom.Vector, stroke Stroke) {
	r.Ops = append(r.Ops, Op{Name: "DrawLine", Vertices: []geom.Vector{a, b}, Stroke: stroke})
}

func (r *Recorder) DrawPolygon(vertices []geom.Vector, stroke Stroke) {
	r.Ops = append(r.Ops, Op{Name: "DrawPolygon", Vertices: copyVertices(vertices), Stroke: stroke})
}

func (r *Recorder) DrawPolyline(vertices []geom.Vector, stroke Stroke) {
	r.Ops = append(r.Ops, Op{Name: "DrawPolyline", Vertices: copyVertices(vertices), Stroke: stroke})
}

func (r *Recorder) FillPolygon(vertices []geom.Vector, brush Brush) {
	r.Ops = append(r.Ops, Op{Name: "FillPolygon", Vertices: copyVertices(vertices), Brush: brush})
}

func (r *Recorder) FillCircle(center geom.Vector, radius float64, brush Brush) {
	r.Ops = append(r.Ops, Op{Name: "FillCircle", Vertices: []geom.Vector{center}, Radius: radius, Brush: brush})
}

func (r *Recorder) Label(at geom.Vector, text string) {
	r.Ops = append(r.Ops, Op{Name: "Label", Vertices: []geom.Vector{at}, Text: text})
}

// Named returns the recorded ops with the given name.
func (r *Recorder) Named(name string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Name == name {
			ops = append(ops, op)
		}
	}
	return ops
}

func (r *Recorder) Reset() {
	r.Ops = nil
}

func copyVertices(vertices []geom.Vector) []geom.Vector {
	return append([]geom.Vector(nil), vertices...)
}
