package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/calipers/geom"
	"golang.org/x/image/font/basicfont"
)

// Padding around the shape, in pixels, so that vertices on the boundary and
// their labels are not clipped
const canvasPadding = 40

// Canvas rasterizes render Funcs with gg. The view is fixed when the canvas
// is made: the given extent is scaled to fit, and flipped so that y points up,
// which keeps counterclockwise polygons counterclockwise on screen.
type Canvas struct {
	gc     *gg.Context
	extent geom.Extent
	scale  float64
	delta  float64
}

// NewCanvas makes a canvas showing extent, at scale pixels per unit.
func NewCanvas(extent geom.Extent, scale float64) *Canvas {
	if extent.IsEmpty() {
		extent = geom.Extent{Max: geom.Vector{X: 1, Y: 1}}
	}
	width := int(math.Ceil(scale*extent.Width())) + canvasPadding*2
	height := int(math.Ceil(scale*extent.Height())) + canvasPadding*2
	gc := gg.NewContext(width, height)
	gc.SetFontFace(basicfont.Face7x13)
	gc.SetLineCapRound()
	gc.SetLineJoinRound()
	return &Canvas{gc: gc, extent: extent, scale: scale}
}

// FitCanvas picks a scale so that the larger side of extent spans size pixels.
func FitCanvas(extent geom.Extent, size int) *Canvas {
	side := math.Max(extent.Width(), extent.Height())
	if side <= 0 || extent.IsEmpty() {
		return NewCanvas(extent, 1)
	}
	return NewCanvas(extent, float64(size)/side)
}

// Render clears the canvas to white and draws fn on it.
func (c *Canvas) Render(fn Func, deltaSeconds float64) {
	c.delta = deltaSeconds
	c.gc.SetRGB(1, 1, 1)
	c.gc.Clear()
	fn(c)
}

func (c *Canvas) Width() int {
	return c.gc.Width()
}

func (c *Canvas) Height() int {
	return c.gc.Height()
}

// ToScreen converts polygon coordinates to pixel coordinates.
func (c *Canvas) ToScreen(v geom.Vector) (x, y float64) {
	x = canvasPadding + (v.X-c.extent.Min.X)*c.scale
	y = float64(c.gc.Height()) - canvasPadding - (v.Y-c.extent.Min.Y)*c.scale
	return x, y
}

func (c *Canvas) Image() image.Image {
	return c.gc.Image()
}

func (c *Canvas) SavePNG(path string) error {
	return c.gc.SavePNG(path)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.gc.EncodePNG(w)
}

func (c *Canvas) DeltaSeconds() float64 {
	return c.delta
}

func (c *Canvas) DrawLine(a, b geom.Vector, stroke Stroke) {
	c.path([]geom.Vector{a, b}, false)
	c.stroke(stroke)
}

func (c *Canvas) DrawPolygon(vertices []geom.Vector, stroke Stroke) {
	if c.path(vertices, true) {
		c.stroke(stroke)
	}
}

func (c *Canvas) DrawPolyline(vertices []geom.Vector, stroke Stroke) {
	if c.path(vertices, false) {
		c.stroke(stroke)
	}
}

func (c *Canvas) FillPolygon(vertices []geom.Vector, brush Brush) {
	if c.path(vertices, true) {
		c.gc.SetHexColor(brush.Color.Hex())
		c.gc.Fill()
	}
}

func (c *Canvas) FillCircle(center geom.Vector, radius float64, brush Brush) {
	x, y := c.ToScreen(center)
	c.gc.DrawCircle(x, y, radius)
	c.gc.SetHexColor(brush.Color.Hex())
	c.gc.Fill()
}

// Label draws text just above and to the right of a point.
func (c *Canvas) Label(at geom.Vector, text string) {
	x, y := c.ToScreen(at)
	c.gc.SetRGB(0.2, 0.2, 0.2)
	c.gc.DrawStringAnchored(text, x+6, y-6, 0, 0)
}

// Lay out a path, returning false if there is nothing to draw
func (c *Canvas) path(vertices []geom.Vector, closed bool) bool {
	c.gc.ClearPath()
	if len(vertices) == 0 {
		return false
	}
	c.gc.MoveTo(c.ToScreen(vertices[0]))
	for _, v := range vertices[1:] {
		c.gc.LineTo(c.ToScreen(v))
	}
	if closed {
		c.gc.ClosePath()
	}
	return true
}

func (c *Canvas) stroke(stroke Stroke) {
	c.gc.SetHexColor(stroke.Color.Hex())
	c.gc.SetLineWidth(math.Max(stroke.Thickness, 1))
	if stroke.Style == Dashed {
		c.gc.SetDash(8, 6)
	} else {
		c.gc.SetDash()
	}
	c.gc.Stroke()
}
