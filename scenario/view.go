package scenario

import (
	"math"
	"strconv"

	"github.com/fogleman/ease"
	"github.com/osuushi/calipers/geom"
	"github.com/osuushi/calipers/render"
	"github.com/osuushi/calipers/rotating"
)

// Long enough to cross any reasonable canvas in both directions
const caliperReach = 10000

// How long newly found pair markers take to grow to full size
const markerGrowSeconds = 0.4

var (
	strokeBlack       = render.Stroke{Color: "black", Thickness: 2, Style: render.Solid}
	strokeBlackThin   = render.Stroke{Color: "black", Thickness: 1, Style: render.Solid}
	strokeBlackDashed = render.Stroke{Color: "black", Thickness: 2, Style: render.Dashed}
	strokeBlue        = render.Stroke{Color: "blue", Thickness: 1, Style: render.Solid}
	strokeRed         = render.Stroke{Color: "red", Thickness: 4, Style: render.Solid}
	strokeOrange      = render.Stroke{Color: "orange", Thickness: 3, Style: render.Solid}
	brushBlue         = render.Brush{Color: "#2DBFFF88"}
	brushMarker       = render.Brush{Color: "#ff5500"}
)

// view keeps the little bit of drawing state that outlives a single event:
// the convex chain q is heading along, and the best pair so far.
type view struct {
	variant Variant
	polygon *geom.Polygon

	chain   []geom.Vector
	best    rotating.Pair
	hasBest bool
}

func newView(variant Variant, polygon *geom.Polygon) *view {
	return &view{variant: variant, polygon: polygon}
}

// Update from a PairFound event.
func (v *view) found(event rotating.Event) {
	pair := event.Pair
	if pair.Source == rotating.Initial || pair.Source == rotating.AfterP {
		// p just moved, so q has a new farthest vertex to head for
		v.chain = v.chain[:0]
		for _, vertex := range rotating.ChainToFarthest(event.P, event.Q) {
			v.chain = append(v.chain, vertex.Position())
		}
	}
	if !v.hasBest || pair.Distance() > v.best.Distance() {
		v.best = pair
		v.hasBest = true
	}
}

// Describe a step. Everything the returned func needs is copied now, so it
// draws the same picture no matter when, or how often, it is called.
func (v *view) draw(event rotating.Event) render.Func {
	vertices := v.polygon.Vertices
	p := event.P.Position()
	q := event.Q.Position()
	pNext := event.P.Next().Position()
	dir := event.CaliperDirection().Scale(caliperReach)
	chain := append([]geom.Vector(nil), v.chain...)
	best, hasBest := v.best, v.hasBest

	switch v.variant {
	case Diameter:
		return func(ctx render.Context) {
			ctx.DrawPolygon(vertices, strokeBlackThin)
			caliper(ctx, p, dir, strokeBlue)
			caliper(ctx, q, dir, strokeBlue)
			if hasBest {
				ctx.DrawLine(best.P.Position(), best.Q.Position(), strokeOrange)
			}
			markers(ctx, p, q)
		}
	default:
		if event.Kind == rotating.SearchStep {
			return func(ctx render.Context) {
				ctx.FillPolygon(vertices, brushBlue)
				ctx.DrawPolygon(vertices, strokeBlack)
				caliper(ctx, p, dir, strokeBlack)
				caliper(ctx, q, dir, strokeBlack)
				ctx.DrawLine(p, q, strokeBlackDashed)
				ctx.DrawLine(pNext, q, strokeBlackDashed)
				labels(ctx, vertices)
				markers(ctx, p, q)
			}
		}
		return func(ctx render.Context) {
			ctx.FillPolygon(vertices, brushBlue)
			ctx.DrawPolygon(vertices, strokeBlack)
			caliper(ctx, p, dir, strokeBlack)
			caliper(ctx, q, dir, strokeBlack)
			if len(chain) > 1 {
				ctx.DrawPolyline(chain, strokeRed)
			}
			labels(ctx, vertices)
			markers(ctx, p, q)
		}
	}
}

// A supporting line through a vertex
func caliper(ctx render.Context, through, dir geom.Vector, stroke render.Stroke) {
	ctx.DrawLine(through.Sub(dir), through.Add(dir), stroke)
}

func labels(ctx render.Context, vertices []geom.Vector) {
	for i, v := range vertices {
		ctx.Label(v, "#"+strconv.Itoa(i))
	}
}

// Dots on p and q that grow in when a step is first shown
func markers(ctx render.Context, p, q geom.Vector) {
	t := math.Min(1, math.Max(0, ctx.DeltaSeconds()/markerGrowSeconds))
	radius := 2 + 4*ease.OutCubic(t)
	ctx.FillCircle(p, radius, brushMarker)
	ctx.FillCircle(q, radius, brushMarker)
}
