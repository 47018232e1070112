// Rotating calipers for convex polygons in Go.
//
// This package finds the convex hull of a point set, every antipodal pair of
// vertices of a convex polygon, and its diameter, in linear time once the hull
// is known. The walk itself lives in the rotating package, which can also be
// stepped through one event at a time, and the scenario and player packages
// animate it.
package calipers

import (
	"context"

	"github.com/osuushi/calipers/geom"
	"github.com/osuushi/calipers/rotating"
	"github.com/osuushi/calipers/scenario"
	"github.com/pkg/errors"
)

type Vector = geom.Vector
type Polygon = geom.Polygon
type Pair = rotating.Pair

// Take a set of points and return their convex hull, counterclockwise from the
// lowest point. Points on the hull's edges are kept.
func ConvexHull(points ...Vector) (hull Polygon, err error) {
	defer func() {
		if recoveredErr := geom.HandlePanicRecover(recover()); recoveredErr != nil {
			hull = Polygon{}
			err = recoveredErr
		}
	}()
	return geom.ConvexHull(points)
}

// Every antipodal pair of a convex counterclockwise polygon, in the order the
// calipers meet them. Vertices in the middle of straight edges are skipped, so
// the pairs index a copy of poly without them; use Pair.P.Polygon() to get it.
func AntipodalPairs(poly Polygon) (pairs []Pair, err error) {
	defer func() {
		if recoveredErr := geom.HandlePanicRecover(recover()); recoveredErr != nil {
			pairs = nil
			err = recoveredErr
		}
	}()
	strict := poly.StrictlyConvex()
	walk, err := rotating.NewWalk(&strict)
	if err != nil {
		return nil, err
	}
	return walk.Collect(), nil
}

// The pair of vertices farthest apart, with the same conditions as
// AntipodalPairs.
func Diameter(poly Polygon) (Pair, error) {
	pairs, err := AntipodalPairs(poly)
	if err != nil {
		return Pair{}, err
	}
	pair, ok := rotating.Farthest(pairs)
	if !ok {
		return Pair{}, errors.Errorf("no antipodal pairs in %v", poly)
	}
	return pair, nil
}

// Run a scenario. See scenario.Run.
func Run(ctx context.Context, variant scenario.Variant, sc scenario.Context, opts ...rotating.Option) (result *scenario.Result, err error) {
	defer func() {
		if recoveredErr := geom.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return scenario.Run(ctx, variant, sc, opts...)
}
