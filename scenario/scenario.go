// Package scenario runs a calipers walk for an audience. A scenario drives a
// rotating.Walk, narrates it through a report sink, and pauses at every step
// until its context says to go on, handing over a description of what the
// current state looks like.
//
// There is one runner. The two variants walk the polygon in exactly the same
// way and differ only in what they draw and what they say at the end.
package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/osuushi/calipers/geom"
	"github.com/osuushi/calipers/render"
	"github.com/osuushi/calipers/report"
	"github.com/osuushi/calipers/rotating"
	"github.com/pkg/errors"
)

type Variant int

const (
	AntipodalPairs Variant = iota
	Diameter
)

// All lists the variants in the order a menu should show them.
var All = []Variant{AntipodalPairs, Diameter}

func (v Variant) String() string {
	switch v {
	case AntipodalPairs:
		return "AntipodalPairs"
	case Diameter:
		return "Diameter"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant accepts a variant name, case insensitively, plus the short
// forms "pairs" and "diameter".
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "antipodalpairs", "pairs":
		return AntipodalPairs, nil
	case "diameter":
		return Diameter, nil
	}
	return 0, errors.Errorf("unknown scenario %q", name)
}

// Context is everything a scenario needs from whoever is running it.
type Context interface {
	report.Reporter
	// The polygons to work on. Only the first one is walked.
	Polygons() []geom.Polygon
	// AwaitStep shows draw and blocks until the scenario may continue. An error
	// (typically the context's) abandons the run.
	AwaitStep(ctx context.Context, draw render.Func) error
}

type Result struct {
	Variant Variant
	// The polygon that was walked. Pair cursors point into it.
	Polygon *geom.Polygon
	Pairs   []rotating.Pair
	// The farthest pair seen. Only meaningful if HasDiameter is set.
	Diameter    rotating.Pair
	HasDiameter bool
	// How many times the scenario waited on AwaitStep
	Steps int
}

// Run plays variant over the first of sc's polygons until the walk ends, ctx
// is done, or AwaitStep fails. Options are passed to the walk; with
// rotating.FreeRun, only ctx or AwaitStep can end the run.
//
// Failures are reported to sc as errors before being returned.
func Run(ctx context.Context, variant Variant, sc Context, opts ...rotating.Option) (result *Result, err error) {
	result = &Result{Variant: variant}
	defer func() {
		if err != nil {
			sc.Report(err.Error(), report.Error)
		}
	}()

	polygons := sc.Polygons()
	if len(polygons) == 0 {
		return result, errors.WithStack(&geom.InvalidPolygonError{Reason: "no polygon to walk"})
	}
	poly := polygons[0]
	result.Polygon = &poly

	walk, err := rotating.NewWalk(&poly, opts...)
	if err != nil {
		return result, errors.Wrap(err, "cannot walk polygon")
	}
	defer walk.Stop()

	view := newView(variant, &poly)
	for {
		if err := ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}
		event, ok := walk.Next()
		if !ok {
			break
		}

		switch {
		case event.Kind.IsStep():
			if event.Kind == rotating.SearchStep {
				sc.Report("Searching q^-", report.Info)
			}
			result.Steps++
			if err := sc.AwaitStep(ctx, view.draw(event)); err != nil {
				return result, errors.Wrap(err, "waiting for step")
			}
		case event.Kind == rotating.PairFound:
			result.Pairs = append(result.Pairs, event.Pair)
			view.found(event)
			if event.Pair.Source == rotating.Initial {
				sc.Report(fmt.Sprintf("First antipodal pair %v", event.Pair), report.Success)
			} else {
				sc.Report(fmt.Sprintf("Found pair %v", event.Pair), report.Success)
			}
			if variant == Diameter && view.best == event.Pair {
				sc.Report(fmt.Sprintf("New diameter candidate %v, length %.4g", event.Pair, event.Pair.Distance()), report.Info)
			}
		case event.Kind == rotating.NoParallel:
			sc.Report("Skipping (outer loop)", report.Warning)
		case event.Kind == rotating.Done:
			sc.Report(fmt.Sprintf("Calipers went all the way around %d vertices, %d pairs", poly.Len(), len(result.Pairs)), report.Info)
		}
	}

	result.Diameter, result.HasDiameter = rotating.Farthest(result.Pairs)
	if variant == Diameter && result.HasDiameter {
		sc.Report(fmt.Sprintf("Diameter %v, length %.4g", result.Diameter, result.Diameter.Distance()), report.Success)
	}
	return result, nil
}
