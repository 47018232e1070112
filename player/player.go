// Package player drives scenarios for a person watching. It paces the walk on
// a timer or on manual step signals, and renders every step to a canvas that
// can be saved as numbered frames or printed straight to the terminal.
package player

import (
	"context"
	"time"

	"github.com/osuushi/calipers/geom"
	"github.com/osuushi/calipers/render"
	"github.com/osuushi/calipers/report"
	"github.com/osuushi/calipers/rotating"
	"github.com/osuushi/calipers/scenario"
	"github.com/pkg/errors"
)

// Default canvas size, in pixels along the longer side
const DefaultSize = 480

// Time spanned by the frames of a step when there is no interval to follow
const defaultStepSeconds = 0.5

// ErrStepLimit ends a run that has used up Config.MaxSteps.
var ErrStepLimit = errors.New("step limit reached")

type Config struct {
	Polygons []geom.Polygon
	// Where the narration goes. Defaults to report.Discard.
	Reporter report.Reporter

	// Time to wait between steps. Zero means don't wait.
	Interval time.Duration
	// If set, each step waits for a value (or a close) on this channel
	// instead of the interval.
	Manual <-chan struct{}
	// Stop with ErrStepLimit after this many steps. Zero means no limit, which
	// a free running walk needs some other way out of.
	MaxSteps int

	// Frames rendered per step. Later frames see a larger DeltaSeconds, so
	// scenarios can animate within a step. Defaults to 1.
	FramesPerStep int
	// Canvas size. Defaults to DefaultSize.
	Size int
	// Optional frame sinks
	Frames   *render.FrameWriter
	Terminal *render.Terminal
}

// Player implements scenario.Context.
type Player struct {
	config   Config
	reporter report.Reporter
	canvas   *render.Canvas
	steps    int
}

func New(config Config) *Player {
	if config.Reporter == nil {
		config.Reporter = report.Discard
	}
	if config.FramesPerStep <= 0 {
		config.FramesPerStep = 1
	}
	if config.Size <= 0 {
		config.Size = DefaultSize
	}

	extent := geom.ExtentOf()
	for _, poly := range config.Polygons {
		extent = extent.MergeWith(poly.Extent())
	}

	return &Player{
		config:   config,
		reporter: config.Reporter,
		canvas:   render.FitCanvas(extent, config.Size),
	}
}

// Play runs a scenario with this player as its context.
func (p *Player) Play(ctx context.Context, variant scenario.Variant, opts ...rotating.Option) (*scenario.Result, error) {
	return scenario.Run(ctx, variant, p, opts...)
}

func (p *Player) Polygons() []geom.Polygon {
	return p.config.Polygons
}

func (p *Player) Report(message string, severity report.Severity) {
	p.reporter.Report(message, severity)
}

// Canvas holds the last frame rendered.
func (p *Player) Canvas() *render.Canvas {
	return p.canvas
}

// Steps counts the steps shown so far.
func (p *Player) Steps() int {
	return p.steps
}

func (p *Player) AwaitStep(ctx context.Context, draw render.Func) error {
	if p.config.MaxSteps > 0 && p.steps >= p.config.MaxSteps {
		return errors.WithStack(ErrStepLimit)
	}
	p.steps++

	if err := p.renderStep(draw); err != nil {
		return err
	}
	return p.wait(ctx)
}

func (p *Player) renderStep(draw render.Func) error {
	span := defaultStepSeconds
	if p.config.Interval > 0 {
		span = p.config.Interval.Seconds()
	}
	frames := p.config.FramesPerStep
	for i := 0; i < frames; i++ {
		delta := 0.0
		if frames > 1 {
			delta = span * float64(i) / float64(frames-1)
		}
		p.canvas.Render(draw, delta)
		if p.config.Frames != nil {
			if _, err := p.config.Frames.Write(p.canvas); err != nil {
				return err
			}
		}
	}

	// The terminal only gets the settled frame; scrolling through every
	// in-between frame is not much of an animation.
	if p.config.Terminal != nil {
		if err := p.config.Terminal.Show(p.canvas); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) wait(ctx context.Context) error {
	switch {
	case p.config.Manual != nil:
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-p.config.Manual:
			return nil
		}
	case p.config.Interval > 0:
		timer := time.NewTimer(p.config.Interval)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-timer.C:
			return nil
		}
	}
	return errors.WithStack(ctx.Err())
}
