// Package rotating walks a convex polygon with rotating calipers, enumerating
// its antipodal vertex pairs.
//
// Two cursors, p and q, move around the polygon in the same direction. For
// every edge (p, p.next()), q is pushed forward until it reaches the vertex
// farthest from the line through that edge. Each position q passes through on
// the way is antipodal to p, and the farthest pair of vertices (the diameter)
// is always among them.
//
// The walk is a generator. It produces a lazy sequence of events, with a step
// event before every cursor move, and does nothing between calls. A driver can
// pace it however it likes, or just drop it to cancel; there is nothing to
// clean up beyond calling Stop.
package rotating

import (
	"fmt"
	"iter"

	"github.com/osuushi/calipers/dbg"
	"github.com/osuushi/calipers/geom"
)

// Mode selects when a walk ends.
type Mode int

const (
	// Stop once p has gone all the way around the polygon. This is the default.
	Finite Mode = iota
	// Never stop. The calipers keep going round until the consumer stops
	// asking for events.
	FreeRun
)

func (m Mode) String() string {
	switch m {
	case Finite:
		return "Finite"
	case FreeRun:
		return "FreeRun"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type Option func(*Walk)

func WithMode(mode Mode) Option {
	return func(w *Walk) {
		w.mode = mode
	}
}

// Walk is a single pass of the calipers over one polygon. It can only be
// consumed once; to start over, make a new Walk.
type Walk struct {
	polygon *geom.Polygon
	mode    Mode

	// Current cursors
	p, q geom.Vertex
	// The first antipodal pair, once found
	p0, q0 geom.Vertex

	started bool
	next    func() (Event, bool)
	stop    func()
}

// NewWalk prepares a walk over poly. The polygon must be strictly convex and
// counterclockwise, which is checked up front; anything else is an
// *InvalidPolygonError. The walk borrows poly, so the caller must not modify
// its vertices until the walk is finished.
func NewWalk(poly *geom.Polygon, opts ...Option) (*Walk, error) {
	if err := poly.ValidateStrict(); err != nil {
		return nil, err
	}
	w := &Walk{polygon: poly}
	for _, opt := range opts {
		opt(w)
	}
	w.p = poly.Vertex(0)
	w.q = w.p.Next()
	return w, nil
}

func (w *Walk) Polygon() *geom.Polygon {
	return w.polygon
}

func (w *Walk) Mode() Mode {
	return w.mode
}

// P and Q are the current cursors.
func (w *Walk) P() geom.Vertex {
	return w.p
}

func (w *Walk) Q() geom.Vertex {
	return w.q
}

// Next resumes the walk until its next event. ok is false once the walk is
// over.
func (w *Walk) Next() (event Event, ok bool) {
	if !w.started {
		w.started = true
		w.next, w.stop = iter.Pull(iter.Seq[Event](w.run))
	}
	if w.next == nil {
		return Event{}, false
	}
	event, ok = w.next()
	if !ok {
		w.Stop()
	}
	return event, ok
}

// Stop abandons the walk. It is safe to call at any time, and more than once.
func (w *Walk) Stop() {
	w.started = true
	if w.stop != nil {
		w.stop()
	}
	w.next = nil
	w.stop = nil
}

// Events returns the remaining events as a sequence. Breaking out of the
// loop stops the walk.
func (w *Walk) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			event, ok := w.Next()
			if !ok {
				return
			}
			if !yield(event) {
				w.Stop()
				return
			}
		}
	}
}

// Pairs returns the remaining antipodal pairs, skipping every other event.
func (w *Walk) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for event := range w.Events() {
			if event.Kind == PairFound && !yield(event.Pair) {
				return
			}
		}
	}
}

// SupportingPairs is Pairs without the pairs whose q is not yet the vertex
// farthest from p's edge. Every pair it yields has q at a local maximum of
// area(p, p.next(), q).
func (w *Walk) SupportingPairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for pair := range w.Pairs() {
			if pair.Supporting && !yield(pair) {
				return
			}
		}
	}
}

// Collect runs a finite walk to the end and returns every pair. Pairs found
// right after p moves may still be on their way to the farthest vertex; their
// Supporting flag is false.
func (w *Walk) Collect() []Pair {
	if w.mode == FreeRun {
		panic("cannot collect a free running walk")
	}
	var pairs []Pair
	for pair := range w.Pairs() {
		pairs = append(pairs, pair)
	}
	return pairs
}

func (w *Walk) String() string {
	return fmt.Sprintf("Walk %s <p: %v, q: %v, %v>", dbg.Name(w), w.p, w.q, w.mode)
}

// Is q.next() strictly farther than q from the line through p's edge?
func farther(p, q geom.Vertex) bool {
	pNext := p.Next().Position()
	return geom.Area(p.Position(), pNext, q.Next().Position()) > geom.Area(p.Position(), pNext, q.Position())
}

func (w *Walk) qShouldAdvance() bool {
	return farther(w.p, w.q)
}

// Are q and q.next() equally far from the line through p's edge?
func (w *Walk) parallel() bool {
	pNext := w.p.Next().Position()
	p := w.p.Position()
	return geom.Area(p, pNext, w.q.Next().Position()) == geom.Area(p, pNext, w.q.Position())
}

func (w *Walk) step(kind Kind, anchor Anchor) Event {
	return Event{Kind: kind, P: w.p, Q: w.q, Anchor: anchor}
}

func (w *Walk) found(pair Pair) Event {
	return Event{Kind: PairFound, P: w.p, Q: w.q, Pair: pair}
}

func (w *Walk) pair(source Source) Pair {
	return newPair(w.p, w.q, source)
}

func newPair(p, q geom.Vertex, source Source) Pair {
	return Pair{P: p, Q: q, Source: source, Supporting: !farther(p, q)}
}

// The walk itself. Every yield is a point where the consumer may walk away.
func (w *Walk) run(yield func(Event) bool) {
	// Search for the first antipodal pair: the vertex farthest from the edge
	// (p, p.next()). The distance only grows until the farthest vertex, so this
	// always stops within one trip around.
	for w.qShouldAdvance() {
		if !yield(w.step(SearchStep, AnchorP)) {
			return
		}
		w.q = w.q.Next()
	}

	// Remember the initial antipodal pair, so we know when we are done
	w.p0, w.q0 = w.p, w.q
	if !yield(w.found(w.pair(Initial))) {
		return
	}

	// Let the calipers do their magic
	for {
		if !yield(w.step(AdvancePStep, AnchorP)) {
			return
		}
		w.p = w.p.Next()
		if !yield(w.found(w.pair(AfterP))) {
			return
		}

		for w.qShouldAdvance() {
			if !yield(w.step(AdvanceQStep, AnchorQ)) {
				return
			}
			w.q = w.q.Next()
			if !yield(w.found(w.pair(AfterQ))) {
				return
			}
		}

		if w.parallel() {
			// Both q and q.next() touch the far caliper. Pair p with q.next()
			// unless that would run into the starting pair, in which case the
			// other end of the parallel edge at p takes its place.
			extra := newPair(w.p, w.q.Next(), Parallel)
			if w.p.Is(w.q0) || w.q.Is(w.p0) {
				extra = newPair(w.p.Next(), w.q, Parallel)
			}
			if !yield(w.found(extra)) {
				return
			}
			if !yield(w.step(ParallelStep, AnchorP)) {
				return
			}
		} else if !yield(w.step(NoParallel, AnchorP)) {
			return
		}

		// p's edge now leads back to the first vertex, so every edge has had its
		// turn.
		if w.mode == Finite && w.p.Next().Is(w.p0) {
			yield(w.step(Done, AnchorP))
			return
		}
	}
}
