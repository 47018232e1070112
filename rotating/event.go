package rotating

import (
	"fmt"

	"github.com/osuushi/calipers/geom"
)

// Kind classifies a walk event. Step kinds are suspension points: the walk is
// about to move a cursor, and a driver that animates the walk should show the
// current state and wait before asking for the next event. The remaining kinds
// report something that just happened.
type Kind int

const (
	// Step: q is about to move during the search for the first pair
	SearchStep Kind = iota
	// Step: p is about to move to its next vertex
	AdvancePStep
	// Step: q is about to move toward the vertex farthest from p's edge
	AdvanceQStep
	// Step: a parallel pair was just found, and p is about to move
	ParallelStep
	// A pair was found. Event.Pair holds it.
	PairFound
	// The edge at p has no parallel partner, so there is no extra pair
	NoParallel
	// p has gone all the way around. This is always the last event of a
	// finite walk.
	Done
)

var kindLabels = [...]string{
	"SearchStep", "AdvancePStep", "AdvanceQStep", "ParallelStep", "PairFound", "NoParallel", "Done",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindLabels[k]
}

func (k Kind) IsStep() bool {
	return k <= ParallelStep
}

// Anchor says which cursor's edge the calipers are drawn parallel to.
type Anchor int

const (
	AnchorP Anchor = iota
	AnchorQ
)

// Event is a snapshot of the walk. P and Q are the cursors at the time of the
// event; they are values, so holding on to an event is safe.
type Event struct {
	Kind Kind
	P, Q geom.Vertex
	// Set for PairFound
	Pair Pair
	// For step kinds, the edge the calipers are parallel to
	Anchor Anchor
}

// CaliperDirection is the unit direction of the calipers for this event:
// along the edge leaving P, or leaving Q, depending on the anchor.
func (e Event) CaliperDirection() geom.Vector {
	from := e.P
	if e.Anchor == AnchorQ {
		from = e.Q
	}
	dir := from.Next().Position().Sub(from.Position())
	if dir.Length() == 0 {
		return geom.Vector{}
	}
	return dir.Normalized()
}

func (e Event) String() string {
	if e.Kind == PairFound {
		return fmt.Sprintf("%v %v (%v)", e.Kind, e.Pair, e.Pair.Source)
	}
	return fmt.Sprintf("%v p=%v q=%v", e.Kind, e.P, e.Q)
}
