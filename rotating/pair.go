package rotating

import (
	"fmt"

	"github.com/osuushi/calipers/geom"
)

// Source records which part of the walk produced a pair.
type Source int

const (
	// The first pair, found by searching from p.next() before the walk starts
	Initial Source = iota
	// Emitted right after p moves on to its next vertex
	AfterP
	// Emitted after q moves toward the vertex farthest from the new edge
	AfterQ
	// The extra pair contributed when q and q.next() are equally far from the
	// edge at p, which means the polygon has a pair of parallel edges
	Parallel
)

var sourceLabels = [...]string{"Initial", "AfterP", "AfterQ", "Parallel"}

func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceLabels) {
		return fmt.Sprintf("Source(%d)", int(s))
	}
	return sourceLabels[s]
}

// Pair is an antipodal pair of vertices.
type Pair struct {
	P, Q   geom.Vertex
	Source Source
	// Supporting is set when Q is the farthest vertex from the edge starting at
	// P, so that lines through P and Q parallel to that edge both support the
	// polygon.
	Supporting bool
}

func (p Pair) Indices() [2]int {
	return [2]int{p.P.Index(), p.Q.Index()}
}

func (p Pair) Distance() float64 {
	return p.Q.Position().Sub(p.P.Position()).Length()
}

// SameVertices reports whether both pairs join the same two vertices, in
// either order.
func (p Pair) SameVertices(other Pair) bool {
	return (p.P.Is(other.P) && p.Q.Is(other.Q)) || (p.P.Is(other.Q) && p.Q.Is(other.P))
}

func (p Pair) String() string {
	return fmt.Sprintf("%v and %v", p.P, p.Q)
}

// Farthest returns the pair with the greatest distance. The first of several
// equally distant pairs wins. ok is false if there are no pairs.
func Farthest(pairs []Pair) (best Pair, ok bool) {
	for _, pair := range pairs {
		if !ok || pair.Distance() > best.Distance() {
			best = pair
			ok = true
		}
	}
	return best, ok
}

// ChainToFarthest lists the vertices q will pass through for the edge leaving
// p: q itself, then each following vertex while the distance from the edge's
// line keeps growing. The last element is the farthest vertex.
func ChainToFarthest(p, q geom.Vertex) []geom.Vertex {
	chain := []geom.Vertex{q}
	for i := 0; farther(p, q) && i < p.Polygon().Len(); i++ {
		q = q.Next()
		chain = append(chain, q)
	}
	return chain
}
