package player

import (
	"bufio"
	"context"
	"io"
)

// StepsFromLines turns every line read from r into a manual step signal. The
// channel is closed when r runs out, which lets the rest of the walk play
// through, or when ctx is done.
//
// The reading goroutine can only notice ctx between lines, so it outlives a
// cancelled run until the next line or EOF.
func StepsFromLines(ctx context.Context, r io.Reader) <-chan struct{} {
	steps := make(chan struct{})
	go func() {
		defer close(steps)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case steps <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return steps
}
