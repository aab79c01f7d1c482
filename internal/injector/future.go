package injector

import (
	"context"
)

// Future resolves when a started write has finished and its completion was logged.
type Future struct {
	done chan struct{}
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve() {
	close(f.done)
}

// Done is closed when the write has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the write has finished or ctx is done.
// It only ever returns ctx's error.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
