package stream

import (
	"context"
	"sync"
)

// InvalidationTracker records writes per table so that observing queries can
// re-run when a table they read from changes.
type InvalidationTracker struct {
	mu       sync.Mutex
	versions map[string]uint64
	changed  chan struct{}
}

func NewInvalidationTracker() *InvalidationTracker {
	return &InvalidationTracker{
		versions: make(map[string]uint64),
		changed:  make(chan struct{}),
	}
}

// Invalidate marks tables as modified and wakes observers.
func (t *InvalidationTracker) Invalidate(tables ...string) {
	if len(tables) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, table := range tables {
		t.versions[table]++
	}
	close(t.changed)
	t.changed = make(chan struct{})
}

func (t *InvalidationTracker) snapshot(tables []string) (uint64, <-chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var sum uint64
	for _, table := range tables {
		sum += t.versions[table]
	}
	return sum, t.changed
}

// Query returns a flow that runs query immediately and again after every
// invalidation of one of tables. Writes that land while a query is running
// trigger another run.
func Query[T any](t *InvalidationTracker, tables []string, query func(ctx context.Context) (T, error)) Flow[T] {
	return func(ctx context.Context, emit func(T) error) error {
		for {
			generation, changed := t.snapshot(tables)
			v, err := query(ctx)
			if err != nil {
				return err
			}
			if err := emit(v); err != nil {
				return err
			}
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-changed:
				}
				var next uint64
				next, changed = t.snapshot(tables)
				if next != generation {
					break
				}
			}
		}
	}
}
