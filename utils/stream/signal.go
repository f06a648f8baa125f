package stream

import (
	"context"
	"sync"
)

// Signal is a hot value holder that replays its latest value to every new
// collector and then emits each subsequent value. Slow collectors observe the
// most recent value only; intermediate values may be skipped.
type Signal[T any] struct {
	mu      sync.Mutex
	value   T
	has     bool
	version uint64
	changed chan struct{}
}

// NewSignal returns a Signal without a value. Collectors wait for the first Set.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{changed: make(chan struct{})}
}

// NewSignalWith returns a Signal holding initial.
func NewSignalWith[T any](initial T) *Signal[T] {
	s := NewSignal[T]()
	s.Set(initial)
	return s
}

// Set stores v and wakes every collector.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.has = true
	s.version++
	close(s.changed)
	s.changed = make(chan struct{})
}

// Value returns the current value and whether one was ever set.
func (s *Signal[T]) Value() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.has
}

func (s *Signal[T]) snapshot() (T, bool, uint64, <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.has, s.version, s.changed
}

// Flow returns a never-completing flow of the signal's values.
func (s *Signal[T]) Flow() Flow[T] {
	return func(ctx context.Context, emit func(T) error) error {
		var seen uint64
		for {
			v, has, version, changed := s.snapshot()
			if has && version != seen {
				seen = version
				if err := emit(v); err != nil {
					return err
				}
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-changed:
			}
		}
	}
}
