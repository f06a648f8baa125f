// Package stream provides context-driven reactive streams: cold Flows,
// replaying hot Signals, and table-invalidation driven queries.
package stream

import (
	"context"
	"errors"
)

// ErrEmpty is returned by First when a flow completes without emitting.
var ErrEmpty = errors.New("stream: flow completed without a value")

var errStop = errors.New("stream: stop collecting")

// Flow is a cold stream. Collecting it runs the producer, which calls emit for
// every value until it completes, fails, emit returns an error, or ctx ends.
// emit is never called concurrently.
type Flow[T any] func(ctx context.Context, emit func(T) error) error

// Collect runs the flow.
func (f Flow[T]) Collect(ctx context.Context, emit func(T) error) error {
	return f(ctx, emit)
}

// Of emits the given values and completes.
func Of[T any](values ...T) Flow[T] {
	return func(ctx context.Context, emit func(T) error) error {
		for _, v := range values {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Fail returns a flow that fails immediately with err.
func Fail[T any](err error) Flow[T] {
	return func(context.Context, func(T) error) error {
		return err
	}
}

func Map[T, R any](f Flow[T], transform func(T) R) Flow[R] {
	return func(ctx context.Context, emit func(R) error) error {
		return f(ctx, func(v T) error {
			return emit(transform(v))
		})
	}
}

// TryMap is Map with a fallible transform; an error terminates the flow.
func TryMap[T, R any](f Flow[T], transform func(T) (R, error)) Flow[R] {
	return func(ctx context.Context, emit func(R) error) error {
		return f(ctx, func(v T) error {
			r, err := transform(v)
			if err != nil {
				return err
			}
			return emit(r)
		})
	}
}

// DistinctUntilChanged drops values equal to the previously emitted one.
func DistinctUntilChanged[T any](f Flow[T], equal func(a, b T) bool) Flow[T] {
	return func(ctx context.Context, emit func(T) error) error {
		var last T
		has := false
		return f(ctx, func(v T) error {
			if has && equal(last, v) {
				return nil
			}
			last, has = v, true
			return emit(v)
		})
	}
}

// First collects the first value and stops the flow.
func First[T any](ctx context.Context, f Flow[T]) (T, error) {
	var out T
	found := false
	err := f(ctx, func(v T) error {
		out, found = v, true
		return errStop
	})
	if errors.Is(err, errStop) {
		return out, nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	if !found {
		var zero T
		return zero, ErrEmpty
	}
	return out, nil
}

// Take collects the first n values.
func Take[T any](ctx context.Context, f Flow[T], n int) ([]T, error) {
	out := make([]T, 0, n)
	if n <= 0 {
		return out, nil
	}
	err := f(ctx, func(v T) error {
		out = append(out, v)
		if len(out) == n {
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return out, err
	}
	return out, nil
}
