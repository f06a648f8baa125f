package stream

import "context"

// CombineLatest emits combine(a, b) whenever either flow emits, once both have
// emitted at least once. It completes when both flows complete and fails as
// soon as either fails.
func CombineLatest[A, B, R any](fa Flow[A], fb Flow[B], combine func(A, B) R) Flow[R] {
	return func(ctx context.Context, emit func(R) error) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		type update struct {
			a   A
			b   B
			isA bool
		}
		updates := make(chan update)
		done := make(chan error, 2)

		go func() {
			done <- fa(ctx, func(v A) error {
				select {
				case updates <- update{a: v, isA: true}:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
		}()
		go func() {
			done <- fb(ctx, func(v B) error {
				select {
				case updates <- update{b: v}:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
		}()

		var (
			latestA    A
			latestB    B
			hasA, hasB bool
		)
		for finished := 0; finished < 2; {
			select {
			case u := <-updates:
				if u.isA {
					latestA, hasA = u.a, true
				} else {
					latestB, hasB = u.b, true
				}
				if hasA && hasB {
					if err := emit(combine(latestA, latestB)); err != nil {
						return err
					}
				}
			case err := <-done:
				if err != nil {
					return err
				}
				finished++
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}
}

// FlatMapLatest maps every upstream value to an inner flow and mirrors the
// most recent one, cancelling the previous inner flow on each new value.
func FlatMapLatest[T, R any](upstream Flow[T], transform func(T) Flow[R]) Flow[R] {
	return func(ctx context.Context, emit func(R) error) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		type item struct {
			gen int
			v   R
		}
		outer := make(chan T)
		outerDone := make(chan error, 1)
		results := make(chan item)

		go func() {
			outerDone <- upstream(ctx, func(v T) error {
				select {
				case outer <- v:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
		}()

		var (
			gen         int
			innerCancel context.CancelFunc = func() {}
			innerDone   chan error
			upstreamEnd = outerDone
		)
		defer func() { innerCancel() }()

		for upstreamEnd != nil || innerDone != nil {
			select {
			case v := <-outer:
				innerCancel()
				gen++
				innerCtx, c := context.WithCancel(ctx)
				innerCancel = c
				current, inner := gen, transform(v)
				finished := make(chan error, 1)
				innerDone = finished
				go func() {
					finished <- inner(innerCtx, func(r R) error {
						select {
						case results <- item{gen: current, v: r}:
							return nil
						case <-innerCtx.Done():
							return innerCtx.Err()
						}
					})
				}()
			case it := <-results:
				if it.gen != gen {
					continue
				}
				if err := emit(it.v); err != nil {
					return err
				}
			case err := <-upstreamEnd:
				if err != nil {
					return err
				}
				upstreamEnd = nil
			case err := <-innerDone:
				if err != nil {
					return err
				}
				innerDone = nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}
}
