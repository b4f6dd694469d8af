package flow

import (
	"context"

	"github.com/ib-77/apval/pkg/apval"
	"github.com/ib-77/apval/pkg/apval/merge"
	"github.com/ib-77/apval/pkg/apval/nonempty"
)

// Merging pairs two outcome streams element by element and pushes each
// pair through merge.General. The output closes when either input
// closes or ctx is done; an unpaired leftover on the longer stream is
// not emitted.
func Merging[S ~[]D, D, A, B, C any](ctx context.Context,
	lefts <-chan apval.Outcome[S, A],
	rights <-chan apval.Outcome[S, B],
	combine func(ctx context.Context, a A, b B) C) <-chan apval.Outcome[S, C] {

	out := make(chan apval.Outcome[S, C])

	go func() {
		defer close(out)

		for {
			var left apval.Outcome[S, A]

			select {
			case l, ok := <-lefts:
				if !ok {
					return
				}
				left = l
			case <-ctx.Done():
				return
			}

			var right apval.Outcome[S, B]

			select {
			case r, ok := <-rights:
				if !ok {
					return
				}
				right = r
			case <-ctx.Done():
				return
			}

			select {
			case out <- merge.General(ctx, combine, left, right):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// NonEmptyMerging is Merging over outcomes whose failure side is a
// nonempty.List.
func NonEmptyMerging[D, A, B, C any](ctx context.Context,
	lefts <-chan apval.Outcome[nonempty.List[D], A],
	rights <-chan apval.Outcome[nonempty.List[D], B],
	combine func(ctx context.Context, a A, b B) C) <-chan apval.Outcome[nonempty.List[D], C] {

	out := make(chan apval.Outcome[nonempty.List[D], C])

	go func() {
		defer close(out)

		for {
			var left apval.Outcome[nonempty.List[D], A]

			select {
			case l, ok := <-lefts:
				if !ok {
					return
				}
				left = l
			case <-ctx.Done():
				return
			}

			var right apval.Outcome[nonempty.List[D], B]

			select {
			case r, ok := <-rights:
				if !ok {
					return
				}
				right = r
			case <-ctx.Done():
				return
			}

			select {
			case out <- merge.NonEmpty(ctx, combine, left, right):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
