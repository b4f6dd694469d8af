package merge

import (
	"context"

	"github.com/ib-77/apval/pkg/apval"
	"github.com/ib-77/apval/pkg/apval/nonempty"
)

// NonEmpty merges two outcomes whose failure side is a non-empty error
// list. When both sides fail, left errors precede right errors in the
// merged failure. A single-sided failure passes through with payload,
// id and creation time intact. combine runs only when both sides
// succeed, left value first.
func NonEmpty[D, A, B, C any](ctx context.Context,
	combine func(ctx context.Context, a A, b B) C,
	left apval.Outcome[nonempty.List[D], A],
	right apval.Outcome[nonempty.List[D], B]) apval.Outcome[nonempty.List[D], C] {

	if left.IsFailure() {
		if right.IsFailure() {
			return apval.Failure[nonempty.List[D], C](left.Errs().Concat(right.Errs()))
		}
		return apval.FailureFrom[nonempty.List[D], A, C](left)
	}

	if right.IsFailure() {
		return apval.FailureFrom[nonempty.List[D], B, C](right)
	}

	return apval.Success[nonempty.List[D]](combine(ctx, left.Value(), right.Value()))
}

// General is NonEmpty for outcomes whose failure side is any
// slice-shaped container. No non-emptiness is assumed: an empty failure
// is concatenated and propagated as-is.
func General[S ~[]D, D, A, B, C any](ctx context.Context,
	combine func(ctx context.Context, a A, b B) C,
	left apval.Outcome[S, A],
	right apval.Outcome[S, B]) apval.Outcome[S, C] {

	if left.IsFailure() {
		if right.IsFailure() {
			return apval.Failure[S, C](concat(left.Errs(), right.Errs()))
		}
		return apval.FailureFrom[S, A, C](left)
	}

	if right.IsFailure() {
		return apval.FailureFrom[S, B, C](right)
	}

	return apval.Success[S](combine(ctx, left.Value(), right.Value()))
}

// AllNonEmpty folds NonEmpty left to right over same-typed outcomes,
// accumulating every failure on the way.
func AllNonEmpty[D, V any](ctx context.Context,
	combine func(ctx context.Context, acc V, next V) V,
	first apval.Outcome[nonempty.List[D], V],
	rest ...apval.Outcome[nonempty.List[D], V]) apval.Outcome[nonempty.List[D], V] {

	out := first
	for _, r := range rest {
		out = NonEmpty(ctx, combine, out, r)
	}
	return out
}

// All folds General left to right over same-typed outcomes.
func All[S ~[]D, D, V any](ctx context.Context,
	combine func(ctx context.Context, acc V, next V) V,
	first apval.Outcome[S, V],
	rest ...apval.Outcome[S, V]) apval.Outcome[S, V] {

	out := first
	for _, r := range rest {
		out = General(ctx, combine, out, r)
	}
	return out
}

// concat allocates a fresh sequence; the result never aliases either
// input.
func concat[S ~[]D, D any](a, b S) S {
	out := make(S, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
