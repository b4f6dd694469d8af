package apval

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Outcome is a two-variant value: either accumulated errors of type E
// or a successful value of type V. The zero value is neither; use
// Success or Failure.
type Outcome[E, V any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	errs      E
	isSuccess bool
}

func Success[E, V any](v V) Outcome[E, V] {
	return Outcome[E, V]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[E, V any](errs E) Outcome[E, V] {
	return Outcome[E, V]{
		errs:      errs,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom re-types a failure, keeping its error payload, id and
// creation time.
func FailureFrom[E, In, Out any](from Outcome[E, In]) Outcome[E, Out] {
	return Outcome[E, Out]{
		errs:      from.errs,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[E, V]) Value() V {
	return o.value
}

func (o Outcome[E, V]) Errs() E {
	return o.errs
}

func (o Outcome[E, V]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[E, V]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[E, V]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[E, V]) Id() uuid.UUID {
	return o.id
}

// Finally collapses an outcome to a concrete value via success/failure
// handlers.
func Finally[E, V, Out any](ctx context.Context, input Outcome[E, V],
	onSuccess func(ctx context.Context, v V) Out,
	onFailure func(ctx context.Context, errs E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Errs())
}
