package apval

import (
	"context"
	"errors"
	"testing"
)

func TestSuccess_Accessors(t *testing.T) {
	t.Parallel()
	o := Success[[]error](5)

	if !o.IsSuccess() || o.IsFailure() || o.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v", o.IsSuccess(), o.Value())
	}
	if o.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestFailure_Accessors(t *testing.T) {
	t.Parallel()
	e := errors.New("boom")
	o := Failure[[]error, int]([]error{e})

	if o.IsSuccess() || !o.IsFailure() {
		t.Fatalf("expected failure, got success")
	}
	if len(o.Errs()) != 1 || o.Errs()[0] != e {
		t.Fatalf("expected errs [boom], got: %v", o.Errs())
	}
}

func TestFailureFrom_PreservesPayloadAndIdentity(t *testing.T) {
	t.Parallel()
	e := errors.New("boom")
	from := Failure[[]error, int]([]error{e})

	to := FailureFrom[[]error, int, string](from)

	if to.IsSuccess() {
		t.Fatalf("expected failure after re-typing")
	}
	if len(to.Errs()) != 1 || to.Errs()[0] != e {
		t.Fatalf("expected payload preserved, got: %v", to.Errs())
	}
	if to.Id() != from.Id() {
		t.Fatalf("expected id preserved: %v != %v", to.Id(), from.Id())
	}
	if !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("expected createdAt preserved")
	}
}

func TestFinally_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Finally(ctx, Success[[]error](3),
		func(ctx context.Context, v int) int { return v + 100 },
		func(ctx context.Context, errs []error) int { return -1 },
	)
	if s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}

	f := Finally(ctx, Failure[[]error, int]([]error{errors.New("x")}),
		func(ctx context.Context, v int) int { return v },
		func(ctx context.Context, errs []error) int { return -len(errs) },
	)
	if f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
}

func TestErrors_Unwrap(t *testing.T) {
	t.Parallel()

	if got := Errors(nil); len(got) != 0 {
		t.Fatalf("expected no errors for nil, got: %v", got)
	}

	e1 := errors.New("one")
	if got := Errors(e1); len(got) != 1 || got[0] != e1 {
		t.Fatalf("expected [one], got: %v", got)
	}

	e2 := errors.New("two")
	got := Errors(errors.Join(e1, e2))
	if len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Fatalf("expected joined errors unwrapped in order, got: %v", got)
	}
}
