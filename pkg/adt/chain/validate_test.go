package chain

import (
	"context"
	"strings"
	"testing"

	"github.com/ok-11/adt3/pkg/adt"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	positive := func(ctx context.Context, v int) (bool, string) {
		if v > 0 {
			return true, ""
		}
		return false, "value should be positive"
	}

	if out := Validate(ctx, 5, positive); !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v", out.IsSuccess())
	}

	out := Validate(ctx, -1, positive)
	if !out.IsFailure() || out.Err().Error() != "value should be positive" {
		t.Fatalf("expected validation failure, got: failure=%v", out.IsFailure())
	}
}

func TestAndValidate_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	input := adt.Fail[int](context.Canceled)
	out := AndValidate(ctx, input, func(ctx context.Context, v int) (bool, string) {
		called = true
		return true, ""
	})

	if called {
		t.Fatalf("validator should not run on failed input")
	}
	if !out.IsFailure() {
		t.Fatalf("expected the failure to pass through")
	}
}

func TestValidateAll_CollectsErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ValidateAll(ctx, 7, false,
		func(ctx context.Context, v int) (bool, string) { return v%2 == 0, "value should be even" },
		func(ctx context.Context, v int) (bool, string) { return v > 10, "value should be above 10" },
		func(ctx context.Context, v int) (bool, string) { return v > 0, "value should be positive" })

	if !out.IsFailure() {
		t.Fatalf("expected failure")
	}

	errs := adt.GetErrors(out.Err())
	if len(errs) != 2 {
		t.Fatalf("expected 2 joined errors, got: %v", errs)
	}
	if !strings.Contains(out.Err().Error(), "even") || !strings.Contains(out.Err().Error(), "above 10") {
		t.Fatalf("joined error should mention both validators: %v", out.Err())
	}
}

func TestValidateAll_BreakOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	out := ValidateAll(ctx, 7, true,
		func(ctx context.Context, v int) (bool, string) { calls++; return false, "first" },
		func(ctx context.Context, v int) (bool, string) { calls++; return false, "second" })

	if calls != 1 {
		t.Fatalf("expected to stop after the first validator, ran %d", calls)
	}
	if errs := adt.GetErrors(out.Err()); len(errs) != 1 || errs[0].Error() != "first" {
		t.Fatalf("expected only the first error, got: %v", errs)
	}
}

func TestValidateAll_AllValid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ValidateAll(ctx, 8, true,
		func(ctx context.Context, v int) (bool, string) { return v%2 == 0, "even" },
		func(ctx context.Context, v int) (bool, string) { return v > 0, "positive" })

	if !out.IsSuccess() || out.Value() != 8 {
		t.Fatalf("expected success with 8, got: success=%v", out.IsSuccess())
	}
}

func TestChainValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 1).
		Validate(func(ctx context.Context, v int) (bool, string) { return v != 1, "value should not be 1" }).
		Result()

	if !out.IsFailure() || out.Err().Error() != "value should not be 1" {
		t.Fatalf("expected validation failure, got: failure=%v", out.IsFailure())
	}
}
