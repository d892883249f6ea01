package chain

import (
	"context"
	"errors"

	"github.com/ok-11/adt3/pkg/adt"
)

// Validate checks the input with the given predicate and returns a success
// carrying the input, or a failure with the predicate's message.
func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) adt.Result[T, error] {

	return AndValidate(ctx, adt.Success[T, error](input), validate)
}

// AndValidate applies the predicate to an already-built result. Failures
// pass through unchanged.
func AndValidate[T any](ctx context.Context, input adt.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) adt.Result[T, error] {

	if input.IsSuccess() {
		if valid, errMsg := validate(ctx, input.Value()); valid {
			return adt.Success[T, error](input.Value())
		} else {
			return adt.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator over the input. With breakOnError set it
// stops at the first failed validator, otherwise it keeps going and joins
// all collected errors into one failure.
func ValidateAll[T any](ctx context.Context, input T, breakOnError bool,
	validators ...func(ctx context.Context, in T) (valid bool, errMsg string)) adt.Result[T, error] {

	var errs []error
	for _, validate := range validators {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if valid, errMsg := validate(ctx, input); !valid {
			errs = append(errs, errors.New(errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(errs) > 0 {
		return adt.Fail[T](errors.Join(errs...))
	}
	return adt.Success[T, error](input)
}

// Validate applies the predicate to the chain's current value.
func (c Chain[T]) Validate(validate func(ctx context.Context, in T) (valid bool, errMsg string)) Chain[T] {
	c, ok := c.live()
	if !ok {
		return c
	}
	return c.next(AndValidate(c.ctx, c.res, validate))
}
