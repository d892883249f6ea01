package chain

import (
	"context"

	"github.com/ok-11/adt3/pkg/adt"
)

// SwitchTo composes a function that switches the chain to a new value type.
// Go methods cannot introduce type parameters, so type-changing steps are
// package-level functions.
func SwitchTo[In, Out any](c Chain[In],
	onSuccess func(ctx context.Context, t In) adt.Result[Out, error]) Chain[Out] {

	c, ok := c.live()
	if !ok {
		return carry[In, Out](c)
	}
	return Chain[Out]{
		ctx:       c.ctx,
		id:        c.id,
		createdAt: c.createdAt,
		res:       onSuccess(c.ctx, c.res.Value()),
	}
}

// MapTo transforms the successful value to a value of a new type.
func MapTo[In, Out any](c Chain[In],
	onSuccess func(ctx context.Context, t In) Out) Chain[Out] {

	return SwitchTo(c, func(ctx context.Context, t In) adt.Result[Out, error] {
		return adt.Success[Out, error](onSuccess(ctx, t))
	})
}

// TryTo composes a function that returns (Out, error), switching the value
// type.
func TryTo[In, Out any](c Chain[In],
	try func(ctx context.Context, t In) (Out, error)) Chain[Out] {

	return SwitchTo(c, func(ctx context.Context, t In) adt.Result[Out, error] {
		return adt.Pack(try(ctx, t))
	})
}

// FinallyTo collapses the chain to a final value of a new type via handlers.
func FinallyTo[In, Out any](c Chain[In],
	onSuccess func(context.Context, In) Out,
	onFailure func(context.Context, error) Out) Out {

	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onFailure(c.ctx, c.res.Err())
}

// carry propagates a failed chain's error and identity to a chain of a new
// value type.
func carry[In, Out any](c Chain[In]) Chain[Out] {
	return Chain[Out]{
		ctx:       c.ctx,
		id:        c.id,
		createdAt: c.createdAt,
		res:       adt.Fail[Out](c.res.Err()),
	}
}
