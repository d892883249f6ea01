package chain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ok-11/adt3/pkg/adt"
)

// Chain wraps an adt.Result with context to enable fluent chaining. Every
// chain carries an identity and a creation timestamp (UTC) for tracing.
type Chain[T any] struct {
	ctx       context.Context
	id        uuid.UUID
	createdAt time.Time
	res       adt.Result[T, error]
}

// Start creates a new chain from an adt.Result.
func Start[T any](ctx context.Context, r adt.Result[T, error]) Chain[T] {
	return Chain[T]{
		ctx:       ctx,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
	}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, adt.Success[T, error](value))
}

// FromError creates a new chain from an error.
func FromError[T any](ctx context.Context, err error) Chain[T] {
	return Start(ctx, adt.Fail[T](err))
}

// Result returns the underlying adt.Result.
func (c Chain[T]) Result() adt.Result[T, error] {
	return c.res
}

// Id returns the chain identity.
func (c Chain[T]) Id() uuid.UUID {
	return c.id
}

// CreatedAt returns the chain creation time (UTC).
func (c Chain[T]) CreatedAt() time.Time {
	return c.createdAt
}

// next keeps identity and timestamp while replacing the result.
func (c Chain[T]) next(r adt.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: c.ctx, id: c.id, createdAt: c.createdAt, res: r}
}

// live reports whether the chain should keep invoking user steps. A
// cancelled context turns the chain into a failure carrying ctx.Err().
func (c Chain[T]) live() (Chain[T], bool) {
	if c.res.IsFailure() {
		return c, false
	}
	if err := c.ctx.Err(); err != nil {
		return c.next(adt.Fail[T](err)), false
	}
	return c, true
}

// Then composes a function that already returns an adt.Result.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) adt.Result[T, error]) Chain[T] {
	c, ok := c.live()
	if !ok {
		return c
	}
	return c.next(onSuccess(c.ctx, c.res.Value()))
}

// ThenTry composes a function that returns (T, error), like repo calls.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	c, ok := c.live()
	if !ok {
		return c
	}
	return c.next(adt.Pack(try(c.ctx, c.res.Value())))
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	c, ok := c.live()
	if !ok {
		return c
	}
	return c.next(adt.Success[T, error](onSuccess(c.ctx, c.res.Value())))
}

// RepeatUntil applies onSuccess repeatedly until the chain fails or the
// until predicate is no longer satisfied.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) adt.Result[T, error],
	until func(ctx context.Context, t T) bool) Chain[T] {

	c, ok := c.live()
	if !ok {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// While applies onSuccess as long as the chain succeeds and the while
// predicate holds.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) adt.Result[T, error],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for !c.res.IsFailure() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the chain itself when successful, otherwise the alternative.
// When both have failed, the receiver's failure wins.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And returns the first failed chain of the two, or the required chain when
// both are successful.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the
// result.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value via handlers.
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onFailure(c.ctx, c.res.Err())
}
