package tiny

import (
	"context"

	"github.com/ib-77/respond/pkg/rop"
	"github.com/ib-77/respond/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Response[T]
}

func Start[T any](ctx context.Context, r rop.Response[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Ok(v))
}

func (c Chain[T]) Result() rop.Response[T] {
	return c.res
}

// Then composes functions that already return rop.Response[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Response[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Response[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Result()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Response[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for !c.res.IsFailure() && while(c.ctx, c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain, or the first failure when none succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	for _, ch := range append([]Chain[T]{c}, alternatives...) {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// ThenTry composes functions that return (T, error), like repo calls.
// Errors and panics become failures holding their message.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, string)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Result())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, string) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
