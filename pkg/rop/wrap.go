package rop

import (
	"context"
	"errors"

	"github.com/ib-77/respond/pkg/rop/future"
)

// ErrNilFuture is the failure reported when an async function hands back no future at all.
var ErrNilFuture = errors.New("nil future")

// Try calls do and turns its outcome into a Response. A returned error or a panic becomes
// a Failure holding the message; nothing escapes.
func Try[Out any](do func() (Out, error)) (res Response[Out]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[Out](Message(r))
		}
	}()

	out, err := do()
	if err != nil {
		return Err[Out](Message(err))
	}
	return Ok(out)
}

// Wrap0 returns fn as a function that cannot fail: it answers with a Response instead.
func Wrap0[Out any](fn func(ctx context.Context) (Out, error)) func(ctx context.Context) Response[Out] {
	return func(ctx context.Context) Response[Out] {
		return Try(func() (Out, error) { return fn(ctx) })
	}
}

// Wrap returns fn as a function that cannot fail: it answers with a Response instead.
func Wrap[In, Out any](fn func(ctx context.Context, in In) (Out, error)) func(ctx context.Context, in In) Response[Out] {
	return func(ctx context.Context, in In) Response[Out] {
		return Try(func() (Out, error) { return fn(ctx, in) })
	}
}

func Wrap2[In1, In2, Out any](fn func(ctx context.Context, in1 In1, in2 In2) (Out, error)) func(ctx context.Context, in1 In1, in2 In2) Response[Out] {
	return func(ctx context.Context, in1 In1, in2 In2) Response[Out] {
		return Try(func() (Out, error) { return fn(ctx, in1, in2) })
	}
}

// WrapAsync0 is the deferred counterpart of Wrap0.
func WrapAsync0[Out any](fn func(ctx context.Context) *future.Future[Out]) func(ctx context.Context) *future.Future[Response[Out]] {
	return func(ctx context.Context) *future.Future[Response[Out]] {
		return await(ctx, func() *future.Future[Out] { return fn(ctx) })
	}
}

// WrapAsync returns fn as a function whose future always completes, with a Response.
// fn is called right away; its future is then awaited with ctx on a separate goroutine.
// A panic in fn, a failed future or the end of ctx all become a Failure.
func WrapAsync[In, Out any](fn func(ctx context.Context, in In) *future.Future[Out]) func(ctx context.Context, in In) *future.Future[Response[Out]] {
	return func(ctx context.Context, in In) *future.Future[Response[Out]] {
		return await(ctx, func() *future.Future[Out] { return fn(ctx, in) })
	}
}

func WrapAsync2[In1, In2, Out any](fn func(ctx context.Context, in1 In1, in2 In2) *future.Future[Out]) func(ctx context.Context, in1 In1, in2 In2) *future.Future[Response[Out]] {
	return func(ctx context.Context, in1 In1, in2 In2) *future.Future[Response[Out]] {
		return await(ctx, func() *future.Future[Out] { return fn(ctx, in1, in2) })
	}
}

func await[Out any](ctx context.Context, start func() *future.Future[Out]) *future.Future[Response[Out]] {
	res := future.New[Response[Out]]()

	started := Try(func() (*future.Future[Out], error) {
		f := start()
		if f == nil {
			return nil, ErrNilFuture
		}
		return f, nil
	})
	if started.IsFailure() {
		res.Complete(Err[Out](started.Err()))
		return res
	}

	go func() {
		res.Complete(Try(func() (Out, error) { return started.Result().Get(ctx) }))
	}()

	return res
}
