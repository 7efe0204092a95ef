package solo

import (
	"context"

	"github.com/ib-77/respond/pkg/rop"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Failure[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Response[T] {
	return AndValidate(ctx, rop.Ok(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Response[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Response[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return input
		} else {
			return rop.Err[T](errMsg)
		}
	}
	return input
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.Failure[Out](input.Err())
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Result()))
	}
	return rop.Failure[Out](input.Err())
}

// MapErr converts the error of a failure; successes pass through with the new error type.
func MapErr[T, In, Out any](ctx context.Context,
	input rop.Result[T, In],
	onFailure func(ctx context.Context, err In) Out) rop.Result[T, Out] {

	if input.IsFailure() {
		return rop.Failure[T](onFailure(ctx, input.Err()))
	}
	return rop.Success[T, Out](input.Result())
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err E)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onFailure(ctx, input.Err())
	}

	return input
}

// Try runs onTryExecute on a successful input. A returned error or a panic becomes a
// failure holding its message.
func Try[In, Out any](ctx context.Context, input rop.Response[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Response[Out] {

	if input.IsSuccess() {
		return rop.Wrap(onTryExecute)(ctx, input.Result())
	}
	return rop.Err[Out](input.Err())
}

func FailOnError[T any](ctx context.Context, input rop.Response[T],
	maybeErr func(ctx context.Context, in T) error) rop.Response[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Result())
		if err != nil {
			return rop.Err[T](rop.Message(err))
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}
