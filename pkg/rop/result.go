package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is either a successful value of type T or a failure carrying an error of type E.
// The variant is decided by a tag, never by the value itself: a Success holding nil is
// still a Success.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isFailure bool
}

// Response is a Result whose error is a plain message.
type Response[T any] = Result[T, string]

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isFailure: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isFailure: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Ok is Success with a message error type.
func Ok[T any](r T) Response[T] {
	return Success[T, string](r)
}

// Err is Failure with a message error type.
func Err[T any](msg string) Response[T] {
	return Failure[T](msg)
}

// IsFailure reports whether r is the Failure variant.
func IsFailure[T, E any](r Result[T, E]) bool {
	return r.IsFailure()
}

// Result returns the successful value, or the zero T for a failure.
func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

// Get returns the value, the error and whether r is a Success.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.result, r.err, !r.isFailure
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.isFailure
}

func (r Result[T, E]) IsFailure() bool {
	return r.isFailure
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports whether r is the zero Result, i.e. built by neither Success nor Failure.
// An empty Result reads as a Success of the zero value.
func (r Result[T, E]) IsEmpty() bool {
	return r.id == uuid.Nil
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) String() string {
	if r.isFailure {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.result)
}
