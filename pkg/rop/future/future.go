// Package future provides Future, a deferred computation that settles exactly once with
// either a value or an error. Unlike a channel, a settled Future can be read by any number
// of consumers, each receiving the same outcome.
package future

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrCanceled is the error reported when a future is completed by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// Func is the function signature required to create a Future via FromFunc
type Func[T any] func() (T, error)

// Future is a deferred computation.
// Complete, Fail and Cancel all settle it; the first one wins and later calls are ignored.
// Get blocks until the future settles or the context ends.
type Future[T any] struct {
	settled atomic.Bool
	done    chan struct{}

	value T
	err   error
}

// New creates an unsettled Future that must be settled by Complete, Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// FromFunc runs do on its own goroutine and settles the returned Future with its outcome.
// A panic inside do fails the future instead of crashing the process.
func FromFunc[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					f.Fail(err)
					return
				}
				f.Fail(fmt.Errorf("%v", r))
			}
		}()

		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Resolved returns a Future already completed with value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Rejected returns a Future already failed with err.
func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Complete settles the Future with value.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Cancel settles the Future with ErrCanceled.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail settles the Future with err.
func (f *Future[T]) Fail(err error) {
	f.settle(*new(T), err)
}

func (f *Future[T]) settle(val T, err error) {
	if f.settled.CompareAndSwap(false, true) {
		f.value = val
		f.err = err
		close(f.done)
	}
}

// Done is closed once the Future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get returns the outcome of the Future, waiting for it if needed. If ctx ends first the
// context error is returned and the Future itself is left untouched.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
