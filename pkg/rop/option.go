package rop

// Option is a T that may be absent. Absent is nil; there is no other state.
type Option[T any] = *T

func Some[T any](v T) Option[T] {
	return &v
}

func None[T any]() Option[T] {
	return nil
}

func IsSome[T any](o Option[T]) bool {
	return o != nil
}

// OrElse returns the held value, or def when o is absent.
func OrElse[T any](o Option[T], def T) T {
	if o == nil {
		return def
	}
	return *o
}
