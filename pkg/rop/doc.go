// Package rop holds Result, a value that is either a Success or a Failure, and the
// adapters that move a fallible call onto it.
//
// Highlights:
// - Success/Failure: construct Result[T, E]; Ok/Err do the same for Response[T] (string errors)
// - IsFailure: tell the two variants apart
// - Try/Wrap/Wrap0/Wrap2: call a (value, error) function and never let an error or panic out
// - WrapAsync/WrapAsync0/WrapAsync2: the same for functions returning a future.Future
// - Option: a value that may be absent
//
// Errors are reduced to their message at the wrap boundary. Callers that need a typed
// error build their results with Failure directly.
package rop
