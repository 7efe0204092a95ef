// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E]. These functions form the building blocks for error-aware
// flows without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Validate/AndValidate: apply validation producing a message failure on invalid input
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/MapErr: transform the successful value or the error
// - Try: call a function (Out, error) and convert error or panic to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
