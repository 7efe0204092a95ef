// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of rop.Response[T] values.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose response-returning or error-returning functions
// - RepeatUntil/While: loop a step while the chain stays successful
// - Or/And: pick between chains
// - Map: transform the value
// - Ensure: trigger side effects
// - Finally: reduce to a concrete value via handlers
//
// Tiny suits small services or tests where lightweight synchronous
// chaining improves readability.
package tiny
