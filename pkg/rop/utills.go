package rop

import "fmt"

// Message turns anything a failing call produced into text. Errors give their Error()
// message; every other value is formatted with fmt.Sprint. A nil pointer error prints
// <nil> and an Error method that panics is reported by fmt instead of panicking again.
func Message(v any) string {
	return fmt.Sprint(v)
}
