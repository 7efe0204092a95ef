package types

import (
	"errors"
	"math"
	"reflect"
)

// Tag is the runtime category of a value.
type Tag int

const (
	Boolean Tag = iota
	Number
	String
	Object
	Function
)

func (t Tag) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Function:
		return "function"
	default:
		return "object"
	}
}

// Of returns the runtime tag of v. Nil, whether untyped or a typed nil reference,
// tags as Object.
func Of(v any) Tag {
	if IsNil(v) {
		return Object
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Number
	case reflect.String:
		return String
	case reflect.Func:
		return Function
	default:
		return Object
	}
}

func IsString(v any) bool {
	return Of(v) == String
}

// IsNumber reports whether v is numeric and finite. NaN and the infinities are not numbers.
func IsNumber(v any) bool {
	if Of(v) != Number {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return isFinite(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return isFinite(real(c)) && isFinite(imag(c))
	default:
		return true
	}
}

// IsObject reports whether v tags as Object. This includes nil: callers wanting a
// present value use IsNonNilObject.
func IsObject(v any) bool {
	return Of(v) == Object
}

func IsNonNilObject(v any) bool {
	return !IsNil(v) && IsObject(v)
}

// IsNil reports whether v is nil or a nil pointer, map, slice, channel, func or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsFunction reports whether v can be called.
func IsFunction(v any) bool {
	return Of(v) == Function
}

// Raise stops the current goroutine with a panic carrying message. It never returns.
func Raise(message string) {
	panic(errors.New(message))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
