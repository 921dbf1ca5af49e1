package helper

import (
	"fmt"
	"reflect"
)

// TypedValueOf asserts v to the expected type T.
// A nil v yields T's zero value when T is an interface or pointer type: that
// is what a nil value of such a T looks like once it has been boxed into any.
// Returns an error if type assertion fails.
func TypedValueOf[T any](v any) (T, error) {
	var zero T
	if v == nil {
		switch reflect.TypeFor[T]().Kind() {
		case reflect.Interface, reflect.Pointer:
			return zero, nil
		default:
			return zero, fmt.Errorf("unexpected nil, want %v", reflect.TypeFor[T]())
		}
	}

	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T, want %v", v, reflect.TypeFor[T]())
	}

	return val, nil
}

// MustTypedValueOf is the panic-on-failure variant of TypedValueOf.
// Use when failure means a broken invariant (e.g., an adapter unboxing the
// arguments it boxed itself).
func MustTypedValueOf[T any](v any) T {
	res, err := TypedValueOf[T](v)
	if err != nil {
		panic(err)
	}
	return res
}
