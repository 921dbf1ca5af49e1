package pure

import "reflect"

// Kind partitions argument values into the two key spaces of the memo trie.
type Kind uint8

const (
	// Primitive values are compared with ==.
	Primitive Kind = iota
	// Reference values are compared by identity of the object they refer to.
	Reference
)

func (k Kind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// Classify reports whether v is a Primitive or a Reference.
//
// nil, booleans, numbers, strings, uintptr, unsafe.Pointer and comparable
// struct or array values are primitive. Pointers, maps, channels, slices,
// functions and non-comparable structs or arrays are references.
//
// Functions are identified by their closure object, which the memo trie holds
// strongly; unlike the other references they are never reclaimed.
func Classify(v any) Kind {
	if v == nil {
		return Primitive
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return Reference
	case reflect.Struct, reflect.Array:
		if rv.Comparable() {
			return Primitive
		}
		return Reference
	default:
		return Primitive
	}
}

// IsPrimitive is shorthand for Classify(v) == Primitive.
func IsPrimitive(v any) bool {
	return Classify(v) == Primitive
}
