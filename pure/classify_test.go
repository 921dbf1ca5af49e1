package pure_test

import (
	"regexp"
	"testing"
	"unique"
	"unsafe"

	"github.com/on-the-ground/memoize_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

type tagged struct {
	Tags []string
}

func TestClassify_Primitives(t *testing.T) {
	x := 1
	cases := map[string]any{
		"int":            1,
		"float":          1.5,
		"complex":        complex(1, 2),
		"string":         "test",
		"empty string":   "",
		"nil":            nil,
		"false":          false,
		"uint8":          uint8(7),
		"uintptr":        uintptr(42),
		"unsafe pointer": unsafe.Pointer(&x),
		"unique handle":  unique.Make("atom"),
		"struct value":   point{1, 2},
		"array value":    [2]int{1, 2},
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, pure.Primitive, pure.Classify(v))
			assert.True(t, pure.IsPrimitive(v))
		})
	}
}

func TestClassify_References(t *testing.T) {
	cases := map[string]any{
		"pointer":             &point{},
		"nil pointer":         (*point)(nil),
		"function":            func() {},
		"regexp":              regexp.MustCompile("test"),
		"slice":               []int{},
		"nil slice":           []int(nil),
		"map":                 map[string]string{},
		"channel":             make(chan int),
		"non-comparable":      tagged{Tags: []string{"a"}},
		"non-comparable any":  [1]any{[]int{1}},
		"non-comparable func": [1]func(){},
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, pure.Reference, pure.Classify(v))
			assert.False(t, pure.IsPrimitive(v))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "primitive", pure.Primitive.String())
	assert.Equal(t, "reference", pure.Reference.String())
	assert.Equal(t, "unknown", pure.Kind(9).String())
}
