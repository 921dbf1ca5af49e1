package purefn

import (
	"github.com/on-the-ground/memoize_ive_go/pure"
	"github.com/on-the-ground/memoize_ive_go/shared/helper"
)

// MemoizeI1E memoizes a fallible function. A non-nil error is returned to the
// caller as is and nothing is cached for that call.
func MemoizeI1E[I1, O any](
	fallibleFn func(I1) (O, error),
	opts ...pure.Option,
) func(I1) (O, error) {
	memo := memoize(fallibleFn, func(args ...any) (any, error) {
		o, err := fallibleFn(arg[I1](args, 0))
		return o, err
	}, opts)
	return func(i1 I1) (O, error) {
		res, err := memo.Call(i1)
		return helper.MustTypedValueOf[O](res), err
	}
}

func MemoizeI2E[I1, I2, O any](
	fallibleFn func(I1, I2) (O, error),
	opts ...pure.Option,
) func(I1, I2) (O, error) {
	memo := memoize(fallibleFn, func(args ...any) (any, error) {
		o, err := fallibleFn(arg[I1](args, 0), arg[I2](args, 1))
		return o, err
	}, opts)
	return func(i1 I1, i2 I2) (O, error) {
		res, err := memo.Call(i1, i2)
		return helper.MustTypedValueOf[O](res), err
	}
}

func MemoizeI3E[I1, I2, I3, O any](
	fallibleFn func(I1, I2, I3) (O, error),
	opts ...pure.Option,
) func(I1, I2, I3) (O, error) {
	memo := memoize(fallibleFn, func(args ...any) (any, error) {
		o, err := fallibleFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
		return o, err
	}, opts)
	return func(i1 I1, i2 I2, i3 I3) (O, error) {
		res, err := memo.Call(i1, i2, i3)
		return helper.MustTypedValueOf[O](res), err
	}
}

func MemoizeI4E[I1, I2, I3, I4, O any](
	fallibleFn func(I1, I2, I3, I4) (O, error),
	opts ...pure.Option,
) func(I1, I2, I3, I4) (O, error) {
	memo := memoize(fallibleFn, func(args ...any) (any, error) {
		o, err := fallibleFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
		return o, err
	}, opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		res, err := memo.Call(i1, i2, i3, i4)
		return helper.MustTypedValueOf[O](res), err
	}
}
