package purefn

import (
	"github.com/on-the-ground/memoize_ive_go/pure"
	"github.com/on-the-ground/memoize_ive_go/shared/helper"
)

func MemoizeI1O2[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...pure.Option,
) func(I1) (O1, O2) {
	memo := memoize(pureFn, func(args ...any) (any, error) {
		v1, v2 := pureFn(arg[I1](args, 0))
		return result[O1, O2]{O1: v1, O2: v2}, nil
	}, opts)
	return func(i1 I1) (O1, O2) {
		return unpack[O1, O2](memo.Call(i1))
	}
}

func MemoizeI2O2[I1, I2, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...pure.Option,
) func(I1, I2) (O1, O2) {
	memo := memoize(pureFn, func(args ...any) (any, error) {
		v1, v2 := pureFn(arg[I1](args, 0), arg[I2](args, 1))
		return result[O1, O2]{O1: v1, O2: v2}, nil
	}, opts)
	return func(i1 I1, i2 I2) (O1, O2) {
		return unpack[O1, O2](memo.Call(i1, i2))
	}
}

func MemoizeI3O2[I1, I2, I3, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	opts ...pure.Option,
) func(I1, I2, I3) (O1, O2) {
	memo := memoize(pureFn, func(args ...any) (any, error) {
		v1, v2 := pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
		return result[O1, O2]{O1: v1, O2: v2}, nil
	}, opts)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return unpack[O1, O2](memo.Call(i1, i2, i3))
	}
}

func MemoizeI4O2[I1, I2, I3, I4, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	opts ...pure.Option,
) func(I1, I2, I3, I4) (O1, O2) {
	memo := memoize(pureFn, func(args ...any) (any, error) {
		v1, v2 := pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
		return result[O1, O2]{O1: v1, O2: v2}, nil
	}, opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return unpack[O1, O2](memo.Call(i1, i2, i3, i4))
	}
}

// result boxes both outputs so a pair is never the absent marker.
type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func unpack[O1, O2 any](res any, _ error) (O1, O2) {
	r := helper.MustTypedValueOf[result[O1, O2]](res)
	return r.O1, r.O2
}
