package purefn

import (
	"github.com/on-the-ground/memoize_ive_go/pure"
	"github.com/on-the-ground/memoize_ive_go/shared/helper"
)

func MemoizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	opts ...pure.Option,
) func(I1) O1 {
	memo := memoize(pureFn, func(args ...any) (any, error) {
		return pureFn(arg[I1](args, 0)), nil
	}, opts)
	return func(i1 I1) O1 {
		res, _ := memo.Call(i1)
		return helper.MustTypedValueOf[O1](res)
	}
}

func MemoizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	opts ...pure.Option,
) func(I1, I2) O1 {
	memo := memoize(pureFn, func(args ...any) (any, error) {
		return pureFn(arg[I1](args, 0), arg[I2](args, 1)), nil
	}, opts)
	return func(i1 I1, i2 I2) O1 {
		res, _ := memo.Call(i1, i2)
		return helper.MustTypedValueOf[O1](res)
	}
}

func MemoizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...pure.Option,
) func(I1, I2, I3) O1 {
	memo := memoize(pureFn, func(args ...any) (any, error) {
		return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2)), nil
	}, opts)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		res, _ := memo.Call(i1, i2, i3)
		return helper.MustTypedValueOf[O1](res)
	}
}

func MemoizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...pure.Option,
) func(I1, I2, I3, I4) O1 {
	memo := memoize(pureFn, func(args ...any) (any, error) {
		return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3)), nil
	}, opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		res, _ := memo.Call(i1, i2, i3, i4)
		return helper.MustTypedValueOf[O1](res)
	}
}

// memoize names the wrapper after the typed function, not the boxing closure.
// Caller options come last so WithName still wins.
func memoize(typedFn any, boxed pure.Func, opts []pure.Option) *pure.Memoized {
	all := make([]pure.Option, 0, len(opts)+1)
	all = append(all, pure.WithName(pure.FuncName(typedFn)))
	all = append(all, opts...)
	return pure.Memoize(boxed, all...)
}

func arg[T any](args []any, i int) T {
	return helper.MustTypedValueOf[T](args[i])
}
