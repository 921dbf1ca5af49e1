// Package pure memoizes functions over variable-length, mixed-type argument
// lists.
//
// Memoize wraps a Func in a trie whose edges are the call's arguments, one
// level per position. Each trie node keeps two child maps:
//   - primitive arguments (see Classify) are keyed with ==,
//   - reference arguments are keyed by identity through weak pointers, so the
//     cache never keeps a key object alive and its subtree is dropped once the
//     object is collected.
//
// A nil result is the absent marker: it is returned but never cached, so the
// next identical call runs the function again. Every other value, including
// zero values, is cached.
//
// Example:
//
//	square := pure.Memoize(func(args ...any) (any, error) {
//	    n := args[0].(int)
//	    return n * n, nil
//	})
//	v, _ := square.Call(12) // computed
//	v, _ = square.Call(12)  // cached
//
// The cache has no bound and no expiry, and a Memoized must not be called
// from several goroutines at once.
package pure
