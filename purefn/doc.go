// Package purefn provides typed memoization adapters for pure functions.
//
// Memoization is not just a performance trick.
// Wrapping a function here is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Do its arguments mean the same thing every time I pass them?"
//
// The second question matters because arguments are matched the way Go
// matches them: values of primitive kinds (numbers, strings, comparable
// structs) by ==, and pointers, maps, slices, channels and functions by
// identity. Two distinct pointers to equal structs are two different keys.
//
// The adapters wrap pure.Memoize, which stores results in a trie with one
// level per argument position.
//
// Features:
//   - MemoizeI1O1 to MemoizeI4O1: single-output memoizers for common arities.
//   - MemoizeI1O2 to MemoizeI4O2: the same for two outputs, cached as a pair.
//   - MemoizeI1E to MemoizeI4E: fallible functions; errors are never cached.
//   - Reference-keyed entries vanish once their key is garbage collected.
//
// A nil interface result is treated as "no value" and recomputed on every
// call; every other result, zero values included, is cached for the life of
// the wrapper.
//
// See memoize_test.go and memoize_bench_test.go for usage and benchmarks.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc),
// and do not share a memoized function between goroutines.
package purefn
