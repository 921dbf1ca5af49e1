package purefn_test

import (
	"testing"

	"github.com/on-the-ground/memoize_ive_go/purefn"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var memoFib func(int) int
	memoFib = purefn.MemoizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return memoFib(n-1) + memoFib(n-2)
	})

	for i := 0; i < b.N; i++ {
		_ = memoFib(20)
	}
}

func TestMemoizedFib(t *testing.T) {
	calls := 0
	var memoFib func(int) int
	memoFib = purefn.MemoizeI1O1(func(n int) int {
		calls++
		if n <= 1 {
			return n
		}
		return memoFib(n-1) + memoFib(n-2)
	})

	if got := memoFib(30); got != naiveFib(30) {
		t.Fatalf("fib(30) = %d, want %d", got, naiveFib(30))
	}
	if calls != 31 {
		t.Fatalf("expected one call per n in [0, 30], got %d", calls)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	var lev func(string, string) int
	lev = purefn.MemoizeI2O1(func(a, b string) int {
		if len(a) == 0 {
			return len(b)
		}
		if len(b) == 0 {
			return len(a)
		}
		if a[0] == b[0] {
			return lev(a[1:], b[1:])
		}
		return 1 + min(
			lev(a[1:], b),
			lev(a, b[1:]),
			lev(a[1:], b[1:]),
		)
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lev("kitten", "sitting")
	}
}

type Point struct {
	X, Y float64
}

func naiveDist(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}

func BenchmarkNaiveDist(b *testing.B) {
	p1 := Point{1.5, 2.5}
	p2 := Point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = naiveDist(p1, p2)
	}
}

func BenchmarkMemoizedDist(b *testing.B) {
	dist := purefn.MemoizeI2O1(naiveDist)

	p1 := Point{1.5, 2.5}
	p2 := Point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = dist(p1, p2)
	}
}

func BenchmarkMemoizedDistByPointer(b *testing.B) {
	dist := purefn.MemoizeI2O1(func(p1, p2 *Point) float64 {
		return naiveDist(*p1, *p2)
	})

	p1 := &Point{1.5, 2.5}
	p2 := &Point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = dist(p1, p2)
	}
}
