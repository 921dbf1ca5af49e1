package pure

import (
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NameSuffix is appended to the wrapped function's name by Memoized.Name.
const NameSuffix = "_memoized"

// Func is the shape of a memoizable function. A nil result is the absent
// marker and is never cached; neither is a result paired with a non-nil error.
type Func func(args ...any) (any, error)

// Stats counts how calls of a Memoized were served.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Bypasses uint64
}

// Memoized wraps a Func with a cache keyed by its positional arguments.
// It performs no synchronization of its own.
type Memoized struct {
	id         string
	name       string
	fn         Func
	trie       *Trie
	exceptWhen ExceptWhen
	logger     *zap.Logger

	hits     atomic.Uint64
	misses   atomic.Uint64
	bypasses atomic.Uint64
}

// Memoize wraps fn so that repeated calls with equal arguments return the
// cached result. Primitive arguments are compared with ==, reference
// arguments by identity. Panics if fn is nil.
//
// Entries keyed by pointers, maps, channels or slices go away once the key is
// collected. Function arguments are pinned instead: a closure passed to Call
// stays reachable for as long as the Memoized does.
func Memoize(fn Func, opts ...Option) *Memoized {
	if fn == nil {
		panic("memoize: nil function")
	}
	cfg := newConfig(opts)
	name := cfg.name
	if name == "" {
		name = FuncName(fn)
	}
	id := uuid.New().String()
	return &Memoized{
		id:         id,
		name:       name + NameSuffix,
		fn:         fn,
		trie:       NewTrie(),
		exceptWhen: cfg.exceptWhen,
		logger: cfg.logger.With(
			zap.String("memo_id", id),
			zap.String("memo_name", name+NameSuffix),
		),
	}
}

// Call invokes the wrapped function through the cache.
//
// The bypass predicate is consulted for every position, left to right, before
// that position is looked up; the first match sends the call straight to the
// wrapped function with no cache read or write. A lookup miss does not stop
// the predicate: later positions are still shown to it, so a predicate with
// side effects runs once per position up to its first match, hit or miss.
// Errors and panics from the wrapped function reach the caller unchanged and
// nothing is cached for them.
func (m *Memoized) Call(args ...any) (any, error) {
	edges := make([]edge, len(args))
	n := m.trie.root
	for i, arg := range args {
		if m.exceptWhen != nil && m.exceptWhen(arg, i) {
			return m.bypass("except_when", i, args)
		}
		e, ok := edgeOf(arg)
		if !ok {
			return m.bypass("unkeyable", i, args)
		}
		edges[i] = e
		// keep walking after a miss so every position meets the predicate
		if n != nil {
			n, _ = n.child(e)
		}
	}

	if n != nil && n.val != nil {
		m.hits.Add(1)
		m.logger.Debug("memo hit", zap.Int("depth", len(args)))
		return n.val, nil
	}

	m.misses.Add(1)
	m.logger.Debug("memo miss", zap.Int("depth", len(args)))
	result, err := m.fn(args...)
	if err != nil || result == nil {
		return result, err
	}
	m.trie.store(edges, result)
	return result, nil
}

func (m *Memoized) bypass(reason string, index int, args []any) (any, error) {
	m.bypasses.Add(1)
	m.logger.Debug("memo bypass",
		zap.String("reason", reason),
		zap.Int("index", index),
		zap.Int("depth", len(args)),
	)
	return m.fn(args...)
}

// Unmemoized returns the function passed to Memoize.
func (m *Memoized) Unmemoized() Func {
	return m.fn
}

// Name returns the diagnostic name: the wrapped function's name followed by
// NameSuffix.
func (m *Memoized) Name() string {
	return m.name
}

// ID returns the unique id of this instance, as attached to its log entries.
func (m *Memoized) ID() string {
	return m.id
}

// Stats returns a snapshot of the hit, miss and bypass counters.
func (m *Memoized) Stats() Stats {
	return Stats{
		Hits:     m.hits.Load(),
		Misses:   m.misses.Load(),
		Bypasses: m.bypasses.Load(),
	}
}

// FuncName returns the symbol name of the function fn without its import
// path and package, e.g. "Outer.func1" or "(*T).Method".
func FuncName(fn any) string {
	rf := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if rf == nil {
		return ""
	}
	name := rf.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
