package pure

import (
	"reflect"
	"runtime"
	"sync"
	"unsafe"
	"weak"
)

// refKey identifies a reference value without keeping it alive.
// Functions are the exception: fn pins the closure object.
type refKey struct {
	typ  reflect.Type
	addr weak.Pointer[byte]
	fn   unsafe.Pointer
	len  int
	cap  int
}

// identityOf returns the identity key of a reference value together with the
// object whose lifetime bounds the key. ok is false for values without
// identity (non-comparable struct and array values).
func identityOf(v any) (key refKey, obj unsafe.Pointer, ok bool) {
	rv := reflect.ValueOf(v)
	key.typ = rv.Type()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan:
		obj = rv.UnsafePointer()
	case reflect.Slice:
		obj = rv.UnsafePointer()
		key.len, key.cap = rv.Len(), rv.Cap()
	case reflect.Func:
		// reflect only exposes the code pointer, which closures share.
		key.fn = (*[2]unsafe.Pointer)(unsafe.Pointer(&v))[1]
		return key, nil, true
	default:
		return refKey{}, nil, false
	}
	if obj != nil {
		key.addr = weak.Make((*byte)(obj))
	}
	return key, obj, true
}

// refTable is an identity-keyed map of trie children. Entries whose key
// object has been collected are deleted by a runtime cleanup, which runs on
// its own goroutine; mu only serializes against that goroutine.
type refTable struct {
	mu      sync.Mutex
	entries map[refKey]*node
}

type reclaimArg struct {
	table weak.Pointer[refTable]
	key   refKey
}

func newRefTable() *refTable {
	return &refTable{entries: make(map[refKey]*node)}
}

func (t *refTable) load(key refKey) (*node, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.entries[key]
	return n, ok
}

func (t *refTable) loadOrCreate(key refKey, obj unsafe.Pointer) *node {
	t.mu.Lock()
	n, ok := t.entries[key]
	if !ok {
		n = &node{}
		t.entries[key] = n
	}
	t.mu.Unlock()

	if !ok && obj != nil {
		runtime.AddCleanup((*byte)(obj), reclaim, reclaimArg{table: weak.Make(t), key: key})
	}
	return n
}

func (t *refTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func reclaim(arg reclaimArg) {
	t := arg.table.Value()
	if t == nil {
		return
	}
	t.mu.Lock()
	delete(t.entries, arg.key)
	t.mu.Unlock()
}
