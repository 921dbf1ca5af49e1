package pure

import "unsafe"

// edge is one argument resolved to the key space it lives in.
type edge struct {
	kind Kind
	prim any
	ref  refKey
	obj  unsafe.Pointer
}

// edgeOf resolves arg to its trie edge. ok is false when arg can be neither
// compared by value nor identified.
func edgeOf(arg any) (e edge, ok bool) {
	if Classify(arg) == Primitive {
		return edge{kind: Primitive, prim: arg}, true
	}
	ref, obj, ok := identityOf(arg)
	if !ok {
		return edge{}, false
	}
	return edge{kind: Reference, ref: ref, obj: obj}, true
}

// node is a trie vertex. val == nil means nothing is cached here.
type node struct {
	prims map[any]*node
	refs  *refTable
	val   any
}

func (n *node) child(e edge) (*node, bool) {
	if e.kind == Primitive {
		c, ok := n.prims[e.prim]
		return c, ok
	}
	if n.refs == nil {
		return nil, false
	}
	return n.refs.load(e.ref)
}

func (n *node) childOrCreate(e edge) *node {
	if e.kind == Primitive {
		if n.prims == nil {
			n.prims = make(map[any]*node)
		}
		c, ok := n.prims[e.prim]
		if !ok {
			c = &node{}
			n.prims[e.prim] = c
		}
		return c
	}
	if n.refs == nil {
		n.refs = newRefTable()
	}
	return n.refs.loadOrCreate(e.ref, e.obj)
}

func (n *node) numChildren() int {
	count := len(n.prims)
	if n.refs != nil {
		count += n.refs.len()
	}
	return count
}

// Trie maps argument lists to cached values. It is unbounded and is never
// trimmed except for reference-keyed entries whose key has been collected.
// A Trie is not safe for concurrent use.
type Trie struct {
	root *node
}

// NewTrie returns an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: &node{}}
}

// load returns the value cached for the exact edge path. Lookups never
// create nodes.
func (t *Trie) load(edges []edge) (any, bool) {
	n := t.root
	for _, e := range edges {
		var ok bool
		if n, ok = n.child(e); !ok {
			return nil, false
		}
	}
	if n.val == nil {
		return nil, false
	}
	return n.val, true
}

func (t *Trie) store(edges []edge, value any) {
	n := t.root
	for _, e := range edges {
		n = n.childOrCreate(e)
	}
	n.val = value
}

// Load looks up the value cached for args. ok is false when nothing is
// cached or when one of the args cannot be used as a key.
func (t *Trie) Load(args ...any) (value any, ok bool) {
	edges, ok := edgesOf(args)
	if !ok {
		return nil, false
	}
	return t.load(edges)
}

// Store caches value under args. A nil value is the absent marker and
// leaves the trie untouched. It reports whether value was stored.
func (t *Trie) Store(value any, args ...any) bool {
	if value == nil {
		return false
	}
	edges, ok := edgesOf(args)
	if !ok {
		return false
	}
	t.store(edges, value)
	return true
}

// Width returns the number of children directly under the path args, or 0
// when the path does not exist.
func (t *Trie) Width(args ...any) int {
	edges, ok := edgesOf(args)
	if !ok {
		return 0
	}
	n := t.root
	for _, e := range edges {
		if n, ok = n.child(e); !ok {
			return 0
		}
	}
	return n.numChildren()
}

func edgesOf(args []any) ([]edge, bool) {
	edges := make([]edge, len(args))
	for i, arg := range args {
		e, ok := edgeOf(arg)
		if !ok {
			return nil, false
		}
		edges[i] = e
	}
	return edges, true
}
