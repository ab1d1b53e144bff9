package trie

import "errors"

// is an alias for int used to define child positions in a trie node.
type ChildPos = int

// Constants representing possible child positions in the trie.
const ZERO ChildPos = 0
const ONE ChildPos = 1

// KeyBits is the fixed width of a key in bits. Bit 31 (the most significant)
// drives the first level of descent, bit 0 the last.
const KeyBits = 32

// mask selecting the most significant key bit, where every descent starts
const topBit uint32 = 1 << (KeyBits - 1)

// Errors reported by a Trie.
var (
	// ErrEmptyTrie is returned by Search when the trie holds no entries.
	// The original design treated this as fatal; the policy now belongs
	// to the caller.
	ErrEmptyTrie = errors.New("trie: cannot query an empty trie")

	// ErrNoShowFunc is returned by Show and ShowValue when the trie was
	// created without a show function. It signals incorrect usage, not a
	// corrupted trie.
	ErrNoShowFunc = errors.New("trie: no show function configured")
)

// Entry is a single stored (key, value) pair. It is owned by the leaf
// holding it and is released when the trie is destroyed.
type Entry[V any] struct {
	Key   uint32
	Value V
}

// node is either a leaf (entry set, no children) or a branch (no entry,
// zero to two children). Branches can be sparse: a single-child chain is
// built one node per shared key bit, and the second child appears only when
// a bit-divergent key is inserted along the same path.
type node[V any] struct {
	entry    *Entry[V]
	children [2]*node[V]
}

func newLeaf[V any](key uint32, value V) *node[V] {
	return &node[V]{entry: &Entry[V]{Key: key, Value: value}}
}

func (n *node[V]) isLeaf() bool {
	return n.children[ZERO] == nil && n.children[ONE] == nil
}

// returns the child position selected by the masked key bit
func bitAt(key uint32, mask uint32) ChildPos {
	if key&mask == 0 {
		return ZERO
	}
	return ONE
}

type Option[V any] func(*Trie[V])

// WithShow configures the display function used by Show and ShowValue.
func WithShow[V any](show ShowFunc[V]) Option[V] {
	return func(t *Trie[V]) {
		t.show = show
	}
}

// WithDispose configures the disposal function invoked on every stored
// value when the trie is destroyed.
func WithDispose[V any](dispose DisposeFunc[V]) Option[V] {
	return func(t *Trie[V]) {
		t.dispose = dispose
	}
}

// Trie is an integer-keyed binary trie. Keys are fixed-width 32-bit values
// and descent follows their bits from most to least significant, ZERO going
// left and ONE going right. Nodes are materialized lazily, one per
// distinguishing bit, so the depth of a stored key is bounded by the number
// of leading bits it shares with its nearest sibling rather than by a fixed
// 32.
//
// A Trie assumes exclusive single-threaded ownership for its whole
// lifetime.
type Trie[V any] struct {
	root *node[V]

	entries int // completed Insert calls, duplicates included
	nodes   int // nodes ever created, leaves and branches alike
	height  int // deepest bit level reached by any insertion, never decreases

	show    ShowFunc[V]
	dispose DisposeFunc[V]
}

// New creates an empty trie. Both callbacks are optional: a trie without a
// show function cannot display entries, and a trie without a dispose
// function releases nothing on Destroy.
func New[V any](opts ...Option[V]) *Trie[V] {
	t := &Trie[V]{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Size returns the number of completed Insert calls. Inserting a key that
// is already present still counts, even though no new entry is created; see
// NodeCount for the structural view.
func (t *Trie[V]) Size() int {
	return t.entries
}

// NodeCount returns the number of internal (branch) nodes, computed as all
// nodes ever created minus the entry count.
func (t *Trie[V]) NodeCount() int {
	return t.nodes - t.entries
}

// Height returns the deepest bit level any insertion has reached so far.
func (t *Trie[V]) Height() int {
	return t.height
}

// Insert places (key, value) into the trie.
//
// An empty trie gets a single leaf at the root. Otherwise descent follows
// the key bits until it either finds a missing child slot (a new leaf is
// created there) or reaches a leaf. A leaf with the same key makes the
// insertion a structural no-op; a leaf with a different key is split into a
// chain of single-child branches covering the bits both keys share, ended
// by two sibling leaves at the first diverging bit.
func (t *Trie[V]) Insert(key uint32, value V) {
	t.entries++

	if t.root == nil {
		t.root = newLeaf(key, value)
		t.height = 1
		t.nodes = 1
		return
	}

	bh := 0
	t.insert(key, value, &bh)

	if bh > t.height {
		t.height = bh
	}
}

// iterative descent for Insert; bh tracks the bit levels consumed
func (t *Trie[V]) insert(key uint32, value V, bh *int) {
	mask := topBit
	cur := t.root

	for {
		if cur.isLeaf() {
			if key != cur.entry.Key {
				old := cur.entry
				cur.entry = nil
				t.makeBranch(cur, key, value, old, mask, bh)
			}
			return
		}

		pos := bitAt(key, mask)
		*bh++

		if cur.children[pos] == nil {
			cur.children[pos] = newLeaf(key, value)
			t.nodes++
			return
		}

		cur = cur.children[pos]
		mask >>= 1
	}
}

// makeBranch turns the former leaf cur into the start of a branch chain
// separating key from the pre-existing entry old. One single-child branch
// is created per level at which the two keys still agree; at the first
// diverging bit both entries become sibling leaves, ordered by that bit.
// The loop terminates before the mask is exhausted because the two keys are
// known to differ.
func (t *Trie[V]) makeBranch(cur *node[V], key uint32, value V, old *Entry[V], mask uint32, bh *int) {
	for {
		newPos := bitAt(key, mask)
		oldPos := bitAt(old.Key, mask)

		if newPos == oldPos {
			t.nodes++
			*bh++

			next := &node[V]{}
			cur.children[newPos] = next
			cur = next
			mask >>= 1
			continue
		}

		t.nodes += 2
		*bh++

		cur.children[newPos] = newLeaf(key, value)
		cur.children[oldPos] = &node[V]{entry: old}
		return
	}
}

// Destroy releases every entry in post-order, invoking the dispose function
// (if configured) exactly once per stored value, and resets the trie to its
// empty state. The trie and any entries previously returned by Search must
// not be used afterwards.
func (t *Trie[V]) Destroy() {
	t.destroy(t.root)
	t.root = nil
	t.entries = 0
	t.nodes = 0
	t.height = 0
}

func (t *Trie[V]) destroy(n *node[V]) {
	if n == nil {
		return
	}

	t.destroy(n.children[ZERO])
	t.destroy(n.children[ONE])

	if n.entry != nil {
		if t.dispose != nil {
			t.dispose(n.entry.Value)
		}
		n.entry = nil
	}
	n.children[ZERO] = nil
	n.children[ONE] = nil
}
