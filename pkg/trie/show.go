package trie

import "io"

// ShowFunc renders one entry to a writer. It is supplied by the user and
// owns all display formatting; the trie itself never writes anything.
type ShowFunc[V any] func(e *Entry[V], w io.Writer)

// DisposeFunc releases whatever an entry value owns. It runs exactly once
// per stored entry during Destroy.
type DisposeFunc[V any] func(value V)

// ShowValue renders a single entry through the configured show function.
// Returns ErrNoShowFunc if the trie was created without one.
func (t *Trie[V]) ShowValue(e *Entry[V], w io.Writer) error {
	if t.show == nil {
		return ErrNoShowFunc
	}
	t.show(e, w)
	return nil
}

// Show renders every entry to w in an in-order traversal: left subtree,
// the node's own entry, right subtree. Since descent is most significant
// bit first, entries come out in ascending key order.
func (t *Trie[V]) Show(w io.Writer) error {
	if t.show == nil {
		return ErrNoShowFunc
	}
	showRec(t.root, t.show, w)
	return nil
}

func showRec[V any](n *node[V], show ShowFunc[V], w io.Writer) {
	if n == nil {
		return
	}

	showRec(n.children[ZERO], show, w)

	if n.entry != nil {
		show(n.entry, w)
	}

	showRec(n.children[ONE], show, w)
}

// Walk visits every entry in ascending key order. The callback must not
// mutate the trie.
func (t *Trie[V]) Walk(fn func(e *Entry[V])) {
	walkRec(t.root, fn)
}

func walkRec[V any](n *node[V], fn func(e *Entry[V])) {
	if n == nil {
		return
	}

	walkRec(n.children[ZERO], fn)

	if n.entry != nil {
		fn(n.entry)
	}

	walkRec(n.children[ONE], fn)
}
