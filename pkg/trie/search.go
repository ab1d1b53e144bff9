package trie

// Search walks the trie along the bits of key and returns the entry of the
// leaf it ends up at. The walk never allocates and never mutates the trie.
//
// When the exact path exists the returned entry holds key itself. When it
// does not, the leaf reached is the trie's approximation of the nearest
// stored key: reaching a leaf early returns that leaf's entry as-is, and
// running into a missing child switches to a biased closest-match descent
// (see closestMatch). The approximation follows the bit layout of the trie,
// not numeric distance, so callers must not read range-containment
// semantics into a miss.
//
// Searching an empty trie returns ErrEmptyTrie.
func (t *Trie[V]) Search(key uint32) (*Entry[V], error) {
	if t.root == nil {
		return nil, ErrEmptyTrie
	}
	return searchRec(t.root, key, topBit), nil
}

func searchRec[V any](n *node[V], key uint32, mask uint32) *Entry[V] {
	if n.isLeaf() {
		return n.entry
	}

	pos := bitAt(key, mask)

	if n.children[pos] == nil {
		// exact path broken: the missing side becomes the bias and the
		// descent continues through the sibling that does exist
		return closestMatch(n.children[pos^1], pos)
	}

	return searchRec(n.children[pos], key, mask>>1)
}

// closestMatch descends to a leaf favoring the bias side at every level,
// taking the other side only when the favored child is absent. Termination
// is guaranteed by the insertion invariant that a node with no children is
// a leaf, so one of the two children is always present on a branch.
func closestMatch[V any](n *node[V], bias ChildPos) *Entry[V] {
	if n.isLeaf() {
		return n.entry
	}

	if next := n.children[bias]; next != nil {
		return closestMatch(next, bias)
	}
	return closestMatch(n.children[bias^1], bias)
}
