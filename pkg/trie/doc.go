// ## Overview
// Package trie implements an integer-keyed binary trie: a mapping from
// 32-bit unsigned keys to values of any type, indexed by the key bits from
// most significant to least significant. It supports exact lookup, a
// closest-match fallback when no exact path exists, in-order display, and
// structural statistics (size, internal node count, height).
//
// Nodes are created lazily during insertion. A key only consumes as many
// levels as it needs to be told apart from its nearest neighbor, so
// clustered keys (IP ranges for example) keep the trie shallow.
//
// ## Example usage:
//
//	show := func(e *trie.Entry[string], w io.Writer) {
//	    fmt.Fprintf(w, "%d: %s\n", e.Key, e.Value)
//	}
//
//	t := trie.New(trie.WithShow(show))
//	t.Insert(0x01020304, "first")
//	t.Insert(0x01020308, "second")
//
//	// exact hit
//	e, _ := t.Search(0x01020304)
//
//	// miss: returns the bit-path nearest entry, not the numerically
//	// nearest one
//	e, _ = t.Search(0x01020305)
//
//	t.Show(os.Stdout) // entries in ascending key order
//	t.Destroy()
//
// The closest-match fallback is a heuristic tied to the trie's shape and
// insertion history. It is not a longest-prefix or range-containment
// lookup, and it makes no promise about numeric distance.
package trie
