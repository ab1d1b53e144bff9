// Package cli wires the placement database into a command line interface:
// load a CSV of IP range records, print the trie statistics, then answer
// interactive queries until a blank line or EOF.
package cli

// CLI is the kong command grammar.
var CLI struct {
	Place PlaceCmd `cmd:"" help:"Load an IP range CSV and query it interactively"`
}
