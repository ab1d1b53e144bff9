package placeip

import (
	"fmt"
	"io"

	"github.com/khalid-nowaf/placeip/pkg/trie"
)

// Record is the location payload stored for one endpoint of an IP range.
// Each endpoint gets its own copy, so two entries never share a Record.
type Record struct {
	CountryCode string
	Country     string
	Region      string
	City        string
}

// showRecord is the display function handed to the trie. One line per
// entry: the numeric key, its dotted form and the location fields.
func showRecord(e *trie.Entry[*Record], w io.Writer) {
	r := e.Value
	fmt.Fprintf(w, "%d: (%s, %s: %s, %s, %s)\n",
		e.Key, FormatIPv4(e.Key), r.CountryCode, r.Country, r.City, r.Region)
}

// disposeRecord is the disposal function handed to the trie. Records own no
// external resources; clearing the fields makes any use after Close show up
// as empty output instead of stale data.
func disposeRecord(r *Record) {
	*r = Record{}
}
