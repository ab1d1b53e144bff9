// Package placeip builds an IP placement database on top of the integer
// trie: it ingests CSV records mapping IPv4 ranges to locations, storing
// both range endpoints, and answers point queries with the closest stored
// endpoint.
//
// The answer is the trie's bit-path nearest entry, an approximation tied to
// the trie's shape. It is not a guarantee that the returned range contains
// the queried address.
package placeip

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/khalid-nowaf/placeip/pkg/trie"
)

// ErrEmptyDataset is returned by LoadCSV when the input has no records.
var ErrEmptyDataset = errors.New("placeip: empty dataset")

// DB is an IP placement database. It assumes the same exclusive
// single-threaded ownership as the trie underneath.
type DB struct {
	trie *trie.Trie[*Record]
}

// Open creates an empty database wired with the Record display and
// disposal hooks.
func Open() *DB {
	return &DB{
		trie: trie.New(
			trie.WithShow[*Record](showRecord),
			trie.WithDispose[*Record](disposeRecord),
		),
	}
}

// LoadCSV ingests IP range records from r and returns the number of rows
// read. Each row is
//
//	"<lower>","<upper>",code,country,region,city
//
// with lower and upper as decimal 32-bit range endpoints. Both endpoints
// are inserted, each with its own Record copy. An input with no rows
// returns ErrEmptyDataset.
func (db *DB) LoadCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 6

	rows := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("placeip: reading row %d: %w", rows+1, err)
		}

		lower, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return rows, fmt.Errorf("placeip: bad lower bound %q on row %d", fields[0], rows+1)
		}
		upper, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return rows, fmt.Errorf("placeip: bad upper bound %q on row %d", fields[1], rows+1)
		}

		// one copy per endpoint, entries never share a Record
		db.trie.Insert(uint32(lower), &Record{
			CountryCode: fields[2],
			Country:     fields[3],
			Region:      fields[4],
			City:        fields[5],
		})
		db.trie.Insert(uint32(upper), &Record{
			CountryCode: fields[2],
			Country:     fields[3],
			Region:      fields[4],
			City:        fields[5],
		})
		rows++
	}

	if rows == 0 {
		return 0, ErrEmptyDataset
	}
	return rows, nil
}

// Find returns the entry for key, or the bit-path nearest entry when the
// key is not stored. Fails with trie.ErrEmptyTrie on an unloaded database.
func (db *DB) Find(key uint32) (*trie.Entry[*Record], error) {
	return db.trie.Search(key)
}

// ShowEntry writes one entry through the display hook.
func (db *DB) ShowEntry(e *trie.Entry[*Record], w io.Writer) error {
	return db.trie.ShowValue(e, w)
}

// ShowAll writes every entry in ascending key order.
func (db *DB) ShowAll(w io.Writer) error {
	return db.trie.Show(w)
}

// Stats reports the trie's structural counters. Size counts insertions,
// duplicate range endpoints included, so it can exceed the number of
// distinct entries.
func (db *DB) Stats() (height, size, nodeCount int) {
	return db.trie.Height(), db.trie.Size(), db.trie.NodeCount()
}

// WriteStats prints the stats block shown after loading a dataset.
func (db *DB) WriteStats(w io.Writer) {
	height, size, nodeCount := db.Stats()
	fmt.Fprintf(w, "\nheight: %d\n", height)
	fmt.Fprintf(w, "size: %d\n", size)
	fmt.Fprintf(w, "node_count: %d\n\n\n", nodeCount)
}

// Close releases every stored record. The database must not be used
// afterwards.
func (db *DB) Close() {
	db.trie.Destroy()
}
