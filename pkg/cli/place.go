package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/khalid-nowaf/placeip/pkg/placeip"
)

// PlaceCmd loads a dataset and runs the query loop.
type PlaceCmd struct {
	File string `arg:"" type:"existingfile" help:"Input CSV of IP range records"`
	Show bool   `help:"Dump all loaded entries in key order before the query loop"`
}

// Run executes the place command.
func (cmd *PlaceCmd) Run() error {
	file, err := os.Open(cmd.File)
	if err != nil {
		return err
	}
	defer file.Close()

	db := placeip.Open()
	defer db.Close()

	if _, err := db.LoadCSV(file); err != nil {
		return err
	}

	db.WriteStats(os.Stdout)

	if cmd.Show {
		if err := db.ShowAll(os.Stdout); err != nil {
			return err
		}
	}

	fmt.Println("Enter an ipv4 string or a number (or a blank line to quit).")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Println()
			break
		}

		if err := executeQuery(db, line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// executeQuery resolves one query line and prints the closest entry. Parse
// problems are reported and skipped; a failed search means the database is
// unusable and aborts the command.
func executeQuery(db *placeip.DB, line string) error {
	key, err := placeip.ParseQuery(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if !errors.Is(err, strconv.ErrRange) {
			return nil
		}
		// an out-of-range key clamps to InvalidKey and is still queried
	}

	entry, err := db.Find(key)
	if err != nil {
		return fmt.Errorf("query failure: %w", err)
	}

	return db.ShowEntry(entry, os.Stdout)
}
