// Package gencode provides the NCBI genetic code tables: total,
// immutable mappings from the 64 exact codons to an amino acid or stop,
// keyed by NCBI table id
package gencode

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// UnknownTableError is returned when a table id has no corresponding
// NCBI genetic code table.
type UnknownTableError struct {
	ID int
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("unknown genetic code table: %d", e.ID)
}

// A Table is one NCBI genetic code table. Tables are immutable once the
// registry is built and are safe for concurrent use.
type Table struct {
	ID     int
	Name   string
	codons map[string]byte
	starts map[string]bool
}

// Amino returns the amino acid (or '*' for stop) that codon encodes
// under this table. codon must be three upper-case exact bases; anything
// else returns 0.
func (t *Table) Amino(codon string) byte {
	return t.codons[codon]
}

// IsStart reports whether codon is a translation-start codon in this
// table.
func (t *Table) IsStart(codon string) bool {
	return t.starts[codon]
}

// StartCodons returns this table's start codons, sorted.
func (t *Table) StartCodons() []string {
	out := make([]string, 0, len(t.starts))
	for codon := range t.starts {
		out = append(out, codon)
	}
	slices.Sort(out)
	return out
}

var (
	registryOnce sync.Once
	registry     map[int]*Table
)

func buildRegistry() {
	registry = make(map[int]*Table, len(names))
	for id, name := range names {
		dataID := id
		if target, ok := aliases[id]; ok {
			dataID = target
		}

		codons := make(map[string]byte, len(standard))
		for codon, aa := range standard {
			codons[codon] = aa
		}
		for codon, aa := range diffs[dataID] {
			codons[codon] = aa
		}

		starts := make(map[string]bool, len(startCodons[id]))
		for _, codon := range startCodons[id] {
			starts[codon] = true
		}

		registry[id] = &Table{ID: id, Name: name, codons: codons, starts: starts}
	}
}

// Lookup returns the genetic code table with the given NCBI id. The
// registry is built once, on first use, and is read-only thereafter.
func Lookup(id int) (*Table, error) {
	registryOnce.Do(buildRegistry)
	t, ok := registry[id]
	if !ok {
		return nil, &UnknownTableError{ID: id}
	}
	return t, nil
}

// IDs returns the supported NCBI table ids, sorted.
func IDs() []int {
	out := make([]int, 0, len(names))
	for id := range names {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
