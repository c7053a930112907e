package translate

import (
	"github.com/gencode-dev/gocodon/pkg/alphabet"
)

// An Expansion enumerates the exact codons an ambiguous codon can stand
// for: the cross product of each position's candidate bases, generated
// lazily in a fixed order rather than materialized. A codon of three
// exact bases yields itself once; a codon of three Ns yields all 64
// codons. Reset rewinds the enumeration.
type Expansion struct {
	sets    [3][]byte
	i, j, k int
}

// NewExpansion returns an Expansion over codon, which must hold valid
// upper-case nucleotide codes.
func NewExpansion(codon [3]byte) *Expansion {
	return &Expansion{
		sets: [3][]byte{
			alphabet.Bases(codon[0]),
			alphabet.Bases(codon[1]),
			alphabet.Bases(codon[2]),
		},
	}
}

// Next returns the next exact codon, or false when the cross product is
// exhausted.
func (e *Expansion) Next() ([3]byte, bool) {
	if e.i >= len(e.sets[0]) {
		return [3]byte{}, false
	}
	codon := [3]byte{e.sets[0][e.i], e.sets[1][e.j], e.sets[2][e.k]}
	e.k++
	if e.k == len(e.sets[2]) {
		e.k = 0
		e.j++
		if e.j == len(e.sets[1]) {
			e.j = 0
			e.i++
		}
	}
	return codon, true
}

// Reset rewinds the enumeration to the first codon.
func (e *Expansion) Reset() {
	e.i, e.j, e.k = 0, 0, 0
}
