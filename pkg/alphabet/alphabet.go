// Package alphabet defines the IUPAC nucleotide and amino acid
// alphabets, the mapping from each ambiguity code to the set of exact
// symbols it stands for, and nucleotide complements
package alphabet

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// InvalidCharacterError is returned when a byte outside the applicable
// alphabet is encountered. Pos is the 0-based position of the byte in
// whatever input was being checked.
type InvalidCharacterError struct {
	Char byte
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character (%q) at position %d", e.Char, e.Pos)
}

// One bit per exact base. An IUPAC ambiguity code is the union of the
// bases it can stand for, so e.g. R (A or G) is baseA|baseG.
const (
	baseA uint8 = 1 << iota
	baseC
	baseG
	baseT
)

// MakeNucleotideBitsArray returns an array mapping the byte value of every
// IUPAC nucleotide code, upper or lower case, to the bitset of exact bases
// it can stand for. Bytes outside the alphabet map to 0.
func MakeNucleotideBitsArray() [256]uint8 {
	var bits [256]uint8

	set := func(c byte, b uint8) {
		bits[c] = b
		bits[c+'a'-'A'] = b
	}

	set('A', baseA)
	set('C', baseC)
	set('G', baseG)
	set('T', baseT)
	set('R', baseA|baseG)
	set('Y', baseC|baseT)
	set('S', baseC|baseG)
	set('W', baseA|baseT)
	set('K', baseG|baseT)
	set('M', baseA|baseC)
	set('B', baseC|baseG|baseT)
	set('D', baseA|baseG|baseT)
	set('H', baseA|baseC|baseT)
	set('V', baseA|baseC|baseG)
	set('N', baseA|baseC|baseG|baseT)

	return bits
}

// MakeComplementArray returns an array mapping the byte value of every
// IUPAC nucleotide code to its complement, preserving case. Bytes outside
// the alphabet map to 0.
func MakeComplementArray() [256]byte {
	var comp [256]byte

	pairs := []struct{ a, b byte }{
		{'A', 'T'},
		{'C', 'G'},
		{'R', 'Y'},
		{'K', 'M'},
		{'B', 'V'},
		{'D', 'H'},
		{'S', 'S'},
		{'W', 'W'},
		{'N', 'N'},
	}

	for _, p := range pairs {
		comp[p.a] = p.b
		comp[p.b] = p.a
		comp[p.a+'a'-'A'] = p.b + 'a' - 'A'
		comp[p.b+'a'-'A'] = p.a + 'a' - 'A'
	}

	return comp
}

// MakeAminoAcidArray returns an array which is true at the byte value of
// every valid amino acid symbol, upper or lower case: the 20 standard
// residues, stop (*), and the ambiguity codes X (any), B ({N,D}),
// Z ({Q,E}) and J ({I,L}).
func MakeAminoAcidArray() [256]bool {
	var valid [256]bool

	for _, c := range []byte("ACDEFGHIKLMNPQRSTVWYBZJX") {
		valid[c] = true
		valid[c+'a'-'A'] = true
	}
	valid['*'] = true

	return valid
}

var (
	nucBits    = MakeNucleotideBitsArray()
	complement = MakeComplementArray()
	aminoValid = MakeAminoAcidArray()
	baseSets   = makeBaseSets()
)

// baseSets[bits] is the set of exact bases in a bitset, in ACGT order
func makeBaseSets() [16][]byte {
	var sets [16][]byte
	for bits := 1; bits < 16; bits++ {
		set := make([]byte, 0, 4)
		if uint8(bits)&baseA != 0 {
			set = append(set, 'A')
		}
		if uint8(bits)&baseC != 0 {
			set = append(set, 'C')
		}
		if uint8(bits)&baseG != 0 {
			set = append(set, 'G')
		}
		if uint8(bits)&baseT != 0 {
			set = append(set, 'T')
		}
		sets[bits] = set
	}
	return sets
}

// IsNucleotide reports whether c is a valid IUPAC nucleotide code,
// exact or ambiguous, in either case.
func IsNucleotide(c byte) bool {
	return nucBits[c] != 0
}

// IsExactBase reports whether c is one of A, C, G or T, in either case.
func IsExactBase(c byte) bool {
	b := nucBits[c]
	return b != 0 && b&(b-1) == 0
}

// IsAmbiguous reports whether c is a degenerate nucleotide code, i.e. one
// standing for more than one exact base.
func IsAmbiguous(c byte) bool {
	b := nucBits[c]
	return b&(b-1) != 0
}

// IsAminoAcid reports whether c is a valid amino acid symbol, including
// stop and the ambiguity codes, in either case.
func IsAminoAcid(c byte) bool {
	return aminoValid[c]
}

// Bases returns the set of exact bases the nucleotide code c can stand
// for, in ACGT order and always upper case: 'A' -> {A}, 'R' -> {A, G},
// 'N' -> {A, C, G, T}. It returns nil for a byte outside the alphabet.
// The returned slice is shared and must not be modified.
func Bases(c byte) []byte {
	return baseSets[nucBits[c]]
}

// Complement returns the complement of the nucleotide code c, preserving
// case, or 0 for a byte outside the alphabet. Degenerate codes complement
// to the code for the complemented base set, so R <-> Y, K <-> M, B <-> V,
// D <-> H, and S, W and N are their own complements.
func Complement(c byte) byte {
	return complement[c]
}

// CheckNucleotides checks every byte of data against the nucleotide
// alphabet, returning an InvalidCharacterError for the first byte that
// fails.
func CheckNucleotides(data []byte) error {
	for i, c := range data {
		if nucBits[c] == 0 {
			return &InvalidCharacterError{Char: c, Pos: i}
		}
	}
	return nil
}

// CheckAminoAcids checks every byte of data against the amino acid
// alphabet, returning an InvalidCharacterError for the first byte that
// fails.
func CheckAminoAcids(data []byte) error {
	for i, c := range data {
		if !aminoValid[c] {
			return &InvalidCharacterError{Char: c, Pos: i}
		}
	}
	return nil
}

// AminoAcidFor returns the canonical amino acid symbol for a set of
// possible amino acids, as produced by expanding an ambiguous codon. A
// single-member set resolves to its member. The sets {D,N}, {E,Q} and
// {I,L} have standardized IUPAC codes (B, Z and J); every other
// multi-member set, including any set containing stop, resolves to the
// generic code X. The input need not be sorted or deduplicated.
func AminoAcidFor(set []byte) byte {
	s := slices.Clone(set)
	slices.Sort(s)
	s = slices.Compact(s)

	switch string(s) {
	case "":
		return 'X'
	case "DN":
		return 'B'
	case "EQ":
		return 'Z'
	case "IL":
		return 'J'
	}
	if len(s) == 1 {
		return s[0]
	}
	return 'X'
}
