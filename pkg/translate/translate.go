// Package translate turns DNA sequences into protein sequences using the
// NCBI genetic code tables, resolving IUPAC nucleotide ambiguity codes to
// amino acid ambiguity codes where the genetic code allows it
package translate

import (
	"errors"
	"fmt"

	"github.com/gencode-dev/gocodon/pkg/alphabet"
	"github.com/gencode-dev/gocodon/pkg/gencode"
	"github.com/gencode-dev/gocodon/pkg/sequence"
)

var errBadOffset = errors.New("frame offset must be 0, 1 or 2")

// AmbiguousCodonError is returned by strict-mode translation when a codon
// can encode more than one amino acid. Index is the 0-based index of the
// codon within the frame being translated.
type AmbiguousCodonError struct {
	Index int
	Codon string
}

func (e *AmbiguousCodonError) Error() string {
	return fmt.Sprintf("ambiguous codon (%s) at codon index %d", e.Codon, e.Index)
}

// Translate translates seq in frame 0 using the genetic code table with
// the given NCBI id. See Frame for the handling of ambiguity codes and
// trailing symbols.
func Translate(seq sequence.DnaSequence, tableID int, strict bool) (sequence.ProteinSequence, error) {
	return Frame(seq, tableID, strict, 0)
}

// Frame translates seq starting at the given offset (0, 1 or 2),
// partitioning it into consecutive non-overlapping codons. Any trailing
// 1-2 symbols that do not fill a codon are dropped, so the result holds
// (seq.Len()-offset)/3 symbols.
//
// A codon of exact bases resolves directly through the table. A codon
// containing ambiguity codes resolves to the set of amino acids reachable
// from nucleotides it can stand for: if the set is a singleton that amino
// acid is used; otherwise the canonical amino acid ambiguity code for the
// set is used, or, in strict mode, translation fails with an
// AmbiguousCodonError. No partial result is ever returned.
func Frame(seq sequence.DnaSequence, tableID int, strict bool, offset int) (sequence.ProteinSequence, error) {
	if offset < 0 || offset > 2 {
		return sequence.ProteinSequence{}, errBadOffset
	}

	table, err := gencode.Lookup(tableID)
	if err != nil {
		return sequence.ProteinSequence{}, err
	}

	n := seq.Len() - offset
	if n < 3 {
		return sequence.ProteinSequence{}, nil
	}

	out := make([]byte, 0, n/3)
	var codon [3]byte
	for i := offset; i+3 <= seq.Len(); i += 3 {
		codon[0] = seq.At(i)
		codon[1] = seq.At(i + 1)
		codon[2] = seq.At(i + 2)

		aa, err := resolve(table, codon, strict, (i-offset)/3)
		if err != nil {
			return sequence.ProteinSequence{}, err
		}
		out = append(out, aa)
	}

	return sequence.NewProteinSequenceFromBytes(out)
}

// resolve maps one codon to one amino acid symbol under table.
func resolve(table *gencode.Table, codon [3]byte, strict bool, index int) (byte, error) {
	if !alphabet.IsAmbiguous(codon[0]) && !alphabet.IsAmbiguous(codon[1]) && !alphabet.IsAmbiguous(codon[2]) {
		return table.Amino(string(codon[:])), nil
	}

	// expand the codon over its candidate bases and collect the distinct
	// amino acids it can encode
	var seen [256]bool
	set := make([]byte, 0, 4)
	exp := NewExpansion(codon)
	for {
		c, ok := exp.Next()
		if !ok {
			break
		}
		aa := table.Amino(string(c[:]))
		if !seen[aa] {
			seen[aa] = true
			set = append(set, aa)
		}
	}

	// ambiguity at the nucleotide level does not necessarily mean
	// ambiguity at the protein level: all of GGN encodes glycine
	if len(set) == 1 {
		return set[0], nil
	}
	if strict {
		return 0, &AmbiguousCodonError{Index: index, Codon: string(codon[:])}
	}
	return alphabet.AminoAcidFor(set), nil
}

// SelfFrames translates the 0, 1 and 2 offsets of the forward strand, in
// that order. An offset is omitted entirely, rather than producing an
// empty translation, when fewer than 3 symbols remain at it, so the
// result holds between 0 and 3 sequences.
func SelfFrames(seq sequence.DnaSequence, tableID int, strict bool) ([]sequence.ProteinSequence, error) {
	out := make([]sequence.ProteinSequence, 0, 3)
	for offset := 0; offset < 3; offset++ {
		if seq.Len()-offset < 3 {
			break
		}
		p, err := Frame(seq, tableID, strict, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// AllFrames translates the up-to-3 self frames of seq followed by the
// up-to-3 self frames of its reverse complement, so the result holds
// between 0 and 6 sequences.
func AllFrames(seq sequence.DnaSequence, tableID int, strict bool) ([]sequence.ProteinSequence, error) {
	forward, err := SelfFrames(seq, tableID, strict)
	if err != nil {
		return nil, err
	}
	reverse, err := SelfFrames(seq.ReverseComplement(), tableID, strict)
	if err != nil {
		return nil, err
	}
	return append(forward, reverse...), nil
}
