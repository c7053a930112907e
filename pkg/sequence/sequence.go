// Package sequence provides immutable, validated containers for DNA and
// protein sequence data. DnaSequence and ProteinSequence are distinct
// types that never interoperate: every transform returns a new container
// of the same type, and the only cross-type route is translation
package sequence

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/gencode-dev/gocodon/pkg/alphabet"
)

// Sequence is the capability set shared by DnaSequence and
// ProteinSequence.
type Sequence interface {
	Len() int
	At(i int) byte
	Bytes() []byte
	String() string
}

// TypeMismatchError is returned when an operation tries to combine
// sequences of different concrete types.
type TypeMismatchError struct {
	Left, Right string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot concatenate %s with %s", e.Left, e.Right)
}

// A DnaSequence is an immutable sequence of IUPAC nucleotide codes,
// normalized to upper case. The zero value is the empty sequence.
type DnaSequence struct {
	seq string
}

// A ProteinSequence is an immutable sequence of amino acid symbols,
// normalized to upper case. The zero value is the empty sequence.
type ProteinSequence struct {
	seq string
}

// normalize upper-cases data and checks it against an alphabet, returning
// an alphabet.InvalidCharacterError naming the offending byte and position
// on failure. A fresh string is always built, so the container never
// aliases caller memory.
func normalize(data []byte, valid func(byte) bool) (string, error) {
	buf := make([]byte, len(data))
	for i, c := range data {
		u := c
		if u >= 'a' && u <= 'z' {
			u -= 'a' - 'A'
		}
		if !valid(u) {
			return "", &alphabet.InvalidCharacterError{Char: c, Pos: i}
		}
		buf[i] = u
	}
	return string(buf), nil
}

// NewDnaSequence constructs a DnaSequence from text, accepting either
// case.
func NewDnaSequence(s string) (DnaSequence, error) {
	return NewDnaSequenceFromBytes([]byte(s))
}

// NewDnaSequenceFromBytes constructs a DnaSequence from byte data,
// accepting either case. The input is copied, never retained.
func NewDnaSequenceFromBytes(data []byte) (DnaSequence, error) {
	seq, err := normalize(data, alphabet.IsNucleotide)
	if err != nil {
		return DnaSequence{}, err
	}
	return DnaSequence{seq: seq}, nil
}

// NewProteinSequence constructs a ProteinSequence from text, accepting
// either case.
func NewProteinSequence(s string) (ProteinSequence, error) {
	return NewProteinSequenceFromBytes([]byte(s))
}

// NewProteinSequenceFromBytes constructs a ProteinSequence from byte
// data, accepting either case. The input is copied, never retained.
func NewProteinSequenceFromBytes(data []byte) (ProteinSequence, error) {
	seq, err := normalize(data, alphabet.IsAminoAcid)
	if err != nil {
		return ProteinSequence{}, err
	}
	return ProteinSequence{seq: seq}, nil
}

// Len returns the number of symbols in the sequence.
func (s DnaSequence) Len() int { return len(s.seq) }

// At returns the symbol at position i.
func (s DnaSequence) At(i int) byte { return s.seq[i] }

// Bytes returns a copy of the sequence's symbols. The caller owns the
// returned slice.
func (s DnaSequence) Bytes() []byte { return []byte(s.seq) }

// String returns the sequence as text.
func (s DnaSequence) String() string { return s.seq }

// Equal reports whether two DnaSequences hold the same symbols.
func (s DnaSequence) Equal(o DnaSequence) bool { return s.seq == o.seq }

// Hash returns a hash of the sequence, suitable for use in hash tables.
// Sequences of different types hash differently even for equal text.
func (s DnaSequence) Hash() uint64 { return hashSeq('D', s.seq) }

// Iter returns a restartable iterator over the sequence's symbols.
func (s DnaSequence) Iter() *Iterator { return &Iterator{seq: s.seq} }

// Slice returns a new DnaSequence holding the symbols in [from, to).
// Like a Go slice expression, it panics if the range is out of bounds.
func (s DnaSequence) Slice(from, to int) DnaSequence {
	return DnaSequence{seq: strings.Clone(s.seq[from:to])}
}

// Append returns a new DnaSequence holding s followed by o.
func (s DnaSequence) Append(o DnaSequence) DnaSequence {
	return DnaSequence{seq: s.seq + o.seq}
}

// Repeat returns a new DnaSequence holding count copies of s. Like
// strings.Repeat, it panics if count is negative.
func (s DnaSequence) Repeat(count int) DnaSequence {
	return DnaSequence{seq: strings.Repeat(s.seq, count)}
}

// ReverseComplement returns the reverse complement of s: position i of
// the result is the complement of position len-1-i of s. The transform
// is an involution, so applying it twice gives back the original
// sequence.
func (s DnaSequence) ReverseComplement() DnaSequence {
	buf := make([]byte, len(s.seq))
	for i := 0; i < len(s.seq); i++ {
		buf[len(s.seq)-1-i] = alphabet.Complement(s.seq[i])
	}
	return DnaSequence{seq: string(buf)}
}

// Len returns the number of symbols in the sequence.
func (s ProteinSequence) Len() int { return len(s.seq) }

// At returns the symbol at position i.
func (s ProteinSequence) At(i int) byte { return s.seq[i] }

// Bytes returns a copy of the sequence's symbols. The caller owns the
// returned slice.
func (s ProteinSequence) Bytes() []byte { return []byte(s.seq) }

// String returns the sequence as text.
func (s ProteinSequence) String() string { return s.seq }

// Equal reports whether two ProteinSequences hold the same symbols.
func (s ProteinSequence) Equal(o ProteinSequence) bool { return s.seq == o.seq }

// Hash returns a hash of the sequence, suitable for use in hash tables.
// Sequences of different types hash differently even for equal text.
func (s ProteinSequence) Hash() uint64 { return hashSeq('P', s.seq) }

// Iter returns a restartable iterator over the sequence's symbols.
func (s ProteinSequence) Iter() *Iterator { return &Iterator{seq: s.seq} }

// Slice returns a new ProteinSequence holding the symbols in [from, to).
// Like a Go slice expression, it panics if the range is out of bounds.
func (s ProteinSequence) Slice(from, to int) ProteinSequence {
	return ProteinSequence{seq: strings.Clone(s.seq[from:to])}
}

// Append returns a new ProteinSequence holding s followed by o.
func (s ProteinSequence) Append(o ProteinSequence) ProteinSequence {
	return ProteinSequence{seq: s.seq + o.seq}
}

// Repeat returns a new ProteinSequence holding count copies of s. Like
// strings.Repeat, it panics if count is negative.
func (s ProteinSequence) Repeat(count int) ProteinSequence {
	return ProteinSequence{seq: strings.Repeat(s.seq, count)}
}

// Concat concatenates two sequences of the same concrete type, returning
// a TypeMismatchError if the types differ. Callers holding concrete
// types should prefer Append, which makes a mismatch impossible.
func Concat(a, b Sequence) (Sequence, error) {
	switch x := a.(type) {
	case DnaSequence:
		if y, ok := b.(DnaSequence); ok {
			return x.Append(y), nil
		}
	case ProteinSequence:
		if y, ok := b.(ProteinSequence); ok {
			return x.Append(y), nil
		}
	}
	return nil, &TypeMismatchError{Left: fmt.Sprintf("%T", a), Right: fmt.Sprintf("%T", b)}
}

func hashSeq(kind byte, seq string) uint64 {
	h := fnv.New64a()
	h.Write([]byte{kind})
	h.Write([]byte(seq))
	return h.Sum64()
}

// An Iterator walks a sequence's symbols in order. It is finite and
// restartable; Reset rewinds it to the first symbol.
type Iterator struct {
	seq string
	pos int
}

// Next returns the next symbol, or false when the sequence is exhausted.
func (it *Iterator) Next() (byte, bool) {
	if it.pos >= len(it.seq) {
		return 0, false
	}
	c := it.seq[it.pos]
	it.pos++
	return c, true
}

// Reset rewinds the iterator to the start of the sequence.
func (it *Iterator) Reset() {
	it.pos = 0
}
