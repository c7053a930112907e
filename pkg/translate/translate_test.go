package translate

import (
	"errors"
	"testing"

	"github.com/gencode-dev/gocodon/pkg/gencode"
	"github.com/gencode-dev/gocodon/pkg/sequence"
)

func dna(t *testing.T, s string) sequence.DnaSequence {
	t.Helper()
	d, err := sequence.NewDnaSequence(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustTranslate(t *testing.T, s string, tableID int) string {
	t.Helper()
	p, err := Translate(dna(t, s), tableID, false)
	if err != nil {
		t.Fatal(err)
	}
	return p.String()
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		in      string
		tableID int
		want    string
	}{
		{"AAAGGGAAA", 1, "KGK"},
		{"taatcaagactattcaaccaa", 1, "*SRLFNQ"},
		{"taatcaagactattcaaccaa", 22, "**RLFNQ"},
		{"ATGAAA", 2, "MK"},
		{"AGAATA", 2, "*M"},
		{"", 1, ""},
		{"AC", 1, ""},       // too short for a codon
		{"AAAGG", 1, "K"},   // trailing symbols are dropped
		{"atgtaa", 1, "M*"}, // case-insensitive input
	}

	for _, c := range cases {
		if got := mustTranslate(t, c.in, c.tableID); got != c.want {
			t.Errorf("Translate(%q, table %d) = %q, want %q", c.in, c.tableID, got, c.want)
		}
	}
}

func TestTranslateLengthLaw(t *testing.T) {
	seqs := []string{"", "A", "AC", "ACG", "ACGT", "ACGTA", "ACGTAC", "TAATCAAGACTATTCAACCAA"}
	for _, s := range seqs {
		got := mustTranslate(t, s, 1)
		if len(got) != len(s)/3 {
			t.Errorf("len(Translate(%q)) = %d, want %d", s, len(got), len(s)/3)
		}
	}
}

func TestTranslateAmbiguous(t *testing.T) {
	cases := []struct{ in, want string }{
		{"GGNATN", "GX"}, // GGN is glycine whatever N is; ATN is {I,M}
		{"RAT", "B"},     // {AAT:N, GAT:D} -> B
		{"SAA", "Z"},     // {CAA:Q, GAA:E} -> Z
		{"ATH", "I"},     // {ATA, ATC, ATT} all isoleucine
		{"MTA", "J"},     // {ATA:I, CTA:L} -> J
		{"TRA", "*"},     // {TAA, TGA} both stop on table 1
		{"TAR", "*"},
		{"NNN", "X"},
		{"TTR", "L"},
		{"TTV", "X"}, // {TTA:L, TTC:F, TTG:L}
	}

	for _, c := range cases {
		if got := mustTranslate(t, c.in, 1); got != c.want {
			t.Errorf("Translate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTranslateAmbiguityIsPerTable(t *testing.T) {
	// TGA is stop on table 1 but tryptophan on table 2, so TGR resolves
	// differently
	if got := mustTranslate(t, "TGR", 1); got != "X" {
		t.Errorf("Translate(TGR, table 1) = %q, want X", got)
	}
	if got := mustTranslate(t, "TGR", 2); got != "W" {
		t.Errorf("Translate(TGR, table 2) = %q, want W", got)
	}
}

func TestTranslateStrict(t *testing.T) {
	// nucleotide ambiguity that resolves to one amino acid is fine in
	// strict mode
	p, err := Translate(dna(t, "GGN"), 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "G" {
		t.Errorf("strict Translate(GGN) = %q, want G", p.String())
	}

	_, err = Translate(dna(t, "AAARAT"), 1, true)
	var ambiguous *AmbiguousCodonError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousCodonError, got %v", err)
	}
	if ambiguous.Index != 1 || ambiguous.Codon != "RAT" {
		t.Errorf("wrong error payload: %+v", ambiguous)
	}
}

func TestTranslateUnknownTable(t *testing.T) {
	_, err := Translate(dna(t, "ATG"), 17, false)
	var unknown *gencode.UnknownTableError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTableError, got %v", err)
	}
}

func TestFrameOffsets(t *testing.T) {
	d := dna(t, "AAAGGGAAA")

	cases := []struct {
		offset int
		want   string
	}{
		{0, "KGK"},
		{1, "KG"},
		{2, "RE"},
	}
	for _, c := range cases {
		p, err := Frame(d, 1, false, c.offset)
		if err != nil {
			t.Fatal(err)
		}
		if p.String() != c.want {
			t.Errorf("Frame(offset %d) = %q, want %q", c.offset, p.String(), c.want)
		}
	}

	if _, err := Frame(d, 1, false, 3); err == nil {
		t.Errorf("offset 3 should be rejected")
	}
	if _, err := Frame(d, 1, false, -1); err == nil {
		t.Errorf("offset -1 should be rejected")
	}
}

func TestSelfFrames(t *testing.T) {
	ps, err := SelfFrames(dna(t, "AAAGGGAAA"), 1, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"KGK", "KG", "RE"}
	if len(ps) != len(want) {
		t.Fatalf("wrong number of frames: %d", len(ps))
	}
	for i := range want {
		if ps[i].String() != want[i] {
			t.Errorf("frame %d = %q, want %q", i, ps[i].String(), want[i])
		}
	}

	// a frame is omitted entirely when fewer than 3 symbols remain at
	// its offset
	for _, c := range []struct {
		in   string
		want int
	}{
		{"GGGGG", 3},
		{"GGGG", 2},
		{"GGG", 1},
		{"GG", 0},
		{"", 0},
	} {
		ps, err := SelfFrames(dna(t, c.in), 1, false)
		if err != nil {
			t.Fatal(err)
		}
		if len(ps) != c.want {
			t.Errorf("SelfFrames(%q) gave %d frames, want %d", c.in, len(ps), c.want)
		}
	}
}

func TestAllFrames(t *testing.T) {
	ps, err := AllFrames(dna(t, "AAAA"), 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 4 {
		t.Fatalf("AllFrames(AAAA) gave %d frames, want 4", len(ps))
	}
	want := []string{"K", "K", "F", "F"}
	for i := range want {
		if ps[i].String() != want[i] {
			t.Errorf("frame %d = %q, want %q", i, ps[i].String(), want[i])
		}
	}

	ps, err = AllFrames(dna(t, "AA"), 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 0 {
		t.Errorf("AllFrames(AA) gave %d frames, want 0", len(ps))
	}

	ps, err = AllFrames(dna(t, "AAAGGGAAA"), 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 6 {
		t.Errorf("AllFrames on a 9-mer gave %d frames, want 6", len(ps))
	}
}

func TestSliceThenTranslate(t *testing.T) {
	d := dna(t, "taatcaagactattcaaccaa").Slice(3, 9)

	p, err := Translate(d, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "SR" {
		t.Errorf("wrong translation of slice: %q", p.String())
	}

	if got := d.ReverseComplement().String(); got != "TCTTGA" {
		t.Errorf("wrong reverse complement of slice: %q", got)
	}
}

func TestExpansion(t *testing.T) {
	exp := NewExpansion([3]byte{'G', 'G', 'N'})
	var got []string
	for {
		c, ok := exp.Next()
		if !ok {
			break
		}
		got = append(got, string(c[:]))
	}
	want := []string{"GGA", "GGC", "GGG", "GGT"}
	if len(got) != len(want) {
		t.Fatalf("wrong expansion size: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expansion order: got %v, want %v", got, want)
		}
	}

	// restartable
	exp.Reset()
	if c, ok := exp.Next(); !ok || string(c[:]) != "GGA" {
		t.Errorf("expansion should restart after Reset")
	}

	// an exact codon yields itself exactly once
	exp = NewExpansion([3]byte{'A', 'T', 'G'})
	c, ok := exp.Next()
	if !ok || string(c[:]) != "ATG" {
		t.Errorf("wrong expansion of exact codon")
	}
	if _, ok := exp.Next(); ok {
		t.Errorf("exact codon should expand to one codon only")
	}

	// NNN is the worst case, 64 codons
	exp = NewExpansion([3]byte{'N', 'N', 'N'})
	n := 0
	for {
		if _, ok := exp.Next(); !ok {
			break
		}
		n++
	}
	if n != 64 {
		t.Errorf("NNN should expand to 64 codons, got %d", n)
	}
}
