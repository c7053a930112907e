package fasta

import (
	"fmt"
	"io"

	"github.com/op/go-logging"

	"github.com/gencode-dev/gocodon/pkg/sequence"
	"github.com/gencode-dev/gocodon/pkg/translate"
)

var log = logging.MustGetLogger("fasta")

// frame name suffixes for the self and reverse strand offsets, in the
// order AllFrames produces them
var frameNames = []string{"frame=1", "frame=2", "frame=3", "frame=-1", "frame=-2", "frame=-3"}

// TranslateRecords reads fasta records of DNA from in and writes their
// translations to out. frames selects what is translated per record:
// "0", "1" or "2" for a single offset of the forward strand, "self" for
// every usable forward offset, and "all" for every usable offset on both
// strands. Multi-frame output carries a frame suffix on each record's
// description. Records too short for any requested frame produce no
// output, which mirrors the engine's frame-omission rule.
func TranslateRecords(in io.Reader, out io.Writer, tableID int, strict bool, frames string, wrap int) error {
	r := NewReader(in)
	nRecords, nWritten := 0, 0

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		nRecords++

		dna, err := rec.Dna()
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}

		switch frames {
		case "0", "1", "2":
			offset := int(frames[0] - '0')
			if dna.Len()-offset < 3 {
				log.Debugf("record %s: too short for offset %d, skipped", rec.ID, offset)
				continue
			}
			p, err := translate.Frame(dna, tableID, strict, offset)
			if err != nil {
				return fmt.Errorf("record %s: %w", rec.ID, err)
			}
			if err := Write(out, Record{Description: rec.Description, Seq: p.String()}, wrap); err != nil {
				return err
			}
			nWritten++
		case "self", "all":
			var proteins []translateResult
			if frames == "self" {
				ps, err := translate.SelfFrames(dna, tableID, strict)
				if err != nil {
					return fmt.Errorf("record %s: %w", rec.ID, err)
				}
				proteins = named(ps, frameNames[:3])
			} else {
				fwd, err := translate.SelfFrames(dna, tableID, strict)
				if err != nil {
					return fmt.Errorf("record %s: %w", rec.ID, err)
				}
				rev, err := translate.SelfFrames(dna.ReverseComplement(), tableID, strict)
				if err != nil {
					return fmt.Errorf("record %s: %w", rec.ID, err)
				}
				proteins = named(fwd, frameNames[:3])
				proteins = append(proteins, named(rev, frameNames[3:])...)
			}
			for _, p := range proteins {
				desc := rec.Description + " " + p.name
				if err := Write(out, Record{Description: desc, Seq: p.seq}, wrap); err != nil {
					return err
				}
				nWritten++
			}
		default:
			return fmt.Errorf("unknown frame selection %q", frames)
		}
	}

	log.Infof("translated %d records, wrote %d", nRecords, nWritten)
	return nil
}

type translateResult struct {
	name string
	seq  string
}

func named(ps []sequence.ProteinSequence, names []string) []translateResult {
	out := make([]translateResult, len(ps))
	for i, p := range ps {
		out[i] = translateResult{name: names[i], seq: p.String()}
	}
	return out
}

// ReverseComplementRecords reads fasta records of DNA from in and writes
// their reverse complements to out.
func ReverseComplementRecords(in io.Reader, out io.Writer, wrap int) error {
	r := NewReader(in)
	n := 0

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		dna, err := rec.Dna()
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}
		rc := dna.ReverseComplement()
		if err := Write(out, Record{Description: rec.Description, Seq: rc.String()}, wrap); err != nil {
			return err
		}
		n++
	}

	log.Infof("reverse complemented %d records", n)
	return nil
}
