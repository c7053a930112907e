// Package fasta reads and writes sequence records in fasta format, and
// converts them to the validated sequence containers the translation
// engine works on. The engine itself performs no I/O; this package is the
// file-format boundary around it
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/gencode-dev/gocodon/pkg/sequence"
)

var errBadlyFormedFasta = errors.New("badly formed fasta file")

// A Record is one fasta record: an ID (the first whitespace-delimited
// field of the header), the full header line as Description, and the
// sequence text as it appeared in the file.
type Record struct {
	ID          string
	Description string
	Seq         string
}

// Dna converts the record's sequence text to a validated DnaSequence.
func (r Record) Dna() (sequence.DnaSequence, error) {
	return sequence.NewDnaSequence(r.Seq)
}

// A Reader reads fasta records from an underlying reader.
type Reader struct {
	*bufio.Reader
}

func NewReader(f io.Reader) *Reader {
	return &Reader{bufio.NewReader(f)}
}

// dropNewline strips a trailing unix or dos newline from line.
func dropNewline(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}

// Read reads one fasta record from the underlying reader. The final
// record is returned with error = nil, and the next call returns an
// empty Record and io.EOF.
func (r *Reader) Read() (Record, error) {
	// the header line; a file must not end on one, so io.EOF here is an
	// error for the record being read
	line, err := r.ReadBytes('\n')
	if err != nil {
		return Record{}, err
	}
	if line[0] != '>' {
		return Record{}, errBadlyFormedFasta
	}
	line = dropNewline(line)

	var rec Record
	fields := bytes.Fields(line[1:])
	if len(fields) > 0 {
		rec.ID = string(fields[0])
	}
	rec.Description = string(line[1:])

	var seq []byte
	for {
		peek, err := r.Peek(1)
		if err == io.EOF || (err == nil && peek[0] == '>') {
			break
		}
		if err != nil {
			return Record{}, err
		}

		// a sequence line; ReadBytes may legitimately return io.EOF when
		// the file does not end in a newline
		line, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Record{}, err
		}
		seq = append(seq, dropNewline(line)...)
	}
	rec.Seq = string(seq)

	return rec, nil
}

// ReadAll reads every record from f.
func ReadAll(f io.Reader) ([]Record, error) {
	r := NewReader(f)
	var records []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Write writes one record to w, wrapping sequence lines to wrap
// characters. A wrap of 0 or less writes the sequence on a single line.
func Write(w io.Writer, rec Record, wrap int) error {
	if _, err := w.Write([]byte(">" + rec.Description + "\n")); err != nil {
		return err
	}
	seq := rec.Seq
	if wrap <= 0 {
		wrap = len(seq)
	}
	for start := 0; start < len(seq); start += wrap {
		end := start + wrap
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := w.Write([]byte(seq[start:end] + "\n")); err != nil {
			return err
		}
	}
	if len(seq) == 0 {
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
