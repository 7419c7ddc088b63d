package seqio

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// FASTAReader wraps biogo's fasta.Reader, yielding Sequence values
// instead of biogo's own seq.Sequence so that the rest of this module
// never needs to import biogo directly.
type FASTAReader struct {
	r *fasta.Reader
}

// NewFASTAReader builds a FASTAReader over r, assuming DNA content.
func NewFASTAReader(r io.Reader) *FASTAReader {
	template := linear.NewSeq("", nil, alphabet.DNA)
	return &FASTAReader{r: fasta.NewReader(r, template)}
}

// Read returns the next record, or io.EOF once the reader is exhausted.
func (f *FASTAReader) Read() (*Sequence, error) {
	rec, err := f.r.Read()
	if err != nil {
		return nil, err
	}
	linearSeq, ok := rec.(*linear.Seq)
	if !ok {
		return nil, fmt.Errorf("seqio: unexpected record type %T from FASTA reader", rec)
	}
	seq := make([]byte, linearSeq.Len())
	for i := range seq {
		seq[i] = byte(linearSeq.At(i).L)
	}
	return &Sequence{ID: []byte(linearSeq.Name()), Seq: seq}, nil
}

// ReadAll drains the reader, returning every record.
func (f *FASTAReader) ReadAll() ([]*Sequence, error) {
	var out []*Sequence
	for {
		seq, err := f.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, seq)
	}
}
