package cmd

import (
	"os"

	"github.com/MitraDarja/minimiser/src/hashstream"
	"github.com/MitraDarja/minimiser/src/seqio"
)

// loadFASTA reads every record from a FASTA file, upper-casing and
// cleaning bases as it goes.
func loadFASTA(path string) ([]*seqio.Sequence, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	reader := seqio.NewFASTAReader(fh)
	seqs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, s := range seqs {
		if err := s.BaseCheck(); err != nil {
			return nil, err
		}
	}
	return seqs, nil
}

// revComp returns the reverse complement of seq without mutating it.
func revComp(seq []byte) []byte {
	cp := make([]byte, len(seq))
	copy(cp, seq)
	read := &seqio.FASTAread{Sequence: seqio.Sequence{Seq: cp}}
	read.RevComplement()
	return read.Seq
}

// reverseUint64 reverses vals in place and returns it, so a hash stream
// pulled from a reverse-complemented sequence can be re-aligned,
// position for position, with its forward counterpart.
func reverseUint64(vals []uint64) []uint64 {
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	return vals
}

// drainStream pulls every value out of s.
func drainStream(s hashstream.Stream) []uint64 {
	var out []uint64
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// reverseHashStream materialises a KmerHasher run over the
// reverse-complement of seq, then flips it so its i'th value lines up
// with the i'th value of the forward hash stream over seq.
func reverseHashStream(seq []byte, k uint32, seed uint64) (hashstream.Stream, error) {
	hasher, err := hashstream.NewKmerHasher(revComp(seq), uint(k), false, seed)
	if err != nil {
		return nil, err
	}
	return hashstream.FromSlice(reverseUint64(drainStream(hasher))), nil
}
