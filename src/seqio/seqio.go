/*
	the seqio package contains custom types and methods for holding and
	processing the DNA sequences that feed the hashstream package's
	rolling k-mer/s-mer hasher.
*/
package seqio

import (
	"unicode"
)

// complementBases is the lookup table used during reverse complementation.
var complementBases = []byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
	'N': 'N',
}

// Sequence is the base type for a FASTA record.
type Sequence struct {
	ID  []byte
	Seq []byte
}

// FASTAread is a Sequence plus the strand it currently represents.
type FASTAread struct {
	Sequence
	RC bool
}

// BaseCheck upper-cases the sequence and replaces any non-ACGTN
// character with N, mirroring the FASTQ-era check this is adapted
// from.
func (s *Sequence) BaseCheck() error {
	for i, j := 0, len(s.Seq); i < j; i++ {
		switch base := unicode.ToUpper(rune(s.Seq[i])); base {
		case 'A', 'C', 'T', 'G', 'N':
			s.Seq[i] = byte(base)
		default:
			s.Seq[i] = byte('N')
		}
	}
	return nil
}

// RevComplement reverse-complements the sequence held by a FASTAread in
// place and flips its RC flag.
func (r *FASTAread) RevComplement() {
	for i, j := 0, len(r.Seq); i < j; i++ {
		r.Seq[i] = complementBases[r.Seq[i]]
	}
	for i, j := 0, len(r.Seq)-1; i <= j; i, j = i+1, j-1 {
		r.Seq[i], r.Seq[j] = r.Seq[j], r.Seq[i]
	}
	r.RC = !r.RC
}
