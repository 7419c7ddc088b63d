/*
	the hashstream package provides the lazy, forward, single-pass hash
	value stream that the minimiser, syncmer and weighted operators
	consume, plus the rolling k-mer/s-mer hasher (built on ntHash) that
	turns a DNA sequence into one.
*/
package hashstream

import (
	"github.com/will-rowe/ntHash"
)

// DefaultSeed is XOR-combined into every hash value produced by
// KmerHasher unless a different seed is supplied. Seed 0 recovers
// lexicographic order.
const DefaultSeed uint64 = 0x8F3F73B5CF1C9ADE

// Stream is a lazy, forward, single-pass-from-begin sequence of hash
// values. It is not restartable except by reconstructing it from its
// source, and is not safe for concurrent use by more than one caller.
type Stream interface {
	// Next returns the next hash value in the stream. The second
	// return value is false once the stream is exhausted, at which
	// point the first return value must be ignored.
	Next() (uint64, bool)
}

// sliceStream is a Stream backed by an in-memory slice, used by tests
// and by callers who already have their hash values materialised.
type sliceStream struct {
	values []uint64
	pos    int
}

// FromSlice wraps a []uint64 as a Stream.
func FromSlice(values []uint64) Stream {
	return &sliceStream{values: values}
}

// Len reports the number of values remaining, when known. Operators
// use this only at construction time to clamp a window size that is
// larger than the stream - it is not part of the Stream contract
// itself, since a general Stream need not be sized.
type Sized interface {
	Len() int
}

func (s *sliceStream) Next() (uint64, bool) {
	if s.pos >= len(s.values) {
		return 0, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

func (s *sliceStream) Len() int {
	return len(s.values) - s.pos
}

// seededStream XORs a fixed seed into every value produced by an
// upstream Stream.
type seededStream struct {
	upstream Stream
	seed     uint64
}

// Seeded wraps upstream so that every emitted value is XORed with
// seed. Passing seed 0 returns upstream itself, unwrapped, since XOR
// with 0 changes nothing.
func Seeded(upstream Stream, seed uint64) Stream {
	if seed == 0 {
		return upstream
	}
	return &seededStream{upstream: upstream, seed: seed}
}

func (s *seededStream) Next() (uint64, bool) {
	v, ok := s.upstream.Next()
	if !ok {
		return 0, false
	}
	return v ^ s.seed, true
}

// KmerHasher rolls ntHash over a DNA sequence at a fixed k-mer size and
// exposes the resulting hashes as a Stream, seeded per DefaultSeed
// unless overridden. It is the concrete "rolling k-mer hash" collaborator
// that the windowing core treats as an opaque upstream.
type KmerHasher struct {
	ch   <-chan uint64
	seed uint64
	n    int
}

// NewKmerHasher builds a KmerHasher over seq for the given k-mer size.
// canonical selects the canonical (strand-independent) k-mer hash.
func NewKmerHasher(seq []byte, k uint, canonical bool, seed uint64) (*KmerHasher, error) {
	hasher, err := ntHash.New(&seq, k)
	if err != nil {
		return nil, err
	}
	n := len(seq) - int(k) + 1
	if n < 0 {
		n = 0
	}
	return &KmerHasher{
		ch:   hasher.Hash(canonical),
		seed: seed,
		n:    n,
	}, nil
}

// Next implements Stream.
func (h *KmerHasher) Next() (uint64, bool) {
	v, ok := <-h.ch
	if !ok {
		return 0, false
	}
	if h.n > 0 {
		h.n--
	}
	return v ^ h.seed, true
}

// Len implements Sized: the number of k-mers still to come, computed
// up front as len(seq)-k+1 and decremented on every Next.
func (h *KmerHasher) Len() int {
	return h.n
}
