/*
	the syncmer package implements the closed-syncmer streaming operator:
	a k-mer is selected exactly when its internal minimal s-mer sits at
	the leftmost or rightmost position of the (w+1)-sized s-mer window,
	w = k - s.
*/
package syncmer

import (
	"github.com/MitraDarja/minimiser/src/hashstream"
	"github.com/MitraDarja/minimiser/src/weighted"
	"github.com/MitraDarja/minimiser/src/window"
)

func robustMin(a, b uint64) bool { return a <= b }

// Syncmer emits the deduplicated k-mer hash stream selected by the
// closed-syncmer predicate over a paired k-mer/s-mer stream. Construct
// with New; the zero value is not usable.
type Syncmer struct {
	kStream hashstream.Stream
	sStream hashstream.Stream
	buf     *window.Buffer // s-mer window, capacity w+1
	smer    uint64
	kVal    uint64
	done    bool
	started bool
}

// New builds a Syncmer over paired k-mer and s-mer streams. k and s are
// the k-mer and s-mer sizes; New rejects k < s with
// hashstream.InvalidArgument. The two streams must be produced from the
// same underlying sequence, with |sStream| = |kStream| + (k - s).
func New(k, s uint32, kStream, sStream hashstream.Stream) (*Syncmer, error) {
	if k < s {
		return nil, hashstream.NewInvalidArgument("k-mer size must be at least as large as the s-mer size")
	}
	w := k - s
	return &Syncmer{
		kStream: kStream,
		sStream: sStream,
		buf:     window.New(int(w)+1, robustMin),
	}, nil
}

// NewCanonical builds a strand-aware Syncmer: the forward and
// reverse-complement k-mer streams are combined by element-wise minimum,
// as are the forward and reverse-complement s-mer streams, before
// delegating to the same closed-syncmer selection as New. This makes
// selection independent of which strand of a double-stranded sequence
// was read.
func NewCanonical(k, s uint32, kFwd, kRev, sFwd, sRev hashstream.Stream) (*Syncmer, error) {
	kCombined, err := weighted.CombineStrands(kFwd, kRev)
	if err != nil {
		return nil, err
	}
	sCombined, err := weighted.CombineStrands(sFwd, sRev)
	if err != nil {
		return nil, err
	}
	return New(k, s, kCombined, sCombined)
}

// Next advances the operator and returns the next emitted k-mer hash.
// The second return value is false once either upstream is exhausted.
func (sc *Syncmer) Next() (uint64, bool) {
	if sc.done {
		return 0, false
	}
	if !sc.started {
		sc.started = true
		emit, ok := sc.primeFirstWindow()
		if !ok {
			sc.done = true
			return 0, false
		}
		if emit {
			return sc.kVal, true
		}
	}
	for {
		emit, ok := sc.next()
		if !ok {
			sc.done = true
			return 0, false
		}
		if emit {
			return sc.kVal, true
		}
	}
}

// primeFirstWindow fills the s-mer buffer to w+1 values, computes the
// robust minimum, and reports whether the first window already
// qualifies as a syncmer. Returns ok=false if either stream was empty.
func (sc *Syncmer) primeFirstWindow() (emit bool, ok bool) {
	first, upstreamOK := sc.sStream.Next()
	if !upstreamOK {
		return false, false
	}
	sc.buf.PushBack(first)
	for sc.buf.Len() < sc.buf.Capacity() {
		v, upstreamOK := sc.sStream.Next()
		if !upstreamOK {
			break
		}
		sc.buf.PushBack(v)
	}
	sc.smer = sc.buf.Min()
	k0, upstreamOK := sc.kStream.Next()
	if !upstreamOK {
		return false, false
	}
	sc.kVal = k0
	w := sc.buf.Capacity() - 1
	if sc.smer == sc.buf.At(0) || sc.smer == sc.buf.At(w) {
		return true, true
	}
	return false, true
}

// next implements the incremental closed-syncmer update: pop the s-mer
// window's front, push the new s-mer, and re-derive the window minimum
// only when the outgoing value was it.
func (sc *Syncmer) next() (emit bool, ok bool) {
	newK, upstreamOK := sc.kStream.Next()
	if !upstreamOK {
		return false, false
	}
	newS, upstreamOK := sc.sStream.Next()
	if !upstreamOK {
		return false, false
	}
	if sc.smer == sc.buf.Front() {
		sc.buf.PopFront()
		sc.smer = sc.buf.Min()
	} else {
		sc.buf.PopFront()
	}
	sc.buf.PushBack(newS)
	if newS < sc.smer {
		sc.smer = newS
		sc.kVal = newK
		return true, true
	}
	if sc.smer == sc.buf.Front() {
		sc.kVal = newK
		return true, true
	}
	return false, true
}
