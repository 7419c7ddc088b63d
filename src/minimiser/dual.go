package minimiser

import (
	"github.com/MitraDarja/minimiser/src/hashstream"
	"github.com/MitraDarja/minimiser/src/window"
)

// DualStream emits the deduplicated per-window minimum of the
// element-wise minimum of two synchronised hash streams, e.g. the
// forward and reverse-complement k-mer hashes of a DNA sequence.
type DualStream struct {
	a, b    hashstream.Stream
	buf     *window.Buffer
	min     uint64
	done    bool
	started bool
}

// NewDual builds a DualStream minimiser over a and b with the given
// window size. When both streams report a known length (hashstream.Sized)
// they must agree, or construction fails with hashstream.LengthMismatch;
// unsized streams are not checked and simply stop combining once either
// side is exhausted.
func NewDual(w uint32, a, b hashstream.Stream) (*DualStream, error) {
	if w == 0 {
		return nil, hashstream.NewInvalidArgument("window_values_size must be greater than 0")
	}
	if sa, ok := a.(hashstream.Sized); ok {
		if sb, ok := b.(hashstream.Sized); ok {
			if sa.Len() != sb.Len() {
				return nil, hashstream.NewLengthMismatch("the two streams do not have the same size")
			}
			if n := sa.Len(); n >= 0 && uint32(n) < w {
				w = uint32(n)
			}
		}
	}
	return &DualStream{
		a:   a,
		b:   b,
		buf: window.New(int(w), leftmost),
	}, nil
}

func (d *DualStream) combined() (uint64, bool) {
	va, ok := d.a.Next()
	if !ok {
		return 0, false
	}
	vb, ok := d.b.Next()
	if !ok {
		return 0, false
	}
	if vb < va {
		return vb, true
	}
	return va, true
}

// Next advances the operator and returns the next emitted minimiser
// value. The second return value is false once either upstream is
// exhausted.
func (d *DualStream) Next() (uint64, bool) {
	if d.done {
		return 0, false
	}
	if !d.started {
		d.started = true
		if !d.primeFirstWindow() {
			d.done = true
			return 0, false
		}
		return d.min, true
	}
	for {
		emit, ok := d.next()
		if !ok {
			d.done = true
			return 0, false
		}
		if emit {
			return d.min, true
		}
	}
}

func (d *DualStream) primeFirstWindow() bool {
	first, ok := d.combined()
	if !ok {
		return false
	}
	d.buf.PushBack(first)
	for d.buf.Len() < d.buf.Capacity() {
		v, ok := d.combined()
		if !ok {
			break
		}
		d.buf.PushBack(v)
	}
	d.min = d.buf.Min()
	return true
}

func (d *DualStream) next() (emit bool, ok bool) {
	newVal, upstreamOK := d.combined()
	if !upstreamOK {
		return false, false
	}
	oldFront := d.buf.Front()
	d.buf.PopFront()
	d.buf.PushBack(newVal)
	if d.min == oldFront {
		d.min = d.buf.Min()
		return true, true
	}
	if newVal < d.min {
		d.min = newVal
		return true, true
	}
	return false, true
}
