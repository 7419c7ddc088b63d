/*
	the minimiser package implements the per-window minimum streaming
	operator: SingleStream reduces one hash stream, DualStream reduces
	the element-wise minimum of two synchronised hash streams.
*/
package minimiser

import (
	"github.com/MitraDarja/minimiser/src/hashstream"
	"github.com/MitraDarja/minimiser/src/window"
)

func leftmost(a, b uint64) bool { return a < b }

// SingleStream emits the deduplicated per-window minimum of an
// upstream hashstream.Stream. Construct with New; the zero value is
// not usable.
type SingleStream struct {
	upstream hashstream.Stream
	buf      *window.Buffer
	min      uint64
	done     bool
	started  bool
}

// New builds a SingleStream minimiser over upstream with the given
// window size. w must be >= 2 - a window of 1 value is a no-op and is
// rejected as hashstream.InvalidArgument, per spec.
func New(w uint32, upstream hashstream.Stream) (*SingleStream, error) {
	if w == 1 {
		return nil, hashstream.NewInvalidArgument("window_values_size must be greater than 1, or use a dual-stream minimiser")
	}
	if w == 0 {
		return nil, hashstream.NewInvalidArgument("window_values_size must be greater than 0")
	}
	if sized, ok := upstream.(hashstream.Sized); ok {
		if n := sized.Len(); n >= 0 && uint32(n) < w {
			w = uint32(n)
		}
	}
	return &SingleStream{
		upstream: upstream,
		buf:      window.New(int(w), leftmost),
	}, nil
}

// Next advances the operator and returns the next emitted minimiser
// value. The second return value is false once the upstream is
// exhausted.
func (s *SingleStream) Next() (uint64, bool) {
	if s.done {
		return 0, false
	}
	if !s.started {
		s.started = true
		if !s.primeFirstWindow() {
			s.done = true
			return 0, false
		}
		return s.min, true
	}
	for {
		emit, ok := s.next()
		if !ok {
			s.done = true
			return 0, false
		}
		if emit {
			return s.min, true
		}
	}
}

// primeFirstWindow fills the buffer to capacity and computes the first
// minimum. Returns false if the upstream was empty.
func (s *SingleStream) primeFirstWindow() bool {
	first, ok := s.upstream.Next()
	if !ok {
		return false
	}
	s.buf.PushBack(first)
	for s.buf.Len() < s.buf.Capacity() {
		v, ok := s.upstream.Next()
		if !ok {
			break
		}
		s.buf.PushBack(v)
	}
	s.min = s.buf.Min()
	return true
}

// next implements the next() algorithm from spec.md 4.2: advance
// upstream by one, and emit exactly when the leaving value was the
// minimum (recomputed unconditionally) or the newcomer is a strict new
// minimum.
func (s *SingleStream) next() (emit bool, ok bool) {
	newVal, upstreamOK := s.upstream.Next()
	if !upstreamOK {
		return false, false
	}
	oldFront := s.buf.Front()
	s.buf.PopFront()
	s.buf.PushBack(newVal)
	if s.min == oldFront {
		s.min = s.buf.Min()
		return true, true
	}
	if newVal < s.min {
		s.min = newVal
		return true, true
	}
	return false, true
}
