/*
	the weighted package implements the strand-aware combination stage:
	given two synchronised hash streams and a membership predicate over
	hash values, it emits per position either the min or the max of the
	pair, biasing later window-minimum selection away from flagged
	k-mers.
*/
package weighted

import (
	"github.com/MitraDarja/minimiser/src/hashstream"
)

// Membership is an externally-owned predicate over hash values. It is
// consulted exactly twice per position by Combiner and is assumed
// side-effect-free.
type Membership interface {
	Contains(h uint64) bool
}

// combiner emits max(f,r) at any position where f or r is flagged by
// membership, and min(f,r) otherwise.
type combiner struct {
	f, r       hashstream.Stream
	membership Membership
}

// NewCombiner builds the weighted combination of f and r driven by
// membership. f and r are consumed in lockstep; the combined stream ends
// as soon as either is exhausted. When both streams report a known
// length (hashstream.Sized) they must agree, or construction fails with
// hashstream.LengthMismatch.
func NewCombiner(f, r hashstream.Stream, membership Membership) (hashstream.Stream, error) {
	if sf, ok := f.(hashstream.Sized); ok {
		if sr, ok := r.(hashstream.Sized); ok {
			if sf.Len() != sr.Len() {
				return nil, hashstream.NewLengthMismatch("the two streams do not have the same size")
			}
		}
	}
	return &combiner{f: f, r: r, membership: membership}, nil
}

func (c *combiner) Next() (uint64, bool) {
	fv, ok := c.f.Next()
	if !ok {
		return 0, false
	}
	rv, ok := c.r.Next()
	if !ok {
		return 0, false
	}
	flaggedF := c.membership.Contains(fv)
	flaggedR := c.membership.Contains(rv)
	if flaggedF || flaggedR {
		if fv > rv {
			return fv, true
		}
		return rv, true
	}
	if fv < rv {
		return fv, true
	}
	return rv, true
}

// CombineStrands is the unconditional-min special case of Combiner: the
// membership set is empty, so every position resolves to min(f,r). It is
// the strand-combination step used by syncmer.NewCanonical;
// minimiser.DualStream computes the same element-wise minimum itself.
func CombineStrands(f, r hashstream.Stream) (hashstream.Stream, error) {
	return NewCombiner(f, r, emptySet{})
}

type emptySet struct{}

func (emptySet) Contains(uint64) bool { return false }
