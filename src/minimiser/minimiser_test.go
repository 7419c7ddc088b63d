package minimiser

import (
	"testing"

	"github.com/MitraDarja/minimiser/src/hashstream"
)

func collect(s hashstream.Stream) []uint64 {
	var out []uint64
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func equal(got, want []uint64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// scenario A from the property table: the plain running minimum.
func TestSingleStreamScenarioA(t *testing.T) {
	in := hashstream.FromSlice([]uint64{28, 100, 9, 23, 4, 1, 72, 37, 8})
	m, err := New(4, in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := collect(m)
	want := []uint64{9, 4, 1}
	if !equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// scenario C: k-mer hashes of ACGTAGC at k=3 ungapped.
func TestSingleStreamScenarioC(t *testing.T) {
	in := hashstream.FromSlice([]uint64{6, 27, 44, 50, 9})
	m, err := New(4, in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := collect(m)
	want := []uint64{6, 9}
	if !equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// scenario D: constant input still emits on every window shift, because
// the leaving value is always the cached minimum.
func TestSingleStreamScenarioD(t *testing.T) {
	values := make([]uint64, 17)
	in := hashstream.FromSlice(values)
	m, err := New(4, in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := collect(m)
	if len(got) != 14 {
		t.Fatalf("got %d values, want 14: %v", len(got), got)
	}
	for _, v := range got {
		if v != 0 {
			t.Fatalf("expected all zeros, got %v", got)
		}
	}
}

func TestSingleStreamWindowOfOneRejected(t *testing.T) {
	_, err := New(1, hashstream.FromSlice([]uint64{1, 2, 3}))
	if err == nil {
		t.Fatal("expected InvalidArgument for w=1")
	}
	if kindOf(err) != hashstream.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestSingleStreamWindowLargerThanInputClamps(t *testing.T) {
	in := hashstream.FromSlice([]uint64{5, 3, 9})
	m, err := New(20, in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := collect(m)
	want := []uint64{3}
	if !equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSingleStreamEmptyInput(t *testing.T) {
	m, err := New(4, hashstream.FromSlice(nil))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := m.Next(); ok {
		t.Fatal("expected no emission from empty input")
	}
}

// property 1/2/5: every emission is drawn from the input and no more
// than n-w+1 values are ever produced.
func TestSingleStreamSubsetAndLengthBound(t *testing.T) {
	in := []uint64{4, 8, 15, 16, 23, 42, 7, 1, 99, 2}
	present := map[uint64]bool{}
	for _, v := range in {
		present[v] = true
	}
	m, err := New(3, hashstream.FromSlice(in))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := collect(m)
	if len(got) > len(in)-3+1 {
		t.Fatalf("length bound violated: %d emissions for n=%d, w=3", len(got), len(in))
	}
	for _, v := range got {
		if !present[v] {
			t.Fatalf("emitted value %d not present in input", v)
		}
	}
}

// property 4: seed 0 run twice over identical input agrees.
func TestSingleStreamSeedZeroIdempotent(t *testing.T) {
	in := []uint64{9, 2, 77, 3, 3, 40, 1}
	run := func() []uint64 {
		seeded := hashstream.Seeded(hashstream.FromSlice(in), 0)
		m, err := New(3, seeded)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return collect(m)
	}
	a, b := run(), run()
	if !equal(a, b) {
		t.Errorf("seed-0 runs diverged: %v vs %v", a, b)
	}
}

func kindOf(err error) hashstream.Kind {
	if e, ok := err.(*hashstream.Error); ok {
		return e.Kind
	}
	return -1
}
