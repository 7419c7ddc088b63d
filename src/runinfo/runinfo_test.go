package runinfo

import "testing"

func TestRunInfoDumpAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/run.msgpack"

	want := &RunInfo{
		Operator:   "minimiser",
		Source:     "reads.fasta",
		WindowSize: 4,
		Ksize:      8,
		Canonical:  true,
		Seed:       0x8F3F73B5CF1C9ADE,
		Emitted:    []uint64{9, 4, 1},
	}
	if err := want.Dump(path); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	got := new(RunInfo)
	if err := got.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Operator != want.Operator || got.WindowSize != want.WindowSize || got.Ksize != want.Ksize || got.Canonical != want.Canonical || got.Seed != want.Seed {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if len(got.Emitted) != len(want.Emitted) {
		t.Fatalf("emitted length mismatch: got %d, want %d", len(got.Emitted), len(want.Emitted))
	}
	for i := range want.Emitted {
		if got.Emitted[i] != want.Emitted[i] {
			t.Fatalf("emitted[%d]: got %d, want %d", i, got.Emitted[i], want.Emitted[i])
		}
	}
}
