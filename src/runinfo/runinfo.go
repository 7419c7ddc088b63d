/*
	the runinfo package records the parameters and emitted values of a
	single windowing-operator run, so it can be replayed or inspected
	without re-hashing the source sequence.
*/
package runinfo

import (
	"io/ioutil"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// RunInfo is the on-disk record written by the minimise, syncmer and
// weighted sub-commands.
type RunInfo struct {
	Operator   string // "minimiser", "syncmer" or "weighted"
	Source     string // input FASTA file
	WindowSize uint32
	Ksize      uint32
	Smer       uint32 // syncmer only
	Canonical  bool
	Seed       uint64
	Emitted    []uint64
}

// Dump serialises r to path as msgpack.
func (r *RunInfo) Dump(path string) error {
	b, err := msgpack.Marshal(r)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}

// Load reads a RunInfo previously written by Dump.
func (r *RunInfo) Load(path string) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(b, r)
}
