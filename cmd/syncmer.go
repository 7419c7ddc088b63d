// Copyright © 2020 The minimiser Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"log"
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/MitraDarja/minimiser/src/hashstream"
	"github.com/MitraDarja/minimiser/src/misc"
	"github.com/MitraDarja/minimiser/src/reporting"
	"github.com/MitraDarja/minimiser/src/runinfo"
	"github.com/MitraDarja/minimiser/src/syncmer"
	"github.com/MitraDarja/minimiser/src/version"
)

// the command line arguments
var (
	syncmerFasta     *[]string
	syncmerKsize     *uint32
	syncmerSmer      *uint32
	syncmerCanonical *bool
	syncmerSeed      *uint64
	syncmerReport    *bool
	syncmerOutDir    *string
)

// the syncmer command
var syncmerCmd = &cobra.Command{
	Use:   "syncmer",
	Short: "select the closed syncmers of one or more FASTA sequences",
	Long:  `select the closed syncmers of one or more FASTA sequences`,
	Run: func(cmd *cobra.Command, args []string) {
		runSyncmer()
	},
}

func init() {
	RootCmd.AddCommand(syncmerCmd)
	syncmerFasta = syncmerCmd.Flags().StringSliceP("fasta", "f", []string{}, "FASTA file(s) to process")
	syncmerKsize = syncmerCmd.Flags().Uint32P("ksize", "k", 15, "k-mer size")
	syncmerSmer = syncmerCmd.Flags().Uint32P("smer", "s", 8, "s-mer size (must not exceed the k-mer size)")
	syncmerCanonical = syncmerCmd.Flags().BoolP("canonical", "c", false, "select syncmers independent of which strand was read")
	syncmerSeed = syncmerCmd.Flags().Uint64P("seed", "d", hashstream.DefaultSeed, "seed XORed into every hash (0 recovers lexicographic order)")
	syncmerReport = syncmerCmd.Flags().Bool("report", false, "render a density plot of the emitted values")
	syncmerOutDir = syncmerCmd.Flags().StringP("out", "o", ".", "directory to write the density plot and run dump to")
}

func syncmerParamCheck() error {
	if len(*syncmerFasta) == 0 {
		if err := misc.CheckSTDIN(); err != nil {
			return err
		}
		log.Printf("\tinput file: using STDIN")
	} else {
		for _, file := range *syncmerFasta {
			if err := misc.CheckFile(file); err != nil {
				return err
			}
			if err := misc.CheckExt(file, []string{"fasta", "fa", "fna"}); err != nil {
				return err
			}
		}
	}
	if *syncmerKsize < *syncmerSmer {
		return fmt.Errorf("k-mer size (%d) must be at least the s-mer size (%d)", *syncmerKsize, *syncmerSmer)
	}
	if *proc <= 0 || *proc > runtime.NumCPU() {
		*proc = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(*proc)
	return nil
}

func runSyncmer() {
	logFH := misc.StartLogging("minimiser-syncmer.log")
	defer logFH.Close()
	log.SetOutput(logFH)
	if *profiling {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	log.Printf("starting the syncmer command (minimiser version %s)", version.GetVersion())
	log.Printf("checking parameters...")
	misc.ErrorCheck(syncmerParamCheck())
	log.Printf("\tk-mer size: %d", *syncmerKsize)
	log.Printf("\ts-mer size: %d", *syncmerSmer)
	log.Printf("\tcanonical: %v", *syncmerCanonical)

	report := reporting.NewDensityReport("syncmer", *syncmerOutDir)

	for _, file := range *syncmerFasta {
		log.Printf("processing %v", file)
		seqs, err := loadFASTA(file)
		misc.ErrorCheck(err)
		for _, seq := range seqs {
			kFwd, err := hashstream.NewKmerHasher(seq.Seq, uint(*syncmerKsize), false, *syncmerSeed)
			misc.ErrorCheck(err)
			sFwd, err := hashstream.NewKmerHasher(seq.Seq, uint(*syncmerSmer), false, *syncmerSeed)
			misc.ErrorCheck(err)

			var op *syncmer.Syncmer
			if *syncmerCanonical {
				kRev, err := reverseHashStream(seq.Seq, *syncmerKsize, *syncmerSeed)
				misc.ErrorCheck(err)
				sRev, err := reverseHashStream(seq.Seq, *syncmerSmer, *syncmerSeed)
				misc.ErrorCheck(err)
				op, err = syncmer.NewCanonical(*syncmerKsize, *syncmerSmer, kFwd, kRev, sFwd, sRev)
				misc.ErrorCheck(err)
			} else {
				op, err = syncmer.New(*syncmerKsize, *syncmerSmer, kFwd, sFwd)
				misc.ErrorCheck(err)
			}

			var emitted []uint64
			for {
				v, ok := op.Next()
				if !ok {
					break
				}
				emitted = append(emitted, v)
				report.Add(v)
			}

			info := &runinfo.RunInfo{
				Operator:  "syncmer",
				Source:    file,
				Ksize:     *syncmerKsize,
				Smer:      *syncmerSmer,
				Canonical: *syncmerCanonical,
				Seed:      *syncmerSeed,
				Emitted:   emitted,
			}
			dumpPath := fmt.Sprintf("%s/%s.syncmer.dump", *syncmerOutDir, seq.ID)
			if err := info.Dump(dumpPath); err != nil {
				log.Printf("could not dump run info for %s: %v", seq.ID, err)
			}
			fmt.Printf("%s\t%d values\t%s\n", seq.ID, len(emitted), dumpPath)
		}
	}

	if *syncmerReport && report.Count() > 0 {
		path, err := report.Save()
		misc.ErrorCheck(err)
		log.Printf("wrote density plot to %v", path)
	}
	log.Printf("finished %s", misc.PrintMemUsage())
}
