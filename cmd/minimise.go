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
	"github.com/MitraDarja/minimiser/src/minimiser"
	"github.com/MitraDarja/minimiser/src/misc"
	"github.com/MitraDarja/minimiser/src/reporting"
	"github.com/MitraDarja/minimiser/src/runinfo"
	"github.com/MitraDarja/minimiser/src/version"
)

// the command line arguments
var (
	minimiseFasta     *[]string // FASTA file(s) to process
	minimiseWindow    *uint32   // window size
	minimiseKsize     *uint32   // k-mer size
	minimiseCanonical *bool     // combine forward and reverse-complement hashes
	minimiseSeed      *uint64   // seed XORed into every hash
	minimiseReport    *bool     // render a density plot alongside the run
	minimiseOutDir    *string   // directory for the density plot and dump file
)

// the minimise command
var minimiseCmd = &cobra.Command{
	Use:   "minimise",
	Short: "compute the per-window minimum hash of one or more FASTA sequences",
	Long:  `compute the per-window minimum hash of one or more FASTA sequences`,
	Run: func(cmd *cobra.Command, args []string) {
		runMinimise()
	},
}

func init() {
	RootCmd.AddCommand(minimiseCmd)
	minimiseFasta = minimiseCmd.Flags().StringSliceP("fasta", "f", []string{}, "FASTA file(s) to process")
	minimiseWindow = minimiseCmd.Flags().Uint32P("window", "w", 4, "number of k-mers per window")
	minimiseKsize = minimiseCmd.Flags().Uint32P("ksize", "k", 15, "k-mer size")
	minimiseCanonical = minimiseCmd.Flags().BoolP("canonical", "c", false, "combine the forward and reverse-complement hash of each k-mer by minimum")
	minimiseSeed = minimiseCmd.Flags().Uint64P("seed", "s", hashstream.DefaultSeed, "seed XORed into every k-mer hash (0 recovers lexicographic order)")
	minimiseReport = minimiseCmd.Flags().Bool("report", false, "render a density plot of the emitted values")
	minimiseOutDir = minimiseCmd.Flags().StringP("out", "o", ".", "directory to write the density plot and run dump to")
}

func minimiseParamCheck() error {
	if len(*minimiseFasta) == 0 {
		if err := misc.CheckSTDIN(); err != nil {
			return err
		}
		log.Printf("\tinput file: using STDIN")
	} else {
		for _, file := range *minimiseFasta {
			if err := misc.CheckFile(file); err != nil {
				return err
			}
			if err := misc.CheckExt(file, []string{"fasta", "fa", "fna"}); err != nil {
				return err
			}
		}
	}
	if *minimiseWindow == 1 {
		return fmt.Errorf("window size of 1 is a no-op - use a window of at least 2")
	}
	if *proc <= 0 || *proc > runtime.NumCPU() {
		*proc = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(*proc)
	return nil
}

func runMinimise() {
	logFH := misc.StartLogging("minimiser-minimise.log")
	defer logFH.Close()
	log.SetOutput(logFH)
	if *profiling {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	log.Printf("starting the minimise command (minimiser version %s)", version.GetVersion())
	log.Printf("checking parameters...")
	misc.ErrorCheck(minimiseParamCheck())
	log.Printf("\twindow size: %d", *minimiseWindow)
	log.Printf("\tk-mer size: %d", *minimiseKsize)
	log.Printf("\tcanonical: %v", *minimiseCanonical)

	report := reporting.NewDensityReport("minimise", *minimiseOutDir)

	for _, file := range *minimiseFasta {
		log.Printf("processing %v", file)
		seqs, err := loadFASTA(file)
		misc.ErrorCheck(err)
		for _, seq := range seqs {
			var emitted []uint64
			forward, err := hashstream.NewKmerHasher(seq.Seq, uint(*minimiseKsize), false, *minimiseSeed)
			misc.ErrorCheck(err)

			if *minimiseCanonical {
				reverse, err := reverseHashStream(seq.Seq, *minimiseKsize, *minimiseSeed)
				misc.ErrorCheck(err)
				dual, err := minimiser.NewDual(*minimiseWindow, forward, reverse)
				misc.ErrorCheck(err)
				for {
					v, ok := dual.Next()
					if !ok {
						break
					}
					emitted = append(emitted, v)
					report.Add(v)
				}
			} else {
				single, err := minimiser.New(*minimiseWindow, forward)
				misc.ErrorCheck(err)
				for {
					v, ok := single.Next()
					if !ok {
						break
					}
					emitted = append(emitted, v)
					report.Add(v)
				}
			}

			info := &runinfo.RunInfo{
				Operator:   "minimiser",
				Source:     file,
				WindowSize: *minimiseWindow,
				Ksize:      *minimiseKsize,
				Canonical:  *minimiseCanonical,
				Seed:       *minimiseSeed,
				Emitted:    emitted,
			}
			dumpPath := fmt.Sprintf("%s/%s.minimiser.dump", *minimiseOutDir, seq.ID)
			if err := info.Dump(dumpPath); err != nil {
				log.Printf("could not dump run info for %s: %v", seq.ID, err)
			}
			fmt.Printf("%s\t%d values\t%s\n", seq.ID, len(emitted), dumpPath)
		}
	}

	if *minimiseReport && report.Count() > 0 {
		path, err := report.Save()
		misc.ErrorCheck(err)
		log.Printf("wrote density plot to %v", path)
	}
	log.Printf("finished %s", misc.PrintMemUsage())
}
