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
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/MitraDarja/minimiser/src/hashstream"
	"github.com/MitraDarja/minimiser/src/minimiser"
	"github.com/MitraDarja/minimiser/src/misc"
	"github.com/MitraDarja/minimiser/src/reporting"
	"github.com/MitraDarja/minimiser/src/runinfo"
	"github.com/MitraDarja/minimiser/src/version"
	"github.com/MitraDarja/minimiser/src/weighted"
)

// the command line arguments
var (
	weightedFasta      *[]string
	weightedWindow     *uint32
	weightedKsize      *uint32
	weightedSeed       *uint64
	weightedUnfavoured *string // file of unfavourable k-mers, one per line
	weightedBloom      *bool   // use a Bloom filter instead of an exact set
	weightedBloomSize  *int
	weightedReport     *bool
	weightedOutDir     *string
)

// the weighted command
var weightedCmd = &cobra.Command{
	Use:   "weighted",
	Short: "compute the strand-aware weighted minimiser hash of one or more FASTA sequences",
	Long: `compute the strand-aware weighted minimiser hash of one or more FASTA sequences

Per position, the forward and reverse-complement k-mer hash are combined
by maximum whenever either is a member of the unfavourable set supplied
with --unfavoured, and by minimum otherwise, before per-window minimum
selection runs as usual.`,
	Run: func(cmd *cobra.Command, args []string) {
		runWeighted()
	},
}

func init() {
	RootCmd.AddCommand(weightedCmd)
	weightedFasta = weightedCmd.Flags().StringSliceP("fasta", "f", []string{}, "FASTA file(s) to process")
	weightedWindow = weightedCmd.Flags().Uint32P("window", "w", 4, "number of k-mers per window")
	weightedKsize = weightedCmd.Flags().Uint32P("ksize", "k", 15, "k-mer size")
	weightedSeed = weightedCmd.Flags().Uint64P("seed", "d", hashstream.DefaultSeed, "seed XORed into every hash (0 recovers lexicographic order)")
	weightedUnfavoured = weightedCmd.Flags().StringP("unfavoured", "u", "", "file of unfavourable k-mer sequences, one per line")
	weightedBloom = weightedCmd.Flags().Bool("bloom", false, "use a Bloom filter for the unfavourable set instead of an exact set")
	weightedBloomSize = weightedCmd.Flags().Int("bloomSize", 10000, "number of bits in the Bloom filter, when --bloom is set")
	weightedReport = weightedCmd.Flags().Bool("report", false, "render a density plot of the emitted values")
	weightedOutDir = weightedCmd.Flags().StringP("out", "o", ".", "directory to write the density plot and run dump to")
}

func weightedParamCheck() error {
	if len(*weightedFasta) == 0 {
		if err := misc.CheckSTDIN(); err != nil {
			return err
		}
		log.Printf("\tinput file: using STDIN")
	} else {
		for _, file := range *weightedFasta {
			if err := misc.CheckFile(file); err != nil {
				return err
			}
			if err := misc.CheckExt(file, []string{"fasta", "fa", "fna"}); err != nil {
				return err
			}
		}
	}
	if *weightedWindow == 1 {
		return fmt.Errorf("window size of 1 is a no-op - use a window of at least 2")
	}
	if *weightedUnfavoured != "" {
		if err := misc.CheckFile(*weightedUnfavoured); err != nil {
			return err
		}
	}
	if *proc <= 0 || *proc > runtime.NumCPU() {
		*proc = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(*proc)
	return nil
}

// loadMembership hashes every k-mer listed (one per line) in path at the
// requested k-mer size and returns them as a weighted.Membership.
func loadMembership(path string, k uint32, seed uint64, bloom bool, bloomSize int) (weighted.Membership, error) {
	if path == "" {
		return weighted.NewSet(), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var membership interface {
		weighted.Membership
		Add(uint64)
	}
	if bloom {
		membership = weighted.NewBloomFilter(bloomSize)
	} else {
		membership = weighted.NewSet()
	}

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		hasher, err := hashstream.NewKmerHasher([]byte(line), uint(k), false, seed)
		if err != nil {
			return nil, err
		}
		for {
			v, ok := hasher.Next()
			if !ok {
				break
			}
			membership.Add(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return membership, nil
}

func runWeighted() {
	logFH := misc.StartLogging("minimiser-weighted.log")
	defer logFH.Close()
	log.SetOutput(logFH)
	if *profiling {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	log.Printf("starting the weighted command (minimiser version %s)", version.GetVersion())
	log.Printf("checking parameters...")
	misc.ErrorCheck(weightedParamCheck())
	log.Printf("\twindow size: %d", *weightedWindow)
	log.Printf("\tk-mer size: %d", *weightedKsize)

	membership, err := loadMembership(*weightedUnfavoured, *weightedKsize, *weightedSeed, *weightedBloom, *weightedBloomSize)
	misc.ErrorCheck(err)

	report := reporting.NewDensityReport("weighted", *weightedOutDir)

	for _, file := range *weightedFasta {
		log.Printf("processing %v", file)
		seqs, err := loadFASTA(file)
		misc.ErrorCheck(err)
		for _, seq := range seqs {
			forward, err := hashstream.NewKmerHasher(seq.Seq, uint(*weightedKsize), false, *weightedSeed)
			misc.ErrorCheck(err)
			reverse, err := reverseHashStream(seq.Seq, *weightedKsize, *weightedSeed)
			misc.ErrorCheck(err)

			combined, err := weighted.NewCombiner(forward, reverse, membership)
			misc.ErrorCheck(err)
			op, err := minimiser.New(*weightedWindow, combined)
			misc.ErrorCheck(err)

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
				Operator:   "weighted",
				Source:     file,
				WindowSize: *weightedWindow,
				Ksize:      *weightedKsize,
				Canonical:  true,
				Seed:       *weightedSeed,
				Emitted:    emitted,
			}
			dumpPath := fmt.Sprintf("%s/%s.weighted.dump", *weightedOutDir, seq.ID)
			if err := info.Dump(dumpPath); err != nil {
				log.Printf("could not dump run info for %s: %v", seq.ID, err)
			}
			fmt.Printf("%s\t%d values\t%s\n", seq.ID, len(emitted), dumpPath)
		}
	}

	if *weightedReport && report.Count() > 0 {
		path, err := report.Save()
		misc.ErrorCheck(err)
		log.Printf("wrote density plot to %v", path)
	}
	log.Printf("finished %s", misc.PrintMemUsage())
}
