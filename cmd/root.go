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
	"os"

	"github.com/spf13/cobra"

	"github.com/MitraDarja/minimiser/src/version"
)

// the command line arguments
var (
	proc      *int  // number of processors to use
	profiling *bool // create profile for go pprof
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "minimiser",
	Short: "select a position-stable subset of a sequence's k-mer hashes",
	Long: `
#####################################################################################
		minimiser: sub-sequence sampling for long read/genome analysis
#####################################################################################

 minimiser is a small toolkit for reducing a DNA sequence's k-mer hashes down to a
 much smaller, position-stable representative subset.

 It provides three related sampling schemes: the classic per-window minimum
 (minimiser), the internal-minimum k-mer selector (syncmer), and a strand-aware
 variant that can be biased away from a supplied set of unfavourable k-mers.`,
	Version: version.GetVersion(),
}

// Execute adds all child commands to RootCmd and runs it. It only needs
// to be called once, from main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	proc = RootCmd.PersistentFlags().IntP("processors", "p", 1, "number of processors to use")
	profiling = RootCmd.PersistentFlags().Bool("profiling", false, "create the files needed to profile minimiser using the go tool pprof")
}
