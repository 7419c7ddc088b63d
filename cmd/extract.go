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
	"os"

	"github.com/mholt/archiver"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MitraDarja/minimiser/src/misc"
	"github.com/MitraDarja/minimiser/src/version"
)

// the command line arguments
var (
	extractArchive *string        // the archive to unpack
	extractOutDir  *string        // where to unpack it to
	extractFlags   *pflag.FlagSet // the flag set for the extract command
)

// the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "unpack a tarball of FASTA files ready for the other sub-commands",
	Long:  `unpack a tarball of FASTA files ready for the other sub-commands`,
	Run: func(cmd *cobra.Command, args []string) {
		runExtract()
	},
}

func init() {
	RootCmd.AddCommand(extractCmd)
	extractFlags = extractCmd.Flags()
	extractArchive = extractFlags.StringP("archive", "a", "", "tarball of FASTA files to unpack")
	extractOutDir = extractFlags.StringP("out", "o", ".", "directory to unpack the tarball into")
	if err := extractCmd.MarkFlagRequired("archive"); err != nil {
		log.Fatal(err)
	}
}

func extractParamCheck() error {
	if err := misc.CheckRequiredFlags(extractFlags); err != nil {
		return err
	}
	if err := misc.CheckFile(*extractArchive); err != nil {
		return err
	}
	if _, err := os.Stat(*extractOutDir); os.IsNotExist(err) {
		if err := os.MkdirAll(*extractOutDir, 0700); err != nil {
			return fmt.Errorf("directory creation failed: %v", *extractOutDir)
		}
	}
	return nil
}

func runExtract() {
	fmt.Printf("starting the extract command (minimiser version %s)\n", version.GetVersion())
	misc.ErrorCheck(extractParamCheck())
	fmt.Printf("unpacking %v...\n", *extractArchive)
	misc.ErrorCheck(archiver.NewTar().Unarchive(*extractArchive, *extractOutDir))
	fmt.Printf("FASTA files extracted to: %v\n", *extractOutDir)
	fmt.Printf("finished %s\n", misc.PrintMemUsage())
}
