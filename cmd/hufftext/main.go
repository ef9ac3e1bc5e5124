// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command hufftext compresses and decompresses text files using a Huffman
// code computed for each file.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ogier/pflag"

	"github.com/ulikunitz/hufftext/xlog"
)

const usageStr = `Usage: hufftext [OPTION]... [FILE]...
Compress or uncompress text FILEs in the .huf format (by default, compress
FILES in place).

  -c, --stdout      write to standard output and don't delete input files
  -d, --decompress  force decompression
  -f, --force       force overwrite of output file
  -h, --help        give this help
  -k, --keep        keep (don't delete) input files
  -L, --license     display software license
  -p, --print-tree  print the Huffman tree and the codes to standard error
  -q, --quiet       suppress all warnings
  -v, --verbose     verbose mode
  -z, --compress    force compression
      --stats       print compression statistics to standard error

With no file, or when FILE is -, read standard input.
`

type options struct {
	stdout     bool
	decompress bool
	force      bool
	keep       bool
	printTree  bool
	stats      bool
	// diag receives the tree and statistics output.
	diag io.Writer
}

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func licenses(w io.Writer) error {
	out := `
hufftext -- Huffman text compression
====================================

{{.hufftext}}

pflag -- Posix flag package
===========================

{{.pflag}}

xxhash -- 64-bit xxHash
=======================

{{.xxhash}}
`
	out = strings.TrimLeft(out, " \n")
	tmpl, err := template.New("licenses").Parse(out)
	if err != nil {
		return fmt.Errorf("error %s parsing licenses template", err)
	}
	lmap := map[string]string{
		"hufftext": strings.TrimSpace(hufftextLicense),
		"pflag":    strings.TrimSpace(pflagLicense),
		"xxhash":   strings.TrimSpace(xxhashLicense),
	}
	return tmpl.Execute(w, lmap)
}

// run executes the command and returns the exit code.
func run() int {
	cmdName := filepath.Base(os.Args[0])
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	xlog.SetFlags(0)

	flags := pflag.NewFlagSet(cmdName, pflag.ContinueOnError)
	flags.SetInterspersed(true)
	flags.Usage = func() { usage(os.Stderr) }
	var (
		help       = flags.BoolP("help", "h", false, "")
		stdout     = flags.BoolP("stdout", "c", false, "")
		decompress = flags.BoolP("decompress", "d", false, "")
		compress   = flags.BoolP("compress", "z", false, "")
		force      = flags.BoolP("force", "f", false, "")
		keep       = flags.BoolP("keep", "k", false, "")
		license    = flags.BoolP("license", "L", false, "")
		printTree  = flags.BoolP("print-tree", "p", false, "")
		quiet      = flags.BoolP("quiet", "q", false, "")
		verbose    = flags.BoolP("verbose", "v", false, "")
		stats      = flags.Bool("stats", false, "")
	)
	if err := flags.Parse(os.Args[1:]); err != nil {
		return 1
	}

	if *help {
		usage(os.Stdout)
		return 0
	}
	if *license {
		if err := licenses(os.Stdout); err != nil {
			xlog.Warn(err)
			return 1
		}
		return 0
	}
	if *compress && *decompress {
		xlog.Warn("options -z and -d exclude each other")
		return 1
	}
	switch {
	case *quiet:
		xlog.SetFlags(xlog.Lquiet)
	case *verbose:
		xlog.SetFlags(xlog.Ldebug)
	}

	opts := &options{
		stdout:     *stdout,
		decompress: *decompress,
		force:      *force,
		keep:       *keep,
		printTree:  *printTree,
		stats:      *stats,
		diag:       os.Stderr,
	}
	args := flags.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	exit := 0
	for _, path := range args {
		if err := processFile(path, opts); err != nil {
			xlog.Warn(userError(err))
			exit = 1
		}
	}
	return exit
}

func main() {
	os.Exit(run())
}
