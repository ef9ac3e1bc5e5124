// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command ratio reports the compression ratios hufftext achieves for the
// text files of a corpus. By default the Silesia corpus is used.
package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/ulikunitz/zdata"

	"github.com/ulikunitz/hufftext/internal/corpus"
)

func main() {
	log.SetPrefix("ratio: ")
	log.SetFlags(0)

	var (
		dir     = pflag.StringP("dir", "d", "", "use the files of directory instead of the Silesia corpus")
		maxSize = pflag.IntP("max-size", "m", 4<<20, "limit the size of each file")
		verbose = pflag.BoolP("verbose", "v", false, "print details for each file")
	)
	pflag.Parse()

	var fsys fs.FS = zdata.Silesia
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}
	files, err := corpus.Files(fsys)
	if err != nil {
		log.Fatalf("corpus.Files error %s", err)
	}
	texts := corpus.TextFiles(files, *maxSize)
	if len(texts) == 0 {
		log.Fatal("no text files found")
	}
	results, n, err := corpus.Compress(texts)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		if *verbose {
			pretty.Println(r)
			continue
		}
		fmt.Printf("%-24s %10d %10d %.3f c/u\n",
			r.Name, r.TextSize, r.Size, r.Ratio)
	}
	size := corpus.Size(texts)
	fmt.Printf("\n### %d of %d files: %d -> %d bytes, %.3f c/u\n",
		len(texts), len(files), size, n, float64(n)/float64(size))
}
