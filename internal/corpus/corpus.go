// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package corpus loads text corpora and measures how well hufftext
// compresses them.
package corpus

import (
	"fmt"
	"io/fs"
	"sort"
	"unicode/utf8"

	"github.com/ulikunitz/hufftext"
)

type File struct {
	Name string
	Data []byte
}

func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// TextFiles returns the files that are valid UTF-8 after limiting their
// size to maxSize bytes. The limit is lowered to the start of a
// character. A maxSize less or equal zero doesn't limit the size.
func TextFiles(files []File, maxSize int) []File {
	var texts []File
	for _, f := range files {
		data := truncate(f.Data, maxSize)
		if !utf8.Valid(data) {
			continue
		}
		texts = append(texts, File{Name: f.Name, Data: data})
	}
	return texts
}

func truncate(p []byte, n int) []byte {
	if n <= 0 || len(p) <= n {
		return p
	}
	for n > 0 && !utf8.RuneStart(p[n]) {
		n--
	}
	return p[:n]
}

func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// Result reports the compression of a single file.
type Result struct {
	Name     string
	TextSize int
	Size     int
	Ratio    float64
	Alphabet int
	MaxDepth int
}

// Compress compresses all files and returns the results sorted by
// ratio together with the total compressed size.
func Compress(files []File) (results []Result, compressedSize int64, err error) {
	for _, f := range files {
		st, err := hufftext.Analyze(string(f.Data))
		if err != nil {
			return results, compressedSize,
				fmt.Errorf("%s: %w", f.Name, err)
		}
		compressedSize += int64(st.Size)
		results = append(results, Result{
			Name:     f.Name,
			TextSize: st.TextSize,
			Size:     st.Size,
			Ratio:    st.Ratio(),
			Alphabet: st.Alphabet,
			MaxDepth: st.MaxDepth,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Ratio < results[j].Ratio
	})
	return results, compressedSize, nil
}
