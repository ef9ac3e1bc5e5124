// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hufftext

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ulikunitz/hufftext/tree"
)

// Stats describes the compression of a single text.
type Stats struct {
	// TextSize is the size of the UTF-8 text in bytes.
	TextSize int
	Symbols  int
	Alphabet int
	MaxDepth int
	Bits     uint64
	// Size is the length of the Serialize output.
	Size  int
	Codes []tree.Code
}

// Ratio returns the compressed size divided by the text size.
func (s *Stats) Ratio() float64 {
	if s.TextSize == 0 {
		return 0
	}
	return float64(s.Size) / float64(s.TextSize)
}

// Analyze compresses the text and reports the details. The Codes field is
// nil for the empty text.
func Analyze(text string) (*Stats, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	e, err := encode(utf16.Encode([]rune(text)))
	if err != nil {
		return nil, err
	}
	st := &Stats{
		TextSize: len(text),
		Symbols:  e.h.textLen,
		Alphabet: e.h.freqs.Len(),
		Bits:     e.h.bits,
		Size:     e.h.len() + int((e.h.bits+7)/8),
	}
	if e.tree != nil {
		st.MaxDepth = e.tree.MaxDepth()
		st.Codes = e.tree.Codes()
	}
	return st, nil
}
