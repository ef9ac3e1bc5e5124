// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hufftext

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ulikunitz/hufftext/bitstream"
	"github.com/ulikunitz/hufftext/tree"
	"github.com/ulikunitz/hufftext/xlog"
)

// Serialize compresses the text. The text must be valid UTF-8.
func Serialize(text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	return EncodeSymbols(utf16.Encode([]rune(text)))
}

// Deserialize decompresses data produced by Serialize.
func Deserialize(data []byte) (string, error) {
	symbols, err := DecodeSymbols(data)
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(symbols)), nil
}

// encoding holds the intermediate results of compressing a symbol
// sequence.
type encoding struct {
	h    header
	tree *tree.Tree
	bits *bitstream.Stream
}

func encode(symbols []uint16) (e *encoding, err error) {
	if len(symbols) > math.MaxInt32 {
		return nil, ErrTooLarge
	}
	e = &encoding{
		h: header{
			freqs:   Frequencies(symbols),
			textLen: len(symbols),
		},
		bits: bitstream.New(),
	}
	if len(symbols) == 0 {
		return e, nil
	}
	if e.tree, err = tree.New(e.h.freqs.Entries()); err != nil {
		return nil, err
	}
	for _, sym := range symbols {
		if err = e.tree.EncodeSymbol(sym, e.bits); err != nil {
			return nil, err
		}
	}
	e.h.bits = e.bits.Len()
	xlog.Printf(debug, "encode: %d symbols, %d entries, depth %d, %d bits",
		e.h.textLen, e.h.freqs.Len(), e.tree.MaxDepth(), e.h.bits)
	return e, nil
}

func (e *encoding) appendBinary(p []byte) ([]byte, error) {
	p, err := e.h.appendBinary(p)
	if err != nil {
		return p, err
	}
	return append(p, e.bits.Bytes()...), nil
}

// EncodeSymbols compresses a sequence of 16-bit symbols.
func EncodeSymbols(symbols []uint16) ([]byte, error) {
	e, err := encode(symbols)
	if err != nil {
		return nil, err
	}
	p := make([]byte, 0, e.h.len()+int((e.h.bits+7)/8))
	return e.appendBinary(p)
}

// DecodeSymbols decompresses data produced by EncodeSymbols or Serialize
// into its sequence of 16-bit symbols.
func DecodeSymbols(data []byte) ([]uint16, error) {
	h, payload, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	xlog.Printf(debug, "decode: %d symbols, %d entries, %d bits",
		h.textLen, h.freqs.Len(), h.bits)
	if h.freqs.Len() == 0 {
		return []uint16{}, nil
	}
	t, err := tree.New(h.freqs.Entries())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	s, err := bitstream.FromBytes(payload, h.bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	// The decoder removes bits from the end of the stream.
	s.Reverse()
	symbols := make([]uint16, 0, h.textLen)
	for i := 0; i < h.textLen; i++ {
		sym, err := t.DecodeSymbol(s)
		if err != nil {
			if errors.Is(err, tree.ErrBufferExhausted) {
				return nil, fmt.Errorf(
					"%w: %w after %d of %d symbols",
					ErrTruncated, err, i, h.textLen)
			}
			return nil, err
		}
		symbols = append(symbols, sym)
	}
	if s.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bits left after %d symbols",
			ErrCorrupt, s.Len(), h.textLen)
	}
	return symbols, nil
}
