// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hufftext

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Sizes of the header fields.
const (
	countLen   = 4
	entryLen   = 2 + 4
	textLenLen = 4
	bitsLen    = 8
	// minHeaderLen is the size of a header without entries.
	minHeaderLen = countLen + textLenLen + bitsLen
)

// maxEntries is the number of distinct 16-bit symbols.
const maxEntries = 1 << 16

// header describes the fields preceding the payload.
type header struct {
	freqs   *FreqTable
	textLen int
	bits    uint64
}

// len returns the encoded size of the header.
func (h *header) len() int {
	return minHeaderLen + h.freqs.Len()*entryLen
}

// appendBinary appends the binary representation of the header to p.
func (h *header) appendBinary(p []byte) ([]byte, error) {
	if h.textLen > math.MaxInt32 {
		return p, ErrTooLarge
	}
	le := binary.LittleEndian
	var b [bitsLen]byte
	le.PutUint32(b[:], uint32(h.freqs.Len()))
	p = append(p, b[:countLen]...)
	for _, e := range h.freqs.Entries() {
		if e.Count > math.MaxInt32 {
			return p, ErrTooLarge
		}
		le.PutUint16(b[:], e.Symbol)
		le.PutUint32(b[2:], uint32(e.Count))
		p = append(p, b[:entryLen]...)
	}
	le.PutUint32(b[:], uint32(h.textLen))
	p = append(p, b[:textLenLen]...)
	le.PutUint64(b[:], h.bits)
	p = append(p, b[:bitsLen]...)
	return p, nil
}

// parseHeader reads the header from p and returns the remaining bytes as
// payload. The payload must have the size required by the number of
// written bits.
func parseHeader(p []byte) (h header, payload []byte, err error) {
	le := binary.LittleEndian
	if len(p) < countLen {
		return h, nil, fmt.Errorf("%w: entry count", ErrTruncated)
	}
	n := int32(le.Uint32(p))
	p = p[countLen:]
	if !(0 <= n && n <= maxEntries) {
		return h, nil, fmt.Errorf("%w: entry count %d out of range",
			ErrCorrupt, n)
	}
	if len(p) < int(n)*entryLen {
		return h, nil, fmt.Errorf("%w: frequency entries",
			ErrTruncated)
	}
	h.freqs = newFreqTable(int(n))
	var total int64
	for i := 0; i < int(n); i++ {
		sym := le.Uint16(p)
		f := int32(le.Uint32(p[2:]))
		p = p[entryLen:]
		if f <= 0 {
			return h, nil, fmt.Errorf(
				"%w: frequency %d for symbol %#04x",
				ErrCorrupt, f, sym)
		}
		if err = h.freqs.add(sym, uint64(f)); err != nil {
			return h, nil, err
		}
		total += int64(f)
	}
	if len(p) < textLenLen {
		return h, nil, fmt.Errorf("%w: text length", ErrTruncated)
	}
	textLen := int32(le.Uint32(p))
	p = p[textLenLen:]
	if int64(textLen) != total {
		return h, nil, fmt.Errorf(
			"%w: text length %d doesn't match frequency sum %d",
			ErrCorrupt, textLen, total)
	}
	h.textLen = int(textLen)
	if len(p) < bitsLen {
		return h, nil, fmt.Errorf("%w: bit count", ErrTruncated)
	}
	h.bits = le.Uint64(p)
	p = p[bitsLen:]
	k := h.bits/8 + uint64(h.bits%8+7)/8
	switch {
	case uint64(len(p)) < k:
		return h, nil, fmt.Errorf("%w: payload has %d bytes; want %d",
			ErrTruncated, len(p), k)
	case uint64(len(p)) > k:
		return h, nil, fmt.Errorf(
			"%w: %d bytes following the payload",
			ErrCorrupt, uint64(len(p))-k)
	}
	if n == 0 && h.bits != 0 {
		return h, nil, fmt.Errorf("%w: bits for empty alphabet",
			ErrCorrupt)
	}
	return h, p, nil
}
