// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package bitstream provides a growable sequence of bits. Bits are
// appended at and removed from the end of the sequence. Bit i of the
// sequence is stored in byte i/8 at bit position i%8, so the least
// significant bit of the first byte is the first bit.
package bitstream

import (
	"errors"
	"fmt"
)

// ErrUnderflow is returned by RemoveLast if the stream is empty.
var ErrUnderflow = errors.New("bitstream: underflow")

// ErrShortBuffer indicates that a byte slice cannot hold the given number
// of bits.
var ErrShortBuffer = errors.New("bitstream: short buffer")

// Stream is a sequence of bits. The zero value is an empty stream ready
// to use.
type Stream struct {
	buf []byte
	n   uint64
}

// New returns an empty stream.
func New() *Stream { return &Stream{} }

// byteLen returns the number of bytes required to store n bits.
func byteLen(n uint64) uint64 { return (n + 7) / 8 }

// FromBytes creates a stream containing the first n bits of p. The byte
// slice is copied.
func FromBytes(p []byte, n uint64) (s *Stream, err error) {
	k := byteLen(n)
	if uint64(len(p)) < k {
		return nil, fmt.Errorf("%w: %d bytes for %d bits",
			ErrShortBuffer, len(p), n)
	}
	buf := make([]byte, k)
	copy(buf, p)
	if r := n & 7; r != 0 {
		buf[k-1] &= 1<<r - 1
	}
	return &Stream{buf: buf, n: n}, nil
}

// Len returns the number of bits written to the stream.
func (s *Stream) Len() uint64 { return s.n }

// Append adds the bit at the end of the stream.
func (s *Stream) Append(bit bool) {
	i := s.n >> 3
	if i >= uint64(len(s.buf)) {
		s.buf = append(s.buf, 0)
	}
	if bit {
		s.buf[i] |= 1 << (s.n & 7)
	}
	s.n++
}

// Bit returns the bit at position i. The function panics if i is out of
// range.
func (s *Stream) Bit(i uint64) bool {
	if i >= s.n {
		panic("bitstream: index out of range")
	}
	return s.buf[i>>3]&(1<<(i&7)) != 0
}

// RemoveLast removes the last bit from the stream and returns it.
func (s *Stream) RemoveLast() (bit bool, err error) {
	if s.n == 0 {
		return false, ErrUnderflow
	}
	s.n--
	i := s.n >> 3
	m := byte(1) << (s.n & 7)
	bit = s.buf[i]&m != 0
	// Keep the unused bits cleared, Append relies on zeroed storage.
	s.buf[i] &^= m
	return bit, nil
}

// Reverse reverses the order of the bits in the stream.
func (s *Stream) Reverse() {
	k := byteLen(s.n)
	r := make([]byte, k)
	for i := uint64(0); i < s.n; i++ {
		if s.Bit(i) {
			j := s.n - 1 - i
			r[j>>3] |= 1 << (j & 7)
		}
	}
	copy(s.buf, r)
	for i := k; i < uint64(len(s.buf)); i++ {
		s.buf[i] = 0
	}
}

// Bytes returns the bits of the stream packed into ⌈Len()/8⌉ bytes. The
// returned slice is a copy.
func (s *Stream) Bytes() []byte {
	p := make([]byte, byteLen(s.n))
	copy(p, s.buf)
	return p
}

// String returns the bits as a sequence of 0 and 1 characters.
func (s *Stream) String() string {
	b := make([]byte, s.n)
	for i := range b {
		if s.Bit(uint64(i)) {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
