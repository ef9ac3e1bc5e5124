// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/ulikunitz/hufftext"
)

// A .huf file starts with the magic bytes followed by the little-endian
// xxHash64 checksum of the UTF-8 text. The output of hufftext.Serialize
// follows.
var magic = []byte{'H', 'U', 'F', 0x01}

const containerHeaderLen = 4 + 8

var (
	errMagic    = errors.New("not a .huf file")
	errChecksum = errors.New("checksum mismatch")
	errNoText   = errors.New("input is not UTF-8 text")
)

// validMagic reports whether p starts with the .huf magic bytes.
func validMagic(p []byte) bool {
	return bytes.HasPrefix(p, magic)
}

// marshalContainer compresses the text into the .huf format.
func marshalContainer(text []byte) ([]byte, error) {
	if !utf8.Valid(text) {
		return nil, errNoText
	}
	data, err := hufftext.Serialize(string(text))
	if err != nil {
		return nil, err
	}
	p := make([]byte, containerHeaderLen, containerHeaderLen+len(data))
	copy(p, magic)
	binary.LittleEndian.PutUint64(p[4:], xxhash.Sum64(text))
	return append(p, data...), nil
}

// unmarshalContainer decompresses a .huf file and verifies the checksum.
func unmarshalContainer(p []byte) (text []byte, err error) {
	if !validMagic(p) {
		return nil, errMagic
	}
	if len(p) < containerHeaderLen {
		return nil, fmt.Errorf("%w: checksum", hufftext.ErrTruncated)
	}
	sum := binary.LittleEndian.Uint64(p[4:])
	s, err := hufftext.Deserialize(p[containerHeaderLen:])
	if err != nil {
		return nil, err
	}
	text = []byte(s)
	if g := xxhash.Sum64(text); g != sum {
		return nil, fmt.Errorf("%w: got %016x; want %016x",
			errChecksum, g, sum)
	}
	return text, nil
}
