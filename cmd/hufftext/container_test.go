// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ulikunitz/hufftext"
)

func TestContainer(t *testing.T) {
	tests := []string{"", "x", "The quick brown fox jumps over the lazy dog.\n"}
	for _, text := range tests {
		data, err := marshalContainer([]byte(text))
		if err != nil {
			t.Fatalf("marshalContainer error %s", err)
		}
		if !validMagic(data) {
			t.Fatalf("output doesn't start with magic bytes")
		}
		got, err := unmarshalContainer(data)
		if err != nil {
			t.Fatalf("unmarshalContainer error %s", err)
		}
		if !bytes.Equal(got, []byte(text)) {
			t.Fatalf("got %q; want %q", got, text)
		}
	}
}

func TestContainerErrors(t *testing.T) {
	if _, err := marshalContainer([]byte{'a', 0xff}); !errors.Is(err, errNoText) {
		t.Errorf("marshalContainer returned %v; want %v", err, errNoText)
	}
	if _, err := unmarshalContainer([]byte("HUFF")); !errors.Is(err, errMagic) {
		t.Errorf("unmarshalContainer returned %v; want %v", err,
			errMagic)
	}
	if _, err := unmarshalContainer(magic); !errors.Is(err, hufftext.ErrTruncated) {
		t.Errorf("unmarshalContainer returned %v; want %v", err,
			hufftext.ErrTruncated)
	}

	data, err := marshalContainer([]byte("checksum"))
	if err != nil {
		t.Fatalf("marshalContainer error %s", err)
	}
	data[5] ^= 0x10
	if _, err = unmarshalContainer(data); !errors.Is(err, errChecksum) {
		t.Errorf("unmarshalContainer returned %v; want %v", err,
			errChecksum)
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		pck     packer
		path    string
		out     string
		tmp     string
		wantErr bool
	}{
		{hufPacker{}, "a.txt", "a.txt.huf", "a.txt.huf.pack", false},
		{hufPacker{}, "-", "-", "-", false},
		{hufPacker{}, "a.huf", "", "", true},
		{hufPacker{}, "", "", "", true},
		{hufUnpacker{}, "a.txt.huf", "a.txt", "a.txt.unpack", false},
		{hufUnpacker{}, "a.txt", "", "", true},
		{hufUnpacker{}, "dir/.huf", "", "", true},
	}
	for _, tc := range tests {
		out, tmp, err := tc.pck.outputPaths(tc.path)
		if tc.wantErr {
			if err == nil {
				t.Errorf("outputPaths(%q) returned no error",
					tc.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("outputPaths(%q) error %s", tc.path, err)
			continue
		}
		if out != tc.out || tmp != tc.tmp {
			t.Errorf("outputPaths(%q) = %q, %q; want %q, %q",
				tc.path, out, tmp, tc.out, tc.tmp)
		}
	}
}
