// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hufftext

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/ulikunitz/hufftext/internal/randtxt"
)

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"a",
		"aaaa",
		"abcd",
		"aabbcd",
		"hello, world",
		"Grüße aus Köln — 😀 日本語",
		strings.Repeat("ab", 1000) + "c",
		randtxt.Text(1, 100),
		randtxt.Text(2, 10000),
	}
	for _, text := range tests {
		data, err := Serialize(text)
		if err != nil {
			t.Fatalf("Serialize(%.20q) error %s", text, err)
		}
		got, err := Deserialize(data)
		if err != nil {
			t.Fatalf("Deserialize error %s for text %.20q", err, text)
		}
		if got != text {
			t.Fatalf("Deserialize returned %.20q; want %.20q", got,
				text)
		}
	}
}

func TestWireFormat(t *testing.T) {
	data, err := Serialize("aab")
	if err != nil {
		t.Fatalf("Serialize error %s", err)
	}
	want := []byte{
		2, 0, 0, 0,
		'a', 0, 2, 0, 0, 0,
		'b', 0, 1, 0, 0, 0,
		3, 0, 0, 0,
		3, 0, 0, 0, 0, 0, 0, 0,
		0x03,
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("Serialize(%q) = % x; want % x", "aab", data, want)
	}
}

func TestEmptyText(t *testing.T) {
	data, err := Serialize("")
	if err != nil {
		t.Fatalf("Serialize error %s", err)
	}
	if want := make([]byte, minHeaderLen); !bytes.Equal(data, want) {
		t.Fatalf("Serialize(\"\") = % x; want % x", data, want)
	}
	s, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize error %s", err)
	}
	if s != "" {
		t.Fatalf("Deserialize returned %q; want empty string", s)
	}
	// bits without entries
	bad := append([]byte(nil), data...)
	bad[8] = 1
	bad = append(bad, 0)
	if _, err = Deserialize(bad); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Deserialize returned %v; want %v", err, ErrCorrupt)
	}
}

func TestSingleSymbol(t *testing.T) {
	data, err := Serialize("aaaa")
	if err != nil {
		t.Fatalf("Serialize error %s", err)
	}
	if len(data) != minHeaderLen+entryLen {
		t.Fatalf("len(data) = %d; want %d", len(data),
			minHeaderLen+entryLen)
	}
	if bits := binary.LittleEndian.Uint64(data[14:]); bits != 0 {
		t.Fatalf("written bits %d; want 0", bits)
	}
	s, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize error %s", err)
	}
	if s != "aaaa" {
		t.Fatalf("Deserialize returned %q; want %q", s, "aaaa")
	}
}

func TestDeterminism(t *testing.T) {
	text := randtxt.Text(3, 5000)
	a, err := Serialize(text)
	if err != nil {
		t.Fatalf("Serialize error %s", err)
	}
	b, err := Serialize(text)
	if err != nil {
		t.Fatalf("Serialize error %s", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("two compressions of the same text differ")
	}
}

func TestTieBreakPayload(t *testing.T) {
	// a:2 b:2 c:1 d:1 gives a=10 b=11 c=00 d=01.
	data, err := Serialize("aabbcd")
	if err != nil {
		t.Fatalf("Serialize error %s", err)
	}
	h, payload, err := parseHeader(data)
	if err != nil {
		t.Fatalf("parseHeader error %s", err)
	}
	if h.bits != 12 {
		t.Fatalf("h.bits = %d; want %d", h.bits, 12)
	}
	// bits 1,0,1,0,1,1,1,1,0,0,0,1 stored LSB first
	if want := []byte{0xf5, 0x08}; !bytes.Equal(payload, want) {
		t.Fatalf("payload % x; want % x", payload, want)
	}
}

func TestTruncated(t *testing.T) {
	data, err := Serialize("truncated payloads must fail")
	if err != nil {
		t.Fatalf("Serialize error %s", err)
	}
	for n := 0; n < len(data); n++ {
		_, err := Deserialize(data[:n])
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("Deserialize(data[:%d]) returned %v; want %v",
				n, err, ErrTruncated)
		}
	}
}

func TestCorrupt(t *testing.T) {
	valid, err := Serialize("aab")
	if err != nil {
		t.Fatalf("Serialize error %s", err)
	}
	modify := func(f func(p []byte) []byte) []byte {
		p := append([]byte(nil), valid...)
		return f(p)
	}
	le := binary.LittleEndian
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"trailing byte", modify(func(p []byte) []byte {
			return append(p, 0)
		}), ErrCorrupt},
		{"negative count", modify(func(p []byte) []byte {
			le.PutUint32(p, 0xffffffff)
			return p
		}), ErrCorrupt},
		{"zero frequency", modify(func(p []byte) []byte {
			le.PutUint32(p[6:], 0)
			return p
		}), ErrCorrupt},
		{"duplicate symbol", modify(func(p []byte) []byte {
			p[10] = 'a'
			return p
		}), ErrCorrupt},
		{"text length", modify(func(p []byte) []byte {
			le.PutUint32(p[16:], 4)
			return p
		}), ErrCorrupt},
		{"extra bits", modify(func(p []byte) []byte {
			le.PutUint64(p[20:], 11)
			return append(p, 0)
		}), ErrCorrupt},
		{"missing bits", modify(func(p []byte) []byte {
			le.PutUint64(p[20:], 2)
			return p
		}), ErrBufferExhausted},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Deserialize(tc.data)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Deserialize returned %v; want %v",
					err, tc.err)
			}
		})
	}
}

func TestInvalidText(t *testing.T) {
	if _, err := Serialize("a\xffb"); !errors.Is(err, ErrInvalidText) {
		t.Fatalf("Serialize returned %v; want %v", err, ErrInvalidText)
	}
}

func TestSymbols(t *testing.T) {
	// A lone surrogate isn't valid text but a valid symbol.
	symbols := []uint16{0xd800, 'x', 0xd800, 0xffff, 0}
	data, err := EncodeSymbols(symbols)
	if err != nil {
		t.Fatalf("EncodeSymbols error %s", err)
	}
	got, err := DecodeSymbols(data)
	if err != nil {
		t.Fatalf("DecodeSymbols error %s", err)
	}
	if len(got) != len(symbols) {
		t.Fatalf("DecodeSymbols returned %d symbols; want %d",
			len(got), len(symbols))
	}
	for i := range got {
		if got[i] != symbols[i] {
			t.Fatalf("symbol %d is %#04x; want %#04x", i, got[i],
				symbols[i])
		}
	}
}

func TestDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	debugOn(&buf)
	defer debugOff()
	data, err := Serialize("abracadabra")
	if err != nil {
		t.Fatalf("Serialize error %s", err)
	}
	if _, err = Deserialize(data); err != nil {
		t.Fatalf("Deserialize error %s", err)
	}
	out := buf.String()
	for _, s := range []string{"encode: 11 symbols", "decode: 11 symbols"} {
		if !strings.Contains(out, s) {
			t.Errorf("debug output %q doesn't contain %q", out, s)
		}
	}
}
