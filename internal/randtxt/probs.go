// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package randtxt generates random text for tests. Characters are drawn
// independently with the probabilities of English text. A few non-ASCII
// characters, including one outside the Basic Multilingual Plane, appear
// with low probability.
package randtxt

import (
	"io"
	"math/rand"
	"sort"
	"strings"
	"unicode/utf8"
)

type prob struct {
	r rune
	p float64
}

type probs []prob

func (s probs) Len() int           { return len(s) }
func (s probs) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s probs) Less(i, j int) bool { return s[i].r < s[j].r }

func (s probs) SearchProb(p float64) int {
	return sort.Search(len(s), func(k int) bool { return s[k].p >= p })
}

type byProb struct {
	probs
}

func (s byProb) Less(i, j int) bool {
	return s.probs[i].p < s.probs[j].p
}

// cdf converts weights into the cumulative distribution function.
func cdf(n int, p func(i int) prob) probs {
	prs := make(probs, n)
	sum := 0.0
	for i := range prs {
		pr := p(i)
		sum += pr.p
		prs[i] = pr
	}
	q := 1.0 / sum
	x := 0.0
	for i, pr := range prs {
		x += pr.p * q
		if x > 1.0 {
			x = 1.0
		}
		prs[i].p = x
	}
	prs[len(prs)-1].p = 1.0
	if !sort.IsSorted(byProb{prs}) {
		panic("cdf not sorted")
	}
	return prs
}

// weights are relative character frequencies in English prose.
var weights = []prob{
	{' ', 18.0}, {'e', 10.4}, {'t', 7.5}, {'a', 6.7}, {'o', 6.1},
	{'i', 5.7}, {'n', 5.5}, {'s', 5.2}, {'h', 5.0}, {'r', 4.9},
	{'d', 3.5}, {'l', 3.3}, {'c', 2.3}, {'u', 2.3}, {'m', 2.0},
	{'w', 2.0}, {'f', 1.8}, {'g', 1.6}, {'y', 1.6}, {'p', 1.6},
	{'b', 1.2}, {',', 1.0}, {'.', 0.9}, {'v', 0.8}, {'k', 0.6},
	{'\n', 0.5}, {'T', 0.3}, {'I', 0.3}, {'j', 0.12}, {'x', 0.12},
	{'q', 0.08}, {'z', 0.06}, {'é', 0.05}, {'ü', 0.03}, {'—', 0.03},
	{'€', 0.01}, {'😀', 0.01},
}

var pcdf = cdf(len(weights), func(i int) prob { return weights[i] })

// Reader produces an endless stream of UTF-8 encoded random text.
type Reader struct {
	rnd *rand.Rand
	buf [utf8.UTFMax]byte
	// pending holds the bytes of a rune that didn't fit into the last
	// read.
	pending []byte
}

// NewReader creates a text reader using the random source.
func NewReader(src rand.Source) *Reader {
	return &Reader{rnd: rand.New(src)}
}

// Rune returns the next random character.
func (r *Reader) Rune() rune {
	i := pcdf.SearchProb(r.rnd.Float64())
	return pcdf[i].r
}

// Read fills p with random text. It never returns an error.
func (r *Reader) Read(p []byte) (n int, err error) {
	n = copy(p, r.pending)
	r.pending = r.pending[n:]
	for n < len(p) {
		k := utf8.EncodeRune(r.buf[:], r.Rune())
		m := copy(p[n:], r.buf[:k])
		n += m
		if m < k {
			r.pending = r.buf[m:k]
		}
	}
	return n, nil
}

// Text returns a random text of n characters generated from a source
// seeded with seed.
func Text(seed int64, n int) string {
	r := NewReader(rand.NewSource(seed))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteRune(r.Rune())
	}
	return sb.String()
}

var _ io.Reader = (*Reader)(nil)
