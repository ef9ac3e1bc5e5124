// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hufftext

import (
	"fmt"

	"github.com/ulikunitz/hufftext/tree"
)

// FreqTable counts symbols. The entries keep the order in which the
// symbols have been added first.
type FreqTable struct {
	entries []tree.Freq
	index   map[uint16]int
}

// newFreqTable creates an empty table with space for n symbols.
func newFreqTable(n int) *FreqTable {
	return &FreqTable{
		entries: make([]tree.Freq, 0, n),
		index:   make(map[uint16]int, n),
	}
}

// Frequencies counts the symbols in a single pass.
func Frequencies(symbols []uint16) *FreqTable {
	t := newFreqTable(64)
	for _, sym := range symbols {
		i, ok := t.index[sym]
		if !ok {
			i = len(t.entries)
			t.index[sym] = i
			t.entries = append(t.entries, tree.Freq{Symbol: sym})
		}
		t.entries[i].Count++
	}
	return t
}

// add appends a new entry. It is used to rebuild a table from its
// serialized form.
func (t *FreqTable) add(sym uint16, n uint64) error {
	if _, ok := t.index[sym]; ok {
		return fmt.Errorf("%w: symbol %#04x listed twice", ErrCorrupt,
			sym)
	}
	t.index[sym] = len(t.entries)
	t.entries = append(t.entries, tree.Freq{Symbol: sym, Count: n})
	return nil
}

// Len returns the number of distinct symbols.
func (t *FreqTable) Len() int { return len(t.entries) }

// Entries returns the entries in first-seen order. The slice must not be
// modified.
func (t *FreqTable) Entries() []tree.Freq { return t.entries }

// Count returns the number of occurrences of the symbol.
func (t *FreqTable) Count(sym uint16) uint64 {
	i, ok := t.index[sym]
	if !ok {
		return 0
	}
	return t.entries[i].Count
}

// Total returns the sum of all counts.
func (t *FreqTable) Total() uint64 {
	var n uint64
	for _, e := range t.entries {
		n += e.Count
	}
	return n
}
