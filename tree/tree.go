// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package tree builds Huffman trees from ordered frequency tables and
// uses them to encode and decode single symbols.
//
// Trees are built deterministically. Leaves are ordered by frequency
// with the symbol code as tie-breaker; internal nodes are ordered by the
// sum of the keys of their children. Remaining ties are resolved by the
// order in which nodes have been added to the queue. Two trees built from
// the same table in the same order are therefore identical.
package tree

import (
	"errors"
	"fmt"
	"math"

	"github.com/ulikunitz/hufftext/bitstream"
)

var (
	// ErrEmptyAlphabet is returned if a tree should be built from an
	// empty frequency table.
	ErrEmptyAlphabet = errors.New("tree: empty alphabet")
	// ErrUnknownSymbol is returned if a symbol that is not part of the
	// tree should be encoded.
	ErrUnknownSymbol = errors.New("tree: unknown symbol")
	// ErrBufferExhausted indicates that the bit stream ended before a
	// leaf has been reached.
	ErrBufferExhausted = errors.New("tree: bit stream exhausted")
	// ErrDuplicateSymbol reports a symbol that appears twice in the
	// frequency table.
	ErrDuplicateSymbol = errors.New("tree: duplicate symbol")
	// ErrFrequencyOverflow reports that the frequencies sum up to more
	// than math.MaxUint32.
	ErrFrequencyOverflow = errors.New("tree: frequency overflow")
)

// Tree is a Huffman tree. A tree is not safe for concurrent use, since
// encoding uses a scratch buffer owned by the tree.
type Tree struct {
	root   *Node
	leaves map[uint16]*Node
	// path is the scratch buffer for EncodeSymbol.
	path []*Node
}

// New builds the Huffman tree for the frequency table. The order of the
// entries matters; they are queued in the given order.
func New(freqs []Freq) (t *Tree, err error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyAlphabet
	}
	leaves := make(map[uint16]*Node, len(freqs))
	q := newQueue(len(freqs))
	var total uint64
	for _, f := range freqs {
		if _, ok := leaves[f.Symbol]; ok {
			return nil, fmt.Errorf("%w %#04x", ErrDuplicateSymbol,
				f.Symbol)
		}
		total += f.Count
		if f.Count > math.MaxUint32 || total > math.MaxUint32 {
			return nil, ErrFrequencyOverflow
		}
		n := newLeaf(f)
		leaves[f.Symbol] = n
		q.push(n)
	}
	for q.len() > 1 {
		left := q.pop()
		right := q.pop()
		q.push(newInternal(left, right))
	}
	root := q.pop()
	t = &Tree{
		root:   root,
		leaves: leaves,
		path:   make([]*Node, 0, root.height+1),
	}
	return t, nil
}

// Root returns the root of the tree.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of leaves.
func (t *Tree) Len() int { return len(t.leaves) }

// MaxDepth returns the length of the longest path from the root to a
// leaf. A tree consisting of a single leaf has depth 0.
func (t *Tree) MaxDepth() int { return t.root.height }

// Contains reports whether the tree has a leaf for the symbol.
func (t *Tree) Contains(sym uint16) bool {
	_, ok := t.leaves[sym]
	return ok
}

// EncodeSymbol appends the path from the root to the leaf of the symbol
// to the stream. A right edge is written as 1, a left edge as 0. If the
// root is a leaf nothing is written.
func (t *Tree) EncodeSymbol(sym uint16, s *bitstream.Stream) error {
	n, ok := t.leaves[sym]
	if !ok {
		return fmt.Errorf("%w %#04x", ErrUnknownSymbol, sym)
	}
	path := t.path[:0]
	for ; n != nil; n = n.parent {
		path = append(path, n)
	}
	for i := len(path) - 1; i > 0; i-- {
		s.Append(path[i].right == path[i-1])
	}
	t.path = path[:0]
	return nil
}

// DecodeSymbol reads one symbol from the end of the stream. Callers
// reverse a stream written by EncodeSymbol before decoding it.
func (t *Tree) DecodeSymbol(s *bitstream.Stream) (sym uint16, err error) {
	n := t.root
	for !n.IsLeaf() {
		if s.Len() == 0 {
			return 0, ErrBufferExhausted
		}
		bit, err := s.RemoveLast()
		if err != nil {
			return 0, err
		}
		if bit {
			n = n.right
		} else {
			n = n.left
		}
	}
	return n.symbol, nil
}
