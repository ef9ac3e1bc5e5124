// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package tree

// Freq is a single entry of a frequency table.
type Freq struct {
	Symbol uint16
	Count  uint64
}

// Node is a node of the Huffman tree. A leaf has no children and carries
// a symbol. An internal node has exactly two children.
type Node struct {
	// parent is a back reference used only to walk from a leaf to the
	// root.
	parent      *Node
	left, right *Node

	symbol uint16
	freq   uint64

	// key orders nodes in the queue; height is the length of the longest
	// path to a leaf.
	key    uint64
	height int
}

// leafKey combines frequency and symbol so that the lower symbol wins
// among leaves of equal frequency.
func leafKey(freq uint64, sym uint16) uint64 {
	return freq<<32 | uint64(sym)
}

func newLeaf(f Freq) *Node {
	return &Node{
		symbol: f.Symbol,
		freq:   f.Count,
		key:    leafKey(f.Count, f.Symbol),
	}
}

// newInternal links left and right under a new node. The key is the sum
// of the child keys.
func newInternal(left, right *Node) *Node {
	n := &Node{
		left:   left,
		right:  right,
		freq:   left.freq + right.freq,
		key:    left.key + right.key,
		height: 1 + max(left.height, right.height),
	}
	left.parent = n
	right.parent = n
	return n
}

// IsLeaf reports whether the node is a leaf.
func (n *Node) IsLeaf() bool { return n.left == nil }

// Symbol returns the symbol of a leaf. For internal nodes it returns zero.
func (n *Node) Symbol() uint16 { return n.symbol }

// Freq returns the frequency of a leaf or the sum of all leaf
// frequencies below an internal node.
func (n *Node) Freq() uint64 { return n.freq }

// Key returns the ordering key of the node.
func (n *Node) Key() uint64 { return n.key }

// Left returns the left child; it is nil for leaves.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child; it is nil for leaves.
func (n *Node) Right() *Node { return n.right }

// Parent returns the parent node or nil for the root.
func (n *Node) Parent() *Node { return n.parent }
