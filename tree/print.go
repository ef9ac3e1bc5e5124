// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Code describes the bit path of a single symbol.
type Code struct {
	Symbol uint16
	Freq   uint64
	// Bits contains the path as a string of 0 and 1 characters.
	Bits string
}

// Codes returns the codes for all symbols of the tree sorted by symbol.
func (t *Tree) Codes() []Code {
	codes := make([]Code, 0, len(t.leaves))
	var walk func(n *Node, prefix []byte)
	walk = func(n *Node, prefix []byte) {
		if n.IsLeaf() {
			codes = append(codes, Code{
				Symbol: n.symbol,
				Freq:   n.freq,
				Bits:   string(prefix),
			})
			return
		}
		walk(n.left, append(prefix, '0'))
		walk(n.right, append(prefix, '1'))
	}
	walk(t.root, make([]byte, 0, t.root.height))
	sort.Slice(codes, func(i, j int) bool {
		return codes[i].Symbol < codes[j].Symbol
	})
	return codes
}

// Fprint writes the tree sideways to w. The right subtree is printed
// above, the left subtree below the node.
func Fprint(w io.Writer, t *Tree) error {
	bw := bufio.NewWriter(w)
	fprintNode(bw, t.root, 0, "---")
	return bw.Flush()
}

func fprintNode(w *bufio.Writer, n *Node, depth int, edge string) {
	pad := strings.Repeat("    ", depth)
	if n.IsLeaf() {
		fmt.Fprintf(w, "%s%s%q (%d)\n", pad, edge, rune(n.symbol),
			n.freq)
		return
	}
	fprintNode(w, n.right, depth+1, "/--")
	fmt.Fprintf(w, "%s%s< (%d)\n", pad, edge, n.freq)
	fprintNode(w, n.left, depth+1, "\\--")
}
