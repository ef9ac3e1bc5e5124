// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package hufftext compresses text with a Huffman code built for each
// message.
//
// The text is handled as a sequence of 16-bit UTF-16 code units. The
// compressed form is self-describing; it carries the frequency table
// required to rebuild the tree. All integers are little-endian.
//
//	entry_count   int32
//	entries       entry_count × (symbol uint16, frequency int32)
//	text_length   int32
//	written_bits  uint64
//	payload       ⌈written_bits/8⌉ bytes
//
// The entries appear in the order in which the symbols have been seen
// first in the text. The decoder queues the leaves in the same order,
// which is required to rebuild the identical tree. Bit i of the payload is
// stored in byte i/8 at bit position i%8.
//
// The empty text is represented by a header with zero entries, zero text
// length, zero bits and no payload.
package hufftext
