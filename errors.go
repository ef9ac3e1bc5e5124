// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hufftext

import (
	"errors"

	"github.com/ulikunitz/hufftext/bitstream"
	"github.com/ulikunitz/hufftext/tree"
)

// Errors returned by the tree and the bit stream are provided here, so
// users of Serialize and Deserialize require only this package.
var (
	ErrEmptyAlphabet   = tree.ErrEmptyAlphabet
	ErrUnknownSymbol   = tree.ErrUnknownSymbol
	ErrBufferExhausted = tree.ErrBufferExhausted
	ErrUnderflow       = bitstream.ErrUnderflow
)

var (
	// ErrTruncated indicates that the compressed data ends before a
	// header field or the payload is complete.
	ErrTruncated = errors.New("hufftext: truncated payload")
	// ErrCorrupt indicates compressed data that is inconsistent.
	ErrCorrupt = errors.New("hufftext: corrupt payload")
	// ErrTooLarge is returned for texts with more than math.MaxInt32
	// symbols.
	ErrTooLarge = errors.New("hufftext: text too large")
	// ErrInvalidText is returned for strings that are not valid UTF-8.
	ErrInvalidText = errors.New("hufftext: text is not valid UTF-8")
)
