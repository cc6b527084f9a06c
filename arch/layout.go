// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"encoding/binary"
	"fmt"
)

// Layout describes the data layout (byte order and word size) of an
// architecture.
type Layout struct {
	// order is 0 for little endian and 1 for big endian.
	order    uint8
	wordSize uint8
}

// NewLayout returns a new Layout with the given byte order and word size.
//
// wordSize must be 1, 2, 4, or 8.
func NewLayout(order binary.ByteOrder, wordSize int) Layout {
	var l Layout
	switch order {
	case binary.LittleEndian:
		l.order = 0
	case binary.BigEndian:
		l.order = 1
	default:
		panic(fmt.Errorf("unknown byte order %v", order))
	}
	if wordSize < 1 || wordSize > 8 || (wordSize&(wordSize-1) != 0) {
		panic("word size must be 1, 2, 4, or 8")
	}
	l.wordSize = uint8(wordSize)
	return l
}

// Order returns the byte order of l.
func (l Layout) Order() binary.ByteOrder {
	if l.order == 0 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// WordSize returns the word size of l.
func (l Layout) WordSize() int {
	return int(l.wordSize)
}

// Uint32 decodes a 32-bit value from the first four bytes of b.
func (l Layout) Uint32(b []byte) uint32 {
	_ = b[3]
	if l.order == 0 {
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

// Uint64 decodes a 64-bit value from the first eight bytes of b.
func (l Layout) Uint64(b []byte) uint64 {
	_ = b[7]
	if l.order == 0 {
		return uint64(l.Uint32(b)) | uint64(l.Uint32(b[4:]))<<32
	}
	return uint64(l.Uint32(b))<<32 | uint64(l.Uint32(b[4:]))
}

// AppendUint32 appends the encoding of v to b.
func (l Layout) AppendUint32(b []byte, v uint32) []byte {
	if l.order == 0 {
		return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendUint64 appends the encoding of v to b.
func (l Layout) AppendUint64(b []byte, v uint64) []byte {
	if l.order == 0 {
		return l.AppendUint32(l.AppendUint32(b, uint32(v)), uint32(v>>32))
	}
	return l.AppendUint32(l.AppendUint32(b, uint32(v>>32)), uint32(v))
}
