// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestLayoutOrder(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8}
	check := func(layout Layout, label string, want, got interface{}) {
		t.Helper()
		if want != got {
			t.Errorf("for %s %s: want %v, got %v", layout.Order(), label, want, got)
		}
	}

	l := NewLayout(binary.LittleEndian, 4)
	check(l, "Uint32", l.Uint32(data), uint32(0xfcfdfeff))
	check(l, "Uint64", l.Uint64(data), uint64(0xf8f9fafbfcfdfeff))

	l = NewLayout(binary.BigEndian, 4)
	check(l, "Uint32", l.Uint32(data), uint32(0xfffefdfc))
	check(l, "Uint64", l.Uint64(data), uint64(0xfffefdfcfbfaf9f8))
}

func TestLayoutAppend(t *testing.T) {
	check := func(order binary.ByteOrder) {
		t.Helper()
		l := NewLayout(order, 8)

		got := l.AppendUint32([]byte{0xaa}, 0x01020304)
		want := []byte{0xaa, 0, 0, 0, 0}
		order.PutUint32(want[1:], 0x01020304)
		if !bytes.Equal(want, got) {
			t.Errorf("%s AppendUint32: want %x, got %x", order, want, got)
		}
		if v := l.Uint32(got[1:]); v != 0x01020304 {
			t.Errorf("%s Uint32 round trip: got %#x", order, v)
		}

		got = l.AppendUint64(nil, 0x0102030405060708)
		want = make([]byte, 8)
		order.PutUint64(want, 0x0102030405060708)
		if !bytes.Equal(want, got) {
			t.Errorf("%s AppendUint64: want %x, got %x", order, want, got)
		}
		if v := l.Uint64(got); v != 0x0102030405060708 {
			t.Errorf("%s Uint64 round trip: got %#x", order, v)
		}
	}
	check(binary.LittleEndian)
	check(binary.BigEndian)
}

func TestNewLayoutWordSize(t *testing.T) {
	for _, size := range []int{1, 2, 4, 8} {
		if got := NewLayout(binary.LittleEndian, size).WordSize(); got != size {
			t.Errorf("word size %d: got %d", size, got)
		}
	}
	defer func() {
		if recover() == nil {
			t.Errorf("NewLayout with word size 3 did not panic")
		}
	}()
	NewLayout(binary.LittleEndian, 3)
}

func BenchmarkOrder(b *testing.B) {
	data := make([]byte, 16<<10)
	for i := range data {
		data[i] = byte(i)
	}
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		l := NewLayout(order, 8)
		b.Run("order="+order.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var sum uint64
				for off := 0; off < len(data); off += 8 {
					sum += l.Uint64(data[off:])
				}
				_ = sum
			}
		})
	}
}
