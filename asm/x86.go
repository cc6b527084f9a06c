// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

func disasmX86(text []byte, pc uint64, bits int) Seq {
	var out x86Seq
	for len(text) > 0 {
		inst, err := x86asm.Decode(text, bits)
		size := inst.Len
		if err != nil || size == 0 || inst.Op == 0 {
			inst = x86asm.Inst{}
		}
		if size == 0 {
			size = 1
		}
		out = append(out, x86Inst{inst, pc, size})

		text = text[size:]
		pc += uint64(size)
	}
	return out
}

type x86Seq []x86Inst

func (s x86Seq) Len() int {
	return len(s)
}

func (s x86Seq) Get(i int) Inst {
	return &s[i]
}

type x86Inst struct {
	x86asm.Inst
	pc   uint64
	size int
}

func (i *x86Inst) String() string {
	if i.Op == 0 {
		return "?"
	}
	return x86asm.GoSyntax(i.Inst, i.pc, nil)
}

func (i *x86Inst) PC() uint64 {
	return i.pc
}

func (i *x86Inst) Len() int {
	return i.size
}

func (i *x86Inst) Regs() []string {
	var regs regList
	for _, arg := range i.Args {
		switch arg := arg.(type) {
		case nil:
			return regs
		case x86asm.Reg:
			regs.add(x86RegName(arg))
		case x86asm.Mem:
			// Segment overrides are not address registers.
			if arg.Base != 0 {
				regs.add(x86RegName(arg.Base))
			}
			if arg.Index != 0 {
				regs.add(x86RegName(arg.Index))
			}
		}
	}
	return regs
}

// x86RegName converts a decoder register to its catalog name.
func x86RegName(r x86asm.Reg) string {
	name := r.String()
	switch r {
	case x86asm.SPB:
		return "SPL"
	case x86asm.BPB:
		return "BPL"
	case x86asm.SIB:
		return "SIL"
	case x86asm.DIB:
		return "DIL"
	}
	switch {
	case x86asm.R8L <= r && r <= x86asm.R15L:
		return strings.TrimSuffix(name, "L") + "D"
	case x86asm.F0 <= r && r <= x86asm.F7:
		return "ST" + name[1:]
	case x86asm.M0 <= r && r <= x86asm.M7:
		return "MM" + name[1:]
	case x86asm.X0 <= r && r <= x86asm.X15:
		return "XMM" + name[1:]
	}
	return name
}
