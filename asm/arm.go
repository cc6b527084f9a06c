// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"golang.org/x/arch/arm/armasm"
)

func disasmARM(text []byte, pc uint64) Seq {
	out := armSeq{text: textAt{pc, text}}
	for len(text) >= 4 {
		inst, err := armasm.Decode(text, armasm.ModeARM)
		if err != nil || inst.Op == 0 {
			inst = armasm.Inst{}
		}
		out.insts = append(out.insts, armInst{inst, pc, &out.text})

		const size = 4
		text = text[size:]
		pc += uint64(size)
	}
	return &out
}

type armSeq struct {
	insts []armInst
	text  textAt
}

func (s *armSeq) Len() int {
	return len(s.insts)
}

func (s *armSeq) Get(i int) Inst {
	return &s.insts[i]
}

type armInst struct {
	armasm.Inst
	pc   uint64
	text *textAt
}

func (i *armInst) String() string {
	if i.Op == 0 {
		return "?"
	}
	return armasm.GoSyntax(i.Inst, i.pc, nil, i.text)
}

func (i *armInst) PC() uint64 {
	return i.pc
}

func (i *armInst) Len() int { return 4 }

func (i *armInst) Regs() []string {
	var regs regList
	for _, arg := range i.Args {
		switch arg := arg.(type) {
		case nil:
			return regs
		case armasm.Reg:
			regs.add(armRegName(arg))
		case armasm.RegX:
			regs.add(armRegName(arg.Reg))
		case armasm.RegShift:
			regs.add(armRegName(arg.Reg))
		case armasm.RegShiftReg:
			regs.add(armRegName(arg.Reg))
			regs.add(armRegName(arg.RegCount))
		case armasm.RegList:
			for r := 0; r < 16; r++ {
				if arg&(1<<uint(r)) != 0 {
					regs.add(armRegName(armasm.Reg(r)))
				}
			}
		case armasm.Mem:
			regs.add(armRegName(arg.Base))
			if arg.Sign != 0 {
				regs.add(armRegName(arg.Index))
			}
		}
	}
	return regs
}

// armRegName converts a decoder register to its catalog name.
func armRegName(r armasm.Reg) string {
	if r == armasm.APSR_nzcv {
		return "APSR"
	}
	return r.String()
}
