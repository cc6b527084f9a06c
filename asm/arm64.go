// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"golang.org/x/arch/arm64/arm64asm"
)

func disasmARM64(text []byte, pc uint64) Seq {
	out := arm64Seq{text: textAt{pc, text}}
	for len(text) >= 4 {
		inst, err := arm64asm.Decode(text)
		if err != nil || inst.Op == 0 {
			inst = arm64asm.Inst{}
		}
		out.insts = append(out.insts, arm64Inst{inst, pc, &out.text})

		const size = 4
		text = text[size:]
		pc += uint64(size)
	}
	return &out
}

type arm64Seq struct {
	insts []arm64Inst
	text  textAt
}

func (s *arm64Seq) Len() int {
	return len(s.insts)
}

func (s *arm64Seq) Get(i int) Inst {
	return &s.insts[i]
}

type arm64Inst struct {
	arm64asm.Inst
	pc   uint64
	text *textAt
}

func (i *arm64Inst) String() string {
	if i.Op == 0 {
		return "?"
	}
	return arm64asm.GoSyntax(i.Inst, i.pc, nil, i.text)
}

func (i *arm64Inst) PC() uint64 {
	return i.pc
}

func (i *arm64Inst) Len() int { return 4 }

func (i *arm64Inst) Regs() []string {
	var regs regList
	for _, arg := range i.Args {
		switch arg := arg.(type) {
		case nil:
			return regs
		case arm64asm.Reg:
			regs.add(arg.String())
		case arm64asm.RegSP:
			regs.add(arg.String())
		case arm64asm.MemImmediate:
			regs.add(arg.Base.String())
		case arm64asm.MemExtend:
			regs.add(arg.Base.String())
			regs.add(arg.Index.String())
		case arm64asm.RegExtshiftAmount, arm64asm.RegisterWithArrangement, arm64asm.RegisterWithArrangementAndIndex:
			// The register is not exported; it leads the
			// operand text, e.g. "X1, LSL #2" or "{V0.16B}".
			regs.add(leadingReg(arg.String()))
		}
	}
	return regs
}

func leadingReg(s string) string {
	s = strings.TrimLeft(s, "{")
	end := strings.IndexFunc(s, func(r rune) bool {
		return !('A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	})
	if end >= 0 {
		s = s[:end]
	}
	return s
}
