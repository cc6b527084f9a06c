// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm disassembles machine code and reports the registers
// each instruction names, spelled the way the register catalog spells
// them.
package asm

import (
	"errors"
	"fmt"

	"github.com/aclements/go-regcat/arch"
	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/regspec"
)

// ErrUnsupported is returned by Disasm for architectures with no
// decoder.
var ErrUnsupported = errors.New("unsupported assembly architecture")

// Disasm disassembles machine code for the given architecture. pc is
// the program counter at which text begins.
func Disasm(a *arch.Arch, text []byte, pc uint64) (Seq, error) {
	switch a {
	case arch.X86_64:
		return disasmX86(text, pc, 64), nil
	case arch.X86:
		return disasmX86(text, pc, 32), nil
	case arch.AARCH64:
		return disasmARM64(text, pc), nil
	case arch.ARM32:
		return disasmARM(text, pc), nil
	}
	return nil, fmt.Errorf("%s: %w", a, ErrUnsupported)
}

// Seq is a sequence of instructions.
type Seq interface {
	Len() int
	Get(i int) Inst
}

// Inst is a single machine instruction.
type Inst interface {
	// String returns the Go assembler syntax of this instruction,
	// or "?" if it could not be decoded.
	String() string

	// PC returns the address of this instruction.
	PC() uint64

	// Len returns the length of this instruction in bytes.
	Len() int

	// Regs returns the catalog names of the registers this
	// instruction names, including memory base and index
	// registers, in operand order without duplicates.
	Regs() []string
}

// Resolve maps the registers of inst to identifiers in ns.
func Resolve(ns *catalog.Namespace, inst Inst) ([]regspec.ID, error) {
	names := inst.Regs()
	ids := make([]regspec.ID, 0, len(names))
	for _, name := range names {
		id, err := ns.Lookup(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// regList accumulates register names without duplicates.
type regList []string

func (l *regList) add(name string) {
	if name == "" {
		return
	}
	for _, n := range *l {
		if n == name {
			return
		}
	}
	*l = append(*l, name)
}

// textAt serves literal-pool reads for the Go syntax printers.
type textAt struct {
	base uint64
	b    []byte
}

func (t textAt) ReadAt(p []byte, off int64) (int, error) {
	if uint64(off) < t.base || uint64(off)-t.base >= uint64(len(t.b)) {
		return 0, fmt.Errorf("address %#x outside text", off)
	}
	n := copy(p, t.b[uint64(off)-t.base:])
	if n < len(p) {
		return n, fmt.Errorf("short read at %#x", off)
	}
	return n, nil
}
