// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arch provides basic descriptions of the CPU architectures
// known to the register catalog.
package arch

import "sort"

// A Family groups architecture variants that share one register
// identifier domain.
type Family string

const (
	FamilyX86     Family = "x86"
	FamilyAArch64 Family = "aarch64"
	FamilyARM32   Family = "arm32"
	FamilyRISCV   Family = "riscv"
)

// An Arch describes a CPU architecture variant.
type Arch struct {
	// Label is the stable name under which this architecture's
	// register namespace is published, e.g., "X86_64".
	Label string

	// Family is the identifier domain this variant belongs to.
	Family Family

	// Layout is the byte order and word size of this architecture.
	Layout Layout
}

var (
	X86     = &Arch{"X86", FamilyX86, Layout{0, 4}}
	X86_64  = &Arch{"X86_64", FamilyX86, Layout{0, 8}}
	AARCH64 = &Arch{"AARCH64", FamilyAArch64, Layout{0, 8}}
	ARM32   = &Arch{"ARM32", FamilyARM32, Layout{0, 4}}
	RV64    = &Arch{"RV64", FamilyRISCV, Layout{0, 8}}
	RV32    = &Arch{"RV32", FamilyRISCV, Layout{0, 4}}
)

var byLabel = map[string]*Arch{}

func init() {
	for _, a := range []*Arch{X86, X86_64, AARCH64, ARM32, RV64, RV32} {
		byLabel[a.Label] = a
	}
}

// Lookup returns the architecture published under label. Labels are
// case-sensitive.
func Lookup(label string) (*Arch, bool) {
	a, ok := byLabel[label]
	return a, ok
}

// All returns every known architecture ordered by label. Whether an
// architecture's registers are available depends on which register
// tables were compiled in.
func All() []*Arch {
	out := make([]*Arch, 0, len(byLabel))
	for _, a := range byLabel {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Bits returns the native word width of a in bits.
func (a *Arch) Bits() int {
	return a.Layout.WordSize() * 8
}

// String returns the label of a.
func (a *Arch) String() string {
	if a == nil {
		return "<nil>"
	}
	return a.Label
}
