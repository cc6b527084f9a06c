// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noriscv

package regspec

import "github.com/aclements/go-regcat/arch"

func init() {
	Register(&Family{
		Name: arch.FamilyRISCV,
		Variants: []Variant{
			{arch.RV64, rv64Table, Mode64},
			{arch.RV32, rv32Table, Mode32},
		},
		Optional: true,
	})
}
