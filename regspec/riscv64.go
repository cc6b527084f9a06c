// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noriscv

package regspec

import "github.com/aclements/go-regcat/arch"

var rv64Table = &Table{
	Family: arch.FamilyRISCV,
	Entries: []Entry{
		// Integer registers.
		{"X0", RV64_X0, RV64_X0, 63, 0, Mode64, Undecoded},
		{"X1", RV64_X1, RV64_X1, 63, 0, Mode64, Undecoded},
		{"X2", RV64_X2, RV64_X2, 63, 0, Mode64, Undecoded},
		{"X3", RV64_X3, RV64_X3, 63, 0, Mode64, Undecoded},
		{"X4", RV64_X4, RV64_X4, 63, 0, Mode64, Undecoded},
		{"X5", RV64_X5, RV64_X5, 63, 0, Mode64, Undecoded},
		{"X6", RV64_X6, RV64_X6, 63, 0, Mode64, Undecoded},
		{"X7", RV64_X7, RV64_X7, 63, 0, Mode64, Undecoded},
		{"X8", RV64_X8, RV64_X8, 63, 0, Mode64, Undecoded},
		{"X9", RV64_X9, RV64_X9, 63, 0, Mode64, Undecoded},
		{"X10", RV64_X10, RV64_X10, 63, 0, Mode64, Undecoded},
		{"X11", RV64_X11, RV64_X11, 63, 0, Mode64, Undecoded},
		{"X12", RV64_X12, RV64_X12, 63, 0, Mode64, Undecoded},
		{"X13", RV64_X13, RV64_X13, 63, 0, Mode64, Undecoded},
		{"X14", RV64_X14, RV64_X14, 63, 0, Mode64, Undecoded},
		{"X15", RV64_X15, RV64_X15, 63, 0, Mode64, Undecoded},
		{"X16", RV64_X16, RV64_X16, 63, 0, Mode64, Undecoded},
		{"X17", RV64_X17, RV64_X17, 63, 0, Mode64, Undecoded},
		{"X18", RV64_X18, RV64_X18, 63, 0, Mode64, Undecoded},
		{"X19", RV64_X19, RV64_X19, 63, 0, Mode64, Undecoded},
		{"X20", RV64_X20, RV64_X20, 63, 0, Mode64, Undecoded},
		{"X21", RV64_X21, RV64_X21, 63, 0, Mode64, Undecoded},
		{"X22", RV64_X22, RV64_X22, 63, 0, Mode64, Undecoded},
		{"X23", RV64_X23, RV64_X23, 63, 0, Mode64, Undecoded},
		{"X24", RV64_X24, RV64_X24, 63, 0, Mode64, Undecoded},
		{"X25", RV64_X25, RV64_X25, 63, 0, Mode64, Undecoded},
		{"X26", RV64_X26, RV64_X26, 63, 0, Mode64, Undecoded},
		{"X27", RV64_X27, RV64_X27, 63, 0, Mode64, Undecoded},
		{"X28", RV64_X28, RV64_X28, 63, 0, Mode64, Undecoded},
		{"X29", RV64_X29, RV64_X29, 63, 0, Mode64, Undecoded},
		{"X30", RV64_X30, RV64_X30, 63, 0, Mode64, Undecoded},
		{"X31", RV64_X31, RV64_X31, 63, 0, Mode64, Undecoded},
		{"PC", RV64_PC, RV64_PC, 63, 0, Mode64, Undecoded},

		// Floating point registers.
		{"F0", RV64_F0, RV64_F0, 63, 0, Mode64, Undecoded},
		{"F1", RV64_F1, RV64_F1, 63, 0, Mode64, Undecoded},
		{"F2", RV64_F2, RV64_F2, 63, 0, Mode64, Undecoded},
		{"F3", RV64_F3, RV64_F3, 63, 0, Mode64, Undecoded},
		{"F4", RV64_F4, RV64_F4, 63, 0, Mode64, Undecoded},
		{"F5", RV64_F5, RV64_F5, 63, 0, Mode64, Undecoded},
		{"F6", RV64_F6, RV64_F6, 63, 0, Mode64, Undecoded},
		{"F7", RV64_F7, RV64_F7, 63, 0, Mode64, Undecoded},
		{"F8", RV64_F8, RV64_F8, 63, 0, Mode64, Undecoded},
		{"F9", RV64_F9, RV64_F9, 63, 0, Mode64, Undecoded},
		{"F10", RV64_F10, RV64_F10, 63, 0, Mode64, Undecoded},
		{"F11", RV64_F11, RV64_F11, 63, 0, Mode64, Undecoded},
		{"F12", RV64_F12, RV64_F12, 63, 0, Mode64, Undecoded},
		{"F13", RV64_F13, RV64_F13, 63, 0, Mode64, Undecoded},
		{"F14", RV64_F14, RV64_F14, 63, 0, Mode64, Undecoded},
		{"F15", RV64_F15, RV64_F15, 63, 0, Mode64, Undecoded},
		{"F16", RV64_F16, RV64_F16, 63, 0, Mode64, Undecoded},
		{"F17", RV64_F17, RV64_F17, 63, 0, Mode64, Undecoded},
		{"F18", RV64_F18, RV64_F18, 63, 0, Mode64, Undecoded},
		{"F19", RV64_F19, RV64_F19, 63, 0, Mode64, Undecoded},
		{"F20", RV64_F20, RV64_F20, 63, 0, Mode64, Undecoded},
		{"F21", RV64_F21, RV64_F21, 63, 0, Mode64, Undecoded},
		{"F22", RV64_F22, RV64_F22, 63, 0, Mode64, Undecoded},
		{"F23", RV64_F23, RV64_F23, 63, 0, Mode64, Undecoded},
		{"F24", RV64_F24, RV64_F24, 63, 0, Mode64, Undecoded},
		{"F25", RV64_F25, RV64_F25, 63, 0, Mode64, Undecoded},
		{"F26", RV64_F26, RV64_F26, 63, 0, Mode64, Undecoded},
		{"F27", RV64_F27, RV64_F27, 63, 0, Mode64, Undecoded},
		{"F28", RV64_F28, RV64_F28, 63, 0, Mode64, Undecoded},
		{"F29", RV64_F29, RV64_F29, 63, 0, Mode64, Undecoded},
		{"F30", RV64_F30, RV64_F30, 63, 0, Mode64, Undecoded},
		{"F31", RV64_F31, RV64_F31, 63, 0, Mode64, Undecoded},
	},
	System: []Entry{
		// Control and status registers.
		{"FFLAGS", RV64_FFLAGS, RV64_FFLAGS, 63, 0, Mode64, System | Undecoded},
		{"FRM", RV64_FRM, RV64_FRM, 63, 0, Mode64, System | Undecoded},
		{"FCSR", RV64_FCSR, RV64_FCSR, 63, 0, Mode64, System | Undecoded},
		{"CYCLE", RV64_CYCLE, RV64_CYCLE, 63, 0, Mode64, System | Undecoded},
		{"TIME", RV64_TIME, RV64_TIME, 63, 0, Mode64, System | Undecoded},
		{"INSTRET", RV64_INSTRET, RV64_INSTRET, 63, 0, Mode64, System | Undecoded},
		{"MSTATUS", RV64_MSTATUS, RV64_MSTATUS, 63, 0, Mode64, System | Undecoded},
		{"MISA", RV64_MISA, RV64_MISA, 63, 0, Mode64, System | Undecoded},
		{"MIE", RV64_MIE, RV64_MIE, 63, 0, Mode64, System | Undecoded},
		{"MTVEC", RV64_MTVEC, RV64_MTVEC, 63, 0, Mode64, System | Undecoded},
		{"MSCRATCH", RV64_MSCRATCH, RV64_MSCRATCH, 63, 0, Mode64, System | Undecoded},
		{"MEPC", RV64_MEPC, RV64_MEPC, 63, 0, Mode64, System | Undecoded},
		{"MCAUSE", RV64_MCAUSE, RV64_MCAUSE, 63, 0, Mode64, System | Undecoded},
		{"MTVAL", RV64_MTVAL, RV64_MTVAL, 63, 0, Mode64, System | Undecoded},
		{"MIP", RV64_MIP, RV64_MIP, 63, 0, Mode64, System | Undecoded},
		{"MHARTID", RV64_MHARTID, RV64_MHARTID, 63, 0, Mode64, System | Undecoded},
		{"SSTATUS", RV64_SSTATUS, RV64_SSTATUS, 63, 0, Mode64, System | Undecoded},
		{"SIE", RV64_SIE, RV64_SIE, 63, 0, Mode64, System | Undecoded},
		{"STVEC", RV64_STVEC, RV64_STVEC, 63, 0, Mode64, System | Undecoded},
		{"SSCRATCH", RV64_SSCRATCH, RV64_SSCRATCH, 63, 0, Mode64, System | Undecoded},
		{"SEPC", RV64_SEPC, RV64_SEPC, 63, 0, Mode64, System | Undecoded},
		{"SCAUSE", RV64_SCAUSE, RV64_SCAUSE, 63, 0, Mode64, System | Undecoded},
		{"STVAL", RV64_STVAL, RV64_STVAL, 63, 0, Mode64, System | Undecoded},
		{"SIP", RV64_SIP, RV64_SIP, 63, 0, Mode64, System | Undecoded},
		{"SATP", RV64_SATP, RV64_SATP, 63, 0, Mode64, System | Undecoded},
	},
}

