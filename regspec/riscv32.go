// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noriscv

package regspec

import "github.com/aclements/go-regcat/arch"

var rv32Table = &Table{
	Family: arch.FamilyRISCV,
	Entries: []Entry{
		// Integer registers.
		{"X0", RV32_X0, RV32_X0, 31, 0, Mode32, Undecoded},
		{"X1", RV32_X1, RV32_X1, 31, 0, Mode32, Undecoded},
		{"X2", RV32_X2, RV32_X2, 31, 0, Mode32, Undecoded},
		{"X3", RV32_X3, RV32_X3, 31, 0, Mode32, Undecoded},
		{"X4", RV32_X4, RV32_X4, 31, 0, Mode32, Undecoded},
		{"X5", RV32_X5, RV32_X5, 31, 0, Mode32, Undecoded},
		{"X6", RV32_X6, RV32_X6, 31, 0, Mode32, Undecoded},
		{"X7", RV32_X7, RV32_X7, 31, 0, Mode32, Undecoded},
		{"X8", RV32_X8, RV32_X8, 31, 0, Mode32, Undecoded},
		{"X9", RV32_X9, RV32_X9, 31, 0, Mode32, Undecoded},
		{"X10", RV32_X10, RV32_X10, 31, 0, Mode32, Undecoded},
		{"X11", RV32_X11, RV32_X11, 31, 0, Mode32, Undecoded},
		{"X12", RV32_X12, RV32_X12, 31, 0, Mode32, Undecoded},
		{"X13", RV32_X13, RV32_X13, 31, 0, Mode32, Undecoded},
		{"X14", RV32_X14, RV32_X14, 31, 0, Mode32, Undecoded},
		{"X15", RV32_X15, RV32_X15, 31, 0, Mode32, Undecoded},
		{"X16", RV32_X16, RV32_X16, 31, 0, Mode32, Undecoded},
		{"X17", RV32_X17, RV32_X17, 31, 0, Mode32, Undecoded},
		{"X18", RV32_X18, RV32_X18, 31, 0, Mode32, Undecoded},
		{"X19", RV32_X19, RV32_X19, 31, 0, Mode32, Undecoded},
		{"X20", RV32_X20, RV32_X20, 31, 0, Mode32, Undecoded},
		{"X21", RV32_X21, RV32_X21, 31, 0, Mode32, Undecoded},
		{"X22", RV32_X22, RV32_X22, 31, 0, Mode32, Undecoded},
		{"X23", RV32_X23, RV32_X23, 31, 0, Mode32, Undecoded},
		{"X24", RV32_X24, RV32_X24, 31, 0, Mode32, Undecoded},
		{"X25", RV32_X25, RV32_X25, 31, 0, Mode32, Undecoded},
		{"X26", RV32_X26, RV32_X26, 31, 0, Mode32, Undecoded},
		{"X27", RV32_X27, RV32_X27, 31, 0, Mode32, Undecoded},
		{"X28", RV32_X28, RV32_X28, 31, 0, Mode32, Undecoded},
		{"X29", RV32_X29, RV32_X29, 31, 0, Mode32, Undecoded},
		{"X30", RV32_X30, RV32_X30, 31, 0, Mode32, Undecoded},
		{"X31", RV32_X31, RV32_X31, 31, 0, Mode32, Undecoded},
		{"PC", RV32_PC, RV32_PC, 31, 0, Mode32, Undecoded},

		// Floating point registers.
		{"F0", RV32_F0, RV32_F0, 63, 0, Mode32, Undecoded},
		{"F1", RV32_F1, RV32_F1, 63, 0, Mode32, Undecoded},
		{"F2", RV32_F2, RV32_F2, 63, 0, Mode32, Undecoded},
		{"F3", RV32_F3, RV32_F3, 63, 0, Mode32, Undecoded},
		{"F4", RV32_F4, RV32_F4, 63, 0, Mode32, Undecoded},
		{"F5", RV32_F5, RV32_F5, 63, 0, Mode32, Undecoded},
		{"F6", RV32_F6, RV32_F6, 63, 0, Mode32, Undecoded},
		{"F7", RV32_F7, RV32_F7, 63, 0, Mode32, Undecoded},
		{"F8", RV32_F8, RV32_F8, 63, 0, Mode32, Undecoded},
		{"F9", RV32_F9, RV32_F9, 63, 0, Mode32, Undecoded},
		{"F10", RV32_F10, RV32_F10, 63, 0, Mode32, Undecoded},
		{"F11", RV32_F11, RV32_F11, 63, 0, Mode32, Undecoded},
		{"F12", RV32_F12, RV32_F12, 63, 0, Mode32, Undecoded},
		{"F13", RV32_F13, RV32_F13, 63, 0, Mode32, Undecoded},
		{"F14", RV32_F14, RV32_F14, 63, 0, Mode32, Undecoded},
		{"F15", RV32_F15, RV32_F15, 63, 0, Mode32, Undecoded},
		{"F16", RV32_F16, RV32_F16, 63, 0, Mode32, Undecoded},
		{"F17", RV32_F17, RV32_F17, 63, 0, Mode32, Undecoded},
		{"F18", RV32_F18, RV32_F18, 63, 0, Mode32, Undecoded},
		{"F19", RV32_F19, RV32_F19, 63, 0, Mode32, Undecoded},
		{"F20", RV32_F20, RV32_F20, 63, 0, Mode32, Undecoded},
		{"F21", RV32_F21, RV32_F21, 63, 0, Mode32, Undecoded},
		{"F22", RV32_F22, RV32_F22, 63, 0, Mode32, Undecoded},
		{"F23", RV32_F23, RV32_F23, 63, 0, Mode32, Undecoded},
		{"F24", RV32_F24, RV32_F24, 63, 0, Mode32, Undecoded},
		{"F25", RV32_F25, RV32_F25, 63, 0, Mode32, Undecoded},
		{"F26", RV32_F26, RV32_F26, 63, 0, Mode32, Undecoded},
		{"F27", RV32_F27, RV32_F27, 63, 0, Mode32, Undecoded},
		{"F28", RV32_F28, RV32_F28, 63, 0, Mode32, Undecoded},
		{"F29", RV32_F29, RV32_F29, 63, 0, Mode32, Undecoded},
		{"F30", RV32_F30, RV32_F30, 63, 0, Mode32, Undecoded},
		{"F31", RV32_F31, RV32_F31, 63, 0, Mode32, Undecoded},
	},
	System: []Entry{
		// Control and status registers.
		{"FFLAGS", RV32_FFLAGS, RV32_FFLAGS, 31, 0, Mode32, System | Undecoded},
		{"FRM", RV32_FRM, RV32_FRM, 31, 0, Mode32, System | Undecoded},
		{"FCSR", RV32_FCSR, RV32_FCSR, 31, 0, Mode32, System | Undecoded},
		{"CYCLE", RV32_CYCLE, RV32_CYCLE, 31, 0, Mode32, System | Undecoded},
		{"TIME", RV32_TIME, RV32_TIME, 31, 0, Mode32, System | Undecoded},
		{"INSTRET", RV32_INSTRET, RV32_INSTRET, 31, 0, Mode32, System | Undecoded},
		{"CYCLEH", RV32_CYCLEH, RV32_CYCLEH, 31, 0, Mode32, System | Undecoded},
		{"TIMEH", RV32_TIMEH, RV32_TIMEH, 31, 0, Mode32, System | Undecoded},
		{"INSTRETH", RV32_INSTRETH, RV32_INSTRETH, 31, 0, Mode32, System | Undecoded},
		{"MSTATUS", RV32_MSTATUS, RV32_MSTATUS, 31, 0, Mode32, System | Undecoded},
		{"MISA", RV32_MISA, RV32_MISA, 31, 0, Mode32, System | Undecoded},
		{"MIE", RV32_MIE, RV32_MIE, 31, 0, Mode32, System | Undecoded},
		{"MTVEC", RV32_MTVEC, RV32_MTVEC, 31, 0, Mode32, System | Undecoded},
		{"MSCRATCH", RV32_MSCRATCH, RV32_MSCRATCH, 31, 0, Mode32, System | Undecoded},
		{"MEPC", RV32_MEPC, RV32_MEPC, 31, 0, Mode32, System | Undecoded},
		{"MCAUSE", RV32_MCAUSE, RV32_MCAUSE, 31, 0, Mode32, System | Undecoded},
		{"MTVAL", RV32_MTVAL, RV32_MTVAL, 31, 0, Mode32, System | Undecoded},
		{"MIP", RV32_MIP, RV32_MIP, 31, 0, Mode32, System | Undecoded},
		{"MHARTID", RV32_MHARTID, RV32_MHARTID, 31, 0, Mode32, System | Undecoded},
		{"SSTATUS", RV32_SSTATUS, RV32_SSTATUS, 31, 0, Mode32, System | Undecoded},
		{"SIE", RV32_SIE, RV32_SIE, 31, 0, Mode32, System | Undecoded},
		{"STVEC", RV32_STVEC, RV32_STVEC, 31, 0, Mode32, System | Undecoded},
		{"SSCRATCH", RV32_SSCRATCH, RV32_SSCRATCH, 31, 0, Mode32, System | Undecoded},
		{"SEPC", RV32_SEPC, RV32_SEPC, 31, 0, Mode32, System | Undecoded},
		{"SCAUSE", RV32_SCAUSE, RV32_SCAUSE, 31, 0, Mode32, System | Undecoded},
		{"STVAL", RV32_STVAL, RV32_STVAL, 31, 0, Mode32, System | Undecoded},
		{"SIP", RV32_SIP, RV32_SIP, 31, 0, Mode32, System | Undecoded},
		{"SATP", RV32_SATP, RV32_SATP, 31, 0, Mode32, System | Undecoded},
	},
}

