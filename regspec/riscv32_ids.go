// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noriscv

package regspec

// Identifiers of the RV32 domain.
const (
	_ ID = iota

	// Integer registers.
	RV32_X0
	RV32_X1
	RV32_X2
	RV32_X3
	RV32_X4
	RV32_X5
	RV32_X6
	RV32_X7
	RV32_X8
	RV32_X9
	RV32_X10
	RV32_X11
	RV32_X12
	RV32_X13
	RV32_X14
	RV32_X15
	RV32_X16
	RV32_X17
	RV32_X18
	RV32_X19
	RV32_X20
	RV32_X21
	RV32_X22
	RV32_X23
	RV32_X24
	RV32_X25
	RV32_X26
	RV32_X27
	RV32_X28
	RV32_X29
	RV32_X30
	RV32_X31
	RV32_PC

	// Floating point registers.
	RV32_F0
	RV32_F1
	RV32_F2
	RV32_F3
	RV32_F4
	RV32_F5
	RV32_F6
	RV32_F7
	RV32_F8
	RV32_F9
	RV32_F10
	RV32_F11
	RV32_F12
	RV32_F13
	RV32_F14
	RV32_F15
	RV32_F16
	RV32_F17
	RV32_F18
	RV32_F19
	RV32_F20
	RV32_F21
	RV32_F22
	RV32_F23
	RV32_F24
	RV32_F25
	RV32_F26
	RV32_F27
	RV32_F28
	RV32_F29
	RV32_F30
	RV32_F31

	// Control and status registers.
	RV32_FFLAGS
	RV32_FRM
	RV32_FCSR
	RV32_CYCLE
	RV32_TIME
	RV32_INSTRET
	RV32_CYCLEH
	RV32_TIMEH
	RV32_INSTRETH
	RV32_MSTATUS
	RV32_MISA
	RV32_MIE
	RV32_MTVEC
	RV32_MSCRATCH
	RV32_MEPC
	RV32_MCAUSE
	RV32_MTVAL
	RV32_MIP
	RV32_MHARTID
	RV32_SSTATUS
	RV32_SIE
	RV32_STVEC
	RV32_SSCRATCH
	RV32_SEPC
	RV32_SCAUSE
	RV32_STVAL
	RV32_SIP
	RV32_SATP
)
