// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noriscv

package regspec

// Identifiers of the RV64 domain.
const (
	_ ID = iota

	// Integer registers.
	RV64_X0
	RV64_X1
	RV64_X2
	RV64_X3
	RV64_X4
	RV64_X5
	RV64_X6
	RV64_X7
	RV64_X8
	RV64_X9
	RV64_X10
	RV64_X11
	RV64_X12
	RV64_X13
	RV64_X14
	RV64_X15
	RV64_X16
	RV64_X17
	RV64_X18
	RV64_X19
	RV64_X20
	RV64_X21
	RV64_X22
	RV64_X23
	RV64_X24
	RV64_X25
	RV64_X26
	RV64_X27
	RV64_X28
	RV64_X29
	RV64_X30
	RV64_X31
	RV64_PC

	// Floating point registers.
	RV64_F0
	RV64_F1
	RV64_F2
	RV64_F3
	RV64_F4
	RV64_F5
	RV64_F6
	RV64_F7
	RV64_F8
	RV64_F9
	RV64_F10
	RV64_F11
	RV64_F12
	RV64_F13
	RV64_F14
	RV64_F15
	RV64_F16
	RV64_F17
	RV64_F18
	RV64_F19
	RV64_F20
	RV64_F21
	RV64_F22
	RV64_F23
	RV64_F24
	RV64_F25
	RV64_F26
	RV64_F27
	RV64_F28
	RV64_F29
	RV64_F30
	RV64_F31

	// Control and status registers.
	RV64_FFLAGS
	RV64_FRM
	RV64_FCSR
	RV64_CYCLE
	RV64_TIME
	RV64_INSTRET
	RV64_MSTATUS
	RV64_MISA
	RV64_MIE
	RV64_MTVEC
	RV64_MSCRATCH
	RV64_MEPC
	RV64_MCAUSE
	RV64_MTVAL
	RV64_MIP
	RV64_MHARTID
	RV64_SSTATUS
	RV64_SIE
	RV64_STVEC
	RV64_SSCRATCH
	RV64_SEPC
	RV64_SCAUSE
	RV64_STVAL
	RV64_SIP
	RV64_SATP
)
