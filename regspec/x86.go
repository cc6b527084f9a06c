// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regspec

import "github.com/aclements/go-regcat/arch"

const (
	x86Both = Mode32 | Mode64
	x86Long = Mode64
)

var x86Table = &Table{
	Family: arch.FamilyX86,
	Entries: []Entry{
		// 64-bit general purpose registers.
		{"RAX", X86_RAX, X86_RAX, 63, 0, x86Long, 0},
		{"RBX", X86_RBX, X86_RBX, 63, 0, x86Long, 0},
		{"RCX", X86_RCX, X86_RCX, 63, 0, x86Long, 0},
		{"RDX", X86_RDX, X86_RDX, 63, 0, x86Long, 0},
		{"RDI", X86_RDI, X86_RDI, 63, 0, x86Long, 0},
		{"RSI", X86_RSI, X86_RSI, 63, 0, x86Long, 0},
		{"RBP", X86_RBP, X86_RBP, 63, 0, x86Long, 0},
		{"RSP", X86_RSP, X86_RSP, 63, 0, x86Long, 0},
		{"RIP", X86_RIP, X86_RIP, 63, 0, x86Long, 0},
		{"EFLAGS", X86_EFLAGS, X86_EFLAGS, 63, 0, x86Both, Undecoded},
		{"R8", X86_R8, X86_R8, 63, 0, x86Long, 0},
		{"R9", X86_R9, X86_R9, 63, 0, x86Long, 0},
		{"R10", X86_R10, X86_R10, 63, 0, x86Long, 0},
		{"R11", X86_R11, X86_R11, 63, 0, x86Long, 0},
		{"R12", X86_R12, X86_R12, 63, 0, x86Long, 0},
		{"R13", X86_R13, X86_R13, 63, 0, x86Long, 0},
		{"R14", X86_R14, X86_R14, 63, 0, x86Long, 0},
		{"R15", X86_R15, X86_R15, 63, 0, x86Long, 0},

		// Low parts of R8-R15.
		{"R8D", X86_R8D, X86_R8, 31, 0, x86Long, 0},
		{"R9D", X86_R9D, X86_R9, 31, 0, x86Long, 0},
		{"R10D", X86_R10D, X86_R10, 31, 0, x86Long, 0},
		{"R11D", X86_R11D, X86_R11, 31, 0, x86Long, 0},
		{"R12D", X86_R12D, X86_R12, 31, 0, x86Long, 0},
		{"R13D", X86_R13D, X86_R13, 31, 0, x86Long, 0},
		{"R14D", X86_R14D, X86_R14, 31, 0, x86Long, 0},
		{"R15D", X86_R15D, X86_R15, 31, 0, x86Long, 0},
		{"R8W", X86_R8W, X86_R8, 15, 0, x86Long, 0},
		{"R9W", X86_R9W, X86_R9, 15, 0, x86Long, 0},
		{"R10W", X86_R10W, X86_R10, 15, 0, x86Long, 0},
		{"R11W", X86_R11W, X86_R11, 15, 0, x86Long, 0},
		{"R12W", X86_R12W, X86_R12, 15, 0, x86Long, 0},
		{"R13W", X86_R13W, X86_R13, 15, 0, x86Long, 0},
		{"R14W", X86_R14W, X86_R14, 15, 0, x86Long, 0},
		{"R15W", X86_R15W, X86_R15, 15, 0, x86Long, 0},
		{"R8B", X86_R8B, X86_R8, 7, 0, x86Long, 0},
		{"R9B", X86_R9B, X86_R9, 7, 0, x86Long, 0},
		{"R10B", X86_R10B, X86_R10, 7, 0, x86Long, 0},
		{"R11B", X86_R11B, X86_R11, 7, 0, x86Long, 0},
		{"R12B", X86_R12B, X86_R12, 7, 0, x86Long, 0},
		{"R13B", X86_R13B, X86_R13, 7, 0, x86Long, 0},
		{"R14B", X86_R14B, X86_R14, 7, 0, x86Long, 0},
		{"R15B", X86_R15B, X86_R15, 7, 0, x86Long, 0},

		// Legacy 32, 16 and 8-bit views.
		{"EAX", X86_EAX, X86_RAX, 31, 0, x86Both, 0},
		{"EBX", X86_EBX, X86_RBX, 31, 0, x86Both, 0},
		{"ECX", X86_ECX, X86_RCX, 31, 0, x86Both, 0},
		{"EDX", X86_EDX, X86_RDX, 31, 0, x86Both, 0},
		{"EDI", X86_EDI, X86_RDI, 31, 0, x86Both, 0},
		{"ESI", X86_ESI, X86_RSI, 31, 0, x86Both, 0},
		{"EBP", X86_EBP, X86_RBP, 31, 0, x86Both, 0},
		{"ESP", X86_ESP, X86_RSP, 31, 0, x86Both, 0},
		{"EIP", X86_EIP, X86_RIP, 31, 0, x86Both, 0},
		{"AX", X86_AX, X86_RAX, 15, 0, x86Both, 0},
		{"BX", X86_BX, X86_RBX, 15, 0, x86Both, 0},
		{"CX", X86_CX, X86_RCX, 15, 0, x86Both, 0},
		{"DX", X86_DX, X86_RDX, 15, 0, x86Both, 0},
		{"DI", X86_DI, X86_RDI, 15, 0, x86Both, 0},
		{"SI", X86_SI, X86_RSI, 15, 0, x86Both, 0},
		{"BP", X86_BP, X86_RBP, 15, 0, x86Both, 0},
		{"SP", X86_SP, X86_RSP, 15, 0, x86Both, 0},
		{"IP", X86_IP, X86_RIP, 15, 0, x86Both, 0},
		{"AH", X86_AH, X86_RAX, 15, 8, x86Both, 0},
		{"BH", X86_BH, X86_RBX, 15, 8, x86Both, 0},
		{"CH", X86_CH, X86_RCX, 15, 8, x86Both, 0},
		{"DH", X86_DH, X86_RDX, 15, 8, x86Both, 0},
		{"AL", X86_AL, X86_RAX, 7, 0, x86Both, 0},
		{"BL", X86_BL, X86_RBX, 7, 0, x86Both, 0},
		{"CL", X86_CL, X86_RCX, 7, 0, x86Both, 0},
		{"DL", X86_DL, X86_RDX, 7, 0, x86Both, 0},
		{"DIL", X86_DIL, X86_RDI, 7, 0, x86Long, 0},
		{"SIL", X86_SIL, X86_RSI, 7, 0, x86Long, 0},
		{"BPL", X86_BPL, X86_RBP, 7, 0, x86Long, 0},
		{"SPL", X86_SPL, X86_RSP, 7, 0, x86Long, 0},

		// x87 and MMX.
		{"ST0", X86_ST0, X86_ST0, 79, 0, x86Both, 0},
		{"ST1", X86_ST1, X86_ST1, 79, 0, x86Both, 0},
		{"ST2", X86_ST2, X86_ST2, 79, 0, x86Both, 0},
		{"ST3", X86_ST3, X86_ST3, 79, 0, x86Both, 0},
		{"ST4", X86_ST4, X86_ST4, 79, 0, x86Both, 0},
		{"ST5", X86_ST5, X86_ST5, 79, 0, x86Both, 0},
		{"ST6", X86_ST6, X86_ST6, 79, 0, x86Both, 0},
		{"ST7", X86_ST7, X86_ST7, 79, 0, x86Both, 0},
		{"MM0", X86_MM0, X86_ST0, 63, 0, x86Both, 0},
		{"MM1", X86_MM1, X86_ST1, 63, 0, x86Both, 0},
		{"MM2", X86_MM2, X86_ST2, 63, 0, x86Both, 0},
		{"MM3", X86_MM3, X86_ST3, 63, 0, x86Both, 0},
		{"MM4", X86_MM4, X86_ST4, 63, 0, x86Both, 0},
		{"MM5", X86_MM5, X86_ST5, 63, 0, x86Both, 0},
		{"MM6", X86_MM6, X86_ST6, 63, 0, x86Both, 0},
		{"MM7", X86_MM7, X86_ST7, 63, 0, x86Both, 0},
		{"FIP", X86_FIP, X86_FIP, 63, 0, x86Both, Undecoded},
		{"FDP", X86_FDP, X86_FDP, 63, 0, x86Both, Undecoded},
		{"FCW", X86_FCW, X86_FCW, 15, 0, x86Both, Undecoded},
		{"FSW", X86_FSW, X86_FSW, 15, 0, x86Both, Undecoded},
		{"FOP", X86_FOP, X86_FOP, 15, 0, x86Both, Undecoded},
		{"FTW", X86_FTW, X86_FTW, 15, 0, x86Both, Undecoded},

		// SSE, AVX and AVX-512.
		{"ZMM0", X86_ZMM0, X86_ZMM0, 511, 0, x86Both, Undecoded},
		{"ZMM1", X86_ZMM1, X86_ZMM1, 511, 0, x86Both, Undecoded},
		{"ZMM2", X86_ZMM2, X86_ZMM2, 511, 0, x86Both, Undecoded},
		{"ZMM3", X86_ZMM3, X86_ZMM3, 511, 0, x86Both, Undecoded},
		{"ZMM4", X86_ZMM4, X86_ZMM4, 511, 0, x86Both, Undecoded},
		{"ZMM5", X86_ZMM5, X86_ZMM5, 511, 0, x86Both, Undecoded},
		{"ZMM6", X86_ZMM6, X86_ZMM6, 511, 0, x86Both, Undecoded},
		{"ZMM7", X86_ZMM7, X86_ZMM7, 511, 0, x86Both, Undecoded},
		{"ZMM8", X86_ZMM8, X86_ZMM8, 511, 0, x86Long, Undecoded},
		{"ZMM9", X86_ZMM9, X86_ZMM9, 511, 0, x86Long, Undecoded},
		{"ZMM10", X86_ZMM10, X86_ZMM10, 511, 0, x86Long, Undecoded},
		{"ZMM11", X86_ZMM11, X86_ZMM11, 511, 0, x86Long, Undecoded},
		{"ZMM12", X86_ZMM12, X86_ZMM12, 511, 0, x86Long, Undecoded},
		{"ZMM13", X86_ZMM13, X86_ZMM13, 511, 0, x86Long, Undecoded},
		{"ZMM14", X86_ZMM14, X86_ZMM14, 511, 0, x86Long, Undecoded},
		{"ZMM15", X86_ZMM15, X86_ZMM15, 511, 0, x86Long, Undecoded},
		{"ZMM16", X86_ZMM16, X86_ZMM16, 511, 0, x86Long, Undecoded},
		{"ZMM17", X86_ZMM17, X86_ZMM17, 511, 0, x86Long, Undecoded},
		{"ZMM18", X86_ZMM18, X86_ZMM18, 511, 0, x86Long, Undecoded},
		{"ZMM19", X86_ZMM19, X86_ZMM19, 511, 0, x86Long, Undecoded},
		{"ZMM20", X86_ZMM20, X86_ZMM20, 511, 0, x86Long, Undecoded},
		{"ZMM21", X86_ZMM21, X86_ZMM21, 511, 0, x86Long, Undecoded},
		{"ZMM22", X86_ZMM22, X86_ZMM22, 511, 0, x86Long, Undecoded},
		{"ZMM23", X86_ZMM23, X86_ZMM23, 511, 0, x86Long, Undecoded},
		{"ZMM24", X86_ZMM24, X86_ZMM24, 511, 0, x86Long, Undecoded},
		{"ZMM25", X86_ZMM25, X86_ZMM25, 511, 0, x86Long, Undecoded},
		{"ZMM26", X86_ZMM26, X86_ZMM26, 511, 0, x86Long, Undecoded},
		{"ZMM27", X86_ZMM27, X86_ZMM27, 511, 0, x86Long, Undecoded},
		{"ZMM28", X86_ZMM28, X86_ZMM28, 511, 0, x86Long, Undecoded},
		{"ZMM29", X86_ZMM29, X86_ZMM29, 511, 0, x86Long, Undecoded},
		{"ZMM30", X86_ZMM30, X86_ZMM30, 511, 0, x86Long, Undecoded},
		{"ZMM31", X86_ZMM31, X86_ZMM31, 511, 0, x86Long, Undecoded},
		{"YMM0", X86_YMM0, X86_ZMM0, 255, 0, x86Both, Undecoded},
		{"YMM1", X86_YMM1, X86_ZMM1, 255, 0, x86Both, Undecoded},
		{"YMM2", X86_YMM2, X86_ZMM2, 255, 0, x86Both, Undecoded},
		{"YMM3", X86_YMM3, X86_ZMM3, 255, 0, x86Both, Undecoded},
		{"YMM4", X86_YMM4, X86_ZMM4, 255, 0, x86Both, Undecoded},
		{"YMM5", X86_YMM5, X86_ZMM5, 255, 0, x86Both, Undecoded},
		{"YMM6", X86_YMM6, X86_ZMM6, 255, 0, x86Both, Undecoded},
		{"YMM7", X86_YMM7, X86_ZMM7, 255, 0, x86Both, Undecoded},
		{"YMM8", X86_YMM8, X86_ZMM8, 255, 0, x86Long, Undecoded},
		{"YMM9", X86_YMM9, X86_ZMM9, 255, 0, x86Long, Undecoded},
		{"YMM10", X86_YMM10, X86_ZMM10, 255, 0, x86Long, Undecoded},
		{"YMM11", X86_YMM11, X86_ZMM11, 255, 0, x86Long, Undecoded},
		{"YMM12", X86_YMM12, X86_ZMM12, 255, 0, x86Long, Undecoded},
		{"YMM13", X86_YMM13, X86_ZMM13, 255, 0, x86Long, Undecoded},
		{"YMM14", X86_YMM14, X86_ZMM14, 255, 0, x86Long, Undecoded},
		{"YMM15", X86_YMM15, X86_ZMM15, 255, 0, x86Long, Undecoded},
		{"YMM16", X86_YMM16, X86_ZMM16, 255, 0, x86Long, Undecoded},
		{"YMM17", X86_YMM17, X86_ZMM17, 255, 0, x86Long, Undecoded},
		{"YMM18", X86_YMM18, X86_ZMM18, 255, 0, x86Long, Undecoded},
		{"YMM19", X86_YMM19, X86_ZMM19, 255, 0, x86Long, Undecoded},
		{"YMM20", X86_YMM20, X86_ZMM20, 255, 0, x86Long, Undecoded},
		{"YMM21", X86_YMM21, X86_ZMM21, 255, 0, x86Long, Undecoded},
		{"YMM22", X86_YMM22, X86_ZMM22, 255, 0, x86Long, Undecoded},
		{"YMM23", X86_YMM23, X86_ZMM23, 255, 0, x86Long, Undecoded},
		{"YMM24", X86_YMM24, X86_ZMM24, 255, 0, x86Long, Undecoded},
		{"YMM25", X86_YMM25, X86_ZMM25, 255, 0, x86Long, Undecoded},
		{"YMM26", X86_YMM26, X86_ZMM26, 255, 0, x86Long, Undecoded},
		{"YMM27", X86_YMM27, X86_ZMM27, 255, 0, x86Long, Undecoded},
		{"YMM28", X86_YMM28, X86_ZMM28, 255, 0, x86Long, Undecoded},
		{"YMM29", X86_YMM29, X86_ZMM29, 255, 0, x86Long, Undecoded},
		{"YMM30", X86_YMM30, X86_ZMM30, 255, 0, x86Long, Undecoded},
		{"YMM31", X86_YMM31, X86_ZMM31, 255, 0, x86Long, Undecoded},
		{"XMM0", X86_XMM0, X86_ZMM0, 127, 0, x86Both, 0},
		{"XMM1", X86_XMM1, X86_ZMM1, 127, 0, x86Both, 0},
		{"XMM2", X86_XMM2, X86_ZMM2, 127, 0, x86Both, 0},
		{"XMM3", X86_XMM3, X86_ZMM3, 127, 0, x86Both, 0},
		{"XMM4", X86_XMM4, X86_ZMM4, 127, 0, x86Both, 0},
		{"XMM5", X86_XMM5, X86_ZMM5, 127, 0, x86Both, 0},
		{"XMM6", X86_XMM6, X86_ZMM6, 127, 0, x86Both, 0},
		{"XMM7", X86_XMM7, X86_ZMM7, 127, 0, x86Both, 0},
		{"XMM8", X86_XMM8, X86_ZMM8, 127, 0, x86Long, 0},
		{"XMM9", X86_XMM9, X86_ZMM9, 127, 0, x86Long, 0},
		{"XMM10", X86_XMM10, X86_ZMM10, 127, 0, x86Long, 0},
		{"XMM11", X86_XMM11, X86_ZMM11, 127, 0, x86Long, 0},
		{"XMM12", X86_XMM12, X86_ZMM12, 127, 0, x86Long, 0},
		{"XMM13", X86_XMM13, X86_ZMM13, 127, 0, x86Long, 0},
		{"XMM14", X86_XMM14, X86_ZMM14, 127, 0, x86Long, 0},
		{"XMM15", X86_XMM15, X86_ZMM15, 127, 0, x86Long, 0},
		{"XMM16", X86_XMM16, X86_ZMM16, 127, 0, x86Long, Undecoded},
		{"XMM17", X86_XMM17, X86_ZMM17, 127, 0, x86Long, Undecoded},
		{"XMM18", X86_XMM18, X86_ZMM18, 127, 0, x86Long, Undecoded},
		{"XMM19", X86_XMM19, X86_ZMM19, 127, 0, x86Long, Undecoded},
		{"XMM20", X86_XMM20, X86_ZMM20, 127, 0, x86Long, Undecoded},
		{"XMM21", X86_XMM21, X86_ZMM21, 127, 0, x86Long, Undecoded},
		{"XMM22", X86_XMM22, X86_ZMM22, 127, 0, x86Long, Undecoded},
		{"XMM23", X86_XMM23, X86_ZMM23, 127, 0, x86Long, Undecoded},
		{"XMM24", X86_XMM24, X86_ZMM24, 127, 0, x86Long, Undecoded},
		{"XMM25", X86_XMM25, X86_ZMM25, 127, 0, x86Long, Undecoded},
		{"XMM26", X86_XMM26, X86_ZMM26, 127, 0, x86Long, Undecoded},
		{"XMM27", X86_XMM27, X86_ZMM27, 127, 0, x86Long, Undecoded},
		{"XMM28", X86_XMM28, X86_ZMM28, 127, 0, x86Long, Undecoded},
		{"XMM29", X86_XMM29, X86_ZMM29, 127, 0, x86Long, Undecoded},
		{"XMM30", X86_XMM30, X86_ZMM30, 127, 0, x86Long, Undecoded},
		{"XMM31", X86_XMM31, X86_ZMM31, 127, 0, x86Long, Undecoded},
		{"K0", X86_K0, X86_K0, 63, 0, x86Both, Undecoded},
		{"K1", X86_K1, X86_K1, 63, 0, x86Both, Undecoded},
		{"K2", X86_K2, X86_K2, 63, 0, x86Both, Undecoded},
		{"K3", X86_K3, X86_K3, 63, 0, x86Both, Undecoded},
		{"K4", X86_K4, X86_K4, 63, 0, x86Both, Undecoded},
		{"K5", X86_K5, X86_K5, 63, 0, x86Both, Undecoded},
		{"K6", X86_K6, X86_K6, 63, 0, x86Both, Undecoded},
		{"K7", X86_K7, X86_K7, 63, 0, x86Both, Undecoded},
		{"MXCSR", X86_MXCSR, X86_MXCSR, 31, 0, x86Both, Undecoded},

		// Segment selectors.
		{"CS", X86_CS, X86_CS, 15, 0, x86Both, 0},
		{"DS", X86_DS, X86_DS, 15, 0, x86Both, 0},
		{"ES", X86_ES, X86_ES, 15, 0, x86Both, 0},
		{"FS", X86_FS, X86_FS, 15, 0, x86Both, 0},
		{"GS", X86_GS, X86_GS, 15, 0, x86Both, 0},
		{"SS", X86_SS, X86_SS, 15, 0, x86Both, 0},

		// Control, debug and model-specific registers.
		{"CR0", X86_CR0, X86_CR0, 63, 0, x86Both, System},
		{"CR1", X86_CR1, X86_CR1, 63, 0, x86Both, System},
		{"CR2", X86_CR2, X86_CR2, 63, 0, x86Both, System},
		{"CR3", X86_CR3, X86_CR3, 63, 0, x86Both, System},
		{"CR4", X86_CR4, X86_CR4, 63, 0, x86Both, System},
		{"CR5", X86_CR5, X86_CR5, 63, 0, x86Both, System},
		{"CR6", X86_CR6, X86_CR6, 63, 0, x86Both, System},
		{"CR7", X86_CR7, X86_CR7, 63, 0, x86Both, System},
		{"CR8", X86_CR8, X86_CR8, 63, 0, x86Both, System},
		{"CR9", X86_CR9, X86_CR9, 63, 0, x86Both, System},
		{"CR10", X86_CR10, X86_CR10, 63, 0, x86Both, System},
		{"CR11", X86_CR11, X86_CR11, 63, 0, x86Both, System},
		{"CR12", X86_CR12, X86_CR12, 63, 0, x86Both, System},
		{"CR13", X86_CR13, X86_CR13, 63, 0, x86Both, System},
		{"CR14", X86_CR14, X86_CR14, 63, 0, x86Both, System},
		{"CR15", X86_CR15, X86_CR15, 63, 0, x86Both, System},
		{"DR0", X86_DR0, X86_DR0, 63, 0, x86Both, System},
		{"DR1", X86_DR1, X86_DR1, 63, 0, x86Both, System},
		{"DR2", X86_DR2, X86_DR2, 63, 0, x86Both, System},
		{"DR3", X86_DR3, X86_DR3, 63, 0, x86Both, System},
		{"DR4", X86_DR4, X86_DR4, 63, 0, x86Both, System},
		{"DR5", X86_DR5, X86_DR5, 63, 0, x86Both, System},
		{"DR6", X86_DR6, X86_DR6, 63, 0, x86Both, System},
		{"DR7", X86_DR7, X86_DR7, 63, 0, x86Both, System},
		{"EFER", X86_EFER, X86_EFER, 63, 0, x86Both, System | Undecoded},
		{"TSC", X86_TSC, X86_TSC, 63, 0, x86Both, System | Undecoded},

		// EFLAGS bits.
		{"CF", X86_CF, X86_EFLAGS, 0, 0, x86Both, Bit | Undecoded},
		{"PF", X86_PF, X86_EFLAGS, 2, 2, x86Both, Bit | Undecoded},
		{"AF", X86_AF, X86_EFLAGS, 4, 4, x86Both, Bit | Undecoded},
		{"ZF", X86_ZF, X86_EFLAGS, 6, 6, x86Both, Bit | Undecoded},
		{"SF", X86_SF, X86_EFLAGS, 7, 7, x86Both, Bit | Undecoded},
		{"TF", X86_TF, X86_EFLAGS, 8, 8, x86Both, Bit | Undecoded},
		{"IF", X86_IF, X86_EFLAGS, 9, 9, x86Both, Bit | Undecoded},
		{"DF", X86_DF, X86_EFLAGS, 10, 10, x86Both, Bit | Undecoded},
		{"OF", X86_OF, X86_EFLAGS, 11, 11, x86Both, Bit | Undecoded},
		{"NT", X86_NT, X86_EFLAGS, 14, 14, x86Both, Bit | Undecoded},
		{"RF", X86_RF, X86_EFLAGS, 16, 16, x86Both, Bit | Undecoded},
		{"VM", X86_VM, X86_EFLAGS, 17, 17, x86Both, Bit | Undecoded},
		{"AC", X86_AC, X86_EFLAGS, 18, 18, x86Both, Bit | Undecoded},
		{"VIF", X86_VIF, X86_EFLAGS, 19, 19, x86Both, Bit | Undecoded},
		{"VIP", X86_VIP, X86_EFLAGS, 20, 20, x86Both, Bit | Undecoded},
		{"ID", X86_ID, X86_EFLAGS, 21, 21, x86Both, Bit | Undecoded},

		// MXCSR bits.
		{"IE", X86_IE, X86_MXCSR, 0, 0, x86Both, Bit | Undecoded},
		{"DE", X86_DE, X86_MXCSR, 1, 1, x86Both, Bit | Undecoded},
		{"ZE", X86_ZE, X86_MXCSR, 2, 2, x86Both, Bit | Undecoded},
		{"OE", X86_OE, X86_MXCSR, 3, 3, x86Both, Bit | Undecoded},
		{"UE", X86_UE, X86_MXCSR, 4, 4, x86Both, Bit | Undecoded},
		{"PE", X86_PE, X86_MXCSR, 5, 5, x86Both, Bit | Undecoded},
		{"DAZ", X86_DAZ, X86_MXCSR, 6, 6, x86Both, Bit | Undecoded},
		{"IM", X86_IM, X86_MXCSR, 7, 7, x86Both, Bit | Undecoded},
		{"DM", X86_DM, X86_MXCSR, 8, 8, x86Both, Bit | Undecoded},
		{"ZM", X86_ZM, X86_MXCSR, 9, 9, x86Both, Bit | Undecoded},
		{"OM", X86_OM, X86_MXCSR, 10, 10, x86Both, Bit | Undecoded},
		{"UM", X86_UM, X86_MXCSR, 11, 11, x86Both, Bit | Undecoded},
		{"PM", X86_PM, X86_MXCSR, 12, 12, x86Both, Bit | Undecoded},
		{"RL", X86_RL, X86_MXCSR, 13, 13, x86Both, Bit | Undecoded},
		{"RH", X86_RH, X86_MXCSR, 14, 14, x86Both, Bit | Undecoded},
		{"FZ", X86_FZ, X86_MXCSR, 15, 15, x86Both, Bit | Undecoded},

		// Shadow stack pointer. Listed to reserve its identifier;
		// not available in any mode yet.
		{"SSP", X86_SSP, X86_SSP, 63, 0, 0, System | Undecoded},
	},
}

func init() {
	Register(&Family{
		Name: arch.FamilyX86,
		Variants: []Variant{
			{arch.X86, x86Table, Mode32},
			{arch.X86_64, x86Table, Mode32 | Mode64},
		},
	})
}
