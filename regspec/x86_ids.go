// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regspec

// Identifiers of the x86 domain, shared by X86 and X86_64.
const (
	_ ID = iota

	// 64-bit general purpose registers.
	X86_RAX
	X86_RBX
	X86_RCX
	X86_RDX
	X86_RDI
	X86_RSI
	X86_RBP
	X86_RSP
	X86_RIP
	X86_EFLAGS
	X86_R8
	X86_R9
	X86_R10
	X86_R11
	X86_R12
	X86_R13
	X86_R14
	X86_R15

	// Low parts of R8-R15.
	X86_R8D
	X86_R9D
	X86_R10D
	X86_R11D
	X86_R12D
	X86_R13D
	X86_R14D
	X86_R15D
	X86_R8W
	X86_R9W
	X86_R10W
	X86_R11W
	X86_R12W
	X86_R13W
	X86_R14W
	X86_R15W
	X86_R8B
	X86_R9B
	X86_R10B
	X86_R11B
	X86_R12B
	X86_R13B
	X86_R14B
	X86_R15B

	// Legacy 32, 16 and 8-bit views.
	X86_EAX
	X86_EBX
	X86_ECX
	X86_EDX
	X86_EDI
	X86_ESI
	X86_EBP
	X86_ESP
	X86_EIP
	X86_AX
	X86_BX
	X86_CX
	X86_DX
	X86_DI
	X86_SI
	X86_BP
	X86_SP
	X86_IP
	X86_AH
	X86_BH
	X86_CH
	X86_DH
	X86_AL
	X86_BL
	X86_CL
	X86_DL
	X86_DIL
	X86_SIL
	X86_BPL
	X86_SPL

	// x87 and MMX.
	X86_ST0
	X86_ST1
	X86_ST2
	X86_ST3
	X86_ST4
	X86_ST5
	X86_ST6
	X86_ST7
	X86_MM0
	X86_MM1
	X86_MM2
	X86_MM3
	X86_MM4
	X86_MM5
	X86_MM6
	X86_MM7
	X86_FIP
	X86_FDP
	X86_FCW
	X86_FSW
	X86_FOP
	X86_FTW

	// SSE, AVX and AVX-512.
	X86_ZMM0
	X86_ZMM1
	X86_ZMM2
	X86_ZMM3
	X86_ZMM4
	X86_ZMM5
	X86_ZMM6
	X86_ZMM7
	X86_ZMM8
	X86_ZMM9
	X86_ZMM10
	X86_ZMM11
	X86_ZMM12
	X86_ZMM13
	X86_ZMM14
	X86_ZMM15
	X86_ZMM16
	X86_ZMM17
	X86_ZMM18
	X86_ZMM19
	X86_ZMM20
	X86_ZMM21
	X86_ZMM22
	X86_ZMM23
	X86_ZMM24
	X86_ZMM25
	X86_ZMM26
	X86_ZMM27
	X86_ZMM28
	X86_ZMM29
	X86_ZMM30
	X86_ZMM31
	X86_YMM0
	X86_YMM1
	X86_YMM2
	X86_YMM3
	X86_YMM4
	X86_YMM5
	X86_YMM6
	X86_YMM7
	X86_YMM8
	X86_YMM9
	X86_YMM10
	X86_YMM11
	X86_YMM12
	X86_YMM13
	X86_YMM14
	X86_YMM15
	X86_YMM16
	X86_YMM17
	X86_YMM18
	X86_YMM19
	X86_YMM20
	X86_YMM21
	X86_YMM22
	X86_YMM23
	X86_YMM24
	X86_YMM25
	X86_YMM26
	X86_YMM27
	X86_YMM28
	X86_YMM29
	X86_YMM30
	X86_YMM31
	X86_XMM0
	X86_XMM1
	X86_XMM2
	X86_XMM3
	X86_XMM4
	X86_XMM5
	X86_XMM6
	X86_XMM7
	X86_XMM8
	X86_XMM9
	X86_XMM10
	X86_XMM11
	X86_XMM12
	X86_XMM13
	X86_XMM14
	X86_XMM15
	X86_XMM16
	X86_XMM17
	X86_XMM18
	X86_XMM19
	X86_XMM20
	X86_XMM21
	X86_XMM22
	X86_XMM23
	X86_XMM24
	X86_XMM25
	X86_XMM26
	X86_XMM27
	X86_XMM28
	X86_XMM29
	X86_XMM30
	X86_XMM31
	X86_K0
	X86_K1
	X86_K2
	X86_K3
	X86_K4
	X86_K5
	X86_K6
	X86_K7
	X86_MXCSR

	// Segment selectors.
	X86_CS
	X86_DS
	X86_ES
	X86_FS
	X86_GS
	X86_SS

	// Control, debug and model-specific registers.
	X86_CR0
	X86_CR1
	X86_CR2
	X86_CR3
	X86_CR4
	X86_CR5
	X86_CR6
	X86_CR7
	X86_CR8
	X86_CR9
	X86_CR10
	X86_CR11
	X86_CR12
	X86_CR13
	X86_CR14
	X86_CR15
	X86_DR0
	X86_DR1
	X86_DR2
	X86_DR3
	X86_DR4
	X86_DR5
	X86_DR6
	X86_DR7
	X86_EFER
	X86_TSC

	// EFLAGS bits.
	X86_CF
	X86_PF
	X86_AF
	X86_ZF
	X86_SF
	X86_TF
	X86_IF
	X86_DF
	X86_OF
	X86_NT
	X86_RF
	X86_VM
	X86_AC
	X86_VIF
	X86_VIP
	X86_ID

	// MXCSR bits.
	X86_IE
	X86_DE
	X86_ZE
	X86_OE
	X86_UE
	X86_PE
	X86_DAZ
	X86_IM
	X86_DM
	X86_ZM
	X86_OM
	X86_UM
	X86_PM
	X86_RL
	X86_RH
	X86_FZ

	// Shadow stack pointer. Listed to reserve its identifier;
	// not available in any mode yet.
	X86_SSP
)
