// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regspec

// Identifiers of the ARM32 domain.
const (
	_ ID = iota

	// Core registers.
	ARM32_R0
	ARM32_R1
	ARM32_R2
	ARM32_R3
	ARM32_R4
	ARM32_R5
	ARM32_R6
	ARM32_R7
	ARM32_R8
	ARM32_R9
	ARM32_R10
	ARM32_R11
	ARM32_R12
	ARM32_SP
	ARM32_LR
	ARM32_PC
	ARM32_APSR

	// APSR flags.
	ARM32_N
	ARM32_Z
	ARM32_C
	ARM32_V
	ARM32_Q

	// VFP registers.
	ARM32_D0
	ARM32_D1
	ARM32_D2
	ARM32_D3
	ARM32_D4
	ARM32_D5
	ARM32_D6
	ARM32_D7
	ARM32_D8
	ARM32_D9
	ARM32_D10
	ARM32_D11
	ARM32_D12
	ARM32_D13
	ARM32_D14
	ARM32_D15
	ARM32_D16
	ARM32_D17
	ARM32_D18
	ARM32_D19
	ARM32_D20
	ARM32_D21
	ARM32_D22
	ARM32_D23
	ARM32_D24
	ARM32_D25
	ARM32_D26
	ARM32_D27
	ARM32_D28
	ARM32_D29
	ARM32_D30
	ARM32_D31
	ARM32_S0
	ARM32_S1
	ARM32_S2
	ARM32_S3
	ARM32_S4
	ARM32_S5
	ARM32_S6
	ARM32_S7
	ARM32_S8
	ARM32_S9
	ARM32_S10
	ARM32_S11
	ARM32_S12
	ARM32_S13
	ARM32_S14
	ARM32_S15
	ARM32_S16
	ARM32_S17
	ARM32_S18
	ARM32_S19
	ARM32_S20
	ARM32_S21
	ARM32_S22
	ARM32_S23
	ARM32_S24
	ARM32_S25
	ARM32_S26
	ARM32_S27
	ARM32_S28
	ARM32_S29
	ARM32_S30
	ARM32_S31
	ARM32_FPSCR
)
