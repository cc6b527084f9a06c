// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regspec

import "github.com/aclements/go-regcat/arch"

var arm32Table = &Table{
	Family: arch.FamilyARM32,
	Entries: []Entry{
		// Core registers.
		{"R0", ARM32_R0, ARM32_R0, 31, 0, Mode32, 0},
		{"R1", ARM32_R1, ARM32_R1, 31, 0, Mode32, 0},
		{"R2", ARM32_R2, ARM32_R2, 31, 0, Mode32, 0},
		{"R3", ARM32_R3, ARM32_R3, 31, 0, Mode32, 0},
		{"R4", ARM32_R4, ARM32_R4, 31, 0, Mode32, 0},
		{"R5", ARM32_R5, ARM32_R5, 31, 0, Mode32, 0},
		{"R6", ARM32_R6, ARM32_R6, 31, 0, Mode32, 0},
		{"R7", ARM32_R7, ARM32_R7, 31, 0, Mode32, 0},
		{"R8", ARM32_R8, ARM32_R8, 31, 0, Mode32, 0},
		{"R9", ARM32_R9, ARM32_R9, 31, 0, Mode32, 0},
		{"R10", ARM32_R10, ARM32_R10, 31, 0, Mode32, 0},
		{"R11", ARM32_R11, ARM32_R11, 31, 0, Mode32, 0},
		{"R12", ARM32_R12, ARM32_R12, 31, 0, Mode32, 0},
		{"SP", ARM32_SP, ARM32_SP, 31, 0, Mode32, 0},
		{"LR", ARM32_LR, ARM32_LR, 31, 0, Mode32, 0},
		{"PC", ARM32_PC, ARM32_PC, 31, 0, Mode32, 0},
		{"APSR", ARM32_APSR, ARM32_APSR, 31, 0, Mode32, 0},

		// APSR flags.
		{"N", ARM32_N, ARM32_APSR, 31, 31, Mode32, Bit | Undecoded},
		{"Z", ARM32_Z, ARM32_APSR, 30, 30, Mode32, Bit | Undecoded},
		{"C", ARM32_C, ARM32_APSR, 29, 29, Mode32, Bit | Undecoded},
		{"V", ARM32_V, ARM32_APSR, 28, 28, Mode32, Bit | Undecoded},
		{"Q", ARM32_Q, ARM32_APSR, 27, 27, Mode32, Bit | Undecoded},

		// VFP registers.
		{"D0", ARM32_D0, ARM32_D0, 63, 0, Mode32, 0},
		{"D1", ARM32_D1, ARM32_D1, 63, 0, Mode32, 0},
		{"D2", ARM32_D2, ARM32_D2, 63, 0, Mode32, 0},
		{"D3", ARM32_D3, ARM32_D3, 63, 0, Mode32, 0},
		{"D4", ARM32_D4, ARM32_D4, 63, 0, Mode32, 0},
		{"D5", ARM32_D5, ARM32_D5, 63, 0, Mode32, 0},
		{"D6", ARM32_D6, ARM32_D6, 63, 0, Mode32, 0},
		{"D7", ARM32_D7, ARM32_D7, 63, 0, Mode32, 0},
		{"D8", ARM32_D8, ARM32_D8, 63, 0, Mode32, 0},
		{"D9", ARM32_D9, ARM32_D9, 63, 0, Mode32, 0},
		{"D10", ARM32_D10, ARM32_D10, 63, 0, Mode32, 0},
		{"D11", ARM32_D11, ARM32_D11, 63, 0, Mode32, 0},
		{"D12", ARM32_D12, ARM32_D12, 63, 0, Mode32, 0},
		{"D13", ARM32_D13, ARM32_D13, 63, 0, Mode32, 0},
		{"D14", ARM32_D14, ARM32_D14, 63, 0, Mode32, 0},
		{"D15", ARM32_D15, ARM32_D15, 63, 0, Mode32, 0},
		{"D16", ARM32_D16, ARM32_D16, 63, 0, Mode32, 0},
		{"D17", ARM32_D17, ARM32_D17, 63, 0, Mode32, 0},
		{"D18", ARM32_D18, ARM32_D18, 63, 0, Mode32, 0},
		{"D19", ARM32_D19, ARM32_D19, 63, 0, Mode32, 0},
		{"D20", ARM32_D20, ARM32_D20, 63, 0, Mode32, 0},
		{"D21", ARM32_D21, ARM32_D21, 63, 0, Mode32, 0},
		{"D22", ARM32_D22, ARM32_D22, 63, 0, Mode32, 0},
		{"D23", ARM32_D23, ARM32_D23, 63, 0, Mode32, 0},
		{"D24", ARM32_D24, ARM32_D24, 63, 0, Mode32, 0},
		{"D25", ARM32_D25, ARM32_D25, 63, 0, Mode32, 0},
		{"D26", ARM32_D26, ARM32_D26, 63, 0, Mode32, 0},
		{"D27", ARM32_D27, ARM32_D27, 63, 0, Mode32, 0},
		{"D28", ARM32_D28, ARM32_D28, 63, 0, Mode32, 0},
		{"D29", ARM32_D29, ARM32_D29, 63, 0, Mode32, 0},
		{"D30", ARM32_D30, ARM32_D30, 63, 0, Mode32, 0},
		{"D31", ARM32_D31, ARM32_D31, 63, 0, Mode32, 0},
		{"S0", ARM32_S0, ARM32_D0, 31, 0, Mode32, 0},
		{"S1", ARM32_S1, ARM32_D0, 63, 32, Mode32, 0},
		{"S2", ARM32_S2, ARM32_D1, 31, 0, Mode32, 0},
		{"S3", ARM32_S3, ARM32_D1, 63, 32, Mode32, 0},
		{"S4", ARM32_S4, ARM32_D2, 31, 0, Mode32, 0},
		{"S5", ARM32_S5, ARM32_D2, 63, 32, Mode32, 0},
		{"S6", ARM32_S6, ARM32_D3, 31, 0, Mode32, 0},
		{"S7", ARM32_S7, ARM32_D3, 63, 32, Mode32, 0},
		{"S8", ARM32_S8, ARM32_D4, 31, 0, Mode32, 0},
		{"S9", ARM32_S9, ARM32_D4, 63, 32, Mode32, 0},
		{"S10", ARM32_S10, ARM32_D5, 31, 0, Mode32, 0},
		{"S11", ARM32_S11, ARM32_D5, 63, 32, Mode32, 0},
		{"S12", ARM32_S12, ARM32_D6, 31, 0, Mode32, 0},
		{"S13", ARM32_S13, ARM32_D6, 63, 32, Mode32, 0},
		{"S14", ARM32_S14, ARM32_D7, 31, 0, Mode32, 0},
		{"S15", ARM32_S15, ARM32_D7, 63, 32, Mode32, 0},
		{"S16", ARM32_S16, ARM32_D8, 31, 0, Mode32, 0},
		{"S17", ARM32_S17, ARM32_D8, 63, 32, Mode32, 0},
		{"S18", ARM32_S18, ARM32_D9, 31, 0, Mode32, 0},
		{"S19", ARM32_S19, ARM32_D9, 63, 32, Mode32, 0},
		{"S20", ARM32_S20, ARM32_D10, 31, 0, Mode32, 0},
		{"S21", ARM32_S21, ARM32_D10, 63, 32, Mode32, 0},
		{"S22", ARM32_S22, ARM32_D11, 31, 0, Mode32, 0},
		{"S23", ARM32_S23, ARM32_D11, 63, 32, Mode32, 0},
		{"S24", ARM32_S24, ARM32_D12, 31, 0, Mode32, 0},
		{"S25", ARM32_S25, ARM32_D12, 63, 32, Mode32, 0},
		{"S26", ARM32_S26, ARM32_D13, 31, 0, Mode32, 0},
		{"S27", ARM32_S27, ARM32_D13, 63, 32, Mode32, 0},
		{"S28", ARM32_S28, ARM32_D14, 31, 0, Mode32, 0},
		{"S29", ARM32_S29, ARM32_D14, 63, 32, Mode32, 0},
		{"S30", ARM32_S30, ARM32_D15, 31, 0, Mode32, 0},
		{"S31", ARM32_S31, ARM32_D15, 63, 32, Mode32, 0},
		{"FPSCR", ARM32_FPSCR, ARM32_FPSCR, 31, 0, Mode32, 0},
	},
}

func init() {
	Register(&Family{
		Name:     arch.FamilyARM32,
		Variants: []Variant{{arch.ARM32, arm32Table, Mode32}},
	})
}
