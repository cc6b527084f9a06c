// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regspec

import "github.com/aclements/go-regcat/arch"

var aarch64Table = &Table{
	Family: arch.FamilyAArch64,
	Entries: []Entry{
		// General purpose registers.
		{"X0", AARCH64_X0, AARCH64_X0, 63, 0, Mode64, 0},
		{"X1", AARCH64_X1, AARCH64_X1, 63, 0, Mode64, 0},
		{"X2", AARCH64_X2, AARCH64_X2, 63, 0, Mode64, 0},
		{"X3", AARCH64_X3, AARCH64_X3, 63, 0, Mode64, 0},
		{"X4", AARCH64_X4, AARCH64_X4, 63, 0, Mode64, 0},
		{"X5", AARCH64_X5, AARCH64_X5, 63, 0, Mode64, 0},
		{"X6", AARCH64_X6, AARCH64_X6, 63, 0, Mode64, 0},
		{"X7", AARCH64_X7, AARCH64_X7, 63, 0, Mode64, 0},
		{"X8", AARCH64_X8, AARCH64_X8, 63, 0, Mode64, 0},
		{"X9", AARCH64_X9, AARCH64_X9, 63, 0, Mode64, 0},
		{"X10", AARCH64_X10, AARCH64_X10, 63, 0, Mode64, 0},
		{"X11", AARCH64_X11, AARCH64_X11, 63, 0, Mode64, 0},
		{"X12", AARCH64_X12, AARCH64_X12, 63, 0, Mode64, 0},
		{"X13", AARCH64_X13, AARCH64_X13, 63, 0, Mode64, 0},
		{"X14", AARCH64_X14, AARCH64_X14, 63, 0, Mode64, 0},
		{"X15", AARCH64_X15, AARCH64_X15, 63, 0, Mode64, 0},
		{"X16", AARCH64_X16, AARCH64_X16, 63, 0, Mode64, 0},
		{"X17", AARCH64_X17, AARCH64_X17, 63, 0, Mode64, 0},
		{"X18", AARCH64_X18, AARCH64_X18, 63, 0, Mode64, 0},
		{"X19", AARCH64_X19, AARCH64_X19, 63, 0, Mode64, 0},
		{"X20", AARCH64_X20, AARCH64_X20, 63, 0, Mode64, 0},
		{"X21", AARCH64_X21, AARCH64_X21, 63, 0, Mode64, 0},
		{"X22", AARCH64_X22, AARCH64_X22, 63, 0, Mode64, 0},
		{"X23", AARCH64_X23, AARCH64_X23, 63, 0, Mode64, 0},
		{"X24", AARCH64_X24, AARCH64_X24, 63, 0, Mode64, 0},
		{"X25", AARCH64_X25, AARCH64_X25, 63, 0, Mode64, 0},
		{"X26", AARCH64_X26, AARCH64_X26, 63, 0, Mode64, 0},
		{"X27", AARCH64_X27, AARCH64_X27, 63, 0, Mode64, 0},
		{"X28", AARCH64_X28, AARCH64_X28, 63, 0, Mode64, 0},
		{"X29", AARCH64_X29, AARCH64_X29, 63, 0, Mode64, 0},
		{"X30", AARCH64_X30, AARCH64_X30, 63, 0, Mode64, 0},
		{"W0", AARCH64_W0, AARCH64_X0, 31, 0, Mode64, 0},
		{"W1", AARCH64_W1, AARCH64_X1, 31, 0, Mode64, 0},
		{"W2", AARCH64_W2, AARCH64_X2, 31, 0, Mode64, 0},
		{"W3", AARCH64_W3, AARCH64_X3, 31, 0, Mode64, 0},
		{"W4", AARCH64_W4, AARCH64_X4, 31, 0, Mode64, 0},
		{"W5", AARCH64_W5, AARCH64_X5, 31, 0, Mode64, 0},
		{"W6", AARCH64_W6, AARCH64_X6, 31, 0, Mode64, 0},
		{"W7", AARCH64_W7, AARCH64_X7, 31, 0, Mode64, 0},
		{"W8", AARCH64_W8, AARCH64_X8, 31, 0, Mode64, 0},
		{"W9", AARCH64_W9, AARCH64_X9, 31, 0, Mode64, 0},
		{"W10", AARCH64_W10, AARCH64_X10, 31, 0, Mode64, 0},
		{"W11", AARCH64_W11, AARCH64_X11, 31, 0, Mode64, 0},
		{"W12", AARCH64_W12, AARCH64_X12, 31, 0, Mode64, 0},
		{"W13", AARCH64_W13, AARCH64_X13, 31, 0, Mode64, 0},
		{"W14", AARCH64_W14, AARCH64_X14, 31, 0, Mode64, 0},
		{"W15", AARCH64_W15, AARCH64_X15, 31, 0, Mode64, 0},
		{"W16", AARCH64_W16, AARCH64_X16, 31, 0, Mode64, 0},
		{"W17", AARCH64_W17, AARCH64_X17, 31, 0, Mode64, 0},
		{"W18", AARCH64_W18, AARCH64_X18, 31, 0, Mode64, 0},
		{"W19", AARCH64_W19, AARCH64_X19, 31, 0, Mode64, 0},
		{"W20", AARCH64_W20, AARCH64_X20, 31, 0, Mode64, 0},
		{"W21", AARCH64_W21, AARCH64_X21, 31, 0, Mode64, 0},
		{"W22", AARCH64_W22, AARCH64_X22, 31, 0, Mode64, 0},
		{"W23", AARCH64_W23, AARCH64_X23, 31, 0, Mode64, 0},
		{"W24", AARCH64_W24, AARCH64_X24, 31, 0, Mode64, 0},
		{"W25", AARCH64_W25, AARCH64_X25, 31, 0, Mode64, 0},
		{"W26", AARCH64_W26, AARCH64_X26, 31, 0, Mode64, 0},
		{"W27", AARCH64_W27, AARCH64_X27, 31, 0, Mode64, 0},
		{"W28", AARCH64_W28, AARCH64_X28, 31, 0, Mode64, 0},
		{"W29", AARCH64_W29, AARCH64_X29, 31, 0, Mode64, 0},
		{"W30", AARCH64_W30, AARCH64_X30, 31, 0, Mode64, 0},
		{"SP", AARCH64_SP, AARCH64_SP, 63, 0, Mode64, 0},
		{"WSP", AARCH64_WSP, AARCH64_SP, 31, 0, Mode64, 0},
		{"XZR", AARCH64_XZR, AARCH64_XZR, 63, 0, Mode64, 0},
		{"WZR", AARCH64_WZR, AARCH64_XZR, 31, 0, Mode64, 0},
		{"PC", AARCH64_PC, AARCH64_PC, 63, 0, Mode64, Undecoded},
		{"SPSR", AARCH64_SPSR, AARCH64_SPSR, 31, 0, Mode64, Undecoded},

		// SIMD and floating point registers.
		{"Q0", AARCH64_Q0, AARCH64_Q0, 127, 0, Mode64, 0},
		{"Q1", AARCH64_Q1, AARCH64_Q1, 127, 0, Mode64, 0},
		{"Q2", AARCH64_Q2, AARCH64_Q2, 127, 0, Mode64, 0},
		{"Q3", AARCH64_Q3, AARCH64_Q3, 127, 0, Mode64, 0},
		{"Q4", AARCH64_Q4, AARCH64_Q4, 127, 0, Mode64, 0},
		{"Q5", AARCH64_Q5, AARCH64_Q5, 127, 0, Mode64, 0},
		{"Q6", AARCH64_Q6, AARCH64_Q6, 127, 0, Mode64, 0},
		{"Q7", AARCH64_Q7, AARCH64_Q7, 127, 0, Mode64, 0},
		{"Q8", AARCH64_Q8, AARCH64_Q8, 127, 0, Mode64, 0},
		{"Q9", AARCH64_Q9, AARCH64_Q9, 127, 0, Mode64, 0},
		{"Q10", AARCH64_Q10, AARCH64_Q10, 127, 0, Mode64, 0},
		{"Q11", AARCH64_Q11, AARCH64_Q11, 127, 0, Mode64, 0},
		{"Q12", AARCH64_Q12, AARCH64_Q12, 127, 0, Mode64, 0},
		{"Q13", AARCH64_Q13, AARCH64_Q13, 127, 0, Mode64, 0},
		{"Q14", AARCH64_Q14, AARCH64_Q14, 127, 0, Mode64, 0},
		{"Q15", AARCH64_Q15, AARCH64_Q15, 127, 0, Mode64, 0},
		{"Q16", AARCH64_Q16, AARCH64_Q16, 127, 0, Mode64, 0},
		{"Q17", AARCH64_Q17, AARCH64_Q17, 127, 0, Mode64, 0},
		{"Q18", AARCH64_Q18, AARCH64_Q18, 127, 0, Mode64, 0},
		{"Q19", AARCH64_Q19, AARCH64_Q19, 127, 0, Mode64, 0},
		{"Q20", AARCH64_Q20, AARCH64_Q20, 127, 0, Mode64, 0},
		{"Q21", AARCH64_Q21, AARCH64_Q21, 127, 0, Mode64, 0},
		{"Q22", AARCH64_Q22, AARCH64_Q22, 127, 0, Mode64, 0},
		{"Q23", AARCH64_Q23, AARCH64_Q23, 127, 0, Mode64, 0},
		{"Q24", AARCH64_Q24, AARCH64_Q24, 127, 0, Mode64, 0},
		{"Q25", AARCH64_Q25, AARCH64_Q25, 127, 0, Mode64, 0},
		{"Q26", AARCH64_Q26, AARCH64_Q26, 127, 0, Mode64, 0},
		{"Q27", AARCH64_Q27, AARCH64_Q27, 127, 0, Mode64, 0},
		{"Q28", AARCH64_Q28, AARCH64_Q28, 127, 0, Mode64, 0},
		{"Q29", AARCH64_Q29, AARCH64_Q29, 127, 0, Mode64, 0},
		{"Q30", AARCH64_Q30, AARCH64_Q30, 127, 0, Mode64, 0},
		{"Q31", AARCH64_Q31, AARCH64_Q31, 127, 0, Mode64, 0},
		{"V0", AARCH64_V0, AARCH64_Q0, 127, 0, Mode64, 0},
		{"V1", AARCH64_V1, AARCH64_Q1, 127, 0, Mode64, 0},
		{"V2", AARCH64_V2, AARCH64_Q2, 127, 0, Mode64, 0},
		{"V3", AARCH64_V3, AARCH64_Q3, 127, 0, Mode64, 0},
		{"V4", AARCH64_V4, AARCH64_Q4, 127, 0, Mode64, 0},
		{"V5", AARCH64_V5, AARCH64_Q5, 127, 0, Mode64, 0},
		{"V6", AARCH64_V6, AARCH64_Q6, 127, 0, Mode64, 0},
		{"V7", AARCH64_V7, AARCH64_Q7, 127, 0, Mode64, 0},
		{"V8", AARCH64_V8, AARCH64_Q8, 127, 0, Mode64, 0},
		{"V9", AARCH64_V9, AARCH64_Q9, 127, 0, Mode64, 0},
		{"V10", AARCH64_V10, AARCH64_Q10, 127, 0, Mode64, 0},
		{"V11", AARCH64_V11, AARCH64_Q11, 127, 0, Mode64, 0},
		{"V12", AARCH64_V12, AARCH64_Q12, 127, 0, Mode64, 0},
		{"V13", AARCH64_V13, AARCH64_Q13, 127, 0, Mode64, 0},
		{"V14", AARCH64_V14, AARCH64_Q14, 127, 0, Mode64, 0},
		{"V15", AARCH64_V15, AARCH64_Q15, 127, 0, Mode64, 0},
		{"V16", AARCH64_V16, AARCH64_Q16, 127, 0, Mode64, 0},
		{"V17", AARCH64_V17, AARCH64_Q17, 127, 0, Mode64, 0},
		{"V18", AARCH64_V18, AARCH64_Q18, 127, 0, Mode64, 0},
		{"V19", AARCH64_V19, AARCH64_Q19, 127, 0, Mode64, 0},
		{"V20", AARCH64_V20, AARCH64_Q20, 127, 0, Mode64, 0},
		{"V21", AARCH64_V21, AARCH64_Q21, 127, 0, Mode64, 0},
		{"V22", AARCH64_V22, AARCH64_Q22, 127, 0, Mode64, 0},
		{"V23", AARCH64_V23, AARCH64_Q23, 127, 0, Mode64, 0},
		{"V24", AARCH64_V24, AARCH64_Q24, 127, 0, Mode64, 0},
		{"V25", AARCH64_V25, AARCH64_Q25, 127, 0, Mode64, 0},
		{"V26", AARCH64_V26, AARCH64_Q26, 127, 0, Mode64, 0},
		{"V27", AARCH64_V27, AARCH64_Q27, 127, 0, Mode64, 0},
		{"V28", AARCH64_V28, AARCH64_Q28, 127, 0, Mode64, 0},
		{"V29", AARCH64_V29, AARCH64_Q29, 127, 0, Mode64, 0},
		{"V30", AARCH64_V30, AARCH64_Q30, 127, 0, Mode64, 0},
		{"V31", AARCH64_V31, AARCH64_Q31, 127, 0, Mode64, 0},
		{"D0", AARCH64_D0, AARCH64_Q0, 63, 0, Mode64, 0},
		{"D1", AARCH64_D1, AARCH64_Q1, 63, 0, Mode64, 0},
		{"D2", AARCH64_D2, AARCH64_Q2, 63, 0, Mode64, 0},
		{"D3", AARCH64_D3, AARCH64_Q3, 63, 0, Mode64, 0},
		{"D4", AARCH64_D4, AARCH64_Q4, 63, 0, Mode64, 0},
		{"D5", AARCH64_D5, AARCH64_Q5, 63, 0, Mode64, 0},
		{"D6", AARCH64_D6, AARCH64_Q6, 63, 0, Mode64, 0},
		{"D7", AARCH64_D7, AARCH64_Q7, 63, 0, Mode64, 0},
		{"D8", AARCH64_D8, AARCH64_Q8, 63, 0, Mode64, 0},
		{"D9", AARCH64_D9, AARCH64_Q9, 63, 0, Mode64, 0},
		{"D10", AARCH64_D10, AARCH64_Q10, 63, 0, Mode64, 0},
		{"D11", AARCH64_D11, AARCH64_Q11, 63, 0, Mode64, 0},
		{"D12", AARCH64_D12, AARCH64_Q12, 63, 0, Mode64, 0},
		{"D13", AARCH64_D13, AARCH64_Q13, 63, 0, Mode64, 0},
		{"D14", AARCH64_D14, AARCH64_Q14, 63, 0, Mode64, 0},
		{"D15", AARCH64_D15, AARCH64_Q15, 63, 0, Mode64, 0},
		{"D16", AARCH64_D16, AARCH64_Q16, 63, 0, Mode64, 0},
		{"D17", AARCH64_D17, AARCH64_Q17, 63, 0, Mode64, 0},
		{"D18", AARCH64_D18, AARCH64_Q18, 63, 0, Mode64, 0},
		{"D19", AARCH64_D19, AARCH64_Q19, 63, 0, Mode64, 0},
		{"D20", AARCH64_D20, AARCH64_Q20, 63, 0, Mode64, 0},
		{"D21", AARCH64_D21, AARCH64_Q21, 63, 0, Mode64, 0},
		{"D22", AARCH64_D22, AARCH64_Q22, 63, 0, Mode64, 0},
		{"D23", AARCH64_D23, AARCH64_Q23, 63, 0, Mode64, 0},
		{"D24", AARCH64_D24, AARCH64_Q24, 63, 0, Mode64, 0},
		{"D25", AARCH64_D25, AARCH64_Q25, 63, 0, Mode64, 0},
		{"D26", AARCH64_D26, AARCH64_Q26, 63, 0, Mode64, 0},
		{"D27", AARCH64_D27, AARCH64_Q27, 63, 0, Mode64, 0},
		{"D28", AARCH64_D28, AARCH64_Q28, 63, 0, Mode64, 0},
		{"D29", AARCH64_D29, AARCH64_Q29, 63, 0, Mode64, 0},
		{"D30", AARCH64_D30, AARCH64_Q30, 63, 0, Mode64, 0},
		{"D31", AARCH64_D31, AARCH64_Q31, 63, 0, Mode64, 0},
		{"S0", AARCH64_S0, AARCH64_Q0, 31, 0, Mode64, 0},
		{"S1", AARCH64_S1, AARCH64_Q1, 31, 0, Mode64, 0},
		{"S2", AARCH64_S2, AARCH64_Q2, 31, 0, Mode64, 0},
		{"S3", AARCH64_S3, AARCH64_Q3, 31, 0, Mode64, 0},
		{"S4", AARCH64_S4, AARCH64_Q4, 31, 0, Mode64, 0},
		{"S5", AARCH64_S5, AARCH64_Q5, 31, 0, Mode64, 0},
		{"S6", AARCH64_S6, AARCH64_Q6, 31, 0, Mode64, 0},
		{"S7", AARCH64_S7, AARCH64_Q7, 31, 0, Mode64, 0},
		{"S8", AARCH64_S8, AARCH64_Q8, 31, 0, Mode64, 0},
		{"S9", AARCH64_S9, AARCH64_Q9, 31, 0, Mode64, 0},
		{"S10", AARCH64_S10, AARCH64_Q10, 31, 0, Mode64, 0},
		{"S11", AARCH64_S11, AARCH64_Q11, 31, 0, Mode64, 0},
		{"S12", AARCH64_S12, AARCH64_Q12, 31, 0, Mode64, 0},
		{"S13", AARCH64_S13, AARCH64_Q13, 31, 0, Mode64, 0},
		{"S14", AARCH64_S14, AARCH64_Q14, 31, 0, Mode64, 0},
		{"S15", AARCH64_S15, AARCH64_Q15, 31, 0, Mode64, 0},
		{"S16", AARCH64_S16, AARCH64_Q16, 31, 0, Mode64, 0},
		{"S17", AARCH64_S17, AARCH64_Q17, 31, 0, Mode64, 0},
		{"S18", AARCH64_S18, AARCH64_Q18, 31, 0, Mode64, 0},
		{"S19", AARCH64_S19, AARCH64_Q19, 31, 0, Mode64, 0},
		{"S20", AARCH64_S20, AARCH64_Q20, 31, 0, Mode64, 0},
		{"S21", AARCH64_S21, AARCH64_Q21, 31, 0, Mode64, 0},
		{"S22", AARCH64_S22, AARCH64_Q22, 31, 0, Mode64, 0},
		{"S23", AARCH64_S23, AARCH64_Q23, 31, 0, Mode64, 0},
		{"S24", AARCH64_S24, AARCH64_Q24, 31, 0, Mode64, 0},
		{"S25", AARCH64_S25, AARCH64_Q25, 31, 0, Mode64, 0},
		{"S26", AARCH64_S26, AARCH64_Q26, 31, 0, Mode64, 0},
		{"S27", AARCH64_S27, AARCH64_Q27, 31, 0, Mode64, 0},
		{"S28", AARCH64_S28, AARCH64_Q28, 31, 0, Mode64, 0},
		{"S29", AARCH64_S29, AARCH64_Q29, 31, 0, Mode64, 0},
		{"S30", AARCH64_S30, AARCH64_Q30, 31, 0, Mode64, 0},
		{"S31", AARCH64_S31, AARCH64_Q31, 31, 0, Mode64, 0},
		{"H0", AARCH64_H0, AARCH64_Q0, 15, 0, Mode64, 0},
		{"H1", AARCH64_H1, AARCH64_Q1, 15, 0, Mode64, 0},
		{"H2", AARCH64_H2, AARCH64_Q2, 15, 0, Mode64, 0},
		{"H3", AARCH64_H3, AARCH64_Q3, 15, 0, Mode64, 0},
		{"H4", AARCH64_H4, AARCH64_Q4, 15, 0, Mode64, 0},
		{"H5", AARCH64_H5, AARCH64_Q5, 15, 0, Mode64, 0},
		{"H6", AARCH64_H6, AARCH64_Q6, 15, 0, Mode64, 0},
		{"H7", AARCH64_H7, AARCH64_Q7, 15, 0, Mode64, 0},
		{"H8", AARCH64_H8, AARCH64_Q8, 15, 0, Mode64, 0},
		{"H9", AARCH64_H9, AARCH64_Q9, 15, 0, Mode64, 0},
		{"H10", AARCH64_H10, AARCH64_Q10, 15, 0, Mode64, 0},
		{"H11", AARCH64_H11, AARCH64_Q11, 15, 0, Mode64, 0},
		{"H12", AARCH64_H12, AARCH64_Q12, 15, 0, Mode64, 0},
		{"H13", AARCH64_H13, AARCH64_Q13, 15, 0, Mode64, 0},
		{"H14", AARCH64_H14, AARCH64_Q14, 15, 0, Mode64, 0},
		{"H15", AARCH64_H15, AARCH64_Q15, 15, 0, Mode64, 0},
		{"H16", AARCH64_H16, AARCH64_Q16, 15, 0, Mode64, 0},
		{"H17", AARCH64_H17, AARCH64_Q17, 15, 0, Mode64, 0},
		{"H18", AARCH64_H18, AARCH64_Q18, 15, 0, Mode64, 0},
		{"H19", AARCH64_H19, AARCH64_Q19, 15, 0, Mode64, 0},
		{"H20", AARCH64_H20, AARCH64_Q20, 15, 0, Mode64, 0},
		{"H21", AARCH64_H21, AARCH64_Q21, 15, 0, Mode64, 0},
		{"H22", AARCH64_H22, AARCH64_Q22, 15, 0, Mode64, 0},
		{"H23", AARCH64_H23, AARCH64_Q23, 15, 0, Mode64, 0},
		{"H24", AARCH64_H24, AARCH64_Q24, 15, 0, Mode64, 0},
		{"H25", AARCH64_H25, AARCH64_Q25, 15, 0, Mode64, 0},
		{"H26", AARCH64_H26, AARCH64_Q26, 15, 0, Mode64, 0},
		{"H27", AARCH64_H27, AARCH64_Q27, 15, 0, Mode64, 0},
		{"H28", AARCH64_H28, AARCH64_Q28, 15, 0, Mode64, 0},
		{"H29", AARCH64_H29, AARCH64_Q29, 15, 0, Mode64, 0},
		{"H30", AARCH64_H30, AARCH64_Q30, 15, 0, Mode64, 0},
		{"H31", AARCH64_H31, AARCH64_Q31, 15, 0, Mode64, 0},
		{"B0", AARCH64_B0, AARCH64_Q0, 7, 0, Mode64, 0},
		{"B1", AARCH64_B1, AARCH64_Q1, 7, 0, Mode64, 0},
		{"B2", AARCH64_B2, AARCH64_Q2, 7, 0, Mode64, 0},
		{"B3", AARCH64_B3, AARCH64_Q3, 7, 0, Mode64, 0},
		{"B4", AARCH64_B4, AARCH64_Q4, 7, 0, Mode64, 0},
		{"B5", AARCH64_B5, AARCH64_Q5, 7, 0, Mode64, 0},
		{"B6", AARCH64_B6, AARCH64_Q6, 7, 0, Mode64, 0},
		{"B7", AARCH64_B7, AARCH64_Q7, 7, 0, Mode64, 0},
		{"B8", AARCH64_B8, AARCH64_Q8, 7, 0, Mode64, 0},
		{"B9", AARCH64_B9, AARCH64_Q9, 7, 0, Mode64, 0},
		{"B10", AARCH64_B10, AARCH64_Q10, 7, 0, Mode64, 0},
		{"B11", AARCH64_B11, AARCH64_Q11, 7, 0, Mode64, 0},
		{"B12", AARCH64_B12, AARCH64_Q12, 7, 0, Mode64, 0},
		{"B13", AARCH64_B13, AARCH64_Q13, 7, 0, Mode64, 0},
		{"B14", AARCH64_B14, AARCH64_Q14, 7, 0, Mode64, 0},
		{"B15", AARCH64_B15, AARCH64_Q15, 7, 0, Mode64, 0},
		{"B16", AARCH64_B16, AARCH64_Q16, 7, 0, Mode64, 0},
		{"B17", AARCH64_B17, AARCH64_Q17, 7, 0, Mode64, 0},
		{"B18", AARCH64_B18, AARCH64_Q18, 7, 0, Mode64, 0},
		{"B19", AARCH64_B19, AARCH64_Q19, 7, 0, Mode64, 0},
		{"B20", AARCH64_B20, AARCH64_Q20, 7, 0, Mode64, 0},
		{"B21", AARCH64_B21, AARCH64_Q21, 7, 0, Mode64, 0},
		{"B22", AARCH64_B22, AARCH64_Q22, 7, 0, Mode64, 0},
		{"B23", AARCH64_B23, AARCH64_Q23, 7, 0, Mode64, 0},
		{"B24", AARCH64_B24, AARCH64_Q24, 7, 0, Mode64, 0},
		{"B25", AARCH64_B25, AARCH64_Q25, 7, 0, Mode64, 0},
		{"B26", AARCH64_B26, AARCH64_Q26, 7, 0, Mode64, 0},
		{"B27", AARCH64_B27, AARCH64_Q27, 7, 0, Mode64, 0},
		{"B28", AARCH64_B28, AARCH64_Q28, 7, 0, Mode64, 0},
		{"B29", AARCH64_B29, AARCH64_Q29, 7, 0, Mode64, 0},
		{"B30", AARCH64_B30, AARCH64_Q30, 7, 0, Mode64, 0},
		{"B31", AARCH64_B31, AARCH64_Q31, 7, 0, Mode64, 0},

		// Condition flags.
		{"N", AARCH64_N, AARCH64_SPSR, 31, 31, Mode64, Bit | Undecoded},
		{"Z", AARCH64_Z, AARCH64_SPSR, 30, 30, Mode64, Bit | Undecoded},
		{"C", AARCH64_C, AARCH64_SPSR, 29, 29, Mode64, Bit | Undecoded},
		{"V", AARCH64_V, AARCH64_SPSR, 28, 28, Mode64, Bit | Undecoded},
	},
	System: []Entry{
		// System registers.
		{"CURRENTEL", AARCH64_CURRENTEL, AARCH64_CURRENTEL, 63, 0, Mode64, System | Undecoded},
		{"DAIF", AARCH64_DAIF, AARCH64_DAIF, 63, 0, Mode64, System | Undecoded},
		{"NZCV", AARCH64_NZCV, AARCH64_NZCV, 63, 0, Mode64, System | Undecoded},
		{"FPCR", AARCH64_FPCR, AARCH64_FPCR, 63, 0, Mode64, System | Undecoded},
		{"FPSR", AARCH64_FPSR, AARCH64_FPSR, 63, 0, Mode64, System | Undecoded},
		{"SPSEL", AARCH64_SPSEL, AARCH64_SPSEL, 63, 0, Mode64, System | Undecoded},
		{"SP_EL0", AARCH64_SP_EL0, AARCH64_SP_EL0, 63, 0, Mode64, System | Undecoded},
		{"SP_EL1", AARCH64_SP_EL1, AARCH64_SP_EL1, 63, 0, Mode64, System | Undecoded},
		{"SP_EL2", AARCH64_SP_EL2, AARCH64_SP_EL2, 63, 0, Mode64, System | Undecoded},
		{"ELR_EL1", AARCH64_ELR_EL1, AARCH64_ELR_EL1, 63, 0, Mode64, System | Undecoded},
		{"ELR_EL2", AARCH64_ELR_EL2, AARCH64_ELR_EL2, 63, 0, Mode64, System | Undecoded},
		{"ELR_EL3", AARCH64_ELR_EL3, AARCH64_ELR_EL3, 63, 0, Mode64, System | Undecoded},
		{"SPSR_EL1", AARCH64_SPSR_EL1, AARCH64_SPSR_EL1, 63, 0, Mode64, System | Undecoded},
		{"SPSR_EL2", AARCH64_SPSR_EL2, AARCH64_SPSR_EL2, 63, 0, Mode64, System | Undecoded},
		{"SPSR_EL3", AARCH64_SPSR_EL3, AARCH64_SPSR_EL3, 63, 0, Mode64, System | Undecoded},
		{"ESR_EL1", AARCH64_ESR_EL1, AARCH64_ESR_EL1, 63, 0, Mode64, System | Undecoded},
		{"ESR_EL2", AARCH64_ESR_EL2, AARCH64_ESR_EL2, 63, 0, Mode64, System | Undecoded},
		{"ESR_EL3", AARCH64_ESR_EL3, AARCH64_ESR_EL3, 63, 0, Mode64, System | Undecoded},
		{"FAR_EL1", AARCH64_FAR_EL1, AARCH64_FAR_EL1, 63, 0, Mode64, System | Undecoded},
		{"FAR_EL2", AARCH64_FAR_EL2, AARCH64_FAR_EL2, 63, 0, Mode64, System | Undecoded},
		{"FAR_EL3", AARCH64_FAR_EL3, AARCH64_FAR_EL3, 63, 0, Mode64, System | Undecoded},
		{"VBAR_EL1", AARCH64_VBAR_EL1, AARCH64_VBAR_EL1, 63, 0, Mode64, System | Undecoded},
		{"VBAR_EL2", AARCH64_VBAR_EL2, AARCH64_VBAR_EL2, 63, 0, Mode64, System | Undecoded},
		{"VBAR_EL3", AARCH64_VBAR_EL3, AARCH64_VBAR_EL3, 63, 0, Mode64, System | Undecoded},
		{"SCTLR_EL1", AARCH64_SCTLR_EL1, AARCH64_SCTLR_EL1, 63, 0, Mode64, System | Undecoded},
		{"SCTLR_EL2", AARCH64_SCTLR_EL2, AARCH64_SCTLR_EL2, 63, 0, Mode64, System | Undecoded},
		{"SCTLR_EL3", AARCH64_SCTLR_EL3, AARCH64_SCTLR_EL3, 63, 0, Mode64, System | Undecoded},
		{"TCR_EL1", AARCH64_TCR_EL1, AARCH64_TCR_EL1, 63, 0, Mode64, System | Undecoded},
		{"TTBR0_EL1", AARCH64_TTBR0_EL1, AARCH64_TTBR0_EL1, 63, 0, Mode64, System | Undecoded},
		{"TTBR1_EL1", AARCH64_TTBR1_EL1, AARCH64_TTBR1_EL1, 63, 0, Mode64, System | Undecoded},
		{"MAIR_EL1", AARCH64_MAIR_EL1, AARCH64_MAIR_EL1, 63, 0, Mode64, System | Undecoded},
		{"HCR_EL2", AARCH64_HCR_EL2, AARCH64_HCR_EL2, 63, 0, Mode64, System | Undecoded},
		{"SCR_EL3", AARCH64_SCR_EL3, AARCH64_SCR_EL3, 63, 0, Mode64, System | Undecoded},
		{"CPACR_EL1", AARCH64_CPACR_EL1, AARCH64_CPACR_EL1, 63, 0, Mode64, System | Undecoded},
		{"TPIDR_EL0", AARCH64_TPIDR_EL0, AARCH64_TPIDR_EL0, 63, 0, Mode64, System | Undecoded},
		{"TPIDRRO_EL0", AARCH64_TPIDRRO_EL0, AARCH64_TPIDRRO_EL0, 63, 0, Mode64, System | Undecoded},
		{"TPIDR_EL1", AARCH64_TPIDR_EL1, AARCH64_TPIDR_EL1, 63, 0, Mode64, System | Undecoded},
		{"CNTFRQ_EL0", AARCH64_CNTFRQ_EL0, AARCH64_CNTFRQ_EL0, 63, 0, Mode64, System | Undecoded},
		{"CNTVCT_EL0", AARCH64_CNTVCT_EL0, AARCH64_CNTVCT_EL0, 63, 0, Mode64, System | Undecoded},
		{"CNTPCT_EL0", AARCH64_CNTPCT_EL0, AARCH64_CNTPCT_EL0, 63, 0, Mode64, System | Undecoded},
		{"CNTV_CTL_EL0", AARCH64_CNTV_CTL_EL0, AARCH64_CNTV_CTL_EL0, 63, 0, Mode64, System | Undecoded},
		{"CNTV_CVAL_EL0", AARCH64_CNTV_CVAL_EL0, AARCH64_CNTV_CVAL_EL0, 63, 0, Mode64, System | Undecoded},
		{"MIDR_EL1", AARCH64_MIDR_EL1, AARCH64_MIDR_EL1, 63, 0, Mode64, System | Undecoded},
		{"MPIDR_EL1", AARCH64_MPIDR_EL1, AARCH64_MPIDR_EL1, 63, 0, Mode64, System | Undecoded},
		{"CTR_EL0", AARCH64_CTR_EL0, AARCH64_CTR_EL0, 63, 0, Mode64, System | Undecoded},
		{"DCZID_EL0", AARCH64_DCZID_EL0, AARCH64_DCZID_EL0, 63, 0, Mode64, System | Undecoded},
		{"ID_AA64PFR0_EL1", AARCH64_ID_AA64PFR0_EL1, AARCH64_ID_AA64PFR0_EL1, 63, 0, Mode64, System | Undecoded},
		{"ID_AA64ISAR0_EL1", AARCH64_ID_AA64ISAR0_EL1, AARCH64_ID_AA64ISAR0_EL1, 63, 0, Mode64, System | Undecoded},
		{"ID_AA64MMFR0_EL1", AARCH64_ID_AA64MMFR0_EL1, AARCH64_ID_AA64MMFR0_EL1, 63, 0, Mode64, System | Undecoded},
		{"PAR_EL1", AARCH64_PAR_EL1, AARCH64_PAR_EL1, 63, 0, Mode64, System | Undecoded},
		{"CONTEXTIDR_EL1", AARCH64_CONTEXTIDR_EL1, AARCH64_CONTEXTIDR_EL1, 63, 0, Mode64, System | Undecoded},
	},
}

func init() {
	Register(&Family{
		Name:     arch.FamilyAArch64,
		Variants: []Variant{{arch.AARCH64, aarch64Table, Mode64}},
	})
}
