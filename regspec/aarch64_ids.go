// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regspec

// Identifiers of the AArch64 domain.
const (
	_ ID = iota

	// General purpose registers.
	AARCH64_X0
	AARCH64_X1
	AARCH64_X2
	AARCH64_X3
	AARCH64_X4
	AARCH64_X5
	AARCH64_X6
	AARCH64_X7
	AARCH64_X8
	AARCH64_X9
	AARCH64_X10
	AARCH64_X11
	AARCH64_X12
	AARCH64_X13
	AARCH64_X14
	AARCH64_X15
	AARCH64_X16
	AARCH64_X17
	AARCH64_X18
	AARCH64_X19
	AARCH64_X20
	AARCH64_X21
	AARCH64_X22
	AARCH64_X23
	AARCH64_X24
	AARCH64_X25
	AARCH64_X26
	AARCH64_X27
	AARCH64_X28
	AARCH64_X29
	AARCH64_X30
	AARCH64_W0
	AARCH64_W1
	AARCH64_W2
	AARCH64_W3
	AARCH64_W4
	AARCH64_W5
	AARCH64_W6
	AARCH64_W7
	AARCH64_W8
	AARCH64_W9
	AARCH64_W10
	AARCH64_W11
	AARCH64_W12
	AARCH64_W13
	AARCH64_W14
	AARCH64_W15
	AARCH64_W16
	AARCH64_W17
	AARCH64_W18
	AARCH64_W19
	AARCH64_W20
	AARCH64_W21
	AARCH64_W22
	AARCH64_W23
	AARCH64_W24
	AARCH64_W25
	AARCH64_W26
	AARCH64_W27
	AARCH64_W28
	AARCH64_W29
	AARCH64_W30
	AARCH64_SP
	AARCH64_WSP
	AARCH64_XZR
	AARCH64_WZR
	AARCH64_PC
	AARCH64_SPSR

	// SIMD and floating point registers.
	AARCH64_Q0
	AARCH64_Q1
	AARCH64_Q2
	AARCH64_Q3
	AARCH64_Q4
	AARCH64_Q5
	AARCH64_Q6
	AARCH64_Q7
	AARCH64_Q8
	AARCH64_Q9
	AARCH64_Q10
	AARCH64_Q11
	AARCH64_Q12
	AARCH64_Q13
	AARCH64_Q14
	AARCH64_Q15
	AARCH64_Q16
	AARCH64_Q17
	AARCH64_Q18
	AARCH64_Q19
	AARCH64_Q20
	AARCH64_Q21
	AARCH64_Q22
	AARCH64_Q23
	AARCH64_Q24
	AARCH64_Q25
	AARCH64_Q26
	AARCH64_Q27
	AARCH64_Q28
	AARCH64_Q29
	AARCH64_Q30
	AARCH64_Q31
	AARCH64_V0
	AARCH64_V1
	AARCH64_V2
	AARCH64_V3
	AARCH64_V4
	AARCH64_V5
	AARCH64_V6
	AARCH64_V7
	AARCH64_V8
	AARCH64_V9
	AARCH64_V10
	AARCH64_V11
	AARCH64_V12
	AARCH64_V13
	AARCH64_V14
	AARCH64_V15
	AARCH64_V16
	AARCH64_V17
	AARCH64_V18
	AARCH64_V19
	AARCH64_V20
	AARCH64_V21
	AARCH64_V22
	AARCH64_V23
	AARCH64_V24
	AARCH64_V25
	AARCH64_V26
	AARCH64_V27
	AARCH64_V28
	AARCH64_V29
	AARCH64_V30
	AARCH64_V31
	AARCH64_D0
	AARCH64_D1
	AARCH64_D2
	AARCH64_D3
	AARCH64_D4
	AARCH64_D5
	AARCH64_D6
	AARCH64_D7
	AARCH64_D8
	AARCH64_D9
	AARCH64_D10
	AARCH64_D11
	AARCH64_D12
	AARCH64_D13
	AARCH64_D14
	AARCH64_D15
	AARCH64_D16
	AARCH64_D17
	AARCH64_D18
	AARCH64_D19
	AARCH64_D20
	AARCH64_D21
	AARCH64_D22
	AARCH64_D23
	AARCH64_D24
	AARCH64_D25
	AARCH64_D26
	AARCH64_D27
	AARCH64_D28
	AARCH64_D29
	AARCH64_D30
	AARCH64_D31
	AARCH64_S0
	AARCH64_S1
	AARCH64_S2
	AARCH64_S3
	AARCH64_S4
	AARCH64_S5
	AARCH64_S6
	AARCH64_S7
	AARCH64_S8
	AARCH64_S9
	AARCH64_S10
	AARCH64_S11
	AARCH64_S12
	AARCH64_S13
	AARCH64_S14
	AARCH64_S15
	AARCH64_S16
	AARCH64_S17
	AARCH64_S18
	AARCH64_S19
	AARCH64_S20
	AARCH64_S21
	AARCH64_S22
	AARCH64_S23
	AARCH64_S24
	AARCH64_S25
	AARCH64_S26
	AARCH64_S27
	AARCH64_S28
	AARCH64_S29
	AARCH64_S30
	AARCH64_S31
	AARCH64_H0
	AARCH64_H1
	AARCH64_H2
	AARCH64_H3
	AARCH64_H4
	AARCH64_H5
	AARCH64_H6
	AARCH64_H7
	AARCH64_H8
	AARCH64_H9
	AARCH64_H10
	AARCH64_H11
	AARCH64_H12
	AARCH64_H13
	AARCH64_H14
	AARCH64_H15
	AARCH64_H16
	AARCH64_H17
	AARCH64_H18
	AARCH64_H19
	AARCH64_H20
	AARCH64_H21
	AARCH64_H22
	AARCH64_H23
	AARCH64_H24
	AARCH64_H25
	AARCH64_H26
	AARCH64_H27
	AARCH64_H28
	AARCH64_H29
	AARCH64_H30
	AARCH64_H31
	AARCH64_B0
	AARCH64_B1
	AARCH64_B2
	AARCH64_B3
	AARCH64_B4
	AARCH64_B5
	AARCH64_B6
	AARCH64_B7
	AARCH64_B8
	AARCH64_B9
	AARCH64_B10
	AARCH64_B11
	AARCH64_B12
	AARCH64_B13
	AARCH64_B14
	AARCH64_B15
	AARCH64_B16
	AARCH64_B17
	AARCH64_B18
	AARCH64_B19
	AARCH64_B20
	AARCH64_B21
	AARCH64_B22
	AARCH64_B23
	AARCH64_B24
	AARCH64_B25
	AARCH64_B26
	AARCH64_B27
	AARCH64_B28
	AARCH64_B29
	AARCH64_B30
	AARCH64_B31

	// Condition flags.
	AARCH64_N
	AARCH64_Z
	AARCH64_C
	AARCH64_V

	// System registers.
	AARCH64_CURRENTEL
	AARCH64_DAIF
	AARCH64_NZCV
	AARCH64_FPCR
	AARCH64_FPSR
	AARCH64_SPSEL
	AARCH64_SP_EL0
	AARCH64_SP_EL1
	AARCH64_SP_EL2
	AARCH64_ELR_EL1
	AARCH64_ELR_EL2
	AARCH64_ELR_EL3
	AARCH64_SPSR_EL1
	AARCH64_SPSR_EL2
	AARCH64_SPSR_EL3
	AARCH64_ESR_EL1
	AARCH64_ESR_EL2
	AARCH64_ESR_EL3
	AARCH64_FAR_EL1
	AARCH64_FAR_EL2
	AARCH64_FAR_EL3
	AARCH64_VBAR_EL1
	AARCH64_VBAR_EL2
	AARCH64_VBAR_EL3
	AARCH64_SCTLR_EL1
	AARCH64_SCTLR_EL2
	AARCH64_SCTLR_EL3
	AARCH64_TCR_EL1
	AARCH64_TTBR0_EL1
	AARCH64_TTBR1_EL1
	AARCH64_MAIR_EL1
	AARCH64_HCR_EL2
	AARCH64_SCR_EL3
	AARCH64_CPACR_EL1
	AARCH64_TPIDR_EL0
	AARCH64_TPIDRRO_EL0
	AARCH64_TPIDR_EL1
	AARCH64_CNTFRQ_EL0
	AARCH64_CNTVCT_EL0
	AARCH64_CNTPCT_EL0
	AARCH64_CNTV_CTL_EL0
	AARCH64_CNTV_CVAL_EL0
	AARCH64_MIDR_EL1
	AARCH64_MPIDR_EL1
	AARCH64_CTR_EL0
	AARCH64_DCZID_EL0
	AARCH64_ID_AA64PFR0_EL1
	AARCH64_ID_AA64ISAR0_EL1
	AARCH64_ID_AA64MMFR0_EL1
	AARCH64_PAR_EL1
	AARCH64_CONTEXTIDR_EL1
)
