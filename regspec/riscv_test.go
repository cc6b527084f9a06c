// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noriscv

package regspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-regcat/arch"
)

func TestRISCVFamily(t *testing.T) {
	f, ok := LookupFamily(arch.FamilyRISCV)
	require.True(t, ok)
	assert.True(t, f.Optional)
	require.Len(t, f.Variants, 2)
	assert.Equal(t, arch.RV64, f.Variants[0].Arch)
	assert.Equal(t, arch.RV32, f.Variants[1].Arch)
	assert.NotSame(t, f.Variants[0].Table, f.Variants[1].Table)
}

func TestRISCVTables(t *testing.T) {
	id, ok := Assign(rv64Table, "MSTATUS")
	require.True(t, ok)
	assert.Equal(t, RV64_MSTATUS, id)

	_, ok = Assign(rv64Table, "CYCLEH")
	assert.False(t, ok, "CYCLEH only exists on RV32")

	id, ok = Assign(rv32Table, "CYCLEH")
	require.True(t, ok)
	assert.Equal(t, RV32_CYCLEH, id)
}
