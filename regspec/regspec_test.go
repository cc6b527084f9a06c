// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regspec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-regcat/arch"
)

func TestTablesValidate(t *testing.T) {
	for _, f := range Families() {
		for _, v := range f.Variants {
			require.NoError(t, v.Table.Validate(), "%s", v.Arch)
			assert.Equal(t, f.Name, v.Arch.Family, "%s registered under the wrong family", v.Arch)
		}
	}
}

func TestMandatoryFamilies(t *testing.T) {
	for _, name := range []arch.Family{arch.FamilyX86, arch.FamilyAArch64, arch.FamilyARM32} {
		f, ok := LookupFamily(name)
		require.True(t, ok, "family %s not registered", name)
		assert.False(t, f.Optional, "family %s must not be optional", name)
	}
	_, ok := LookupFamily("mips")
	assert.False(t, ok)
}

func TestFamiliesSorted(t *testing.T) {
	fams := Families()
	for i := 1; i < len(fams); i++ {
		assert.Less(t, string(fams[i-1].Name), string(fams[i].Name))
	}
}

func TestValidateErrors(t *testing.T) {
	tab := &Table{
		Family: "toy",
		Entries: []Entry{
			{Name: "A", ID: 1, Modes: Mode32},
			{Name: "B", ID: 0, Modes: Mode32},
			{Name: "C", ID: 1, Modes: Mode32},
		},
		System: []Entry{
			{Name: "A", ID: 4, Modes: Mode32, Flags: System},
		},
	}
	err := tab.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingID))
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.True(t, errors.Is(err, ErrDuplicateName))
}

func TestValidateUnavailableEntries(t *testing.T) {
	// Unavailable entries still reserve their name.
	tab := &Table{
		Family: "toy",
		Entries: []Entry{
			{Name: "A", ID: 1, Modes: Mode32},
			{Name: "A", ID: 2},
		},
	}
	assert.ErrorIs(t, tab.Validate(), ErrDuplicateName)
}

func TestAssign(t *testing.T) {
	check := func(tab *Table, name string, want ID) {
		t.Helper()
		got, ok := Assign(tab, name)
		if want == Invalid {
			assert.False(t, ok, "Assign(%s, %s)", tab.Family, name)
			return
		}
		assert.True(t, ok, "Assign(%s, %s)", tab.Family, name)
		assert.Equal(t, want, got, "Assign(%s, %s)", tab.Family, name)
	}
	check(x86Table, "RAX", X86_RAX)
	check(x86Table, "AH", X86_AH)
	check(x86Table, "ZMM31", X86_ZMM31)
	check(x86Table, "SSP", X86_SSP)
	check(x86Table, "rax", Invalid)
	check(aarch64Table, "X0", AARCH64_X0)
	check(aarch64Table, "SCTLR_EL1", AARCH64_SCTLR_EL1)
	check(arm32Table, "PC", ARM32_PC)
	check(arm32Table, "SCTLR_EL1", Invalid)
}

func TestIdentifiersStartAtOne(t *testing.T) {
	assert.Equal(t, ID(1), X86_RAX)
	assert.Equal(t, ID(1), AARCH64_X0)
	assert.Equal(t, ID(1), ARM32_R0)
}

func TestVariantAvailable(t *testing.T) {
	narrow := Variant{Arch: arch.X86, Table: x86Table, Accept: Mode32}
	wide := Variant{Arch: arch.X86_64, Table: x86Table, Accept: Mode32 | Mode64}
	for _, e := range x86Table.All() {
		if narrow.Available(e) {
			assert.True(t, wide.Available(e), "%s available in X86 but not X86_64", e.Name)
		}
		if e.Modes == 0 {
			assert.False(t, wide.Available(e), "%s has no modes", e.Name)
		}
	}

	rax, _ := Assign(x86Table, "RAX")
	assert.Equal(t, X86_RAX, rax)
	for _, e := range x86Table.Entries {
		if e.Name == "RAX" {
			assert.False(t, narrow.Available(e))
			assert.True(t, wide.Available(e))
		}
	}
}

func TestEntryAttributes(t *testing.T) {
	byName := func(tab *Table, name string) Entry {
		t.Helper()
		for _, e := range tab.All() {
			if e.Name == name {
				return e
			}
		}
		t.Fatalf("%s not in %s table", name, tab.Family)
		return Entry{}
	}

	ah := byName(x86Table, "AH")
	assert.Equal(t, X86_RAX, ah.Parent)
	assert.Equal(t, 8, ah.Width())

	zf := byName(x86Table, "ZF")
	assert.True(t, zf.Flags.Has(Bit|Undecoded))
	assert.Equal(t, 1, zf.Width())

	s3 := byName(arm32Table, "S3")
	assert.Equal(t, ARM32_D1, s3.Parent)
	assert.Equal(t, uint16(63), s3.High)
	assert.Equal(t, uint16(32), s3.Low)

	for _, e := range aarch64Table.System {
		assert.True(t, e.Flags.Has(System), "%s in system sub-table without System flag", e.Name)
	}
}
