// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-regcat/arch"
	"github.com/aclements/go-regcat/regspec"
)

var toyArch = &arch.Arch{Label: "TOY", Family: "toy", Layout: arch.X86.Layout}

var toyTable = &regspec.Table{
	Family: "toy",
	Entries: []regspec.Entry{
		{Name: "AL", ID: 1, Modes: regspec.Mode32},
		{Name: "AH", ID: 2, Modes: regspec.Mode32},
		{Name: "FUTURE1", ID: 3},
	},
}

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestBuildToyTable(t *testing.T) {
	ns, err := Build(regspec.Variant{Arch: toyArch, Table: toyTable, Accept: regspec.Mode32 | regspec.Mode64})
	require.NoError(t, err)
	assert.Equal(t, map[string]regspec.ID{"AL": 1, "AH": 2}, ns.Map())
	assert.Equal(t, []string{"AL", "AH"}, ns.Names())

	_, err = ns.Lookup("FUTURE1")
	assert.ErrorIs(t, err, ErrRegisterNotFound)
	_, ok := ns.Name(3)
	assert.False(t, ok)
}

func TestBuildRejectsBadTable(t *testing.T) {
	bad := &regspec.Table{
		Family: "toy",
		Entries: []regspec.Entry{
			{Name: "AL", ID: 1, Modes: regspec.Mode32},
			{Name: "AL", ID: 2, Modes: regspec.Mode32},
		},
	}
	ns, err := Build(regspec.Variant{Arch: toyArch, Table: bad, Accept: regspec.Mode32})
	assert.Nil(t, ns)
	assert.ErrorIs(t, err, regspec.ErrDuplicateName)
}

func TestNewAllOrNothing(t *testing.T) {
	good, ok := regspec.LookupFamily(arch.FamilyX86)
	require.True(t, ok)
	bad := &regspec.Family{
		Name: "toy",
		Variants: []regspec.Variant{{
			Arch:   toyArch,
			Table:  &regspec.Table{Family: "toy", Entries: []regspec.Entry{{Name: "AL", Modes: regspec.Mode32}}},
			Accept: regspec.Mode32,
		}},
	}
	c, err := New(good, bad)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, regspec.ErrMissingID)
}

func TestNewDuplicateArch(t *testing.T) {
	f := func(name arch.Family) *regspec.Family {
		return &regspec.Family{
			Name:     name,
			Variants: []regspec.Variant{{Arch: toyArch, Table: toyTable, Accept: regspec.Mode32}},
		}
	}
	c, err := New(f("a"), f("b"))
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrDuplicateArch)
}

func TestMandatoryLabels(t *testing.T) {
	c := defaultCatalog(t)
	for _, label := range []string{"X86", "X86_64", "AARCH64", "ARM32"} {
		assert.True(t, c.Has(label), label)
	}
	labels := c.Labels()
	assert.IsIncreasing(t, labels)
}

func TestInjective(t *testing.T) {
	c := defaultCatalog(t)
	for _, label := range c.Labels() {
		ns, err := c.Namespace(label)
		require.NoError(t, err)
		seen := make(map[regspec.ID]string)
		for _, name := range ns.Names() {
			id, err := ns.Lookup(name)
			require.NoError(t, err)
			assert.NotEqual(t, regspec.Invalid, id, "%s.%s", label, name)
			if prev, dup := seen[id]; dup {
				t.Errorf("%s: %s and %s share id %d", label, prev, name, id)
			}
			seen[id] = name
			back, ok := ns.Name(id)
			assert.True(t, ok)
			assert.Equal(t, name, back)
		}
		assert.Len(t, ns.Map(), ns.Len(), "%s has duplicate names", label)
	}
}

func TestX86Subset(t *testing.T) {
	c := defaultCatalog(t)
	x86, err := c.Namespace("X86")
	require.NoError(t, err)
	x64, err := c.Namespace("X86_64")
	require.NoError(t, err)

	wide := x64.Map()
	for name, id := range x86.Map() {
		wid, ok := wide[name]
		if assert.True(t, ok, "%s in X86 but not X86_64", name) {
			assert.Equal(t, id, wid, name)
		}
	}
	assert.Less(t, x86.Len(), x64.Len(), "X86 must be a strict subset of X86_64")

	_, err = x86.Lookup("RAX")
	assert.ErrorIs(t, err, ErrRegisterNotFound)
	id, err := x64.Lookup("RAX")
	require.NoError(t, err)
	assert.Equal(t, regspec.X86_RAX, id)
}

func TestUnavailableEntryNeverPublished(t *testing.T) {
	c := defaultCatalog(t)
	for _, label := range []string{"X86", "X86_64"} {
		_, err := c.Lookup(label, "SSP")
		assert.ErrorIs(t, err, ErrRegisterNotFound, label)
	}
}

func TestSystemRegistersMerged(t *testing.T) {
	c := defaultCatalog(t)
	ns, err := c.Namespace("AARCH64")
	require.NoError(t, err)

	id, err := ns.Lookup("SCTLR_EL1")
	require.NoError(t, err)
	assert.Equal(t, regspec.AARCH64_SCTLR_EL1, id)
	e, ok := ns.Entry("SCTLR_EL1")
	require.True(t, ok)
	assert.True(t, e.Flags.Has(regspec.System))

	names := ns.Names()
	assert.Equal(t, "X0", names[0], "general registers come first")
	assert.Equal(t, "CONTEXTIDR_EL1", names[len(names)-1], "system registers come last")
}

func TestLookupErrors(t *testing.T) {
	c := defaultCatalog(t)

	id, err := c.Lookup("MIPS", "R0")
	assert.ErrorIs(t, err, ErrArchNotFound)
	assert.Equal(t, regspec.Invalid, id)

	id, err = c.Lookup("X86_64", "rax")
	assert.ErrorIs(t, err, ErrRegisterNotFound)
	assert.Equal(t, regspec.Invalid, id)

	id, err = c.Lookup("X86_64", "AH")
	require.NoError(t, err)
	assert.Equal(t, regspec.X86_AH, id)
}

func TestDisableOptionalFamily(t *testing.T) {
	all := regspec.Families()
	var mandatory []*regspec.Family
	optional := make(map[string]bool)
	for _, f := range all {
		if f.Optional {
			for _, v := range f.Variants {
				optional[v.Arch.Label] = true
			}
			continue
		}
		mandatory = append(mandatory, f)
	}

	full, err := New(all...)
	require.NoError(t, err)
	reduced, err := New(mandatory...)
	require.NoError(t, err)

	for _, label := range full.Labels() {
		if optional[label] {
			assert.False(t, reduced.Has(label), label)
			_, err := reduced.Namespace(label)
			assert.ErrorIs(t, err, ErrArchNotFound)
			continue
		}
		a, err := full.Namespace(label)
		require.NoError(t, err)
		b, err := reduced.Namespace(label)
		require.NoError(t, err)
		assert.Equal(t, a.Entries(), b.Entries(), label)
	}
	assert.Len(t, reduced.Labels(), len(full.Labels())-len(optional))
}

// TestGoldenIdentifiers pins every published identifier. A failure
// here means an existing identifier changed, which breaks persisted
// data. Only additions are allowed; regenerate testdata/ids.json for
// those with "regcat export -o catalog/testdata/ids.json".
func TestGoldenIdentifiers(t *testing.T) {
	data, err := os.ReadFile("testdata/ids.json")
	require.NoError(t, err)
	var golden map[string]map[string]regspec.ID
	require.NoError(t, json.Unmarshal(data, &golden))

	c := defaultCatalog(t)
	for label, want := range golden {
		ns, err := c.Namespace(label)
		if err != nil {
			a, ok := arch.Lookup(label)
			require.True(t, ok, label)
			f, ok := regspec.LookupFamily(a.Family)
			assert.False(t, ok && !f.Optional, "mandatory architecture %s missing", label)
			continue
		}
		assert.Equal(t, want, ns.Map(), label)
	}
	for _, label := range c.Labels() {
		assert.Contains(t, golden, label)
	}
}
