// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compat

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-regcat/arch"
	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/export"
	"github.com/aclements/go-regcat/regspec"
)

var toyArch = &arch.Arch{Label: "TOY", Family: "toy", Layout: arch.X86.Layout}

// toyCatalog builds a one-architecture catalog from entries.
func toyCatalog(t *testing.T, entries ...regspec.Entry) *catalog.Catalog {
	t.Helper()
	f := &regspec.Family{
		Name: "toy",
		Variants: []regspec.Variant{{
			Arch:   toyArch,
			Table:  &regspec.Table{Family: "toy", Entries: entries},
			Accept: regspec.Mode32,
		}},
	}
	c, err := catalog.New(f)
	require.NoError(t, err)
	return c
}

func reg(name string, id regspec.ID) regspec.Entry {
	return regspec.Entry{Name: name, ID: id, Parent: id, High: 31, Modes: regspec.Mode32}
}

func TestCompare(t *testing.T) {
	old := export.Dict{
		"A": {"R0": 1, "R1": 2, "R2": 3},
		"B": {"X": 1},
	}
	cur := export.Dict{
		"A": {"R0": 1, "R1": 5, "R3": 4},
		"C": {"Y": 1},
	}
	want := []Change{
		{Kind: Renumbered, Arch: "A", Name: "R1", Old: 2, New: 5},
		{Kind: Removed, Arch: "A", Name: "R2", Old: 3},
		{Kind: Added, Arch: "A", Name: "R3", New: 4},
		{Kind: Disabled, Arch: "B"},
		{Kind: Added, Arch: "C", Name: "Y", New: 1},
	}
	got := Compare(old, cur)
	assert.Equal(t, want, got)
	assert.True(t, Breaking(got))
}

func TestCompareAdditiveOnly(t *testing.T) {
	old := export.Dict{"A": {"R0": 1}}
	cur := export.Dict{"A": {"R0": 1, "R1": 2}, "B": {"X": 1}}
	changes := Compare(old, cur)
	assert.Len(t, changes, 2)
	assert.False(t, Breaking(changes))

	assert.Empty(t, Compare(cur, cur))
}

func TestDisabledIsNotBreaking(t *testing.T) {
	changes := Compare(export.Dict{"RV64": {"X1": 1}}, export.Dict{})
	require.Len(t, changes, 1)
	assert.Equal(t, Disabled, changes[0].Kind)
	assert.False(t, Breaking(changes))
}

func TestChangeString(t *testing.T) {
	assert.Equal(t, "renumbered A.R1 2 -> 5", Change{Kind: Renumbered, Arch: "A", Name: "R1", Old: 2, New: 5}.String())
	assert.Equal(t, "disabled B", Change{Kind: Disabled, Arch: "B"}.String())
}

func TestIdenticalAndReport(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	var a bytes.Buffer
	require.NoError(t, export.WriteJSON(&a, c))

	compact := []byte(`{"TOY":{"AL":1,"AH":2}}`)
	spaced := []byte("{\n  \"TOY\": {\"AH\": 2, \"AL\": 1}\n}")
	assert.True(t, Identical(compact, spaced))
	assert.True(t, Identical(a.Bytes(), a.Bytes()))
	assert.False(t, Identical(compact, []byte(`{"TOY":{"AL":1,"AH":3}}`)))

	r, err := Report(compact, spaced, false)
	require.NoError(t, err)
	assert.Empty(t, r)

	r, err = Report(compact, []byte(`{"TOY":{"AL":1,"AH":3}}`), false)
	require.NoError(t, err)
	assert.Contains(t, r, "AH")

	_, err = Report([]byte("{"), compact, false)
	assert.Error(t, err)
}

func TestLedgerRecordAndCheck(t *testing.T) {
	l, err := OpenLedger("")
	require.NoError(t, err)
	defer l.Close()

	gen, err := l.Generation()
	require.NoError(t, err)
	assert.Zero(t, gen)
	_, ok, err := l.LastFingerprint()
	require.NoError(t, err)
	assert.False(t, ok)

	v1 := toyCatalog(t, reg("AL", 1), reg("AH", 2))
	added, err := l.Record(v1)
	require.NoError(t, err)
	assert.Len(t, added, 2)
	fp, ok, err := l.LastFingerprint()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, FingerprintOf(export.Build(v1)), fp)

	// A later build adds a register and drops one.
	v2 := toyCatalog(t, reg("AL", 1), reg("BL", 3))
	changes, err := l.Check(v2)
	require.NoError(t, err)
	assert.Equal(t, []Change{
		{Kind: Removed, Arch: "TOY", Name: "AH", Old: 2},
		{Kind: Added, Arch: "TOY", Name: "BL", New: 3},
	}, changes)

	added, err = l.Record(v2)
	require.NoError(t, err)
	assert.Equal(t, []Change{{Kind: Added, Arch: "TOY", Name: "BL", New: 3}}, added)

	gen, err = l.Generation()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), gen)

	d, err := l.Dict()
	require.NoError(t, err)
	assert.Equal(t, export.Dict{"TOY": {"AL": 1, "AH": 2, "BL": 3}}, d)
}

func TestLedgerRejectsRenumbering(t *testing.T) {
	l, err := OpenLedger("")
	require.NoError(t, err)
	defer l.Close()

	_, err = l.Record(toyCatalog(t, reg("AL", 1)))
	require.NoError(t, err)

	_, err = l.Record(toyCatalog(t, reg("AL", 7), reg("AH", 2)))
	assert.ErrorIs(t, err, ErrBreaking)

	// Nothing from the rejected record is written.
	d, err := l.Dict()
	require.NoError(t, err)
	assert.Equal(t, export.Dict{"TOY": {"AL": 1}}, d)
	gen, err := l.Generation()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), gen)
}

func TestLedgerPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger")
	c, err := catalog.Default()
	require.NoError(t, err)

	l, err := OpenLedger(path)
	require.NoError(t, err)
	_, err = l.Record(c)
	require.NoError(t, err)
	require.NoError(t, l.Close())

	l, err = OpenLedger(path)
	require.NoError(t, err)
	defer l.Close()
	changes, err := l.Check(c)
	require.NoError(t, err)
	assert.Empty(t, changes)

	d, err := l.Dict()
	require.NoError(t, err)
	assert.Equal(t, export.Build(c), d)
}

func TestFingerprint(t *testing.T) {
	a := export.Dict{"A": {"R0": 1, "R1": 2}, "B": {"X": 1}}
	b := export.Dict{"B": {"X": 1}, "A": {"R1": 2, "R0": 1}}
	assert.Equal(t, FingerprintOf(a), FingerprintOf(b))
	assert.Len(t, FingerprintOf(a).String(), 64)

	b["A"]["R1"] = 3
	assert.NotEqual(t, FingerprintOf(a), FingerprintOf(b))

	// Moving a register between architectures changes the hash.
	c := export.Dict{"A": {"R0": 1}, "B": {"X": 1, "R1": 2}}
	assert.NotEqual(t, FingerprintOf(a), FingerprintOf(c))
}

func TestCompareReusedIdentifier(t *testing.T) {
	old := export.Dict{"A": {"OLD": 1, "R0": 2}}
	cur := export.Dict{"A": {"NEW": 1, "R0": 2}}
	changes := Compare(old, cur)
	assert.Equal(t, []Change{
		{Kind: Reused, Arch: "A", Name: "NEW", New: 1, Prev: "OLD"},
		{Kind: Removed, Arch: "A", Name: "OLD", Old: 1},
	}, changes)
	assert.True(t, Breaking(changes))
	assert.Equal(t, "reused A.NEW = 1 (was OLD)", changes[0].String())

	// Identifiers are scoped per architecture.
	changes = Compare(export.Dict{"A": {"OLD": 1}}, export.Dict{"A": {"OLD": 1}, "B": {"NEW": 1}})
	assert.Equal(t, []Change{{Kind: Added, Arch: "B", Name: "NEW", New: 1}}, changes)
}

func TestLedgerRejectsReusedIdentifier(t *testing.T) {
	l, err := OpenLedger("")
	require.NoError(t, err)
	defer l.Close()

	_, err = l.Record(toyCatalog(t, reg("OLD", 1)))
	require.NoError(t, err)

	// OLD is retired and NEW takes its identifier.
	_, err = l.Record(toyCatalog(t, reg("NEW", 1)))
	assert.ErrorIs(t, err, ErrBreaking)

	d, err := l.Dict()
	require.NoError(t, err)
	assert.Equal(t, export.Dict{"TOY": {"OLD": 1}}, d)

	// A retired identifier stays taken even after a clean record.
	_, err = l.Record(toyCatalog(t, reg("OTHER", 2)))
	require.NoError(t, err)
	_, err = l.Record(toyCatalog(t, reg("OTHER", 2), reg("NEW", 1)))
	assert.ErrorIs(t, err, ErrBreaking)
}
