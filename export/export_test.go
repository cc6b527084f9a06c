// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/regspec"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func TestDictExportIdempotent(t *testing.T) {
	c := newCatalog(t)
	d := Dict{"STALE": {"GHOST": 7}}

	d.Export(c)
	first, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, d, "STALE")

	d.Export(c)
	second, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	fresh, err := json.Marshal(Build(c))
	require.NoError(t, err)
	assert.Equal(t, first, fresh)
}

func TestDictContent(t *testing.T) {
	c := newCatalog(t)
	d := Build(c)
	assert.Len(t, d, len(c.Labels()))

	id, ok := d.Lookup("X86_64", "ZMM1")
	require.True(t, ok)
	assert.Equal(t, uint32(regspec.X86_ZMM1), id)

	_, ok = d.Lookup("X86", "R8")
	assert.False(t, ok)
	_, ok = d.Lookup("MIPS", "R0")
	assert.False(t, ok)
}

func TestWriteJSON(t *testing.T) {
	c := newCatalog(t)
	var a, b bytes.Buffer
	require.NoError(t, WriteJSON(&a, c))
	require.NoError(t, WriteJSON(&b, c))
	assert.Equal(t, a.Bytes(), b.Bytes())

	var got Dict
	require.NoError(t, json.Unmarshal(a.Bytes(), &got))
	assert.Equal(t, Build(c), got)
}

func TestWriteYAML(t *testing.T) {
	c := newCatalog(t)
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, c))

	var got Dict
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Build(c), got)
}

func TestInstallJS(t *testing.T) {
	c := newCatalog(t)
	rt := goja.New()
	_, err := Install(rt, "REG", c)
	require.NoError(t, err)

	v, err := rt.RunString("REG.X86_64.AH")
	require.NoError(t, err)
	assert.Equal(t, int64(regspec.X86_AH), v.ToInteger())

	v, err = rt.RunString("REG.MIPS === undefined && REG.X86.RAX === undefined")
	require.NoError(t, err)
	assert.True(t, v.ToBoolean())

	_, err = rt.RunString("var saved = REG; REG.STALE = {X: 1};")
	require.NoError(t, err)

	_, err = Install(rt, "REG", c)
	require.NoError(t, err)
	v, err = rt.RunString("saved === REG && REG.STALE === undefined && REG.AARCH64.SCTLR_EL1 > 0")
	require.NoError(t, err)
	assert.True(t, v.ToBoolean())

	v, err = rt.RunString("Object.keys(REG).length")
	require.NoError(t, err)
	assert.Equal(t, int64(len(c.Labels())), v.ToInteger())
}

func TestInstallRejectsNonObject(t *testing.T) {
	c := newCatalog(t)
	rt := goja.New()
	_, err := rt.RunString("var REG = 42;")
	require.NoError(t, err)
	_, err = Install(rt, "REG", c)
	assert.Error(t, err)
}

func TestJSKeyOrderStable(t *testing.T) {
	c := newCatalog(t)
	stringify := func(rt *goja.Runtime) string {
		t.Helper()
		v, err := rt.RunString("JSON.stringify(REG)")
		require.NoError(t, err)
		return v.String()
	}

	rt := goja.New()
	_, err := Install(rt, "REG", c)
	require.NoError(t, err)
	first := stringify(rt)

	_, err = Install(rt, "REG", c)
	require.NoError(t, err)
	assert.Equal(t, first, stringify(rt))

	other := goja.New()
	_, err = Install(other, "REG", c)
	require.NoError(t, err)
	assert.Equal(t, first, stringify(other))

	v, err := rt.RunString("Object.keys(REG).join(',')")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(c.Labels(), ","), v.String())

	ns, err := c.Namespace("AARCH64")
	require.NoError(t, err)
	v, err = rt.RunString("Object.keys(REG.AARCH64)")
	require.NoError(t, err)
	var keys []string
	require.NoError(t, rt.ExportTo(v, &keys))
	require.NotEmpty(t, keys)
	assert.Equal(t, "X0", keys[0])
	assert.Equal(t, ns.Names(), keys)
}

func TestJSFailureKeepsPreviousContent(t *testing.T) {
	c := newCatalog(t)
	rt := goja.New()
	_, err := Install(rt, "REG", c)
	require.NoError(t, err)
	_, err = rt.RunString("Object.freeze(REG)")
	require.NoError(t, err)

	_, err = Install(rt, "REG", c)
	assert.Error(t, err)

	v, err := rt.RunString("REG.X86_64.RAX")
	require.NoError(t, err)
	assert.Equal(t, int64(regspec.X86_RAX), v.ToInteger())
}
