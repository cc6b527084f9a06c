// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/export"
	"github.com/aclements/go-regcat/internal/config"
	"github.com/aclements/go-regcat/regspec"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := config.Default()
	cfg.Color = false
	var out, errOut bytes.Buffer
	root := newRootCmd(cfg, &out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLookup(t *testing.T) {
	out, err := run(t, "lookup", "X86_64", "RAX")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, "lookup", "X86", "R8")
	assert.ErrorIs(t, err, catalog.ErrRegisterNotFound)

	_, err = run(t, "lookup", "MIPS", "R0")
	assert.ErrorIs(t, err, catalog.ErrArchNotFound)
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "ARM32")
	require.NoError(t, err)
	assert.Contains(t, out, "ARM32 (87 registers)")
	assert.Contains(t, out, "] FPSCR")
}

func TestExport(t *testing.T) {
	out, err := run(t, "export")
	require.NoError(t, err)
	var d export.Dict
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, uint32(regspec.X86_ZMM1), d["X86_64"]["ZMM1"])

	out, err = run(t, "export", "--format", "yaml")
	require.NoError(t, err)
	var y export.Dict
	require.NoError(t, yaml.Unmarshal([]byte(out), &y))
	assert.Equal(t, d, y)

	_, err = run(t, "export", "--format", "xml")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	golden := filepath.Join(dir, "ids.json")
	_, err := run(t, "export", "--out", golden)
	require.NoError(t, err)

	out, err := run(t, "check", "--golden", golden)
	require.NoError(t, err)
	assert.Contains(t, out, "catalog matches")

	// A golden file missing a register is only out of date.
	var d export.Dict
	b, err := os.ReadFile(golden)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &d))
	delete(d["X86_64"], "ZMM31")
	writeJSON(t, golden, d)
	out, err = run(t, "check", "--golden", golden)
	require.NoError(t, err)
	assert.Contains(t, out, "added X86_64.ZMM31")

	// A renumbered register fails the check.
	d["X86_64"]["RAX"] = 9999
	writeJSON(t, golden, d)
	out, err = run(t, "check", "--golden", golden)
	assert.Error(t, err)
	assert.Contains(t, out, "renumbered X86_64.RAX 9999 -> 1")

	_, err = run(t, "check")
	assert.Error(t, err)
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))
}

func TestLedger(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ledger")
	out, err := run(t, "ledger", "record", "--db", db)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "generation 1: "), out)

	out, err = run(t, "ledger", "record", "--db", db)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "generation 2: 0 registers added, fingerprint "), out)

	out, err = run(t, "ledger", "check", "--db", db)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDisasm(t *testing.T) {
	out, err := run(t, "disasm", "--arch", "X86_64", "--pc", "0x1000", "4889d8 c3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0x1000\t"), lines[0])
	assert.Contains(t, lines[0], "RAX=1 RBX=2")
	assert.True(t, strings.HasPrefix(lines[1], "0x1003\t"), lines[1])

	_, err = run(t, "disasm", "--arch", "X86_64", "zz")
	assert.Error(t, err)
	_, err = run(t, "disasm", "--arch", "PDP11", "00")
	assert.Error(t, err)
}

func TestChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	_, err := run(t, "chart", "--out", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Register namespaces")
}

func TestEval(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	var printed bytes.Buffer
	vm, err := newVM(c, &printed)
	require.NoError(t, err)

	check := func(src, want string) {
		t.Helper()
		got, err := eval(vm, src)
		require.NoError(t, err, src)
		assert.Equal(t, want, got, src)
	}
	check("REG.X86_64.RAX", "1")
	check("lookup('X86_64', 'RBX')", "2")
	check("REG.X86.R8", "undefined")
	check("labels().indexOf('AARCH64') >= 0", "true")
	check("REG.ARM32.R0 === lookup('ARM32', 'R0')", "true")

	_, err = eval(vm, "lookup('X86', 'R8')")
	assert.Error(t, err)

	_, err = eval(vm, "print(REG.X86.EAX)")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", regspec.X86_EAX), printed.String())
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.yaml")
	out, err := run(t, "export", "--format", "yaml", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var d export.Dict
	require.NoError(t, yaml.Unmarshal(b, &d))
	assert.Equal(t, uint32(regspec.X86_RAX), d["X86_64"]["RAX"])

	_, err = run(t, "export", "-o", filepath.Join(t.TempDir(), "missing", "ids.json"))
	assert.Error(t, err)

	if _, err := os.Stat("/dev/full"); err == nil {
		_, err = run(t, "export", "-o", "/dev/full")
		assert.Error(t, err, "a failed write must fail the command")
	}
}
