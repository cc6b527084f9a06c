// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetAll(t *testing.T) {
	for _, name := range []string{EnvLog, EnvLogModules, EnvLedger, EnvGolden, EnvNoColor} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	unsetAll(t)
	assert.Equal(t, Default(), FromEnv())
}

func TestFromEnvOverrides(t *testing.T) {
	unsetAll(t)
	t.Setenv(EnvLog, "debug")
	t.Setenv(EnvLogModules, "catalog,compat")
	t.Setenv(EnvLedger, "/tmp/ledger")
	t.Setenv(EnvGolden, "ids.json")
	t.Setenv(EnvNoColor, "1")

	cfg := FromEnv()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "catalog,compat", cfg.LogModules)
	assert.Equal(t, "/tmp/ledger", cfg.Ledger)
	assert.Equal(t, "ids.json", cfg.Golden)
	assert.False(t, cfg.Color)
}
