// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads the regcat settings from the environment.
// Command-line flags override them.
package config

import (
	"github.com/xyproto/env/v2"
)

// Environment variables.
const (
	EnvLog        = "REGCAT_LOG"
	EnvLogModules = "REGCAT_LOG_MODULES"
	EnvLedger     = "REGCAT_LEDGER"
	EnvGolden     = "REGCAT_GOLDEN"
	EnvNoColor    = "NO_COLOR"
)

// Config is the process-wide configuration.
type Config struct {
	// LogLevel is one of trace, debug, info, warn or error.
	LogLevel string
	// LogModules is a comma-separated module filter. Empty enables all.
	LogModules string
	// Ledger is the path of the identifier ledger database. Empty
	// means an in-memory ledger.
	Ledger string
	// Golden is the default baseline for the check command.
	Golden string
	// Color enables colored diff output.
	Color bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Color:    true,
	}
}

// FromEnv returns Default overridden by the environment.
func FromEnv() Config {
	d := Default()
	return Config{
		LogLevel:   env.Str(EnvLog, d.LogLevel),
		LogModules: env.Str(EnvLogModules, d.LogModules),
		Ledger:     env.Str(EnvLedger, d.Ledger),
		Golden:     env.Str(EnvGolden, d.Golden),
		Color:      d.Color && !env.Has(EnvNoColor),
	}
}
