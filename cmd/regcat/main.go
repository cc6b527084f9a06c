// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command regcat inspects and exports the register catalog.
//
// Settings come from the environment (REGCAT_LOG, REGCAT_LOG_MODULES,
// REGCAT_LEDGER, REGCAT_GOLDEN, NO_COLOR) and can be overridden with
// flags.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/internal/config"
	"github.com/aclements/go-regcat/internal/log"
)

func main() {
	if err := newRootCmd(config.FromEnv(), os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg      config.Config
	out, err io.Writer
	cat      *catalog.Catalog
}

// load builds the catalog on first use.
func (a *app) load() (*catalog.Catalog, error) {
	if a.cat != nil {
		return a.cat, nil
	}
	c, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	a.cat = c
	return c, nil
}

func newRootCmd(cfg config.Config, stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cfg, out: stdout, err: stderr}
	root := &cobra.Command{
		Use:          "regcat",
		Short:        "Architecture register catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(a.err, a.cfg.LogLevel); err != nil {
				return err
			}
			log.EnableModules(a.cfg.LogModules)
			log.Debug(log.CLI, "starting", "command", cmd.Name())
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log", a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.cfg.LogModules, "log-modules", a.cfg.LogModules, "comma-separated modules to log (default all)")
	root.PersistentFlags().BoolVar(&a.cfg.Color, "color", a.cfg.Color, "color diff output")

	root.AddCommand(
		a.listCmd(),
		a.lookupCmd(),
		a.exportCmd(),
		a.checkCmd(),
		a.ledgerCmd(),
		a.disasmCmd(),
		a.chartCmd(),
		a.replCmd(),
	)
	return root
}
