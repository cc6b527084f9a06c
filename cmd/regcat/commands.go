// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aclements/go-regcat/arch"
	"github.com/aclements/go-regcat/asm"
	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/compat"
	"github.com/aclements/go-regcat/export"
	"github.com/aclements/go-regcat/internal/log"
	"github.com/aclements/go-regcat/report"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [LABEL...]",
		Short: "List published registers as a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			tree, err := report.Tree(c, args...)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, tree)
			return nil
		},
	}
}

func (a *app) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup LABEL NAME",
		Short: "Print the identifier of a register",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			id, err := c.Lookup(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, id)
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			write := export.WriteJSON
			switch format {
			case "json":
			case "yaml":
				write = export.WriteYAML
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			if out == "" {
				if err := write(a.out, c); err != nil {
					return err
				}
			} else {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := write(f, c); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
			}
			log.Info(log.CLI, "exported catalog", "format", format, "out", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format (json or yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	golden := a.cfg.Golden
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare the catalog against a golden JSON export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if golden == "" {
				return errors.New("no golden file: use --golden or REGCAT_GOLDEN")
			}
			c, err := a.load()
			if err != nil {
				return err
			}
			want, err := os.ReadFile(golden)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := export.WriteJSON(&buf, c); err != nil {
				return err
			}
			got := buf.Bytes()
			if compat.Identical(want, got) {
				fmt.Fprintf(a.out, "catalog matches %s\n", golden)
				return nil
			}

			var old export.Dict
			if err := json.Unmarshal(want, &old); err != nil {
				return fmt.Errorf("%s: %w", golden, err)
			}
			changes := compat.Compare(old, export.Build(c))
			for _, ch := range changes {
				fmt.Fprintln(a.out, ch)
			}
			diff, err := compat.Report(want, got, a.cfg.Color)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, diff)
			if compat.Breaking(changes) {
				return fmt.Errorf("%s: identifiers changed", golden)
			}
			fmt.Fprintf(a.out, "%s is out of date; no identifiers changed\n", golden)
			return nil
		},
	}
	cmd.Flags().StringVar(&golden, "golden", golden, "golden JSON export")
	return cmd
}

func (a *app) ledgerCmd() *cobra.Command {
	db := a.cfg.Ledger
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Record or check identifiers in a persistent ledger",
	}
	cmd.PersistentFlags().StringVar(&db, "db", db, "ledger database directory (default in-memory)")

	open := func() (*compat.Ledger, error) {
		if db == "" {
			log.Warn(log.CLI, "using an in-memory ledger; nothing will persist")
		}
		return compat.OpenLedger(db)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "record",
		Short: "Add the current identifiers to the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			l, err := open()
			if err != nil {
				return err
			}
			defer l.Close()
			added, err := l.Record(c)
			if err != nil {
				return err
			}
			gen, err := l.Generation()
			if err != nil {
				return err
			}
			fp, _, err := l.LastFingerprint()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "generation %d: %d registers added, fingerprint %s\n", gen, len(added), fp)
			return nil
		},
	}, &cobra.Command{
		Use:   "check",
		Short: "Report identifiers that differ from the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			l, err := open()
			if err != nil {
				return err
			}
			defer l.Close()
			changes, err := l.Check(c)
			if err != nil {
				return err
			}
			for _, ch := range changes {
				fmt.Fprintln(a.out, ch)
			}
			if compat.Breaking(changes) {
				return errors.New("ledger check failed: identifiers changed")
			}
			return nil
		},
	})
	return cmd
}

func (a *app) disasmCmd() *cobra.Command {
	var label, pcFlag string
	cmd := &cobra.Command{
		Use:   "disasm HEX",
		Short: "Disassemble machine code and resolve its registers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ar, ok := arch.Lookup(label)
			if !ok {
				return fmt.Errorf("unknown architecture %q", label)
			}
			pc, err := strconv.ParseUint(pcFlag, 0, 64)
			if err != nil {
				return fmt.Errorf("bad --pc: %w", err)
			}
			text, err := hex.DecodeString(strings.Join(strings.Fields(args[0]), ""))
			if err != nil {
				return fmt.Errorf("bad machine code: %w", err)
			}
			c, err := a.load()
			if err != nil {
				return err
			}
			ns, err := c.Namespace(label)
			if err != nil {
				return err
			}
			seq, err := asm.Disasm(ar, text, pc)
			if err != nil {
				return err
			}
			for i := 0; i < seq.Len(); i++ {
				inst := seq.Get(i)
				fmt.Fprintf(a.out, "%#x\t%-32s\t%s\n", inst.PC(), inst, formatRegs(ns, inst))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "arch", "X86_64", "architecture label")
	cmd.Flags().StringVar(&pcFlag, "pc", "0", "address of the first instruction")
	return cmd
}

// formatRegs lists the registers of inst with their identifiers. If
// any name is not published in ns, only the names are listed.
func formatRegs(ns *catalog.Namespace, inst asm.Inst) string {
	names := inst.Regs()
	ids, err := asm.Resolve(ns, inst)
	if err != nil {
		log.Debug(log.CLI, "unresolved registers", "inst", inst.String(), "err", err)
		return strings.Join(names, " ") + " (unresolved)"
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, ids[i])
	}
	return strings.Join(parts, " ")
}

func (a *app) chartCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write an HTML chart of namespace sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := report.WriteChart(f, c); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "regcat.html", "output file")
	return cmd
}
