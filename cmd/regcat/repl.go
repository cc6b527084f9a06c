// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dop251/goja"
	"github.com/spf13/cobra"

	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/export"
	"github.com/aclements/go-regcat/internal/log"
)

// globalName is the script global holding the exported catalog.
const globalName = "REG"

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Query the catalog from an interactive JavaScript prompt",
		Long: `Starts a JavaScript prompt with the catalog installed as the global
object REG, so REG.X86_64.RAX evaluates to the identifier of RAX.
lookup(label, name) resolves a register and throws if it is unknown.
Type .reload to re-export the catalog into REG and exit to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			vm, err := newVM(c, a.out)
			if err != nil {
				return err
			}

			history := ""
			if dir, err := os.UserCacheDir(); err == nil {
				history = filepath.Join(dir, "regcat_history")
			}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:      "regcat> ",
				HistoryFile: history,
				Stdout:      a.out,
				Stderr:      a.err,
			})
			if err != nil {
				return err
			}
			defer rl.Close()

			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				line = strings.TrimSpace(line)
				switch line {
				case "":
					continue
				case "exit":
					return nil
				case ".reload":
					if _, err := export.Install(vm, globalName, c); err != nil {
						fmt.Fprintln(a.out, "error:", err)
					}
					continue
				}
				out, err := eval(vm, line)
				if err != nil {
					fmt.Fprintln(a.out, "error:", err)
					continue
				}
				fmt.Fprintln(a.out, out)
			}
		},
	}
}

// newVM returns a runtime with c installed as REG and the helper
// functions defined.
func newVM(c *catalog.Catalog, out io.Writer) (*goja.Runtime, error) {
	vm := goja.New()
	if _, err := export.Install(vm, globalName, c); err != nil {
		return nil, err
	}
	err := vm.Set("lookup", func(label, name string) (uint32, error) {
		id, err := c.Lookup(label, name)
		return uint32(id), err
	})
	if err != nil {
		return nil, err
	}
	err = vm.Set("labels", func() []interface{} {
		var out []interface{}
		for _, label := range c.Labels() {
			out = append(out, label)
		}
		return out
	})
	if err != nil {
		return nil, err
	}
	err = vm.Set("print", func(args ...goja.Value) {
		for _, arg := range args {
			fmt.Fprintln(out, arg.Export())
		}
	})
	if err != nil {
		return nil, err
	}
	log.Debug(log.CLI, "script runtime ready", "global", globalName)
	return vm, nil
}

// eval runs one line of script. Objects are shown as JSON.
func eval(vm *goja.Runtime, src string) (string, error) {
	v, err := vm.RunString(src)
	if err != nil {
		return "", err
	}
	if v == nil || goja.IsUndefined(v) {
		return "undefined", nil
	}
	if _, ok := v.(*goja.Object); ok {
		b, err := json.Marshal(v.Export())
		if err != nil {
			return v.String(), nil
		}
		return string(b), nil
	}
	return v.String(), nil
}
