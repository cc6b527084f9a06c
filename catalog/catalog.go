// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog builds the per-architecture register namespaces from
// the specification tables in package regspec.
//
// A Catalog is built once, all at once, and is immutable afterwards.
// It never contains a partially built namespace: if any table has a
// configuration error, New returns no catalog at all.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/aclements/go-regcat/internal/log"
	"github.com/aclements/go-regcat/regspec"
)

// Lookup errors.
var (
	ErrArchNotFound     = errors.New("architecture not supported in this build")
	ErrRegisterNotFound = errors.New("register not found")
)

// ErrDuplicateArch is a configuration error: two variants publish
// under the same label.
var ErrDuplicateArch = errors.New("architecture label published twice")

// A Catalog maps architecture labels to register namespaces.
type Catalog struct {
	spaces map[string]*Namespace
	labels []string
}

// New builds a catalog containing every variant of the given families.
// Namespaces are built concurrently; the catalog is assembled only
// after all of them succeed.
func New(families ...*regspec.Family) (*Catalog, error) {
	var variants []regspec.Variant
	for _, f := range families {
		variants = append(variants, f.Variants...)
	}

	built := make([]*Namespace, len(variants))
	var g errgroup.Group
	for i, v := range variants {
		g.Go(func() error {
			ns, err := Build(v)
			if err != nil {
				return err
			}
			built[i] = ns
			log.Debug(log.Catalog, "built namespace", "arch", v.Arch, "registers", ns.Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Catalog{spaces: make(map[string]*Namespace, len(built))}
	for _, ns := range built {
		label := ns.arch.Label
		if _, dup := c.spaces[label]; dup {
			return nil, fmt.Errorf("%s: %w", label, ErrDuplicateArch)
		}
		c.spaces[label] = ns
		c.labels = append(c.labels, label)
	}
	sort.Strings(c.labels)
	log.Info(log.Catalog, "catalog ready", "architectures", len(c.labels))
	return c, nil
}

// Default builds a catalog of every family compiled into this binary.
func Default() (*Catalog, error) {
	return New(regspec.Families()...)
}

// Labels returns the architecture labels in c, sorted.
func (c *Catalog) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Has reports whether c publishes a namespace for label.
func (c *Catalog) Has(label string) bool {
	_, ok := c.spaces[label]
	return ok
}

// Namespace returns the namespace published under label. A label from
// a family that was compiled out is reported as ErrArchNotFound, like
// any other unknown label.
func (c *Catalog) Namespace(label string) (*Namespace, error) {
	ns, ok := c.spaces[label]
	if !ok {
		return nil, fmt.Errorf("%q: %w", label, ErrArchNotFound)
	}
	return ns, nil
}

// Lookup resolves a register name within an architecture.
func (c *Catalog) Lookup(label, name string) (regspec.ID, error) {
	ns, err := c.Namespace(label)
	if err != nil {
		return regspec.Invalid, err
	}
	return ns.Lookup(name)
}
