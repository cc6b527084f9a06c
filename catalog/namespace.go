// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"

	"github.com/aclements/go-regcat/arch"
	"github.com/aclements/go-regcat/regspec"
)

// A Namespace maps the canonical register names of one architecture
// to their identifiers. It is read-only once built.
type Namespace struct {
	arch *arch.Arch

	// entries holds the published entries in insertion order:
	// general registers first, then system registers.
	entries []regspec.Entry
	byName  map[string]int
	byID    map[regspec.ID]int
}

// Build constructs the namespace of variant v. Entries of v.Table that
// v does not accept are skipped; system entries are merged into the
// same namespace as general entries.
func Build(v regspec.Variant) (*Namespace, error) {
	if err := v.Table.Validate(); err != nil {
		return nil, fmt.Errorf("building %s: %w", v.Arch, err)
	}
	ns := &Namespace{
		arch:   v.Arch,
		byName: make(map[string]int),
		byID:   make(map[regspec.ID]int),
	}
	for _, e := range v.Table.All() {
		if !v.Available(e) {
			continue
		}
		ns.byName[e.Name] = len(ns.entries)
		ns.byID[e.ID] = len(ns.entries)
		ns.entries = append(ns.entries, e)
	}
	return ns, nil
}

// Arch returns the architecture ns describes.
func (ns *Namespace) Arch() *arch.Arch {
	return ns.arch
}

// Len returns the number of registers in ns.
func (ns *Namespace) Len() int {
	return len(ns.entries)
}

// Lookup returns the identifier of the register called name. Names are
// case-sensitive. If ns has no such register, the error wraps
// ErrRegisterNotFound.
func (ns *Namespace) Lookup(name string) (regspec.ID, error) {
	i, ok := ns.byName[name]
	if !ok {
		return regspec.Invalid, fmt.Errorf("%s: %q: %w", ns.arch, name, ErrRegisterNotFound)
	}
	return ns.entries[i].ID, nil
}

// Name returns the canonical name of the register identified by id.
func (ns *Namespace) Name(id regspec.ID) (string, bool) {
	i, ok := ns.byID[id]
	if !ok {
		return "", false
	}
	return ns.entries[i].Name, true
}

// Entry returns the specification entry behind name.
func (ns *Namespace) Entry(name string) (regspec.Entry, bool) {
	i, ok := ns.byName[name]
	if !ok {
		return regspec.Entry{}, false
	}
	return ns.entries[i], true
}

// Names returns the register names of ns in insertion order.
func (ns *Namespace) Names() []string {
	out := make([]string, len(ns.entries))
	for i, e := range ns.entries {
		out[i] = e.Name
	}
	return out
}

// Entries returns a copy of the published entries in insertion order.
func (ns *Namespace) Entries() []regspec.Entry {
	return append([]regspec.Entry(nil), ns.entries...)
}

// Map returns a fresh name to identifier map.
func (ns *Namespace) Map() map[string]regspec.ID {
	out := make(map[string]regspec.ID, len(ns.entries))
	for _, e := range ns.entries {
		out[e.Name] = e.ID
	}
	return out
}
