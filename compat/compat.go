// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compat checks that register identifiers stay stable across
// builds.
//
// Identifiers are persisted by consumers, so a register that was
// published must keep its identifier forever. Adding registers is
// always allowed. Removing or renumbering one is a breaking change.
package compat

import (
	"fmt"
	"sort"

	"github.com/aclements/go-regcat/export"
)

// A Kind classifies a Change.
type Kind uint8

const (
	// Added is a register new in the later export.
	Added Kind = iota + 1
	// Removed is a register missing from the later export.
	Removed
	// Renumbered is a register whose identifier changed.
	Renumbered
	// Disabled is an architecture not built into the later export.
	// Its registers are not reported individually.
	Disabled
	// Reused is a new register that took an identifier the earlier
	// export gave to a different register.
	Reused
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Renumbered:
		return "renumbered"
	case Disabled:
		return "disabled"
	case Reused:
		return "reused"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// A Change is one difference between two exports.
type Change struct {
	Kind Kind
	Arch string
	// Name is empty for Disabled.
	Name     string
	Old, New uint32
	// Prev is the earlier owner of the identifier of a Reused change.
	Prev string
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("%s %s.%s = %d", c.Kind, c.Arch, c.Name, c.New)
	case Removed:
		return fmt.Sprintf("%s %s.%s (was %d)", c.Kind, c.Arch, c.Name, c.Old)
	case Renumbered:
		return fmt.Sprintf("%s %s.%s %d -> %d", c.Kind, c.Arch, c.Name, c.Old, c.New)
	case Reused:
		return fmt.Sprintf("%s %s.%s = %d (was %s)", c.Kind, c.Arch, c.Name, c.New, c.Prev)
	}
	return fmt.Sprintf("%s %s", c.Kind, c.Arch)
}

// Compare returns the changes from before to after, ordered by
// architecture and then register name.
func Compare(before, after export.Dict) []Change {
	var out []Change
	for _, label := range sortedKeys(before, after) {
		oregs := before[label]
		nregs, ok := after[label]
		if !ok {
			out = append(out, Change{Kind: Disabled, Arch: label})
			continue
		}
		owner := make(map[uint32]string, len(oregs))
		for name, id := range oregs {
			owner[id] = name
		}
		for _, name := range sortedKeys(oregs, nregs) {
			o, inOld := oregs[name]
			n, inNew := nregs[name]
			switch {
			case !inNew:
				out = append(out, Change{Kind: Removed, Arch: label, Name: name, Old: o})
			case !inOld:
				if prev, taken := owner[n]; taken {
					out = append(out, Change{Kind: Reused, Arch: label, Name: name, New: n, Prev: prev})
					continue
				}
				out = append(out, Change{Kind: Added, Arch: label, Name: name, New: n})
			case o != n:
				out = append(out, Change{Kind: Renumbered, Arch: label, Name: name, Old: o, New: n})
			}
		}
	}
	return out
}

// Breaking reports whether changes removes, renumbers or reuses a
// register identifier.
func Breaking(changes []Change) bool {
	for _, c := range changes {
		if c.Kind == Removed || c.Kind == Renumbered || c.Kind == Reused {
			return true
		}
	}
	return false
}

func sortedKeys[V any](a, b map[string]V) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
