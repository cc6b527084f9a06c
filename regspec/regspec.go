// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regspec holds the register specification tables of every
// supported architecture family.
//
// Each family owns one identifier domain: a const block of ID values
// declared next to its table. Identifiers are append-only. Changing
// the value of an existing constant invalidates every persisted
// analysis result that embeds it.
//
// Adding a register means adding a constant and a table row; no logic
// changes. Families register themselves from init, and optional
// families are compiled out with build tags (for example, -tags
// noriscv).
package regspec

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aclements/go-regcat/arch"
)

// An ID identifies a register within its family's domain. The zero ID
// is invalid in every domain.
type ID uint32

// Invalid is the zero ID. No table entry may use it.
const Invalid ID = 0

// Modes is the availability mask of an entry: the processor modes in
// which the register exists.
type Modes uint8

const (
	Mode32 Modes = 1 << iota
	Mode64
)

// Flags carry per-entry attributes that are opaque to the catalog.
type Flags uint8

const (
	// System marks privileged or system registers.
	System Flags = 1 << iota
	// Undecoded marks registers the decoding engine does not know.
	// They are still published.
	Undecoded
	// Bit marks single-bit flag registers.
	Bit
)

// Has reports whether f contains every flag in g.
func (f Flags) Has(g Flags) bool { return f&g == g }

// An Entry is one row of a specification table.
type Entry struct {
	Name string
	ID   ID

	// Parent, High and Low place the register in its widest
	// enclosing register. A top-level register is its own parent.
	Parent    ID
	High, Low uint16

	Modes Modes
	Flags Flags
}

// Width returns the width of e in bits.
func (e Entry) Width() int {
	return int(e.High) - int(e.Low) + 1
}

// A Table is the declarative register list of one family.
type Table struct {
	Family arch.Family

	// Entries are the ordinary registers, in declaration order.
	Entries []Entry

	// System holds privileged registers kept in a separate sub-table.
	// They are published in the same namespace as Entries.
	System []Entry
}

// All returns the general entries followed by the system entries.
func (t *Table) All() []Entry {
	out := make([]Entry, 0, len(t.Entries)+len(t.System))
	out = append(out, t.Entries...)
	return append(out, t.System...)
}

// Configuration errors. A table with any of these must not be
// published.
var (
	ErrMissingID     = errors.New("register has no assigned identifier")
	ErrDuplicateName = errors.New("duplicate register name")
	ErrDuplicateID   = errors.New("identifier assigned to more than one register")
)

// Validate checks t for configuration errors. Unavailable entries are
// checked too, since they reserve their name and identifier.
func (t *Table) Validate() error {
	var errs []error
	names := make(map[string]ID)
	ids := make(map[ID]string)
	for _, e := range t.All() {
		if e.ID == Invalid {
			errs = append(errs, fmt.Errorf("%s: %s: %w", t.Family, e.Name, ErrMissingID))
			continue
		}
		if prev, ok := names[e.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: %s (ids %d and %d): %w", t.Family, e.Name, prev, e.ID, ErrDuplicateName))
		}
		if prev, ok := ids[e.ID]; ok && prev != e.Name {
			errs = append(errs, fmt.Errorf("%s: id %d (%s and %s): %w", t.Family, e.ID, prev, e.Name, ErrDuplicateID))
		}
		names[e.Name] = e.ID
		ids[e.ID] = e.Name
	}
	return errors.Join(errs...)
}

// Assign returns the identifier pre-assigned to name in t.
func Assign(t *Table, name string) (ID, bool) {
	for _, e := range t.Entries {
		if e.Name == name {
			return e.ID, e.ID != Invalid
		}
	}
	for _, e := range t.System {
		if e.Name == name {
			return e.ID, e.ID != Invalid
		}
	}
	return Invalid, false
}

// A Variant is one architecture built from a table. Variants that
// share a table differ only in which modes they accept, so a variant
// accepting a superset of modes always publishes a superset of
// registers.
type Variant struct {
	Arch   *arch.Arch
	Table  *Table
	Accept Modes
}

// Available reports whether e is materialized in v.
func (v Variant) Available(e Entry) bool {
	return e.Modes&v.Accept != 0
}

// A Family groups the architecture variants that are compiled in or
// out together.
type Family struct {
	Name     arch.Family
	Variants []Variant

	// Optional families can be compiled out.
	Optional bool
}

var (
	familiesMu sync.Mutex
	families   = map[arch.Family]*Family{}
)

// Register makes f available to the catalog. It is meant to be called
// from init and panics if a family with the same name is already
// registered.
func Register(f *Family) {
	familiesMu.Lock()
	defer familiesMu.Unlock()
	if _, dup := families[f.Name]; dup {
		panic("regspec: family registered twice: " + string(f.Name))
	}
	families[f.Name] = f
}

// Families returns every compiled-in family ordered by name.
func Families() []*Family {
	familiesMu.Lock()
	defer familiesMu.Unlock()
	out := make([]*Family, 0, len(families))
	for _, f := range families {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupFamily returns the registered family called name.
func LookupFamily(name arch.Family) (*Family, bool) {
	familiesMu.Lock()
	defer familiesMu.Unlock()
	f, ok := families[name]
	return f, ok
}
