// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export publishes a catalog in the two-level form consumers
// expect: namespace[architecture][register] = identifier.
//
// Every export first clears its destination, so exporting twice leaves
// the same content as exporting once, and nothing from an earlier
// export survives. Callers must not read a destination while it is
// being exported.
package export

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/internal/log"
)

// A Dict is the exported form of a catalog.
type Dict map[string]map[string]uint32

// Build returns a fresh Dict holding c.
func Build(c *catalog.Catalog) Dict {
	d := make(Dict)
	d.Export(c)
	return d
}

// Export replaces the contents of d with c. d must not be nil.
func (d Dict) Export(c *catalog.Catalog) {
	for label := range d {
		delete(d, label)
	}
	for _, label := range c.Labels() {
		ns, err := c.Namespace(label)
		if err != nil {
			// Labels only returns published labels.
			panic(err)
		}
		regs := make(map[string]uint32, ns.Len())
		for _, e := range ns.Entries() {
			regs[e.Name] = uint32(e.ID)
		}
		d[label] = regs
	}
	log.Debug(log.Export, "exported catalog", "architectures", len(d))
}

// Lookup returns the identifier of name in the label namespace of d.
func (d Dict) Lookup(label, name string) (uint32, bool) {
	regs, ok := d[label]
	if !ok {
		return 0, false
	}
	id, ok := regs[name]
	return id, ok
}

// WriteJSON writes c to w as an indented JSON object. Keys are sorted,
// so equal catalogs produce identical bytes.
func WriteJSON(w io.Writer, c *catalog.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Build(c))
}

// WriteYAML writes c to w as a YAML mapping with sorted keys.
func WriteYAML(w io.Writer, c *catalog.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Build(c)); err != nil {
		return err
	}
	return enc.Close()
}
