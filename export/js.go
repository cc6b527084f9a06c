// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/internal/log"
)

// JS exports c into target, an object owned by rt. Every existing
// property of target is deleted first. Architectures are set in label
// order and registers in namespace order, so equal catalogs produce
// objects with identical key order. All architecture objects are built
// before target is touched.
func JS(rt *goja.Runtime, target *goja.Object, c *catalog.Catalog) error {
	labels := c.Labels()
	objs := make([]*goja.Object, len(labels))
	for i, label := range labels {
		ns, err := c.Namespace(label)
		if err != nil {
			return err
		}
		obj := rt.NewObject()
		for _, e := range ns.Entries() {
			if err := obj.Set(e.Name, uint32(e.ID)); err != nil {
				return fmt.Errorf("%s.%s: %w", label, e.Name, err)
			}
		}
		objs[i] = obj
	}

	for _, key := range target.Keys() {
		if err := target.Delete(key); err != nil {
			return fmt.Errorf("clearing %q: %w", key, err)
		}
	}
	for i, label := range labels {
		if err := target.Set(label, objs[i]); err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
	}
	log.Debug(log.Export, "exported catalog to script runtime", "architectures", len(labels))
	return nil
}

// Install exports c into the global object called name in rt, creating
// it if needed. Calling Install again resets the object in place, so
// scripts holding a reference to it observe the new content.
func Install(rt *goja.Runtime, name string, c *catalog.Catalog) (*goja.Object, error) {
	var target *goja.Object
	if v := rt.Get(name); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
		obj, ok := v.(*goja.Object)
		if !ok {
			return nil, fmt.Errorf("global %q is not an object", name)
		}
		target = obj
	} else {
		target = rt.NewObject()
		if err := rt.Set(name, target); err != nil {
			return nil, err
		}
	}
	if err := JS(rt, target, c); err != nil {
		return nil, err
	}
	return target, nil
}
