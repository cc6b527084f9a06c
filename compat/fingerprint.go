// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compat

import (
	"encoding/hex"
	"sort"

	"golang.org/x/crypto/blake2b"

	"github.com/aclements/go-regcat/export"
)

// A Fingerprint summarizes every (architecture, register, identifier)
// triple of an export.
type Fingerprint [blake2b.Size256]byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// FingerprintOf hashes d. Two exports have the same fingerprint exactly
// when they publish the same registers with the same identifiers.
func FingerprintOf(d export.Dict) Fingerprint {
	var buf []byte
	labels := make([]string, 0, len(d))
	for label := range d {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		regs := d[label]
		names := make([]string, 0, len(regs))
		for name := range regs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			buf = append(buf, label...)
			buf = append(buf, 0)
			buf = append(buf, name...)
			buf = append(buf, 0)
			buf = ledgerLayout.AppendUint32(buf, regs[name])
		}
	}
	return blake2b.Sum256(buf)
}
