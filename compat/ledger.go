// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compat

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/aclements/go-regcat/arch"
	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/export"
	"github.com/aclements/go-regcat/internal/log"
)

// ErrBreaking is returned by Ledger.Record when the catalog would
// renumber a register the ledger has seen or reuse one of its
// identifiers.
var ErrBreaking = errors.New("catalog changes a recorded identifier")

// Key layout:
//
//	r/<label>\x00<name> -> id (uint32)
//	g                   -> generation (uint64)
//	f                   -> fingerprint of the last recorded catalog
const (
	regPrefix = "r/"
	genKey    = "g"
	fpKey     = "f"
)

var ledgerLayout = arch.NewLayout(binary.LittleEndian, 8)

// A Ledger remembers every identifier ever published. Entries are
// never deleted, so a register dropped from the tables is still
// reported by Check.
type Ledger struct {
	db *leveldb.DB
}

// OpenLedger opens or creates the ledger database at path. An empty
// path opens an in-memory ledger.
func OpenLedger(path string) (*Ledger, error) {
	var db *leveldb.DB
	var err error
	if path == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %q: %w", path, err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Generation returns how many times Record has written to l.
func (l *Ledger) Generation() (uint64, error) {
	v, err := l.db.Get([]byte(genKey), nil)
	if err == leveldb.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return ledgerLayout.Uint64(v), nil
}

// LastFingerprint returns the fingerprint of the catalog passed to the
// most recent Record. ok is false if nothing was recorded.
func (l *Ledger) LastFingerprint() (fp Fingerprint, ok bool, err error) {
	v, err := l.db.Get([]byte(fpKey), nil)
	if err == leveldb.ErrNotFound {
		return fp, false, nil
	}
	if err != nil {
		return fp, false, err
	}
	if len(v) != len(fp) {
		return fp, false, fmt.Errorf("corrupt ledger fingerprint %x", v)
	}
	copy(fp[:], v)
	return fp, true, nil
}

// Dict returns the ledger content in export form.
func (l *Ledger) Dict() (export.Dict, error) {
	d := make(export.Dict)
	iter := l.db.NewIterator(util.BytesPrefix([]byte(regPrefix)), nil)
	defer iter.Release()
	for iter.Next() {
		key := strings.TrimPrefix(string(iter.Key()), regPrefix)
		label, name, ok := strings.Cut(key, "\x00")
		if !ok || len(iter.Value()) != 4 {
			return nil, fmt.Errorf("corrupt ledger entry %q", iter.Key())
		}
		if d[label] == nil {
			d[label] = make(map[string]uint32)
		}
		d[label][name] = ledgerLayout.Uint32(iter.Value())
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return d, nil
}

// Check compares the ledger against c. Registers in the ledger that c
// no longer publishes are reported as Removed.
func (l *Ledger) Check(c *catalog.Catalog) ([]Change, error) {
	old, err := l.Dict()
	if err != nil {
		return nil, err
	}
	changes := Compare(old, export.Build(c))
	log.Debug(log.Compat, "checked ledger", "changes", len(changes))
	return changes, nil
}

// Record adds the registers of c that are not in the ledger yet and
// bumps the generation. If c renumbers a recorded register, or gives a
// new register an identifier the ledger already assigned, Record
// writes nothing and returns ErrBreaking.
func (l *Ledger) Record(c *catalog.Catalog) ([]Change, error) {
	changes, err := l.Check(c)
	if err != nil {
		return nil, err
	}
	var added []Change
	batch := new(leveldb.Batch)
	for _, ch := range changes {
		switch ch.Kind {
		case Renumbered, Reused:
			return nil, fmt.Errorf("%s: %w", ch, ErrBreaking)
		case Added:
			batch.Put(regKey(ch.Arch, ch.Name), ledgerLayout.AppendUint32(nil, ch.New))
			added = append(added, ch)
		}
	}
	gen, err := l.Generation()
	if err != nil {
		return nil, err
	}
	fp := FingerprintOf(export.Build(c))
	batch.Put([]byte(genKey), ledgerLayout.AppendUint64(nil, gen+1))
	batch.Put([]byte(fpKey), fp[:])
	if err := l.db.Write(batch, nil); err != nil {
		return nil, fmt.Errorf("writing ledger: %w", err)
	}
	log.Info(log.Compat, "recorded catalog", "generation", gen+1, "added", len(added), "fingerprint", fp)
	return added, nil
}

func regKey(label, name string) []byte {
	return []byte(regPrefix + label + "\x00" + name)
}
