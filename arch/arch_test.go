// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import "testing"

func TestLookup(t *testing.T) {
	check := func(label string, want *Arch) {
		t.Helper()
		got, ok := Lookup(label)
		if want == nil {
			if ok {
				t.Errorf("Lookup(%q): want not found, got %v", label, got)
			}
			return
		}
		if !ok || got != want {
			t.Errorf("Lookup(%q): want %v, got %v (ok=%v)", label, want, got, ok)
		}
	}
	check("X86", X86)
	check("X86_64", X86_64)
	check("AARCH64", AARCH64)
	check("ARM32", ARM32)
	check("RV64", RV64)
	check("RV32", RV32)
	check("x86_64", nil)
	check("MIPS", nil)
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("want 6 architectures, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Label >= all[i].Label {
			t.Errorf("All not sorted: %s before %s", all[i-1], all[i])
		}
	}
}

func TestBits(t *testing.T) {
	check := func(a *Arch, want int) {
		t.Helper()
		if got := a.Bits(); got != want {
			t.Errorf("%s: want %d bits, got %d", a, want, got)
		}
	}
	check(X86, 32)
	check(X86_64, 64)
	check(AARCH64, 64)
	check(ARM32, 32)
	check(RV64, 64)
	check(RV32, 32)
}
