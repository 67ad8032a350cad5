//----------------------------------------------------------------------
// This file is part of copri.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// copri is free software: you can redistribute it and/or modify it
// under the terms of the GNU Lesser General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// copri is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: LGPL-3.0-or-later
//----------------------------------------------------------------------

package rsacorpus

import (
	"testing"

	"github.com/mawi12345/copri/bigint"
	"github.com/mawi12345/copri/coprime"
)

func TestCorpusScanRevealsSharedFactor(t *testing.T) {
	c := NewCorpus()
	c.Add("alice", bigint.NewInt(10403)) // 101*103
	c.Add("bob", bigint.NewInt(10807))   // 101*107

	breaches := c.Scan(coprime.DefaultConfig())
	if len(breaches) != 2 {
		t.Fatalf("Scan found %d breaches, want 2: %+v", len(breaches), breaches)
	}
	byLabel := map[string]Breach{}
	for _, b := range breaches {
		byLabel[b.Label] = b
	}
	// Which of the two factors a breach names as P depends on the order
	// of the coprime base, which is not fixed.
	a, ok := byLabel["alice"]
	if !ok || !isFactorPair(a, 101, 103) {
		t.Fatalf("alice breach = %+v, want factors {101, 103}", a)
	}
	b, ok := byLabel["bob"]
	if !ok || !isFactorPair(b, 101, 107) {
		t.Fatalf("bob breach = %+v, want factors {101, 107}", b)
	}
	if a.Fingerprint == "" || a.Fingerprint == b.Fingerprint {
		t.Fatalf("expected distinct non-empty fingerprints, got %q and %q", a.Fingerprint, b.Fingerprint)
	}
}

// isFactorPair reports whether b's two factors are x and y, in either
// order.
func isFactorPair(b Breach, x, y int64) bool {
	bx, by := bigint.NewInt(x), bigint.NewInt(y)
	return (b.P.Cmp(bx) == 0 && b.Q.Cmp(by) == 0) || (b.P.Cmp(by) == 0 && b.Q.Cmp(bx) == 0)
}

func TestCorpusScanOfDisjointModuliFindsNothing(t *testing.T) {
	c := NewCorpus()
	c.Add("alice", bigint.NewInt(143)) // 11*13
	c.Add("bob", bigint.NewInt(323))   // 17*19

	breaches := c.Scan(coprime.DefaultConfig())
	if len(breaches) != 0 {
		t.Fatalf("Scan on disjoint moduli found %d breaches, want 0: %+v", len(breaches), breaches)
	}
}

func TestCorpusScanOfEmptyCorpus(t *testing.T) {
	c := NewCorpus()
	if breaches := c.Scan(coprime.DefaultConfig()); breaches != nil {
		t.Fatalf("Scan on empty corpus = %+v, want nil", breaches)
	}
}

func TestFingerprintStringIsStableAndSensitive(t *testing.T) {
	a := FingerprintString(bigint.NewInt(10403))
	b := FingerprintString(bigint.NewInt(10403))
	if a != b {
		t.Fatalf("fingerprint not stable: %q != %q", a, b)
	}
	c := FingerprintString(bigint.NewInt(10807))
	if a == c {
		t.Fatalf("fingerprint did not change with input")
	}
	if len(a) != 40 {
		t.Fatalf("fingerprint hex length = %d, want 40 (20-byte RIPEMD-160)", len(a))
	}
}
