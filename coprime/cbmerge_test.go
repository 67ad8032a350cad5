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

package coprime

import (
	"testing"

	"github.com/mawi12345/copri/bigint"
)

func TestBitAt(t *testing.T) {
	cases := []struct {
		i, k int
		want bool
	}{
		{0, 1, true}, {0, 2, false}, {1, 2, true}, {1, 3, true}, {2, 4, true}, {2, 3, false},
	}
	for _, c := range cases {
		if got := bitAt(c.i, c.k); got != c.want {
			t.Fatalf("bitAt(%d,%d) = %v, want %v", c.i, c.k, got, c.want)
		}
	}
}

func TestCBMergeOfDisjointBases(t *testing.T) {
	p := bigint.NewArrayOf(bigint.NewInt(2), bigint.NewInt(3))
	q := bigint.NewArrayOf(bigint.NewInt(5), bigint.NewInt(7))
	out := bigint.NewArray()
	CBMerge(bigint.NewPool(), out, p, q)
	assertPairwiseCoprime(t, out)

	prod := bigint.New()
	ArrayProd(bigint.NewPool(), prod, out)
	if prod.Cmp(bigint.NewInt(2*3*5*7)) != 0 {
		t.Fatalf("prod(CBMerge({2,3},{5,7})) = %v, want 210", prod)
	}
}

func TestCBMergeOfOverlappingBases(t *testing.T) {
	// p and q each already a coprime base, but 6 and 10 share 2.
	p := bigint.NewArrayOf(bigint.NewInt(6))
	q := bigint.NewArrayOf(bigint.NewInt(10))
	out := bigint.NewArray()
	CBMerge(bigint.NewPool(), out, p, q)
	assertPairwiseCoprime(t, out)

	prod := bigint.New()
	ArrayProd(bigint.NewPool(), prod, out)
	for _, n := range []int64{6, 10} {
		g := bigint.New().GCD(prod, bigint.NewInt(n))
		if g.Cmp(bigint.NewInt(n)) != 0 {
			t.Fatalf("gcd(prod,%d) = %v, want %d", n, g, n)
		}
	}
}
