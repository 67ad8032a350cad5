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

func TestArrayFindFactorExactBaseElement(t *testing.T) {
	// find_factor's base must already be narrowed to elements that
	// actually divide a (find_factors does this via split before
	// delegating to find_factor at the leaves); called directly on a
	// base element equal to a itself, it must succeed cleanly.
	p := bigint.NewArrayOf(bigint.NewInt(3))
	out := NewFactorList()
	ok := ArrayFindFactor(bigint.NewPool(), out, bigint.NewInt(3), p)
	if !ok {
		t.Fatal("find_factor(3, {3}) should succeed with no split")
	}
	if out.Len() != 0 {
		t.Fatalf("find_factor(3, {3}) emitted %d factors, want 0", out.Len())
	}
}

func TestArrayFindFactorDiscoversSplit(t *testing.T) {
	// 10403 = 101*103; the base is the natural coprime base of a
	// corpus where 101 is shared with another modulus, {101,103,107}.
	p := bigint.NewArrayOf(bigint.NewInt(101), bigint.NewInt(103), bigint.NewInt(107))
	out := NewFactorList()
	ok := ArrayFindFactor(bigint.NewPool(), out, bigint.NewInt(10403), p)
	if ok {
		t.Fatal("find_factor(10403,{101,103,107}) should report false: it found a split")
	}
	if out.Len() != 1 {
		t.Fatalf("find_factor(10403,{101,103,107}) emitted %d factors, want 1", out.Len())
	}
	f := out.Items()[0]
	if f.A.Cmp(bigint.NewInt(10403)) != 0 || f.P.Cmp(bigint.NewInt(101)) != 0 || f.Q.Cmp(bigint.NewInt(103)) != 0 {
		t.Fatalf("discovered factor = %+v, want (10403,101,103)", f)
	}
}

func TestArrayFindFactorOfMultiplePowersEmitsAtFirstLeaf(t *testing.T) {
	// a = 2^3 * 3^2, base {2,3}: a reduces cleanly at the very first
	// leaf reached (p=2), and since a0 != 2 that counts as a discovery
	// -- it emits (a0,2,a0/2) and, per the "else if" short-circuit,
	// never even looks at the second half (p=3).
	p := bigint.NewArrayOf(bigint.NewInt(2), bigint.NewInt(3))
	out := NewFactorList()
	ok := ArrayFindFactor(bigint.NewPool(), out, bigint.NewInt(8*9), p)
	if ok {
		t.Fatal("find_factor(72,{2,3}) should report false: it discovered a split")
	}
	if out.Len() != 1 {
		t.Fatalf("find_factor(72,{2,3}) emitted %d factors, want 1", out.Len())
	}
	f := out.Items()[0]
	if f.A.Cmp(bigint.NewInt(72)) != 0 || f.P.Cmp(bigint.NewInt(2)) != 0 || f.Q.Cmp(bigint.NewInt(36)) != 0 {
		t.Fatalf("discovered factor = %+v, want (72,2,36)", f)
	}
}
