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

func TestTwoPowerMatchesNaiveSquaring(t *testing.T) {
	cases := []struct {
		x int64
		n uint64
	}{
		{2, 0}, {2, 1}, {2, 5}, {3, 4}, {7, 3},
	}
	for _, c := range cases {
		got := bigint.New()
		TwoPower(got, bigint.NewInt(c.x), c.n)

		want := bigint.NewInt(c.x)
		for i := uint64(0); i < c.n; i++ {
			want.Mul(want, want)
		}
		if got.Cmp(want) != 0 {
			t.Fatalf("TwoPower(%d, %d) = %v, want %v", c.x, c.n, got, want)
		}
	}
}

func TestTwoPowerAliasedOutput(t *testing.T) {
	x := bigint.NewInt(3)
	TwoPower(x, x, 3)
	if x.Cmp(bigint.NewInt(6561)) != 0 {
		t.Fatalf("TwoPower(3,3) in place = %v, want 6561", x)
	}
}
