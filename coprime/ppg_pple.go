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

import "github.com/mawi12345/copri/bigint"

// GCDPpgPple computes, for a and b:
//
//	gcd  = gcd(a,b)
//	ppg  = the part of a whose prime powers strictly exceed those in b
//	pple = a / ppg, the part whose prime powers are <= those in b
//
// Algorithm 11.4. Structurally identical to GCDPpiPpo; the two differ
// only in which factor the gcd loop folds into and which starts from
// gcd(a,b) itself.
func GCDPpgPple(pool *bigint.Pool, gcd, ppg, pple, a, b *bigint.Int) {
	g := pool.Acquire()
	pple.GCD(a, b)
	gcd.Set(pple)
	ppg.FloorDivQ(a, pple)
	for {
		g.GCD(ppg, pple)
		if g.CmpUint(1) == 0 {
			pool.Release(g)
			return
		}
		ppg.Mul(ppg, g)
		pple.FloorDivQ(pple, g)
	}
}
