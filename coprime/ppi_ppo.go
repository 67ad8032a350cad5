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

// GCDPpiPpo computes, for a and b:
//
//	gcd = gcd(a,b)
//	ppi = the part of a built from primes that also divide b
//	ppo = a / ppi, the part of a built from primes that do not divide b
//
// Algorithm 11.3. gcd, ppi and ppo must be distinct from a and b and
// from each other; they are the out-parameters.
func GCDPpiPpo(pool *bigint.Pool, gcd, ppi, ppo, a, b *bigint.Int) {
	g := pool.Acquire()
	ppi.GCD(a, b)
	gcd.Set(ppi)
	ppo.FloorDivQ(a, ppi)
	for {
		g.GCD(ppi, ppo)
		if g.CmpUint(1) == 0 {
			pool.Release(g)
			return
		}
		ppi.Mul(ppi, g)
		ppo.FloorDivQ(ppo, g)
	}
}

// PpiPpo computes ppi and ppo for a and c, discarding the gcd.
func PpiPpo(pool *bigint.Pool, ppi, ppo, a, c *bigint.Int) {
	gcd := pool.Acquire()
	GCDPpiPpo(pool, gcd, ppi, ppo, a, c)
	pool.Release(gcd)
}

// Ppi computes only ppi(a,c), discarding gcd and ppo.
func Ppi(pool *bigint.Pool, ppi, a, c *bigint.Int) {
	gcd := pool.Acquire()
	ppo := pool.Acquire()
	GCDPpiPpo(pool, gcd, ppi, ppo, a, c)
	pool.Release(gcd)
	pool.Release(ppo)
}
