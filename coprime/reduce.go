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

// Reduce finds the exponent of p in a by repeated squaring of p
// instead of repeated division: it returns i and c such that
// a = p^i * c and p does not divide c. Algorithm 19.2.
//
// c is a freshly owned value, not a pool slot -- callers keep it
// after Reduce returns, the same as a FindFactor result.
func Reduce(pool *bigint.Pool, p, a *bigint.Int) (i uint64, c *bigint.Int) {
	r := pool.Acquire()
	r.FloorDivR(a, p)
	if r.CmpUint(0) != 0 {
		pool.Release(r)
		return 0, bigint.New().Set(a)
	}
	pool.Release(r)

	p2 := pool.Acquire().Mul(p, p)
	a2 := pool.Acquire().FloorDivQ(a, p)
	j, b := Reduce(pool, p2, a2)
	pool.Release(p2)
	pool.Release(a2)

	rr := pool.Acquire()
	rr.FloorDivR(b, p)
	if rr.CmpUint(0) == 0 {
		pool.Release(rr)
		return 2*j + 2, bigint.New().FloorDivQ(b, p)
	}
	pool.Release(rr)
	return 2*j + 1, b
}
