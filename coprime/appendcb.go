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

// AppendCB appends cb({a,b}) -- the natural coprime base of the pair
// (a,b) -- to out. Algorithm 13.2. It is the workhorse the rest of the
// package builds on: cbextend and cbmerge both reduce to repeated
// calls of AppendCB on a running coprime set.
func AppendCB(pool *bigint.Pool, out *bigint.Array, a, b *bigint.Int) {
	if b.CmpUint(1) == 0 {
		if a.CmpUint(1) != 0 {
			appendCopy(out, a)
		}
		return
	}

	r := pool.Acquire()
	g := pool.Acquire()
	a1 := pool.Acquire()

	// a1 = ppi(a,b), r = ppo(a,b). a1 is used in place of a from here
	// on so that a itself, which may alias b's caller-visible value
	// elsewhere in the recursion, is never written through.
	PpiPpo(pool, a1, r, a, b)

	if r.CmpUint(1) != 0 {
		appendCopy(out, r)
	}

	h := pool.Acquire()
	c := pool.Acquire()
	GCDPpgPple(pool, g, h, c, a1, b)

	c0 := pool.Acquire().Set(c)
	x := pool.Acquire().Set(c0)

	n := uint64(1)

	b1 := pool.Acquire()
	b2 := pool.Acquire()
	d := pool.Acquire()
	y := pool.Acquire()

	for {
		b1.Mul(g, g)
		b2.Set(h)
		GCDPpgPple(pool, g, h, c, b2, b1)

		d.GCD(c, b)

		x.Mul(x, d)

		y.Set(d)
		TwoPower(y, y, n-1)

		b1.FloorDivQ(c, y)
		AppendCB(pool, out, b1, d)

		if h.CmpUint(1) == 0 {
			break
		}
		n++
	}

	b1.FloorDivQ(b, x)
	AppendCB(pool, out, b1, c0)

	pool.Release(r)
	pool.Release(g)
	pool.Release(h)
	pool.Release(c)
	pool.Release(c0)
	pool.Release(x)
	pool.Release(y)
	pool.Release(d)
	pool.Release(b1)
	pool.Release(b2)
	pool.Release(a1)
}

// appendCopy appends an independent copy of v to out. Arena slots are
// reused once released; a result array must never hold a pointer that
// some later Acquire() is about to overwrite.
func appendCopy(out *bigint.Array, v *bigint.Int) {
	out.Append(bigint.New().Set(v))
}
