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

// bitAt reports bit i of k (0 = least significant).
func bitAt(i, k int) bool {
	return k&(1<<uint(i)) != 0
}

// CBMerge computes cb(P ∪ Q), given that P and Q are each already
// coprime bases, appending the result to out. Algorithm 17.3.
//
// The construction walks the bits of each index k < #Q: at round i it
// partitions Q by bit i of k and folds each partition's product into
// the running base via CBExtend, so that after enough rounds to
// distinguish every index of Q the running base is coprime with every
// element of Q individually.
func CBMerge(pool *bigint.Pool, out *bigint.Array, p, q *bigint.Array) {
	n := q.Len()

	b := 0
	for x := 1; x < n; b++ {
		x <<= 1
	}
	if b == 0 {
		b = 1
	}

	s := bigint.NewArrayOf(p.Slice()...)
	x := pool.Acquire()

	for i := 0; i < b; i++ {
		r := bigint.NewArray()
		for k := 0; k < n; k++ {
			if !bitAt(i, k) {
				r.Append(q.At(k))
			}
		}
		ArrayProd(pool, x, r)
		t := bigint.NewArray()
		CBExtend(pool, t, s, x)

		r = bigint.NewArray()
		for k := 0; k < n; k++ {
			if bitAt(i, k) {
				r.Append(q.At(k))
			}
		}
		ArrayProd(pool, x, r)
		s = bigint.NewArray()
		CBExtend(pool, s, t, x)
	}

	pool.Release(x)
	out.AppendArray(s)
}
