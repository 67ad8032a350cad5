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
	"fmt"

	"github.com/mawi12345/copri/bigint"
)

// CBExtend computes cb(P ∪ {b}) given that P is already a coprime
// base, appending the result to out. Algorithm 16.2.
//
// An empty P is handled as an early return: b itself (if not 1) is
// the whole answer, and there is nothing left to split or extend.
func CBExtend(pool *bigint.Pool, out *bigint.Array, p *bigint.Array, b *bigint.Int) {
	if p.Len() == 0 {
		if b.CmpUint(1) != 0 {
			appendCopy(out, b)
		}
		return
	}

	x := pool.Acquire()
	ArrayProd(pool, x, p)

	a := pool.Acquire()
	r := pool.Acquire()
	PpiPpo(pool, a, r, b, x)
	pool.Release(x)

	if r.CmpUint(1) != 0 {
		appendCopy(out, r)
	}
	pool.Release(r)

	s := bigint.NewArray()
	ArraySplit(pool, s, a, p)
	pool.Release(a)

	if p.Len() != s.Len() {
		panic(fmt.Sprintf("coprime: cbextend invariant violated: len(p)=%d len(split)=%d", p.Len(), s.Len()))
	}
	for i := 0; i < p.Len(); i++ {
		AppendCB(pool, out, p.At(i), s.At(i))
	}
}
