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
	"github.com/mawi12345/copri/bigint"
	"github.com/mawi12345/copri/logger"
)

// FindFactors factors every element of s[from..to] over p, appending
// any non-trivial split discovered to out. Algorithm 21.2.
//
// At each level it narrows p down to q, the subset of base elements
// whose every prime divides prod(s[from..to]), before recursing -- so the
// base passed to each leaf's FindFactor call shrinks along with the
// range of s it is responsible for.
func FindFactors(pool *bigint.Pool, out *FactorList, s *bigint.Array, from, to int, p *bigint.Array) {
	n := to - from

	x := pool.Acquire()
	ArrayProd(pool, x, p)

	y := pool.Acquire()
	Prod(pool, y, s, from, to)

	z := pool.Acquire()
	Ppi(pool, z, x, y)
	pool.Release(x)

	d := bigint.NewArray()
	ArraySplit(pool, d, z, p)
	pool.Release(z)

	q := bigint.NewArray()
	for i := 0; i < p.Len(); i++ {
		if d.At(i).Cmp(p.At(i)) == 0 {
			q.Append(p.At(i))
		}
	}

	if n == 0 {
		ArrayFindFactor(pool, out, y, q)
	} else {
		FindFactors(pool, out, s, from, to-n/2-1, q)
		FindFactors(pool, out, s, to-n/2, to, q)
	}

	pool.Release(y)
}

// ArrayFindFactors factors every element of s over p. An empty s is a
// caller error: it is reported at logger.WARN and out is left
// untouched.
func ArrayFindFactors(pool *bigint.Pool, out *FactorList, s, p *bigint.Array) {
	if s.Len() == 0 {
		logger.Println(logger.WARN, "find_factors on an empty set")
		return
	}
	FindFactors(pool, out, s, 0, s.Len()-1, p)
}
