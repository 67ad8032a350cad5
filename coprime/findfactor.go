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

// FindFactor attempts to factor a as a product of powers of
// p[from..to]. Algorithm 20.1.
//
// The boolean it returns is not a plain success flag: it is false
// both when a genuinely fails to factor over the given range, and
// when the base case discovers and emits a non-trivial split of a0
// (a0 != p[from] even though a reduces cleanly against it). In the
// latter case the discovery itself is the useful result; callers
// interested in factors should read the triples FindFactor appends
// to out, not this return value. A discovery at one half also stops
// the other half from being explored for the same a0, which is why
// the recursive case short-circuits on failure exactly as the base
// case's "failure" can itself mean "found something".
//
// FindFactor does not check that the elements of p[from..to] divide
// a0; FindFactors narrows its base to the relevant elements before
// every call. Over a wider base, a leaf whose element does not divide
// a0 is reached with a = 1, which reduces cleanly, so a triple is
// emitted whose P does not divide A.
func FindFactor(pool *bigint.Pool, out *FactorList, a0, a *bigint.Int, p *bigint.Array, from, to int) bool {
	n := to - from

	if n == 0 {
		_, c := Reduce(pool, p.At(from), a)
		if c.CmpUint(1) != 0 {
			return false
		}
		if a0.Cmp(p.At(from)) != 0 {
			q := bigint.New().FloorDivQ(a0, p.At(from))
			out.Append(bigint.New().Set(a0), bigint.New().Set(p.At(from)), q)
			return false
		}
		return true
	}

	y := pool.Acquire()
	Prod(pool, y, p, from, to-n/2-1)

	b := pool.Acquire()
	c := pool.Acquire()
	PpiPpo(pool, b, c, a, y)
	pool.Release(y)

	ok := FindFactor(pool, out, a0, b, p, from, to-n/2-1)
	if ok {
		ok = FindFactor(pool, out, a0, c, p, to-n/2, to)
	}

	pool.Release(b)
	pool.Release(c)
	return ok
}

// ArrayFindFactor factors a over the whole of p. An empty p is a
// caller error: it is reported at logger.WARN and reported as a
// failure.
func ArrayFindFactor(pool *bigint.Pool, out *FactorList, a *bigint.Int, p *bigint.Array) bool {
	if p.Len() == 0 {
		logger.Println(logger.WARN, "find_factor on an empty base")
		return false
	}
	return FindFactor(pool, out, a, a, p, 0, p.Len()-1)
}
