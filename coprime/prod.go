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

// Prod computes the product of arr[from..to] (inclusive) into dst.
// Algorithm 14.1. The recursion is deliberately balanced -- it splits
// the range in half rather than peeling off one element at a time --
// so that the resulting product tree has logarithmic depth, the same
// shape the rest of the package relies on.
func Prod(pool *bigint.Pool, dst *bigint.Int, arr *bigint.Array, from, to int) {
	n := to - from
	if n == 0 {
		dst.Set(arr.At(from))
		return
	}
	x := pool.Acquire()
	Prod(pool, x, arr, from, to-n/2-1)

	y := pool.Acquire()
	Prod(pool, y, arr, to-n/2, to)

	dst.Mul(x, y)

	pool.Release(x)
	pool.Release(y)
}

// ArrayProd computes the product of every element of a, or 1 for an
// empty array (the identity of the free commutative monoid the
// package works in).
func ArrayProd(pool *bigint.Pool, dst *bigint.Int, a *bigint.Array) {
	if a.Len() > 0 {
		Prod(pool, dst, a, 0, a.Len()-1)
	} else {
		dst.Set(bigint.ONE)
	}
}
