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

// Split distributes a's ppi-parts across p[from..to], appending one
// result per element of p to out, in order. Algorithm 15.3.
func Split(pool *bigint.Pool, out *bigint.Array, a *bigint.Int, p *bigint.Array, from, to int) {
	n := to - from

	x := pool.Acquire()
	b := pool.Acquire()
	Prod(pool, x, p, from, to)
	Ppi(pool, b, a, x)
	pool.Release(x)

	if n == 0 {
		out.Append(bigint.New().Set(b))
		pool.Release(b)
		return
	}

	Split(pool, out, b, p, from, to-n/2-1)
	Split(pool, out, b, p, to-n/2, to)

	pool.Release(b)
}

// ArraySplit splits a across the whole of p. An empty p is a
// caller error: it is reported at logger.WARN and out is left
// untouched.
func ArraySplit(pool *bigint.Pool, out *bigint.Array, a *bigint.Int, p *bigint.Array) {
	if p.Len() == 0 {
		logger.Println(logger.WARN, "split on an empty base")
		return
	}
	Split(pool, out, a, p, 0, p.Len()-1)
}
