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

// TwoPower sets dst = x^(2^n) by repeated squaring and returns dst.
// Algorithm 10.1. n is a small machine count (recursion depth), not an
// arbitrary-precision value.
func TwoPower(dst, x *bigint.Int, n uint64) *bigint.Int {
	dst.Set(x)
	for i := uint64(0); i < n; i++ {
		dst.Mul(dst, dst)
	}
	return dst
}
