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

package rsacorpus

import "github.com/mawi12345/copri/bigint"

// Fixed RSA-shaped moduli reused across scan tests: 10403=101*103 and
// 10807=101*107 share the prime 101, while 143=11*13 and 323=17*19
// are mutually coprime with everything else here.
func bigint10403() *bigint.Int { return bigint.NewInt(10403) }
func bigint10807() *bigint.Int { return bigint.NewInt(10807) }
func bigint143() *bigint.Int   { return bigint.NewInt(143) }
func bigint323() *bigint.Int   { return bigint.NewInt(323) }
