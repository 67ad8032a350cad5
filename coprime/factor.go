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

// Factor is a non-trivial factorization (a = p*q) that FindFactor
// discovered while reducing a value over a coprime base element it
// does not equal outright.
type Factor struct {
	A *bigint.Int // the original value being factored
	P *bigint.Int // the base element dividing A
	Q *bigint.Int // A / P
}

// FactorList is a growable, ordered collection of discovered factors.
// It is the output sink FindFactor and FindFactors append to.
type FactorList struct {
	items []Factor
}

// NewFactorList creates an empty FactorList.
func NewFactorList() *FactorList {
	return &FactorList{}
}

// Append records a newly discovered (a, p, q) triple.
func (f *FactorList) Append(a, p, q *bigint.Int) {
	f.items = append(f.items, Factor{A: a, P: p, Q: q})
}

// Items returns the recorded factors, in discovery order.
func (f *FactorList) Items() []Factor {
	return f.items
}

// Len reports how many factors have been recorded.
func (f *FactorList) Len() int {
	return len(f.items)
}
