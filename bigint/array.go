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

package bigint

// Array is a dynamically growable, order-preserving sequence of Int.
// Order matters: split() and find_factor() rely on the element at
// index i of an output Array corresponding to the i-th element of the
// factor list it was built from.
type Array struct {
	data []*Int
}

// NewArray creates an empty Array.
func NewArray() *Array {
	return &Array{data: make([]*Int, 0)}
}

// NewArrayOf creates an Array from a fixed list of values, in order.
func NewArrayOf(vals ...*Int) *Array {
	a := &Array{data: make([]*Int, 0, len(vals))}
	a.data = append(a.data, vals...)
	return a
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return len(a.data)
}

// Append adds v to the end of the array.
func (a *Array) Append(v *Int) {
	a.data = append(a.data, v)
}

// AppendArray appends all elements of b to a, in order.
func (a *Array) AppendArray(b *Array) {
	a.data = append(a.data, b.data...)
}

// Clear empties the array in place without releasing its backing store.
func (a *Array) Clear() {
	a.data = a.data[:0]
}

// At returns the element at index i.
func (a *Array) At(i int) *Int {
	return a.data[i]
}

// Slice returns the array's backing slice. Callers must treat it as
// read-only; mutate the Array only through Append/AppendArray/Clear.
func (a *Array) Slice() []*Int {
	return a.data
}
