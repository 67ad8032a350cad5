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

// Package coprime computes the natural coprime base of a finite
// multiset of positive integers, following D.J. Bernstein's
// "Factoring into coprimes in essentially linear time". A coprime
// base B of a set S is a set of pairwise coprime integers greater
// than one such that every element of S is a product of powers of
// elements of B; the base computed here is the unique smallest such
// set (up to reordering), called the natural coprime base.
//
// The package works entirely on the concrete *bigint.Int / bigint.Array
// / bigint.Pool types. That narrowness is deliberate: every algorithm
// here is a tight recursion over a handful of scratch values, and the
// bigint package exists to give that recursion an arena to run in
// without round-tripping through the allocator on every step.
//
// Error handling follows two tracks. Degenerate input -- a zero value,
// an empty half produced by a split -- is not the caller's fault in
// the sense a type system could have prevented; it is logged at
// logger.WARN and the offending element is skipped rather than
// propagated as an error value. A violated invariant -- an internal
// computation that the algorithm's own correctness proof rules out,
// such as a split producing mismatched cardinalities -- is a
// programmer error and panics; see CBExtend's cardinality check.
package coprime
