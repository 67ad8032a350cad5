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

// Package bigint is the arbitrary-precision-integer backend consumed by
// the coprime package. It is intentionally narrow: construction,
// comparison, and a handful of in-place operations (Mul, FloorDivQ,
// FloorDivR, GCD, PowUI, Set) that all write their result into the
// receiver rather than allocating a new value. That mutate-in-place
// shape -- the same one math/big.Int itself uses -- is what lets the
// coprime package's arena reuse a small number of Int values across a
// deeply recursive call instead of allocating a new big.Int at every
// step.
//
// All operations here are defined on non-negative integers only; the
// library never receives or produces negative values.
package bigint

import (
	"crypto/rand"
	"math/big"
)

// Int is a mutable, arbitrary-precision, non-negative integer.
type Int struct {
	v *big.Int
}

// Read-only sentinels. They must never be used as the receiver (z) of
// a mutating method -- only ever as an operand (x or y) -- since every
// mutating method here writes through the receiver in place.
var (
	// ZERO as number "0"
	ZERO = NewInt(0)
	// ONE as number "1"
	ONE = NewInt(1)
	// TWO as number "2"
	TWO = NewInt(2)
)

// New returns a fresh, zero-valued Int. It is the constructor the
// arena uses when it has no released slot to recycle.
func New() *Int {
	return &Int{v: new(big.Int)}
}

// NewInt returns a new Int from an intrinsic int64.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromString converts a decimal string representation into an Int.
func NewIntFromString(s string) *Int {
	v := new(big.Int)
	if _, ok := v.SetString(s, 10); !ok {
		panic("bigint: not a valid decimal integer: " + s)
	}
	return &Int{v: v}
}

// NewIntFromBytes converts a big-endian byte array into an Int.
func NewIntFromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// NewIntRnd returns a new random value uniformly distributed in [0, upper).
// It is used by tests, never by the core algorithms themselves.
func NewIntRnd(upper *Int) *Int {
	r, err := rand.Int(rand.Reader, upper.v)
	if err != nil {
		panic(err)
	}
	return &Int{v: r}
}

// Set copies x into the receiver and returns it.
func (z *Int) Set(x *Int) *Int {
	z.v.Set(x.v)
	return z
}

// Mul sets z = x * y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	z.v.Mul(x.v, y.v)
	return z
}

// FloorDivQ sets z = floor(x / y) and returns z. x and y must be
// non-negative; under that restriction floor division and the
// truncated division math/big performs natively coincide.
func (z *Int) FloorDivQ(x, y *Int) *Int {
	z.v.Quo(x.v, y.v)
	return z
}

// FloorDivR sets z = x - y*floor(x/y) and returns z.
func (z *Int) FloorDivR(x, y *Int) *Int {
	z.v.Rem(x.v, y.v)
	return z
}

// GCD sets z = gcd(x, y) and returns z.
func (z *Int) GCD(x, y *Int) *Int {
	z.v.GCD(nil, nil, x.v, y.v)
	return z
}

// PowUI sets z = base^exp and returns z. It exists to compute powers
// of two (2^n) in cbmerge; base and exp are taken as machine words
// because that is all the algorithm ever needs.
func (z *Int) PowUI(base, exp uint64) *Int {
	b := new(big.Int).SetUint64(base)
	e := new(big.Int).SetUint64(exp)
	z.v.Exp(b, e, nil)
	return z
}

// Cmp compares the receiver to x: -1, 0 or +1.
func (z *Int) Cmp(x *Int) int {
	return z.v.Cmp(x.v)
}

// CmpUint compares the receiver to an intrinsic unsigned value.
func (z *Int) CmpUint(u uint64) int {
	return z.v.Cmp(new(big.Int).SetUint64(u))
}

// Equals reports whether the receiver and x denote the same integer.
func (z *Int) Equals(x *Int) bool {
	return z.v.Cmp(x.v) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of the receiver.
func (z *Int) Sign() int {
	return z.v.Sign()
}

// Bit returns the value of the bit at position i (0 = least significant).
func (z *Int) Bit(i int) uint {
	return z.v.Bit(i)
}

// BitLen returns the number of bits required to represent the receiver.
func (z *Int) BitLen() int {
	return z.v.BitLen()
}

// ProbablyPrime reports whether the receiver is prime, using n
// Miller-Rabin/Baillie-PSW rounds. The core algorithms do not call it
// and make no primality claim of their own (see Non-goals).
func (z *Int) ProbablyPrime(n int) bool {
	return z.v.ProbablyPrime(n)
}

// Bytes returns the big-endian byte representation of the receiver.
func (z *Int) Bytes() []byte {
	return z.v.Bytes()
}

// String renders the receiver in decimal.
func (z *Int) String() string {
	return z.v.String()
}
