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

import (
	"io"
	"math/big"

	cmath "github.com/cloudflare/circl/math"

	"github.com/mawi12345/copri/bigint"
)

// SafePrime draws a random safe prime p = 2p'+1 of the given bit
// length. It exists to build realistic RSA-modulus fixtures for tests
// and benchmarks; the core algorithms make no primality assumption of
// their own.
func SafePrime(random io.Reader, bits int) (*bigint.Int, error) {
	p, err := cmath.SafePrime(random, bits)
	if err != nil {
		return nil, err
	}
	return bigint.NewIntFromBytes(p.Bytes()), nil
}

// Modulus2 draws a fresh RSA modulus n = p*q of the given total bit
// length from two independent safe primes, and returns it alongside
// its two factors (for test assertions; a real corpus would never
// hold onto these).
func Modulus2(random io.Reader, bits int) (n, p, q *bigint.Int, err error) {
	pb, err := cmath.SafePrime(random, bits/2)
	if err != nil {
		return nil, nil, nil, err
	}
	var qb *big.Int
	nb := new(big.Int)
	for {
		qb, err = cmath.SafePrime(random, bits-pb.BitLen())
		if err != nil {
			return nil, nil, nil, err
		}
		if pb.Cmp(qb) == 0 {
			continue
		}
		nb.Mul(pb, qb)
		if nb.BitLen() == bits {
			break
		}
	}
	return bigint.NewIntFromBytes(nb.Bytes()),
		bigint.NewIntFromBytes(pb.Bytes()),
		bigint.NewIntFromBytes(qb.Bytes()),
		nil
}

// ModulusSharing draws a fresh RSA modulus n = shared*q', reusing the
// given shared prime factor -- the fixture shape a corpus scan is
// meant to catch.
func ModulusSharing(random io.Reader, shared *bigint.Int, bits int) (n *bigint.Int, err error) {
	qb, err := cmath.SafePrime(random, bits-shared.BitLen())
	if err != nil {
		return nil, err
	}
	sb := new(big.Int).SetBytes(shared.Bytes())
	nb := new(big.Int).Mul(sb, qb)
	return bigint.NewIntFromBytes(nb.Bytes()), nil
}
