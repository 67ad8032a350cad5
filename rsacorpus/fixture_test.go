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
	"crypto/rand"
	"testing"

	"github.com/mawi12345/copri/bigint"
	"github.com/mawi12345/copri/coprime"
)

func TestModulus2FactorsMultiplyBackToN(t *testing.T) {
	n, p, q, err := Modulus2(rand.Reader, 48)
	if err != nil {
		t.Fatalf("Modulus2: %v", err)
	}
	if p.Cmp(q) == 0 {
		t.Fatal("Modulus2 returned equal factors")
	}
	check := bigint.New().Mul(p, q)
	if check.Cmp(n) != 0 {
		t.Fatalf("p*q = %v, want n = %v", check, n)
	}
}

func TestModulusSharingReusesGivenFactor(t *testing.T) {
	shared, err := SafePrime(rand.Reader, 24)
	if err != nil {
		t.Fatalf("SafePrime: %v", err)
	}
	n1, err := ModulusSharing(rand.Reader, shared, 48)
	if err != nil {
		t.Fatalf("ModulusSharing: %v", err)
	}
	n2, err := ModulusSharing(rand.Reader, shared, 48)
	if err != nil {
		t.Fatalf("ModulusSharing: %v", err)
	}

	c := NewCorpus()
	c.Add("n1", n1)
	c.Add("n2", n2)
	breaches := c.Scan(coprime.DefaultConfig())
	if len(breaches) != 2 {
		t.Fatalf("Scan of two moduli sharing a factor found %d breaches, want 2: %+v", len(breaches), breaches)
	}
	for _, b := range breaches {
		if b.P.Cmp(shared) != 0 && b.Q.Cmp(shared) != 0 {
			t.Fatalf("breach %+v does not mention the shared factor %v", b, shared)
		}
	}
}
