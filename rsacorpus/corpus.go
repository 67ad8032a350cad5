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

// Package rsacorpus applies the coprime package to a corpus of RSA
// moduli: it builds their natural coprime base and reports, for every
// modulus that does not already appear verbatim in the base, the two
// factors the base revealed -- which is exactly what it means for that
// modulus to share a prime with some other modulus in the corpus.
package rsacorpus

import (
	"fmt"

	"github.com/mawi12345/copri/bigint"
	"github.com/mawi12345/copri/coprime"
	"github.com/mawi12345/copri/logger"
)

// Modulus is one entry of a corpus: an RSA modulus together with the
// label its owner is known by (a key id, a certificate serial, ...).
type Modulus struct {
	Label string
	N     *bigint.Int
}

// Corpus is an ordered collection of moduli to be scanned jointly for
// shared prime factors.
type Corpus struct {
	entries []Modulus
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{}
}

// Add appends a labeled modulus to the corpus.
func (c *Corpus) Add(label string, n *bigint.Int) {
	c.entries = append(c.entries, Modulus{Label: label, N: n})
}

// Len returns the number of moduli in the corpus.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Entries returns the corpus' moduli in insertion order.
func (c *Corpus) Entries() []Modulus {
	return c.entries
}

// values collects the bare Int values of every entry, in order -- the
// shape coprime.CoprimeBase and coprime.ArrayFindFactors both consume.
func (c *Corpus) values() []*bigint.Int {
	out := make([]*bigint.Int, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.N
	}
	return out
}

// Breach names one modulus that was split by the corpus' coprime base,
// and the two factors the split revealed. The modulus is identified by
// its label and fingerprint rather than by its full value.
type Breach struct {
	Label       string
	Fingerprint string
	P, Q        *bigint.Int
}

// String renders a Breach for a scan report.
func (b Breach) String() string {
	return fmt.Sprintf("%s [%s]: p=%s q=%s", b.Label, b.Fingerprint, b.P, b.Q)
}

// Scan computes the corpus' natural coprime base and runs find_factors
// over it, sequentially. It is the direct, single-threaded baseline;
// ScanParallel and ScanSharded below trade it for concurrency.
func (c *Corpus) Scan(cfg coprime.Config) []Breach {
	if len(c.entries) == 0 {
		logger.Println(logger.WARN, "[rsacorpus] Scan called on an empty corpus")
		return nil
	}
	base := coprime.CoprimeBase(c.values(), cfg)
	out := coprime.NewFactorList()
	coprime.ArrayFindFactors(bigint.NewPool(), out, bigint.NewArrayOf(c.values()...), base)
	return c.breaches(out)
}

// breaches maps raw coprime.Factor triples back to the corpus entry
// they came from, by matching on the factored value. A corpus may in
// principle hold duplicate moduli; each is reported once per triple
// emitted for it, matched in entry order.
func (c *Corpus) breaches(out *coprime.FactorList) []Breach {
	used := make([]bool, len(c.entries))
	breaches := make([]Breach, 0, out.Len())
	for _, f := range out.Items() {
		for i, e := range c.entries {
			if used[i] || e.N.Cmp(f.A) != 0 {
				continue
			}
			used[i] = true
			breaches = append(breaches, Breach{
				Label:       e.Label,
				Fingerprint: FingerprintString(e.N),
				P:           f.P,
				Q:           f.Q,
			})
			break
		}
	}
	return breaches
}
