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
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // matches the corpus' own RIPEMD-160(SHA-256(.)) convention

	"github.com/mawi12345/copri/bigint"
)

// Fingerprint computes RIPEMD-160(SHA-256(n)) over a modulus' big-endian
// bytes. Corpus reports name moduli by fingerprint rather than by their
// full decimal value.
func Fingerprint(n *bigint.Int) []byte {
	sha2 := sha256.New()
	sha2.Write(n.Bytes())
	r := ripemd160.New()
	r.Write(sha2.Sum(nil))
	return r.Sum(nil)
}

// FingerprintString renders Fingerprint as a hex string.
func FingerprintString(n *bigint.Int) string {
	return hex.EncodeToString(Fingerprint(n))
}
