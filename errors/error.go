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

// Package errors collects the sentinel errors and the error wrapper type
// returned by the RSA-corpus application layer built on top of the
// coprime-base algorithms; the algorithms themselves do not use it.
package errors

import (
	stderrs "errors"
	"fmt"
)

// Sentinel errors for the caller-error class described in the core's
// error-handling design: degenerate or malformed input that a caller
// can recognize with errors.Is. Invariant violations (programmer
// errors that must not occur for valid input) are not among them --
// those are reported with a panic, see the cardinality check in
// coprime.CBExtend.
var (
	// ErrZeroValue marks a zero submitted where a strictly positive
	// integer was required.
	ErrZeroValue = stderrs.New("value must be strictly positive")
	// ErrEmptyInput marks an empty set passed to an array-level entry
	// point that requires at least one element.
	ErrEmptyInput = stderrs.New("input set is empty")
	// ErrNotFactorable marks a value that does not factor over the
	// given coprime base -- not a failure of the algorithm, just its
	// normal "no" answer.
	ErrNotFactorable = stderrs.New("value does not factor over the given base")
)

// Error wraps a sentinel with call-specific context, so callers can
// still match it with errors.Is while getting a readable message.
type Error struct {
	Err error  // base error (for errors.Is() and errors.As() calls)
	Ctx string // error context
}

// Unwrap returns the wrapped sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error returns a human-readable error description.
func (e *Error) Error() string {
	return e.Err.Error() + " [" + e.Ctx + "]"
}

// New creates a new Error instance, formatting the context from args.
func New(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err: err,
		Ctx: fmt.Sprintf(format, args...),
	}
}
