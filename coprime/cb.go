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

import (
	"sync"

	"github.com/mawi12345/copri/bigint"
	"github.com/mawi12345/copri/logger"
)

// Config controls the optional concurrency of CB/CoprimeBase. The
// original algorithm forks its two recursive halves onto separate
// OpenMP threads once the remaining set is large enough to be worth
// the fork; Config.Parallel/ParallelThreshold reproduce that knob
// with goroutines.
type Config struct {
	// Parallel enables forking the right half of a cb split onto its
	// own goroutine with its own Pool.
	Parallel bool
	// ParallelThreshold is the minimum value of to-from (one less than
	// the element count) a split must have before it is forked.
	ParallelThreshold int
}

// DefaultConfig returns the sequential configuration.
func DefaultConfig() Config {
	return Config{Parallel: false, ParallelThreshold: 64}
}

// CB computes cb(S[from..to]), the natural coprime base of that slice
// of s, appending the result to out. Algorithm 18.1.
func CB(pool *bigint.Pool, out *bigint.Array, s *bigint.Array, from, to int, cfg Config) {
	cb(pool, out, s, from, to, cfg)
}

func cb(pool *bigint.Pool, out *bigint.Array, s *bigint.Array, from, to int, cfg Config) {
	n := to - from
	if n == 0 {
		v := s.At(from)
		if v.Sign() == 0 {
			logger.Println(logger.WARN, "zero value submitted to cb -- skipped")
			return
		}
		if v.CmpUint(1) != 0 {
			appendCopy(out, v)
		}
		return
	}

	p := bigint.NewArray()
	q := bigint.NewArray()

	if cfg.Parallel && n >= cfg.ParallelThreshold {
		var wg sync.WaitGroup
		wg.Add(1)
		qPool := bigint.NewPool()
		go func() {
			defer wg.Done()
			cb(qPool, q, s, to-n/2, to, cfg)
		}()
		// The parent keeps working the left half on its own arena --
		// the goroutine above gets a fresh one, mirroring the way the
		// OpenMP section that stays on the parent thread reuses its
		// pool while the section handed to a new thread gets its own.
		cb(pool, p, s, from, to-n/2-1, cfg)
		wg.Wait()
	} else {
		cb(pool, p, s, from, to-n/2-1, cfg)
		cb(pool, q, s, to-n/2, to, cfg)
	}

	switch {
	case p.Len() > 0 && q.Len() > 0:
		CBMerge(pool, out, p, q)
	case p.Len() > 0:
		out.AppendArray(p)
		logger.Println(logger.WARN, "right half produced an empty base in cb")
	case q.Len() > 0:
		out.AppendArray(q)
		logger.Println(logger.WARN, "left half produced an empty base in cb")
	default:
		logger.Println(logger.WARN, "both halves produced an empty base in cb")
	}
}

// ArrayCB computes cb(s) for the whole of s. An empty s is a caller
// error: it is reported at logger.WARN and out is left untouched.
func ArrayCB(pool *bigint.Pool, out *bigint.Array, s *bigint.Array, cfg Config) {
	if s.Len() == 0 {
		logger.Println(logger.WARN, "cb on an empty set")
		return
	}
	cb(pool, out, s, 0, s.Len()-1, cfg)
}

// CoprimeBase is the top-level entry point: it computes the natural
// coprime base of values, allocating its own arena. Zero values are
// logged and skipped; values equal to one contribute nothing (they
// are the identity of the monoid). An empty input yields an empty
// base.
func CoprimeBase(values []*bigint.Int, cfg Config) *bigint.Array {
	out := bigint.NewArray()
	if len(values) == 0 {
		logger.Println(logger.WARN, "cb on an empty set")
		return out
	}
	pool := bigint.NewPool()
	s := bigint.NewArrayOf(values...)
	cb(pool, out, s, 0, s.Len()-1, cfg)
	return out
}
