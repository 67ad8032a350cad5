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
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mawi12345/copri/bigint"
	"github.com/mawi12345/copri/concurrent"
	"github.com/mawi12345/copri/coprime"
	"github.com/mawi12345/copri/errors"
)

// ScanParallel runs ArrayFindFactors for every corpus entry against a
// precomputed coprime base on a pool of worker goroutines, using
// concurrent.Dispatcher. It reports the same Breaches as Scan, just
// discovered out of order; the corpus is scanned against base, it
// does not recompute one.
func (c *Corpus) ScanParallel(ctx context.Context, base *bigint.Array, numWorker int) []Breach {
	if len(c.entries) == 0 || base.Len() == 0 {
		return nil
	}
	d := &scanDispatchable{entries: c.entries, base: base}
	disp := concurrent.NewDispatcher[int, factorMsg](ctx, numWorker, d)
	for i := range c.entries {
		disp.Process(i)
	}
	disp.Quit()

	d.mu.Lock()
	defer d.mu.Unlock()
	out := coprime.NewFactorList()
	for _, m := range d.msgs {
		out.Append(m.a, m.p, m.q)
	}
	return c.breaches(out)
}

// factorMsg is the Dispatchable result type: one discovered (a,p,q)
// triple for one corpus entry.
type factorMsg struct {
	a, p, q *bigint.Int
}

// scanDispatchable implements concurrent.Dispatchable[int, factorMsg].
// Each worker owns its own Pool and FactorList, per the arena's
// single-owner rule; results flow to the dispatcher's Eval via resCh,
// where they are copied under mu into msgs.
type scanDispatchable struct {
	entries []Modulus
	base    *bigint.Array

	mu   sync.Mutex
	msgs []factorMsg
}

func (d *scanDispatchable) Worker(ctx context.Context, _ int, taskCh chan int, resCh chan factorMsg) {
	pool := bigint.NewPool()
	for {
		select {
		case <-ctx.Done():
			return
		case idx, ok := <-taskCh:
			if !ok {
				return
			}
			out := coprime.NewFactorList()
			coprime.ArrayFindFactors(pool, out, bigint.NewArrayOf(d.entries[idx].N), d.base)
			for _, f := range out.Items() {
				select {
				case resCh <- factorMsg{a: f.A, p: f.P, q: f.Q}:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func (d *scanDispatchable) Eval(result factorMsg) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.msgs = append(d.msgs, result)
	return false
}

// ScanSharded splits the corpus into shardCount shards, computes each
// shard's coprime base concurrently via errgroup, folds the shard
// bases together with CBMerge, and runs find_factors once over the
// merged base. It exists for corpora too large to comfortably hold a
// single balanced cb recursion in one arena: each shard gets its own
// Pool.
func (c *Corpus) ScanSharded(ctx context.Context, shardCount int, cfg coprime.Config) ([]Breach, error) {
	if len(c.entries) == 0 {
		return nil, errors.New(errors.ErrEmptyInput, "rsacorpus: ScanSharded on an empty corpus")
	}
	for _, e := range c.entries {
		if e.N.Sign() == 0 {
			return nil, errors.New(errors.ErrZeroValue, "rsacorpus: modulus %q is zero", e.Label)
		}
	}
	if shardCount < 1 {
		shardCount = 1
	}
	if shardCount > len(c.entries) {
		shardCount = len(c.entries)
	}

	shards := make([][]*bigint.Int, shardCount)
	values := c.values()
	for i, v := range values {
		shard := i % shardCount
		shards[shard] = append(shards[shard], v)
	}

	bases := make([]*bigint.Array, shardCount)
	g, _ := errgroup.WithContext(ctx)
	for i, shard := range shards {
		i, shard := i, shard
		g.Go(func() error {
			if len(shard) == 0 {
				bases[i] = bigint.NewArray()
				return nil
			}
			bases[i] = coprime.CoprimeBase(shard, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pool := bigint.NewPool()
	merged := bases[0]
	for i := 1; i < len(bases); i++ {
		next := bigint.NewArray()
		switch {
		case merged.Len() == 0:
			next.AppendArray(bases[i])
		case bases[i].Len() == 0:
			next.AppendArray(merged)
		default:
			coprime.CBMerge(pool, next, merged, bases[i])
		}
		merged = next
	}

	out := coprime.NewFactorList()
	coprime.ArrayFindFactors(bigint.NewPool(), out, bigint.NewArrayOf(values...), merged)
	return c.breaches(out), nil
}
