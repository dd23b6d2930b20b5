// seehuhn.de/go/scanline - a sweep-line polygon rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanline

import (
	"cmp"
	"slices"
)

// The active edge list r.ael holds the edges crossed by the sweep line, in
// left-to-right order. The functions in this file maintain the order for
// the exact sweep. The sampling strategies re-sort the list instead.

// leftOf reports whether the active edge a lies left of the edge e which
// starts on the current sweep line. Ties at the start point of e are broken
// by comparing the directions below the sweep line, and then by edge index.
func leftOf(a, e *edge) bool {
	if s := a.side(int64(e.v0.X), int64(e.v0.Y)); s != 0 {
		return s > 0
	}
	if c := cmpSlope(a, e); c != 0 {
		return c < 0
	}
	return a.idx < e.idx
}

// aelInsert inserts e into the active edge list at the sweep position
// e.v0.Y and tests the new neighbour pairs for crossings.
func (r *Rasterizer) aelInsert(e *edge) error {
	lo, hi := 0, len(r.ael)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if leftOf(r.ael[m], e) {
			lo = m + 1
		} else {
			hi = m
		}
	}
	r.ael = slices.Insert(r.ael, lo, e)

	if lo > 0 {
		if err := r.testPair(lo - 1); err != nil {
			return err
		}
	}
	if lo+1 < len(r.ael) {
		return r.testPair(lo)
	}
	return nil
}

// aelRemove removes e from the active edge list. If this makes two edges
// adjacent, they are tested for a crossing.
func (r *Rasterizer) aelRemove(e *edge) error {
	i := r.aelIndex(e)
	if i < 0 {
		return nil
	}
	r.ael = slices.Delete(r.ael, i, i+1)
	if i > 0 && i < len(r.ael) {
		return r.testPair(i - 1)
	}
	return nil
}

// aelIndex returns the position of e in the active edge list, or -1.
func (r *Rasterizer) aelIndex(e *edge) int {
	for i, a := range r.ael {
		if a == e {
			return i
		}
	}
	return -1
}

// testPair queues a swap event if the active edges at positions i and i+1
// cross below the sweep line.
func (r *Rasterizer) testPair(i int) error {
	ev, ok := crossing(r.ael[i], r.ael[i+1])
	if !ok {
		return nil
	}
	return r.queueSwap(&ev)
}

// aelSwap applies the batch of swap events r.events[r.cur:last+1], which
// all happen at the same point. On return, r.cur is set to last.
//
// A single swap is only applied if the two edges are still adjacent;
// otherwise the event is stale and is marked as discarded. When more than
// two edges meet in one point, all edges between the outermost participants
// pass through that point, and they are re-ordered by their direction
// below it. Adjacent edges through the same point join the batch.
func (r *Rasterizer) aelSwap(last int) error {
	lo, hi := len(r.ael), -1
	for k := r.cur; k <= last; k++ {
		ev := &r.events[k]
		i := r.aelIndex(&r.edges[ev.a])
		j := r.aelIndex(&r.edges[ev.b])
		if i < 0 || j < 0 || (r.cur == last && j != i+1) {
			ev.discarded = true
			r.stats.DiscardedSwaps++
			continue
		}
		lo = min(lo, i, j)
		hi = max(hi, i, j)
		r.stats.Swaps++
	}
	at := &r.events[r.cur]
	r.cur = last
	if lo > hi {
		return nil
	}

	// Neighbours collinear with a participant never get a swap event of
	// their own, but pass through the same point.
	for lo > 0 && r.ael[lo-1].through(at) {
		lo--
	}
	for hi+1 < len(r.ael) && r.ael[hi+1].through(at) {
		hi++
	}

	slices.SortStableFunc(r.ael[lo:hi+1], func(a, b *edge) int {
		if c := cmpSlope(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.idx, b.idx)
	})

	if lo > 0 {
		if err := r.testPair(lo - 1); err != nil {
			return err
		}
	}
	if hi+1 < len(r.ael) {
		return r.testPair(hi)
	}
	return nil
}
