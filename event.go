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
	"fmt"
	"math/bits"
)

// rat is the exact rational number i + num/den, with 0 <= num < den.
type rat struct {
	i, num, den int64
}

func ratInt(i int64) rat {
	return rat{i: i, den: 1}
}

// cmpRat compares two rationals exactly.
func cmpRat(a, b rat) int {
	if a.i != b.i {
		return cmp.Compare(a.i, b.i)
	}
	return cmpProducts(a.num, b.den, b.num, a.den)
}

// cmpProducts compares a*b with c*d, using 128-bit products. All arguments
// must be non-negative.
func cmpProducts(a, b, c, d int64) int {
	h1, l1 := bits.Mul64(uint64(a), uint64(b))
	h2, l2 := bits.Mul64(uint64(c), uint64(d))
	if h1 != h2 {
		return cmp.Compare(h1, h2)
	}
	return cmp.Compare(l1, l2)
}

type eventKind uint8

// At equal y, removals come first, then swaps, then insertions.
const (
	evRemove eventKind = iota
	evSwap
	evInsert
)

// event is an entry of the sweep queue.
//
// Vertex events (evRemove, evInsert) refer to one edge in a and have b = -1.
// Swap events refer to two edges which cross at (x, y); a is the edge on the
// left above the crossing.
type event struct {
	y, x      rat
	kind      eventKind
	a, b      int32
	discarded bool
}

// cmpEvent orders events by sweep position. Swap events at the same y are
// ordered by x; everything else falls back to the edge indices, which makes
// the order total.
func cmpEvent(p, q *event) int {
	if c := cmpRat(p.y, q.y); c != 0 {
		return c
	}
	if p.kind != q.kind {
		return cmp.Compare(p.kind, q.kind)
	}
	if p.kind == evSwap {
		if c := cmpRat(p.x, q.x); c != 0 {
			return c
		}
	}
	if p.a != q.a {
		return cmp.Compare(p.a, q.a)
	}
	return cmp.Compare(p.b, q.b)
}

// samePoint reports whether two swap events happen at the same position.
func samePoint(p, q *event) bool {
	return cmpRat(p.y, q.y) == 0 && cmpRat(p.x, q.x) == 0
}

func sgn(x int64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// crossing checks whether the edges l and r, with l left of r on the
// sweep line, cross properly further down. If so, it returns the swap event
// at the exact crossing point.
//
// The test uses orientation predicates on the end points, so near-parallel
// edges are decided exactly. Edges which only touch, or which share an end
// point, do not cross.
func crossing(l, r *edge) (event, bool) {
	o1 := sgn(l.side(int64(r.v0.X), int64(r.v0.Y)))
	o2 := sgn(l.side(int64(r.v1.X), int64(r.v1.Y)))
	if o1*o2 >= 0 {
		return event{}, false
	}
	o3 := sgn(r.side(int64(l.v0.X), int64(l.v0.Y)))
	o4 := sgn(r.side(int64(l.v1.X), int64(l.v1.Y)))
	if o3*o4 >= 0 || o4 < 0 {
		return event{}, false
	}

	// l(t) = l.v0 + t*(l.dx, l.dy) with t = tn/den in (0, 1)
	den := l.dx*r.dy - l.dy*r.dx
	tn := (int64(r.v0.X)-int64(l.v0.X))*r.dy - (int64(r.v0.Y)-int64(l.v0.Y))*r.dx
	if den < 0 {
		den, tn = -den, -tn
	}
	if tn <= 0 || tn >= den {
		return event{}, false
	}

	qy, ry := floorDivMod(tn*l.dy, den)
	qx, rx := floorDivMod(tn*l.dx, den)
	ev := event{
		y:    rat{i: int64(l.v0.Y) + qy, num: ry, den: den},
		x:    rat{i: int64(l.v0.X) + qx, num: rx, den: den},
		kind: evSwap,
		a:    l.idx,
		b:    r.idx,
	}
	return ev, true
}

// buildEvents fills r.events with one insertion and one removal event per
// edge, in sweep order.
func (r *Rasterizer) buildEvents() error {
	n := 2 * len(r.edges)
	if n > r.MaxEvents {
		return fmt.Errorf("%d vertex events: %w", n, ErrScratchLimit)
	}

	// key layout: y | kind | edge index
	if r.narrow {
		const idxBits = narrowIndexBits + 1
		keys := r.keys32[:0]
		for i := range r.edges {
			e := &r.edges[i]
			y0 := int64(e.v0.Y) & coordMask
			y1 := int64(e.v1.Y) & coordMask
			keys = append(keys,
				uint32(y0)<<idxBits|1<<narrowIndexBits|uint32(i),
				uint32(y1)<<idxBits|uint32(i))
		}
		r.order = sortedIndices(keys, idxBits, r.order[:0])
		r.keys32 = keys
		r.decodeEvents(narrowIndexBits)
	} else {
		const idxBits = wideIndexBits + 1
		keys := r.keys64[:0]
		for i := range r.edges {
			e := &r.edges[i]
			y0 := int64(e.v0.Y) & coordMask
			y1 := int64(e.v1.Y) & coordMask
			keys = append(keys,
				uint64(y0)<<idxBits|1<<wideIndexBits|uint64(i),
				uint64(y1)<<idxBits|uint64(i))
		}
		r.order = sortedIndices(keys, idxBits, r.order[:0])
		r.keys64 = keys
		r.decodeEvents(wideIndexBits)
	}
	return nil
}

// decodeEvents turns the sorted (kind, index) pairs in r.order into events.
func (r *Rasterizer) decodeEvents(kindShift uint) {
	r.events = r.events[:0]
	for _, k := range r.order {
		i := int32(uint32(k) & (1<<kindShift - 1))
		e := &r.edges[i]
		ev := event{a: i, b: -1}
		if uint32(k)>>kindShift != 0 {
			ev.kind = evInsert
			ev.y, ev.x = ratInt(int64(e.v0.Y)), ratInt(int64(e.v0.X))
		} else {
			ev.kind = evRemove
			ev.y, ev.x = ratInt(int64(e.v1.Y)), ratInt(int64(e.v1.X))
		}
		r.events = append(r.events, ev)
	}
}

// through reports whether the line through e contains the crossing point
// of the swap event ev.
func (e *edge) through(ev *event) bool {
	// x and y of a crossing share the denominator
	d := ev.y.den
	px := (ev.x.i-int64(e.v0.X))*d + ev.x.num
	py := (ev.y.i-int64(e.v0.Y))*d + ev.y.num

	// px*dy == py*dx, with dy > 0
	if sgn(px) != sgn(py)*sgn(e.dx) {
		return false
	}
	return cmpProducts(max(px, -px), e.dy, max(py, -py), max(e.dx, -e.dx)) == 0
}

// queueSwap inserts a swap event into the queue, keeping the queue sorted.
// Events which would land at or before the event currently being processed
// are dropped, since the sweep has already passed them. An identical event
// already in the queue is not added a second time.
func (r *Rasterizer) queueSwap(ev *event) error {
	lo, hi := 0, len(r.events)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if cmpEvent(&r.events[m], ev) < 0 {
			lo = m + 1
		} else {
			hi = m
		}
	}
	if lo < len(r.events) && cmpEvent(&r.events[lo], ev) == 0 {
		return nil
	}
	if lo <= r.cur {
		return nil
	}
	if len(r.events) >= r.MaxEvents {
		return fmt.Errorf("%d events: %w", len(r.events)+1, ErrScratchLimit)
	}
	r.events = append(r.events, event{})
	copy(r.events[lo+1:], r.events[lo:])
	r.events[lo] = *ev
	return nil
}
