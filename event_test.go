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
	"errors"
	"slices"
	"testing"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"
)

func TestCmpRat(t *testing.T) {
	cases := []struct {
		a, b rat
		want int
	}{
		{ratInt(3), ratInt(3), 0},
		{ratInt(3), ratInt(4), -1},
		{rat{i: 3, num: 1, den: 2}, rat{i: 3, num: 2, den: 4}, 0},
		{rat{i: 3, num: 1, den: 3}, rat{i: 3, num: 1, den: 2}, -1},
		{rat{i: 3, num: 1, den: 3}, ratInt(3), 1},
		{rat{i: -1, num: 5, den: 6}, ratInt(0), -1},
		// products beyond 64 bits
		{
			rat{i: 0, num: 1<<40 - 1, den: 1 << 40},
			rat{i: 0, num: 1<<40 - 2, den: 1<<40 - 1},
			1,
		},
	}
	for _, c := range cases {
		if got := cmpRat(c.a, c.b); got != c.want {
			t.Errorf("cmpRat(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := cmpRat(c.b, c.a); got != -c.want {
			t.Errorf("cmpRat(%v, %v) = %d, want %d", c.b, c.a, got, -c.want)
		}
	}
}

func makeEdge(x0, y0, x1, y1 int32, idx int32) *edge {
	a := &Vertex{X: fixed.Int26_6(x0), Y: fixed.Int26_6(y0)}
	b := &Vertex{X: fixed.Int26_6(x1), Y: fixed.Int26_6(y1)}
	e, ok := newEdge(a, b)
	if !ok {
		panic("horizontal edge")
	}
	e.idx = idx
	return &e
}

func TestThrough(t *testing.T) {
	x, _ := crossing(makeEdge(0, 0, 640, 640, 0), makeEdge(640, 0, 0, 640, 1))
	odd, _ := crossing(makeEdge(0, 0, 3, 10, 0), makeEdge(2, 0, 0, 10, 1))

	cases := []struct {
		ev   *event
		e    *edge
		want bool
	}{
		{&x, makeEdge(64, 64, 576, 576, 2), true},
		{&x, makeEdge(576, 64, 64, 576, 2), true},
		{&x, makeEdge(320, 0, 320, 640, 2), true},
		{&x, makeEdge(330, 0, 330, 640, 2), false},
		{&x, makeEdge(0, 64, 640, 640, 2), false},
		{&odd, makeEdge(0, 0, 6, 20, 2), true}, // through (6/5, 4)
		{&odd, makeEdge(1, 0, 1, 10, 2), false},
		{&odd, makeEdge(2, 0, 0, 10, 2), true},
	}
	for i, c := range cases {
		if got := c.e.through(c.ev); got != c.want {
			t.Errorf("%d: through() = %t, want %t", i, got, c.want)
		}
	}
}

func TestCrossing(t *testing.T) {
	// an X shape, crossing at (320, 320)
	l := makeEdge(0, 0, 640, 640, 0)
	r := makeEdge(640, 0, 0, 640, 1)
	ev, ok := crossing(l, r)
	if !ok {
		t.Fatal("crossing not found")
	}
	if ev.kind != evSwap || ev.a != 0 || ev.b != 1 {
		t.Errorf("wrong event %+v", ev)
	}
	if cmpRat(ev.y, ratInt(320)) != 0 || cmpRat(ev.x, ratInt(320)) != 0 {
		t.Errorf("crossing at (%v, %v), want (320, 320)", ev.x, ev.y)
	}

	// the same edges in the wrong order do not cross below the sweep line
	if _, ok := crossing(r, l); ok {
		t.Error("crossing found for edges in wrong order")
	}

	// a crossing at a non-integer position
	l = makeEdge(0, 0, 3, 10, 0)
	r = makeEdge(2, 0, 0, 10, 1)
	ev, ok = crossing(l, r)
	if !ok {
		t.Fatal("crossing not found")
	}
	// l: x = 3t, r: x = 2-2t  =>  t = 2/5, y = 4, x = 6/5
	if cmpRat(ev.y, ratInt(4)) != 0 {
		t.Errorf("y = %v, want 4", ev.y)
	}
	if cmpRat(ev.x, rat{i: 1, num: 1, den: 5}) != 0 {
		t.Errorf("x = %v, want 6/5", ev.x)
	}
}

func TestCrossingTouching(t *testing.T) {
	cases := []struct {
		name string
		l, r *edge
	}{
		{"shared end point", makeEdge(0, 0, 320, 320, 0), makeEdge(640, 0, 320, 320, 1)},
		{"shared start point", makeEdge(320, 0, 0, 640, 0), makeEdge(320, 0, 640, 640, 1)},
		{"parallel", makeEdge(0, 0, 100, 640, 0), makeEdge(10, 0, 110, 640, 1)},
		{"collinear", makeEdge(0, 0, 100, 100, 0), makeEdge(50, 50, 200, 200, 1)},
		{"end on other edge", makeEdge(0, 0, 320, 320, 0), makeEdge(640, 0, 0, 640, 1)},
		{"disjoint", makeEdge(0, 0, 10, 100, 0), makeEdge(50, 0, 40, 100, 1)},
	}
	for _, c := range cases {
		if ev, ok := crossing(c.l, c.r); ok {
			t.Errorf("%s: unexpected crossing at (%v, %v)", c.name, ev.x, ev.y)
		}
	}
}

func TestCmpEventKinds(t *testing.T) {
	y := ratInt(64)
	remove := event{y: y, x: ratInt(100), kind: evRemove, a: 5, b: -1}
	swap := event{y: y, x: ratInt(0), kind: evSwap, a: 1, b: 2}
	insert := event{y: y, x: ratInt(0), kind: evInsert, a: 0, b: -1}
	if cmpEvent(&remove, &swap) >= 0 || cmpEvent(&swap, &insert) >= 0 {
		t.Error("events of equal y not ordered remove < swap < insert")
	}

	left := event{y: y, x: ratInt(10), kind: evSwap, a: 7, b: 8}
	if cmpEvent(&swap, &left) >= 0 {
		t.Error("swaps of equal y not ordered by x")
	}
}

func TestQueueSwap(t *testing.T) {
	r := NewRasterizer(rect.Rect{})
	r.events = []event{
		{y: ratInt(0), x: ratInt(0), kind: evInsert, a: 0, b: -1},
		{y: ratInt(640), x: ratInt(0), kind: evRemove, a: 0, b: -1},
	}
	r.cur = 0

	ev := event{y: ratInt(320), x: ratInt(10), kind: evSwap, a: 1, b: 2}
	if err := r.queueSwap(&ev); err != nil {
		t.Fatal(err)
	}
	if len(r.events) != 3 || r.events[1] != ev {
		t.Fatalf("swap not queued in order: %v", r.events)
	}

	// duplicates are ignored
	if err := r.queueSwap(&ev); err != nil {
		t.Fatal(err)
	}
	if len(r.events) != 3 {
		t.Errorf("duplicate swap queued: %v", r.events)
	}

	// events the sweep has passed are dropped
	r.cur = 1
	early := event{y: ratInt(100), x: ratInt(10), kind: evSwap, a: 3, b: 4}
	if err := r.queueSwap(&early); err != nil {
		t.Fatal(err)
	}
	if len(r.events) != 3 {
		t.Errorf("passed swap queued: %v", r.events)
	}

	// the queue length is limited
	r.cur = 0
	r.MaxEvents = 3
	late := event{y: ratInt(500), x: ratInt(10), kind: evSwap, a: 3, b: 4}
	if err := r.queueSwap(&late); !errors.Is(err, ErrScratchLimit) {
		t.Errorf("queueSwap() = %v, want ErrScratchLimit", err)
	}
}

func TestBuildEvents(t *testing.T) {
	p := starPolygon(40, 50, 50, 45, 20)
	r := NewRasterizer(rect.Rect{URx: 100, URy: 100})
	if err := r.buildEdges(p); err != nil {
		t.Fatal(err)
	}

	r.narrow = true
	if err := r.buildEvents(); err != nil {
		t.Fatal(err)
	}
	narrow := slices.Clone(r.events)

	r.narrow = false
	if err := r.buildEvents(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(narrow, r.events) {
		t.Fatal("event order depends on the key width")
	}

	if len(r.events) != 2*len(r.edges) {
		t.Errorf("got %d events for %d edges", len(r.events), len(r.edges))
	}
	isSorted := slices.IsSortedFunc(r.events, func(p, q event) int {
		return cmpEvent(&p, &q)
	})
	if !isSorted {
		t.Error("events not in sweep order")
	}

	r.MaxEvents = 2*len(r.edges) - 1
	if err := r.buildEvents(); !errors.Is(err, ErrScratchLimit) {
		t.Errorf("buildEvents() = %v, want ErrScratchLimit", err)
	}
}
