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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestNewEdge(t *testing.T) {
	a := Vertex{X: 0, Y: 0}
	b := Vertex{X: 64, Y: 128}

	e, ok := newEdge(&a, &b)
	if !ok {
		t.Fatal("edge not created")
	}
	if e.v0 != &a || e.v1 != &b || e.sign != -1 {
		t.Errorf("downward edge: v0=%v v1=%v sign=%d", *e.v0, *e.v1, e.sign)
	}
	if e.dx != 64 || e.dy != 128 {
		t.Errorf("dx=%d dy=%d", e.dx, e.dy)
	}

	e, ok = newEdge(&b, &a)
	if !ok {
		t.Fatal("edge not created")
	}
	if e.v0 != &a || e.v1 != &b || e.sign != 1 {
		t.Errorf("upward edge: v0=%v v1=%v sign=%d", *e.v0, *e.v1, e.sign)
	}

	c := Vertex{X: 500, Y: 0}
	if _, ok := newEdge(&a, &c); ok {
		t.Error("horizontal edge was not dropped")
	}
}

func TestXAt(t *testing.T) {
	a := Vertex{X: 64, Y: 0}
	b := Vertex{X: 0, Y: 128}
	e, _ := newEdge(&a, &b)

	cases := []struct {
		y    int32
		want int64 // in units of 1/(1<<xBits) pixel
	}{
		{0, 1 << xBits},
		{64, 1 << (xBits - 1)},
		{128, 0},
		{1, floorDiv(int64(64)<<fineBits*127, 128)},
	}
	for _, c := range cases {
		if got := e.xAt(c.y); got != c.want {
			t.Errorf("xAt(%d) = %d, want %d", c.y, got, c.want)
		}
		// cached value
		if got := e.xAt(c.y); got != c.want {
			t.Errorf("cached xAt(%d) = %d, want %d", c.y, got, c.want)
		}
	}
}

func TestAdvanceToTallEdge(t *testing.T) {
	// dx/dy is below the resolution of a 16.16 slope
	const dx = 3 * subOne
	e := makeEdge(0, 0, dx, int32(MaxCoord), 0)

	r := NewRasterizer(rect.Rect{})
	r.gel = []*edge{e}
	for ys := int32(subOne / 2); ys < int32(MaxCoord); ys += subOne {
		r.advanceTo(ys)
		if len(r.ael) != 1 {
			t.Fatalf("%d active edges at y=%d", len(r.ael), ys)
		}
		want := (int64(ys) * dx << 16) / int64(MaxCoord)
		if e.fx != want {
			t.Fatalf("fx at y=%d is %d, want %d", ys, e.fx, want)
		}
	}
}

func TestBuildEdges(t *testing.T) {
	var p Polygon
	p.AddVec(matrix.Identity,
		vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 5, Y: 2},
		vec.Vec2{X: 5, Y: 7}, vec.Vec2{X: 1, Y: 7})
	p.AddVec(matrix.Identity,
		vec.Vec2{X: 2, Y: 3}, vec.Vec2{X: 3, Y: 9}, vec.Vec2{X: 4, Y: 3})

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	if err := r.buildEdges(&p); err != nil {
		t.Fatal(err)
	}
	if len(r.edges) != 4 {
		t.Fatalf("got %d edges, want 4", len(r.edges))
	}
	if r.yMin != 2*64 || r.yMax != 9*64 {
		t.Errorf("yMin=%d yMax=%d", r.yMin, r.yMax)
	}
	sum := int32(0)
	for i, e := range r.edges {
		if e.idx != int32(i) {
			t.Errorf("edge %d has index %d", i, e.idx)
		}
		if e.dy <= 0 {
			t.Errorf("edge %d has dy=%d", i, e.dy)
		}
		sum += e.sign
	}
	if sum != 0 {
		t.Errorf("edge signs add up to %d", sum)
	}

	r.MaxEdges = 3
	err := r.buildEdges(&p)
	if !errors.Is(err, ErrScratchLimit) {
		t.Errorf("buildEdges() = %v, want ErrScratchLimit", err)
	}
}

// starPolygon returns a polygon with n spikes, which has many edges
// starting on common rows.
func starPolygon(n int, cx, cy, r0, r1 float64) *Polygon {
	pts := make([]vec.Vec2, 0, 2*n)
	for i := range 2 * n {
		r := r0
		if i%2 == 1 {
			r = r1
		}
		phi := float64(i) * math.Pi / float64(n)
		pts = append(pts, vec.Vec2{
			X: math.Round(cx + r*math.Cos(phi)),
			Y: math.Round(cy + r*math.Sin(phi)),
		})
	}
	p := &Polygon{}
	p.AddVec(matrix.Identity, pts...)
	return p
}

func TestGELKeyWidth(t *testing.T) {
	p := starPolygon(40, 50, 50, 45, 20)

	r := NewRasterizer(rect.Rect{URx: 100, URy: 100})
	if err := r.buildEdges(p); err != nil {
		t.Fatal(err)
	}

	r.narrow = true
	r.buildGEL()
	var narrow []int32
	for _, e := range r.gel {
		narrow = append(narrow, e.idx)
	}

	r.narrow = false
	r.buildGEL()
	var wide []int32
	for _, e := range r.gel {
		wide = append(wide, e.idx)
	}

	if !slices.Equal(narrow, wide) {
		t.Fatalf("GEL order differs:\n%v\n%v", narrow, wide)
	}
	for i := 1; i < len(r.gel); i++ {
		a, b := r.gel[i-1], r.gel[i]
		if a.v0.Y > b.v0.Y || a.v0.Y == b.v0.Y && a.idx > b.idx {
			t.Errorf("GEL not sorted at %d", i)
		}
	}
}
