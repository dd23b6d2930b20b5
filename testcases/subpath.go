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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   polygon(rect(10, 10, 40, 40), rect(24, 24, 54, 54)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   polygon(rect(10, 10, 40, 40), rect(24, 24, 54, 54)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(32, 32, 25, 12, false),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring_same_winding_nonzero",
		Path:   ringShape(32, 32, 25, 12, false),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "ring_opposite_winding_nonzero",
		Path:   ringShape(32, 32, 25, 12, true),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
		Rule:   EvenOdd,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
	{
		Name:   "touching_rectangles",
		Path:   polygon(rect(10, 10, 32, 54), rect(32, 10, 54, 54)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// smallTriangle returns the corners of an isosceles triangle centred at
// (cx, cy).
func smallTriangle(cx, cy, size float64) []vec.Vec2 {
	return []vec.Vec2{pt(cx, cy-size), pt(cx+size, cy+size), pt(cx-size, cy+size)}
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	return polygon(smallTriangle(cx1, cy1, size), smallTriangle(cx2, cy2, size))
}

// ringShape builds a ring (outer square with inner square cutout).
// If opposite is set, the inner square is wound the other way.
func ringShape(cx, cy, outerSize, innerSize float64, opposite bool) path.Path {
	outer := rect(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	inner := rect(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
	if opposite {
		inner = reversed(inner)
	}
	return polygon(outer, inner)
}

// multipleRings builds three square donuts.
func multipleRings(cx, cy float64) path.Path {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}
	var contours [][]vec.Vec2
	for _, ring := range rings {
		contours = append(contours,
			rect(ring.cx-ring.outer, ring.cy-ring.outer, ring.cx+ring.outer, ring.cy+ring.outer),
			rect(ring.cx-ring.inner, ring.cy-ring.inner, ring.cx+ring.inner, ring.cy+ring.inner))
	}
	return polygon(contours...)
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) path.Path {
	const size = 5.0
	const spacing = 14.0

	var contours [][]vec.Vec2
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			contours = append(contours, smallTriangle(cx, cy, size))
		}
	}
	return polygon(contours...)
}
