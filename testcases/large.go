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

// largeCases contains test cases with large canvases and many edges.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   polygon(rect(50, 50, 462, 462)),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_concentric_nonzero",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_concentric_evenodd",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		// Coordinates left of the canvas are clamped to zero.
		Name:   "large_clipped",
		Path:   polygon(rect(-100, 100, 612, 400)),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		// More than 2048 vertices, which selects 64-bit sort keys.
		Name:   "large_many_vertices",
		Path:   rectangleGrid(32, 32, 512, 512, 2),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
}

// concentricRectangles builds two squares with the same centre, both wound
// in the same direction.
func concentricRectangles(cx, cy, outer, inner float64) path.Path {
	return polygon(
		rect(cx-outer, cy-outer, cx+outer, cy+outer),
		rect(cx-inner, cy-inner, cx+inner, cy+inner),
	)
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) path.Path {
	return polygon([]vec.Vec2{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)})
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) path.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var contours [][]vec.Vec2
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			contours = append(contours, rect(x1, y1, x2, y2))
		}
	}
	return polygon(contours...)
}
