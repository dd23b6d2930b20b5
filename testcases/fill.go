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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "triangle_reversed",
		Path:   triangle(54, 50, 32, 10, 10, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "rectangle",
		Path:   polygon(rect(10, 10, 44, 44)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "square_small",
		Path:   polygon(rect(2, 2, 6, 6)),
		Width:  10,
		Height: 10,
		Rule:   NonZero,
	},
	{
		Name:   "horizontal_only",
		Path:   polygon([]vec.Vec2{pt(10, 20), pt(50, 20), pt(30, 20)}),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polygon([]vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)})
}

// starPoints returns the five outer points of a star, in drawing order
// 0 -> 2 -> 4 -> 1 -> 3.
func starPoints(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(2*i%5)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	return polygon(starPoints(cx, cy, r))
}
