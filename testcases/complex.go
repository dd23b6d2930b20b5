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

// complexCases contains self-intersecting polygons, which exercise the
// handling of edge crossings.
var complexCases = []TestCase{
	{
		Name:   "bowtie_nonzero",
		Path:   polygon([]vec.Vec2{pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)}),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "bowtie_evenodd",
		Path:   polygon([]vec.Vec2{pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)}),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "spiral_overlap",
		Path:   spiral(32, 32, 4, 28, 3),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "spiral_overlap_evenodd",
		Path:   spiral(32, 32, 4, 28, 3),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "figure_eight",
		Path:   figureEight(32, 32, 26),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "zigzag_crossing",
		Path:   zigzag(4, 32, 60, 24, 7),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		// Many edges cross at the centre point.
		Name:   "pinwheel",
		Path:   pinwheel(32, 32, 28, 7),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "pinwheel_evenodd",
		Path:   pinwheel(32, 32, 28, 7),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		// A band crosses the diagonal where two triangles meet, so three
		// edges pass through each crossing point.
		Name:   "shared_diagonal_band",
		Path:   sharedDiagonalBand(),
		Width:  40,
		Height: 32,
		Rule:   NonZero,
	},
	{
		Name:   "shared_diagonal_band_evenodd",
		Path:   sharedDiagonalBand(),
		Width:  40,
		Height: 32,
		Rule:   EvenOdd,
	},
	{
		Name:   "star_polygon_11",
		Path:   starPolygon(64, 64, 60, 11, 4),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
	{
		Name:   "star_polygon_11_evenodd",
		Path:   starPolygon(64, 64, 60, 11, 4),
		Width:  128,
		Height: 128,
		Rule:   EvenOdd,
	},
}

// sharedDiagonalBand builds two triangles with a common diagonal and a
// thin band across both.
func sharedDiagonalBand() path.Path {
	return polygon(
		[]vec.Vec2{pt(2, 2), pt(30, 2), pt(2, 30)},
		[]vec.Vec2{pt(30, 2), pt(30, 30), pt(2, 30)},
		[]vec.Vec2{pt(35, 14), pt(1, 15), pt(1, 17), pt(35, 16)},
	)
}

// spiral builds an Archimedean spiral, closed back to its start, which
// overlaps itself.
func spiral(cx, cy, rMin, rMax float64, turns float64) path.Path {
	steps := max(int(turns*32), 8) // 32 segments per turn
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	pts := make([]vec.Vec2, 0, steps+1)
	for i := range steps + 1 {
		angle := totalAngle * float64(i) / float64(steps)
		r := rMin + rGrowth*angle
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return polygon(pts)
}

// figureEight builds a lemniscate which crosses itself in the centre.
func figureEight(cx, cy, size float64) path.Path {
	const n = 64
	pts := make([]vec.Vec2, 0, n)
	for i := range n {
		t := 2 * math.Pi * float64(i) / n
		s := math.Sin(t)
		pts = append(pts, pt(cx+size*s*math.Cos(t), cy+size*s))
	}
	return polygon(pts)
}

// zigzag builds a zigzag line which is closed back to its start, so that
// the closing edge crosses every tooth.
func zigzag(x1, cy, x2, amplitude float64, teeth int) path.Path {
	pts := []vec.Vec2{pt(x1, cy+amplitude)}
	for i := 1; i <= teeth; i++ {
		x := x1 + (x2-x1)*float64(i)/float64(teeth)
		y := cy - amplitude
		if i%2 == 0 {
			y = cy + amplitude
		}
		pts = append(pts, pt(x, y))
	}
	pts = append(pts, pt(x2, cy))
	return polygon(pts)
}

// pinwheel builds n thin triangles. One edge of every triangle runs
// through the centre, so that many edges cross in one point.
func pinwheel(cx, cy, r float64, n int) path.Path {
	contours := make([][]vec.Vec2, 0, n)
	for i := range n {
		a := math.Pi * float64(i) / float64(n)
		dx, dy := r*math.Cos(a), r*math.Sin(a)
		contours = append(contours, []vec.Vec2{
			pt(cx+dx, cy+dy),
			pt(cx-dx, cy-dy),
			pt(cx-r*math.Cos(a+0.15), cy-r*math.Sin(a+0.15)),
		})
	}
	return polygon(contours...)
}

// starPolygon builds the regular star polygon {n/k}.
func starPolygon(cx, cy, r float64, n, k int) path.Path {
	pts := make([]vec.Vec2, 0, n)
	for i := range n {
		a := 2*math.Pi*float64(i*k%n)/float64(n) - math.Pi/2
		pts = append(pts, pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return polygon(pts)
}
