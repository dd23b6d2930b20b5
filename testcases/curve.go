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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// curveSegments is the number of line segments used per Bezier curve.
const curveSegments = 16

// The curves in these test cases are flattened into polygons when the test
// case is built.
var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   polygon(quadratic(pt(10, 50), pt(32, 0), pt(54, 50), curveSegments)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic",
		Path:   polygon(cubic(pt(10, 50), pt(10, 10), pt(54, 10), pt(54, 50), curveSegments)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop",
		Path:   polygon(cubic(pt(10, 50), pt(70, 0), pt(-6, 0), pt(54, 50), 2*curveSegments)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop_evenodd",
		Path:   polygon(cubic(pt(10, 50), pt(70, 0), pt(-6, 0), pt(54, 50), 2*curveSegments)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 2.5),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "circle_large",
		Path:   circle(128, 128, 120),
		Width:  256,
		Height: 256,
		Rule:   NonZero,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "arc",
		Path:   arc(32, 32, 25, 0.75),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// quadratic returns n+1 points on the quadratic Bezier curve with control
// points p0, p1, p2.
func quadratic(p0, p1, p2 vec.Vec2, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		omt := 1 - t
		pts = append(pts, p0.Mul(omt*omt).Add(p1.Mul(2*omt*t)).Add(p2.Mul(t*t)))
	}
	return pts
}

// cubic returns n+1 points on the cubic Bezier curve with control points
// p0, p1, p2, p3.
func cubic(p0, p1, p2, p3 vec.Vec2, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		omt := 1 - t
		q := p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t))
		pts = append(pts, q)
	}
	return pts
}

// sCurveQuadratic builds an S-shaped region from two quadratic curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) path.Path {
	midX, midY := (x1+x2)/2, (y1+y2)/2
	first := quadratic(pt(x1, y1), pt((x1+midX)/2, y1-20), pt(midX, midY), curveSegments)
	second := quadratic(pt(midX, midY), pt((midX+x2)/2, y2+20), pt(x2, y2), curveSegments)
	return polygon(append(first, second[1:]...))
}

// ellipsePoints approximates an axis-aligned ellipse using four flattened
// cubic Bezier curves.
func ellipsePoints(cx, cy, rx, ry float64) []vec.Vec2 {
	kx, ky := rx*kappa, ry*kappa
	quadrants := [][4]vec.Vec2{
		{pt(cx+rx, cy), pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)},
		{pt(cx, cy-ry), pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)},
		{pt(cx-rx, cy), pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)},
		{pt(cx, cy+ry), pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)},
	}
	var pts []vec.Vec2
	for _, q := range quadrants {
		seg := cubic(q[0], q[1], q[2], q[3], curveSegments)
		pts = append(pts, seg[:curveSegments]...)
	}
	return pts
}

// circle builds an approximate circle.
func circle(cx, cy, r float64) path.Path {
	return polygon(ellipsePoints(cx, cy, r, r))
}

// ellipse builds an approximate axis-aligned ellipse.
func ellipse(cx, cy, rx, ry float64) path.Path {
	return polygon(ellipsePoints(cx, cy, rx, ry))
}

// arc builds a pie slice covering the given fraction of a full circle,
// starting from the right and running counter-clockwise on the screen.
func arc(cx, cy, r float64, fraction float64) path.Path {
	n := max(int(fraction*4*curveSegments), 1)
	pts := []vec.Vec2{pt(cx, cy)}
	for i := range n + 1 {
		angle := fraction * 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, pt(cx+r*math.Cos(angle), cy-r*math.Sin(angle)))
	}
	return polygon(pts)
}
