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
	"fmt"
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanline/testcases"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkFillO benchmarks the three strategies drawing an "O" shape.
func BenchmarkFillO(b *testing.B) {
	for _, s := range []Strategy{Better, Faster, NoAA} {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/%dx%d", s, size, size), func(b *testing.B) {
				clip := rect.Rect{URx: float64(size), URy: float64(size)}
				r := NewRasterizer(clip)
				r.Strategy = s

				dst := image.NewRGBA(image.Rect(0, 0, size, size))
				paint := Solid{Color: color.RGBA{A: 255}, Op: draw.Src}

				outer, inner := oShape(size)
				p := &Polygon{}
				p.AddVec(matrix.Identity, outer...)
				p.AddVec(matrix.Identity, inner...)

				b.ReportAllocs()
				for b.Loop() {
					r.Reset(clip)
					r.Strategy = s
					if err := r.Fill(p, EvenOdd, dst, paint, nil); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same shape.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.RGBA{A: 255})

			outer, inner := oShape(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addContourToVector(r, outer)
				addContourToVector(r, inner)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkFillAll renders every test case with a reused rasterizer.
func BenchmarkFillAll(b *testing.B) {
	var polys []*Polygon
	var rules []FillRule
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			m := tc.CTM
			if m == (matrix.Matrix{}) {
				m = matrix.Identity
			}
			p := &Polygon{}
			if err := p.AddPath(m, tc.Path); err != nil {
				b.Fatal(err)
			}
			polys = append(polys, p)
			rule := NonZero
			if tc.Rule == testcases.EvenOdd {
				rule = EvenOdd
			}
			rules = append(rules, rule)
		}
	}

	for _, s := range []Strategy{Better, Faster, NoAA} {
		b.Run(s.String(), func(b *testing.B) {
			const size = 256
			clip := rect.Rect{URx: size, URy: size}
			r := NewRasterizer(clip)
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			paint := Solid{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Op: draw.Src}

			b.ReportAllocs()
			for b.Loop() {
				for i, p := range polys {
					r.Reset(clip)
					r.Strategy = s
					if err := r.Fill(p, rules[i], dst, paint, nil); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

// oShape returns an "O" as two flattened circles, the outer one
// counter-clockwise and the inner one clockwise.
func oShape(size int) (outer, inner []vec.Vec2) {
	c := float64(size) / 2
	outer = circle(c, c, float64(size)*0.45, false)
	inner = circle(c, c, float64(size)*0.30, true)
	return outer, inner
}

func circle(cx, cy, radius float64, clockwise bool) []vec.Vec2 {
	n := max(16, int(2*math.Pi*radius/4))
	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		if clockwise {
			phi = -phi
		}
		pts[i] = vec.Vec2{X: cx + radius*math.Cos(phi), Y: cy + radius*math.Sin(phi)}
	}
	return pts
}

func addContourToVector(r *vector.Rasterizer, pts []vec.Vec2) {
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
}
