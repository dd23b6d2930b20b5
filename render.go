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
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/scanline/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func RenderExample(tc testcases.TestCase, s Strategy, buf []byte, width, height, stride int) error {
	dst := &image.Gray{
		Pix:    buf,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}

	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	var p Polygon
	if err := p.AddPath(ctm, tc.Path); err != nil {
		return err
	}

	r := NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
	r.Strategy = s
	rule := NonZero
	if tc.Rule == testcases.EvenOdd {
		rule = EvenOdd
	}
	paint := Solid{
		Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Op:    draw.Src,
	}
	return r.Fill(&p, rule, dst, paint, nil)
}
