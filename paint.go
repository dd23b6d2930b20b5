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
	"slices"

	"golang.org/x/image/draw"
)

// Paint composites a source into one row of the destination.
//
// PaintSpan is called with the final coverage of the pixels
// (x0, y), (x0+1, y), ..., in the range 0 to CoverageOne. Pixels with
// coverage 0 must be left unchanged.
type Paint interface {
	PaintSpan(dst draw.Image, y, x0 int, cover []int32)
}

// Filler consumes the coverage deltas of one row.
//
// The rasterizer calls the filler once per row, with the columns x0 to x1
// (inclusive) of cells holding the row's deltas. The filler must turn the
// deltas into coverage (by forming prefix sums), composite the paint, and
// set cells[x0:x1+1] to zero before returning. The filler must not call
// back into the rasterizer.
type Filler func(dst draw.Image, p Paint, cells []int32, y, x0, x1 int)

// NewFiller returns the standard filler. Coverage values are clamped to
// [0, CoverageOne] before being passed to the paint.
//
// The returned filler owns a scratch buffer and must not be shared between
// goroutines.
func NewFiller() Filler {
	var cover []int32
	return func(dst draw.Image, p Paint, cells []int32, y, x0, x1 int) {
		row := cells[x0 : x1+1]
		cover = slices.Grow(cover[:0], len(row))[:len(row)]
		var acc int32
		for i, d := range row {
			acc += d
			cover[i] = min(max(acc, 0), CoverageOne)
		}
		clear(row)
		p.PaintSpan(dst, y, x0, cover)
	}
}

// Solid paints a uniform colour.
type Solid struct {
	// Color is the (alpha-premultiplied) source colour.
	Color color.RGBA

	// Op is the compositing operator, either draw.Src or draw.Over.
	// With draw.Src, partially covered pixels are interpolated between
	// the destination and the source.
	Op draw.Op
}

// PaintSpan implements the [Paint] interface.
func (s Solid) PaintSpan(dst draw.Image, y, x0 int, cover []int32) {
	blend := blendSrc
	if s.Op == draw.Over {
		blend = blendOver
	}
	if img, ok := dst.(*image.RGBA); ok {
		pix := img.Pix[img.PixOffset(x0, y):]
		for i, cov := range cover {
			if cov == 0 {
				continue
			}
			p := pix[4*i : 4*i+4 : 4*i+4]
			c := blend(s.Color, color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}, cov)
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		}
		return
	}
	for i, cov := range cover {
		if cov == 0 {
			continue
		}
		x := x0 + i
		d := color.RGBAModel.Convert(dst.At(x, y)).(color.RGBA)
		dst.Set(x, y, blend(s.Color, d, cov))
	}
}

// fillSpan sets the pixels x0, ..., x1-1 of row y to the source colour.
// This gives the same result as PaintSpan with full coverage when the
// colour is opaque.
func (s Solid) fillSpan(dst draw.Image, y, x0, x1 int) {
	if x0 >= x1 {
		return
	}
	if img, ok := dst.(*image.RGBA); ok {
		c := s.Color
		pix := img.Pix[img.PixOffset(x0, y):img.PixOffset(x1, y)]
		for i := 0; i < len(pix); i += 4 {
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
		return
	}
	for x := x0; x < x1; x++ {
		dst.Set(x, y, s.Color)
	}
}

// opaqueSrc reports whether the paint replaces the destination with one
// opaque colour wherever the coverage is full.
func (s Solid) opaqueSrc() bool {
	return s.Op == draw.Src && s.Color.A == 0xff
}

// Pattern paints an image. Pixel (x, y) of the destination receives pixel
// (x, y) + Offset of Src.
type Pattern struct {
	Src    image.Image
	Offset image.Point

	// Op is the compositing operator, either draw.Src or draw.Over.
	Op draw.Op
}

// PaintSpan implements the [Paint] interface.
func (p Pattern) PaintSpan(dst draw.Image, y, x0 int, cover []int32) {
	blend := blendSrc
	if p.Op == draw.Over {
		blend = blendOver
	}
	for i, cov := range cover {
		if cov == 0 {
			continue
		}
		x := x0 + i
		s := color.RGBAModel.Convert(p.Src.At(x+p.Offset.X, y+p.Offset.Y)).(color.RGBA)
		d := color.RGBAModel.Convert(dst.At(x, y)).(color.RGBA)
		dst.Set(x, y, blend(s, d, cov))
	}
}

// blendSrc interpolates between d and s. Coverage 0 gives d and full
// coverage gives s.
func blendSrc(s, d color.RGBA, cov int32) color.RGBA {
	a := uint32(cov)
	b := CoverageOne - a
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*b + CoverageOne/2) >> 12)
	}
	return color.RGBA{
		R: mix(s.R, d.R),
		G: mix(s.G, d.G),
		B: mix(s.B, d.B),
		A: mix(s.A, d.A),
	}
}

// blendOver composites s, scaled by the coverage, over d.
func blendOver(s, d color.RGBA, cov int32) color.RGBA {
	a := uint32(cov)
	scale := func(v uint8) uint32 {
		return (uint32(v)*a + CoverageOne/2) >> 12
	}
	sa := scale(s.A)
	over := func(s, d uint8) uint8 {
		return uint8(scale(s) + (uint32(d)*(0xff-sa)+0x7f)/0xff)
	}
	return color.RGBA{
		R: over(s.R, d.R),
		G: over(s.G, d.G),
		B: over(s.B, d.B),
		A: over(s.A, d.A),
	}
}
