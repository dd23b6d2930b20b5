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

var precisionCases = []TestCase{
	// Subpixel positioning
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},

	// Thin shapes
	{
		Name:   "sliver_y_integer",
		Path:   polygon(rect(5, 10, 59, 10.25)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "sliver_y_half",
		Path:   polygon(rect(5, 10.5, 59, 11.5)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "needle",
		Path:   polygon([]vec.Vec2{pt(4, 60), pt(60, 4), pt(60.2, 4.2)}),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "near_parallel",
		Path:   nearParallel(),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},

	// Large coordinates
	{
		Name:   "large_coord_centered",
		Path:   largeOffsetRectangle(1000, 1000, 20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "small_shape_large_offset",
		Path:   largeOffsetRectangle(10000, 10000, 2),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "float64_precision",
		Path:   float64PrecisionShape(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// offsetRectangle builds a rectangular path with a subpixel offset applied
// to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) path.Path {
	return polygon(rect(x1+offset, y1+offset, x1+w+offset, y1+h+offset))
}

// nearParallel builds two long, thin triangles whose long edges cross at a
// very shallow angle.
func nearParallel() path.Path {
	return polygon(
		[]vec.Vec2{pt(2, 30), pt(62, 33), pt(62, 34)},
		[]vec.Vec2{pt(2, 33), pt(62, 30), pt(62, 31)},
	)
}

// largeOffsetRectangle builds a square centred at large coordinates and
// shifts it back to the centre of the canvas. This tests precision at
// large offsets.
func largeOffsetRectangle(cx, cy, size float64) path.Path {
	translateX := 32 - cx
	translateY := 32 - cy

	x1 := cx - size/2 + translateX
	y1 := cy - size/2 + translateY
	x2 := cx + size/2 + translateX
	y2 := cy + size/2 + translateY
	return polygon(rect(x1, y1, x2, y2))
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() path.Path {
	// These values differ only in the low bits of float64.
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	return polygon(rect(base-10+delta1, base-10+delta1, base+10+delta2, base+10+delta2))
}
