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
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed-point layout.
//
// Geometry uses 26.6 fixed point: a pixel is subOne units tall and wide.
// While integrating coverage, x positions carry fineBits additional
// fractional bits. Coverage is measured in units of 1/CoverageOne of a
// pixel, i.e. the area of one sub-pixel square.
const (
	subBits  = 6
	subOne   = 1 << subBits
	subMask  = subOne - 1
	fineBits = 8

	// xBits is the number of fractional bits of an x position during
	// coverage integration.
	xBits = subBits + fineBits

	// CoverageOne is the coverage value of a fully covered pixel.
	CoverageOne = subOne * subOne

	// MaxCoord is the largest coordinate which can be rasterized. Vertices
	// must lie in [0, MaxCoord] in both directions.
	MaxCoord fixed.Int26_6 = 1<<20 - 1
)

// Vertex is a polygon vertex in device space.
type Vertex struct {
	X, Y fixed.Int26_6
}

// Key returns the sweep-order key of the vertex: y in the high 32 bits,
// x in the low 32 bits. Vertices compare in sweep order (top to bottom,
// then left to right) when their keys are compared as integers.
func (v *Vertex) Key() uint64 {
	return uint64(uint32(v.Y))<<32 | uint64(uint32(v.X))
}

// toFixed converts a device-space coordinate to 26.6 fixed point, rounding
// to nearest and clamping to [0, MaxCoord]. NaN maps to 0.
func toFixed(x float64) fixed.Int26_6 {
	x = math.Round(x * subOne)
	if !(x > 0) {
		return 0
	}
	if x > float64(MaxCoord) {
		return MaxCoord
	}
	return fixed.Int26_6(x)
}

// floorDiv returns a/b rounded towards negative infinity. b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// floorDivMod returns q, r with a = q*b + r and 0 <= r < b. b must be
// positive.
func floorDivMod(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
