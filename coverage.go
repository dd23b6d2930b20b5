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

// Coverage accumulation model:
//
// Within one slice of a pixel row, every edge is a straight segment from
// (xa, top) to (xb, top+h). For a column c, cover(c) is the area of the part
// of column c which lies inside the slice and to the right of the segment,
// in units of 1/CoverageOne pixel. The rasterizer does not store cover(c)
// directly. Instead, the delta buffer receives cover(c) - cover(c-1) in
// column c, so that the prefix sum over the row reconstructs the coverage.
// Right of the segment the coverage stays at the full slice area, so only
// the columns touched by the segment plus one need to be written.
//
// cover(c) is computed as the difference of the rounded area function
// area(X) at the two column boundaries. The rounding errors telescope:
// the deltas of one segment always add up to exactly 64*h.

// trap is the part of one edge inside a slice of a pixel row.
type trap struct {
	xa, xb int64 // x at the top and bottom of the slice, in units of 1/(1<<xBits) px
	h      int64 // slice height in 26.6 units, 1 <= h <= 64
}

// cols returns the first and last column touched by the segment.
func (t *trap) cols() (c0, c1 int) {
	xl, xr := min(t.xa, t.xb), max(t.xa, t.xb)
	return int(xl >> xBits), int(xr >> xBits)
}

// area returns the area of the region inside the slice, right of the
// segment and left of the vertical line at X, in units of 1/CoverageOne
// pixel, rounded to nearest.
func (t *trap) area(X int64) int64 {
	xl, xr := min(t.xa, t.xb), max(t.xa, t.xb)
	var f2 int64 // twice the area, in units of 1/(1<<fineBits) of the result
	switch {
	case X <= xl:
		return 0
	case X >= xr:
		f2 = t.h * (2*X - t.xa - t.xb)
	default:
		d := X - xl
		f2 = t.h * d * d / (xr - xl)
	}
	return (f2 + 1<<fineBits) >> (fineBits + 1)
}

// cover returns the coverage of column c to the right of the segment.
func (t *trap) cover(c int) int32 {
	x := int64(c) << xBits
	return int32(t.area(x+1<<xBits) - t.area(x))
}

// full returns the coverage of a column entirely right of the segment.
func (t *trap) full() int32 {
	return int32(t.h) << subBits
}

// accumulate adds sign times the coverage right of the segment t to the
// delta buffer.
func (r *Rasterizer) accumulate(t *trap, sign int32) {
	c0, c1 := t.cols()
	c0 = max(c0, r.clipX0)
	c1 = min(c1, r.clipX1-1)
	var prev int32
	for c := c0; c <= c1; c++ {
		cov := t.cover(c)
		r.addCell(c, sign*(cov-prev))
		prev = cov
	}
	r.addCell(max(c1+1, c0), sign*(t.full()-prev))
}

// addCell adds v to the delta of column c. Contributions left of the clip
// box are collected in the first column, since they still affect the
// prefix sums. Contributions right of the clip box are dropped, but the
// pending row is extended to the edge of the clip box.
func (r *Rasterizer) addCell(c int, v int32) {
	if v == 0 {
		return
	}
	if c >= r.clipX1 {
		r.maxX = r.clipX1 - 1
		return
	}
	if c < r.clipX0 {
		c = r.clipX0
	}
	r.cells[c] += v
	if c < r.minX {
		r.minX = c
	}
	if c > r.maxX {
		r.maxX = c
	}
}

// coverSign returns the factor with which an edge enters the coverage of
// the current slice and updates the winding state w. Edges must be visited
// from left to right.
//
// Under the nonzero rule an edge opens coverage (+1) when the winding
// number leaves zero and closes it (-1) when it returns to zero; all other
// edges contribute nothing. Under the even-odd rule edges alternate.
func (r *Rasterizer) coverSign(e *edge, w *int32) int32 {
	if r.rule == EvenOdd {
		*w ^= 1
		if *w != 0 {
			return 1
		}
		return -1
	}
	before := *w
	*w += e.sign
	switch {
	case before == 0 && *w != 0:
		return 1
	case before != 0 && *w == 0:
		return -1
	default:
		return 0
	}
}

// pixelCol returns the first column whose centre lies at or to the right
// of x, where x is given in 26.6 units.
func pixelCol(x int64) int {
	return int((x - subOne/2 + subMask) >> subBits)
}
