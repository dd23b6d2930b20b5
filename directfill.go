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

import "slices"

// Direct fill.
//
// When the paint is an opaque solid colour with draw.Src, a row whose
// active edges form simple pairs can be written without going through the
// delta buffer: the columns touched by the left edge of a pair get the
// coverage right of that edge, the columns touched by the right edge get
// the coverage left of it, and the columns in between are set to the
// colour. The columns touched by different edges must not overlap, so
// that every column sees at most one partial edge. The coverage values and
// the blending are the same as on the general path, so both give
// identical pixels.

// directEdge is an active edge together with its segments in the current
// row.
type directEdge struct {
	t      [4]trap
	n      int
	c0, c1 int // first and last column touched
}

func (d *directEdge) add(t trap) {
	c0, c1 := t.cols()
	if d.n == 0 {
		d.c0, d.c1 = c0, c1
	} else {
		d.c0, d.c1 = min(d.c0, c0), max(d.c1, c1)
	}
	d.t[d.n] = t
	d.n++
}

// cover returns the coverage of column c right of the edge, summed over
// all segments.
func (d *directEdge) cover(c int) int32 {
	var sum int32
	for k := range d.n {
		sum += d.t[k].cover(c)
	}
	return sum
}

// pairsOK checks that the edges in r.dedges pair up into spans as the
// fill rule requires, and that no two edges touch a common column.
func (r *Rasterizer) pairsOK() bool {
	des := r.dedges
	if len(des) == 0 || len(des)%2 != 0 {
		return false
	}
	for k := 0; k < len(des); k += 2 {
		if r.rule == NonZero && r.ael[k].sign+r.ael[k+1].sign != 0 {
			return false
		}
		if des[k].c1 >= des[k+1].c0 {
			return false
		}
		if k+2 < len(des) && des[k+1].c1 >= des[k+2].c0 {
			return false
		}
	}
	return true
}

// directRow writes row y from the edges in r.dedges, which must have
// passed pairsOK.
func (r *Rasterizer) directRow(y int) {
	full := int32(CoverageOne)
	for k := 0; k < len(r.dedges); k += 2 {
		left, right := &r.dedges[k], &r.dedges[k+1]

		r.directCols(y, left, 0, 1)
		r.solid.fillSpan(r.dst, y,
			max(left.c1+1, r.clipX0), min(right.c0, r.clipX1))
		r.directCols(y, right, full, -1)
	}
	r.stats.DirectRows++
}

// directCols paints the columns touched by d with coverage
// base + sign*d.cover(c), clamped as in the standard filler.
func (r *Rasterizer) directCols(y int, d *directEdge, base, sign int32) {
	c0 := max(d.c0, r.clipX0)
	c1 := min(d.c1, r.clipX1-1)
	if c0 > c1 {
		return
	}
	n := c1 - c0 + 1
	r.rowCover = slices.Grow(r.rowCover[:0], n)[:n]
	for i := range r.rowCover {
		r.rowCover[i] = min(max(base+sign*d.cover(c0+i), 0), CoverageOne)
	}
	r.solid.PaintSpan(r.dst, y, c0, r.rowCover)
}

// directBetter tries to write the full row y of the exact sweep directly.
func (r *Rasterizer) directBetter(y int) bool {
	top := int32(y) << subBits
	bot := top + subOne

	r.dedges = r.dedges[:0]
	for _, e := range r.ael {
		var d directEdge
		d.add(trap{xa: e.xAt(top), xb: e.xAt(bot), h: subOne})
		r.dedges = append(r.dedges, d)
	}
	if !r.pairsOK() {
		return false
	}
	r.directRow(y)
	return true
}

// directFaster tries to write row y of the four-sample strategy directly.
// On entry, the active edge list must be set up for the first sample of
// the row. On success, the edges are left at the last sample.
func (r *Rasterizer) directFaster(y int) bool {
	last := int32(y)<<subBits + fasterOffset + (fasterSamples-1)*fasterStep
	if r.next < len(r.gel) && int32(r.gel[r.next].v0.Y) <= last {
		return false
	}
	for _, e := range r.ael {
		if int32(e.v1.Y) <= last {
			return false
		}
	}

	// The order at the first sample must hold for all samples.
	first := last - (fasterSamples-1)*fasterStep
	for i := 1; i < len(r.ael); i++ {
		a, b := r.ael[i-1], r.ael[i]
		for k := int32(1); k < fasterSamples; k++ {
			ys := first + k*fasterStep
			if a.fxAt(ys) > b.fxAt(ys) {
				return false
			}
		}
	}

	r.dedges = r.dedges[:0]
	for _, e := range r.ael {
		var d directEdge
		for k := range int32(fasterSamples) {
			x := e.fxAt(first+k*fasterStep) >> (16 - fineBits)
			d.add(trap{xa: x, xb: x, h: fasterStep})
		}
		r.dedges = append(r.dedges, d)
	}
	if !r.pairsOK() {
		return false
	}

	r.directRow(y)
	for _, e := range r.ael {
		e.fx = e.fxAt(last)
	}
	return true
}

// directNoAA tries to write row y of the single-sample strategy directly.
func (r *Rasterizer) directNoAA(y int) bool {
	if len(r.ael) == 0 || len(r.ael)%2 != 0 {
		return false
	}
	prev := r.clipX0
	for k := 0; k < len(r.ael); k += 2 {
		left, right := r.ael[k], r.ael[k+1]
		if r.rule == NonZero && left.sign+right.sign != 0 {
			return false
		}
		c0, c1 := pixelCol(left.fx>>16), pixelCol(right.fx>>16)
		if c0 > c1 || c0 < prev && k > 0 {
			return false
		}
		prev = c1
	}

	for k := 0; k < len(r.ael); k += 2 {
		c0 := pixelCol(r.ael[k].fx >> 16)
		c1 := pixelCol(r.ael[k+1].fx >> 16)
		r.solid.fillSpan(r.dst, y, max(c0, r.clipX0), min(c1, r.clipX1))
	}
	r.stats.DirectRows++
	return true
}
