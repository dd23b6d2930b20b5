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

// Sample positions of the Faster strategy, in 26.6 units relative to the
// top of the row. Each sample stands for a band of height fasterStep.
const (
	fasterSamples = 4
	fasterStep    = subOne / fasterSamples
	fasterOffset  = fasterStep / 2
)

// NoAA samples once per row, at the pixel centre.
const noaaOffset = subOne / 2

// advanceTo moves the active edge list to the sample position ys.
// Edges ending at or above ys are dropped and edges starting at or above
// ys are added from the GEL. Then the x positions are updated and the list
// is sorted by x.
//
// An edge is active at ys if v0.Y <= ys < v1.Y.
func (r *Rasterizer) advanceTo(ys int32) {
	j := 0
	for _, e := range r.ael {
		if int32(e.v1.Y) <= ys {
			continue
		}
		e.fx = e.fxAt(ys)
		r.ael[j] = e
		j++
	}
	r.ael = r.ael[:j]

	for r.next < len(r.gel) && int32(r.gel[r.next].v0.Y) <= ys {
		e := r.gel[r.next]
		r.next++
		if int32(e.v1.Y) <= ys {
			continue
		}
		e.fx = e.fxAt(ys)
		r.ael = append(r.ael, e)
	}

	// The list is nearly sorted from the previous sample.
	for i := 1; i < len(r.ael); i++ {
		e := r.ael[i]
		k := i
		for k > 0 && r.ael[k-1].fx > e.fx {
			r.ael[k] = r.ael[k-1]
			k--
		}
		r.ael[k] = e
	}
}

// sampleRows calls sample for every row between the top of the polygon
// and the bottom of the polygon or the clip box, whichever comes first.
// The samples of a row lie between first and last, relative to the top of
// the row. Runs of rows without active edges are skipped.
func (r *Rasterizer) sampleRows(first, last int32, sample func(row int) error) error {
	r.buildGEL()
	r.ael = r.ael[:0]
	r.next = 0

	rowEnd := min(int((r.yMax-first+subMask)>>subBits), r.clipY1)
	row := max(int(r.yMin>>subBits), r.clipY0)
	for row < rowEnd {
		if len(r.ael) == 0 {
			// skip to the first row with a sample at or below the next edge
			if r.next >= len(r.gel) {
				break
			}
			y0 := int32(r.gel[r.next].v0.Y)
			row = max(row, int((y0-last+subMask)>>subBits))
			if row >= rowEnd {
				break
			}
			r.state = ActiveSweep
		}
		if err := sample(row); err != nil {
			return err
		}
		row++
	}
	r.ael = r.ael[:0]
	return nil
}

// fillFaster samples every row at four sub-scanlines. At every sample,
// each active edge is treated as a vertical segment of height fasterStep.
func (r *Rasterizer) fillFaster() error {
	return r.sampleRows(fasterOffset, fasterOffset+(fasterSamples-1)*fasterStep, func(row int) error {
		base := int32(row) << subBits
		r.advanceTo(base + fasterOffset)
		if r.direct && len(r.ael) > 0 && r.directFaster(row) {
			return nil
		}

		for k := range int32(fasterSamples) {
			if k > 0 {
				r.advanceTo(base + fasterOffset + k*fasterStep)
			}
			if err := r.accumulateSample(); err != nil {
				return err
			}
		}
		r.emitRow(row)
		return nil
	})
}

// accumulateSample adds the coverage of the current sample of the Faster
// strategy to the delta buffer.
func (r *Rasterizer) accumulateSample() error {
	if len(r.ael)%2 != 0 {
		return ErrUnbalanced
	}
	var w int32
	for _, e := range r.ael {
		sign := r.coverSign(e, &w)
		if sign == 0 {
			continue
		}
		x := e.fx >> (16 - fineBits)
		t := trap{xa: x, xb: x, h: fasterStep}
		r.accumulate(&t, sign)
	}
	return nil
}

// fillNoAA samples every row once, at the pixel centres. A pixel is
// inside if its centre is inside the polygon.
func (r *Rasterizer) fillNoAA() error {
	return r.sampleRows(noaaOffset, noaaOffset, func(row int) error {
		r.advanceTo(int32(row)<<subBits + noaaOffset)
		if len(r.ael)%2 != 0 {
			return ErrUnbalanced
		}
		if r.direct && len(r.ael) > 0 && r.directNoAA(row) {
			return nil
		}

		var w int32
		for _, e := range r.ael {
			sign := r.coverSign(e, &w)
			if sign == 0 {
				continue
			}
			r.addCell(pixelCol(e.fx>>16), sign*CoverageOne)
		}
		r.emitRow(row)
		return nil
	})
}
