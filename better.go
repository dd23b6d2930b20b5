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

// sweepY returns the position, in whole 26.6 units, at which the event
// takes effect for coverage integration. Vertex events lie on the grid.
// Crossings are rounded to the nearest grid line.
func (ev *event) sweepY() int32 {
	y := ev.y.i
	if 2*ev.y.num >= ev.y.den {
		y++
	}
	return int32(y)
}

// fillBetter runs the exact sweep.
//
// Events are processed in order. Between two consecutive event positions
// the active edge list is constant, and the coverage of this band is
// integrated slice by slice, one slice per pixel row.
func (r *Rasterizer) fillBetter() error {
	if err := r.buildEvents(); err != nil {
		return err
	}
	r.ael = r.ael[:0]
	r.cur = 0

	yEnd := int32(r.clipY1) << subBits
	y := r.events[0].sweepY()
	for r.cur < len(r.events) {
		ev := &r.events[r.cur]
		evY := ev.sweepY()
		if evY > y {
			if y >= yEnd {
				break
			}
			if err := r.integrate(y, min(evY, yEnd)); err != nil {
				return err
			}
			y = evY
		}

		var err error
		switch ev.kind {
		case evInsert:
			r.state = ActiveSweep
			err = r.aelInsert(&r.edges[ev.a])
		case evRemove:
			err = r.aelRemove(&r.edges[ev.a])
		case evSwap:
			last := r.cur
			for last+1 < len(r.events) {
				next := &r.events[last+1]
				if next.kind != evSwap || !samePoint(ev, next) {
					break
				}
				last++
			}
			err = r.aelSwap(last)
		}
		if err != nil {
			return err
		}
		r.cur++
	}

	// flush the last partial row
	if r.minX <= r.maxX {
		r.emitRow(int((y - 1) >> subBits))
	}
	r.ael = r.ael[:0]
	return nil
}

// integrate adds the coverage of the band between sweep positions y0 and
// y1 and emits every row which is completed in the process.
func (r *Rasterizer) integrate(y0, y1 int32) error {
	if len(r.ael) == 0 {
		// The band is empty, but a row started earlier may end inside it.
		if r.minX <= r.maxX {
			row := (y0 - 1) >> subBits
			if (row+1)<<subBits <= y1 {
				r.emitRow(int(row))
			}
		}
		return nil
	}
	if len(r.ael)%2 != 0 {
		return ErrUnbalanced
	}

	y0 = max(y0, int32(r.clipY0)<<subBits)
	for y0 < y1 {
		row := y0 >> subBits
		rowEnd := (row + 1) << subBits
		ya, yb := y0, min(y1, rowEnd)

		if !(r.direct && ya&subMask == 0 && yb == rowEnd && r.directBetter(int(row))) {
			var w int32
			for _, e := range r.ael {
				sign := r.coverSign(e, &w)
				if sign == 0 {
					continue
				}
				t := trap{xa: e.xAt(ya), xb: e.xAt(yb), h: int64(yb - ya)}
				r.accumulate(&t, sign)
			}
		}
		if yb == rowEnd {
			r.emitRow(int(row))
		}
		y0 = yb
	}
	return nil
}
