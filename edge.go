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
	"slices"
)

// edge is a non-horizontal polygon edge, directed so that v0 comes before
// v1 in sweep order.
type edge struct {
	v0, v1 *Vertex
	dx, dy int64 // v1 - v0, dy > 0
	sign   int32 // -1 if the contour runs from v0 to v1, +1 otherwise
	idx    int32 // position in Rasterizer.edges

	// lastY and lastX cache the most recent result of xAt.
	lastY int32
	lastX int64

	// fx is the x position at the current sample (Faster and NoAA) in
	// 16.16 fixed point relative to the 26.6 grid.
	fx int64
}

// newEdge returns the edge between two vertices of a contour, given in
// contour order. ok is false for horizontal edges.
func newEdge(a, b *Vertex) (e edge, ok bool) {
	if a.Y == b.Y {
		return edge{}, false
	}
	e.sign = -1
	if b.Key() < a.Key() {
		a, b = b, a
		e.sign = 1
	}
	e.v0, e.v1 = a, b
	e.dx = int64(b.X) - int64(a.X)
	e.dy = int64(b.Y) - int64(a.Y)
	e.lastY = -1
	return e, true
}

// xAt returns the x position of the edge at sweep position y, in units of
// 1/(1<<xBits) pixel, rounded down. y must lie in [v0.Y, v1.Y].
func (e *edge) xAt(y int32) int64 {
	if y == e.lastY {
		return e.lastX
	}
	x0 := int64(e.v0.X) << fineBits
	x := x0 + floorDiv((int64(y)-int64(e.v0.Y))*e.dx<<fineBits, e.dy)
	e.lastY, e.lastX = y, x
	return x
}

// fxAt returns the x position of the edge at sweep position y in 16.16
// fixed point relative to the 26.6 grid, rounded down. The position is
// computed from v0 every time, so the error does not grow along the edge.
func (e *edge) fxAt(y int32) int64 {
	return int64(e.v0.X)<<16 + floorDiv((int64(y)-int64(e.v0.Y))*e.dx<<16, e.dy)
}

// side reports on which side of the line through e the point (x, y) lies:
// positive on the right, negative on the left, zero on the line.
func (e *edge) side(x, y int64) int64 {
	return (x-int64(e.v0.X))*e.dy - (y-int64(e.v0.Y))*e.dx
}

// cmpSlope compares dx/dy of two edges exactly. Below a common point, the
// edge with the smaller slope lies on the left.
func cmpSlope(a, b *edge) int {
	l, r := a.dx*b.dy, b.dx*a.dy
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// buildEdges fills r.edges with the edges of all contours of p and records
// the vertical extent of the polygon. Horizontal edges are dropped.
func (r *Rasterizer) buildEdges(p *Polygon) error {
	r.edges = r.edges[:0]
	r.yMin, r.yMax = int32(MaxCoord)+1, -1

	start := 0
	for _, n := range p.Contours {
		n = min(n, len(p.Vertices)-start)
		if n <= 0 {
			break
		}
		vs := p.Vertices[start : start+n]
		for i := range vs {
			e, ok := newEdge(&vs[i], &vs[(i+1)%n])
			if !ok {
				continue
			}
			if len(r.edges) >= min(r.MaxEdges, 1<<wideIndexBits) {
				return fmt.Errorf("%d edges: %w", len(r.edges)+1, ErrScratchLimit)
			}
			e.idx = int32(len(r.edges))
			r.edges = append(r.edges, e)
			r.yMin = min(r.yMin, int32(e.v0.Y))
			r.yMax = max(r.yMax, int32(e.v1.Y))
		}
		start += n
	}
	return nil
}

// Sort keys.
//
// Both the global edge list and the vertex events are ordered by packing the
// sort criteria and the item index into one integer and sorting the
// integers. Below narrowKeyLimit vertices the keys fit into 32 bits;
// above it 64-bit keys are used. Both widths order items by y, then kind,
// then index, so the choice never changes the result.
//
// Indices are returned as int32, so the index and kind bits of a wide key
// must fit into 31 bits.
const (
	defaultNarrowKeyLimit = 1 << narrowIndexBits
	narrowIndexBits       = 11
	wideIndexBits         = 30
	coordMask             = int64(MaxCoord)
)

type sortKey interface {
	~uint32 | ~uint64
}

// sortedIndices sorts keys in place and appends the indices stored in their
// low idxBits bits to out.
func sortedIndices[K sortKey](keys []K, idxBits uint, out []int32) []int32 {
	slices.Sort(keys)
	mask := K(1)<<idxBits - 1
	for _, k := range keys {
		out = append(out, int32(k&mask))
	}
	return out
}

// buildGEL fills r.gel with the edges sorted by their upper endpoint.
func (r *Rasterizer) buildGEL() {
	r.gel = r.gel[:0]
	if r.narrow {
		keys := r.keys32[:0]
		for i := range r.edges {
			y := int64(r.edges[i].v0.Y) & coordMask
			keys = append(keys, uint32(y)<<narrowIndexBits|uint32(i))
		}
		r.order = sortedIndices(keys, narrowIndexBits, r.order[:0])
		r.keys32 = keys
	} else {
		keys := r.keys64[:0]
		for i := range r.edges {
			y := int64(r.edges[i].v0.Y) & coordMask
			keys = append(keys, uint64(y)<<wideIndexBits|uint64(i))
		}
		r.order = sortedIndices(keys, wideIndexBits, r.order[:0])
		r.keys64 = keys
	}
	for _, i := range r.order {
		r.gel = append(r.gel, &r.edges[i])
	}
}
