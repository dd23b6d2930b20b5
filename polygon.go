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

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a set of closed contours which are filled together.
//
// Contour i consists of Contours[i] consecutive entries of Vertices,
// starting after the vertices of all earlier contours. Every contour is
// implicitly closed by an edge from its last vertex back to its first.
//
// The zero value is an empty polygon. A Polygon can be reused by calling
// [Polygon.Reset].
type Polygon struct {
	Vertices []Vertex
	Contours []int
}

// Reset removes all contours, keeping the allocated memory.
func (p *Polygon) Reset() {
	p.Vertices = p.Vertices[:0]
	p.Contours = p.Contours[:0]
}

// NumVertices returns the total number of vertices in all contours.
func (p *Polygon) NumVertices() int {
	return len(p.Vertices)
}

// AddContour appends a contour given in 26.6 device coordinates.
// Empty contours are ignored.
func (p *Polygon) AddContour(pts ...fixed.Point26_6) {
	if len(pts) == 0 {
		return
	}
	for _, pt := range pts {
		p.Vertices = append(p.Vertices, Vertex{X: pt.X, Y: pt.Y})
	}
	p.Contours = append(p.Contours, len(pts))
}

// AddVec appends a contour given in user space. The points are mapped to
// device space by m, rounded to the nearest 1/64 pixel and clamped to
// [0, MaxCoord].
func (p *Polygon) AddVec(m matrix.Matrix, pts ...vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	for _, pt := range pts {
		p.Vertices = append(p.Vertices, transform(m, pt))
	}
	p.Contours = append(p.Contours, len(pts))
}

// AddPath appends the subpaths of a path as contours, mapping them to device
// space with m as in [Polygon.AddVec]. Every subpath becomes a closed
// contour, whether or not it ends with a close command.
//
// Only straight segments are supported. If the path contains curves, the
// polygon is left unchanged and ErrCurve is returned.
func (p *Polygon) AddPath(m matrix.Matrix, pth path.Path) error {
	nv, nc := len(p.Vertices), len(p.Contours)
	start := nv
	flush := func() {
		if n := len(p.Vertices) - start; n > 0 {
			p.Contours = append(p.Contours, n)
		}
		start = len(p.Vertices)
	}

	for cmd, pts := range pth {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			p.Vertices = append(p.Vertices, transform(m, pts[0]))
		case path.CmdLineTo:
			p.Vertices = append(p.Vertices, transform(m, pts[0]))
		case path.CmdClose:
			flush()
		default:
			p.Vertices = p.Vertices[:nv]
			p.Contours = p.Contours[:nc]
			return ErrCurve
		}
	}
	flush()
	return nil
}

func transform(m matrix.Matrix, v vec.Vec2) Vertex {
	x := m[0]*v.X + m[2]*v.Y + m[4]
	y := m[1]*v.X + m[3]*v.Y + m[5]
	return Vertex{X: toFixed(x), Y: toFixed(y)}
}

// Validate checks the polygon for input the rasterizer does not handle:
// contours with fewer than three vertices, contour lengths which do not
// add up to the number of vertices, and coordinates outside
// [0, MaxCoord].
func (p *Polygon) Validate() error {
	total := 0
	for i, n := range p.Contours {
		if n < 3 {
			return fmt.Errorf("contour %d: %w", i, ErrShortContour)
		}
		total += n
	}
	if total != len(p.Vertices) {
		return fmt.Errorf("scanline: contours cover %d of %d vertices",
			total, len(p.Vertices))
	}
	for i, v := range p.Vertices {
		if v.X < 0 || v.X > MaxCoord || v.Y < 0 || v.Y > MaxCoord {
			return fmt.Errorf("vertex %d (%v, %v): %w", i, v.X, v.Y, ErrCoordRange)
		}
	}
	return nil
}
