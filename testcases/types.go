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

// Package testcases contains polygons used to test the rasterizer.
//
// All geometry consists of straight segments. Curved shapes are flattened
// when the test case is built.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   path.Path     // the geometry to render, lines only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Rule   FillRule      // fill rule
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a path with one closed subpath per contour.
func polygon(contours ...[]vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, c := range contours {
			if len(c) == 0 {
				continue
			}
			if !yield(path.CmdMoveTo, []vec.Vec2{c[0]}) {
				return
			}
			for _, p := range c[1:] {
				if !yield(path.CmdLineTo, []vec.Vec2{p}) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// rect returns the corners of an axis-aligned rectangle, clockwise in
// device space.
func rect(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// reversed returns the points of a contour in reverse order.
func reversed(c []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}
