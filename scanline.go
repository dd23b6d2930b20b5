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

// Package scanline implements a sweep-line polygon rasterizer.
//
// A [Rasterizer] takes a [Polygon] (one or more closed contours of
// fixed-point device-space vertices) and a [FillRule], walks the polygon
// from top to bottom and produces per-pixel coverage for every scanline it
// touches. Coverage is delivered as signed per-column deltas in a shared
// buffer; once per row a [Filler] turns the deltas into final coverage and
// composites a [Paint] into the destination image.
//
// Three strategies are available. [Better] runs a general sweep which
// tracks edge crossings exactly and integrates coverage analytically.
// [Faster] samples each scanline at four fixed sub-scanlines. [NoAA] takes
// a single sample per scanline and produces binary coverage.
package scanline

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"
)

// FillRule specifies which regions bounded by the polygon count as inside.
type FillRule int

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills points with an odd number of crossings.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// Strategy selects the scan conversion algorithm.
type Strategy int

const (
	// Better is the exact sweep. Edge crossings are found with exact
	// rational arithmetic and coverage is integrated over the true vertical
	// extent of every slice.
	Better Strategy = iota

	// Faster samples every scanline at four fixed sub-scanlines.
	Faster

	// NoAA samples every scanline once, at its centre, and produces binary
	// coverage.
	NoAA
)

func (s Strategy) String() string {
	switch s {
	case Better:
		return "better"
	case Faster:
		return "faster"
	case NoAA:
		return "noaa"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy returns the strategy with the given name, as returned by
// [Strategy.String].
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{Better, Faster, NoAA} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("scanline: unknown strategy %q", name)
}

var (
	// ErrScratchLimit is returned when a draw needs more scratch space than
	// the limits configured on the Rasterizer allow. The draw is abandoned
	// and its partial output must be discarded.
	ErrScratchLimit = errors.New("scanline: scratch buffer limit exceeded")

	// ErrUnbalanced is returned when an odd number of edges is active while
	// coverage is being computed. This indicates an unclosed contour or
	// coordinates outside the representable range.
	ErrUnbalanced = errors.New("scanline: odd number of active edges")

	// ErrShortContour is reported by [Polygon.Validate] for contours with
	// fewer than three vertices.
	ErrShortContour = errors.New("scanline: contour has fewer than 3 vertices")

	// ErrCoordRange is reported by [Polygon.Validate] for vertices outside
	// [0, MaxCoord].
	ErrCoordRange = errors.New("scanline: coordinate out of range")

	// ErrCurve is returned by [Polygon.AddPath] for paths which contain
	// curve segments. Curves must be flattened before rasterization.
	ErrCurve = errors.New("scanline: path contains curves")
)
