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
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
)

// Rasterizer converts polygons to pixel coverage.
// The caller creates one instance and reuses it for many polygons.
// Internal buffers grow as needed but never shrink, so that a rasterizer
// in steady state does not allocate.
//
// A Rasterizer must not be used by more than one goroutine at a time.
type Rasterizer struct {
	// Clip is the region of the destination which may be modified, in
	// device coordinates. Must have integer-aligned coordinates. The
	// region is further restricted to the bounds of the destination image.
	Clip rect.Rect

	// Strategy selects the scan conversion algorithm.
	Strategy Strategy

	// DirectFill allows the rasterizer to write rows directly, bypassing
	// the filler, when the paint is an opaque [Solid] with draw.Src and the
	// row has a simple structure. The pixels written are the same as those
	// the standard filler would produce.
	DirectFill bool

	// Validate enables checking of every polygon with [Polygon.Validate]
	// before it is drawn.
	Validate bool

	// MaxEdges is the maximum number of non-horizontal edges per polygon.
	// Must be > 0.
	MaxEdges int

	// MaxEvents is the maximum length of the event queue of the [Better]
	// strategy, including edge crossings. Must be > 0.
	MaxEvents int

	// narrowKeyLimit is the vertex count below which 32-bit sort keys are
	// used.
	narrowKeyLimit int

	// per-draw state
	rule   FillRule
	dst    draw.Image
	paint  Paint
	filler Filler
	solid  Solid
	direct bool // direct fill is possible for this draw
	narrow bool // use 32-bit sort keys
	state  SweepState
	stats  Stats

	clipX0, clipX1 int // columns
	clipY0, clipY1 int // rows
	yMin, yMax     int32

	// pending row
	minX, maxX int

	// Internal buffers (reused across calls)
	edges    []edge
	gel      []*edge
	ael      []*edge
	keys32   []uint32
	keys64   []uint64
	order    []int32
	events   []event
	cur      int // index of the event being processed
	next     int // index of the next GEL entry to activate
	cells    []int32
	dedges   []directEdge
	rowCover []int32

	stdFiller Filler
}

// NewRasterizer creates a new Rasterizer with the given clip rectangle
// and default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.setDefaults(clip)
	return r
}

func (r *Rasterizer) setDefaults(clip rect.Rect) {
	r.Clip = clip
	r.Strategy = Better
	r.DirectFill = true
	r.Validate = false
	r.MaxEdges = defaultMaxEdges
	r.MaxEvents = defaultMaxEvents
	r.narrowKeyLimit = defaultNarrowKeyLimit
}

// Reset resets the Rasterizer to its initial state with the given clip
// rectangle, preserving internal buffer capacity for reuse.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.setDefaults(clip)

	r.dst, r.paint, r.filler = nil, nil, nil
	r.stats = Stats{}
	r.state = AwaitingEdges

	r.edges = r.edges[:0]
	r.gel = r.gel[:0]
	r.ael = r.ael[:0]
	r.keys32 = r.keys32[:0]
	r.keys64 = r.keys64[:0]
	r.order = r.order[:0]
	r.events = r.events[:0]
	r.dedges = r.dedges[:0]
	r.rowCover = r.rowCover[:0]
	clear(r.cells)
	r.cells = r.cells[:0]
}

// Default values for rasterizer parameters.
const (
	defaultMaxEdges  = 1 << 20
	defaultMaxEvents = 1 << 22
)

// Fill draws the polygon p into dst, using the given fill rule and paint.
//
// Coverage is delivered row by row through filler. If filler is nil, the
// standard filler from [NewFiller] is used.
//
// If an error is returned, dst may hold a partial rendering and should be
// discarded. The rasterizer itself remains usable.
func (r *Rasterizer) Fill(p *Polygon, rule FillRule, dst draw.Image, paint Paint, filler Filler) error {
	r.stats = Stats{}
	r.state = AwaitingEdges

	if r.Validate {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	if filler == nil {
		if r.stdFiller == nil {
			r.stdFiller = NewFiller()
		}
		filler = r.stdFiller
	}
	r.rule, r.dst, r.paint, r.filler = rule, dst, paint, filler
	defer func() {
		r.dst, r.paint, r.filler = nil, nil, nil
	}()

	if !r.setClip(dst.Bounds()) {
		r.state = Drained
		return nil
	}

	r.direct = false
	if r.DirectFill {
		switch s := paint.(type) {
		case Solid:
			r.solid, r.direct = s, s.opaqueSrc()
		case *Solid:
			r.solid, r.direct = *s, s.opaqueSrc()
		}
	}

	n := p.NumVertices()
	r.narrow = n < min(r.narrowKeyLimit, defaultNarrowKeyLimit)

	err := r.buildEdges(p)
	if err == nil && len(r.edges) > 0 {
		r.cells = slices.Grow(r.cells[:0], r.clipX1)[:r.clipX1]
		r.minX, r.maxX = math.MaxInt, math.MinInt

		switch r.Strategy {
		case Faster:
			err = r.fillFaster()
		case NoAA:
			err = r.fillNoAA()
		default:
			err = r.fillBetter()
		}
	}
	if err != nil {
		clear(r.cells)
		r.ael = r.ael[:0]
		Logger().Warn("fill abandoned",
			slog.String("strategy", r.Strategy.String()),
			slog.Int("vertices", n),
			slog.Int("edges", len(r.edges)),
			slog.String("error", err.Error()))
		return fmt.Errorf("fill: %w", err)
	}
	r.state = Drained

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("fill",
			slog.String("strategy", r.Strategy.String()),
			slog.String("rule", rule.String()),
			slog.Int("vertices", n),
			slog.Int("edges", len(r.edges)),
			slog.Bool("narrowKeys", r.narrow),
			slog.Int("rows", r.stats.Rows),
			slog.Int("directRows", r.stats.DirectRows),
			slog.Int("swaps", r.stats.Swaps),
			slog.Int("discardedSwaps", r.stats.DiscardedSwaps))
	}
	return nil
}

// setClip computes the pixel clip box from r.Clip and the destination
// bounds. It returns false if the clip box is empty.
func (r *Rasterizer) setClip(b image.Rectangle) bool {
	const maxPixel = int(MaxCoord>>subBits) + 1
	r.clipX0 = max(int(math.Floor(r.Clip.LLx)), b.Min.X, 0)
	r.clipX1 = min(int(math.Ceil(r.Clip.URx)), b.Max.X, maxPixel)
	r.clipY0 = max(int(math.Floor(r.Clip.LLy)), b.Min.Y, 0)
	r.clipY1 = min(int(math.Ceil(r.Clip.URy)), b.Max.Y, maxPixel)
	return r.clipX0 < r.clipX1 && r.clipY0 < r.clipY1
}

// emitRow passes the pending row to the filler, if any column of it has
// been touched.
func (r *Rasterizer) emitRow(y int) {
	if r.minX <= r.maxX {
		r.state = EmitRow
		r.filler(r.dst, r.paint, r.cells, y, r.minX, r.maxX)
		r.stats.Rows++
		r.state = ActiveSweep
	}
	r.minX, r.maxX = math.MaxInt, math.MinInt
}

// Stats describes the most recent call to [Rasterizer.Fill].
type Stats struct {
	// Rows is the number of rows passed to the filler.
	Rows int

	// DirectRows is the number of rows written directly, without
	// calling the filler.
	DirectRows int

	// Swaps is the number of edge crossings applied to the active edge
	// list. DiscardedSwaps is the number of crossing events which were
	// found to be stale when they were reached. Both are zero except for
	// the Better strategy.
	Swaps          int
	DiscardedSwaps int

	// State is the state of the sweep when Fill returned. This is Drained
	// after a successful call.
	State SweepState
}

// Stats returns statistics about the most recent call to
// [Rasterizer.Fill].
func (r *Rasterizer) Stats() Stats {
	s := r.stats
	s.State = r.state
	return s
}

// SweepState is the state of the sweep through a polygon.
type SweepState int

const (
	// AwaitingEdges means no edge has become active yet.
	AwaitingEdges SweepState = iota

	// ActiveSweep means the sweep is advancing through the polygon.
	ActiveSweep

	// EmitRow means a completed row is being passed to the filler.
	EmitRow

	// Drained means all edges have been processed.
	Drained
)

func (s SweepState) String() string {
	switch s {
	case AwaitingEdges:
		return "awaiting edges"
	case ActiveSweep:
		return "active sweep"
	case EmitRow:
		return "emit row"
	case Drained:
		return "drained"
	default:
		return fmt.Sprintf("SweepState(%d)", int(s))
	}
}
