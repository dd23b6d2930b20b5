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

// Command render rasterizes all test cases and writes the results as
// grayscale PNG files, for visual comparison with the reference images.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/scanline"
	"seehuhn.de/go/scanline/testcases"
)

func main() {
	strategy := flag.String("strategy", "better", "scan conversion strategy (better, faster, noaa)")
	outDir := flag.String("out", "debug/render", "output directory")
	verbose := flag.Bool("v", false, "log a summary of every draw call")
	flag.Parse()

	s, err := scanline.ParseStrategy(*strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		scanline.SetLogger(slog.New(h))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := render(tc, s, filepath.Join(*outDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func render(tc testcases.TestCase, s scanline.Strategy, fname string) error {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	err := scanline.RenderExample(tc, s, img.Pix, tc.Width, tc.Height, img.Stride)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
