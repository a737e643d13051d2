// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package heatmap renders matrices as heat-map images.
//
// Example:
//
//	m, _ := matrix.Random(32, 32)
//	if err := heatmap.Save(m, "out.png"); err != nil {
//	    log.Fatal(err)
//	}
package heatmap

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/densemath/dense/matrix"
)

// grid adapts a Matrix to plotter.GridXYZ. Column c maps to x = c and
// row r to y = r, so row 0 renders along the bottom edge.
type grid struct {
	rows, cols int
	data       []float64 // row-major, read-only view
}

func newGrid(m *matrix.Matrix) grid {
	r, c := m.Dims()
	return grid{rows: r, cols: c, data: m.Data()}
}

func (g grid) Dims() (c, r int)   { return g.cols, g.rows }
func (g grid) Z(c, r int) float64 { return g.data[r*g.cols+c] }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

// Save renders m as a heat map and writes it to path. The image format
// follows the path extension (.png, .pdf, .svg, ...). Cell colors are
// scaled between the smallest and largest element of m.
func Save(m *matrix.Matrix, path string) error {
	if m == nil {
		return errors.New("Save: nil matrix")
	}

	pal := moreland.SmoothBlueRed().Palette(255)
	h := plotter.NewHeatMap(newGrid(m), pal)

	p := plot.New()
	p.X.Padding, p.Y.Padding = 0, 0
	p.Add(h)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
