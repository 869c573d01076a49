// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package geomgrid

import (
	"errors"
	"math"
)

// ErrInvalidExtent is returned when xmax <= xmin or ymax <= ymin.
var ErrInvalidExtent = errors.New("geomgrid: invalid extent")

// ErrInvalidDimensions is returned when ncol or nrow is non-positive.
var ErrInvalidDimensions = errors.New("geomgrid: ncol and nrow must be positive")

// Grid is an axis-aligned regular lattice over a bounded extent. Rows are
// numbered 1..NRow top-down (row 1 touches Extent.MaxY); columns are
// numbered 1..NCol left-to-right.
type Grid struct {
	Extent     Box
	Dx, Dy     float64
	NRow, NCol int
}

// NewGrid builds a Grid covering extent with ncol columns and nrow rows.
func NewGrid(extent Box, ncol, nrow int) (Grid, error) {
	if ncol <= 0 || nrow <= 0 {
		return Grid{}, ErrInvalidDimensions
	}
	if extent.MaxX <= extent.MinX || extent.MaxY <= extent.MinY {
		return Grid{}, ErrInvalidExtent
	}
	return Grid{
		Extent: extent,
		Dx:     extent.Width() / float64(ncol),
		Dy:     extent.Height() / float64(nrow),
		NRow:   nrow,
		NCol:   ncol,
	}, nil
}

// RowAt returns the 1-based row containing y, using the grid's lattice.
// Values may fall outside [1, NRow] for y outside the extent — this is
// relied on by the ring walker to step into the one-cell halo.
func (g Grid) RowAt(y float64) int {
	return int(math.Floor((g.Extent.MaxY-y)/g.Dy)) + 1
}

// ColAt returns the 1-based column containing x, using the grid's lattice.
func (g Grid) ColAt(x float64) int {
	return int(math.Floor((x-g.Extent.MinX)/g.Dx)) + 1
}

// cellBox returns the Box for a (possibly out-of-range) 1-based row/col,
// using a lattice formula that is valid both inside the extent and in the
// one-cell halo immediately outside it.
func (g Grid) cellBox(row, col int) Box {
	top := g.Extent.MaxY - float64(row-1)*g.Dy
	bottom := g.Extent.MaxY - float64(row)*g.Dy
	left := g.Extent.MinX + float64(col-1)*g.Dx
	right := g.Extent.MinX + float64(col)*g.Dx
	return Box{MinX: left, MinY: bottom, MaxX: right, MaxY: top}
}

// Cell returns the Box for grid cell (row, col), 1-based, row in
// [1, NRow] and col in [1, NCol].
func (g Grid) Cell(row, col int) Box {
	return g.cellBox(row, col)
}

// ShrinkToFit returns a sub-grid, aligned to this grid's lattice, whose
// cells cover region (after clipping region to the grid's extent). The
// returned grid shares Dx/Dy with g. It is the smallest such sub-grid
// except that a clipped MinY or MaxX lying exactly on an interior grid
// line also pulls in the row below or the column to the right.
func (g Grid) ShrinkToFit(region Box) Grid {
	clipped := region.Intersection(g.Extent)
	if clipped.IsEmpty() {
		return Grid{Extent: EmptyBox(), Dx: g.Dx, Dy: g.Dy}
	}

	rowStart := clampInt(g.RowAt(clipped.MaxY), 1, g.NRow)
	rowEnd := clampInt(g.RowAt(clipped.MinY), 1, g.NRow)
	colStart := clampInt(g.ColAt(clipped.MinX), 1, g.NCol)
	colEnd := clampInt(g.ColAt(clipped.MaxX), 1, g.NCol)

	subExtent := Box{
		MinX: g.Extent.MinX + float64(colStart-1)*g.Dx,
		MaxX: g.Extent.MinX + float64(colEnd)*g.Dx,
		MinY: g.Extent.MaxY - float64(rowEnd)*g.Dy,
		MaxY: g.Extent.MaxY - float64(rowStart-1)*g.Dy,
	}

	return Grid{
		Extent: subExtent,
		Dx:     g.Dx,
		Dy:     g.Dy,
		NRow:   rowEnd - rowStart + 1,
		NCol:   colEnd - colStart + 1,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InfiniteGrid is a Grid plus one virtual halo cell on each side. Padded
// row/col 0 is the top/left halo; padded row NRow+1 / col NCol+1 is the
// bottom/right halo. Interior padded indices 1..NRow / 1..NCol coincide
// with the underlying Grid's own 1-based rows/cols.
type InfiniteGrid struct {
	Bounded Grid
}

// Infinite wraps g with a one-cell halo.
func (g Grid) Infinite() InfiniteGrid {
	return InfiniteGrid{Bounded: g}
}

// Rows returns the padded row count (NRow + 2).
func (ig InfiniteGrid) Rows() int { return ig.Bounded.NRow + 2 }

// Cols returns the padded column count (NCol + 2).
func (ig InfiniteGrid) Cols() int { return ig.Bounded.NCol + 2 }

// IsEmpty reports whether the underlying bounded grid has no cells.
func (ig InfiniteGrid) IsEmpty() bool {
	return ig.Bounded.NRow <= 0 || ig.Bounded.NCol <= 0 || ig.Bounded.Extent.IsEmpty()
}

// GetRow maps y to a padded row index; 0 and Rows()-1 are the halo rows.
func (ig InfiniteGrid) GetRow(y float64) int { return ig.Bounded.RowAt(y) }

// GetColumn maps x to a padded column index; 0 and Cols()-1 are the halo columns.
func (ig InfiniteGrid) GetColumn(x float64) int { return ig.Bounded.ColAt(x) }

// GridCell returns the Box for padded cell (row, col), row in
// [0, Rows()-1], col in [0, Cols()-1]. Halo cells extend beyond the
// bounded grid's extent by exactly one Dx/Dy step.
func (ig InfiniteGrid) GridCell(row, col int) Box {
	return ig.Bounded.cellBox(row, col)
}
