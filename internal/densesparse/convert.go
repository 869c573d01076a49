// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package densesparse converts a dense row-major coverage matrix into
// the sparse run/edge representation, for callers that already hold a
// full coverage raster (e.g. legacy per-pixel rasterization, or a
// subgrid produced by another tool) and want it RLE-compressed rather
// than walked from vector geometry.
package densesparse

import "github.com/gogpu/gridburn/internal/sweep"

// DefaultTolerance is the default weight tolerance: a cell whose weight
// is at least 1 minus the tolerance is treated as fully covered.
const DefaultTolerance = 1e-6

// Convert compresses a dense coverage matrix (nrow x ncol, row-major,
// values in [0, 1]) into interior runs and boundary edges for a single
// polygon id. rowOffset and colOffset place the matrix's origin within
// the full raster's 0-based coordinate space; the returned runs and
// edges use 1-based full-raster coordinates.
//
// A cell with weight <= 0 is outside and closes any active run without
// emitting anything. A cell with weight >= 1-tol is interior and
// extends the current run. Anything in between is an edge cell: it
// closes the active run and is emitted on its own.
func Convert(mat []float32, nrow, ncol, rowOffset, colOffset, id int, tol float32) sweep.SparseResult {
	var result sweep.SparseResult

	for i := 0; i < nrow; i++ {
		fullRow := rowOffset + i + 1

		runStart := -1
		closeRun := func(colEndZeroBased int) {
			if runStart < 0 {
				return
			}
			result.Runs = append(result.Runs, sweep.GridRun{
				Row:      fullRow,
				ColStart: runStart,
				ColEnd:   colOffset + colEndZeroBased + 1,
				ID:       id,
			})
			runStart = -1
		}

		for j := 0; j < ncol; j++ {
			w := mat[i*ncol+j]

			switch {
			case w <= 0:
				closeRun(j - 1)
			case w >= 1-tol:
				if runStart < 0 {
					runStart = colOffset + j + 1
				}
			default:
				closeRun(j - 1)
				result.Edges = append(result.Edges, sweep.GridEdge{
					Row:    fullRow,
					Col:    colOffset + j + 1,
					Weight: w,
					ID:     id,
				})
			}
		}

		closeRun(ncol - 1)
	}

	return result
}
