// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sweep implements the per-row winding-number sweep: given the
// boundary cells a polygon component touches in one grid row, it emits
// fully-covered interior runs and partially-covered edge cells.
package sweep

// BoundaryCellRecord is one boundary cell's aggregated contribution to a
// row's sweep: a signed coverage fraction and a signed winding delta.
// Col is 0-based in the full grid's column space; it may be -1 (the
// left padding column) or NCol (the right padding column).
type BoundaryCellRecord struct {
	Col          int
	Coverage     float32
	WindingDelta int
}

// GridRun is a run of fully-covered cells in one row, for one polygon.
// Row, ColStart and ColEnd are 1-based.
type GridRun struct {
	Row      int
	ColStart int
	ColEnd   int
	ID       int
}

// GridEdge is a single partially-covered cell, for one polygon. Row and
// Col are 1-based; Weight is the covered fraction, strictly in (0, 1).
type GridEdge struct {
	Row    int
	Col    int
	Weight float32
	ID     int
}

// SparseResult bundles the two output tables produced by a single
// polygon's rasterization pass.
type SparseResult struct {
	Runs  []GridRun
	Edges []GridEdge
}
