// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package walk

import (
	"sort"

	"github.com/gogpu/gridburn/internal/coverage"
	"github.com/gogpu/gridburn/internal/geomgrid"
	"github.com/gogpu/gridburn/internal/sweep"
)

// windingDelta returns a proper traversal's contribution to the cell's
// winding count: a traversal whose entry and exit points straddle the
// cell's y-midpoint crosses the row's reference scanline once, in a
// direction determined by which side the entry point falls on. A
// traversal that stays on one side of the midpoint contributes nothing.
// A ring edge riding exactly along a vertical cell boundary still
// crosses the midpoint and so contributes a delta even though it covers
// zero area — that delta is what flips the interior state of the cells
// to its right.
func windingDelta(box geomgrid.Box, t *LightTraversal) int {
	n := len(t.Coords)
	if n == 0 {
		return 0
	}
	yMid := (box.MinY + box.MaxY) / 2
	entryY := t.Coords[0].Y
	exitY := t.Coords[n-1].Y
	if (entryY > yMid) == (exitY > yMid) {
		return 0
	}
	if entryY > yMid {
		return -1
	}
	return 1
}

// RingCoverage walks one ring (exterior or hole) across grid and
// returns, per 1-based grid row, the boundary cell records that row
// contributes. sign is +1 for an exterior ring and -1 for a hole: it
// flips both the coverage fraction and the winding delta, so a hole's
// contribution subtracts from whatever the exterior ring already
// covers in the same cell.
//
// Halo rows (padded row 0 and NRow+1) are dropped entirely — they
// exist only to let the walker track traversals that leave the grid.
// Halo columns are kept with a zero coverage fraction: they still
// carry a winding delta, which is all the sweep needs to know that a
// component's interior resumes right at the grid's own edge.
func RingCoverage(coords []geomgrid.Coordinate, isCCW bool, sign int, grid geomgrid.InfiniteGrid) map[int][]sweep.BoundaryCellRecord {
	cells := Ring(coords, isCCW, grid)
	out := map[int][]sweep.BoundaryCellRecord{}
	nrow := grid.Bounded.NRow
	ncol := grid.Bounded.NCol

	for key, cr := range cells {
		if key.Row <= 0 || key.Row > nrow {
			continue
		}
		isHaloCol := key.Col <= 0 || key.Col > ncol

		var valid []*LightTraversal
		for i := range cr.Traversals {
			t := &cr.Traversals[i]
			if t.Valid() {
				valid = append(valid, t)
			}
		}
		if len(valid) == 0 {
			continue
		}

		wd := 0
		for _, t := range valid {
			if !t.Traversed() {
				continue
			}
			wd += sign * windingDelta(cr.Box, t)
		}

		var coverageFraction float64
		if !isHaloCol {
			switch {
			case len(valid) == 1 && !valid[0].Traversed():
				coverageFraction = coverage.ClosedRingFraction(cr.Box, valid[0].Coords)
			case len(valid) == 1:
				coverageFraction = coverage.SingleTraversalFraction(cr.Box, valid[0].Coords)
			default:
				coordLists := make([][]geomgrid.Coordinate, len(valid))
				for i, t := range valid {
					coordLists[i] = t.Coords
				}
				coverageFraction = coverage.LeftHandArea(cr.Box, coordLists)
			}
		}

		if wd == 0 && coverageFraction == 0 {
			continue
		}

		out[key.Row] = append(out[key.Row], sweep.BoundaryCellRecord{
			Col:          key.Col - 1,
			Coverage:     float32(sign) * float32(coverageFraction),
			WindingDelta: wd,
		})
	}

	return out
}

// PolygonRows walks a polygon's exterior ring and holes and sweeps every
// row they touch, returning the runs and edges the polygon contributes
// under id.
func PolygonRows(id int, exterior []geomgrid.Coordinate, exteriorCCW bool, holes [][]geomgrid.Coordinate, holesCCW []bool, grid geomgrid.InfiniteGrid) ([]sweep.GridRun, []sweep.GridEdge) {
	byRow := map[int][]sweep.BoundaryCellRecord{}
	absorb := func(src map[int][]sweep.BoundaryCellRecord) {
		for row, recs := range src {
			byRow[row] = append(byRow[row], recs...)
		}
	}

	absorb(RingCoverage(exterior, exteriorCCW, 1, grid))
	for i, hole := range holes {
		ccw := false
		if i < len(holesCCW) {
			ccw = holesCCW[i]
		}
		absorb(RingCoverage(hole, ccw, -1, grid))
	}

	rows := make([]int, 0, len(byRow))
	for r := range byRow {
		rows = append(rows, r)
	}
	sort.Ints(rows)

	var runs []sweep.GridRun
	var edges []sweep.GridEdge
	for _, r := range rows {
		sweep.EmitRow(r, id, byRow[r], &runs, &edges)
	}

	// EmitRow reports each fully covered boundary cell as its own
	// one-cell run; join runs that touch within a row so that every
	// returned run is maximal.
	merged := runs[:0]
	for _, r := range runs {
		if n := len(merged); n > 0 && merged[n-1].Row == r.Row && merged[n-1].ColEnd+1 == r.ColStart {
			merged[n-1].ColEnd = r.ColEnd
			continue
		}
		merged = append(merged, r)
	}
	return merged, edges
}
