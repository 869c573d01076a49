// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package sweep

import "sort"

// classifyTolerance is the tolerance used to decide whether a boundary
// cell's aggregated coverage is close enough to 0 or 1 to be treated as
// fully outside or fully inside. It is a design constant, not derived
// from the geometry; callers requiring exact equality must not rely on
// it (spec §9, open question b).
const classifyTolerance = 1e-6

// EmitRow runs the winding-number sweep over one row's boundary cell
// records for a single polygon component, appending the interior runs
// and edge cells it produces to runs/edges.
//
// records may be unsorted and may contain duplicate columns (e.g. an
// exterior ring and a hole both touching the same cell); EmitRow sorts
// by column and merges duplicates before sweeping. row and id are both
// 1-based in the emitted output. A fully covered boundary cell is
// emitted as its own one-cell run; touching runs are not joined here.
func EmitRow(row, id int, records []BoundaryCellRecord, runs *[]GridRun, edges *[]GridEdge) {
	if len(records) == 0 {
		return
	}

	sorted := append([]BoundaryCellRecord(nil), records...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Col < sorted[j].Col })

	merged := sorted[:0:0]
	for _, rec := range sorted {
		if n := len(merged); n > 0 && merged[n-1].Col == rec.Col {
			merged[n-1].Coverage += rec.Coverage
			merged[n-1].WindingDelta += rec.WindingDelta
			continue
		}
		merged = append(merged, rec)
	}

	// prevCol's sentinel is -2, not -1: that lets a run starting at grid
	// column 0 (right after the left halo) be emitted correctly once the
	// left padding column has seeded the sweep.
	winding := 0
	prevCol := -2

	for _, mc := range merged {
		if winding != 0 && prevCol > -2 && mc.Col > prevCol+1 {
			*runs = append(*runs, GridRun{
				Row:      row,
				ColStart: prevCol + 2, // 1-based: (prevCol+1)+1
				ColEnd:   mc.Col,      // 1-based: (mc.Col-1)+1
				ID:       id,
			})
		}

		w := mc.Coverage
		switch {
		case w > classifyTolerance && w < 1-classifyTolerance:
			*edges = append(*edges, GridEdge{Row: row, Col: mc.Col + 1, Weight: w, ID: id})
		case w >= 1-classifyTolerance:
			*runs = append(*runs, GridRun{Row: row, ColStart: mc.Col + 1, ColEnd: mc.Col + 1, ID: id})
		}

		winding += mc.WindingDelta
		prevCol = mc.Col
	}
}
