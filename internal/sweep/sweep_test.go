// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package sweep

import "testing"

func TestEmitRowInteriorSpan(t *testing.T) {
	// Two boundary cells at columns 1 and 6 (0-based), winding flips to
	// nonzero entering column 1 and back to zero leaving column 6: the
	// cells strictly between (2..5, 0-based) form one interior run.
	records := []BoundaryCellRecord{
		{Col: 1, Coverage: 1, WindingDelta: 1},
		{Col: 6, Coverage: 1, WindingDelta: -1},
	}

	var runs []GridRun
	var edges []GridEdge
	EmitRow(3, 7, records, &runs, &edges)

	if len(edges) != 0 {
		t.Fatalf("expected no edges, got %v", edges)
	}
	// Expect: degenerate run at col 1 (full), interior run 2..5 (0-based
	// cols 2-5 -> 1-based cols 3-6), degenerate run at col 6.
	want := []GridRun{
		{Row: 3, ColStart: 2, ColEnd: 2, ID: 7},
		{Row: 3, ColStart: 3, ColEnd: 6, ID: 7},
		{Row: 3, ColStart: 7, ColEnd: 7, ID: 7},
	}
	if len(runs) != len(want) {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("runs[%d] = %v, want %v", i, runs[i], want[i])
		}
	}
}

func TestEmitRowLeftPaddingSeed(t *testing.T) {
	// The polygon enters from the left halo column (-1): the interior
	// run should start at grid column 1 (1-based), not be suppressed.
	records := []BoundaryCellRecord{
		{Col: -1, Coverage: 0, WindingDelta: 1},
		{Col: 2, Coverage: 1, WindingDelta: -1},
	}

	var runs []GridRun
	var edges []GridEdge
	EmitRow(1, 1, records, &runs, &edges)

	if len(runs) != 2 {
		t.Fatalf("runs = %v, want 2 entries", runs)
	}
	if runs[0] != (GridRun{Row: 1, ColStart: 1, ColEnd: 2, ID: 1}) {
		t.Errorf("runs[0] = %v, want interior span starting at col 1", runs[0])
	}
}

func TestEmitRowEdgeCell(t *testing.T) {
	records := []BoundaryCellRecord{
		{Col: 0, Coverage: 0.5, WindingDelta: 0},
	}
	var runs []GridRun
	var edges []GridEdge
	EmitRow(1, 1, records, &runs, &edges)

	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %v", runs)
	}
	if len(edges) != 1 || edges[0].Weight != 0.5 || edges[0].Col != 1 {
		t.Errorf("edges = %v, want one edge at col 1 weight 0.5", edges)
	}
}

func TestEmitRowMergesDuplicateColumns(t *testing.T) {
	records := []BoundaryCellRecord{
		{Col: 3, Coverage: 0.2, WindingDelta: 1},
		{Col: 3, Coverage: 0.2, WindingDelta: -1},
	}
	var runs []GridRun
	var edges []GridEdge
	EmitRow(1, 1, records, &runs, &edges)

	if len(edges) != 1 || edges[0].Weight != 0.4 {
		t.Fatalf("edges = %v, want merged weight 0.4", edges)
	}
}
