// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package densesparse

import (
	"testing"

	"github.com/gogpu/gridburn/internal/sweep"
)

func TestConvertRunsAndEdges(t *testing.T) {
	// One row: [0, 1, 1, 0.5, 0] -> outside, run start, run continue,
	// edge, outside.
	mat := []float32{0, 1, 1, 0.5, 0}

	got := Convert(mat, 1, 5, 0, 0, 1, DefaultTolerance)

	wantRuns := []sweep.GridRun{{Row: 1, ColStart: 2, ColEnd: 3, ID: 1}}
	if len(got.Runs) != 1 || got.Runs[0] != wantRuns[0] {
		t.Errorf("Runs = %v, want %v", got.Runs, wantRuns)
	}

	wantEdges := []sweep.GridEdge{{Row: 1, Col: 4, Weight: 0.5, ID: 1}}
	if len(got.Edges) != 1 || got.Edges[0] != wantEdges[0] {
		t.Errorf("Edges = %v, want %v", got.Edges, wantEdges)
	}
}

func TestConvertRunExtendsToRowEnd(t *testing.T) {
	mat := []float32{0, 1, 1, 1}
	got := Convert(mat, 1, 4, 0, 0, 1, DefaultTolerance)

	want := sweep.GridRun{Row: 1, ColStart: 2, ColEnd: 4, ID: 1}
	if len(got.Runs) != 1 || got.Runs[0] != want {
		t.Errorf("Runs = %v, want [%v]", got.Runs, want)
	}
}

func TestConvertOffsets(t *testing.T) {
	mat := []float32{1}
	got := Convert(mat, 1, 1, 3, 5, 2, DefaultTolerance)

	want := sweep.GridRun{Row: 4, ColStart: 6, ColEnd: 6, ID: 2}
	if len(got.Runs) != 1 || got.Runs[0] != want {
		t.Errorf("Runs = %v, want [%v]", got.Runs, want)
	}
}
