// Package gridburn rasterizes vector polygons onto a regular 2D grid,
// computing for each polygon the exact fraction of every grid cell it
// covers — no sampling, no supersampling.
//
// # Overview
//
// gridburn walks each polygon ring through a padded grid, computing
// per-cell coverage with analytical geometry (perimeter-distance corner
// enumeration and the shoelace formula), then sweeps each row's
// winding-number deltas left to right to tell fully-covered interior
// cells from partially-covered edge cells. The result is a sparse
// two-table output: interior runs and boundary edge cells.
//
// # Quick Start
//
//	result, err := gridburn.RasterizeExact(wkbList, gridburn.Extent{
//		XMin: 0, YMin: 0, XMax: 10, YMax: 10,
//	}, 10, 10)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range result.Runs {
//		fmt.Printf("row %d cols %d-%d polygon %d\n", r.Row, r.ColStart, r.ColEnd, r.ID)
//	}
//
// # Architecture
//
// The package is organized into:
//   - Public API: RasterizeExact, Extent, Run, Edge
//   - geomio: WKB decoding and the ring/bounds/orientation adapter over
//     the external geometry library
//   - internal/geomgrid: Box, Coordinate, Side, Grid primitives
//   - internal/coverage: analytical per-cell coverage fractions
//   - internal/walk: the ring-walker state machine and per-cell aggregation
//   - internal/sweep: the per-row winding-number sweep
//   - internal/densesparse: the legacy dense-matrix-to-sparse-output path
//
// # Coordinate System
//
// Row 1 is the topmost grid row (y in [ymax-dy, ymax]); rows increase
// downward. Column 1 is the leftmost grid column; columns increase
// rightward. Both runs and edges use 1-based row/col.
package gridburn
