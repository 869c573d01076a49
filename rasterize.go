// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package gridburn

import (
	"errors"
	"math"

	"github.com/gogpu/gridburn/geomio"
	"github.com/gogpu/gridburn/internal/geomgrid"
	"github.com/gogpu/gridburn/internal/sweep"
	"github.com/gogpu/gridburn/internal/walk"
)

// Extent is the grid's bounding rectangle in the caller's coordinate
// system. XMax must exceed XMin and YMax must exceed YMin.
type Extent struct {
	XMin, YMin, XMax, YMax float64
}

// Run is a maximal horizontal run of fully-covered cells, for one
// polygon. Row, ColStart and ColEnd are 1-based.
type Run = sweep.GridRun

// Edge is a single partially-covered cell, for one polygon. Row and Col
// are 1-based; Weight is the covered fraction, strictly in (0, 1).
type Edge = sweep.GridEdge

// Result is the sparse two-table output of a rasterization call.
type Result struct {
	Runs  []Run
	Edges []Edge
}

// RasterizeExact rasterizes every geometry in wkbList onto a grid of
// ncol by nrow cells covering extent, returning the interior runs and
// boundary edge cells each polygon component contributes.
//
// wkbList entries are WKB-encoded POLYGON, MULTIPOLYGON, or
// GEOMETRYCOLLECTION geometries; empty buffers are ignored. id in the
// output is the 1-based index of the geometry within wkbList.
//
// Invalid extent or grid dimensions abort the call and return an error
// wrapping ErrInvalidExtent or ErrInvalidDimensions. A geometry that
// fails to decode or contains an unsupported type is skipped with a
// warning logged via SetLogger; an empty geometry is skipped silently.
// The ring walk itself reports no errors: once a geometry's components
// are extracted, all of their runs and edges are appended.
func RasterizeExact(wkbList [][]byte, extent Extent, ncol, nrow int) (Result, error) {
	box := geomgrid.NewBox(extent.XMin, extent.YMin, extent.XMax, extent.YMax)
	grid, err := geomgrid.NewGrid(box, ncol, nrow)
	switch {
	case errors.Is(err, geomgrid.ErrInvalidExtent):
		return Result{}, ErrInvalidExtent
	case errors.Is(err, geomgrid.ErrInvalidDimensions):
		return Result{}, ErrInvalidDimensions
	case err != nil:
		return Result{}, err
	}

	log := Logger()
	var result Result

	for i, buf := range wkbList {
		id := i + 1

		g, err := geomio.Decode(buf)
		if err != nil {
			warnOrSkip(log, id, err)
			continue
		}

		components, err := geomio.Components(g)
		if err != nil {
			warnOrSkip(log, id, err)
			continue
		}

		runs, edges := rasterizeComponents(components, grid, id)
		result.Runs = append(result.Runs, runs...)
		result.Edges = append(result.Edges, edges...)
	}

	return result, nil
}

// warnOrSkip logs a warning for every per-geometry failure except
// ErrEmptyGeometry, which is a silent skip per the error taxonomy.
func warnOrSkip(log interface {
	Warn(msg string, args ...any)
}, id int, err error) {
	if errors.Is(err, geomio.ErrEmptyGeometry) {
		return
	}
	log.Warn("gridburn: skipping geometry", "index", id, "error", &GeometryError{Index: id, Err: err})
}

// rasterizeComponents walks every polygon component independently
// against its own subgrid and row table, so that a disjoint component's
// winding cannot leak into another's (spec §4.7).
func rasterizeComponents(components []geomio.PolygonComponent, grid geomgrid.Grid, id int) ([]Run, []Edge) {
	var runs []Run
	var edges []Edge

	for _, c := range components {
		sub, rowOff, colOff, ok := subgridFor(grid, c.Bounds)
		if !ok {
			continue
		}

		holeCoords := make([][]geomgrid.Coordinate, len(c.Holes))
		holeCCW := make([]bool, len(c.Holes))
		for i, h := range c.Holes {
			holeCoords[i] = h.Coords
			holeCCW[i] = h.CCW
		}

		compRuns, compEdges := walk.PolygonRows(id, c.Exterior.Coords, c.Exterior.CCW, holeCoords, holeCCW, sub.Infinite())

		for _, r := range compRuns {
			r.Row += rowOff
			r.ColStart += colOff
			r.ColEnd += colOff
			runs = append(runs, r)
		}
		for _, e := range compEdges {
			e.Row += rowOff
			e.Col += colOff
			edges = append(edges, e)
		}
	}

	return runs, edges
}

// subgridFor clips region to grid's extent and builds the smallest
// lattice-aligned subgrid covering it, along with the row/col offset
// needed to translate the subgrid's own 1-based coordinates back into
// the full grid's coordinate space. ok is false if region doesn't
// overlap the grid at all.
func subgridFor(grid geomgrid.Grid, region geomgrid.Box) (sub geomgrid.Grid, rowOff, colOff int, ok bool) {
	sub = grid.ShrinkToFit(region)
	if sub.Extent.IsEmpty() {
		return geomgrid.Grid{}, 0, 0, false
	}
	rowOff = int(math.Round((grid.Extent.MaxY - sub.Extent.MaxY) / grid.Dy))
	colOff = int(math.Round((sub.Extent.MinX - grid.Extent.MinX) / grid.Dx))
	return sub, rowOff, colOff, true
}
