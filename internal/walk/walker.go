// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package walk

import "github.com/gogpu/gridburn/internal/geomgrid"

type location int

const (
	locInside location = iota
	locBoundary
	locOutside
)

func classify(box geomgrid.Box, p geomgrid.Coordinate) location {
	if box.StrictlyContains(p) {
		return locInside
	}
	if box.Contains(p) {
		return locBoundary
	}
	return locOutside
}

// Ring walks coords (a ring of at least 4 points; if the last point
// differs from the first, the closing segment back to the first point is
// walked too) across grid, producing a CellRecord per padded cell the
// ring touches. isCCW tells
// the walker whether coords is already CCW-oriented; if not, a
// reversed copy is walked instead, so that "left of the path" always
// means "inside the polygon" regardless of the ring's original winding.
//
// The state machine keeps a current padded cell, a cursor into coords,
// and an optional carried-over exit coordinate (lastExit) produced when
// a segment leaves a cell mid-way. Box.Crossing is always called with
// the last *original* input coordinate, never an interpolated reentry
// point — substituting the interpolated point there silently breaks
// robustness on axis-aligned edges (it can make the segment appear to
// not cross the next cell's boundary at all). The search runs from the
// outside vertex back toward that original coordinate, so the first
// boundary hit is where the segment leaves the current cell even when
// the original coordinate lies in an earlier cell.
func Ring(coords []geomgrid.Coordinate, isCCW bool, grid geomgrid.InfiniteGrid) map[CellKey]*CellRecord {
	if len(coords) < 4 {
		return nil
	}

	walked := make([]geomgrid.Coordinate, len(coords))
	copy(walked, coords)
	if walked[0] != walked[len(walked)-1] {
		walked = append(walked, walked[0])
	}
	if !isCCW {
		for i, j := 0, len(walked)-1; i < j; i, j = i+1, j-1 {
			walked[i], walked[j] = walked[j], walked[i]
		}
	}

	cells := map[CellKey]*CellRecord{}
	getOrCreate := func(row, col int) *CellRecord {
		key := CellKey{Row: row, Col: col}
		if cr, ok := cells[key]; ok {
			return cr
		}
		cr := &CellRecord{Box: grid.GridCell(row, col)}
		cells[key] = cr
		return cr
	}

	pos := 0
	row := grid.GetRow(walked[0].Y)
	col := grid.GetColumn(walked[0].X)
	var lastExit *geomgrid.Coordinate

	for pos < len(walked) {
		cr := getOrCreate(row, col)
		box := cr.Box
		var trav LightTraversal

	inner:
		for pos < len(walked) {
			next := walked[pos]
			if lastExit != nil {
				next = *lastExit
			}

			if len(trav.Coords) == 0 {
				// Enter the cell: the first point of a traversal is
				// always placed on its entry side.
				trav.EntrySide = box.Side(next)
				trav.Coords = append(trav.Coords, next)
				if lastExit != nil {
					lastExit = nil
				} else {
					pos++
				}
				continue
			}

			switch classify(box, next) {
			case locOutside:
				from := trav.Coords[len(trav.Coords)-1]
				if pos > 0 {
					from = walked[pos-1]
				}
				crossing, ok := box.Crossing(next, from)
				if !ok {
					// Degenerate fallback: no boundary intersection found;
					// treat the target itself as the exit point.
					trav.Coords = append(trav.Coords, next)
					trav.ExitSide = box.Side(next)
					lastExit = nil
					pos++
					break inner
				}
				trav.Coords = append(trav.Coords, crossing.Coord)
				trav.ExitSide = crossing.Side
				if crossing.Coord != next {
					buf := crossing.Coord
					lastExit = &buf
				} else {
					lastExit = nil
				}
				break inner
			default:
				trav.Coords = append(trav.Coords, next)
				if lastExit != nil {
					lastExit = nil
				} else {
					pos++
				}
			}
		}

		// Force-exit: the ring ran out of coordinates while sitting on
		// this cell's boundary (common when a ring vertex closes exactly
		// on a cell edge).
		if trav.ExitSide == geomgrid.SideNone && len(trav.Coords) > 0 {
			last := trav.Coords[len(trav.Coords)-1]
			if box.Contains(last) && !box.StrictlyContains(last) {
				trav.ExitSide = box.Side(last)
			}
		}

		exited := trav.ExitSide != geomgrid.SideNone
		incomplete := exited && trav.EntrySide == geomgrid.SideNone
		if incomplete {
			// The ring started strictly inside this cell and has now left
			// without ever closing here; append its coordinates to the
			// tail so the loop revisits this cell once it wraps back
			// around, completing the partial traversal.
			walked = append(walked, trav.Coords...)
		}

		cr.Traversals = append(cr.Traversals, trav)

		if exited {
			switch trav.ExitSide {
			case geomgrid.SideTop:
				row--
			case geomgrid.SideBottom:
				row++
			case geomgrid.SideLeft:
				col--
			case geomgrid.SideRight:
				col++
			}
		}
	}

	return cells
}
