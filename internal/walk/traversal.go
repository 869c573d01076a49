// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package walk follows one polygon ring across the padded grid,
// producing per-cell traversal records that the coverage and sweep
// packages turn into runs and edges.
package walk

import "github.com/gogpu/gridburn/internal/geomgrid"

// LightTraversal is one pass of a ring through one cell: it enters on
// entrySide, visits an ordered list of coordinates, and exits on
// exitSide — or, for a ring that closes entirely within the cell, both
// sides are SideNone and Coords forms a closed loop.
type LightTraversal struct {
	Coords    []geomgrid.Coordinate
	EntrySide geomgrid.Side
	ExitSide  geomgrid.Side
}

// Traversed reports whether this traversal has both a real entry and a
// real exit side.
func (t *LightTraversal) Traversed() bool {
	return t.EntrySide != geomgrid.SideNone && t.ExitSide != geomgrid.SideNone
}

// IsClosedRing reports whether Coords forms a closed ring (first point
// equals last, at least three coordinates) entirely within the cell.
func (t *LightTraversal) IsClosedRing() bool {
	n := len(t.Coords)
	return n >= 3 && t.Coords[0] == t.Coords[n-1]
}

// HasMultipleUniqueCoordinates reports whether Coords contains at least
// one point distinct from Coords[0] — i.e. the traversal isn't a
// degenerate single repeated point.
func (t *LightTraversal) HasMultipleUniqueCoordinates() bool {
	for i := 1; i < len(t.Coords); i++ {
		if t.Coords[i] != t.Coords[0] {
			return true
		}
	}
	return false
}

// Valid reports whether the traversal should be used for coverage and
// winding aggregation: either a proper entry/exit traversal with at
// least two distinct points, or a ring closed entirely within the cell.
func (t *LightTraversal) Valid() bool {
	if t.Traversed() && t.HasMultipleUniqueCoordinates() {
		return true
	}
	return t.EntrySide == geomgrid.SideNone && t.ExitSide == geomgrid.SideNone && t.IsClosedRing()
}

// CellKey addresses one cell of the padded (infinite) grid.
type CellKey struct {
	Row, Col int
}

// CellRecord holds every traversal of one ring that touched a single
// padded grid cell.
type CellRecord struct {
	Box        geomgrid.Box
	Traversals []LightTraversal
}
