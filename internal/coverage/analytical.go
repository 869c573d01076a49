// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package coverage computes the exact fraction of a grid cell's area
// that lies to the left of a ring traversal, using analytical geometry
// (perimeter-distance corner enumeration plus the shoelace formula)
// rather than sampling.
package coverage

import (
	"math"

	"github.com/gogpu/gridburn/internal/geomgrid"
)

// perimeterTolerance is the comparison tolerance on perimeter distances,
// used to classify a traversal as closed-in-cell vs. proper, and to
// decide whether a corner falls strictly inside a closing arc.
const perimeterTolerance = 1e-12

// SignedArea computes the signed area of a closed polygon ring (first
// point need not equal the last; it is treated as closing implicitly)
// using the shoelace formula with a subtract-first origin to reduce
// floating point cancellation.
func SignedArea(ring []geomgrid.Coordinate) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	closed := ring
	if ring[0] != ring[n-1] {
		closed = make([]geomgrid.Coordinate, n+1)
		copy(closed, ring)
		closed[n] = ring[0]
		n++
	}

	x0 := closed[0].X
	sum := 0.0
	for i := 1; i < n-1; i++ {
		x := closed[i].X - x0
		y1 := closed[i+1].Y
		y2 := closed[i-1].Y
		sum += x * (y1 - y2)
	}
	return sum / 2
}

// ClosedRingFraction returns the covered fraction for a ring that is
// entirely contained within one cell (no boundary crossing).
func ClosedRingFraction(box geomgrid.Box, ring []geomgrid.Coordinate) float64 {
	area := box.Area()
	if area <= 0 {
		return 0
	}
	return math.Abs(SignedArea(ring)) / area
}

// SingleTraversalFraction returns the covered fraction for a single
// ingress-to-egress traversal through a cell, assuming CCW polygon
// orientation (coverage is measured to the left of the path).
//
// coords must have length >= 2: coords[0] lies on the cell boundary
// (the entry point), coords[len-1] lies on the cell boundary (the exit
// point), and any intermediate points lie inside or on the boundary.
//
// The closed region is bounded by the traversal path and the clockwise
// arc of the cell boundary from exit back to entry — that's the arc
// that closes a CCW traversal to its left.
func SingleTraversalFraction(box geomgrid.Box, coords []geomgrid.Coordinate) float64 {
	area := box.Area()
	if area <= 0 || len(coords) < 2 {
		return 0
	}

	perim := box.Perimeter()
	entryPD := geomgrid.PerimeterDistance(box, coords[0])
	exitPD := geomgrid.PerimeterDistance(box, coords[len(coords)-1])

	var arc float64
	switch {
	case exitPD > entryPD+perimeterTolerance:
		arc = exitPD - entryPD
	case entryPD > exitPD+perimeterTolerance:
		arc = perim - entryPD + exitPD
	default:
		// Entry and exit coincide: the traversal is itself a closed ring
		// within the cell.
		return ClosedRingFraction(box, coords)
	}

	h := box.Height()
	w := box.Width()
	corners := [4]geomgrid.Coordinate{
		{X: box.MinX, Y: box.MinY}, // BL
		{X: box.MinX, Y: box.MaxY}, // TL
		{X: box.MaxX, Y: box.MaxY}, // TR
		{X: box.MaxX, Y: box.MinY}, // BR
	}
	cornerPD := [4]float64{0, h, h + w, 2*h + w}

	cwFromExit := func(pd float64) float64 {
		d := exitPD - pd
		if d < 0 {
			d += perim
		}
		return d
	}

	type taggedCorner struct {
		coord geomgrid.Coordinate
		dist  float64
	}
	var inArc []taggedCorner
	for i := 0; i < 4; i++ {
		d := cwFromExit(cornerPD[i])
		if d > perimeterTolerance && d < arc-perimeterTolerance {
			inArc = append(inArc, taggedCorner{coord: corners[i], dist: d})
		}
	}
	// Insertion sort: at most 4 elements.
	for i := 1; i < len(inArc); i++ {
		j := i
		for j > 0 && inArc[j-1].dist > inArc[j].dist {
			inArc[j-1], inArc[j] = inArc[j], inArc[j-1]
			j--
		}
	}

	polygon := make([]geomgrid.Coordinate, 0, len(coords)+len(inArc)+1)
	polygon = append(polygon, coords...)
	for _, c := range inArc {
		polygon = append(polygon, c.coord)
	}
	polygon = append(polygon, coords[0])

	return math.Abs(SignedArea(polygon)) / area
}
