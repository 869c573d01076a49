// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package coverage

import (
	"math"

	"github.com/gogpu/gridburn/internal/geomgrid"
)

// LeftHandArea computes the covered fraction of box when more than one
// traversal of the same ring visits the cell (e.g. the ring enters,
// exits, and re-enters). It chains traversals along the clockwise cell
// perimeter: starting from each traversal's exit, it advances clockwise
// to the nearest still-unused traversal entry (inserting the corners
// passed along the way), forming one or more closed left-hand chains,
// and sums their signed areas before dividing by the cell area.
//
// Each element of traversals is an ordered coordinate list whose first
// point is the traversal's entry and whose last point is its exit.
func LeftHandArea(box geomgrid.Box, traversals [][]geomgrid.Coordinate) float64 {
	area := box.Area()
	n := len(traversals)
	if area <= 0 || n == 0 {
		return 0
	}

	perim := box.Perimeter()
	entryPD := make([]float64, n)
	exitPD := make([]float64, n)
	for i, t := range traversals {
		entryPD[i] = geomgrid.PerimeterDistance(box, t[0])
		exitPD[i] = geomgrid.PerimeterDistance(box, t[len(t)-1])
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

	cwFromExit := func(exitDist, targetDist float64) float64 {
		d := exitDist - targetDist
		if d < 0 {
			d += perim
		}
		return d
	}

	// cornersBetween returns the corners strictly within the CW arc of
	// length `arc` starting at perimeter position `from`, ordered by
	// increasing CW distance from `from`.
	cornersBetween := func(from, arc float64) []geomgrid.Coordinate {
		type tagged struct {
			coord geomgrid.Coordinate
			dist  float64
		}
		var found []tagged
		for i := 0; i < 4; i++ {
			d := cwFromExit(from, cornerPD[i])
			if d > perimeterTolerance && d < arc-perimeterTolerance {
				found = append(found, tagged{coord: corners[i], dist: d})
			}
		}
		for i := 1; i < len(found); i++ {
			j := i
			for j > 0 && found[j-1].dist > found[j].dist {
				found[j-1], found[j] = found[j], found[j-1]
				j--
			}
		}
		out := make([]geomgrid.Coordinate, len(found))
		for i, f := range found {
			out[i] = f.coord
		}
		return out
	}

	used := make([]bool, n)
	remaining := n
	var totalSigned float64

	for remaining > 0 {
		start := -1
		for i := 0; i < n; i++ {
			if !used[i] {
				start = i
				break
			}
		}
		firstEntryPD := entryPD[start]

		chain := make([]geomgrid.Coordinate, 0, 8)
		chain = append(chain, traversals[start]...)
		used[start] = true
		remaining--
		cur := start

		for {
			curExitPD := exitPD[cur]

			bestIdx := -1
			bestDist := math.Inf(1)
			for i := 0; i < n; i++ {
				if used[i] {
					continue
				}
				d := cwFromExit(curExitPD, entryPD[i])
				if d < bestDist {
					bestDist = d
					bestIdx = i
				}
			}

			closeDist := cwFromExit(curExitPD, firstEntryPD)
			if bestIdx == -1 || closeDist <= bestDist {
				chain = append(chain, cornersBetween(curExitPD, closeDist)...)
				break
			}

			chain = append(chain, cornersBetween(curExitPD, bestDist)...)
			chain = append(chain, traversals[bestIdx]...)
			used[bestIdx] = true
			remaining--
			cur = bestIdx
		}

		chain = append(chain, chain[0])
		totalSigned += SignedArea(chain)
	}

	return math.Abs(totalSigned) / area
}
