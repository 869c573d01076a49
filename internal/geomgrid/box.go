// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package geomgrid

import "math"

// boundaryEpsilon tolerates floating point noise when deciding whether a
// crossing point lies on the box boundary.
const boundaryEpsilon = 1e-9

// Box is an axis-aligned rectangle, used both for grid cells and for
// component/extent bounding boxes.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBox builds a Box from two opposite corners, normalizing order.
func NewBox(x0, y0, x1, y1 float64) Box {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Box{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
}

// EmptyBox returns a degenerate box used as the identity for Expand.
func EmptyBox() Box {
	return Box{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// IsEmpty reports whether the box is inverted (max below min on either
// axis), as the identity box is. A zero-width or zero-height box is not
// empty.
func (b Box) IsEmpty() bool {
	return b.MaxX < b.MinX || b.MaxY < b.MinY
}

// Width returns the box's horizontal extent.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the box's vertical extent.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Area returns the box's area; zero for an empty box.
func (b Box) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Width() * b.Height()
}

// Perimeter returns the box's perimeter length.
func (b Box) Perimeter() float64 {
	return 2 * (b.Width() + b.Height())
}

// Contains reports whether p lies within the closed box (boundary included).
func (b Box) Contains(p Coordinate) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// StrictlyContains reports whether p lies strictly inside the box,
// excluding the boundary.
func (b Box) StrictlyContains(p Coordinate) bool {
	return p.X > b.MinX && p.X < b.MaxX && p.Y > b.MinY && p.Y < b.MaxY
}

// Intersects reports whether the two boxes overlap (including touching).
func (b Box) Intersects(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Intersection returns the overlapping region of b and o. The result is
// empty if the boxes don't overlap.
func (b Box) Intersection(o Box) Box {
	r := Box{
		MinX: math.Max(b.MinX, o.MinX),
		MinY: math.Max(b.MinY, o.MinY),
		MaxX: math.Min(b.MaxX, o.MaxX),
		MaxY: math.Min(b.MaxY, o.MaxY),
	}
	if r.IsEmpty() {
		return EmptyBox()
	}
	return r
}

// ExpandToInclude returns the smallest box containing both b and o.
func (b Box) ExpandToInclude(o Box) Box {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Side classifies which edge of the box p lies on, or SideNone if p is
// not on the boundary. Corner points are assigned deterministically:
// TOP dominates LEFT/RIGHT, and BOTTOM dominates LEFT/RIGHT, so the
// same corner is always classified the same way regardless of the
// direction a ring walk approaches it from.
func (b Box) Side(p Coordinate) Side {
	onTop := p.Y == b.MaxY && p.X >= b.MinX && p.X <= b.MaxX
	onBottom := p.Y == b.MinY && p.X >= b.MinX && p.X <= b.MaxX
	switch {
	case onTop:
		return SideTop
	case onBottom:
		return SideBottom
	}
	onLeft := p.X == b.MinX && p.Y >= b.MinY && p.Y <= b.MaxY
	onRight := p.X == b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
	switch {
	case onLeft:
		return SideLeft
	case onRight:
		return SideRight
	}
	return SideNone
}

// PerimeterDistance returns the arc length along the cell boundary,
// measured CCW from the bottom-left corner, to the point c. c is
// expected to lie on the box boundary; interior points return 0.
//
// Convention: BL=0, TL=height, TR=height+width, BR=2*height+width. This
// is computed directly from edge membership (not through Side). At TL,
// TR and BR the two adjoining edge formulas agree exactly; at BL they
// differ by a full perimeter, and the left-edge case, tested first,
// gives 0.
func PerimeterDistance(b Box, c Coordinate) float64 {
	h := b.Height()
	w := b.Width()
	switch {
	case c.X == b.MinX && c.Y >= b.MinY && c.Y <= b.MaxY:
		return c.Y - b.MinY
	case c.Y == b.MaxY && c.X >= b.MinX && c.X <= b.MaxX:
		return h + (c.X - b.MinX)
	case c.X == b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY:
		return h + w + (b.MaxY - c.Y)
	case c.Y == b.MinY && c.X >= b.MinX && c.X <= b.MaxX:
		return 2*h + w + (b.MaxX - c.X)
	default:
		return 0
	}
}

// Crossing finds the first intersection of the segment [from, to] with
// the box boundary, walking from `from` toward `to`. The ring walker
// passes the ring vertex outside the box as `from` and the last
// *original* (non-interpolated) ring coordinate as `to`, so the hit
// nearest `from` is where the segment leaves the box — using an
// already-interpolated reentry point here can spuriously miss the
// crossing on axis-aligned edges. Returns ok=false if the segment never
// reaches the boundary (degenerate input only; the walker only invokes
// this when `from` is known to be outside the box).
func (b Box) Crossing(from, to Coordinate) (Crossing, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y

	bestT := math.Inf(1)
	var best Crossing
	found := false

	consider := func(t float64, pt Coordinate, side Side) {
		if t <= boundaryEpsilon || t > 1+boundaryEpsilon {
			return
		}
		if t < bestT {
			bestT = t
			best = Crossing{Coord: pt, Side: side}
			found = true
		}
	}

	clamp := func(v, lo, hi float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	if dx != 0 {
		if t := (b.MinX - from.X) / dx; true {
			y := from.Y + t*dy
			if y >= b.MinY-boundaryEpsilon && y <= b.MaxY+boundaryEpsilon {
				consider(t, Coordinate{X: b.MinX, Y: clamp(y, b.MinY, b.MaxY)}, SideLeft)
			}
		}
		if t := (b.MaxX - from.X) / dx; true {
			y := from.Y + t*dy
			if y >= b.MinY-boundaryEpsilon && y <= b.MaxY+boundaryEpsilon {
				consider(t, Coordinate{X: b.MaxX, Y: clamp(y, b.MinY, b.MaxY)}, SideRight)
			}
		}
	}
	if dy != 0 {
		if t := (b.MinY - from.Y) / dy; true {
			x := from.X + t*dx
			if x >= b.MinX-boundaryEpsilon && x <= b.MaxX+boundaryEpsilon {
				consider(t, Coordinate{X: clamp(x, b.MinX, b.MaxX), Y: b.MinY}, SideBottom)
			}
		}
		if t := (b.MaxY - from.Y) / dy; true {
			x := from.X + t*dx
			if x >= b.MinX-boundaryEpsilon && x <= b.MaxX+boundaryEpsilon {
				consider(t, Coordinate{X: clamp(x, b.MinX, b.MaxX), Y: b.MaxY}, SideTop)
			}
		}
	}

	if !found {
		return Crossing{}, false
	}
	return best, true
}
