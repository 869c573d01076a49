// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package geomgrid

import "testing"

// TestBoxCrossingNoneForSegmentInsideBox checks that a segment with
// both endpoints strictly inside the box reports no crossing: Crossing
// is only meaningful when `to` lies outside, but a fully-interior
// segment should never claim a boundary hit.
func TestBoxCrossingNoneForSegmentInsideBox(t *testing.T) {
	b := NewBox(0, 0, 10, 10)
	_, ok := b.Crossing(Coordinate{2, 2}, Coordinate{8, 8})
	if ok {
		t.Error("expected no crossing for a segment entirely inside the box")
	}
}

// TestBoxCrossingExactCorner sends a segment straight down the box's
// own diagonal, from outside the top-left corner to the bottom-right
// corner itself: the first crossing found must be the nearer
// corner the segment actually enters through, and Side must resolve
// it via the documented TOP/BOTTOM-dominates rule rather than
// reporting SideNone.
func TestBoxCrossingExactCorner(t *testing.T) {
	b := NewBox(0, 0, 2, 2)
	c, ok := b.Crossing(Coordinate{-1, 3}, Coordinate{2, 0})
	if !ok {
		t.Fatal("expected a crossing")
	}
	if c.Coord.X != 0 || c.Coord.Y != 2 {
		t.Errorf("coord = %v, want {0 2}", c.Coord)
	}
	if got := b.Side(c.Coord); got != SideTop {
		t.Errorf("Side(corner) = %v, want SideTop", got)
	}
}

// TestBoxCrossingAlongEdge checks a segment that travels exactly along
// one edge of the box, starting just outside the corner: the crossing
// search still reports the point where it meets the box, on that edge.
func TestBoxCrossingAlongEdge(t *testing.T) {
	b := NewBox(0, 0, 2, 2)
	c, ok := b.Crossing(Coordinate{-1, 0}, Coordinate{3, 0})
	if !ok {
		t.Fatal("expected a crossing")
	}
	if c.Side != SideLeft && c.Side != SideBottom {
		t.Errorf("side = %v, want LEFT or BOTTOM (corner tie)", c.Side)
	}
}

// TestPerimeterDistanceCornerAgreement checks that PerimeterDistance
// gives the documented convention value at each corner (a point on two
// adjoining edges), for a non-square box where width and height differ
// enough to expose a transcription slip in either branch.
func TestPerimeterDistanceCornerAgreement(t *testing.T) {
	b := NewBox(0, 0, 5, 2)
	h, w := b.Height(), b.Width()

	tests := []struct {
		name string
		p    Coordinate
		want float64
	}{
		{"bottom-left", Coordinate{0, 0}, 0},
		{"top-left", Coordinate{0, 2}, h},
		{"top-right", Coordinate{5, 2}, h + w},
		{"bottom-right", Coordinate{5, 0}, 2*h + w},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PerimeterDistance(b, tc.p); got != tc.want {
				t.Errorf("PerimeterDistance(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

// TestBoxIntersectionTouchingEdges checks that two boxes sharing only
// an edge (not overlapping in area) still report as intersecting, with
// a zero-area intersection.
func TestBoxIntersectionTouchingEdges(t *testing.T) {
	a := NewBox(0, 0, 1, 1)
	b := NewBox(1, 0, 2, 1)

	if !a.Intersects(b) {
		t.Fatal("expected touching boxes to intersect")
	}
	got := a.Intersection(b)
	if got.Area() != 0 {
		t.Errorf("Intersection area = %v, want 0", got.Area())
	}
	if got.MinX != 1 || got.MaxX != 1 {
		t.Errorf("Intersection = %v, want the shared edge x=1", got)
	}
}

// TestBoxExpandToIncludeIdentity checks that ExpandToInclude with an
// EmptyBox on either side is the identity, matching the role EmptyBox
// plays as the zero value folded over component bounds in geomio.
func TestBoxExpandToIncludeIdentity(t *testing.T) {
	b := NewBox(1, 1, 3, 4)

	if got := EmptyBox().ExpandToInclude(b); got != b {
		t.Errorf("EmptyBox().ExpandToInclude(b) = %v, want %v", got, b)
	}
	if got := b.ExpandToInclude(EmptyBox()); got != b {
		t.Errorf("b.ExpandToInclude(EmptyBox()) = %v, want %v", got, b)
	}
}
