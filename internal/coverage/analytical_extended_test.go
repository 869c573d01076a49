// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package coverage

import (
	"math"
	"testing"

	"github.com/gogpu/gridburn/internal/geomgrid"
)

// TestSingleTraversalFractionTwoCornersInArc exercises the branch of
// SingleTraversalFraction that inserts more than one box corner along
// the closing arc: a straight vertical chord from the bottom edge to
// the top edge, with the arc closing back over the box's left side and
// picking up both the top-left and bottom-left corners.
func TestSingleTraversalFractionTwoCornersInArc(t *testing.T) {
	box := geomgrid.NewBox(0, 0, 2, 2)
	coords := []geomgrid.Coordinate{{X: 1.5, Y: 0}, {X: 1.5, Y: 2}}

	got := SingleTraversalFraction(box, coords)
	want := 0.75
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SingleTraversalFraction = %v, want %v", got, want)
	}
}

// TestSingleTraversalFractionComplementary reverses the chord from
// TestSingleTraversalFractionTwoCornersInArc: the same line walked the
// other direction covers the complementary region, and the two
// fractions must sum to exactly 1.
func TestSingleTraversalFractionComplementary(t *testing.T) {
	box := geomgrid.NewBox(0, 0, 2, 2)
	forward := SingleTraversalFraction(box, []geomgrid.Coordinate{{X: 1.5, Y: 0}, {X: 1.5, Y: 2}})
	reverse := SingleTraversalFraction(box, []geomgrid.Coordinate{{X: 1.5, Y: 2}, {X: 1.5, Y: 0}})

	if math.Abs((forward+reverse)-1) > 1e-9 {
		t.Errorf("forward + reverse = %v, want 1 (forward=%v reverse=%v)", forward+reverse, forward, reverse)
	}
}

// TestSingleTraversalFractionSameEdgeFullWrap covers entry and exit on
// the same edge but ordered so the closing arc wraps almost the entire
// perimeter, picking up all four corners: since the traversal itself
// lies exactly on the top edge, the closed region is the whole box.
func TestSingleTraversalFractionSameEdgeFullWrap(t *testing.T) {
	box := geomgrid.NewBox(0, 0, 2, 2)
	coords := []geomgrid.Coordinate{{X: 1.5, Y: 2}, {X: 0.5, Y: 2}}

	got := SingleTraversalFraction(box, coords)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("SingleTraversalFraction = %v, want 1", got)
	}
}

// TestSingleTraversalFractionCoincidentEntryExit checks that a
// traversal whose entry and exit perimeter distances coincide (a loop
// that returns to its own starting point on the boundary) falls back
// to ClosedRingFraction rather than the corner-enumeration path.
func TestSingleTraversalFractionCoincidentEntryExit(t *testing.T) {
	box := geomgrid.NewBox(0, 0, 1, 1)
	ring := []geomgrid.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}

	got := SingleTraversalFraction(box, ring)
	want := ClosedRingFraction(box, ring)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SingleTraversalFraction = %v, want ClosedRingFraction result %v", got, want)
	}
}

// TestSignedAreaClosingDuplicateIrrelevant checks that SignedArea gives
// the same result whether or not the caller repeats the first
// coordinate as the last.
func TestSignedAreaClosingDuplicateIrrelevant(t *testing.T) {
	open := []geomgrid.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}}
	closed := append(append([]geomgrid.Coordinate{}, open...), open[0])

	gotOpen := SignedArea(open)
	gotClosed := SignedArea(closed)
	if math.Abs(gotOpen-gotClosed) > 1e-12 {
		t.Errorf("SignedArea(open) = %v, SignedArea(closed) = %v, want equal", gotOpen, gotClosed)
	}
	if math.Abs(gotOpen-2) > 1e-12 {
		t.Errorf("SignedArea = %v, want 2", gotOpen)
	}
}

// TestClosedRingFractionDegenerateBox checks that a zero-area box
// (collapsed extent) reports zero coverage rather than dividing by
// zero.
func TestClosedRingFractionDegenerateBox(t *testing.T) {
	box := geomgrid.NewBox(1, 1, 1, 1)
	ring := []geomgrid.Coordinate{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}

	got := ClosedRingFraction(box, ring)
	if got != 0 {
		t.Errorf("ClosedRingFraction(degenerate box) = %v, want 0", got)
	}
}
