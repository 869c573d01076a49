// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geomio adapts github.com/ctessum/geom geometries to the
// coordinate and ring types the rasterizer walks, decoding WKB and
// supplying the few geometry predicates (ring orientation, emptiness,
// component bounding boxes) the core treats as external collaborators.
package geomio

import (
	"errors"
	"fmt"

	"github.com/ctessum/geom"

	"github.com/gogpu/gridburn/internal/geomgrid"
)

// ErrUnsupportedGeometry is returned for a decoded geometry type the
// rasterizer has no component handling for (points, lines, and their
// multi- variants).
var ErrUnsupportedGeometry = errors.New("geomio: unsupported geometry type")

// ErrEmptyGeometry marks a geometry with no rings at all; callers treat
// this as a silent skip, not a warning.
var ErrEmptyGeometry = errors.New("geomio: empty geometry")

// Ring is one polygon ring: an ordered, not-necessarily-closed list of
// coordinates plus whether it is already oriented counterclockwise.
type Ring struct {
	Coords []geomgrid.Coordinate
	CCW    bool
}

// PolygonComponent is one exterior ring and its holes, plus the union
// bounding box of all of them.
type PolygonComponent struct {
	Exterior Ring
	Holes    []Ring
	Bounds   geomgrid.Box
}

// Components flattens g — a Polygon, MultiPolygon, or GeometryCollection
// of those — into its independent polygon components. Points and lines
// anywhere in a collection are rejected with ErrUnsupportedGeometry,
// matching the core's documented geometry dispatch (§4.7): it recurses
// into collections and multipolygons, and walks exactly POLYGON leaves.
func Components(g geom.Geom) ([]PolygonComponent, error) {
	if g == nil || g.Bounds() == nil {
		return nil, ErrEmptyGeometry
	}

	switch t := g.(type) {
	case geom.Polygon:
		c, err := polygonComponent(t)
		if err != nil {
			return nil, err
		}
		return []PolygonComponent{c}, nil

	case geom.MultiPolygon:
		var out []PolygonComponent
		for _, p := range t {
			c, err := polygonComponent(p)
			if errors.Is(err, ErrEmptyGeometry) {
				continue
			}
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		if len(out) == 0 {
			return nil, ErrEmptyGeometry
		}
		return out, nil

	case geom.GeometryCollection:
		var out []PolygonComponent
		for _, child := range t {
			cs, err := Components(child)
			if errors.Is(err, ErrEmptyGeometry) {
				continue
			}
			if err != nil {
				return nil, err
			}
			out = append(out, cs...)
		}
		if len(out) == 0 {
			return nil, ErrEmptyGeometry
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}
}

func polygonComponent(p geom.Polygon) (PolygonComponent, error) {
	rings := make([]geom.Path, 0, len(p))
	for _, ring := range p {
		if len(ring) >= 3 {
			rings = append(rings, ring)
		}
	}
	if len(rings) == 0 {
		return PolygonComponent{}, ErrEmptyGeometry
	}

	bounds := geomgrid.EmptyBox()
	for _, ring := range rings {
		bounds = bounds.ExpandToInclude(pathBounds(ring))
	}

	return PolygonComponent{
		Exterior: toRing(rings[0]),
		Holes:    toRings(rings[1:]),
		Bounds:   bounds,
	}, nil
}

func toRings(paths []geom.Path) []Ring {
	out := make([]Ring, len(paths))
	for i, p := range paths {
		out[i] = toRing(p)
	}
	return out
}

func toRing(p geom.Path) Ring {
	coords := make([]geomgrid.Coordinate, len(p))
	for i, pt := range p {
		coords[i] = geomgrid.Coordinate{X: pt.X, Y: pt.Y}
	}
	return Ring{Coords: coords, CCW: isCCW(coords)}
}

func pathBounds(p geom.Path) geomgrid.Box {
	b := geomgrid.EmptyBox()
	for _, pt := range p {
		b = b.ExpandToInclude(geomgrid.Box{MinX: pt.X, MinY: pt.Y, MaxX: pt.X, MaxY: pt.Y})
	}
	return b
}

// isCCW reports whether ring is oriented counterclockwise, using the
// sign of its shoelace-formula signed area. The upstream geometry
// library exposes no ring-orientation predicate in the surface this
// core consumes, so it is computed locally here rather than trusted
// from elsewhere.
func isCCW(coords []geomgrid.Coordinate) bool {
	n := len(coords)
	if n < 3 {
		return true
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += coords[i].X*coords[j].Y - coords[j].X*coords[i].Y
	}
	return sum > 0
}
