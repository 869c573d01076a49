// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package gridburn

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gridburn package. Each corresponds to one of
// the two hard-error kinds: the call aborts and returns no result.
var (
	// ErrInvalidExtent is returned when xmax <= xmin or ymax <= ymin.
	ErrInvalidExtent = errors.New("gridburn: invalid extent")

	// ErrInvalidDimensions is returned when ncol or nrow is non-positive.
	ErrInvalidDimensions = errors.New("gridburn: ncol and nrow must be positive")

	// ErrGeometryInit is returned when the geometry decoder cannot be
	// initialized for the request.
	ErrGeometryInit = errors.New("gridburn: geometry library initialization failed")
)

// GeometryError describes a per-geometry failure: bad WKB or an
// unsupported geometry type. It is never returned from RasterizeExact —
// the geometry is skipped and the error is logged as a warning — but is
// exposed so callers inspecting log output by hand can match on it.
type GeometryError struct {
	// Index is the 1-based position of the geometry in the input list.
	Index int
	Err   error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("gridburn: geometry %d: %v", e.Index, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }
