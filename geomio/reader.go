// Copyright 2026 The gridburn Authors
// SPDX-License-Identifier: BSD-3-Clause

package geomio

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/wkb"
)

// Decode parses a single WKB-encoded geometry. A zero-length buffer is
// reported as ErrEmptyGeometry so callers can skip it silently, per the
// "empty buffers are ignored" contract on the WKB list input.
func Decode(buf []byte) (geom.Geom, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyGeometry
	}
	g, err := wkb.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("geomio: decode wkb: %w", err)
	}
	return g, nil
}
