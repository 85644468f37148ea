// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scanline

import (
	"fmt"

	"github.com/gogpu/scanline/internal/fixmath"
	"github.com/gogpu/scanline/scene"
)

// Circle-quadrant sampling
//
// A quadrant edge crosses each interior grid line exactly once, so the
// crossing follows directly from the circle equation: at a row offset dy
// from the center the crossing sits at cx ± sqrt(r² - dy²), with the sign
// fixed by the quadrant orientation. sqrt is the exact floor integer
// square root, which keeps samples deterministic and drift-free like the
// line scan.
//
// Every sampled grid line must lie strictly between the quadrant's
// endpoints, which implies |offset| < r. A violation means the scene's
// arc geometry and its pixel span disagree (for example a radius smaller
// than the claimed endpoint extent), reported as ErrInvalidArc rather
// than sampled at the extremum where the quadrant has no single crossing.

// fillCircleHori writes the x samples of a circle-quadrant edge at the
// len(dst) interior pixel rows starting at row firstPx. Top-right and
// top-left quadrants lie left of the center, so they subtract the
// half-chord; the bottom variants add it.
func fillCircleHori(dst []int64, firstPx int64, t scene.EdgeType, center scene.Point, radius, div int64) error {
	r2 := radius * radius
	left := t == scene.EdgeCircleTR || t == scene.EdgeCircleTL
	for i := range dst {
		dy := (firstPx+int64(i))*div - center.Y
		if radius <= fixmath.Abs(dy) {
			return fmt.Errorf("%w: row %d offset %d radius %d",
				ErrInvalidArc, firstPx+int64(i), dy, radius)
		}
		dx := fixmath.Sqrt(r2 - dy*dy)
		if left {
			dst[i] = center.X - dx
		} else {
			dst[i] = center.X + dx
		}
	}
	return nil
}

// fillCircleVert writes the y samples of a circle-quadrant edge at the
// len(dst) interior pixel columns starting at column firstPx. Top-right
// and bottom-right quadrants lie above the center, so they add the
// half-chord; the left variants subtract it.
func fillCircleVert(dst []int64, firstPx int64, t scene.EdgeType, center scene.Point, radius, div int64) error {
	r2 := radius * radius
	above := t == scene.EdgeCircleTR || t == scene.EdgeCircleBR
	for i := range dst {
		dx := center.X - (firstPx+int64(i))*div
		if radius <= fixmath.Abs(dx) {
			return fmt.Errorf("%w: column %d offset %d radius %d",
				ErrInvalidArc, firstPx+int64(i), dx, radius)
		}
		dy := fixmath.Sqrt(r2 - dx*dx)
		if above {
			dst[i] = center.Y + dy
		} else {
			dst[i] = center.Y - dy
		}
	}
	return nil
}
