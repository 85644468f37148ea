// Package scanline computes exact pixel-grid intersections for 2D vector
// scenes using only integer arithmetic.
//
// # Overview
//
// scanline is the intersection core of a scanline rasterization pipeline.
// Given a scene of segments, circles, and typed edges on a fixed-point
// integer grid, it computes where every edge crosses the interior pixel
// rows and columns of its span: ordered, drift-free coordinate runs that
// a downstream coverage or span stage walks in O(1) per scanline.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/scanline"
//	    "github.com/gogpu/scanline/scene"
//	)
//
//	var s scene.Scene
//	edge, _ := s.AddLine(scene.EdgeLineTR, scene.Pt(0, 0), scene.Pt(10_000, 4_000))
//
//	r, _ := scanline.New(1000) // 1000 units per pixel
//	defer r.Close()
//	if err := r.ComputeAll(&s); err != nil {
//	    // invalid arc geometry or failed validation
//	}
//
//	e := &s.Edges[edge]
//	y := r.VerticalIntersection(e, 3) // y where the edge crosses column 3
//
// # Exactness
//
// All computation is integer-only. Line crossings come from a generalized
// Bresenham scan whose error accumulator tracks the exact rational
// remainder scaled into the full int64 range, so every sample equals the
// exact crossing rounded to nearest with zero cumulative drift, on every
// platform, over spans of any length. Circle crossings use an exact floor
// integer square root. Passes are pure functions of (scene, resolution):
// parallel fills produce bit-identical buffers.
//
// # Architecture
//
// The module is organized into:
//   - Public API: Rasterizer, Option, and the scene geometry model
//   - scene: points, segments, circles, typed edges, 26.6 interop
//   - internal/fixmath: floor division, grid ranges, integer square root
//   - internal/parallel: the fill worker pool
//
// # Coordinate System
//
// Scene coordinates are int64 units with a configurable number of units
// per pixel (div per pixel). Pixel-grid line p of an axis sits at
// coordinate p * divPerPixel. Both axes scan in ascending coordinate
// order; no up/down convention is imposed beyond the edge orientations
// documented in the scene package.
package scanline

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
