// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scanline

import (
	"math"

	"github.com/gogpu/scanline/internal/fixmath"
	"github.com/gogpu/scanline/scene"
)

// Generalized Bresenham with exact error tracking
//
// This file computes where a diagonal segment crosses interior pixel-grid
// lines, one whole grid step per iteration (run slicing), without ever
// leaving integer arithmetic.
//
// For the vertical scan the crossing with column x is y = p1.y + dy*(x-p1.x)/dx.
// Per column the exact advance is dy*div/dx, which splits into an integer
// part stepY and a remainder rem = div*|dy| - |stepY|*dx with 0 <= rem < dx.
// The remainder is tracked in units of MaxInt64/dx so the accumulator uses
// the full int64 range regardless of slope:
//
//	errStep = (MaxInt64/dx) * rem          advance per column
//	err > 0                                accumulated remainder exceeds
//	                                       half a unit: bump y by signum(dy)
//	                                       and reduce err by MaxInt64
//
// Starting err at the scaled first-column remainder minus MaxInt64/2
// centers the threshold, so every emitted sample is the exact rational
// crossing rounded to nearest (ties toward zero), and the error never
// accumulates across a run no matter how long it is.
//
// The first sample is anchored directly from the segment endpoint rather
// than stepped from p1, keeping runs independent of where the previous
// one ended. When rem is zero the slope advances an exact integer per
// column and the loop degenerates to pure stepping.

// halfMaxErr centers the rounding threshold of the error accumulator.
const halfMaxErr = math.MaxInt64 / 2

// fillLineVert writes the y samples of a diagonal segment at the
// len(dst) interior pixel columns starting at column firstPx.
// The caller guarantees len(dst) > 0 implies the segment spans at least
// one interior column, so the x extent is never zero.
func fillLineVert(dst []int64, firstPx int64, p1, p2 scene.Point, div int64) {
	if len(dst) == 0 {
		return
	}
	if p2.X < p1.X {
		p1, p2 = p2, p1
	}
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	sig := fixmath.Signum(dy)

	stepY := dy * div / dx

	// Anchor the first sample at the first interior column.
	fdx := firstPx*div - p1.X
	fdy := dy * fdx / dx
	y := p1.Y + fdy

	maxDivDX := int64(math.MaxInt64) / dx
	errStep := maxDivDX * (div*dy*sig - stepY*sig*dx)
	if errStep == 0 {
		for i := range dst {
			dst[i] = y
			y += stepY
		}
		return
	}

	err := maxDivDX*(fdx*dy*sig-fdy*sig*dx) - halfMaxErr
	for i := range dst {
		if err > 0 {
			y += sig
			err -= math.MaxInt64
		}
		dst[i] = y
		y += stepY
		err += errStep
	}
}

// fillLineHori writes the x samples of a diagonal segment at the
// len(dst) interior pixel rows starting at row firstPx.
// Exact mirror of fillLineVert with the axes swapped.
func fillLineHori(dst []int64, firstPx int64, p1, p2 scene.Point, div int64) {
	if len(dst) == 0 {
		return
	}
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}
	dy := p2.Y - p1.Y
	dx := p2.X - p1.X
	sig := fixmath.Signum(dx)

	stepX := dx * div / dy

	fdy := firstPx*div - p1.Y
	fdx := dx * fdy / dy
	x := p1.X + fdx

	maxDivDY := int64(math.MaxInt64) / dy
	errStep := maxDivDY * (div*dx*sig - stepX*sig*dy)
	if errStep == 0 {
		for i := range dst {
			dst[i] = x
			x += stepX
		}
		return
	}

	err := maxDivDY*(fdy*dx*sig-fdx*sig*dy) - halfMaxErr
	for i := range dst {
		if err > 0 {
			x += sig
			err -= math.MaxInt64
		}
		dst[i] = x
		x += stepX
		err += errStep
	}
}
