// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fixmath provides exact integer helpers for scanline intersection.
//
// All scene geometry lives on an integer grid with a configurable number of
// units per pixel, and every computation must be bit-for-bit reproducible
// across platforms. The helpers here therefore avoid floating point except
// as a seed for the integer square root, which is corrected to the exact
// floor value before returning.
//
// Why integer math?
// - Identical results on every platform and architecture
// - No accumulation error over long scanline spans
// - Overflow behavior is analyzable and documented per call site
package fixmath

import "math"

// maxSqrt is the largest integer whose square fits in an int64.
// (maxSqrt+1)^2 overflows, so correction loops never step past it.
const maxSqrt = 3037000499

// Sqrt returns the floor of the square root of v.
// v must be non-negative.
//
// A float64 square root seeds the result, then integer correction steps
// make it exact. The seed is within one ulp for all int64 inputs, so the
// loops run at most a couple of iterations.
func Sqrt(v int64) int64 {
	if v < 0 {
		panic("fixmath: Sqrt of negative value")
	}
	if v == 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(v)))
	if r > maxSqrt {
		r = maxSqrt
	}
	for r > 0 && r*r > v {
		r--
	}
	for r < maxSqrt && (r+1)*(r+1) <= v {
		r++
	}
	return r
}

// FloorDiv returns the floor of a/b for positive b.
// Go's / truncates toward zero; floor division differs for negative
// dividends, where grid positions must still round downward.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// GridFirst returns the first pixel index whose grid line lies strictly
// inside a span starting at lo, for a grid with step units per pixel.
// Grid line p sits at coordinate p*step; the first interior line is the
// one just past lo.
func GridFirst(lo, step int64) int64 {
	return 1 + FloorDiv(lo, step)
}

// GridEnd returns one past the last pixel index whose grid line lies
// strictly inside a span ending at hi (exclusive of hi itself).
// Together with GridFirst this yields the half-open index range
// [GridFirst(lo), GridEnd(hi)) of interior grid lines; the range is empty
// when the span crosses none.
func GridEnd(hi, step int64) int64 {
	return 1 + FloorDiv(hi-1, step)
}

// Abs returns the absolute value of v.
func Abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Signum returns -1, 0, or +1 according to the sign of v.
func Signum(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
