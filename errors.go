package scanline

import "errors"

// Package errors for the intersection engine.
var (
	// ErrInvalidDivPerPixel is returned when the grid resolution is not positive.
	ErrInvalidDivPerPixel = errors.New("scanline: div per pixel must be positive")

	// ErrNilScene is returned when a nil scene is passed to a pass.
	ErrNilScene = errors.New("scanline: nil scene")

	// ErrInvalidArc is returned when a circle edge is sampled at or beyond
	// its extremum, meaning the scene's arc geometry and pixel span disagree.
	ErrInvalidArc = errors.New("scanline: arc sampled at or beyond extremum")

	// ErrRunOutOfBounds is returned by Validate when a stored intersection
	// lies outside its segment's endpoint bounding box.
	ErrRunOutOfBounds = errors.New("scanline: intersection outside segment bounds")

	// ErrRunNotMonotonic is returned by Validate when a stored run repeats
	// a value or reverses direction along its axis.
	ErrRunNotMonotonic = errors.New("scanline: intersection run not strictly monotonic")
)
