package scene

import "golang.org/x/image/math/fixed"

// Point is a location in scene units.
type Point struct {
	X, Y int64
}

// Pt is a convenience function to create a Point.
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// FromPoint26_6 converts a 26.6 fixed-point point, the sub-pixel currency
// of golang.org/x/image, onto a scene grid with div units per pixel.
// The mapping is exact when div is a multiple of 64 and rounds to nearest
// otherwise.
func FromPoint26_6(p fixed.Point26_6, div int64) Point {
	return Point{
		X: roundDiv(int64(p.X)*div, 64),
		Y: roundDiv(int64(p.Y)*div, 64),
	}
}

// ToPoint26_6 converts a scene point back to 26.6 fixed point, rounding
// to nearest. The scaled coordinates must fit in int32; scenes sized for
// on-screen geometry always do.
func (p Point) ToPoint26_6(div int64) fixed.Point26_6 {
	return fixed.Point26_6{
		//nolint:gosec // Range documented: |coord|*64/div fits in 26.6.
		X: fixed.Int26_6(roundDiv(p.X*64, div)),
		//nolint:gosec // Range documented: |coord|*64/div fits in 26.6.
		Y: fixed.Int26_6(roundDiv(p.Y*64, div)),
	}
}

// roundDiv divides with rounding to nearest, ties away from zero.
// b must be positive.
func roundDiv(a, b int64) int64 {
	if a >= 0 {
		return (a + b/2) / b
	}
	return -((-a + b/2) / b)
}
