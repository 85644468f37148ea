package scene

// EdgeType identifies the geometric family and orientation of an edge.
// Types are organized into groups by their high nibble:
//
//	0x0X: diagonal lines (computed by both scan passes)
//	0x1X: axis-aligned lines (answered from the endpoints, no stored runs)
//	0x2X: circle quadrants (computed by both scan passes)
//	0x3X: other arcs (share the runs of a companion edge's segment)
type EdgeType byte

// EdgeType constants define all edge variants.
//
// The TR/TL/BR/BL suffix records the winding orientation consumed by the
// downstream coverage stage. For diagonal lines the four variants produce
// identical intersection runs; for circle quadrants the orientation also
// selects which quadrant of the circle the edge covers and therefore the
// endpoint contract documented on each constant (center c, radius r).
const (
	// EdgeLineTR is a diagonal line filled toward top-right.
	EdgeLineTR EdgeType = 0x01

	// EdgeLineTL is a diagonal line filled toward top-left.
	EdgeLineTL EdgeType = 0x02

	// EdgeLineBR is a diagonal line filled toward bottom-right.
	EdgeLineBR EdgeType = 0x03

	// EdgeLineBL is a diagonal line filled toward bottom-left.
	EdgeLineBL EdgeType = 0x04

	// EdgeLineVT is a vertical line filled toward the top.
	// Every row crossing sits at the line's own x; nothing is stored.
	EdgeLineVT EdgeType = 0x11

	// EdgeLineVB is a vertical line filled toward the bottom.
	EdgeLineVB EdgeType = 0x12

	// EdgeLineHR is a horizontal line filled toward the right.
	// Every column crossing sits at the line's own y; nothing is stored.
	EdgeLineHR EdgeType = 0x13

	// EdgeLineHL is a horizontal line filled toward the left.
	EdgeLineHL EdgeType = 0x14

	// EdgeCircleTR is the quadrant arc (c.X-r, c.Y)..(c.X, c.Y+r).
	// Rows store c.X - sqrt(r²-dy²); columns store c.Y + sqrt(r²-dx²).
	// Endpoint contract: P1.Y <= P2.Y and P1.X <= P2.X.
	EdgeCircleTR EdgeType = 0x21

	// EdgeCircleTL is the quadrant arc (c.X, c.Y-r)..(c.X-r, c.Y).
	// Rows store c.X - sqrt(r²-dy²); columns store c.Y - sqrt(r²-dx²).
	// Endpoint contract: P1.Y <= P2.Y and P2.X <= P1.X.
	EdgeCircleTL EdgeType = 0x22

	// EdgeCircleBR is the quadrant arc (c.X+r, c.Y)..(c.X, c.Y+r).
	// Rows store c.X + sqrt(r²-dy²); columns store c.Y + sqrt(r²-dx²).
	// Endpoint contract: P1.Y <= P2.Y and P2.X <= P1.X.
	EdgeCircleBR EdgeType = 0x23

	// EdgeCircleBL is the quadrant arc (c.X, c.Y-r)..(c.X+r, c.Y).
	// Rows store c.X + sqrt(r²-dy²); columns store c.Y - sqrt(r²-dx²).
	// Endpoint contract: P1.Y <= P2.Y and P1.X <= P2.X.
	EdgeCircleBL EdgeType = 0x24

	// EdgeArcTR is an other-arc edge oriented toward top-right.
	// Arc edges are never scanned directly: they reference a segment whose
	// runs a companion edge computes, and validation covers them once that
	// segment is resolved.
	EdgeArcTR EdgeType = 0x31

	// EdgeArcTL is an other-arc edge oriented toward top-left.
	EdgeArcTL EdgeType = 0x32

	// EdgeArcBR is an other-arc edge oriented toward bottom-right.
	EdgeArcBR EdgeType = 0x33

	// EdgeArcBL is an other-arc edge oriented toward bottom-left.
	EdgeArcBL EdgeType = 0x34
)

// String returns a human-readable name for the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeLineTR:
		return "LineTR"
	case EdgeLineTL:
		return "LineTL"
	case EdgeLineBR:
		return "LineBR"
	case EdgeLineBL:
		return "LineBL"
	case EdgeLineVT:
		return "LineVT"
	case EdgeLineVB:
		return "LineVB"
	case EdgeLineHR:
		return "LineHR"
	case EdgeLineHL:
		return "LineHL"
	case EdgeCircleTR:
		return "CircleTR"
	case EdgeCircleTL:
		return "CircleTL"
	case EdgeCircleBR:
		return "CircleBR"
	case EdgeCircleBL:
		return "CircleBL"
	case EdgeArcTR:
		return "ArcTR"
	case EdgeArcTL:
		return "ArcTL"
	case EdgeArcBR:
		return "ArcBR"
	case EdgeArcBL:
		return "ArcBL"
	default:
		return "Unknown"
	}
}

// IsLine returns true for any line variant, diagonal or axis-aligned.
func (t EdgeType) IsLine() bool {
	return t >= EdgeLineTR && t <= EdgeLineHL
}

// IsDiagonal returns true for the four computed line variants.
func (t EdgeType) IsDiagonal() bool {
	return t >= EdgeLineTR && t <= EdgeLineBL
}

// IsVertical returns true for vertical line variants.
func (t EdgeType) IsVertical() bool {
	return t == EdgeLineVT || t == EdgeLineVB
}

// IsHorizontal returns true for horizontal line variants.
func (t EdgeType) IsHorizontal() bool {
	return t == EdgeLineHR || t == EdgeLineHL
}

// IsAxisAligned returns true for vertical and horizontal line variants.
func (t EdgeType) IsAxisAligned() bool {
	return t >= EdgeLineVT && t <= EdgeLineHL
}

// IsCircle returns true for the four circle-quadrant variants.
func (t EdgeType) IsCircle() bool {
	return t >= EdgeCircleTR && t <= EdgeCircleBL
}

// IsArc returns true for the four other-arc variants.
func (t EdgeType) IsArc() bool {
	return t >= EdgeArcTR && t <= EdgeArcBL
}

// Edge is a typed, oriented reference to one segment of scene geometry.
// P1 and P2 are denormalized copies of the segment's endpoints so the scan
// passes and accessors need no point-table lookups. Circle indexes the
// owning circle for circle and arc families and is -1 otherwise.
type Edge struct {
	Type    EdgeType
	Segment int
	Circle  int
	P1, P2  Point
}
