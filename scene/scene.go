// Package scene defines the geometry input model for scanline
// intersection: a flat point table, segments and circles indexing it, and
// typed edges that orient segments for the scan passes.
//
// A Scene is a snapshot. The intersection engine only ever reads it, and
// all slices are plain exported fields so callers that already have
// tessellated geometry can fill them directly. The Add helpers below are
// a convenience layer that keeps the cross-references consistent.
//
// Coordinates are int64 scene units on a fixed grid with a configurable
// number of units per pixel, chosen when the engine is constructed.
package scene

import (
	"errors"
	"fmt"
)

// ErrIndexRange reports an edge builder called with a point, segment, or
// circle index outside the scene's tables.
var ErrIndexRange = errors.New("scene: index out of range")

// ErrEdgeFamily reports an edge builder called with an EdgeType outside
// the family it constructs.
var ErrEdgeFamily = errors.New("scene: edge type outside expected family")

// ErrRadius reports a circle with a non-positive radius.
var ErrRadius = errors.New("scene: radius must be positive")

// Segment is an ordered pair of indices into a Scene's point table.
type Segment struct {
	P1, P2 int
}

// Circle is a center point index plus a radius in scene units.
type Circle struct {
	Center int
	Radius int64
}

// Scene is a snapshot of geometry handed to the intersection engine.
// The zero value is an empty scene ready for use.
type Scene struct {
	Points   []Point
	Segments []Segment
	Circles  []Circle
	Edges    []Edge
}

// Reset clears the scene for reuse without deallocating memory.
func (s *Scene) Reset() {
	s.Points = s.Points[:0]
	s.Segments = s.Segments[:0]
	s.Circles = s.Circles[:0]
	s.Edges = s.Edges[:0]
}

// AddPoint appends a point and returns its index.
func (s *Scene) AddPoint(p Point) int {
	s.Points = append(s.Points, p)
	return len(s.Points) - 1
}

// AddSegment appends a segment over two point indices and returns its
// index. The points must already exist; edge builders read them when
// denormalizing endpoints.
func (s *Scene) AddSegment(p1, p2 int) int {
	s.Segments = append(s.Segments, Segment{P1: p1, P2: p2})
	return len(s.Segments) - 1
}

// AddCircle appends a circle around an existing center point and returns
// its index.
func (s *Scene) AddCircle(center int, radius int64) int {
	s.Circles = append(s.Circles, Circle{Center: center, Radius: radius})
	return len(s.Circles) - 1
}

// AddEdge appends a line-family edge over an existing segment and returns
// its index. The segment's endpoints are copied into the edge.
func (s *Scene) AddEdge(t EdgeType, segment int) (int, error) {
	if !t.IsLine() {
		return 0, fmt.Errorf("AddEdge %s: %w", t, ErrEdgeFamily)
	}
	p1, p2, err := s.segmentPoints(segment)
	if err != nil {
		return 0, fmt.Errorf("AddEdge %s: %w", t, err)
	}
	s.Edges = append(s.Edges, Edge{Type: t, Segment: segment, Circle: -1, P1: p1, P2: p2})
	return len(s.Edges) - 1, nil
}

// AddArcEdge appends a circle- or arc-family edge over an existing segment
// and circle and returns its index.
func (s *Scene) AddArcEdge(t EdgeType, segment, circle int) (int, error) {
	if !t.IsCircle() && !t.IsArc() {
		return 0, fmt.Errorf("AddArcEdge %s: %w", t, ErrEdgeFamily)
	}
	p1, p2, err := s.segmentPoints(segment)
	if err != nil {
		return 0, fmt.Errorf("AddArcEdge %s: %w", t, err)
	}
	if circle < 0 || circle >= len(s.Circles) {
		return 0, fmt.Errorf("AddArcEdge %s: circle %d: %w", t, circle, ErrIndexRange)
	}
	s.Edges = append(s.Edges, Edge{Type: t, Segment: segment, Circle: circle, P1: p1, P2: p2})
	return len(s.Edges) - 1, nil
}

// AddLine appends two points, a segment over them, and a line-family edge
// in one call, returning the edge index.
func (s *Scene) AddLine(t EdgeType, p1, p2 Point) (int, error) {
	if !t.IsLine() {
		return 0, fmt.Errorf("AddLine %s: %w", t, ErrEdgeFamily)
	}
	seg := s.AddSegment(s.AddPoint(p1), s.AddPoint(p2))
	return s.AddEdge(t, seg)
}

// AddQuadrant appends the full quadrant arc of a circle as one
// circle-family edge, deriving the endpoint pair the scan passes expect
// for the given orientation. It returns the edge index.
//
// Endpoints per orientation (center c, radius r):
//
//	CircleTR: (c.X-r, c.Y) .. (c.X, c.Y+r)
//	CircleTL: (c.X, c.Y-r) .. (c.X-r, c.Y)
//	CircleBR: (c.X+r, c.Y) .. (c.X, c.Y+r)
//	CircleBL: (c.X, c.Y-r) .. (c.X+r, c.Y)
func (s *Scene) AddQuadrant(t EdgeType, center Point, radius int64) (int, error) {
	if !t.IsCircle() {
		return 0, fmt.Errorf("AddQuadrant %s: %w", t, ErrEdgeFamily)
	}
	if radius < 1 {
		return 0, fmt.Errorf("AddQuadrant %s: radius %d: %w", t, radius, ErrRadius)
	}

	var p1, p2 Point
	switch t {
	case EdgeCircleTR:
		p1 = Pt(center.X-radius, center.Y)
		p2 = Pt(center.X, center.Y+radius)
	case EdgeCircleTL:
		p1 = Pt(center.X, center.Y-radius)
		p2 = Pt(center.X-radius, center.Y)
	case EdgeCircleBR:
		p1 = Pt(center.X+radius, center.Y)
		p2 = Pt(center.X, center.Y+radius)
	case EdgeCircleBL:
		p1 = Pt(center.X, center.Y-radius)
		p2 = Pt(center.X+radius, center.Y)
	}

	circle := s.AddCircle(s.AddPoint(center), radius)
	seg := s.AddSegment(s.AddPoint(p1), s.AddPoint(p2))
	return s.AddArcEdge(t, seg, circle)
}

func (s *Scene) segmentPoints(segment int) (Point, Point, error) {
	if segment < 0 || segment >= len(s.Segments) {
		return Point{}, Point{}, fmt.Errorf("segment %d: %w", segment, ErrIndexRange)
	}
	seg := s.Segments[segment]
	if seg.P1 < 0 || seg.P1 >= len(s.Points) || seg.P2 < 0 || seg.P2 >= len(s.Points) {
		return Point{}, Point{}, fmt.Errorf("segment %d points (%d, %d): %w",
			segment, seg.P1, seg.P2, ErrIndexRange)
	}
	return s.Points[seg.P1], s.Points[seg.P2], nil
}
