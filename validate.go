package scanline

import (
	"fmt"

	"github.com/gogpu/scanline/internal/fixmath"
	"github.com/gogpu/scanline/scene"
)

// Validate re-checks every stored run against the invariants the engine
// guarantees: each sample lies within its segment's endpoint bounding box
// on that axis, and each run is strictly monotonic, no two samples equal
// or out of order. The direction of a run follows the geometry (a
// negative-slope line or a top-left quadrant descends), so only plateaus
// and reversals are violations.
//
// The pass is read-only and covers every edge of the diagonal-line,
// circle, and other-arc families; axis-aligned edges store nothing and
// segments never claimed by a computed edge are skipped. The first
// violation is returned, wrapped around ErrRunOutOfBounds or
// ErrRunNotMonotonic with the edge, axis, and sample position.
//
// Strictness is also a resolution contract: a grid too coarse for its
// geometry, such as a near-flat line crossing many columns per unit of
// rise or a wide circle sampled near its extremum at unit resolution,
// legitimately produces plateaus and fails here. That is the checker
// doing its job: at that resolution the samples cannot be distinguished,
// and downstream span extraction would misbehave silently.
func (r *Rasterizer) Validate(s *scene.Scene) error {
	if s == nil {
		return ErrNilScene
	}
	for i := range s.Edges {
		e := &s.Edges[i]
		if !e.Type.IsDiagonal() && !e.Type.IsCircle() && !e.Type.IsArc() {
			continue
		}
		if e.Segment < 0 || e.Segment >= len(r.vertRefs) {
			continue
		}

		if err := checkRun(r.vertRefs[e.Segment], r.vertInters,
			min(e.P1.Y, e.P2.Y), max(e.P1.Y, e.P2.Y), i, e.Type, "vertical"); err != nil {
			return err
		}
		if err := checkRun(r.horiRefs[e.Segment], r.horiInters,
			min(e.P1.X, e.P2.X), max(e.P1.X, e.P2.X), i, e.Type, "horizontal"); err != nil {
			return err
		}
	}
	return nil
}

// checkRun validates one axis run of one edge: bounds first, then strict
// monotonicity with the direction fixed by the first step.
func checkRun(ref runRef, inters []int64, lo, hi int64, edge int, t scene.EdgeType, axis string) error {
	if !ref.resolved || ref.count() == 0 {
		return nil
	}
	vals := inters[ref.start:ref.end]

	for j, v := range vals {
		if v < lo || v > hi {
			return fmt.Errorf("%w: edge %d (%s) %s sample %d: value %d outside [%d, %d]",
				ErrRunOutOfBounds, edge, t, axis, j, v, lo, hi)
		}
	}

	var dir int64
	for j := 1; j < len(vals); j++ {
		step := fixmath.Signum(vals[j] - vals[j-1])
		switch {
		case step == 0:
			return fmt.Errorf("%w: edge %d (%s) %s samples %d and %d: both %d",
				ErrRunNotMonotonic, edge, t, axis, j-1, j, vals[j])
		case dir == 0:
			dir = step
		case step != dir:
			return fmt.Errorf("%w: edge %d (%s) %s sample %d: direction reversed at %d",
				ErrRunNotMonotonic, edge, t, axis, j, vals[j])
		}
	}
	return nil
}
