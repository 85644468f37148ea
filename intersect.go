package scanline

import (
	"errors"
	"fmt"

	"github.com/gogpu/scanline/internal/fixmath"
	"github.com/gogpu/scanline/scene"
)

// fillJob is one segment's fill work for the current pass, identified by
// the edge that claimed the segment. The claimed buffer ranges live in
// the segment's run references.
type fillJob struct {
	edge int
}

// ComputeAll computes the intersection runs for every computable edge of
// the scene in two passes.
//
// The plan pass walks edges in order, claims each still-unclaimed segment
// for the first diagonal-line or circle edge that references it, and
// derives both axis ranges from the endpoint geometry alone, assigning
// disjoint buffer offsets with running prefix sums. Axis-aligned line
// edges and other-arc edges claim nothing: the former answer from their
// endpoints, the latter share a companion edge's runs.
//
// The fill pass then writes every claimed range, sequentially or on the
// worker pool. Ranges and offsets are fixed before any fill starts, so
// parallel passes produce bit-identical buffers.
//
// On error (invalid arc geometry, or failed validation when enabled) the
// buffers are left in an unspecified state; the next pass resets them.
func (r *Rasterizer) ComputeAll(s *scene.Scene) error {
	if s == nil {
		return ErrNilScene
	}
	r.Reset(s)

	div := r.divPerPixel
	vertNext, horiNext := 0, 0
	for i := range s.Edges {
		e := &s.Edges[i]
		if !e.Type.IsDiagonal() && !e.Type.IsCircle() {
			continue
		}
		if r.vertRefs[e.Segment].resolved {
			// A previous edge over the same segment already claimed it.
			continue
		}

		var vertLo, vertHi int64
		if e.Type.IsDiagonal() {
			vertLo = min(e.P1.X, e.P2.X)
			vertHi = max(e.P1.X, e.P2.X)
		} else {
			// Quadrant orientation fixes the column extent; a reversed
			// extent plans an empty run.
			vertLo, vertHi = e.P1.X, e.P2.X
			if e.Type == scene.EdgeCircleTL || e.Type == scene.EdgeCircleBR {
				vertLo, vertHi = vertHi, vertLo
			}
		}
		horiLo := min(e.P1.Y, e.P2.Y)
		horiHi := max(e.P1.Y, e.P2.Y)

		// Both axes are claimed together, so a segment is never visible
		// with only one run filled.
		vertNext = planRun(&r.vertRefs[e.Segment], vertLo, vertHi, div, vertNext)
		horiNext = planRun(&r.horiRefs[e.Segment], horiLo, horiHi, div, horiNext)
		r.jobs = append(r.jobs, fillJob{edge: i})
	}

	r.vertInters = sized(r.vertInters, vertNext)
	r.horiInters = sized(r.horiInters, horiNext)

	if err := r.runFills(s); err != nil {
		return err
	}

	Logger().Debug("scanline pass",
		"edges", len(s.Edges),
		"segments", len(s.Segments),
		"filled", len(r.jobs),
		"vertSamples", vertNext,
		"horiSamples", horiNext,
		"workers", r.workers())

	if r.validate {
		return r.Validate(s)
	}
	return nil
}

// planRun resolves one run reference for the half-open pixel range
// interior to the coordinate span (lo, hi), placing it at buffer offset
// next. Returns the next free offset.
func planRun(ref *runRef, lo, hi, div int64, next int) int {
	first := fixmath.GridFirst(lo, div)
	n := fixmath.GridEnd(hi, div) - first
	if n < 0 {
		n = 0
	}
	ref.firstPx = first
	ref.start = next
	//nolint:gosec // Sample counts are bounded by buffer memory.
	ref.end = next + int(n)
	ref.resolved = true
	return ref.end
}

// sized returns buf with length n, reallocating only when capacity is
// short. Contents are not cleared: every slot belongs to exactly one
// planned run and its fill overwrites the whole range.
func sized(buf []int64, n int) []int64 {
	if cap(buf) < n {
		return make([]int64, n)
	}
	return buf[:n]
}

// runFills executes the planned fill jobs, on the pool when available.
func (r *Rasterizer) runFills(s *scene.Scene) error {
	if r.pool == nil || len(r.jobs) < 2 {
		for _, job := range r.jobs {
			if err := r.fill(job, s); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, len(r.jobs))
	work := make([]func(), len(r.jobs))
	for i := range r.jobs {
		job := r.jobs[i]
		slot := &errs[i]
		work[i] = func() {
			*slot = r.fill(job, s)
		}
	}
	r.pool.Run(work)
	return errors.Join(errs...)
}

// fill writes both axis runs of the segment claimed by one job.
func (r *Rasterizer) fill(job fillJob, s *scene.Scene) error {
	e := &s.Edges[job.edge]
	vr := r.vertRefs[e.Segment]
	hr := r.horiRefs[e.Segment]
	vdst := r.vertInters[vr.start:vr.end]
	hdst := r.horiInters[hr.start:hr.end]

	if e.Type.IsDiagonal() {
		fillLineVert(vdst, vr.firstPx, e.P1, e.P2, r.divPerPixel)
		fillLineHori(hdst, hr.firstPx, e.P1, e.P2, r.divPerPixel)
		return nil
	}

	c := s.Circles[e.Circle]
	center := s.Points[c.Center]
	if err := fillCircleHori(hdst, hr.firstPx, e.Type, center, c.Radius, r.divPerPixel); err != nil {
		return fmt.Errorf("edge %d (%s): %w", job.edge, e.Type, err)
	}
	if err := fillCircleVert(vdst, vr.firstPx, e.Type, center, c.Radius, r.divPerPixel); err != nil {
		return fmt.Errorf("edge %d (%s): %w", job.edge, e.Type, err)
	}
	return nil
}

// workers reports the fill parallelism for diagnostics.
func (r *Rasterizer) workers() int {
	if r.pool == nil {
		return 1
	}
	return r.pool.Workers()
}
