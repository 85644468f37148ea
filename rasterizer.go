package scanline

import (
	"fmt"

	"github.com/gogpu/scanline/internal/parallel"
	"github.com/gogpu/scanline/scene"
)

// runRef locates one segment's intersection run inside a shared buffer.
// firstPx is the pixel index of the first stored sample (a column for the
// vertical axis, a row for the horizontal axis); the samples occupy the
// half-open range [start, end) of the buffer. resolved reports whether a
// computed edge claimed the segment during the current pass; an explicit
// flag, so an unclaimed segment can never be confused with one whose run
// happens to start at offset zero.
type runRef struct {
	firstPx  int64
	start    int
	end      int
	resolved bool
}

// count returns the number of stored samples.
func (rr runRef) count() int { return rr.end - rr.start }

// sampleIndex translates a pixel index into a buffer offset.
// Asking for an uncomputed segment or a pixel outside the run violates
// the accessor contract and panics.
func (rr runRef) sampleIndex(px int64, axis string) int {
	if !rr.resolved {
		panic("scanline: " + axis + " intersections not computed for segment")
	}
	off := px - rr.firstPx
	if off < 0 || off >= int64(rr.count()) {
		panic("scanline: " + axis + " pixel index outside intersection run")
	}
	return rr.start + int(off)
}

// Rasterizer computes exact pixel-grid intersection runs for a scene.
//
// All geometry shares two flat sample buffers, one per scan axis. Each
// computed segment owns one contiguous range per axis, located by a run
// reference, so two edges over the same segment share one set of samples.
// A pass is a pure function of the scene and the grid resolution:
// identical inputs produce identical buffers on every platform, at every
// worker count.
//
// A Rasterizer is not safe for concurrent use by multiple goroutines.
// ComputeAll must complete before accessors or Validate are called; the
// engine parallelizes its fill internally when configured with workers.
type Rasterizer struct {
	divPerPixel int64

	// vertInters holds y samples at interior pixel columns; horiInters
	// holds x samples at interior pixel rows. Capacity is retained
	// across passes.
	vertInters []int64
	horiInters []int64

	// vertRefs and horiRefs hold one run reference per scene segment.
	vertRefs []runRef
	horiRefs []runRef

	// jobs is the fill job list reused across passes.
	jobs []fillJob

	validate bool

	// pool executes fill jobs when non-nil; otherwise fills run inline.
	pool *parallel.Pool
}

// New creates a Rasterizer for a grid with divPerPixel scene units per
// pixel. divPerPixel must be at least 1; higher values give sub-pixel
// resolution (1000 is a common choice, making one pixel span 1000 units).
func New(divPerPixel int64, opts ...Option) (*Rasterizer, error) {
	if divPerPixel < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDivPerPixel, divPerPixel)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Rasterizer{
		divPerPixel: divPerPixel,
		validate:    o.validate,
	}
	if o.spanCapacity > 0 {
		r.vertInters = make([]int64, 0, o.spanCapacity)
		r.horiInters = make([]int64, 0, o.spanCapacity)
	}
	if o.workers != 1 {
		r.pool = parallel.NewPool(o.workers)
	}
	return r, nil
}

// DivPerPixel returns the grid resolution in scene units per pixel.
func (r *Rasterizer) DivPerPixel() int64 {
	return r.divPerPixel
}

// Close releases the worker pool, if any. The Rasterizer stays usable
// afterward; subsequent passes fill sequentially.
func (r *Rasterizer) Close() {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
}

// Reset clears all intersection state and sizes the run references for
// the scene. ComputeAll calls it at the start of every pass; calling it
// directly just invalidates previous results without computing new ones.
// Buffer capacity is kept for reuse.
func (r *Rasterizer) Reset(s *scene.Scene) {
	n := 0
	if s != nil {
		n = len(s.Segments)
	}
	if cap(r.vertRefs) < n {
		r.vertRefs = make([]runRef, n)
		r.horiRefs = make([]runRef, n)
	} else {
		r.vertRefs = r.vertRefs[:n]
		r.horiRefs = r.horiRefs[:n]
		clear(r.vertRefs)
		clear(r.horiRefs)
	}
	r.vertInters = r.vertInters[:0]
	r.horiInters = r.horiInters[:0]
	r.jobs = r.jobs[:0]
}

// HorizontalIntersection returns the x coordinate where the edge crosses
// the pixel row yPx. Vertical line edges answer from their own endpoint
// (every row crossing sits at the line's x); all other edges read the
// sample their segment stored for that row.
//
// The pass must be computed and yPx must lie within the edge's stored
// run; violating either is a programming error and panics.
func (r *Rasterizer) HorizontalIntersection(e *scene.Edge, yPx int64) int64 {
	if e.Type.IsVertical() {
		return e.P1.X
	}
	return r.horiInters[r.horiRefs[e.Segment].sampleIndex(yPx, "horizontal")]
}

// VerticalIntersection returns the y coordinate where the edge crosses
// the pixel column xPx. Horizontal line edges answer from their own
// endpoint; all other edges read the sample their segment stored for
// that column.
//
// Same contract as HorizontalIntersection.
func (r *Rasterizer) VerticalIntersection(e *scene.Edge, xPx int64) int64 {
	if e.Type.IsHorizontal() {
		return e.P1.Y
	}
	return r.vertInters[r.vertRefs[e.Segment].sampleIndex(xPx, "vertical")]
}

// HorizontalRun returns a read-only view of the edge's stored horizontal
// run: x samples at consecutive pixel rows starting at firstPx. ok is
// false when the segment has no stored run (not yet computed, or out of
// range). The slice aliases engine memory and is valid until the next
// ComputeAll or Reset; callers must not modify or retain it.
func (r *Rasterizer) HorizontalRun(e *scene.Edge) (firstPx int64, xs []int64, ok bool) {
	return run(r.horiRefs, r.horiInters, e.Segment)
}

// VerticalRun returns a read-only view of the edge's stored vertical run:
// y samples at consecutive pixel columns starting at firstPx.
// Same contract as HorizontalRun.
func (r *Rasterizer) VerticalRun(e *scene.Edge) (firstPx int64, ys []int64, ok bool) {
	return run(r.vertRefs, r.vertInters, e.Segment)
}

func run(refs []runRef, inters []int64, segment int) (int64, []int64, bool) {
	if segment < 0 || segment >= len(refs) {
		return 0, nil, false
	}
	ref := refs[segment]
	if !ref.resolved {
		return 0, nil, false
	}
	return ref.firstPx, inters[ref.start:ref.end:ref.end], true
}
