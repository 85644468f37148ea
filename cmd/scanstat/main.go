// Command scanstat runs the scanline intersection engine over a built-in
// demo scene and prints per-edge run statistics. It exists to exercise
// the engine end to end and to eyeball sample runs at different grid
// resolutions and worker counts.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/scanline"
	"github.com/gogpu/scanline/scene"
)

func main() {
	var (
		div      = flag.Int64("div", 1000, "scene units per pixel")
		workers  = flag.Int("workers", 1, "fill workers (0 = GOMAXPROCS)")
		validate = flag.Bool("validate", true, "re-check run invariants after the pass")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		scanline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s := demoScene(*div)

	r, err := scanline.New(*div,
		scanline.WithWorkers(*workers),
		scanline.WithValidate(*validate),
	)
	if err != nil {
		log.Fatalf("scanstat: %v", err)
	}
	defer r.Close()

	if err := r.ComputeAll(s); err != nil {
		log.Fatalf("scanstat: compute: %v", err)
	}

	fmt.Printf("scene: %d points, %d segments, %d circles, %d edges\n",
		len(s.Points), len(s.Segments), len(s.Circles), len(s.Edges))
	fmt.Printf("grid: %d units per pixel, %d workers\n\n", r.DivPerPixel(), *workers)

	var vertTotal, horiTotal int
	for i := range s.Edges {
		e := &s.Edges[i]
		fmt.Printf("edge %2d %-9s", i, e.Type)

		vf, ys, ok := r.VerticalRun(e)
		if ok {
			vertTotal += len(ys)
			fmt.Printf("  cols %s", runSummary(vf, ys))
		} else {
			fmt.Printf("  cols -")
		}

		hf, xs, ok := r.HorizontalRun(e)
		if ok {
			horiTotal += len(xs)
			fmt.Printf("  rows %s", runSummary(hf, xs))
		} else {
			fmt.Printf("  rows -")
		}
		fmt.Println()
	}
	fmt.Printf("\ntotals: %d column samples, %d row samples\n", vertTotal, horiTotal)
}

// runSummary formats one axis run as "first..last (n) [lo..hi]".
func runSummary(firstPx int64, samples []int64) string {
	if len(samples) == 0 {
		return "empty"
	}
	lo, hi := samples[0], samples[0]
	for _, v := range samples[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return fmt.Sprintf("%d..%d (%d) [%d..%d]",
		firstPx, firstPx+int64(len(samples))-1, len(samples), lo, hi)
}

// demoScene lays out one of everything: a shallow and a steep diagonal,
// both axis-aligned lines, a full circle split into its four quadrants,
// and a second edge sharing the steep diagonal's segment.
func demoScene(div int64) *scene.Scene {
	var s scene.Scene

	add := func(idx int, err error) int {
		if err != nil {
			log.Fatalf("scanstat: scene: %v", err)
		}
		return idx
	}

	add(s.AddLine(scene.EdgeLineTR, scene.Pt(0, 0), scene.Pt(20*div, 8*div)))
	steep := add(s.AddLine(scene.EdgeLineBR, scene.Pt(2*div, 18*div), scene.Pt(8*div, -2*div)))
	add(s.AddLine(scene.EdgeLineVT, scene.Pt(5*div, 0), scene.Pt(5*div, 12*div)))
	add(s.AddLine(scene.EdgeLineHR, scene.Pt(0, 3*div), scene.Pt(15*div, 3*div)))

	center := scene.Pt(30*div, 10*div)
	for _, q := range []scene.EdgeType{
		scene.EdgeCircleTR, scene.EdgeCircleTL, scene.EdgeCircleBR, scene.EdgeCircleBL,
	} {
		add(s.AddQuadrant(q, center, 9*div))
	}

	add(s.AddEdge(scene.EdgeLineTL, s.Edges[steep].Segment))

	return &s
}
