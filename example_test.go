package scanline_test

import (
	"fmt"

	"github.com/gogpu/scanline"
	"github.com/gogpu/scanline/scene"
)

// ExampleRasterizer demonstrates the basic flow: build a scene, run one
// pass, read the intersection runs.
func ExampleRasterizer() {
	var s scene.Scene
	idx, err := s.AddLine(scene.EdgeLineTR, scene.Pt(0, 0), scene.Pt(10, 4))
	if err != nil {
		fmt.Println("scene:", err)
		return
	}

	r, err := scanline.New(1) // one scene unit per pixel
	if err != nil {
		fmt.Println("new:", err)
		return
	}
	if err := r.ComputeAll(&s); err != nil {
		fmt.Println("compute:", err)
		return
	}

	e := &s.Edges[idx]
	firstPx, ys, _ := r.VerticalRun(e)
	fmt.Printf("columns %d..%d: %v\n", firstPx, firstPx+int64(len(ys))-1, ys)
	firstPx, xs, _ := r.HorizontalRun(e)
	fmt.Printf("rows %d..%d: %v\n", firstPx, firstPx+int64(len(xs))-1, xs)
	// Output:
	// columns 1..9: [0 1 1 2 2 2 3 3 4]
	// rows 1..3: [2 5 7]
}

// ExampleRasterizer_quadrant samples one circle quadrant and reads a
// single row crossing through the accessor.
func ExampleRasterizer_quadrant() {
	var s scene.Scene
	idx, err := s.AddQuadrant(scene.EdgeCircleTR, scene.Pt(0, 0), 10)
	if err != nil {
		fmt.Println("scene:", err)
		return
	}

	r, err := scanline.New(1)
	if err != nil {
		fmt.Println("new:", err)
		return
	}
	if err := r.ComputeAll(&s); err != nil {
		fmt.Println("compute:", err)
		return
	}

	e := &s.Edges[idx]
	_, xs, _ := r.HorizontalRun(e)
	fmt.Println("row crossings:", xs)
	fmt.Println("row 5 crossing:", r.HorizontalIntersection(e, 5))
	// Output:
	// row crossings: [-9 -9 -9 -9 -8 -8 -7 -6 -4]
	// row 5 crossing: -8
}

// ExampleWithWorkers runs the fill pass on a worker pool. Sample output
// is identical at any worker count.
func ExampleWithWorkers() {
	var s scene.Scene
	if _, err := s.AddLine(scene.EdgeLineTR, scene.Pt(0, 0), scene.Pt(10_000, 4_000)); err != nil {
		fmt.Println("scene:", err)
		return
	}
	if _, err := s.AddQuadrant(scene.EdgeCircleBL, scene.Pt(0, 0), 9_000); err != nil {
		fmt.Println("scene:", err)
		return
	}

	r, err := scanline.New(1000, scanline.WithWorkers(4), scanline.WithValidate(true))
	if err != nil {
		fmt.Println("new:", err)
		return
	}
	defer r.Close()
	if err := r.ComputeAll(&s); err != nil {
		fmt.Println("compute:", err)
		return
	}

	for i := range s.Edges {
		_, ys, _ := r.VerticalRun(&s.Edges[i])
		fmt.Printf("edge %d (%s): %d column samples\n", i, s.Edges[i].Type, len(ys))
	}
	// Output:
	// edge 0 (LineTR): 9 column samples
	// edge 1 (CircleBL): 8 column samples
}
