package scanline

import (
	"testing"

	"github.com/gogpu/scanline/scene"
)

// benchScene builds a deterministic scene of diagonal lines fanning out
// from the origin plus circle quadrants marching down-right, all sized
// for a grid of 1000 units per pixel.
func benchScene(tb testing.TB, nLines, nQuadrants int) *scene.Scene {
	tb.Helper()
	var s scene.Scene
	for i := 0; i < nLines; i++ {
		y2 := int64(100_000 + (i%17)*55_000)
		if _, err := s.AddLine(scene.EdgeLineTR, scene.Pt(0, 0), scene.Pt(1_000_000, y2)); err != nil {
			tb.Fatal(err)
		}
	}
	quads := []scene.EdgeType{
		scene.EdgeCircleTR, scene.EdgeCircleTL, scene.EdgeCircleBR, scene.EdgeCircleBL,
	}
	for i := 0; i < nQuadrants; i++ {
		center := scene.Pt(int64(i)*100_000, int64(i)*-50_000)
		radius := int64(150_000 + (i%9)*20_000)
		if _, err := s.AddQuadrant(quads[i%len(quads)], center, radius); err != nil {
			tb.Fatal(err)
		}
	}
	return &s
}

func BenchmarkComputeAll_Lines(b *testing.B) {
	s := benchScene(b, 100, 0)
	r, err := New(1000)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.ComputeAll(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeAll_Circles(b *testing.B) {
	s := benchScene(b, 0, 40)
	r, err := New(1000)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.ComputeAll(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeAll_Mixed(b *testing.B) {
	s := benchScene(b, 100, 40)
	r, err := New(1000)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.ComputeAll(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeAll_MixedParallel(b *testing.B) {
	s := benchScene(b, 100, 40)
	r, err := New(1000, WithWorkers(0))
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.ComputeAll(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerticalIntersection(b *testing.B) {
	s := benchScene(b, 1, 0)
	r, err := New(1000)
	if err != nil {
		b.Fatal(err)
	}
	if err := r.ComputeAll(s); err != nil {
		b.Fatal(err)
	}
	e := &s.Edges[0]
	firstPx, ys, ok := r.VerticalRun(e)
	if !ok {
		b.Fatal("no vertical run")
	}
	n := int64(len(ys))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.VerticalIntersection(e, firstPx+int64(i)%n)
	}
}

func BenchmarkFillLineVert(b *testing.B) {
	dst := make([]int64, 4096)
	p1 := scene.Pt(0, 0)
	p2 := scene.Pt(4_097_000, 2_333_777)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fillLineVert(dst, 1, p1, p2, 1000)
	}
}
