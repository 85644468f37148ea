package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestPool_RunExecutesAll(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var n atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { n.Add(1) }
	}
	p.Run(jobs)

	if got := n.Load(); got != 100 {
		t.Errorf("executed %d jobs, want 100", got)
	}
}

func TestPool_RunEmpty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	p.Run(nil)
	p.Run([]func(){})
}

// Mirrors how the engine uses the pool: each job owns a disjoint range of
// a shared buffer, and Run returning means every range is written.
func TestPool_DisjointWrites(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	const jobs, width = 37, 11
	buf := make([]int64, jobs*width)
	work := make([]func(), jobs)
	for i := range work {
		dst := buf[i*width : (i+1)*width]
		base := int64(i)
		work[i] = func() {
			for j := range dst {
				dst[j] = base*width + int64(j)
			}
		}
	}
	p.Run(work)

	for i, v := range buf {
		if v != int64(i) {
			t.Fatalf("buf[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	p := NewPool(2)
	p.Close()

	var n atomic.Int64
	p.Run([]func(){
		func() { n.Add(1) },
		func() { n.Add(1) },
	})
	if got := n.Load(); got != 2 {
		t.Errorf("closed pool executed %d jobs, want 2 (inline)", got)
	}
}

func TestPool_CloseIdempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()
}

func TestPool_Workers(t *testing.T) {
	p := NewPool(3)
	defer p.Close()
	if got := p.Workers(); got != 3 {
		t.Errorf("Workers() = %d, want 3", got)
	}

	d := NewPool(0)
	defer d.Close()
	if got := d.Workers(); got != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want GOMAXPROCS %d", got, runtime.GOMAXPROCS(0))
	}
}

func TestPool_ReuseAcrossBatches(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	var n atomic.Int64
	for batch := 0; batch < 10; batch++ {
		jobs := make([]func(), 8)
		for i := range jobs {
			jobs[i] = func() { n.Add(1) }
		}
		p.Run(jobs)
	}
	if got := n.Load(); got != 80 {
		t.Errorf("executed %d jobs across batches, want 80", got)
	}
}
