// Package parallel provides the worker pool that executes independent
// fill jobs for the intersection engine.
//
// Jobs within a batch write disjoint buffer ranges assigned before the
// batch starts, so the pool needs no ordering guarantees and no result
// channels: Run returns when every job has executed, wherever it ran.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool executes batches of independent jobs on a fixed set of worker
// goroutines. Each worker owns a queue and steals from the others when
// its own runs dry, which keeps one long job from serializing a batch.
//
// Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds one buffered job queue per worker.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting batches.
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers and starts
// them. If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few slots of slack per worker hides submission latency.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return

		case job := <-own:
			if job != nil {
				job()
			}

		default:
			if job := p.steal(id); job != nil {
				job()
				continue
			}
			// Nothing to steal; block on the own queue.
			select {
			case <-p.done:
				drain(own)
				return
			case job := <-own:
				if job != nil {
					job()
				}
			}
		}
	}
}

// drain runs whatever is left in a queue.
func drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			if job != nil {
				job()
			}
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *Pool) steal(self int) func() {
	for i := 0; i < p.workers; i++ {
		if i == self {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run distributes the jobs round-robin across the workers and blocks
// until every one has finished. A closed pool runs the batch inline on
// the calling goroutine, so jobs are never dropped.
func (p *Pool) Run(jobs []func()) {
	if len(jobs) == 0 {
		return
	}
	if !p.running.Load() {
		for _, job := range jobs {
			job()
		}
		return
	}

	var batch sync.WaitGroup
	batch.Add(len(jobs))
	for i, job := range jobs {
		job := job
		wrapped := func() {
			defer batch.Done()
			job()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			// Pool is closing; finish this job inline.
			wrapped()
		}
	}
	batch.Wait()
}

// Close stops the workers after the queued jobs finish.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
