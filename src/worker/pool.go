package worker

import (
	"log"
	"sync"
)

// CaptureFunc performs one grab-to-file capture and returns the path written.
type CaptureFunc func(dir, code string) (string, error)

// ResultCallback is invoked on capture completion (from a worker goroutine).
// The loop passes a closure that posts the result back onto its own thread.
type ResultCallback func(path string, err error)

// Pool is a fixed-size capture worker pool with a 1-slot input queue
// (strict back-pressure). The orchestrator's Idle/Waiting guard means at
// most one job should ever be queued; the slot limit is a second line of
// defense.
type Pool struct {
	jobs chan job
	wg   sync.WaitGroup
}

type job struct {
	dir  string
	code string
	run  CaptureFunc
	cb   ResultCallback
}

// New creates a worker pool. Size defaults to 1 when size<=0; a screen grab
// is inherently serial, so one worker is the normal configuration.
func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	p := &Pool{jobs: make(chan job, 1)}
	p.start(size)
	return p
}

func (p *Pool) start(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				log.Printf("Worker: capturing %q into %s", j.code, j.dir)
				path, err := j.run(j.dir, j.code)
				log.Printf("Worker: capture done, path=%q, err=%v", path, err)
				j.cb(path, err)
			}
		}()
	}
}

// Submit enqueues a capture job if the single-slot queue is free. Returns
// false if the job was dropped.
func (p *Pool) Submit(dir, code string, run CaptureFunc, cb ResultCallback) bool {
	select {
	case p.jobs <- job{dir: dir, code: code, run: run, cb: cb}:
		return true
	default:
		return false
	}
}

// Close stops the pool after draining current work.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
