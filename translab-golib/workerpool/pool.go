package workerpool

import "sync"

// Job is a unit of work to run on the pool.
type Job func() error

// Pool runs jobs on a fixed number of goroutines.
type Pool struct {
	m       sync.Mutex
	cond    *sync.Cond
	queue   []Job
	pending int
	stopped bool
	err     error
}

// New creates a pool with the given number of workers.
func New(workers int) *Pool {
	p := &Pool{}
	p.cond = sync.NewCond(&p.m)
	for i := 0; i < workers; i++ {
		go p.work()
	}
	return p
}

// Add queues jobs for execution. It may be called multiple times.
func (p *Pool) Add(jobs []Job) {
	p.m.Lock()
	defer p.m.Unlock()
	if p.stopped {
		return
	}
	p.queue = append(p.queue, jobs...)
	p.pending += len(jobs)
	p.cond.Broadcast()
}

// Stop discards all unstarted jobs. Jobs already running are allowed to
// finish; workers exit once the queue drains.
func (p *Pool) Stop() {
	p.m.Lock()
	defer p.m.Unlock()
	p.pending -= len(p.queue)
	p.queue = nil
	p.stopped = true
	p.cond.Broadcast()
}

// Wait blocks until all queued jobs have completed (or were discarded via
// Stop) and returns the first error encountered by any job.
func (p *Pool) Wait() error {
	p.m.Lock()
	defer p.m.Unlock()
	for p.pending > 0 {
		p.cond.Wait()
	}
	return p.err
}

func (p *Pool) work() {
	for {
		p.m.Lock()
		for len(p.queue) == 0 {
			if p.stopped {
				p.m.Unlock()
				return
			}
			p.cond.Wait()
		}
		job := p.queue[0]
		p.queue = p.queue[1:]
		p.m.Unlock()

		err := job()

		p.m.Lock()
		if err != nil && p.err == nil {
			p.err = err
		}
		p.pending--
		if p.pending == 0 {
			p.cond.Broadcast()
		}
		p.m.Unlock()
	}
}
