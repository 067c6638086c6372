package orchestrator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/boot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

type job struct {
	name string
	run  func() error
}

// pool runs async hooks with bounded concurrency.
// Submit never blocks: jobs are queued and handed to the errgroup by a dispatcher goroutine.
type pool struct {
	logger ports.Logger
	group  *errgroup.Group

	mu     sync.Mutex
	queue  []job
	closed bool

	signal  chan struct{}
	done    chan struct{}
	pending atomic.Int64
}

func newPool(workers int, logger ports.Logger) *pool {
	g := new(errgroup.Group)
	g.SetLimit(workers)

	p := &pool{
		logger: logger,
		group:  g,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go p.dispatch()
	return p
}

// Submit queues a job. It reports false once the pool is shut down.
func (p *pool) Submit(name string, run func() error) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.queue = append(p.queue, job{name: name, run: run})
	p.pending.Add(1)
	p.mu.Unlock()

	p.wake()
	return true
}

// Shutdown stops accepting jobs and waits until every queued job finished, the timeout
// elapsed or ctx is done. Jobs still queued or running are abandoned, not cancelled; they
// keep running in the background. Their number is returned.
func (p *pool) Shutdown(ctx context.Context, timeout time.Duration) int {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wake()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-p.done:
		return 0
	case <-timer.C:
	case <-ctx.Done():
	}
	return int(p.pending.Load())
}

func (p *pool) wake() {
	select {
	case p.signal <- struct{}{}:
	default:
	}
}

func (p *pool) dispatch() {
	defer close(p.done)

	for {
		p.mu.Lock()
		batch, closed := p.queue, p.closed
		p.queue = nil
		p.mu.Unlock()

		if len(batch) == 0 {
			if closed {
				_ = p.group.Wait()
				return
			}
			<-p.signal
			continue
		}

		for _, j := range batch {
			p.group.Go(func() error {
				p.run(j)
				return nil
			})
		}
	}
}

func (p *pool) run(j job) {
	defer p.pending.Add(-1)
	defer zerr.Defer(func(err error) {
		p.logger.Warn("async hook panicked", "hook", j.name, "error", err)
	})

	if err := j.run(); err != nil {
		p.logger.Warn("async hook failed", "hook", j.name, "error", err)
	}
}
