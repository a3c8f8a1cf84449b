package parallel

import "golang.org/x/sync/errgroup"

// Pool is a fixed-size worker pool supporting submit-and-wait on a handle.
// Concurrency is bounded by an errgroup.Group configured with SetLimit: the
// admission wait that enforces the limit runs on a goroutine of its own, not
// the caller's, so Submit itself never blocks — callers queue work and Wait
// on a Handle when they need the result, the same contract a bounded
// task-channel pool gives without the explicit channel.
type Pool struct {
	g    *errgroup.Group
	size int
}

// NewPool creates a worker pool that runs at most size tasks concurrently.
// A size below 1 is treated as 1.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	g := &errgroup.Group{}
	g.SetLimit(size)
	return &Pool{g: g, size: size}
}

// Size returns the pool's concurrency limit.
func (p *Pool) Size() int {
	return p.size
}

// Handle represents an in-flight or completed task submitted to a Pool.
type Handle struct {
	done chan struct{}
	err  error
}

// Wait blocks until the task completes and returns its error, if any.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

// Submit queues fn for execution and returns a handle the caller can Wait
// on. Submit returns immediately: the wait for a free slot under the
// pool's SetLimit admission control happens on a goroutine of its own, not
// the caller's, so a tight loop of Submit calls never deadlocks against a
// saturated pool.
func (p *Pool) Submit(fn func() error) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		p.g.Go(func() error {
			h.err = fn()
			close(h.done)
			return h.err
		})
	}()
	return h
}
