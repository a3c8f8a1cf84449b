package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool_SubmitRunsAndReturnsError(t *testing.T) {
	t.Parallel()
	p := NewPool(4)
	wantErr := errors.New("boom")

	h1 := p.Submit(func() error { return nil })
	h2 := p.Submit(func() error { return wantErr })

	if err := h1.Wait(); err != nil {
		t.Fatalf("h1.Wait() = %v, want nil", err)
	}
	if err := h2.Wait(); !errors.Is(err, wantErr) {
		t.Fatalf("h2.Wait() = %v, want %v", err, wantErr)
	}
}

func TestPool_RespectsSize(t *testing.T) {
	t.Parallel()
	const size = 2
	p := NewPool(size)

	var inFlight, maxInFlight int32
	start := make(chan struct{})
	release := make(chan struct{})

	handles := make([]*Handle, 0, size+3)
	for i := 0; i < size+3; i++ {
		handles = append(handles, p.Submit(func() error {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				old := atomic.LoadInt32(&maxInFlight)
				if n <= old || atomic.CompareAndSwapInt32(&maxInFlight, old, n) {
					break
				}
			}
			<-start
			atomic.AddInt32(&inFlight, -1)
			<-release
			return nil
		}))
	}

	close(start)
	close(release)
	for _, h := range handles {
		_ = h.Wait()
	}

	if got := atomic.LoadInt32(&maxInFlight); got > int32(size) {
		t.Fatalf("observed %d concurrently running tasks, pool size is %d", got, size)
	}
}

func TestPool_NewPoolClampsToOne(t *testing.T) {
	t.Parallel()
	p := NewPool(0)
	if p.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", p.Size())
	}
}
