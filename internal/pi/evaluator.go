package pi

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/agbru/piracer/internal/parallel"
)

// Evaluate performs sequential binary splitting over the half-open index
// range [a, b), a < b, combining term leaves via Combine. The recursion's
// base case, b−a == 1, returns the leaf at a directly.
//
// If sink is non-nil it is ticked exactly once per leaf, in depth-first
// left-to-right order.
func Evaluate(a, b uint64, sink ProgressSink) Triplet {
	if sink == nil {
		sink = NoOpSink{}
	}
	var done uint64
	return evalSeq(a, b, b-a, sink, &done)
}

func evalSeq(a, b, total uint64, sink ProgressSink, done *uint64) Triplet {
	if b-a == 1 {
		leaf := Leaf(a)
		*done++
		sink.Tick(*done, total)
		return leaf
	}
	m := a + (b-a)/2
	l := evalSeq(a, m, total, sink, done)
	r := evalSeq(m, b, total, sink, done)
	return Combine(l, r)
}

// ParallelOptions configures EvaluateParallel.
type ParallelOptions struct {
	// Pool is the fixed-size worker pool subtrees are submitted to. Required.
	Pool *parallel.Pool
	// ChunkSize is the submission policy threshold: a subtree is only
	// submitted to the pool while its index range width exceeds ChunkSize.
	// Zero means every non-leaf range width is eligible.
	ChunkSize uint64
	// Sink, if non-nil, is ticked once per leaf. No ordering is guaranteed
	// between ticks from different worker goroutines.
	Sink ProgressSink
	// Mul is the Multiplier capability used for the combine step. Defaults
	// to StdMultiplier when nil.
	Mul Multiplier
}

// EvaluateParallel performs binary splitting over [a, b), spawning the left
// subtree of any spawn point onto opts.Pool while the range width exceeds
// opts.ChunkSize, and evaluating the right subtree (and, below the
// threshold, both subtrees) in the calling goroutine. The result is
// bit-identical to Evaluate over the same range: parallelism only changes
// where work runs, never the merge order.
//
// A worker error (including a panic recovered from a pooled goroutine) is
// propagated to the caller only after all in-flight siblings have joined;
// no worker is left orphaned. ctx is checked at merge points, never inside
// a leaf; cancellation is an optional extension — if ctx is already done
// when a spawn point is reached, the error is recorded and propagated the
// same way a worker error would be, but in-flight work is still joined.
func EvaluateParallel(ctx context.Context, a, b uint64, opts ParallelOptions) (Triplet, error) {
	if opts.Pool == nil {
		return Triplet{}, fmt.Errorf("pi: EvaluateParallel requires a non-nil Pool")
	}
	if opts.Sink == nil {
		opts.Sink = NoOpSink{}
	}
	if opts.Mul == nil {
		opts.Mul = StdMultiplier
	}

	var done atomic.Uint64
	ec := &parallel.ErrorCollector{}
	total := b - a

	result := evalPar(ctx, a, b, total, opts, &done, ec)
	if err := ec.Err(); err != nil {
		return Triplet{}, err
	}
	return result, nil
}

func evalPar(ctx context.Context, a, b, total uint64, opts ParallelOptions, done *atomic.Uint64, ec *parallel.ErrorCollector) Triplet {
	if b-a == 1 {
		leaf := Leaf(a)
		n := done.Add(1)
		opts.Sink.Tick(n, total)
		return leaf
	}

	m := a + (b-a)/2

	if b-a <= opts.ChunkSize {
		l := evalPar(ctx, a, m, total, opts, done, ec)
		r := evalPar(ctx, m, b, total, opts, done, ec)
		return combineWith(opts.Mul, l, r)
	}

	select {
	case <-ctx.Done():
		ec.SetError(ctx.Err())
	default:
	}

	var left Triplet
	h := opts.Pool.Submit(func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("pi: worker panic: %v", p)
			}
		}()
		left = evalPar(ctx, a, m, total, opts, done, ec)
		return nil
	})

	right := evalPar(ctx, m, b, total, opts, done, ec)

	if err := h.Wait(); err != nil {
		ec.SetError(err)
	}
	if ec.Err() != nil {
		return Triplet{}
	}
	return combineWith(opts.Mul, left, right)
}

// DefaultChunkSize returns a submission policy threshold on the order of
// n/W, the rule of thumb §4.3 calls for: spawn parallel work only while the
// remaining range is wide enough to amortise the cost of a pool submission
// across roughly one chunk per worker.
func DefaultChunkSize(terms uint64, workers int) uint64 {
	if workers < 1 {
		workers = 1
	}
	chunk := terms / uint64(workers)
	if chunk == 0 {
		chunk = 1
	}
	return chunk
}
