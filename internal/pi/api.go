package pi

import (
	"context"
	"fmt"

	"github.com/agbru/piracer/internal/parallel"
)

// ComputePi computes π to n decimal fractional digits, sequentially.
func ComputePi(n uint64) (string, error) {
	return ComputePiBase(n, 10)
}

// ComputePiBase computes π to n fractional digits in the given base
// (10 or 16), sequentially.
func ComputePiBase(n uint64, base uint) (string, error) {
	return ComputePiWithProgress(n, base, nil)
}

// ComputePiWithProgress computes π to n fractional digits in the given
// base, sequentially, ticking sink once per leaf if sink is non-nil.
func ComputePiWithProgress(n uint64, base uint, sink ProgressSink) (string, error) {
	plan, err := NewPlan(n, base)
	if err != nil {
		return "", err
	}
	root := Evaluate(0, plan.Terms, sink)
	piHat := Assemble(root, plan.Prec)
	return FormatFixed(piHat, int(n), base)
}

// ComputePiParallel computes π to n fractional digits in the given base
// using a fixed-size pool of w worker goroutines. w=1 is equivalent to the
// sequential path and produces a bit-identical result.
func ComputePiParallel(ctx context.Context, n uint64, base uint, w int, sink ProgressSink) (string, error) {
	if w < 1 {
		return "", fmt.Errorf("pi: worker count W must be ≥ 1, got %d", w)
	}
	plan, err := NewPlan(n, base)
	if err != nil {
		return "", err
	}
	if w == 1 {
		return ComputePiWithProgress(n, base, sink)
	}

	pool := parallel.NewPool(w)
	root, err := EvaluateParallel(ctx, 0, plan.Terms, ParallelOptions{
		Pool:      pool,
		ChunkSize: DefaultChunkSize(plan.Terms, w),
		Sink:      sink,
		Mul:       StdMultiplier,
	})
	if err != nil {
		return "", err
	}
	piHat := Assemble(root, plan.Prec)
	return FormatFixed(piHat, int(n), base)
}
