package pi

// Checkpoint/resume is not implemented. A correct checkpoint would have to
// capture the partial triplets of every in-flight recursion frame, not just
// a "completed term count" — resuming from a term count alone would require
// re-deriving the combination topology above that count, which this package
// does not attempt. This is recorded as future work rather than shipped as
// a half-working save/load path.
