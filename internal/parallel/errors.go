// Package parallel provides the small concurrency primitives the binary-splitting
// evaluator needs: a first-error-wins collector and a fixed-size worker pool.
package parallel

import "sync"

// ErrorCollector accumulates errors reported from concurrent goroutines,
// keeping only the first non-nil one. It is safe for concurrent use.
type ErrorCollector struct {
	mu  sync.Mutex
	err error
}

// SetError records err as the collector's error if none has been recorded yet.
// Subsequent calls, including with nil, are ignored once an error is set.
func (ec *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if ec.err == nil {
		ec.err = err
	}
}

// Err returns the first error recorded, or nil if none was recorded.
func (ec *ErrorCollector) Err() error {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.err
}

// Reset clears any recorded error so the collector can be reused.
func (ec *ErrorCollector) Reset() {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.err = nil
}
