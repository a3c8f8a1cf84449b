package pi

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// Multiplier is the pluggable large-integer multiplication capability the
// evaluator's combine step depends on. The reference implementation trusts
// the standard library's bignum routines, per the engine's Non-goals: this
// package never implements its own subquadratic multiplication. The
// interface exists so an alternate backend (for example one delegating to
// GMP) can be swapped in without changing the evaluator.
type Multiplier interface {
	// Mul sets z to x*y and returns z.
	Mul(z, x, y *big.Int) *big.Int
	// Name identifies the backend, for logging and diagnostics.
	Name() string
}

// stdMultiplier delegates directly to (*big.Int).Mul.
type stdMultiplier struct{}

func (stdMultiplier) Mul(z, x, y *big.Int) *big.Int { return z.Mul(x, y) }
func (stdMultiplier) Name() string                  { return "std" }

// StdMultiplier is the default, always-available Multiplier backend.
var StdMultiplier Multiplier = stdMultiplier{}

// multiplierRegistry is a small name→constructor registry for alternate
// Multiplier backends (for example a build-tag-gated GMP backend). It is
// deliberately minimal: the engine has exactly one series (Chudnovsky) and
// does not need a registry for that, but the multiplication backend is a
// legitimate extension point and benefits from the same registration idiom
// used elsewhere in this codebase for pluggable algorithm backends.
type multiplierRegistry struct {
	mu    sync.RWMutex
	ctors map[string]func() Multiplier
}

var globalMultipliers = &multiplierRegistry{ctors: map[string]func() Multiplier{
	"std": func() Multiplier { return StdMultiplier },
}}

// RegisterMultiplier registers a named Multiplier backend in the global
// registry. It is intended to be called from an init function in a
// build-tag-gated file (see multiplier_gmp.go).
func RegisterMultiplier(name string, ctor func() Multiplier) {
	globalMultipliers.mu.Lock()
	defer globalMultipliers.mu.Unlock()
	globalMultipliers.ctors[name] = ctor
}

// GetMultiplier returns the named Multiplier backend, or an error if it is
// not registered (for example "gmp" when the binary was not built with the
// gmp build tag).
func GetMultiplier(name string) (Multiplier, error) {
	globalMultipliers.mu.RLock()
	defer globalMultipliers.mu.RUnlock()
	ctor, ok := globalMultipliers.ctors[name]
	if !ok {
		return nil, fmt.Errorf("pi: unknown multiplier backend %q (available: %v)", name, availableMultipliersLocked())
	}
	return ctor(), nil
}

// AvailableMultipliers returns the sorted names of registered backends.
func AvailableMultipliers() []string {
	globalMultipliers.mu.RLock()
	defer globalMultipliers.mu.RUnlock()
	return availableMultipliersLocked()
}

func availableMultipliersLocked() []string {
	names := make([]string, 0, len(globalMultipliers.ctors))
	for n := range globalMultipliers.ctors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
