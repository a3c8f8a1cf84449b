package pi

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestComputePi_OutputLength_Property verifies that, for any requested digit
// count N and either supported base, the formatted result has exactly
// N fractional digits (length N+2: one integer digit, the dot, N digits).
func TestComputePi_OutputLength_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("ComputePiBase output has length N+2", prop.ForAll(
		func(n uint64, baseChoice int) bool {
			base := uint(10)
			if baseChoice == 1 {
				base = 16
			}
			got, err := ComputePiBase(n, base)
			if err != nil {
				t.Logf("ComputePiBase(%d, %d) error: %v", n, base, err)
				return false
			}
			return len(got) == int(n)+2
		},
		gen.UInt64Range(1, 300),
		gen.IntRange(0, 1),
	))

	properties.TestingRun(t)
}

// TestComputePi_Prefix_Property verifies that computing more digits never
// changes the digits already produced at a smaller N: π's digit string is a
// prefix of any longer computation at the same base.
func TestComputePi_Prefix_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("shorter output is a prefix of longer output", prop.ForAll(
		func(small, extra uint64) bool {
			large := small + extra
			shortStr, err := ComputePiBase(small, 10)
			if err != nil {
				t.Logf("ComputePiBase(%d) error: %v", small, err)
				return false
			}
			longStr, err := ComputePiBase(large, 10)
			if err != nil {
				t.Logf("ComputePiBase(%d) error: %v", large, err)
				return false
			}
			return strings.HasPrefix(longStr, shortStr)
		},
		gen.UInt64Range(1, 100),
		gen.UInt64Range(1, 100),
	))

	properties.TestingRun(t)
}

// TestEvaluate_SplitInvariance_Property verifies that splitting a range at
// any interior point and combining the halves reproduces the triplet
// produced by evaluating the whole range directly: Combine is associative
// over the binary-splitting merge topology.
func TestEvaluate_SplitInvariance_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("Evaluate over [0,n) equals Combine of any split", prop.ForAll(
		func(n uint64, splitFrac uint64) bool {
			if n < 2 {
				n = 2
			}
			mid := 1 + splitFrac%(n-1)

			whole := Evaluate(0, n, nil)
			left := Evaluate(0, mid, nil)
			right := Evaluate(mid, n, nil)
			combined := Combine(left, right)

			return whole.P.Cmp(combined.P) == 0 &&
				whole.Q.Cmp(combined.Q) == 0 &&
				whole.T.Cmp(combined.T) == 0
		},
		gen.UInt64Range(2, 60),
		gen.UInt64Range(0, 1000),
	))

	properties.TestingRun(t)
}
