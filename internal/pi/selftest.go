package pi

import "fmt"

// SelfTestResult is the outcome of a self-test run.
type SelfTestResult struct {
	OK bool
	// Verdict is a human-readable summary, including the index of the
	// first differing character on mismatch.
	Verdict string
	// MismatchIndex is the zero-based index of the first differing
	// character, or -1 if OK is true.
	MismatchIndex int
}

// SelfTest computes π via the Chudnovsky engine and via the independent
// Gauss-Legendre reference at the same working precision for N, formats
// both through the same formatter, and compares them byte-for-byte.
//
// Because the formatter is shared between both sides, formatter bugs
// cancel out — only the series evaluation is exercised. This is a
// documented limitation, not an oversight.
func SelfTest(n uint64, base uint) (SelfTestResult, error) {
	plan, err := NewPlan(n, base)
	if err != nil {
		return SelfTestResult{}, err
	}

	engineTriplet := Evaluate(0, plan.Terms, nil)
	engineFloat := Assemble(engineTriplet, plan.Prec)
	engineStr, err := FormatFixed(engineFloat, int(n), base)
	if err != nil {
		return SelfTestResult{}, err
	}

	refFloat := ReferencePi(plan.Prec)
	refStr, err := FormatFixed(refFloat, int(n), base)
	if err != nil {
		return SelfTestResult{}, err
	}

	return CompareDigitStrings(engineStr, refStr), nil
}

// CompareDigitStrings compares two already-formatted digit strings
// byte-for-byte and reports the index of the first divergence. Callers that
// already hold both formatted strings (e.g. because they needed to time each
// side separately) should call this directly instead of SelfTest, which
// recomputes both sides from scratch.
func CompareDigitStrings(got, want string) SelfTestResult {
	if got == want {
		return SelfTestResult{OK: true, Verdict: "self-test passed: engine output matches reference", MismatchIndex: -1}
	}
	limit := len(got)
	if len(want) < limit {
		limit = len(want)
	}
	idx := limit
	for i := 0; i < limit; i++ {
		if got[i] != want[i] {
			idx = i
			break
		}
	}
	return SelfTestResult{
		OK:            false,
		Verdict:       fmt.Sprintf("self-test failed: first difference at character index %d (got %q, want %q)", idx, byteAt(got, idx), byteAt(want, idx)),
		MismatchIndex: idx,
	}
}

func byteAt(s string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return string(s[i])
}
