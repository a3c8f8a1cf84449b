// Package pi computes the decimal or hexadecimal expansion of π to an
// arbitrary number of fractional digits using the Chudnovsky series
// evaluated by binary splitting.
//
// The pipeline is: a precision Plan converts a requested digit count into a
// working bit precision and term count; the binary-splitting Evaluate/
// EvaluateParallel functions combine per-term Leaf triplets over [0, n) into
// a single root Triplet; Assemble turns the root triplet into a
// high-precision big.Float approximation of π; FormatFixed renders that float as
// an exact fixed-point string with exactly N fractional digits. SelfTest
// cross-checks the result against an independently computed reference.
package pi
