package pi

import "math/big"

// Triplet is the carrier of binary-splitting state: a tuple (P, Q, T) of
// exact integers representing a partial sum of the Chudnovsky series over
// some half-open index range. P and Q are always positive; T may be
// negative. A Triplet is owned by exactly one evaluator frame at a time.
type Triplet struct {
	P *big.Int
	Q *big.Int
	T *big.Int
}

// Combine merges a left triplet covering [a, m) with a right triplet
// covering [m, b) into the triplet covering [a, b).
//
// Combination is associative but not commutative:
//
//	P = L.P·R.P
//	Q = L.Q·R.Q
//	T = L.T·R.Q + L.P·R.T
func Combine(l, r Triplet) Triplet {
	return combineWith(StdMultiplier, l, r)
}

// combineWith is Combine routed through a Multiplier capability, so the
// evaluator's combine step is the one place large-integer multiplication is
// pluggable.
func combineWith(mul Multiplier, l, r Triplet) Triplet {
	p := mul.Mul(new(big.Int), l.P, r.P)
	q := mul.Mul(new(big.Int), l.Q, r.Q)

	t := mul.Mul(new(big.Int), l.T, r.Q)
	pt := mul.Mul(new(big.Int), l.P, r.T)
	t.Add(t, pt)

	return Triplet{P: p, Q: q, T: t}
}
