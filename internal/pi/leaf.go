package pi

import "math/big"

// Chudnovsky series constants.
var (
	chudA    = big.NewInt(13591409)
	chudB    = big.NewInt(545140134)
	chudC324 = new(big.Int).SetUint64(10939058860032000) // 640320^3 / 24
)

// digitsPerTerm is the empirical number of decimal digits of π gained per
// Chudnovsky series term.
const digitsPerTerm = 14.181647462725477

// Leaf computes the triplet for the single-term range [k, k+1).
//
//	P_k = (6k−5)(2k−1)(6k−1)   for k ≥ 1, and P_0 = 1
//	Q_k = k³·C3_24             for k ≥ 1, and Q_0 = 1
//	T_k = P_k·(A + B·k), negated when k is odd
func Leaf(k uint64) Triplet {
	if k == 0 {
		return Triplet{
			P: big.NewInt(1),
			Q: big.NewInt(1),
			T: new(big.Int).Set(chudA),
		}
	}

	bk := new(big.Int).SetUint64(k)

	p := new(big.Int).Mul(big.NewInt(int64(6*k-5)), big.NewInt(int64(2*k-1)))
	p.Mul(p, big.NewInt(int64(6*k-1)))

	q := new(big.Int).Exp(bk, big.NewInt(3), nil)
	q.Mul(q, chudC324)

	t := new(big.Int).Mul(bk, chudB)
	t.Add(t, chudA)
	t.Mul(t, p)
	if k%2 == 1 {
		t.Neg(t)
	}

	return Triplet{P: p, Q: q, T: t}
}
