package pi

import "math/big"

// ReferencePi computes π at bit precision prec via the Gauss-Legendre
// arithmetic-geometric mean iteration — a different algorithm family from
// the Chudnovsky series the rest of this package evaluates, so that
// SelfTest is a meaningful cross-check rather than a tautology.
//
// The iteration maintains a, b, t, p and converges quadratically:
//
//	a₀=1, b₀=1/√2, t₀=1/4, p₀=1
//	a_{n+1} = (a_n+b_n)/2
//	b_{n+1} = √(a_n·b_n)
//	t_{n+1} = t_n − p_n·(a_n−a_{n+1})²
//	p_{n+1} = 2·p_n
//	π ≈ (a+b)² / (4t)
func ReferencePi(prec uint) *big.Float {
	workPrec := prec + 64

	one := new(big.Float).SetPrec(workPrec).SetInt64(1)
	two := new(big.Float).SetPrec(workPrec).SetInt64(2)
	four := new(big.Float).SetPrec(workPrec).SetInt64(4)

	a := new(big.Float).SetPrec(workPrec).Copy(one)
	b := new(big.Float).SetPrec(workPrec).Quo(one, sqrtFloat(two, workPrec))
	t := new(big.Float).SetPrec(workPrec).Quo(one, four)
	p := new(big.Float).SetPrec(workPrec).Copy(one)

	// Each iteration roughly doubles the number of correct bits; workPrec+64
	// bits converge well within this many iterations for any realistic N.
	maxIter := 8
	for bits := workPrec; bits > 1; bits >>= 1 {
		maxIter++
	}

	epsilon := new(big.Float).SetPrec(workPrec).SetMantExp(one, -int(workPrec))

	for i := 0; i < maxIter; i++ {
		aNext := new(big.Float).SetPrec(workPrec).Add(a, b)
		aNext.Quo(aNext, two)

		ab := new(big.Float).SetPrec(workPrec).Mul(a, b)
		bNext := sqrtFloat(ab, workPrec)

		diff := new(big.Float).SetPrec(workPrec).Sub(a, aNext)
		diff.Mul(diff, diff)
		diff.Mul(diff, p)
		t.Sub(t, diff)

		p.Mul(p, two)
		a, b = aNext, bNext

		delta := new(big.Float).SetPrec(workPrec).Sub(a, b)
		delta.Abs(delta)
		if delta.Cmp(epsilon) <= 0 {
			break
		}
	}

	sum := new(big.Float).SetPrec(workPrec).Add(a, b)
	sum.Mul(sum, sum)
	fourT := new(big.Float).SetPrec(workPrec).Mul(four, t)

	result := new(big.Float).SetPrec(prec).Quo(sum, fourT)
	return result
}

func sqrtFloat(x *big.Float, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Sqrt(x)
}
