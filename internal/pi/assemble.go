package pi

import "math/big"

// assembleConst is the constant factor 426880 in the Chudnovsky assembly
// formula π = 426880·√10005·Q / |T|.
var assembleConst = big.NewInt(426880)

// Assemble computes π̂ = 426880·√10005·Q_root / |T_root| at bit precision
// prec, round-to-nearest-even (big.Float's default rounding mode). P_root is
// unused: it is an artifact of the combination rule, not of the formula.
//
// The absolute value of T is required because the alternating series sign
// is already folded into the magnitude formulation; using a signed T would
// flip the sign of π̂ for odd term counts.
func Assemble(root Triplet, prec uint) *big.Float {
	s := new(big.Float).SetPrec(prec).SetInt(big.NewInt(10005))
	s.Sqrt(s)

	qf := new(big.Float).SetPrec(prec).SetInt(root.Q)

	absT := new(big.Int).Abs(root.T)
	tf := new(big.Float).SetPrec(prec).SetInt(absT)

	cf := new(big.Float).SetPrec(prec).SetInt(assembleConst)

	tmp := new(big.Float).SetPrec(prec).Mul(s, cf)
	tmp.Mul(tmp, qf)

	piHat := new(big.Float).SetPrec(prec).Quo(tmp, tf)
	return piHat
}
