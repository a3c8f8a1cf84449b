//go:build gmp

package pi

import (
	"math/big"

	"github.com/ncw/gmp"
)

// gmpMultiplier delegates multiplication to github.com/ncw/gmp, which binds
// the GMP C library. It is only compiled when the binary is built with the
// "gmp" build tag and GMP is available on the host, matching the opt-in
// pattern used for other alternate big-integer backends in this codebase.
type gmpMultiplier struct{}

func (gmpMultiplier) Name() string { return "gmp" }

func (gmpMultiplier) Mul(z, x, y *big.Int) *big.Int {
	gx := new(gmp.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		gx.Neg(gx)
	}
	gy := new(gmp.Int).SetBytes(y.Bytes())
	if y.Sign() < 0 {
		gy.Neg(gy)
	}
	gz := new(gmp.Int).Mul(gx, gy)
	z.SetBytes(gz.Bytes())
	if x.Sign()*y.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

func init() {
	RegisterMultiplier("gmp", func() Multiplier { return gmpMultiplier{} })
}
