package pi

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// guardDigits is the number of extra mantissa digits requested beyond N to
// absorb rounding at the tail, per §4.5.
const guardDigits = 2

// FormatFixed renders af as an exact fixed-point string with precisely n
// fractional digits in the given base (10 or 16): "3.1415926535" for
// decimal, "3.243f6a8885" for hex.
//
// It bridges big.Float's natural sign/mantissa/exponent representation
// (implicit in MantExp) with the fixed-point form by requesting n+2 guard
// digits of mantissa, then applying the case split on the base-b exponent
// described in §4.5, then normalizing the fractional part to exactly n
// characters.
func FormatFixed(af *big.Float, n int, base uint) (string, error) {
	if base != 10 && base != 16 {
		return "", fmt.Errorf("pi: invalid base %d (must be 10 or 16)", base)
	}
	if n < 1 {
		return "", fmt.Errorf("pi: digit count N must be ≥ 1")
	}
	if af.Sign() == 0 {
		return "", fmt.Errorf("pi: cannot format zero")
	}

	neg := af.Sign() < 0
	mantissa, expo := mantissaAndExponent(af, base, n+guardDigits)
	l := len(mantissa)

	var sb strings.Builder
	switch {
	case expo <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -expo))
		sb.WriteString(mantissa)
	case l <= expo:
		sb.WriteString(mantissa)
		sb.WriteString(strings.Repeat("0", expo-l))
		sb.WriteString(".")
	default:
		sb.WriteString(mantissa[:expo])
		sb.WriteString(".")
		end := expo + n
		if end > l {
			end = l
		}
		sb.WriteString(mantissa[expo:end])
	}

	s := sb.String()
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot+1:]
	if len(fracPart) < n {
		fracPart += strings.Repeat("0", n-len(fracPart))
	} else if len(fracPart) > n {
		fracPart = fracPart[:n]
	}

	result := intPart + "." + fracPart
	if neg {
		result = "-" + result
	}
	return result, nil
}

// mantissaAndExponent returns the first digits characters (base b) of |af|,
// truncated rather than rounded, and the base-b exponent expo such that
// |af| = 0.mantissa · b^expo.
func mantissaAndExponent(af *big.Float, base uint, digits int) (string, int) {
	prec := af.Prec()
	if prec < 64 {
		prec = 64
	}

	v := new(big.Float).SetPrec(prec).Abs(af)
	bf := new(big.Float).SetPrec(prec).SetInt64(int64(base))

	e2 := v.MantExp(nil)
	log2b := 3.32192809488736
	if base == 16 {
		log2b = 4.0
	}
	expo := int(math.Ceil(float64(e2) / log2b))

	pow := bigFloatPow(bf, absInt(expo), prec)
	if expo < 0 {
		pow.Quo(new(big.Float).SetPrec(prec).SetInt64(1), pow)
	}

	// Correct expo so that pow/base <= v < pow, i.e. v = 0.d1.. * base^expo
	// with d1 != 0.
	for v.Cmp(pow) >= 0 {
		pow.Mul(pow, bf)
		expo++
	}
	lower := new(big.Float).SetPrec(prec).Quo(pow, bf)
	for v.Cmp(lower) < 0 {
		pow.Set(lower)
		lower.Quo(pow, bf)
		expo--
	}

	// Scale v so that its integer part has exactly `digits` base-b digits,
	// then truncate to that integer, so that a longer request only appends
	// digits to a shorter one.
	shift := digits - expo
	scaled := new(big.Float).SetPrec(prec)
	if shift >= 0 {
		scaled.Mul(v, bigFloatPow(bf, shift, prec))
	} else {
		scaled.Quo(v, bigFloatPow(bf, -shift, prec))
	}

	mantInt, _ := scaled.Int(nil)
	mantissa := mantInt.Text(int(base))

	// Floating-point rounding of the scaled product can still carry a digit
	// (e.g. 999.999… rounding up to 1000): absorb it into the exponent
	// instead of the digit string.
	if len(mantissa) > digits {
		expo += len(mantissa) - digits
		mantissa = mantissa[:digits]
	}
	if len(mantissa) < digits {
		mantissa = strings.Repeat("0", digits-len(mantissa)) + mantissa
	}
	return mantissa, expo
}

// bigFloatPow computes base^exp (exp ≥ 0) at the given precision via
// exponentiation by squaring.
func bigFloatPow(base *big.Float, exp int, prec uint) *big.Float {
	result := new(big.Float).SetPrec(prec).SetInt64(1)
	b := new(big.Float).SetPrec(prec).Set(base)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result.Mul(result, b)
		}
		b.Mul(b, b)
	}
	return result
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
