//go:build fastmath

package core

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// ln2 is the natural logarithm of 2, used for base conversions.
const ln2 = 0.693147180559945309417232121458

// Exp computes e^x using fast approximation.
func Exp(x float64) float64 {
	return approx.FastExp(x)
}

// Pow computes base^x as e^(x*ln(base)). Non-positive bases fall back to
// math.Pow, which handles their special cases.
func Pow(base, x float64) float64 {
	if base <= 0 {
		return math.Pow(base, x)
	}

	return approx.FastExp(x * approx.FastLog(base))
}

// Pow2 computes 2^x using fast approximation.
func Pow2(x float64) float64 {
	return approx.FastExp(x * ln2)
}
