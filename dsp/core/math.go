//go:build !fastmath

package core

import "math"

// Exp computes e^x using standard library math.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Pow computes base^x using standard library math.
func Pow(base, x float64) float64 {
	return math.Pow(base, x)
}

// Pow2 computes 2^x using standard library math.
func Pow2(x float64) float64 {
	return math.Exp2(x)
}
