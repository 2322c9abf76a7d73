package core

import "math"

const defaultEpsilon = 1e-12

// SafetyLimit is the absolute output bound applied by SafetyClamp.
// It sits well above full scale (about +18 dBFS) so that it only engages on
// runaway accumulation.
const SafetyLimit = 8.0

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// SafetyClamp hard-limits x to [-SafetyLimit, SafetyLimit]. NaN maps to 0.
func SafetyClamp(x float64) float64 {
	if x != x {
		return 0
	}

	if x > SafetyLimit {
		return SafetyLimit
	}

	if x < -SafetyLimit {
		return -SafetyLimit
	}

	return x
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Feedback paths call this once per sample to keep decaying tails cheap.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
