package testutil

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// MagnitudeSpectrum returns |X[k]| for k in [0, n/2] of x zero-padded to
// n. n must be a size supported by the FFT plan (a power of two is
// always safe).
func MagnitudeSpectrum(x []float64, n int) ([]float64, error) {
	if n < len(x) {
		return nil, fmt.Errorf("fft size %d shorter than signal %d", n, len(x))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	mag := make([]float64, n/2+1)
	for k := range mag {
		mag[k] = cmplx.Abs(out[k])
	}
	return mag, nil
}

// PeakBin returns the bin with the largest magnitude, ignoring DC.
func PeakBin(mag []float64) int {
	best := 1
	for k := 2; k < len(mag); k++ {
		if mag[k] > mag[best] {
			best = k
		}
	}
	return best
}
