// Package svf implements a zero-delay-feedback state variable filter.
package svf

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Outputs holds the simultaneous responses of one sample.
type Outputs struct {
	Lowpass  float64
	Bandpass float64
	Highpass float64
	Notch    float64
}

// Filter is a trapezoidal-integrated two-pole state variable filter.
type Filter struct {
	g, k       float64
	a1, a2, a3 float64
	ic1, ic2   float64
}

// Set updates cutoff and Q. The cutoff is kept below Nyquist and Q above
// a small floor so the coefficients stay finite.
func (f *Filter) Set(sampleRate, cutoffHz, q float64) {
	cutoffHz = core.Clamp(cutoffHz, 1, 0.49*sampleRate)
	if q < 1e-5 {
		q = 1e-5
	}

	f.g = math.Tan(math.Pi * cutoffHz / sampleRate)
	f.k = 1 / q
	f.a1 = 1 / (1 + f.g*(f.g+f.k))
	f.a2 = f.g * f.a1
	f.a3 = f.g * f.a2
}

// Reset clears the integrators.
func (f *Filter) Reset() {
	f.ic1, f.ic2 = 0, 0
}

// Process runs one sample and returns every response.
func (f *Filter) Process(input float64) Outputs {
	v3 := input - f.ic2
	v1 := f.a1*f.ic1 + f.a2*v3
	v2 := f.ic2 + f.a2*f.ic1 + f.a3*v3

	f.ic1 = core.FlushDenormals(2*v1 - f.ic1)
	f.ic2 = core.FlushDenormals(2*v2 - f.ic2)

	return Outputs{
		Lowpass:  v2,
		Bandpass: v1,
		Highpass: input - f.k*v1 - v2,
		Notch:    input - f.k*v1,
	}
}

// Lowpass runs one sample and returns the lowpass response.
func (f *Filter) Lowpass(input float64) float64 {
	return f.Process(input).Lowpass
}
