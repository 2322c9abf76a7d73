// Package lp3 implements a resonant lowpass whose coefficients are fitted
// polynomials of the normalized cutoff. A coefficient update is O(1) and
// safe to run on every sample.
package lp3

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

const maxNormalizedCutoff = 0.49

// CutoffToC maps a cutoff in Hz to the integrator coefficient.
func CutoffToC(sampleRate, cutoffHz float64) float64 {
	x := core.Clamp(cutoffHz/sampleRate, 0, maxNormalizedCutoff)
	return ((((((56.85341479156533*x-60.92051508862034)*x-1.6515635438744682)*x+
		31.558896956675998)*x-20.61402812645397)*x + 6.320753515093109) * x)
}

// ResonanceToK maps resonance in [0,1] to the feedback coefficient. With
// uniformPeak the resonant peak height stays roughly constant across
// cutoff.
func ResonanceToK(c, resonance float64, uniformPeak bool) float64 {
	if !uniformPeak {
		return core.Clamp(resonance, 0, 1-1e-5)
	}

	kExp := core.Exp(-5.6852537097945195 * resonance)
	kMin := 1 - kExp
	kMax := 0.9999771732485103 - 0.01*(kExp-0.0033956716251850594)
	return kMax - (kMax-kMin)*math.Acos(core.Clamp(1-c, -1, 1))/(math.Pi/2)
}

// HighpassToDecay maps a highpass cutoff in Hz to the per-sample decay of
// the output integrator (-3 dB fit). Zero cutoff disables the highpass.
func HighpassToDecay(sampleRate, cutoffHz float64) float64 {
	if cutoffHz <= 0 {
		return 1
	}
	x := cutoffHz / sampleRate
	return 0.5638865655409118 + 0.43611343445908823*core.Exp(-6.501239408777854*x)
}

// Filter is the three-state lowpass with an optional leaky output stage.
type Filter struct {
	c           float64
	k           float64
	decay       float64
	uniformGain bool

	acc, vel, pos, x1 float64
}

// New returns a filter with the given settings.
func New(sampleRate, cutoffHz, resonance, highpassHz float64) *Filter {
	f := &Filter{}
	f.Set(sampleRate, cutoffHz, resonance, highpassHz, true, true)
	return f
}

// Set updates all coefficients. uniformGain scales the output so that the
// passband gain is 1 regardless of resonance.
func (f *Filter) Set(sampleRate, cutoffHz, resonance, highpassHz float64, uniformPeak, uniformGain bool) {
	f.c = CutoffToC(sampleRate, cutoffHz)
	f.k = ResonanceToK(f.c, resonance, uniformPeak)
	f.decay = HighpassToDecay(sampleRate, highpassHz)
	f.uniformGain = uniformGain
}

// Reset clears the state.
func (f *Filter) Reset() {
	f.acc, f.vel, f.pos, f.x1 = 0, 0, 0, 0
}

// Process filters one sample.
func (f *Filter) Process(x0 float64) float64 {
	f.acc = f.k*f.acc + f.c*f.vel
	f.vel -= f.acc + x0 - f.x1

	g := f.c
	if f.uniformGain {
		g = f.c / (1 - f.k)
	}
	f.pos -= g * f.vel
	f.pos = core.FlushDenormals(f.pos * f.decay)

	f.x1 = x0
	return f.pos
}
