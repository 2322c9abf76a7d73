package envelope

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// SegmentAlpha returns the per-sample multiplier that takes 1 to
// Threshold in seconds. Zero length returns 0, an instant segment.
func SegmentAlpha(sampleRate, seconds float64) float64 {
	if seconds <= 0 || sampleRate <= 0 {
		return 0
	}
	return core.Pow(Threshold, 1/(seconds*sampleRate))
}

// ADPeak returns the maximum of (1 - e^(a t)) e^(b t), where a and b are
// the rate constants of the attack and decay lengths in seconds.
func ADPeak(attack, decay float64) float64 {
	if attack <= 0 {
		return 1
	}
	if decay <= 0 {
		return 0
	}

	lnTh := math.Log(Threshold)
	a := lnTh / attack
	b := lnTh / decay
	t := -math.Log(a/b+1) / a
	return (1 - math.Exp(a*t)) * math.Exp(b*t)
}

// ExpAD is an attack-decay envelope shaped as (1 - A(t)) D(t), where A and
// D are exponential decays. The output is normalized so the peak equals
// the gain passed to Reset.
type ExpAD struct {
	valueA, alphaA float64
	valueD, alphaD float64
	gain           float64
	peak           float64
}

// Reset retriggers the envelope. Negative times are treated as zero. A
// zero decay silences the envelope.
func (e *ExpAD) Reset(sampleRate, attack, decay, gain float64) {
	attack = math.Max(attack, 0)
	decay = math.Max(decay, 0)

	e.valueA = 1
	e.alphaA = SegmentAlpha(sampleRate, attack)
	e.valueD = 1
	e.alphaD = SegmentAlpha(sampleRate, decay)

	e.peak = ADPeak(attack, decay)
	e.gain = 0
	if e.peak > 0 {
		e.gain = gain / e.peak
	}
}

// Peak returns the analytic maximum of the envelope before normalization.
func (e *ExpAD) Peak() float64 { return e.peak }

// IsTerminated reports whether the decay segment is below Threshold.
func (e *ExpAD) IsTerminated() bool { return e.valueD <= Threshold }

// Terminate forces the envelope to silence.
func (e *ExpAD) Terminate() { e.valueD = 0 }

// Process advances one sample.
func (e *ExpAD) Process() float64 {
	e.valueA *= e.alphaA
	e.valueD = core.FlushDenormals(e.valueD * e.alphaD)
	return e.gain * (1 - e.valueA) * e.valueD
}
