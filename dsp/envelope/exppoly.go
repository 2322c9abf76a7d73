package envelope

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// ExpPoly is the envelope t^alpha e^(-curve t), normalized so its peak is
// 1 and occurs at the attack time. Larger curve values give a sharper
// peak and faster tail.
type ExpPoly struct {
	attack float64
	alpha  float64
	peak   float64
	gamma  float64
	tick   float64
	time   float64
	value  float64
}

// Reset retriggers the envelope.
func (e *ExpPoly) Reset(sampleRate, attack, curve float64) {
	attack = math.Max(attack, 1e-5)
	curve = math.Max(curve, 1e-5)

	e.attack = attack
	e.alpha = attack * curve
	e.peak = core.Pow(e.alpha/curve, e.alpha) * core.Exp(-e.alpha)
	e.gamma = core.Exp(-curve / sampleRate)
	e.tick = 1 / sampleRate
	e.time = 0
	e.value = 1
}

// Terminate silences the envelope.
func (e *ExpPoly) Terminate() { e.time = math.Inf(1) }

// IsTerminated reports whether the tail is below Threshold.
func (e *ExpPoly) IsTerminated() bool {
	return e.time > e.attack && e.level() < Threshold
}

func (e *ExpPoly) level() float64 {
	out := math.Pow(e.time, e.alpha) * e.value / e.peak
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0
	}
	return out
}

// Process advances one sample.
func (e *ExpPoly) Process() float64 {
	out := e.level()
	e.time += e.tick
	e.value = core.FlushDenormals(e.value * e.gamma)
	return out
}
