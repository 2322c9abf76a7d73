// Package onepole provides one-pole smoothing and DC blocking filters.
package onepole

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Lowpass is a one-pole lowpass (exponential moving average).
type Lowpass struct {
	kp float64
	y  float64
}

// SetCutoff sets the -3 dB frequency.
func (f *Lowpass) SetCutoff(sampleRate, cutoffHz float64) {
	if cutoffHz >= sampleRate/2 || cutoffHz <= 0 {
		f.kp = 1
		return
	}
	y := 1 - math.Cos(2*math.Pi*cutoffHz/sampleRate)
	f.kp = -y + math.Sqrt((y+2)*y)
}

// Reset sets the state to value.
func (f *Lowpass) Reset(value float64) { f.y = value }

// Process filters one sample.
func (f *Lowpass) Process(x float64) float64 {
	f.y += f.kp * (x - f.y)
	return f.y
}

// DCBlocker is a first-order highpass y = x - x1 + r*y1.
type DCBlocker struct {
	r      float64
	x1, y1 float64
}

// SetCutoff places the highpass corner at cutoffHz.
func (f *DCBlocker) SetCutoff(sampleRate, cutoffHz float64) {
	f.r = core.Clamp(1-2*math.Pi*cutoffHz/sampleRate, 0, 0.99999)
}

// Reset clears the state.
func (f *DCBlocker) Reset() {
	f.x1, f.y1 = 0, 0
}

// Process filters one sample.
func (f *DCBlocker) Process(x float64) float64 {
	y := x - f.x1 + f.r*f.y1
	f.x1 = x
	f.y1 = core.FlushDenormals(y)
	return y
}
