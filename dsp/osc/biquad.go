package osc

import "math"

// BiquadSine generates a sine with the recursion y[n] = 2cos(w)y[n-1] - y[n-2].
// It is cheaper than Quadrature but accumulates amplitude error at very
// low frequencies.
type BiquadSine struct {
	k      float64
	y1, y2 float64
}

// Setup sets frequency and initial phase in radians. The first Process
// call returns sin(phase).
func (b *BiquadSine) Setup(freqHz, sampleRate, phase float64) {
	w := 2 * math.Pi * freqHz / sampleRate
	b.k = 2 * math.Cos(w)
	b.y1 = math.Sin(phase - w)
	b.y2 = math.Sin(phase - 2*w)
}

// Process advances one sample.
func (b *BiquadSine) Process() float64 {
	y0 := b.k*b.y1 - b.y2
	b.y2 = b.y1
	b.y1 = y0
	return y0
}
