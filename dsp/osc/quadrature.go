package osc

import "math"

// Quadrature is a sine/cosine pair advanced by an exact rotation split
// into three shears. Amplitude does not drift over long runs.
type Quadrature struct {
	k1, k2 float64
	u, v   float64
}

// Setup sets frequency and initial phase in radians.
func (q *Quadrature) Setup(freqHz, sampleRate, phase float64) {
	q.k1 = math.Tan(math.Pi * freqHz / sampleRate)
	q.k2 = 2 * q.k1 / (1 + q.k1*q.k1)
	q.v, q.u = math.Sincos(phase)
}

// Process advances one sample and returns the sine output.
func (q *Quadrature) Process() float64 {
	tmp := q.u - q.k1*q.v
	q.v += q.k2 * tmp
	q.u = tmp - q.k1*q.v
	return q.v
}

// Sin returns the current sine output without advancing.
func (q *Quadrature) Sin() float64 { return q.v }

// Cos returns the current cosine output without advancing.
func (q *Quadrature) Cos() float64 { return q.u }
