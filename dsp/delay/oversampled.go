package delay

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/interp"
)

// Oversampled is a delay line running at twice the host rate. Every input
// sample is written together with the midpoint to the previous one, which
// halves the interpolation error of modulated reads. It is used where the
// feedback path runs through filters that operate at 2x.
type Oversampled struct {
	line Line
	w1   float64
}

// Setup allocates room for maxTime seconds at 2x sampleRate.
func (d *Oversampled) Setup(sampleRate, maxTime float64) error {
	if err := core.ValidateSampleRate("delay", sampleRate); err != nil {
		return err
	}
	return d.line.Setup(2*sampleRate, maxTime)
}

// SetMode selects the fractional read kernel.
func (d *Oversampled) SetMode(mode interp.Mode) { d.line.SetMode(mode) }

// Len returns the 2x buffer size.
func (d *Oversampled) Len() int {
	return d.line.Len()
}

// Process writes input and returns it delayed by seconds.
func (d *Oversampled) Process(input, sampleRate, seconds float64) float64 {
	d.line.Write(input - 0.5*(input-d.w1))
	d.line.Write(input)
	d.w1 = input
	return d.line.ReadFractional(2 * seconds * sampleRate)
}

// Reset clears the buffer and the midpoint state.
func (d *Oversampled) Reset() {
	d.line.Reset()
	d.w1 = 0
}
