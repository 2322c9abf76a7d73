package allpass

import (
	"github.com/cwbudde/algo-synth/dsp/delay"
)

// Section is a Schroeder allpass with transfer function
//
//	H(z) = (g + z^-M) / (1 + g z^-M)
//
// where M is the delay time plus the one-sample state register.
type Section struct {
	buffer float64
	delay  delay.Line
}

// Setup allocates the delay for maxTime seconds.
func (s *Section) Setup(sampleRate, maxTime float64) error {
	return s.delay.Setup(sampleRate, maxTime)
}

// Reset clears the state without reallocating.
func (s *Section) Reset() {
	s.buffer = 0
	s.delay.Reset()
}

// Process runs one sample. seconds and gain may change on every call.
func (s *Section) Process(input, sampleRate, seconds, gain float64) float64 {
	input -= gain * s.buffer
	out := s.buffer + gain*input
	s.buffer = s.delay.Process(input, sampleRate, seconds)
	return out
}
