// Package modulation provides modulated-delay effects.
package modulation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/delay"
	"github.com/cwbudde/algo-synth/dsp/osc"
)

const (
	// ChorusVoices is the number of modulated delay taps of a Chorus.
	ChorusVoices = 3

	// MaxChorusDelay is the longest delay in seconds a voice can reach.
	MaxChorusDelay = 0.05

	maxChorusFeedback = 0.99

	// The right tap trails the left by a quarter LFO cycle.
	stereoOffset = 0.25
)

// ChorusVoice holds the delay settings of one voice in seconds.
type ChorusVoice struct {
	MinDelay float64
	Range    float64
}

type chorusVoice struct {
	ChorusVoice

	line       delay.Line
	left       *osc.LFO
	right      *osc.LFO
	phase      float64
	feedbackIn float64
}

// Chorus is a stereo multi-voice modulated-delay chorus fed by a mono
// signal. The delay of voice v follows
//
//	d(t) = minDelay_v + depth * range_v * lfo(t + phase + v*offset)
//
// where lfo is a unipolar sine and phases are in cycles. Each voice is read
// twice, once per output channel.
type Chorus struct {
	sampleRate float64
	depth      float64
	feedback   float64
	delayScale float64

	voices [ChorusVoices]chorusVoice
}

// NewChorus returns a chorus set up at sampleRate.
func NewChorus(sampleRate float64) (*Chorus, error) {
	c := &Chorus{delayScale: 1}
	for i := range c.voices {
		c.voices[i].left = osc.NewLFO(sampleRate)
		c.voices[i].right = osc.NewLFO(sampleRate)
	}
	if err := c.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return c, nil
}

// SetSampleRate resizes the delay lines and clears all state.
func (c *Chorus) SetSampleRate(sampleRate float64) error {
	if err := core.ValidateSampleRate("chorus", sampleRate); err != nil {
		return err
	}
	c.sampleRate = sampleRate
	for i := range c.voices {
		v := &c.voices[i]
		if err := v.line.Setup(sampleRate, MaxChorusDelay); err != nil {
			return err
		}
		v.left.Setup(sampleRate)
		v.right.Setup(sampleRate)
	}
	c.Reset()
	return nil
}

// SetRate sets the LFO frequency in Hz.
func (c *Chorus) SetRate(hz float64) {
	for i := range c.voices {
		c.voices[i].left.SetFreq(hz)
		c.voices[i].right.SetFreq(hz)
	}
}

// SetDepth sets the share of each voice's range that is swept, in [0, 1].
func (c *Chorus) SetDepth(depth float64) {
	c.depth = core.Clamp(depth, 0, 1)
}

// SetFeedback sets the gain from each voice's left tap back into its line.
func (c *Chorus) SetFeedback(feedback float64) {
	c.feedback = core.Clamp(feedback, 0, maxChorusFeedback)
}

// SetPhase sets the LFO phase of the first voice and the phase step
// between voices, both in radians.
func (c *Chorus) SetPhase(phase, offset float64) {
	for i := range c.voices {
		c.voices[i].phase = (phase + float64(i)*offset) / (2 * math.Pi)
	}
}

// SetDelayScale multiplies every minimum delay. Key tracking sets it to
// follow the played pitch.
func (c *Chorus) SetDelayScale(scale float64) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	c.delayScale = scale
}

// SetVoice configures voice i.
func (c *Chorus) SetVoice(i int, v ChorusVoice) error {
	if i < 0 || i >= ChorusVoices {
		return fmt.Errorf("chorus voice %d out of range [0,%d)", i, ChorusVoices)
	}
	if !(v.MinDelay >= 0) || !(v.Range >= 0) || v.MinDelay+v.Range > MaxChorusDelay {
		return fmt.Errorf("chorus voice delay %g + %g must lie in [0,%g]", v.MinDelay, v.Range, MaxChorusDelay)
	}
	c.voices[i].ChorusVoice = v
	return nil
}

// Reset clears the delay lines and restarts the LFOs.
func (c *Chorus) Reset() {
	for i := range c.voices {
		v := &c.voices[i]
		v.line.Reset()
		v.left.Reset()
		v.right.Reset()
		v.feedbackIn = 0
	}
}

// Process feeds one sample and returns the averaged left and right taps.
func (c *Chorus) Process(x float64) (left, right float64) {
	for i := range c.voices {
		v := &c.voices[i]
		v.line.Write(x + c.feedback*v.feedbackIn)

		minDelay := v.MinDelay * c.delayScale
		sweep := c.depth * v.Range
		l := v.line.ReadFractional(c.samples(minDelay + sweep*v.left.Process(0, v.phase)))
		r := v.line.ReadFractional(c.samples(minDelay + sweep*v.right.Process(0, v.phase+stereoOffset)))

		v.feedbackIn = l
		left += l
		right += r
	}
	return left / ChorusVoices, right / ChorusVoices
}

func (c *Chorus) samples(seconds float64) float64 {
	return min(seconds, MaxChorusDelay) * c.sampleRate
}
