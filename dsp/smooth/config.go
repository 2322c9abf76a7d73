// Package smooth turns control-rate parameter targets into per-sample values.
//
// All smoothers of one engine share a Config that is set in Setup and read
// during Process. The Config is passed explicitly; there is no package
// state.
package smooth

import "math"

// Config is the smoothing context shared by every smoother of one engine.
type Config struct {
	sampleRate  float64
	time        float64
	steps       int
	kp          float64
	bufferSize  int
	bufferIndex int
}

// NewConfig returns a Config for sampleRate and smoothing time in seconds.
func NewConfig(sampleRate, seconds float64) *Config {
	c := &Config{sampleRate: 44100, bufferSize: 1}
	c.SetSampleRate(sampleRate)
	c.SetTime(seconds)
	return c
}

// SetSampleRate updates the rate and recomputes derived coefficients.
func (c *Config) SetSampleRate(sampleRate float64) {
	if sampleRate > 0 {
		c.sampleRate = sampleRate
	}
	c.update()
}

// SetTime sets the smoothing time in seconds. Zero or negative disables
// smoothing.
func (c *Config) SetTime(seconds float64) {
	if seconds != seconds || seconds < 0 {
		seconds = 0
	}
	c.time = seconds
	c.update()
}

func (c *Config) update() {
	c.steps = int(math.Round(c.time * c.sampleRate))
	if c.steps <= 0 {
		c.steps = 0
		c.kp = 1
		return
	}
	c.kp = CutoffToCoefficient(c.sampleRate, 1/c.time)
}

// SetBufferSize sets the frame count of the block being processed.
func (c *Config) SetBufferSize(frames int) {
	if frames < 1 {
		frames = 1
	}
	c.bufferSize = frames
	c.bufferIndex = 0
}

// SetBufferIndex sets the frame position within the current block. Block
// smoothers read it, so all of them advance in lock-step.
func (c *Config) SetBufferIndex(index int) {
	if index < 0 {
		index = 0
	}
	c.bufferIndex = index
}

func (c *Config) SampleRate() float64  { return c.sampleRate }
func (c *Config) Time() float64        { return c.time }
func (c *Config) Steps() int           { return c.steps }
func (c *Config) Coefficient() float64 { return c.kp }
func (c *Config) BufferSize() int      { return c.bufferSize }
func (c *Config) BufferIndex() int     { return c.bufferIndex }

// CutoffToCoefficient returns the one-pole coefficient of an exponential
// moving average with the given cutoff. The result is in (0, 1].
func CutoffToCoefficient(sampleRate, cutoffHz float64) float64 {
	if !(cutoffHz > 0) || !(sampleRate > 0) {
		return 1
	}
	if cutoffHz >= sampleRate/2 {
		return 1
	}

	y := 1 - math.Cos(2*math.Pi*cutoffHz/sampleRate)
	return -y + math.Sqrt((y+2)*y)
}
