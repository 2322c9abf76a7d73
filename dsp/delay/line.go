// Package delay provides circular-buffer fractional delay lines.
//
// Buffers are allocated in Setup or New and never resized while
// processing. Read offsets are recomputed on every call, so delay time may
// change every sample.
package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/interp"
)

const minSize = 4

// Line is a circular delay line with a fractional read.
type Line struct {
	buffer   []float64
	writePos int
	mode     interp.Mode
}

// Option configures a Line.
type Option func(*Line)

// WithMode selects the fractional read kernel. Linear is the default.
func WithMode(mode interp.Mode) Option {
	return func(d *Line) {
		d.mode = mode
	}
}

// New returns a delay line of fixed size.
func New(size int, opts ...Option) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	if size < minSize {
		size = minSize
	}

	d := &Line{buffer: make([]float64, size)}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d, nil
}

// SizeFor returns the capacity needed to delay maxTime seconds.
func SizeFor(sampleRate, maxTime float64) int {
	size := int(sampleRate*maxTime) + 2
	if size < minSize {
		size = minSize
	}
	return size
}

// Setup sizes the buffer for maxTime seconds at sampleRate and clears it.
// The buffer is only reallocated when the size changes.
func (d *Line) Setup(sampleRate, maxTime float64) error {
	if err := core.ValidateSampleRate("delay", sampleRate); err != nil {
		return err
	}
	if !(maxTime >= 0) || math.IsInf(maxTime, 0) {
		return core.NewConfigurationError("delay", "max time must be >= 0: %f", maxTime)
	}

	size := SizeFor(sampleRate, maxTime)
	if len(d.buffer) != size {
		d.buffer = make([]float64, size)
	}
	d.Reset()
	return nil
}

// SetMode selects the fractional read kernel.
func (d *Line) SetMode(mode interp.Mode) {
	d.mode = mode
}

// Mode returns the fractional read kernel.
func (d *Line) Mode() interp.Mode {
	return d.mode
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// MaxDelay returns the longest delay in samples a fractional read can
// reach with the current mode.
func (d *Line) MaxDelay() float64 {
	m := float64(len(d.buffer) - d.mode.Taps() + 1)
	if m < 0 {
		return 0
	}
	return m
}

// Write writes one sample.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read returns the sample written delay writes before the most recent one.
// Read(0) is the most recent sample.
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}
	if delay < 0 {
		delay = 0
	} else if delay >= size {
		delay = size - 1
	}

	pos := d.writePos - 1 - delay
	if pos < 0 {
		pos += size
	}
	return d.buffer[pos]
}

// ReadFractional reads delay samples back, clamped to [0, MaxDelay()].
func (d *Line) ReadFractional(delay float64) float64 {
	if len(d.buffer) == 0 {
		return 0
	}

	maxDelay := d.MaxDelay()
	if !(delay > 0) {
		delay = 0
	} else if delay > maxDelay {
		delay = maxDelay
	}

	p := int(delay)
	t := delay - float64(p)

	if d.mode == interp.Hermite {
		return interp.Hermite4(t, d.Read(p-1), d.Read(p), d.Read(p+1), d.Read(p+2))
	}
	if t == 0 {
		return d.Read(p)
	}
	return interp.Linear2(t, d.Read(p), d.Read(p+1))
}

// Process writes input and returns the sample delayed by seconds.
func (d *Line) Process(input, sampleRate, seconds float64) float64 {
	d.Write(input)
	return d.ReadFractional(seconds * sampleRate)
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}
