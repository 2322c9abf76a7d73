package engine

import (
	"github.com/cwbudde/algo-synth/dsp/param"
	"github.com/cwbudde/algo-synth/dsp/voice"
)

// Engine is a block-processing instrument or effect.
//
// Setup may allocate and returns a configuration error for an invalid
// sample rate. Every other method runs on the audio thread and must not
// allocate or block.
type Engine interface {
	Setup(sampleRate float64) error
	// Reset stops all sound and clears internal state.
	Reset()
	// Startup restarts phases and random sequences for a new playback.
	Startup()
	// SetParameters latches the parameter set once per block.
	SetParameters(tempo float64)
	// Process renders frames samples into each out channel. in may alias
	// out when the channel counts match. Only indices [0, frames) are
	// touched.
	Process(frames int, in, out [][]float64)

	NoteOn(id int32, pitch int16, tuning, velocity float64)
	NoteOff(id int32)

	// Latency returns the processing delay in samples.
	Latency() int
	// Channels returns the input and output channel counts.
	Channels() (in, out int)

	Params() *param.Set
	Queue() *voice.Queue
}

// DefaultTempo is used when the host reports no tempo.
const DefaultTempo = 120.0

// Base holds the state every engine shares. Engines embed it.
type Base struct {
	params     *param.Set
	queue      *voice.Queue
	sampleRate float64
}

// NewBase returns a Base with an empty parameter set of the given size
// and a default-sized event queue.
func NewBase(paramCount int) Base {
	return Base{
		params:     param.NewSet(paramCount),
		queue:      voice.NewQueue(voice.DefaultQueueSize),
		sampleRate: 48000,
	}
}

func (b *Base) Params() *param.Set  { return b.params }
func (b *Base) Queue() *voice.Queue { return b.queue }
func (b *Base) Latency() int        { return 0 }

// SampleRate returns the rate of the last successful Setup.
func (b *Base) SampleRate() float64 { return b.sampleRate }

// SetSampleRate records the rate. Engines call it from Setup after
// validation.
func (b *Base) SetSampleRate(sampleRate float64) { b.sampleRate = sampleRate }

// TempoOrDefault returns tempo, or DefaultTempo when tempo is not
// positive and finite.
func TempoOrDefault(tempo float64) float64 {
	if tempo > 0 && tempo < 1e6 {
		return tempo
	}
	return DefaultTempo
}
