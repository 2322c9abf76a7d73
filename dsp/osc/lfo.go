package osc

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/noise"
)

// Shape selects the LFO waveform.
type Shape uint8

const (
	Sine Shape = iota
	Saw
	Pulse
	Noise
)

func (s Shape) String() string {
	switch s {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Pulse:
		return "pulse"
	case Noise:
		return "noise"
	default:
		return "unknown"
	}
}

const (
	lfoNoiseSeed  = 871341
	syncFadeTime  = 0.1
	minLFOWidth   = 1e-5
	maxLFOWidth   = 1 - 1e-5
	defaultLFOPw  = 0.5
	secondsPerMin = 60
)

// crossFader ramps 0 to 1 over a fixed number of samples after Trigger.
type crossFader struct {
	counter uint32
	length  uint32
}

func (f *crossFader) setTime(sampleRate, seconds float64) {
	f.length = max(uint32(sampleRate*seconds), 1)
	f.counter = f.length
}

func (f *crossFader) reset()        { f.counter = f.length }
func (f *crossFader) trigger()      { f.counter = 0 }
func (f *crossFader) running() bool { return f.counter < f.length }

func (f *crossFader) process() float64 {
	if f.counter >= f.length {
		return 1
	}
	out := float64(f.counter) / float64(f.length)
	f.counter++
	return out
}

// LFO is a unipolar low frequency oscillator with output in [0, 1].
//
// In free mode the phase advances by the frequency set with SetFreq. In
// beat mode the phase is derived from the host frame counter and the
// period set with SetTempo; a period change cross-fades over 100 ms.
type LFO struct {
	Shape Shape

	sampleRate float64
	phase      float64
	tick       float64
	width      float64

	beat       bool
	syncPeriod uint32
	prevPeriod uint32
	fader      crossFader
	drift      *noise.Brown
}

// NewLFO returns a free-running sine LFO.
func NewLFO(sampleRate float64) *LFO {
	l := &LFO{width: defaultLFOPw, syncPeriod: 1, prevPeriod: 1}
	l.drift = noise.NewBrown(lfoNoiseSeed, defaultLFOPw)
	l.Setup(sampleRate)
	return l
}

// Setup sets the sample rate.
func (l *LFO) Setup(sampleRate float64) {
	l.sampleRate = sampleRate
	l.fader.setTime(sampleRate, syncFadeTime)
}

// SetFreq sets the free-running rate.
func (l *LFO) SetFreq(hz float64) {
	l.tick = hz / l.sampleRate
}

// SetWidth sets the shape parameter in [0, 1]: the duty cycle of Pulse,
// the peak position of Saw, the curvature of Sine and the drift of Noise.
func (l *LFO) SetWidth(w float64) {
	l.width = core.Clamp(w, 0, 1)
	l.drift.SetDrift(l.width)
}

// SetBeatSync switches between free and tempo-synced phase.
func (l *LFO) SetBeatSync(on bool) { l.beat = on }

// SetTempo sets the synced period to syncBeat bars (of beatsPerBar beats)
// divided by multiplier. A change while a fade is running is ignored.
func (l *LFO) SetTempo(multiplier, tempo, beatsPerBar, syncBeat float64) {
	if l.fader.running() || tempo <= 0 || multiplier <= 0 {
		return
	}
	l.prevPeriod = l.syncPeriod
	period := l.sampleRate * syncBeat * beatsPerBar * secondsPerMin / tempo / multiplier
	l.syncPeriod = max(uint32(min(period, math.MaxUint32)), 1)
	if l.prevPeriod != l.syncPeriod {
		l.fader.trigger()
	}
}

// Reset restarts phase and noise sequence.
func (l *LFO) Reset() {
	l.phase = 0
	l.drift.Seed(lfoNoiseSeed)
	l.fader.reset()
}

// Process advances one sample. hostFrame is the song position in frames
// and is only read in beat mode. offset shifts the phase in cycles.
func (l *LFO) Process(hostFrame uint64, offset float64) float64 {
	if l.beat {
		cur := float64(hostFrame%uint64(l.syncPeriod)) / float64(l.syncPeriod)
		prev := float64(hostFrame%uint64(l.prevPeriod)) / float64(l.prevPeriod)
		l.phase = core.Clamp(prev+l.fader.process()*(cur-prev), 0, 1)
	} else if l.Shape != Noise {
		l.phase += l.tick
		l.phase -= math.Floor(l.phase)
	}

	ph := l.phase + offset
	ph -= math.Floor(ph)

	switch l.Shape {
	case Saw:
		w := core.Clamp(l.width, minLFOWidth, maxLFOWidth)
		if ph < w {
			return ph / w
		}
		return (1 - ph) / (1 - w)
	case Pulse:
		if ph < l.width {
			return 1
		}
		return 0
	case Noise:
		return l.drift.Process()
	default:
		s := math.Sin(2 * math.Pi * ph)
		return 0.5 + 0.5*math.Copysign(math.Pow(math.Abs(s), 2*l.width), s)
	}
}
