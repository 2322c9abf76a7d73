// Package sevendelay is a stereo feedback delay with an oversampled line
// per channel.
//
// The delay time is either fixed or derived from the host tempo as a
// fraction of a 4/4 bar. An LFO shortens the time and sweeps the tone
// filter. The feedback path runs through a state variable lowpass and a
// DC blocker; each is bypassed at its extreme setting.
package sevendelay

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/delay"
	"github.com/cwbudde/algo-synth/dsp/filter/onepole"
	"github.com/cwbudde/algo-synth/dsp/filter/svf"
	"github.com/cwbudde/algo-synth/dsp/interp"
	"github.com/cwbudde/algo-synth/dsp/osc"
	"github.com/cwbudde/algo-synth/dsp/smooth"
	"github.com/cwbudde/algo-synth/engine"
)

const (
	maxTime       = 8.0
	maxToneCutoff = 20000.0
	minDCKill     = 5.0
	beatsPerBar   = 4
)

type channel struct {
	line  delay.Oversampled
	tone  svf.Filter
	dc    onepole.DCBlocker
	time  smooth.Linear
	out   float64
	wet   []float64
	input []float64
}

// Engine is the delay. It has two inputs and two outputs.
type Engine struct {
	engine.Base

	ch        [2]channel
	smoothCfg *smooth.Config
	lfo       *osc.LFO
	frame     uint64
	lfoValue  float64
	hold      bool
	mode      interp.Mode

	feedback   smooth.Linear
	lfoTime    smooth.Linear
	lfoTone    smooth.Linear
	toneCutoff smooth.Linear
	toneQ      smooth.Linear
	toneMix    smooth.Linear
	dcKill     smooth.Linear
	dcKillMix  smooth.Linear

	// Dry and wet gains ramp across each host block.
	dry smooth.Block
	wet smooth.Block

	linear   []*smooth.Linear
	dryCurve []float64
	wetCurve []float64
	phase    float64
}

var _ engine.Engine = (*Engine)(nil)

// New returns an engine set up at 48 kHz.
func New() (*Engine, error) {
	e := &Engine{
		Base:      engine.NewBase(paramCount),
		smoothCfg: smooth.NewConfig(48000, 0.04),
		lfo:       osc.NewLFO(48000),
	}
	defineParams(e.Params())

	for c := range e.ch {
		e.ch[c].time.Init(e.smoothCfg, 0)
	}
	e.linear = []*smooth.Linear{
		&e.feedback, &e.lfoTime, &e.lfoTone, &e.toneCutoff, &e.toneQ,
		&e.toneMix, &e.dcKill, &e.dcKillMix,
	}
	for _, s := range e.linear {
		s.Init(e.smoothCfg, 0)
	}
	e.dry.Init(e.smoothCfg, 0)
	e.wet.Init(e.smoothCfg, 0)

	if err := e.Setup(48000); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) Channels() (in, out int) { return 2, 2 }

func (e *Engine) Setup(sampleRate float64) error {
	if err := core.ValidateSampleRate("sevendelay", sampleRate); err != nil {
		return err
	}
	e.SetSampleRate(sampleRate)
	e.smoothCfg.SetSampleRate(sampleRate)
	e.lfo.Setup(sampleRate)

	size := core.DefaultProcessorConfig().BlockSize
	for c := range e.ch {
		if err := e.ch[c].line.Setup(sampleRate, maxTime); err != nil {
			return err
		}
		e.ch[c].wet = make([]float64, size)
		e.ch[c].input = make([]float64, size)
	}
	e.dryCurve = make([]float64, size)
	e.wetCurve = make([]float64, size)

	e.Reset()
	return nil
}

func (e *Engine) Reset() {
	for c := range e.ch {
		ch := &e.ch[c]
		ch.line.Reset()
		ch.tone.Reset()
		ch.dc.Reset()
		ch.out = 0
	}
	e.Queue().Clear()
	e.Startup()

	e.SetParameters(engine.DefaultTempo)
	for c := range e.ch {
		e.ch[c].time.Reset(e.ch[c].time.Target())
	}
	for _, s := range e.linear {
		s.Reset(s.Target())
	}
	e.dry.Reset(e.Params().Raw(ParamDry))
	e.wet.Reset(e.Params().Raw(ParamWet))
}

// Startup rewinds the LFO to its initial phase.
func (e *Engine) Startup() {
	e.lfo.Reset()
	e.frame = 0
	e.lfoValue = 0
}

// Time returns the delay time in seconds for the given tempo before the
// stereo offset is applied. Tempo sync falls back to the fixed time when
// tempo is not positive.
func (e *Engine) Time(tempo float64) float64 {
	p := e.Params()
	if p.Bool(ParamTempoSync) && tempo > 0 && !math.IsInf(tempo, 0) {
		bar := beatsPerBar * 60 / tempo
		t := bar * float64(p.Int(ParamSyncNumerator)) / float64(p.Int(ParamSyncDenominator))
		return min(t, maxTime)
	}
	return p.Raw(ParamTime)
}

// offsetPair shortens the side the offset points to. A positive offset
// shortens the right channel.
func offsetPair(time, offset float64) (left, right float64) {
	if offset >= 0 {
		return time, time * (1 - offset)
	}
	return time * (1 + offset), time
}

func (e *Engine) SetParameters(tempo float64) {
	p := e.Params()

	e.smoothCfg.SetTime(p.Raw(ParamSmoothness))

	left, right := offsetPair(e.Time(tempo), p.Raw(ParamOffset))
	e.ch[0].time.Push(left)
	e.ch[1].time.Push(right)

	mode := interp.Linear
	if p.Bool(ParamHermite) {
		mode = interp.Hermite
	}
	if mode != e.mode {
		e.mode = mode
		for c := range e.ch {
			e.ch[c].line.SetMode(mode)
		}
	}

	fb := p.Raw(ParamFeedback)
	if p.Bool(ParamNegativeFeedback) {
		fb = -fb
	}
	e.feedback.Push(fb)

	e.lfoTime.Push(p.Raw(ParamLFOTimeAmount))
	e.lfoTone.Push(p.Raw(ParamLFOToneAmount))
	e.lfo.SetWidth(p.Raw(ParamLFOShape))
	e.phase = p.Raw(ParamLFOInitialPhase)
	e.hold = p.Bool(ParamLFOHold)
	freq := p.Raw(ParamLFOFrequency)
	if p.Bool(ParamLFOTempoSync) && tempo > 0 {
		e.lfo.SetBeatSync(true)
		e.lfo.SetTempo(freq, tempo, beatsPerBar, 1)
	} else {
		e.lfo.SetBeatSync(false)
		e.lfo.SetFreq(freq)
	}

	e.toneCutoff.Push(p.Raw(ParamToneCutoff))
	e.toneQ.Push(p.Raw(ParamToneQ))
	if p.Value(ParamToneCutoff).Normalized() >= 1 {
		e.toneMix.Push(0)
	} else {
		e.toneMix.Push(1)
	}

	e.dcKill.Push(p.Raw(ParamDCKill))
	if p.Value(ParamDCKill).Normalized() <= 0 {
		e.dcKillMix.Push(0)
	} else {
		e.dcKillMix.Push(1)
	}

	e.dry.Push(p.Raw(ParamDry))
	e.wet.Push(p.Raw(ParamWet))
}

// The delay ignores notes.
func (e *Engine) NoteOn(int32, int16, float64, float64) {}
func (e *Engine) NoteOff(int32) {}

func (e *Engine) Process(frames int, in, out [][]float64) {
	e.smoothCfg.SetBufferSize(frames)
	for start := 0; start < frames; {
		n := min(frames-start, len(e.dryCurve))
		e.process(start, n, in, out)
		start += n
	}
	e.dry.Settle()
	e.wet.Settle()
	engine.Finish(out, frames)
	e.Queue().Clear()
}

func (e *Engine) process(start, n int, in, out [][]float64) {
	sampleRate := e.SampleRate()
	maxCutoff := 0.49 * sampleRate

	// out may alias in; the dry signal is copied before it is overwritten.
	inL := e.ch[0].input[:n]
	inR := e.ch[1].input[:n]
	copy(inL, in[0][start:start+n])
	copy(inR, in[1][start:start+n])

	for i := 0; i < n; i++ {
		if !e.hold {
			e.lfoValue = e.lfo.Process(e.frame, e.phase)
		}
		e.frame++

		timeMod := 1 - e.lfoTime.Process()*e.lfoValue
		toneAmount := e.lfoTone.Process()
		cutoff := e.toneCutoff.Process() * core.Pow2(8*toneAmount*(2*e.lfoValue-1))
		cutoff = core.Clamp(cutoff, 20, maxCutoff)
		q := e.toneQ.Process()
		toneMix := e.toneMix.Process()
		dcHz := e.dcKill.Process()
		dcMix := e.dcKillMix.Process()
		fb := e.feedback.Process()

		x := [2]float64{inL[i], inR[i]}
		for c := range e.ch {
			ch := &e.ch[c]
			seconds := max(ch.time.Process()*timeMod, 0)
			y := ch.line.Process(x[c]+fb*ch.out, sampleRate, seconds)

			ch.tone.Set(sampleRate, cutoff, q)
			y += toneMix * (ch.tone.Lowpass(y) - y)

			ch.dc.SetCutoff(sampleRate, dcHz)
			y += dcMix * (ch.dc.Process(y) - y)

			ch.out = core.Clamp(y, -core.SafetyLimit, core.SafetyLimit)
			ch.wet[i] = y
		}

		e.smoothCfg.SetBufferIndex(start + i)
		e.dryCurve[i] = e.dry.Value()
		e.wetCurve[i] = e.wet.Value()
	}

	dryCurve, wetCurve := e.dryCurve[:n], e.wetCurve[:n]
	engine.MixCurves(out[0][start:start+n], inL, e.ch[0].wet[:n], dryCurve, wetCurve)
	engine.MixCurves(out[1][start:start+n], inR, e.ch[1].wet[:n], dryCurve, wetCurve)
}
