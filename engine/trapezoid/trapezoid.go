// Package trapezoid is a monophonic synthesizer built on a PTR trapezoid
// oscillator and a three-pole resonant lowpass.
//
// Notes follow last-note priority. A note played while another is held
// glides to the new pitch without retriggering the envelopes; releasing
// it glides back to the most recent held note.
package trapezoid

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/filter/lp3"
	"github.com/cwbudde/algo-synth/dsp/noise"
	"github.com/cwbudde/algo-synth/dsp/osc"
	"github.com/cwbudde/algo-synth/dsp/smooth"
	"github.com/cwbudde/algo-synth/dsp/voice"
	"github.com/cwbudde/algo-synth/engine"
)

const (
	minCutoff = 20.0

	// Pitch drift wanders up to this many semitones either way.
	driftRange = 0.5
)

// Engine is the mono synth. It has no inputs and one output.
type Engine struct {
	engine.Base

	stack *voice.Stack

	osc    *osc.Trapezoid
	filter *lp3.Filter
	white  *noise.White
	drift  *noise.Brown

	gainEnv   envelope.ExpADSR
	filterEnv envelope.ParabolicAD
	modEnv    envelope.ExpPoly
	click     envelope.ExpDecay

	smoothCfg *smooth.Config
	slideCfg  *smooth.Config
	pitch     smooth.Exp
	gain      smooth.Linear
	cutoff    smooth.Exp
	slope     smooth.Exp
	pw        smooth.Exp

	velocity float64

	// Latched once per block.
	transpose   float64
	driftAmount float64
	noiseMix    float64
	noiseClick  float64
	clickDecay  float64
	resonance   float64
	highpass    float64
	envOctaves  float64
	modToSlope  float64
	modToPW     float64
	adsr        [4]float64
	filterAD    [4]float64
	modAttack   float64
	modCurve    float64
}

var _ engine.Engine = (*Engine)(nil)

// New returns an engine set up at 48 kHz.
func New() *Engine {
	e := &Engine{
		Base:      engine.NewBase(paramCount),
		stack:     voice.NewStack(voice.DefaultStackSize),
		osc:       osc.NewTrapezoid(48000, 0),
		filter:    lp3.New(48000, 1000, 0, 0),
		white:     noise.NewWhite(0),
		drift:     noise.NewBrown(0, 1),
		smoothCfg: smooth.NewConfig(48000, 0.04),
		slideCfg:  smooth.NewConfig(48000, 0.01),
	}
	defineParams(e.Params())

	e.pitch.Init(e.slideCfg, 60)
	e.gain.Init(e.smoothCfg, 0)
	e.cutoff.Init(e.smoothCfg, 1000)
	e.slope.Init(e.smoothCfg, 8)
	e.pw.Init(e.smoothCfg, 0.5)

	// 48 kHz is always valid.
	_ = e.Setup(48000)
	return e
}

func (e *Engine) Channels() (in, out int) { return 0, 1 }

// Notes appends the ids of the held notes, oldest first, to dst.
func (e *Engine) Notes(dst []int32) []int32 { return e.stack.IDs(dst) }

// IsSounding reports whether the gain envelope is running.
func (e *Engine) IsSounding() bool { return !e.gainEnv.IsTerminated() }

func (e *Engine) Setup(sampleRate float64) error {
	if err := core.ValidateSampleRate("trapezoid", sampleRate); err != nil {
		return err
	}
	e.SetSampleRate(sampleRate)
	e.smoothCfg.SetSampleRate(sampleRate)
	e.slideCfg.SetSampleRate(sampleRate)
	e.osc.SetSampleRate(sampleRate)
	e.gainEnv.Setup(sampleRate)
	e.filterEnv.Setup(sampleRate)

	e.Reset()
	return nil
}

func (e *Engine) Reset() {
	e.stack.Clear()
	e.Queue().Clear()
	e.osc.Reset()
	e.filter.Reset()
	e.gainEnv.Terminate()
	e.filterEnv.Reset(0, 0.5, 0, 0.5)
	e.filterEnv.Terminate()
	e.modEnv.Reset(e.SampleRate(), 0, 1)
	e.modEnv.Terminate()
	e.click.Reset(e.SampleRate(), 0)
	e.velocity = 0

	e.SetParameters(engine.DefaultTempo)
	e.gain.Reset(e.gain.Target())
	e.cutoff.Reset(e.cutoff.Target())
	e.slope.Reset(e.slope.Target())
	e.pw.Reset(e.pw.Target())
	e.Startup()
}

func (e *Engine) Startup() {
	e.white.Seed(0)
	e.drift.Seed(0)
	e.osc.Reset()
}

func (e *Engine) SetParameters(float64) {
	p := e.Params()

	e.smoothCfg.SetTime(p.Raw(ParamSmoothness))
	e.slideCfg.SetTime(p.Raw(ParamPitchSlide))

	e.transpose = 12*p.Raw(ParamOctave) + p.Raw(ParamSemi) + p.Raw(ParamCent)/100
	e.driftAmount = p.Raw(ParamPitchDrift)
	e.noiseMix = p.Raw(ParamNoiseMix)
	e.noiseClick = p.Raw(ParamNoiseClick)
	e.clickDecay = p.Raw(ParamClickDecay)

	e.gain.Push(p.Raw(ParamGain))
	e.cutoff.Push(p.Raw(ParamCutoff))
	e.slope.Push(p.Raw(ParamSlope))
	e.pw.Push(p.Raw(ParamPulseWidth))
	e.resonance = p.Raw(ParamResonance)
	e.highpass = p.Raw(ParamHighpass)
	e.envOctaves = p.Raw(ParamFilterEnvToCutoff)

	e.adsr = [4]float64{p.Raw(ParamGainA), p.Raw(ParamGainD), p.Raw(ParamGainS), p.Raw(ParamGainR)}
	e.gainEnv.Set(e.adsr[0], e.adsr[1], e.adsr[2], e.adsr[3])
	e.filterAD = [4]float64{
		p.Raw(ParamFilterA), p.Raw(ParamFilterACurve),
		p.Raw(ParamFilterD), p.Raw(ParamFilterDCurve),
	}

	e.modAttack = p.Raw(ParamModAttack)
	e.modCurve = p.Raw(ParamModCurve)
	e.modToSlope = p.Raw(ParamModToSlope)
	e.modToPW = p.Raw(ParamModToPulseWidth)
}

func (e *Engine) NoteOn(id int32, pitch int16, tuning, velocity float64) {
	legato := e.stack.Len() > 0 && !e.gainEnv.IsTerminated()
	e.stack.Push(voice.Note{ID: id, Pitch: pitch, Tuning: tuning, Velocity: velocity})

	target := float64(pitch) + tuning/100
	if legato {
		e.pitch.Push(target)
		return
	}

	e.pitch.Reset(target)
	e.velocity = velocityScale.Map(velocity)
	e.gainEnv.Reset(e.adsr[0], e.adsr[1], e.adsr[2], e.adsr[3])
	e.filterEnv.Reset(e.filterAD[0], e.filterAD[1], e.filterAD[2], e.filterAD[3])
	e.modEnv.Reset(e.SampleRate(), e.modAttack, e.modCurve)
	e.click.Reset(e.SampleRate(), e.clickDecay)
}

func (e *Engine) NoteOff(id int32) {
	if !e.stack.Remove(id) {
		return
	}
	if last, ok := e.stack.Last(); ok {
		e.pitch.Push(float64(last.Pitch) + last.Tuning/100)
		return
	}
	e.gainEnv.Release()
}

func (e *Engine) Process(frames int, _, out [][]float64) {
	q := e.Queue()
	dst := out[0][:frames]

	sampleRate := e.SampleRate()
	maxCutoff := 0.49 * sampleRate

	for i := range dst {
		q.Dispatch(i, e)

		gain := e.gain.Process()
		cutoff := e.cutoff.Process()
		slope := e.slope.Process()
		pw := e.pw.Process()
		pitch := e.pitch.Process()

		if e.gainEnv.IsTerminated() {
			dst[i] = 0
			continue
		}

		semis := pitch + e.transpose + driftRange*e.driftAmount*(2*e.drift.Process()-1)
		e.osc.SetFreq(core.NoteToFrequency(core.ReferencePitch, 100*(semis-core.ReferencePitch)))

		mod := e.modEnv.Process()
		e.osc.SetSlope(slope * core.Pow2(4*e.modToSlope*mod))
		e.osc.SetPulseWidth(core.Clamp(pw+e.modToPW*mod, 0, 1))

		sig := e.osc.Process()
		sig += e.white.Uniform() * (e.noiseMix + e.noiseClick*e.click.Process())

		fc := cutoff * core.Pow2(e.envOctaves*e.filterEnv.Process())
		e.filter.Set(sampleRate, core.Clamp(fc, minCutoff, maxCutoff), e.resonance, e.highpass, true, true)
		sig = e.filter.Process(sig)

		dst[i] = sig * gain * e.velocity * e.gainEnv.Process()
	}

	for _, ch := range out[1:] {
		copy(ch[:frames], dst)
	}
	engine.Finish(out, frames)
	q.Clear()
}

