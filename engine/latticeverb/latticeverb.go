// Package latticeverb is a stereo reverb made of one nested allpass
// lattice per channel.
//
// Every branch has a delay time, an outer feedback gain and an inner
// allpass gain, each scaled by a global multiplier. The right channel's
// times are stretched by a per-branch offset to decorrelate the sides.
// Gains are never limited; Stability reports whether the current outer
// gains are guaranteed stable.
package latticeverb

import (
	"github.com/cwbudde/algo-synth/dsp/allpass"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/smooth"
	"github.com/cwbudde/algo-synth/engine"
)

const (
	// Depth is the number of nested branches per channel.
	Depth = 8

	maxTime = 0.5
)

type channel struct {
	net   *allpass.Nested
	time  [Depth]smooth.Exp
	outer [Depth]smooth.Exp
	inner [Depth]smooth.Exp
	wet   []float64
}

// Engine is the reverb. It has two inputs and two outputs.
type Engine struct {
	engine.Base

	ch        [2]channel
	smoothCfg *smooth.Config

	cross  smooth.Exp
	spread smooth.Exp
	dry    smooth.Exp
	wet    smooth.Exp

	mid       []float64
	curve     []float64
	stability allpass.Stability
	outerRaw  [Depth]float64
}

var _ engine.Engine = (*Engine)(nil)

// New returns an engine set up at 48 kHz.
func New() (*Engine, error) {
	e := &Engine{
		Base:      engine.NewBase(paramCount),
		smoothCfg: smooth.NewConfig(48000, 0.2),
	}
	defineParams(e.Params())

	for c := range e.ch {
		net, err := allpass.NewNested(Depth)
		if err != nil {
			return nil, err
		}
		e.ch[c].net = net
		for i := 0; i < Depth; i++ {
			e.ch[c].time[i].Init(e.smoothCfg, 0)
			e.ch[c].outer[i].Init(e.smoothCfg, 0)
			e.ch[c].inner[i].Init(e.smoothCfg, 0)
		}
	}
	e.cross.Init(e.smoothCfg, 0)
	e.spread.Init(e.smoothCfg, 0)
	e.dry.Init(e.smoothCfg, 0)
	e.wet.Init(e.smoothCfg, 0)

	if err := e.Setup(48000); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) Channels() (in, out int) { return 2, 2 }

// Stability returns the criteria for the outer gains latched by the last
// SetParameters.
func (e *Engine) Stability() allpass.Stability { return e.stability }

func (e *Engine) Setup(sampleRate float64) error {
	if err := core.ValidateSampleRate("latticeverb", sampleRate); err != nil {
		return err
	}
	e.SetSampleRate(sampleRate)
	e.smoothCfg.SetSampleRate(sampleRate)

	// Offsets stretch the right side by up to 2x.
	for c := range e.ch {
		if err := e.ch[c].net.Setup(sampleRate, 2*maxTime); err != nil {
			return err
		}
		e.ch[c].wet = make([]float64, core.DefaultProcessorConfig().BlockSize)
	}
	e.mid = make([]float64, core.DefaultProcessorConfig().BlockSize)
	e.curve = make([]float64, len(e.mid))

	e.Reset()
	return nil
}

func (e *Engine) Reset() {
	for c := range e.ch {
		e.ch[c].net.ClearState()
	}
	e.Queue().Clear()

	e.SetParameters(engine.DefaultTempo)
	for c := range e.ch {
		ch := &e.ch[c]
		for i := 0; i < Depth; i++ {
			ch.time[i].Reset(ch.time[i].Target())
			ch.outer[i].Reset(ch.outer[i].Target())
			ch.inner[i].Reset(ch.inner[i].Target())
		}
	}
	e.cross.Reset(e.cross.Target())
	e.spread.Reset(e.spread.Target())
	e.dry.Reset(e.dry.Target())
	e.wet.Reset(e.wet.Target())
}

func (e *Engine) Startup() {}

// offsetPair splits a signed offset into left and right multipliers; the
// side the offset points to is stretched.
func offsetPair(offset, mul float64) (left, right float64) {
	if offset >= 0 {
		return mul, (1 + offset) * mul
	}
	return (1 - offset) * mul, mul
}

func (e *Engine) SetParameters(float64) {
	p := e.Params()

	e.smoothCfg.SetTime(p.Raw(ParamSmoothness))

	timeMul := p.Raw(ParamTimeMultiply)
	outerMul := p.Raw(ParamOuterFeedMultiply)
	innerMul := p.Raw(ParamInnerFeedMultiply)
	offsetMul := p.Raw(ParamTimeOffsetMultiply)

	for i := 0; i < Depth; i++ {
		left, right := offsetPair(offsetMul*p.Raw(ParamTimeOffset0+i), timeMul)
		t := p.Raw(ParamTime0 + i)
		e.ch[0].time[i].Push(t * left)
		e.ch[1].time[i].Push(t * right)

		e.outerRaw[i] = p.Raw(ParamOuterFeed0 + i)
		inner := innerMul * p.Raw(ParamInnerFeed0+i)
		for c := range e.ch {
			e.ch[c].outer[i].Push(outerMul * e.outerRaw[i])
			e.ch[c].inner[i].Push(inner)
		}
	}
	e.stability = allpass.Evaluate(e.outerRaw[:], outerMul)

	e.cross.Push(p.Raw(ParamStereoCross))
	e.spread.Push(p.Raw(ParamStereoSpread))
	e.dry.Push(p.Raw(ParamDry))
	e.wet.Push(p.Raw(ParamWet))
}

// The reverb ignores notes.
func (e *Engine) NoteOn(int32, int16, float64, float64) {}
func (e *Engine) NoteOff(int32) {}

func (e *Engine) Process(frames int, in, out [][]float64) {
	for start := 0; start < frames; {
		n := min(frames-start, len(e.mid))
		e.process(start, n, in, out)
		start += n
	}
	engine.Finish(out, frames)
	e.Queue().Clear()
}

func (e *Engine) process(start, n int, in, out [][]float64) {
	sampleRate := e.SampleRate()
	inL, inR := in[0][start:start+n], in[1][start:start+n]
	outL, outR := out[0][start:start+n], out[1][start:start+n]
	wetL, wetR := e.ch[0].wet[:n], e.ch[1].wet[:n]

	for i := 0; i < n; i++ {
		cross := e.cross.Process()
		xL := inL[i] + cross*(inR[i]-inL[i])
		xR := inR[i] + cross*(inL[i]-inR[i])

		for c := range e.ch {
			ch := &e.ch[c]
			for b := range ch.net.Branches {
				br := &ch.net.Branches[b]
				br.Seconds = ch.time[b].Process()
				br.OuterFeed = ch.outer[b].Process()
				br.InnerFeed = ch.inner[b].Process()
			}
		}
		wetL[i] = e.ch[0].net.Process(xL, sampleRate)
		wetR[i] = e.ch[1].net.Process(xR, sampleRate)
	}

	mid := e.mid[:n]
	engine.FoldMono(mid, wetL, wetR)
	for i := 0; i < n; i++ {
		width := 2 * e.spread.Process()
		side := wetL[i] - mid[i]
		wetL[i] = mid[i] + width*side
		wetR[i] = mid[i] - width*side
	}

	dryCurve, wetCurve := mid, e.curve[:n]
	for i := 0; i < n; i++ {
		dryCurve[i] = e.dry.Process()
		wetCurve[i] = e.wet.Process()
	}
	engine.MixCurves(outL, inL, wetL, dryCurve, wetCurve)
	engine.MixCurves(outR, inR, wetR, dryCurve, wetCurve)
}
