package overtone

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/effects/modulation"
	"github.com/cwbudde/algo-synth/dsp/noise"
	"github.com/cwbudde/algo-synth/dsp/oscbank"
	"github.com/cwbudde/algo-synth/dsp/smooth"
	"github.com/cwbudde/algo-synth/dsp/voice"
	"github.com/cwbudde/algo-synth/engine"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

const (
	// Partials is the number of oscillators per voice.
	Partials = 16

	// DefaultVoices is the voice count used when WithVoices is not given.
	DefaultVoices = 8

	maxVoices = 128

	// Stolen voices fade out over this many seconds.
	transitionTime = 0.005

	// With key follow on, chorus delays are as set at this note frequency.
	keyFollowFreq = 200.0
)

type options struct {
	voices   int
	floor    cpu.SIMDLevel
	features *cpu.Features
}

// Option configures New.
type Option func(*options)

// WithVoices sets the number of voices.
func WithVoices(n int) Option {
	return func(o *options) {
		o.voices = min(max(n, 1), maxVoices)
	}
}

// WithSIMDFloor makes New fail unless a kernel at least as wide as level
// is available.
func WithSIMDFloor(level cpu.SIMDLevel) Option {
	return func(o *options) { o.floor = level }
}

// WithFeatures selects the kernel for f instead of the running CPU.
func WithFeatures(f cpu.Features) Option {
	return func(o *options) { o.features = &f }
}

type note struct {
	bank       oscbank.Kernel
	gain       float64
	attackLeft int
}

// Engine is the additive synth. It has no inputs and two outputs; they
// differ only by the chorus.
type Engine struct {
	engine.Base

	kernel oscbank.Factory
	notes  []note
	alloc  *voice.Allocator
	stack  *voice.Stack
	rng    *noise.White

	smoothCfg  *smooth.Config
	masterGain smooth.Linear
	chorusMix  smooth.Linear
	chorus     *modulation.Chorus
	keyFreq    float64

	transition []float64
	tail       []float64
	trIndex    int
	trLeft     int

	mix       []float64
	wet       [2][]float64
	dryCurve  []float64
	wetCurve  []float64
	gainCurve []float64

	// Latched once per block.
	seed          uint64
	octaveRatio   float64
	pitchMultiply float64
	pitchModulo   float64
	randomGain    float64
	randomFreq    float64
	retrigger     bool
	release       float64
	partials      [Partials]oscbank.Partial
}

var _ engine.Engine = (*Engine)(nil)

// New builds an engine and selects its oscillator kernel. It fails with a
// *core.ConfigurationError when the SIMD floor cannot be met.
func New(opts ...Option) (*Engine, error) {
	o := options{voices: DefaultVoices}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		f   oscbank.Factory
		err error
	)
	if o.features != nil {
		f, err = oscbank.Select(*o.features, o.floor)
	} else {
		f, err = oscbank.Detect(o.floor)
	}
	if err != nil {
		return nil, err
	}

	chorus, err := modulation.NewChorus(48000)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		Base:      engine.NewBase(paramCount),
		kernel:    f,
		notes:     make([]note, o.voices),
		stack:     voice.NewStack(voice.DefaultStackSize),
		rng:       noise.NewWhite(0),
		smoothCfg: smooth.NewConfig(48000, 0.04),
		chorus:    chorus,
	}
	for i := range e.notes {
		e.notes[i].bank = f.New(Partials)
	}
	e.alloc = voice.NewAllocator(o.voices, e.attacking)
	e.masterGain.Init(e.smoothCfg, 0)
	e.chorusMix.Init(e.smoothCfg, 0)
	defineParams(e.Params(), o.voices)

	if err := e.Setup(48000); err != nil {
		return nil, err
	}
	return e, nil
}

// Kernel returns the name of the selected oscillator kernel.
func (e *Engine) Kernel() string { return e.kernel.Name() }

// Voices returns the voice count.
func (e *Engine) Voices() int { return len(e.notes) }

// Sounding returns the number of voices not idle.
func (e *Engine) Sounding() int { return e.alloc.Sounding() }

// Notes appends the ids of the held notes, oldest first, to dst.
func (e *Engine) Notes(dst []int32) []int32 { return e.stack.IDs(dst) }

func (e *Engine) Channels() (in, out int) { return 0, 2 }

func (e *Engine) attacking(v int) bool { return e.notes[v].attackLeft > 0 }

func (e *Engine) Setup(sampleRate float64) error {
	if err := core.ValidateSampleRate("overtone", sampleRate); err != nil {
		return err
	}
	e.SetSampleRate(sampleRate)
	e.smoothCfg.SetSampleRate(sampleRate)
	if err := e.chorus.SetSampleRate(sampleRate); err != nil {
		return err
	}

	e.transition = make([]float64, 1+int(sampleRate*transitionTime))
	e.tail = make([]float64, len(e.transition))

	size := core.DefaultProcessorConfig().BlockSize
	e.mix = make([]float64, size)
	for c := range e.wet {
		e.wet[c] = make([]float64, size)
	}
	e.dryCurve = make([]float64, size)
	e.wetCurve = make([]float64, size)
	e.gainCurve = make([]float64, size)

	e.Reset()
	return nil
}

func (e *Engine) Reset() {
	e.alloc.Reset()
	e.stack.Clear()
	for i := range e.notes {
		e.notes[i].attackLeft = 0
	}
	core.Zero(e.transition)
	e.trIndex, e.trLeft = 0, 0
	e.chorus.Reset()
	e.keyFreq = keyFollowFreq
	e.Queue().Clear()

	e.SetParameters(engine.DefaultTempo)
	e.masterGain.Reset(e.masterGain.Target())
	e.chorusMix.Reset(e.chorusMix.Target())
	e.Startup()
}

// Startup reseeds the random partial offsets with the latched seed.
func (e *Engine) Startup() {
	e.rng.Seed(e.seed)
}

func (e *Engine) SetParameters(float64) {
	p := e.Params()

	e.smoothCfg.SetTime(p.Raw(ParamSmoothness))
	e.masterGain.Push(p.Raw(ParamGain) * p.Raw(ParamGainBoost))

	e.seed = uint64(p.Int(ParamSeed))

	e.octaveRatio = math.Exp2(math.Floor(p.Raw(ParamMasterOctave)))
	e.pitchMultiply = p.Raw(ParamPitchMultiply)
	e.pitchModulo = p.Raw(ParamPitchModulo)
	e.randomGain = 3 * p.Raw(ParamRandomGain)
	e.randomFreq = p.Raw(ParamRandomFrequency)
	e.retrigger = p.Bool(ParamRandomRetrigger)
	e.release = p.Raw(ParamRelease)
	e.alloc.SetLimit(p.Int(ParamVoices))

	for i := range e.partials {
		e.partials[i] = oscbank.Partial{
			Phase:  p.Raw(ParamPhase0 + i),
			Attack: p.Raw(ParamAttack0 + i),
			Decay:  p.Raw(ParamDecay0 + i),
			Gain:   p.Raw(ParamOvertone0 + i),
		}
	}

	e.chorusMix.Push(p.Raw(ParamChorusMix))
	e.chorus.SetRate(p.Raw(ParamChorusFrequency))
	e.chorus.SetDepth(p.Raw(ParamChorusDepth))
	e.chorus.SetPhase(p.Raw(ParamChorusPhase), p.Raw(ParamChorusOffset))
	e.chorus.SetFeedback(p.Raw(ParamChorusFeedback))
	for i := 0; i < modulation.ChorusVoices; i++ {
		// The delay scales end inside MaxChorusDelay, so this cannot fail.
		_ = e.chorus.SetVoice(i, modulation.ChorusVoice{
			MinDelay: p.Raw(ParamChorusMinDelay0 + i),
			Range:    p.Raw(ParamChorusRange0 + i),
		})
	}
	if p.Bool(ParamChorusKeyFollow) {
		e.chorus.SetDelayScale(keyFollowFreq / e.keyFreq)
	} else {
		e.chorus.SetDelayScale(1)
	}
}

func (e *Engine) NoteOn(id int32, pitch int16, tuning, velocity float64) {
	v, stolen := e.alloc.NoteOn(id, math.Inf(1))
	n := &e.notes[v]
	if stolen {
		e.fadeOut(n)
	}

	if e.retrigger {
		e.rng.Seed(e.seed)
	}

	e.keyFreq = core.NoteToFrequency(int(pitch), tuning)
	freq := e.keyFreq * e.octaveRatio
	sampleRate := e.SampleRate()
	attack := 0.0
	for i, p := range e.partials {
		k := float64(i + 1)
		r := e.randomFreq * e.random01()
		ratio := e.pitchMultiply * (r + k + r*k)
		if e.pitchModulo != 0 {
			ratio -= e.pitchModulo * math.Floor(ratio/e.pitchModulo)
		}
		p.Frequency = freq * ratio
		p.Gain *= 1 + e.randomGain*e.random01()
		n.bank.SetPartial(i, p)
		attack = max(attack, p.Attack)
	}
	n.bank.Start(sampleRate)
	n.gain = velocityScale.Map(velocity)
	n.attackLeft = int(attack * sampleRate)

	e.stack.Push(voice.Note{ID: id, Pitch: pitch, Tuning: tuning, Velocity: velocity})
}

func (e *Engine) NoteOff(id int32) {
	e.stack.Remove(id)
	if v, ok := e.alloc.NoteOff(id); ok {
		e.notes[v].bank.Release(e.SampleRate(), e.release)
	}
}

func (e *Engine) random01() float64 { return 0.5 * (e.rng.Uniform() + 1) }

// fadeOut renders the remaining sound of a stolen voice into the
// transition buffer under a linear fade.
func (e *Engine) fadeOut(n *note) {
	size := len(e.transition)
	core.Zero(e.tail)
	n.bank.Add(e.tail, n.gain)

	for i, x := range e.tail {
		idx := (e.trIndex + i) % size
		e.transition[idx] += x * (1 - float64(i)/float64(size))
	}
	e.trLeft = size
}

func (e *Engine) Process(frames int, _, out [][]float64) {
	q := e.Queue()
	defer q.Clear()

	for start := 0; start < frames; {
		n := min(frames-start, len(e.mix))
		e.render(q, start, n)
		e.output(out, start, n)
		start += n
	}
	engine.Finish(out, frames)
}

// render produces n mono frames into e.mix, delivering queued events whose
// frame falls in [offset, offset+n).
func (e *Engine) render(q *voice.Queue, offset, n int) {
	mix := e.mix[:n]
	core.Zero(mix)

	for pos := 0; pos < n; {
		q.Dispatch(offset+pos, e)
		end := n
		if f, ok := q.Next(); ok && f-offset < end {
			end = max(f-offset, pos+1)
		}
		seg := mix[pos:end]
		e.renderVoices(seg)
		e.mixTransition(seg)
		pos = end
	}
}

// mixTransition adds the pending tail of stolen voices to seg. The ring is
// read one slot per frame, so a tail written at a steal starts sounding at
// that frame.
func (e *Engine) mixTransition(seg []float64) {
	size := len(e.transition)
	for i := 0; i < len(seg) && e.trLeft > 0; i++ {
		seg[i] += e.transition[e.trIndex]
		e.transition[e.trIndex] = 0
		e.trIndex = (e.trIndex + 1) % size
		e.trLeft--
	}
}

// output runs the chorus over e.mix and writes n frames of both channels
// under the master gain.
func (e *Engine) output(out [][]float64, start, n int) {
	mix := e.mix[:n]
	wetL, wetR := e.wet[0][:n], e.wet[1][:n]
	dryCurve, wetCurve, gainCurve := e.dryCurve[:n], e.wetCurve[:n], e.gainCurve[:n]
	for i, x := range mix {
		wetL[i], wetR[i] = e.chorus.Process(x)
		m := e.chorusMix.Process()
		dryCurve[i] = 1 - m
		wetCurve[i] = m
		gainCurve[i] = e.masterGain.Process()
	}

	for c := 0; c < min(len(out), len(e.wet)); c++ {
		dst := out[c][start : start+n]
		engine.MixCurves(dst, mix, e.wet[c][:n], dryCurve, wetCurve)
		engine.ApplyGainCurve(dst, gainCurve)
	}
}

func (e *Engine) renderVoices(seg []float64) {
	for v := range e.notes {
		if e.alloc.State(v) == voice.Idle {
			continue
		}
		n := &e.notes[v]
		n.bank.Add(seg, n.gain)
		n.attackLeft = max(n.attackLeft-len(seg), 0)

		if n.bank.IsTerminated() {
			e.alloc.Terminate(v)
			continue
		}
		e.alloc.SetGain(v, n.gain*n.bank.DecayGain())
	}
}
