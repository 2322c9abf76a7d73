package overtone

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-synth/dsp/effects/modulation"
	"github.com/cwbudde/algo-synth/dsp/param"
	"github.com/cwbudde/algo-synth/dsp/scale"
)

// Parameter indices.
const (
	ParamMasterOctave = iota
	ParamPitchMultiply
	ParamPitchModulo
	ParamSeed
	ParamRandomRetrigger
	ParamRandomGain
	ParamRandomFrequency
	ParamGain
	ParamGainBoost
	ParamRelease
	ParamVoices
	ParamSmoothness
	ParamChorusMix
	ParamChorusFrequency
	ParamChorusDepth
	ParamChorusPhase
	ParamChorusOffset
	ParamChorusFeedback
	ParamChorusKeyFollow

	ParamChorusRange0
	ParamChorusMinDelay0 = ParamChorusRange0 + modulation.ChorusVoices

	ParamAttack0   = ParamChorusMinDelay0 + modulation.ChorusVoices
	ParamDecay0    = ParamAttack0 + Partials
	ParamOvertone0 = ParamDecay0 + Partials
	ParamPhase0    = ParamOvertone0 + Partials

	paramCount = ParamPhase0 + Partials
)

var (
	octaveScale   = scale.Must(scale.NewLinear(-4, 4))
	multiplyScale = scale.Must(scale.NewLinear(0, 4))
	moduloScale   = scale.Must(scale.NewLinear(0, 60))
	seedScale     = scale.Must(scale.NewInt(0, 1<<24-1))
	randomScale   = scale.Must(scale.NewLog(0, 1, 0.5, 0.1))
	gainScale     = scale.Must(scale.NewLog(0, 4, 0.5, 1))
	boostScale    = scale.Must(scale.NewLinear(1, 16))
	timeScale     = scale.Must(scale.NewLog(0, 4, 0.5, 0.5))
	smoothScale   = scale.Must(scale.NewLog(0, 0.5, 0.1, 0.04))
	overtoneScale = scale.Must(scale.NewDecibel(-40, 0, true))
	phaseScale    = scale.Must(scale.NewLinear(0, 2*math.Pi))
	velocityScale = scale.Must(scale.NewDecibel(-30, 0, true))
	unitScale     = scale.Must(scale.NewLinear(0, 1))
	rateScale     = scale.Must(scale.NewLog(0, 10, 0.5, 1))
	rangeScale    = scale.Must(scale.NewLog(0, 0.015, 0.5, 0.002))
	minDelayScale = scale.Must(scale.NewLog(0, 0.03, 0.5, 0.005))
)

func defineParams(set *param.Set, voices int) {
	const auto = param.Automatable

	set.MustDefine(ParamMasterOctave, param.Info{Name: "masterOctave", Flags: auto}, octaveScale, 0.5)
	set.MustDefine(ParamPitchMultiply, param.Info{Name: "pitchMultiply", Flags: auto}, multiplyScale, 0.25)
	set.MustDefine(ParamPitchModulo, param.Info{Name: "pitchModulo", Flags: auto}, moduloScale, 0)
	set.MustDefine(ParamSeed, param.Info{Name: "seed", Flags: auto | param.Integer}, seedScale, 0)
	set.MustDefine(ParamRandomRetrigger, param.Info{Name: "randomRetrigger", Flags: auto | param.Boolean}, scale.NewBool(), 0)
	set.MustDefine(ParamRandomGain, param.Info{Name: "randomGainAmount", Flags: auto}, randomScale, 0)
	set.MustDefine(ParamRandomFrequency, param.Info{Name: "randomFrequencyAmount", Flags: auto}, randomScale, 0)
	set.MustDefine(ParamGain, param.Info{Name: "gain", Flags: auto | param.Logarithmic}, gainScale, 0.5)
	set.MustDefine(ParamGainBoost, param.Info{Name: "gainBoost", Flags: auto}, boostScale, 0)
	set.MustDefine(ParamRelease, param.Info{Name: "release", Unit: "s", Flags: auto | param.Logarithmic}, timeScale, 0.5)
	set.MustDefine(ParamVoices, param.Info{Name: "voices", Flags: auto | param.Integer},
		scale.Must(scale.NewInt(1, max(voices, 2))), 1)
	set.MustDefine(ParamSmoothness, param.Info{Name: "smoothness", Unit: "s", Flags: auto | param.Logarithmic}, smoothScale, 0.1)

	set.MustDefine(ParamChorusMix, param.Info{Name: "chorusMix", Flags: auto}, unitScale, 0)
	set.MustDefine(ParamChorusFrequency, param.Info{Name: "chorusFrequency", Unit: "Hz", Flags: auto | param.Logarithmic}, rateScale, 0.5)
	set.MustDefine(ParamChorusDepth, param.Info{Name: "chorusDepth", Flags: auto}, unitScale, 0)
	set.MustDefine(ParamChorusPhase, param.Info{Name: "chorusPhase", Unit: "rad", Flags: auto}, phaseScale, 0)
	set.MustDefine(ParamChorusOffset, param.Info{Name: "chorusOffset", Unit: "rad", Flags: auto}, phaseScale, 0)
	set.MustDefine(ParamChorusFeedback, param.Info{Name: "chorusFeedback", Flags: auto}, unitScale, 0)
	set.MustDefine(ParamChorusKeyFollow, param.Info{Name: "chorusKeyFollow", Flags: auto | param.Boolean}, scale.NewBool(), 1)
	for i := 0; i < modulation.ChorusVoices; i++ {
		n := strconv.Itoa(i)
		set.MustDefine(ParamChorusRange0+i, param.Info{Name: "chorusDelayTimeRange" + n, Unit: "s", Flags: auto | param.Logarithmic}, rangeScale, 0.5)
		set.MustDefine(ParamChorusMinDelay0+i, param.Info{Name: "chorusMinDelayTime" + n, Unit: "s", Flags: auto | param.Logarithmic}, minDelayScale, 0.5)
	}

	for i := 0; i < Partials; i++ {
		n := strconv.Itoa(i)
		set.MustDefine(ParamAttack0+i, param.Info{Name: "attack" + n, Unit: "s", Flags: auto}, timeScale, 0)
		set.MustDefine(ParamDecay0+i, param.Info{Name: "decay" + n, Unit: "s", Flags: auto}, timeScale, 0.5)
		set.MustDefine(ParamOvertone0+i, param.Info{Name: "overtone" + n, Flags: auto},
			overtoneScale, overtoneScale.Invmap(1/float64(i+1)))
		set.MustDefine(ParamPhase0+i, param.Info{Name: "phase" + n, Unit: "rad", Flags: auto}, phaseScale, 0)
	}
}
