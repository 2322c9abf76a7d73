package sevendelay

import (
	"github.com/cwbudde/algo-synth/dsp/param"
	"github.com/cwbudde/algo-synth/dsp/scale"
)

// Parameter indices.
const (
	ParamTime = iota
	ParamFeedback
	ParamOffset
	ParamWet
	ParamDry
	ParamTempoSync
	ParamSyncNumerator
	ParamSyncDenominator
	ParamNegativeFeedback
	ParamHermite

	ParamLFOTimeAmount
	ParamLFOToneAmount
	ParamLFOFrequency
	ParamLFOShape
	ParamLFOInitialPhase
	ParamLFOHold
	ParamLFOTempoSync

	ParamToneCutoff
	ParamToneQ
	ParamDCKill

	ParamSmoothness

	paramCount
)

var (
	timeScale    = scale.Must(scale.NewLog(0.0001, maxTime, 0.5, 1))
	unitScale    = scale.Must(scale.NewLinear(0, 1))
	offsetScale  = scale.Must(scale.NewSPoly(-1, 1, 0.8))
	beatScale    = scale.Must(scale.NewInt(1, 16))
	lfoTimeScale = scale.Must(scale.NewLog(0, 1, 0.5, 0.07))
	lfoToneScale = scale.Must(scale.NewLog(0, 0.5, 0.5, 0.1))
	lfoFreqScale = scale.Must(scale.NewLog(0.01, 100, 0.5, 1))
	toneScale    = scale.Must(scale.NewLog(90, maxToneCutoff, 0.5, 1000))
	toneQScale   = scale.Must(scale.NewLog(1e-5, 1, 0.5, 0.1))
	dcKillScale  = scale.Must(scale.NewLog(minDCKill, 120, 0.5, 20))
	smoothScale  = scale.Must(scale.NewLog(0, 1, 0.3, 0.04))
)

func defineParams(set *param.Set) {
	const auto = param.Automatable

	set.MustDefine(ParamTime, param.Info{Name: "time", Unit: "s", Flags: auto | param.Logarithmic}, timeScale, 0.5)
	set.MustDefine(ParamFeedback, param.Info{Name: "feedback", Flags: auto}, unitScale, 0.625)
	set.MustDefine(ParamOffset, param.Info{Name: "offset", Flags: auto}, offsetScale, 0.5)
	set.MustDefine(ParamWet, param.Info{Name: "wet", Flags: auto}, unitScale, 0.75)
	set.MustDefine(ParamDry, param.Info{Name: "dry", Flags: auto}, unitScale, 1)
	set.MustDefine(ParamTempoSync, param.Info{Name: "tempoSync", Flags: auto | param.Boolean}, scale.NewBool(), 0)
	set.MustDefine(ParamSyncNumerator, param.Info{Name: "syncNumerator", Flags: auto | param.Integer}, beatScale, beatScale.Invmap(1))
	set.MustDefine(ParamSyncDenominator, param.Info{Name: "syncDenominator", Flags: auto | param.Integer}, beatScale, beatScale.Invmap(4))
	set.MustDefine(ParamNegativeFeedback, param.Info{Name: "negativeFeedback", Flags: auto | param.Boolean}, scale.NewBool(), 0)
	set.MustDefine(ParamHermite, param.Info{Name: "hermite", Flags: param.Boolean}, scale.NewBool(), 0)

	set.MustDefine(ParamLFOTimeAmount, param.Info{Name: "lfoTimeAmount", Flags: auto}, lfoTimeScale, 0)
	set.MustDefine(ParamLFOToneAmount, param.Info{Name: "lfoToneAmount", Flags: auto}, lfoToneScale, 0)
	set.MustDefine(ParamLFOFrequency, param.Info{Name: "lfoFrequency", Unit: "Hz", Flags: auto | param.Logarithmic}, lfoFreqScale, 0.5)
	set.MustDefine(ParamLFOShape, param.Info{Name: "lfoShape", Flags: auto}, unitScale, 0.5)
	set.MustDefine(ParamLFOInitialPhase, param.Info{Name: "lfoInitialPhase", Flags: auto}, unitScale, 0)
	set.MustDefine(ParamLFOHold, param.Info{Name: "lfoHold", Flags: auto | param.Boolean}, scale.NewBool(), 0)
	set.MustDefine(ParamLFOTempoSync, param.Info{Name: "lfoTempoSync", Flags: auto | param.Boolean}, scale.NewBool(), 0)

	set.MustDefine(ParamToneCutoff, param.Info{Name: "toneCutoff", Unit: "Hz", Flags: auto | param.Logarithmic}, toneScale, 1)
	set.MustDefine(ParamToneQ, param.Info{Name: "toneQ", Flags: auto | param.Logarithmic}, toneQScale, 0.9)
	set.MustDefine(ParamDCKill, param.Info{Name: "dcKill", Unit: "Hz", Flags: auto | param.Logarithmic}, dcKillScale, 0)

	set.MustDefine(ParamSmoothness, param.Info{Name: "smoothness", Unit: "s", Flags: auto | param.Logarithmic}, smoothScale, 0.3)
}
