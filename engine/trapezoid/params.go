package trapezoid

import (
	"github.com/cwbudde/algo-synth/dsp/param"
	"github.com/cwbudde/algo-synth/dsp/scale"
)

// Parameter indices.
const (
	ParamOctave = iota
	ParamSemi
	ParamCent
	ParamPitchDrift
	ParamSlope
	ParamPulseWidth

	ParamNoiseMix
	ParamNoiseClick
	ParamClickDecay

	ParamGain
	ParamGainA
	ParamGainD
	ParamGainS
	ParamGainR

	ParamCutoff
	ParamResonance
	ParamHighpass
	ParamFilterEnvToCutoff
	ParamFilterA
	ParamFilterACurve
	ParamFilterD
	ParamFilterDCurve

	ParamModAttack
	ParamModCurve
	ParamModToSlope
	ParamModToPulseWidth

	ParamPitchSlide
	ParamSmoothness

	paramCount
)

var (
	octaveScale    = scale.Must(scale.NewInt(-4, 4))
	semiScale      = scale.Must(scale.NewLinear(-24, 24))
	centScale      = scale.Must(scale.NewLinear(-100, 100))
	unitScale      = scale.Must(scale.NewLinear(0, 1))
	slopeScale     = scale.Must(scale.NewLog(1, 32, 0.5, 8))
	gainScale      = scale.Must(scale.NewLog(0, 4, 0.5, 1))
	timeScale      = scale.Must(scale.NewLog(0, 4, 0.5, 0.5))
	clickScale     = scale.Must(scale.NewLog(0.0001, 0.1, 0.5, 0.01))
	cutoffScale    = scale.Must(scale.NewLog(20, 20000, 0.5, 1000))
	highpassScale  = scale.Must(scale.NewLog(0, 1000, 0.5, 100))
	envOctaveScale = scale.Must(scale.NewSPoly(-8, 8, 2))
	curveScale     = scale.Must(scale.NewLinear(0.01, 0.99))
	modCurveScale  = scale.Must(scale.NewLog(1, 200, 0.5, 20))
	modAmountScale = scale.Must(scale.NewSPoly(-1, 1, 2))
	slideScale     = scale.Must(scale.NewLog(0, 1, 0.5, 0.1))
	smoothScale    = scale.Must(scale.NewLog(0, 0.5, 0.1, 0.04))
	velocityScale  = scale.Must(scale.NewDecibel(-30, 0, true))
)

func defineParams(set *param.Set) {
	const auto = param.Automatable

	set.MustDefine(ParamOctave, param.Info{Name: "octave", Flags: auto | param.Integer}, octaveScale, 0.5)
	set.MustDefine(ParamSemi, param.Info{Name: "semi", Unit: "st", Flags: auto}, semiScale, 0.5)
	set.MustDefine(ParamCent, param.Info{Name: "cent", Unit: "ct", Flags: auto}, centScale, 0.5)
	set.MustDefine(ParamPitchDrift, param.Info{Name: "pitchDrift", Flags: auto}, unitScale, 0)
	set.MustDefine(ParamSlope, param.Info{Name: "slope", Flags: auto | param.Logarithmic}, slopeScale, 0.5)
	set.MustDefine(ParamPulseWidth, param.Info{Name: "pulseWidth", Flags: auto}, unitScale, 0.5)

	set.MustDefine(ParamNoiseMix, param.Info{Name: "noiseMix", Flags: auto}, unitScale, 0)
	set.MustDefine(ParamNoiseClick, param.Info{Name: "noiseClick", Flags: auto}, unitScale, 0)
	set.MustDefine(ParamClickDecay, param.Info{Name: "clickDecay", Unit: "s", Flags: auto | param.Logarithmic}, clickScale, 0.5)

	set.MustDefine(ParamGain, param.Info{Name: "gain", Flags: auto | param.Logarithmic}, gainScale, 0.5)
	set.MustDefine(ParamGainA, param.Info{Name: "gainA", Unit: "s", Flags: auto | param.Logarithmic}, timeScale, 0.1)
	set.MustDefine(ParamGainD, param.Info{Name: "gainD", Unit: "s", Flags: auto | param.Logarithmic}, timeScale, 0.5)
	set.MustDefine(ParamGainS, param.Info{Name: "gainS", Flags: auto}, unitScale, 0.5)
	set.MustDefine(ParamGainR, param.Info{Name: "gainR", Unit: "s", Flags: auto | param.Logarithmic}, timeScale, 0.3)

	set.MustDefine(ParamCutoff, param.Info{Name: "cutoff", Unit: "Hz", Flags: auto | param.Logarithmic}, cutoffScale, 0.5)
	set.MustDefine(ParamResonance, param.Info{Name: "resonance", Flags: auto}, unitScale, 0.3)
	set.MustDefine(ParamHighpass, param.Info{Name: "highpass", Unit: "Hz", Flags: auto | param.Logarithmic}, highpassScale, 0)
	set.MustDefine(ParamFilterEnvToCutoff, param.Info{Name: "filterEnvToCutoff", Unit: "oct", Flags: auto}, envOctaveScale, 0.5)
	set.MustDefine(ParamFilterA, param.Info{Name: "filterA", Unit: "s", Flags: auto | param.Logarithmic}, timeScale, 0.2)
	set.MustDefine(ParamFilterACurve, param.Info{Name: "filterACurve", Flags: auto}, curveScale, 0.5)
	set.MustDefine(ParamFilterD, param.Info{Name: "filterD", Unit: "s", Flags: auto | param.Logarithmic}, timeScale, 0.5)
	set.MustDefine(ParamFilterDCurve, param.Info{Name: "filterDCurve", Flags: auto}, curveScale, 0.5)

	set.MustDefine(ParamModAttack, param.Info{Name: "modAttack", Unit: "s", Flags: auto | param.Logarithmic}, timeScale, 0.2)
	set.MustDefine(ParamModCurve, param.Info{Name: "modCurve", Flags: auto | param.Logarithmic}, modCurveScale, 0.5)
	set.MustDefine(ParamModToSlope, param.Info{Name: "modToSlope", Flags: auto}, modAmountScale, 0.5)
	set.MustDefine(ParamModToPulseWidth, param.Info{Name: "modToPulseWidth", Flags: auto}, modAmountScale, 0.5)

	set.MustDefine(ParamPitchSlide, param.Info{Name: "pitchSlide", Unit: "s", Flags: auto | param.Logarithmic}, slideScale, 0.3)
	set.MustDefine(ParamSmoothness, param.Info{Name: "smoothness", Unit: "s", Flags: auto | param.Logarithmic}, smoothScale, 0.1)
}
