package latticeverb

import (
	"strconv"

	"github.com/cwbudde/algo-synth/dsp/param"
	"github.com/cwbudde/algo-synth/dsp/scale"
)

// Parameter indices. Each per-branch block holds Depth entries.
const (
	ParamTime0 = iota * Depth
	ParamOuterFeed0
	ParamInnerFeed0
	ParamTimeOffset0
)

const (
	ParamTimeMultiply = ParamTimeOffset0 + Depth + iota
	ParamOuterFeedMultiply
	ParamInnerFeedMultiply
	ParamTimeOffsetMultiply
	ParamStereoCross
	ParamStereoSpread
	ParamDry
	ParamWet
	ParamSmoothness

	paramCount
)

var (
	timeScale   = scale.Must(scale.NewLog(0, maxTime, 0.5, 0.05))
	feedScale   = scale.Must(scale.NewLinear(-1, 1))
	unitScale   = scale.Must(scale.NewLinear(0, 1))
	mixScale    = scale.Must(scale.NewDecibel(-60, 0, true))
	smoothScale = scale.Must(scale.NewLog(0, 1, 0.5, 0.2))
)

func defineParams(set *param.Set) {
	const auto = param.Automatable

	for i := 0; i < Depth; i++ {
		n := strconv.Itoa(i)
		set.MustDefine(ParamTime0+i, param.Info{Name: "time" + n, Unit: "s", Flags: auto | param.Logarithmic},
			timeScale, 0.3+0.05*float64(i))
		set.MustDefine(ParamOuterFeed0+i, param.Info{Name: "outerFeed" + n, Flags: auto}, feedScale, 0.55)
		set.MustDefine(ParamInnerFeed0+i, param.Info{Name: "innerFeed" + n, Flags: auto}, feedScale, 0.7)
		set.MustDefine(ParamTimeOffset0+i, param.Info{Name: "timeOffset" + n, Flags: auto}, feedScale, 0.5)
	}

	set.MustDefine(ParamTimeMultiply, param.Info{Name: "timeMultiply", Flags: auto}, unitScale, 1)
	set.MustDefine(ParamOuterFeedMultiply, param.Info{Name: "outerFeedMultiply", Flags: auto}, feedScale, 1)
	set.MustDefine(ParamInnerFeedMultiply, param.Info{Name: "innerFeedMultiply", Flags: auto}, feedScale, 1)
	set.MustDefine(ParamTimeOffsetMultiply, param.Info{Name: "timeOffsetMultiply", Flags: auto}, unitScale, 0)
	set.MustDefine(ParamStereoCross, param.Info{Name: "stereoCross", Flags: auto}, unitScale, 0)
	set.MustDefine(ParamStereoSpread, param.Info{Name: "stereoSpread", Flags: auto}, unitScale, 0.5)
	set.MustDefine(ParamDry, param.Info{Name: "dry", Flags: auto}, mixScale, 1)
	set.MustDefine(ParamWet, param.Info{Name: "wet", Flags: auto}, mixScale, mixScale.Invmap(0.5))
	set.MustDefine(ParamSmoothness, param.Info{Name: "smoothness", Unit: "s", Flags: auto | param.Logarithmic}, smoothScale, 0.5)
}
