package envelope

import "math"

// Stage is the current segment of an ExpADSR.
type Stage uint8

const (
	StageIdle Stage = iota
	StageAttack
	StageDecay
	StageSustain
	StageRelease
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageSustain:
		return "sustain"
	case StageRelease:
		return "release"
	default:
		return "unknown"
	}
}

// ExpADSR is an exponential attack-decay-sustain-release envelope with
// output in [0, 1]. Release starts from the current level, so a note-off
// during attack does not jump.
type ExpADSR struct {
	sampleRate float64
	stage      Stage

	alphaA, alphaD, alphaR float64
	sustain                float64

	seg   float64
	start float64
	level float64
}

// Setup sets the sample rate used by later calls to Reset and Release.
func (e *ExpADSR) Setup(sampleRate float64) { e.sampleRate = sampleRate }

// Reset retriggers from the current level.
func (e *ExpADSR) Reset(attack, decay, sustain, release float64) {
	e.Set(attack, decay, sustain, release)
	e.stage = StageAttack
	e.start = e.level
	e.seg = 1
}

// Set changes segment times without retriggering. The running segment
// picks up the new rate on the next sample.
func (e *ExpADSR) Set(attack, decay, sustain, release float64) {
	e.alphaA = SegmentAlpha(e.sampleRate, attack)
	e.alphaD = SegmentAlpha(e.sampleRate, decay)
	e.alphaR = SegmentAlpha(e.sampleRate, release)
	e.sustain = math.Min(math.Max(sustain, 0), 1)
}

// Release enters the release segment.
func (e *ExpADSR) Release() {
	if e.stage == StageIdle || e.stage == StageRelease {
		return
	}
	e.stage = StageRelease
	e.start = e.level
	e.seg = 1
}

// Terminate returns to idle immediately.
func (e *ExpADSR) Terminate() {
	e.stage = StageIdle
	e.level = 0
}

func (e *ExpADSR) Stage() Stage       { return e.stage }
func (e *ExpADSR) Level() float64     { return e.level }
func (e *ExpADSR) IsTerminated() bool { return e.stage == StageIdle }

// Process advances one sample.
func (e *ExpADSR) Process() float64 {
	switch e.stage {
	case StageAttack:
		e.seg *= e.alphaA
		e.level = 1 - (1-e.start)*e.seg
		if e.seg <= Threshold {
			e.level = 1
			e.stage = StageDecay
			e.seg = 1
		}
	case StageDecay:
		e.seg *= e.alphaD
		e.level = e.sustain + (1-e.sustain)*e.seg
		if e.seg <= Threshold {
			e.level = e.sustain
			e.stage = StageSustain
			if e.sustain <= Threshold {
				e.Terminate()
			}
		}
	case StageRelease:
		e.seg *= e.alphaR
		e.level = e.start * e.seg
		if e.seg <= Threshold {
			e.Terminate()
		}
	case StageSustain:
		e.level = e.sustain
	default:
		e.level = 0
	}
	return e.level
}
