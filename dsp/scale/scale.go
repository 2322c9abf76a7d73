package scale

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Scale is a monotonic, invertible mapping between a normalized value and a
// raw engineering value.
type Scale interface {
	Map(normalized float64) float64
	Invmap(raw float64) float64
	Min() float64
	Max() float64
}

func clamp01(x float64) float64 {
	if x != x {
		return 0
	}
	return core.Clamp(x, 0, 1)
}

// Linear maps [0,1] linearly onto [min,max].
type Linear struct {
	min, max, span float64
}

// NewLinear returns a linear scale over [min,max].
func NewLinear(min, max float64) (*Linear, error) {
	if err := validateBounds(min, max); err != nil {
		return nil, err
	}
	return &Linear{min: min, max: max, span: max - min}, nil
}

func (s *Linear) Map(normalized float64) float64 {
	return clamp01(normalized)*s.span + s.min
}

func (s *Linear) Invmap(raw float64) float64 {
	return (core.Clamp(raw, s.min, s.max) - s.min) / s.span
}

func (s *Linear) Min() float64 { return s.min }
func (s *Linear) Max() float64 { return s.max }

// Log is a power curve over [min,max] shaped so that normalized inValue
// maps to raw inValueMapped. It is the usual scale for times and
// frequencies where the lower range needs finer resolution.
type Log struct {
	min, max, span float64
	expo, expoInv  float64
}

// NewLog solves the curve exponent from the (inValue, inValueMapped) pair.
func NewLog(min, max, inValue, inValueMapped float64) (*Log, error) {
	if err := validateBounds(min, max); err != nil {
		return nil, err
	}
	if !finite(inValue, inValueMapped) || inValue <= 0 || inValue >= 1 {
		return nil, invalid("log midpoint must be in (0,1): %f", inValue)
	}
	if inValueMapped <= min || inValueMapped >= max {
		return nil, invalid("log mapped midpoint must be in (%f, %f): %f", min, max, inValueMapped)
	}

	span := max - min
	expo := math.Log((inValueMapped-min)/span) / math.Log(inValue)

	return &Log{min: min, max: max, span: span, expo: expo, expoInv: 1 / expo}, nil
}

func (s *Log) Map(normalized float64) float64 {
	return math.Pow(clamp01(normalized), s.expo)*s.span + s.min
}

func (s *Log) Invmap(raw float64) float64 {
	return math.Pow((core.Clamp(raw, s.min, s.max)-s.min)/s.span, s.expoInv)
}

func (s *Log) Min() float64 { return s.min }
func (s *Log) Max() float64 { return s.max }

// Exponent returns the solved curve exponent.
func (s *Log) Exponent() float64 { return s.expo }

// Exp maps [0,1] exponentially onto [min,max]; both bounds must be positive.
type Exp struct {
	min, max, logRatio float64
}

// NewExp returns an exponential scale over [min,max].
func NewExp(min, max float64) (*Exp, error) {
	if err := validateBounds(min, max); err != nil {
		return nil, err
	}
	if min <= 0 {
		return nil, invalid("exp scale bounds must be > 0: [%f, %f]", min, max)
	}
	return &Exp{min: min, max: max, logRatio: math.Log(max / min)}, nil
}

func (s *Exp) Map(normalized float64) float64 {
	return s.min * math.Exp(clamp01(normalized)*s.logRatio)
}

func (s *Exp) Invmap(raw float64) float64 {
	return math.Log(core.Clamp(raw, s.min, s.max)/s.min) / s.logRatio
}

func (s *Exp) Min() float64 { return s.min }
func (s *Exp) Max() float64 { return s.max }

// Decibel is linear in dB and returns amplitude. With minToZero the bottom
// of the range is silence instead of the amplitude of minDB.
type Decibel struct {
	minDB, maxDB, spanDB float64
	minToZero            bool
}

// NewDecibel returns a decibel scale over [minDB,maxDB].
func NewDecibel(minDB, maxDB float64, minToZero bool) (*Decibel, error) {
	if err := validateBounds(minDB, maxDB); err != nil {
		return nil, err
	}
	return &Decibel{minDB: minDB, maxDB: maxDB, spanDB: maxDB - minDB, minToZero: minToZero}, nil
}

func (s *Decibel) Map(normalized float64) float64 {
	normalized = clamp01(normalized)
	if s.minToZero && normalized <= 0 {
		return 0
	}
	return core.DBToLinear(normalized*s.spanDB + s.minDB)
}

func (s *Decibel) Invmap(raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	db := core.Clamp(core.LinearToDB(raw), s.minDB, s.maxDB)
	return (db - s.minDB) / s.spanDB
}

func (s *Decibel) Min() float64 {
	if s.minToZero {
		return 0
	}
	return core.DBToLinear(s.minDB)
}

func (s *Decibel) Max() float64 { return core.DBToLinear(s.maxDB) }

// Int quantizes to integer steps in [min,max].
type Int struct {
	min, max int
	span     float64
}

// NewInt returns an integer scale over [min,max].
func NewInt(min, max int) (*Int, error) {
	if min >= max {
		return nil, invalid("min must be < max: [%d, %d]", min, max)
	}
	return &Int{min: min, max: max, span: float64(max - min)}, nil
}

// NewBool returns Int(0, 1).
func NewBool() *Int {
	return &Int{min: 0, max: 1, span: 1}
}

func (s *Int) Map(normalized float64) float64 {
	return math.Round(clamp01(normalized)*s.span) + float64(s.min)
}

func (s *Int) Invmap(raw float64) float64 {
	return (math.Round(core.Clamp(raw, float64(s.min), float64(s.max))) - float64(s.min)) / s.span
}

func (s *Int) Min() float64 { return float64(s.min) }
func (s *Int) Max() float64 { return float64(s.max) }

// SPoly is a bipolar power curve centered on the middle of [min,max]. It
// gives modulation amounts fine resolution around zero.
type SPoly struct {
	min, max, span float64
	power          float64
}

// NewSPoly returns a symmetric power scale. power must be > 0.
func NewSPoly(min, max, power float64) (*SPoly, error) {
	if err := validateBounds(min, max); err != nil {
		return nil, err
	}
	if !finite(power) || power <= 0 {
		return nil, invalid("spoly power must be > 0: %f", power)
	}
	return &SPoly{min: min, max: max, span: max - min, power: power}, nil
}

func (s *SPoly) Map(normalized float64) float64 {
	u := 2*clamp01(normalized) - 1
	m := math.Copysign(math.Pow(math.Abs(u), s.power), u)
	return s.min + s.span*(m+1)/2
}

func (s *SPoly) Invmap(raw float64) float64 {
	m := 2*(core.Clamp(raw, s.min, s.max)-s.min)/s.span - 1
	u := math.Copysign(math.Pow(math.Abs(m), 1/s.power), m)
	return (u + 1) / 2
}

func (s *SPoly) Min() float64 { return s.min }
func (s *SPoly) Max() float64 { return s.max }

// Must panics if err is non-nil. Intended for package-level scale tables
// whose arguments are constants.
func Must[S Scale](s S, err error) S {
	if err != nil {
		panic("scale: " + err.Error())
	}
	return s
}
