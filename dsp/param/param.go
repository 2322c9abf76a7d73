// Package param stores Scale-backed parameter values in an indexed set.
//
// Values are written by a host or UI goroutine and read by the audio
// goroutine once per block. Each value is a single atomic word, so reads
// never observe a torn write.
package param

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-synth/dsp/scale"
)

// Flags are display hints passed to the host.
type Flags uint32

const (
	Automatable Flags = 1 << iota
	Boolean
	Integer
	Logarithmic
)

// Info describes a parameter for the host.
type Info struct {
	Name  string
	Unit  string
	Flags Flags
}

// Value is one parameter: a Scale, a default and the current normalized
// value.
type Value struct {
	info        Info
	scale       scale.Scale
	defaultNorm float64
	bits        atomic.Uint64
}

// NewValue returns a Value set to defaultNormalized (clamped to [0,1]).
func NewValue(info Info, s scale.Scale, defaultNormalized float64) *Value {
	v := &Value{info: info, scale: s, defaultNorm: clampNormalized(defaultNormalized)}
	v.Reset()
	return v
}

func clampNormalized(x float64) float64 {
	if x != x || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Info returns the host display hints.
func (v *Value) Info() Info { return v.info }

// Scale returns the mapping used by the value.
func (v *Value) Scale() scale.Scale { return v.scale }

// DefaultNormalized returns the default in [0,1].
func (v *Value) DefaultNormalized() float64 { return v.defaultNorm }

// Reset restores the default.
func (v *Value) Reset() { v.SetNormalized(v.defaultNorm) }

// SetNormalized stores x clamped to [0,1].
func (v *Value) SetNormalized(x float64) {
	v.bits.Store(math.Float64bits(clampNormalized(x)))
}

// SetRaw stores raw, clamped by the scale to [Min, Max].
func (v *Value) SetRaw(raw float64) {
	v.SetNormalized(v.scale.Invmap(raw))
}

// Normalized returns the stored value in [0,1].
func (v *Value) Normalized() float64 {
	return math.Float64frombits(v.bits.Load())
}

// Raw returns the stored value in engineering units.
func (v *Value) Raw() float64 {
	return v.scale.Map(v.Normalized())
}

// Int returns Raw rounded to the nearest integer.
func (v *Value) Int() int {
	return int(math.Round(v.Raw()))
}

// Bool reports whether Raw is at least 0.5.
func (v *Value) Bool() bool {
	return v.Raw() >= 0.5
}
