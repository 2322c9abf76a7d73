// Package catalog registers the bundled engines.
package catalog

import (
	"github.com/cwbudde/algo-synth/engine"
	"github.com/cwbudde/algo-synth/engine/latticeverb"
	"github.com/cwbudde/algo-synth/engine/overtone"
	"github.com/cwbudde/algo-synth/engine/sevendelay"
	"github.com/cwbudde/algo-synth/engine/trapezoid"
)

// Engine names.
const (
	Overtone    = "overtone"
	Trapezoid   = "trapezoid"
	LatticeVerb = "latticeverb"
	SevenDelay  = "sevendelay"
)

// New returns a registry holding every bundled engine. opts are passed to
// each overtone instance.
func New(opts ...overtone.Option) *engine.Registry {
	r := engine.NewRegistry()
	r.MustRegister(Overtone, func() (engine.Engine, error) {
		return overtone.New(opts...)
	})
	r.MustRegister(Trapezoid, func() (engine.Engine, error) {
		return trapezoid.New(), nil
	})
	r.MustRegister(LatticeVerb, func() (engine.Engine, error) {
		return latticeverb.New()
	})
	r.MustRegister(SevenDelay, func() (engine.Engine, error) {
		return sevendelay.New()
	})
	return r
}
