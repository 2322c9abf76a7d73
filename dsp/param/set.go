package param

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/scale"
)

var (
	// ErrUnknownParameter is returned for an index that was never defined.
	ErrUnknownParameter = errors.New("unknown parameter")

	errDuplicateParameter = errors.New("duplicate parameter")
	errNilScale           = errors.New("nil scale")
)

// Set is an indexed collection of values. Indices are stable integers
// chosen by the engine.
type Set struct {
	values []*Value
}

// NewSet returns a set with room for size parameters.
func NewSet(size int) *Set {
	if size < 0 {
		size = 0
	}
	return &Set{values: make([]*Value, size)}
}

// Define declares parameter index with its scale, default and host info.
func (s *Set) Define(index int, info Info, sc scale.Scale, defaultNormalized float64) error {
	if sc == nil {
		return fmt.Errorf("%w: %s", errNilScale, info.Name)
	}
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownParameter, index)
	}
	for index >= len(s.values) {
		s.values = append(s.values, nil)
	}
	if s.values[index] != nil {
		return fmt.Errorf("%w: %d (%s)", errDuplicateParameter, index, info.Name)
	}

	s.values[index] = NewValue(info, sc, defaultNormalized)
	return nil
}

// MustDefine is like Define but panics on error.
func (s *Set) MustDefine(index int, info Info, sc scale.Scale, defaultNormalized float64) {
	if err := s.Define(index, info, sc, defaultNormalized); err != nil {
		panic("param: " + err.Error())
	}
}

// Len returns the number of slots, defined or not.
func (s *Set) Len() int { return len(s.values) }

// Value returns the value at index or nil.
func (s *Set) Value(index int) *Value {
	if index < 0 || index >= len(s.values) {
		return nil
	}
	return s.values[index]
}

// Get returns the normalized value at index.
func (s *Set) Get(index int) (float64, error) {
	v := s.Value(index)
	if v == nil {
		return 0, fmt.Errorf("%w: %d", ErrUnknownParameter, index)
	}
	return v.Normalized(), nil
}

// SetNormalized stores a normalized value at index.
func (s *Set) SetNormalized(index int, x float64) error {
	v := s.Value(index)
	if v == nil {
		return fmt.Errorf("%w: %d", ErrUnknownParameter, index)
	}
	v.SetNormalized(x)
	return nil
}

// SetRaw stores a raw value at index.
func (s *Set) SetRaw(index int, raw float64) error {
	v := s.Value(index)
	if v == nil {
		return fmt.Errorf("%w: %d", ErrUnknownParameter, index)
	}
	v.SetRaw(raw)
	return nil
}

// Raw returns the raw value at index, or 0 for an unknown index. It is
// the accessor used by engines inside SetParameters.
func (s *Set) Raw(index int) float64 {
	if v := s.Value(index); v != nil {
		return v.Raw()
	}
	return 0
}

// Int returns the rounded raw value at index.
func (s *Set) Int(index int) int {
	if v := s.Value(index); v != nil {
		return v.Int()
	}
	return 0
}

// Bool returns the boolean raw value at index.
func (s *Set) Bool(index int) bool {
	if v := s.Value(index); v != nil {
		return v.Bool()
	}
	return false
}

// Infos lists host info in index order. Undefined slots are skipped.
func (s *Set) Infos() []Info {
	out := make([]Info, 0, len(s.values))
	for _, v := range s.values {
		if v != nil {
			out = append(out, v.info)
		}
	}
	return out
}

// Find returns the index of the parameter named name.
func (s *Set) Find(name string) (int, bool) {
	for i, v := range s.values {
		if v != nil && v.info.Name == name {
			return i, true
		}
	}
	return -1, false
}

// ResetAll restores every default.
func (s *Set) ResetAll() {
	for _, v := range s.values {
		if v != nil {
			v.Reset()
		}
	}
}
