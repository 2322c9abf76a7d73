package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-synth/dsp/param"
	"github.com/cwbudde/algo-synth/engine"
)

// parseNotes reads a comma separated list of pitch:start:duration[:velocity]
// entries. Times are in seconds; velocity defaults to 1.
func parseNotes(s string) ([]engine.Note, error) {
	var notes []engine.Note
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fields := strings.Split(item, ":")
		if len(fields) < 3 || len(fields) > 4 {
			return nil, fmt.Errorf("note %q: want pitch:start:duration[:velocity]", item)
		}

		pitch, err := strconv.ParseInt(fields[0], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("note %q: pitch: %w", item, err)
		}
		n := engine.Note{Pitch: int16(pitch), Velocity: 1}
		if n.Start, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("note %q: start: %w", item, err)
		}
		if n.Duration, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("note %q: duration: %w", item, err)
		}
		if len(fields) == 4 {
			if n.Velocity, err = strconv.ParseFloat(fields[3], 64); err != nil {
				return nil, fmt.Errorf("note %q: velocity: %w", item, err)
			}
		}
		if n.Start < 0 {
			return nil, fmt.Errorf("note %q: negative start", item)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// assignment is one name=value parameter override.
type assignment struct {
	name  string
	value float64
}

type assignments []assignment

func (a *assignments) String() string {
	parts := make([]string, len(*a))
	for i, v := range *a {
		parts[i] = fmt.Sprintf("%s=%g", v.name, v.value)
	}
	return strings.Join(parts, ",")
}

func (a *assignments) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("%q: want name=value", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("%q: %w", s, err)
	}
	*a = append(*a, assignment{name: strings.TrimSpace(name), value: v})
	return nil
}

// apply stores raw values, or normalized ones when normalized is set.
func (a assignments) apply(set *param.Set, normalized bool) error {
	for _, v := range a {
		idx, ok := set.Find(v.name)
		if !ok {
			return fmt.Errorf("%w: %q", param.ErrUnknownParameter, v.name)
		}
		var err error
		if normalized {
			err = set.SetNormalized(idx, v.value)
		} else {
			err = set.SetRaw(idx, v.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
