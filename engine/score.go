package engine

import (
	"cmp"
	"slices"

	"github.com/cwbudde/algo-synth/dsp/voice"
)

// Note is one entry of a Score. Times are in seconds. A Duration of zero
// or less holds the note until the end of the render.
type Note struct {
	Start    float64
	Duration float64
	Pitch    int16
	Tuning   float64
	Velocity float64
}

// Score is a list of notes with a host tempo.
type Score struct {
	Tempo float64
	Notes []Note
}

type scheduled struct {
	frame int64
	ev    voice.Event
}

// sequencer turns a Score into per-block queue pushes.
type sequencer struct {
	events []scheduled
	next   int
}

func newSequencer(score Score, sampleRate float64) *sequencer {
	s := &sequencer{events: make([]scheduled, 0, 2*len(score.Notes))}
	for i, n := range score.Notes {
		id := int32(i + 1)
		on := int64(max(n.Start, 0) * sampleRate)
		s.events = append(s.events, scheduled{
			frame: on,
			ev: voice.Event{
				Kind: voice.NoteOnEvent, ID: id, Pitch: n.Pitch,
				Tuning: n.Tuning, Velocity: n.Velocity,
			},
		})
		if n.Duration > 0 {
			off := max(int64((max(n.Start, 0)+n.Duration)*sampleRate), on+1)
			s.events = append(s.events, scheduled{
				frame: off,
				ev:    voice.Event{Kind: voice.NoteOffEvent, ID: id},
			})
		}
	}

	// Note-offs sort before note-ons on the same frame so a repeated
	// pitch retriggers instead of being cut.
	slices.SortStableFunc(s.events, func(a, b scheduled) int {
		if c := cmp.Compare(a.frame, b.frame); c != 0 {
			return c
		}
		return cmp.Compare(b.ev.Kind, a.ev.Kind)
	})
	return s
}

// fill pushes the events in [start, start+frames) to q with block-relative
// frame offsets.
func (s *sequencer) fill(q *voice.Queue, start int64, frames int) {
	end := start + int64(frames)
	for s.next < len(s.events) && s.events[s.next].frame < end {
		e := s.events[s.next]
		e.ev.Frame = int(max(e.frame-start, 0))
		q.Push(e.ev)
		s.next++
	}
}
