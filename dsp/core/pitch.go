package core

import "math"

const (
	// ReferencePitch is the MIDI note number of ReferenceFrequency.
	ReferencePitch = 69

	// ReferenceFrequency is the tuning reference in Hz.
	ReferenceFrequency = 440.0
)

// NoteToFrequency maps a MIDI pitch plus a tuning offset in cents to Hz
// using twelve-tone equal temperament.
func NoteToFrequency(pitch int, tuningCents float64) float64 {
	cents := float64(pitch-ReferencePitch)*100 + tuningCents
	return ReferenceFrequency * Pow2(cents/1200)
}

// SemitoneToRatio converts a pitch offset in semitones to a frequency ratio.
func SemitoneToRatio(semitones float64) float64 {
	return Pow2(semitones / 12)
}

// FrequencyToNote is the inverse of NoteToFrequency. The result is a
// fractional MIDI pitch.
func FrequencyToNote(hz float64) float64 {
	if hz <= 0 {
		return math.Inf(-1)
	}

	return ReferencePitch + 12*math.Log2(hz/ReferenceFrequency)
}
