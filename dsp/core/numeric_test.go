package core

import (
	"errors"
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSafetyClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 0.25, want: 0.25},
		{in: 100, want: SafetyLimit},
		{in: -100, want: -SafetyLimit},
		{in: math.Inf(1), want: SafetyLimit},
		{in: math.Inf(-1), want: -SafetyLimit},
		{in: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		if got := SafetyClamp(tt.in); got != tt.want {
			t.Fatalf("SafetyClamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampBlock(t *testing.T) {
	buf := []float64{1, math.NaN(), 1e9}
	ClampBlock(buf)

	if buf[0] != 1 || buf[1] != 0 || buf[2] != SafetyLimit {
		t.Fatalf("ClampBlock = %v", buf)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestFlushDenormals(t *testing.T) {
	if FlushDenormals(1e-40) != 0 {
		t.Fatal("expected tiny value to flush to zero")
	}
	if FlushDenormals(1e-3) != 1e-3 {
		t.Fatal("expected normal value to pass through")
	}
}

func TestDBConversions(t *testing.T) {
	db := LinearToDB(DBToLinear(-6))
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestNoteToFrequency(t *testing.T) {
	tests := []struct {
		pitch  int
		tuning float64
		want   float64
	}{
		{pitch: 69, tuning: 0, want: 440},
		{pitch: 81, tuning: 0, want: 880},
		{pitch: 57, tuning: 0, want: 220},
		{pitch: 69, tuning: 1200, want: 880},
		{pitch: 60, tuning: 0, want: 261.6255653005986},
	}

	for _, tt := range tests {
		got := NoteToFrequency(tt.pitch, tt.tuning)
		if !NearlyEqual(got, tt.want, 1e-9) {
			t.Fatalf("NoteToFrequency(%d, %v) = %v, want %v", tt.pitch, tt.tuning, got, tt.want)
		}

		back := FrequencyToNote(got)
		wantNote := float64(tt.pitch) + tt.tuning/100
		if !NearlyEqual(back, wantNote, 1e-9) {
			t.Fatalf("FrequencyToNote(%v) = %v, want %v", got, back, wantNote)
		}
	}
}

func TestConfigurationError(t *testing.T) {
	err := ValidateSampleRate("delay", 0)
	if err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Component != "delay" {
		t.Fatalf("errors.As failed: %v", err)
	}

	if ValidateSampleRate("delay", math.NaN()) == nil {
		t.Fatal("expected error for NaN sample rate")
	}
	if err := ValidateSampleRate("delay", 44100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
