package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 100)
	b := DeterministicNoise(42, 1.0, 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestImpulseAndEnergy(t *testing.T) {
	x := Impulse(10, 3)
	if Energy(x) != 1 {
		t.Fatalf("energy = %v, want 1", Energy(x))
	}
	if idx, peak := Peak(x); idx != 3 || peak != 1 {
		t.Fatalf("peak = (%d, %v), want (3, 1)", idx, peak)
	}
	if len(Impulse(4, 9)) != 4 || Energy(Impulse(4, 9)) != 0 {
		t.Fatal("out-of-range impulse should be silent")
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{1, -1, 1, -1}); got != 1 {
		t.Fatalf("RMS = %v, want 1", got)
	}
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) should be 0")
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatal(err)
	}
	if d != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", d)
	}
	if _, err := MaxAbsDiff([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestMagnitudeSpectrumFindsSine(t *testing.T) {
	const n = 1024
	x := DeterministicSine(64*48000.0/n, 48000, 1, n)
	mag, err := MagnitudeSpectrum(x, n)
	if err != nil {
		t.Fatal(err)
	}
	if bin := PeakBin(mag); bin != 64 {
		t.Fatalf("peak bin = %d, want 64", bin)
	}
	if _, err := MagnitudeSpectrum(x, n/2); err == nil {
		t.Fatal("expected error for short fft")
	}
}

func TestWAVRoundTrip(t *testing.T) {
	path := t.TempDir() + "/roundtrip.wav"
	data := []float32{0, 0.5, -0.5, 0.25, -0.25, 0}
	if err := WriteWAV(path, data, 44100, 2); err != nil {
		t.Fatal(err)
	}

	got, sr, ch, err := ReadWAV(path)
	if err != nil {
		t.Fatal(err)
	}
	if sr != 44100 || ch != 2 {
		t.Fatalf("format = %d Hz %d ch", sr, ch)
	}
	if len(got) != len(data) {
		t.Fatalf("len = %d, want %d", len(got), len(data))
	}
	for i := range data {
		if math.Abs(got[i]-float64(data[i])) > 1e-3 {
			t.Fatalf("sample %d: got %v want %v", i, got[i], data[i])
		}
	}
}
