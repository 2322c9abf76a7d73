package noise

import (
	"math"
	"testing"
)

func TestWhiteIsReproducible(t *testing.T) {
	a := NewWhite(42)
	b := NewWhite(42)
	for i := 0; i < 1000; i++ {
		if x, y := a.Uniform(), b.Uniform(); x != y {
			t.Fatalf("sample %d: %v != %v", i, x, y)
		}
	}

	first := NewWhite(7).Uniform()
	a.Seed(7)
	if got := a.Uniform(); got != first {
		t.Fatalf("after Seed got %v want %v", got, first)
	}
}

func TestWhiteStatistics(t *testing.T) {
	w := NewWhite(1)
	const n = 100000

	var sum, sq float64
	for i := 0; i < n; i++ {
		x := w.Uniform()
		if x < -1 || x >= 1 {
			t.Fatalf("uniform out of range: %v", x)
		}
		sum += x
	}
	if mean := sum / n; math.Abs(mean) > 0.02 {
		t.Fatalf("uniform mean = %v", mean)
	}

	sum = 0
	for i := 0; i < n; i++ {
		x := w.Gaussian()
		sum += x
		sq += x * x
	}
	mean := sum / n
	sigma := math.Sqrt(sq/n - mean*mean)
	if math.Abs(sigma-gaussianSigma) > 0.01 {
		t.Fatalf("gaussian sigma = %v, want %v", sigma, gaussianSigma)
	}
}

func TestBrownStaysInUnitRange(t *testing.T) {
	b := NewBrown(3, 1)
	for i := 0; i < 100000; i++ {
		if v := b.Process(); v < 0 || v > 1 {
			t.Fatalf("step %d: %v out of [0, 1]", i, v)
		}
	}

	b.SetDrift(0)
	v := b.Process()
	if got := b.Process(); got != v {
		t.Fatalf("zero drift moved: %v -> %v", v, got)
	}
}

func TestRateLimiterSlew(t *testing.T) {
	const sampleRate = 1000.0
	r := NewRateLimiter(sampleRate)
	r.SetRate(100, -50)

	// 100 units/s at 1 kHz is 0.1 per sample.
	for i := 1; i <= 10; i++ {
		want := 0.1 * float64(i)
		if got := r.Process(10); math.Abs(got-want) > 1e-12 {
			t.Fatalf("rise step %d: got %v want %v", i, got, want)
		}
	}

	if got := r.Process(0.95); math.Abs(got-0.95) > 1e-12 {
		t.Fatalf("small fall: got %v want 0.95", got)
	}
	if got := r.Process(0); math.Abs(got-0.9) > 1e-12 {
		t.Fatalf("limited fall: got %v want 0.9", got)
	}
}

func TestRateLimiterPassesSlowSignals(t *testing.T) {
	r := NewRateLimiter(48000)
	for i := 0; i < 480; i++ {
		x := math.Sin(2 * math.Pi * float64(i) / 480)
		if got := r.Process(x); got != x {
			t.Fatalf("sample %d: got %v want %v", i, got, x)
		}
	}
}

func BenchmarkWhiteUniform(b *testing.B) {
	w := NewWhite(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Uniform()
	}
}
