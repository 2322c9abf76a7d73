package scale

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
)

func allScales(t *testing.T) map[string]Scale {
	t.Helper()

	mk := func(s Scale, err error) Scale {
		t.Helper()
		if err != nil {
			t.Fatalf("constructor failed: %v", err)
		}
		return s
	}

	return map[string]Scale{
		"linear":        mk(NewLinear(-24, 24)),
		"log-time":      mk(NewLog(0.0001, 8, 0.5, 1.0)),
		"log-q":         mk(NewLog(1e-5, 1, 0.5, 0.1)),
		"exp":           mk(NewExp(20, 20000)),
		"decibel":       mk(NewDecibel(-60, 12, false)),
		"decibel-zero":  mk(NewDecibel(-60, 12, true)),
		"spoly":         mk(NewSPoly(-16, 16, 3)),
		"spoly-concave": mk(NewSPoly(0, 1, 0.5)),
	}
}

func TestRoundTrip(t *testing.T) {
	for name, s := range allScales(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i <= 1000; i++ {
				x := float64(i) / 1000
				got := s.Invmap(s.Map(x))
				if math.Abs(got-x) > 1e-6*math.Max(1, math.Abs(x)) {
					t.Fatalf("Invmap(Map(%v)) = %v", x, got)
				}
			}
		})
	}
}

func TestInvmapClampsOutOfRange(t *testing.T) {
	for name, s := range allScales(t) {
		t.Run(name, func(t *testing.T) {
			span := s.Max() - s.Min()
			if got := s.Invmap(s.Min() - span - 1); got != 0 {
				t.Fatalf("Invmap(below) = %v, want 0", got)
			}
			if got := s.Invmap(s.Max() + span + 1); got != 1 {
				t.Fatalf("Invmap(above) = %v, want 1", got)
			}
		})
	}
}

func TestMapIsMonotonic(t *testing.T) {
	for name, s := range allScales(t) {
		t.Run(name, func(t *testing.T) {
			prev := s.Map(0)
			for i := 1; i <= 512; i++ {
				v := s.Map(float64(i) / 512)
				if v < prev {
					t.Fatalf("Map not monotonic at %d: %v < %v", i, v, prev)
				}
				prev = v
			}
			if !core.NearlyEqual(s.Map(0), s.Min(), 1e-12) {
				t.Fatalf("Map(0) = %v, want Min() %v", s.Map(0), s.Min())
			}
			if !core.NearlyEqual(s.Map(1), s.Max(), 1e-12) {
				t.Fatalf("Map(1) = %v, want Max() %v", s.Map(1), s.Max())
			}
		})
	}
}

func TestMapClampsNormalized(t *testing.T) {
	s, _ := NewLinear(2, 4)
	if got := s.Map(-3); got != 2 {
		t.Fatalf("Map(-3) = %v, want 2", got)
	}
	if got := s.Map(7); got != 4 {
		t.Fatalf("Map(7) = %v, want 4", got)
	}
	if got := s.Map(math.NaN()); got != 2 {
		t.Fatalf("Map(NaN) = %v, want 2", got)
	}
}

func TestLogMidpoint(t *testing.T) {
	s, err := NewLog(0.0001, 8, 0.5, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Map(0.5); !core.NearlyEqual(got, 1.0, 1e-12) {
		t.Fatalf("Map(0.5) = %v, want 1.0", got)
	}
}

func TestDecibel(t *testing.T) {
	s, _ := NewDecibel(-60, 0, true)
	if got := s.Map(0); got != 0 {
		t.Fatalf("Map(0) = %v, want 0", got)
	}
	if got := s.Map(1); !core.NearlyEqual(got, 1, 1e-12) {
		t.Fatalf("Map(1) = %v, want 1", got)
	}
	if got := s.Map(0.5); !core.NearlyEqual(got, core.DBToLinear(-30), 1e-12) {
		t.Fatalf("Map(0.5) = %v, want -30 dB", got)
	}
	if got := s.Invmap(0); got != 0 {
		t.Fatalf("Invmap(0) = %v, want 0", got)
	}
}

func TestIntQuantizes(t *testing.T) {
	s, err := NewInt(-2, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: -2},
		{in: 0.1, want: -2},
		{in: 0.2, want: -1},
		{in: 0.5, want: 0},
		{in: 0.9, want: 2},
		{in: 1, want: 2},
	}
	for _, tt := range tests {
		if got := s.Map(tt.in); got != tt.want {
			t.Fatalf("Map(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for step := -2; step <= 2; step++ {
		v := float64(step)
		if got := s.Map(s.Invmap(v)); got != v {
			t.Fatalf("Map(Invmap(%v)) = %v", v, got)
		}
	}

	if got := s.Invmap(0.4); got != 0.5 {
		t.Fatalf("Invmap(0.4) = %v, want 0.5", got)
	}
}

func TestBool(t *testing.T) {
	s := NewBool()
	if s.Map(0.49) != 0 || s.Map(0.51) != 1 {
		t.Fatal("bool scale threshold mismatch")
	}
}

func TestInvalidDomain(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"linear-inverted", func() error { _, err := NewLinear(1, 0); return err }},
		{"linear-nan", func() error { _, err := NewLinear(math.NaN(), 1); return err }},
		{"exp-zero", func() error { _, err := NewExp(0, 10); return err }},
		{"exp-negative", func() error { _, err := NewExp(-1, 10); return err }},
		{"log-midpoint", func() error { _, err := NewLog(0, 1, 1.5, 0.5); return err }},
		{"log-mapped", func() error { _, err := NewLog(0, 1, 0.5, 2); return err }},
		{"decibel", func() error { _, err := NewDecibel(0, -60, false); return err }},
		{"int", func() error { _, err := NewInt(3, 3); return err }},
		{"spoly-power", func() error { _, err := NewSPoly(-1, 1, 0); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
			var cfgErr *core.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %T", err)
			}
		})
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Must(NewExp(0, 1))
}
