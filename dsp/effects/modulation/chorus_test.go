package modulation

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/internal/testutil"
)

func newTestChorus(t *testing.T, sampleRate, minDelay, rng float64) *Chorus {
	t.Helper()
	c, err := NewChorus(sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < ChorusVoices; i++ {
		if err := c.SetVoice(i, ChorusVoice{MinDelay: minDelay, Range: rng}); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func run(c *Chorus, in []float64) (left, right []float64) {
	left = make([]float64, len(in))
	right = make([]float64, len(in))
	for i, x := range in {
		left[i], right[i] = c.Process(x)
	}
	return left, right
}

func TestNewChorusRejectsBadRate(t *testing.T) {
	if _, err := NewChorus(0); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}
}

func TestSetVoiceValidation(t *testing.T) {
	c := newTestChorus(t, 1000, 0, 0)
	tests := []struct {
		index int
		voice ChorusVoice
	}{
		{-1, ChorusVoice{MinDelay: 0.01}},
		{ChorusVoices, ChorusVoice{MinDelay: 0.01}},
		{0, ChorusVoice{MinDelay: -0.01}},
		{0, ChorusVoice{MinDelay: math.NaN()}},
		{0, ChorusVoice{MinDelay: MaxChorusDelay, Range: 0.01}},
	}
	for _, tc := range tests {
		if err := c.SetVoice(tc.index, tc.voice); err == nil {
			t.Fatalf("SetVoice(%d, %+v) accepted", tc.index, tc.voice)
		}
	}
}

func TestStaticDelayPlacesImpulse(t *testing.T) {
	c := newTestChorus(t, 1000, 0.01, 0.005)
	left, right := run(c, testutil.Impulse(50, 0))

	for name, ch := range map[string][]float64{"left": left, "right": right} {
		idx, peak := testutil.Peak(ch)
		if idx != 10 || math.Abs(peak-1) > 1e-12 {
			t.Fatalf("%s peak %v at %d, want 1 at 10", name, peak, idx)
		}
	}
}

func TestDelayScaleStretchesMinDelay(t *testing.T) {
	c := newTestChorus(t, 1000, 0.01, 0)
	c.SetDelayScale(2)
	left, _ := run(c, testutil.Impulse(50, 0))
	if idx, _ := testutil.Peak(left); idx != 20 {
		t.Fatalf("peak at %d, want 20", idx)
	}

	c.Reset()
	c.SetDelayScale(math.Inf(1))
	left, _ = run(c, testutil.Impulse(50, 0))
	if idx, _ := testutil.Peak(left); idx != 10 {
		t.Fatalf("invalid scale: peak at %d, want 10", idx)
	}
}

func TestFeedbackRepeats(t *testing.T) {
	c := newTestChorus(t, 1000, 0.01, 0)
	c.SetFeedback(0.5)
	left, _ := run(c, testutil.Impulse(50, 0))
	// The loop adds one sample of latency per repeat.
	if got := left[21]; math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("repeat %v, want 0.5", got)
	}
}

func TestDepthWidensStereo(t *testing.T) {
	in := testutil.DeterministicSine(220, 48000, 0.5, 48000)

	flat := newTestChorus(t, 48000, 0.005, 0.005)
	left, right := run(flat, in)
	testutil.RequireSliceNearlyEqual(t, left, right, 0)

	c := newTestChorus(t, 48000, 0.005, 0.005)
	c.SetDepth(1)
	c.SetRate(2)
	c.SetPhase(0, 2*math.Pi/ChorusVoices)
	left, right = run(c, in)
	testutil.RequireFinite(t, left)
	testutil.RequireBounded(t, left, 0.5+1e-9)
	testutil.RequireBounded(t, right, 0.5+1e-9)
	if d, _ := testutil.MaxAbsDiff(left, right); d < 1e-3 {
		t.Fatalf("channels differ by %v, want a stereo spread", d)
	}
}

func TestResetClearsLines(t *testing.T) {
	c := newTestChorus(t, 1000, 0.01, 0)
	run(c, testutil.Impulse(5, 0))
	c.Reset()
	left, right := run(c, make([]float64, 50))
	for i := range left {
		if left[i] != 0 || right[i] != 0 {
			t.Fatalf("frame %d = %v %v after Reset", i, left[i], right[i])
		}
	}
}

func BenchmarkChorus(b *testing.B) {
	c, err := NewChorus(48000)
	if err != nil {
		b.Fatal(err)
	}
	c.SetDepth(0.5)
	c.SetRate(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Process(0.25)
	}
}
