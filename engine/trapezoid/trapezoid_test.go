package trapezoid

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/engine"
	"github.com/cwbudde/algo-synth/internal/testutil"
)

func render(t testing.TB, e *Engine, score engine.Score, seconds float64) []float64 {
	t.Helper()
	out, err := engine.Render(e, score, seconds, nil, core.WithSampleRate(48000), core.WithBlockSize(128))
	if err != nil {
		t.Fatal(err)
	}
	return out[0]
}

func run(e *Engine, frames int) {
	buf := [][]float64{make([]float64, 128)}
	for frames > 0 {
		n := min(frames, 128)
		e.Process(n, nil, buf)
		frames -= n
	}
}

func TestSetupRejectsBadRate(t *testing.T) {
	if err := New().Setup(0); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}
}

func TestSilentWithoutNotes(t *testing.T) {
	out := render(t, New(), engine.Score{}, 0.05)
	if _, p := testutil.Peak(out); p != 0 {
		t.Fatalf("peak %v without notes", p)
	}
}

func TestFundamental(t *testing.T) {
	e := New()
	if err := e.Params().SetNormalized(ParamCutoff, 1); err != nil {
		t.Fatal(err)
	}
	tuning := 1200 * math.Log2(468.75/440)
	out := render(t, e, engine.Score{Notes: []engine.Note{{Pitch: 69, Tuning: tuning, Velocity: 1}}}, 0.1)

	testutil.RequireFinite(t, out)
	mag, err := testutil.MagnitudeSpectrum(out[:4096], 4096)
	if err != nil {
		t.Fatal(err)
	}
	if got := testutil.PeakBin(mag); got != 40 {
		t.Fatalf("peak bin %d, want 40", got)
	}
}

func TestLastNotePriority(t *testing.T) {
	e := New()
	e.NoteOn(1, 60, 0, 1)
	run(e, 4800)
	e.NoteOn(2, 72, 0, 1)

	if st := e.gainEnv.Stage(); st == envelope.StageAttack {
		t.Fatal("legato note retriggered the gain envelope")
	}
	if e.pitch.Target() != 72 {
		t.Fatalf("pitch target %v, want 72", e.pitch.Target())
	}

	e.NoteOff(2)
	if e.pitch.Target() != 60 {
		t.Fatalf("pitch target %v after release, want 60", e.pitch.Target())
	}
	if got := e.Notes(nil); !slices.Equal(got, []int32{1}) {
		t.Fatalf("notes %v, want [1]", got)
	}

	e.NoteOff(99)
	if !e.IsSounding() {
		t.Fatal("unknown note-off released the voice")
	}
	e.NoteOff(1)
	if e.gainEnv.Stage() != envelope.StageRelease {
		t.Fatalf("stage %v, want release", e.gainEnv.Stage())
	}
}

func TestReleaseEndsNote(t *testing.T) {
	e := New()
	out := render(t, e, engine.Score{Notes: []engine.Note{{Pitch: 48, Duration: 0.1, Velocity: 1}}}, 0.6)
	if e.IsSounding() {
		t.Fatal("voice still sounding after release")
	}
	if _, p := testutil.Peak(out[:4800]); p == 0 {
		t.Fatal("note produced no output")
	}
	if _, p := testutil.Peak(out[len(out)-2400:]); p != 0 {
		t.Fatalf("tail peak %v", p)
	}
}

func TestExtremeSettingsStayBounded(t *testing.T) {
	e := New()
	for idx, norm := range map[int]float64{
		ParamResonance:         1,
		ParamNoiseMix:          1,
		ParamNoiseClick:        1,
		ParamFilterEnvToCutoff: 1,
		ParamModToSlope:        0,
		ParamModToPulseWidth:   1,
		ParamPitchDrift:        1,
		ParamGain:              1,
	} {
		if err := e.Params().SetNormalized(idx, norm); err != nil {
			t.Fatal(err)
		}
	}
	score := engine.Score{Notes: []engine.Note{
		{Start: 0, Duration: 0.2, Pitch: 24, Velocity: 1},
		{Start: 0.1, Duration: 0.3, Pitch: 108, Velocity: 1},
	}}
	out := render(t, e, score, 0.5)
	testutil.RequireFinite(t, out)
	testutil.RequireBounded(t, out, core.SafetyLimit)
}

func BenchmarkProcess(b *testing.B) {
	e := New()
	e.NoteOn(1, 60, 0, 1)
	out := [][]float64{make([]float64, 256)}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process(256, nil, out)
	}
}
