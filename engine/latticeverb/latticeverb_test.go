package latticeverb

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/engine"
	"github.com/cwbudde/algo-synth/internal/testutil"
)

func newTestEngine(t testing.TB) *Engine {
	t.Helper()
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSetupRejectsBadRate(t *testing.T) {
	if err := newTestEngine(t).Setup(-1); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}
}

func TestDefaultGainsAreStable(t *testing.T) {
	st := newTestEngine(t).Stability()
	if st.N != Depth {
		t.Fatalf("N = %d, want %d", st.N, Depth)
	}
	if !st.StableS || !st.Guaranteed() {
		t.Fatalf("default gains not guaranteed stable: %+v", st)
	}
}

func TestLargeGainsReportedNotClamped(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < Depth; i++ {
		if err := e.Params().SetRaw(ParamOuterFeed0+i, 0.9); err != nil {
			t.Fatal(err)
		}
	}
	e.Reset()

	st := e.Stability()
	if st.StableS || st.StableT || st.StableA || st.Guaranteed() {
		t.Fatalf("gains of 0.9 reported stable: %+v", st)
	}

	buf := [][]float64{make([]float64, 16), make([]float64, 16)}
	e.Process(16, buf, buf)
	if got := e.ch[0].net.Branches[0].OuterFeed; got != 0.9 {
		t.Fatalf("outer feed %v, want 0.9", got)
	}
}

func TestDryOnlyPassesInput(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Params().SetNormalized(ParamWet, 0); err != nil {
		t.Fatal(err)
	}
	in := [][]float64{
		testutil.DeterministicSine(440, 48000, 0.5, 4800),
		testutil.DeterministicSine(660, 48000, 0.5, 4800),
	}
	out, err := engine.Render(e, engine.Score{}, 0.1, in)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, out[0], in[0], 1e-12)
	testutil.RequireSliceNearlyEqual(t, out[1], in[1], 1e-12)
}

func TestImpulseResponseEnergy(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Params().SetNormalized(ParamDry, 0); err != nil {
		t.Fatal(err)
	}
	if err := e.Params().SetNormalized(ParamWet, 1); err != nil {
		t.Fatal(err)
	}
	in := [][]float64{testutil.Impulse(10, 0), testutil.Impulse(10, 0)}
	out, err := engine.Render(e, engine.Score{}, 2, in)
	if err != nil {
		t.Fatal(err)
	}
	for c := range out {
		testutil.RequireFinite(t, out[c])
		if en := testutil.Energy(out[c]); en < 0.1 || en > 1.5 {
			t.Fatalf("channel %d energy %v", c, en)
		}
	}
}

func TestInPlaceMatchesSeparateBuffers(t *testing.T) {
	src := testutil.DeterministicNoise(3, 0.5, 512)

	a := newTestEngine(t)
	in := [][]float64{append([]float64(nil), src...), append([]float64(nil), src...)}
	out := [][]float64{make([]float64, 512), make([]float64, 512)}
	a.Process(512, in, out)

	b := newTestEngine(t)
	buf := [][]float64{append([]float64(nil), src...), append([]float64(nil), src...)}
	b.Process(512, buf, buf)

	testutil.RequireSliceNearlyEqual(t, buf[0], out[0], 0)
	testutil.RequireSliceNearlyEqual(t, buf[1], out[1], 0)
}

func TestSpreadZeroIsMono(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Params().SetNormalized(ParamStereoSpread, 0); err != nil {
		t.Fatal(err)
	}
	if err := e.Params().SetNormalized(ParamDry, 0); err != nil {
		t.Fatal(err)
	}
	e.Reset()
	in := [][]float64{testutil.DeterministicNoise(1, 0.5, 1024), testutil.DeterministicNoise(2, 0.5, 1024)}
	out := [][]float64{make([]float64, 1024), make([]float64, 1024)}
	e.Process(1024, in, out)
	testutil.RequireSliceNearlyEqual(t, out[0], out[1], 1e-15)
}

func BenchmarkProcess(b *testing.B) {
	e, err := New()
	if err != nil {
		b.Fatal(err)
	}
	in := [][]float64{testutil.DeterministicNoise(1, 0.5, 256), testutil.DeterministicNoise(2, 0.5, 256)}
	out := [][]float64{make([]float64, 256), make([]float64, 256)}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process(256, in, out)
	}
}
