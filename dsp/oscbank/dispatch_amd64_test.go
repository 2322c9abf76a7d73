//go:build amd64 && !purego

package oscbank

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

func TestSelect_AMD64Modes(t *testing.T) {
	tests := []struct {
		name      string
		features  cpu.Features
		wantImpl  string
		wantLanes int
	}{
		{
			name:      "generic-forced",
			features:  cpu.Features{ForceGeneric: true, Architecture: "amd64"},
			wantImpl:  "generic",
			wantLanes: 1,
		},
		{
			name:      "sse2",
			features:  cpu.Features{HasSSE2: true, Architecture: "amd64"},
			wantImpl:  "sse2",
			wantLanes: 2,
		},
		{
			name:      "avx2",
			features:  cpu.Features{HasSSE2: true, HasAVX: true, HasAVX2: true, Architecture: "amd64"},
			wantImpl:  "avx2",
			wantLanes: 4,
		},
		{
			name: "avx512",
			features: cpu.Features{
				HasSSE2: true, HasAVX: true, HasAVX2: true, HasAVX512: true,
				Architecture: "amd64",
			},
			wantImpl:  "avx512",
			wantLanes: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()

			f, err := Detect(cpu.SIMDNone)
			if err != nil {
				t.Fatal(err)
			}
			if f.Name() != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, f.Name())
			}
			if k := f.New(16); k.Lanes() != tt.wantLanes {
				t.Fatalf("lanes %d want %d", k.Lanes(), tt.wantLanes)
			}
		})
	}
}

func TestSelect_FloorNotMet(t *testing.T) {
	_, err := Select(cpu.Features{HasSSE2: true, Architecture: "amd64"}, cpu.SIMDAVX2)
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}

	var cfgErr *core.ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Component != "oscbank" {
		t.Fatalf("expected oscbank ConfigurationError, got %#v", err)
	}

	if _, err := Select(cpu.Features{HasSSE2: true, HasAVX2: true}, cpu.SIMDAVX2); err != nil {
		t.Fatalf("floor met: %v", err)
	}
}

func TestKernelsOrder(t *testing.T) {
	got := Kernels()
	want := []string{"avx512", "avx2", "sse2", "generic"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
