package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	defer ResetDetection()
	ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("architecture %q want %q", f.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Fatal("amd64 without SSE2")
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX2: true, Architecture: "amd64"})
	if f := DetectFeatures(); !f.HasAVX2 || f.HasAVX512 {
		t.Fatalf("forced features not returned: %+v", f)
	}

	ResetDetection()
	if f := DetectFeatures(); f.Architecture != runtime.GOARCH {
		t.Fatalf("reset did not restore detection: %+v", f)
	}
}

func TestSupports(t *testing.T) {
	f := Features{HasSSE2: true, HasAVX: true, HasAVX2: true}
	cases := []struct {
		level SIMDLevel
		want  bool
	}{
		{SIMDNone, true},
		{SIMDSSE2, true},
		{SIMDAVX2, true},
		{SIMDAVX512, false},
		{SIMDNEON, false},
		{SIMDSVELTE, false},
	}
	for _, tc := range cases {
		if got := Supports(f, tc.level); got != tc.want {
			t.Fatalf("Supports(%v) = %v want %v", tc.level, got, tc.want)
		}
	}

	f.ForceGeneric = true
	if Supports(f, SIMDSSE2) || !Supports(f, SIMDNone) {
		t.Fatal("ForceGeneric should allow only SIMDNone")
	}
}

func TestBestLevel(t *testing.T) {
	cases := []struct {
		name string
		f    Features
		want SIMDLevel
	}{
		{"none", Features{}, SIMDNone},
		{"sse2", Features{HasSSE2: true}, SIMDSSE2},
		{"avx2", Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, SIMDAVX2},
		{"avx512", Features{HasSSE2: true, HasAVX: true, HasAVX2: true, HasAVX512: true}, SIMDAVX512},
		{"neon", Features{HasNEON: true}, SIMDNEON},
		{"forced generic", Features{HasAVX2: true, ForceGeneric: true}, SIMDNone},
	}
	for _, tc := range cases {
		if got := BestLevel(tc.f); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestMeetsAndParse(t *testing.T) {
	if !SIMDAVX512.Meets(SIMDAVX2) || SIMDSSE2.Meets(SIMDAVX2) || !SIMDNEON.Meets(SIMDSSE2) {
		t.Fatal("Meets compares lane width")
	}

	for _, name := range []string{"avx2", "AVX2", " avx2 "} {
		if l, err := ParseLevel(name); err != nil || l != SIMDAVX2 {
			t.Fatalf("ParseLevel(%q) = %v, %v", name, l, err)
		}
	}
	if l, err := ParseLevel(""); err != nil || l != SIMDNone {
		t.Fatalf("empty level = %v, %v", l, err)
	}
	if _, err := ParseLevel("mmx"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
