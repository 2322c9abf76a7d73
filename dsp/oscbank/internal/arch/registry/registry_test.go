package registry

import (
	"testing"

	"github.com/cwbudde/algo-synth/internal/cpu"
)

func TestLookupPrefersHigherPriority(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx512", SIMDLevel: cpu.SIMDAVX512, Priority: 30})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	cases := []struct {
		features cpu.Features
		want     string
	}{
		{cpu.Features{HasSSE2: true, HasAVX2: true, HasAVX512: true}, "avx512"},
		{cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{cpu.Features{HasSSE2: true}, "sse2"},
		{cpu.Features{}, "generic"},
		{cpu.Features{HasAVX2: true, ForceGeneric: true}, "generic"},
	}
	for _, tc := range cases {
		entry := reg.Lookup(tc.features)
		if entry == nil || entry.Name != tc.want {
			t.Fatalf("%+v: expected %s, got %#v", tc.features, tc.want, entry)
		}
	}
}

func TestLookupEmpty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("expected nil, got %#v", entry)
	}

	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	if entry := reg.Lookup(cpu.Features{HasSSE2: true}); entry != nil {
		t.Fatalf("expected nil without a supported entry, got %#v", entry)
	}

	reg.Reset()
	if n := len(reg.ListEntries()); n != 0 {
		t.Fatalf("Reset left %d entries", n)
	}
}

func TestSortedListsByPriority(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	if got := reg.ListEntries()[0].Name; got != "sse2" {
		t.Fatalf("ListEntries before sorting starts with %s, want sse2", got)
	}

	want := []string{"avx2", "sse2", "generic"}
	got := reg.Sorted()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("entry %d = %s, want %s", i, got[i].Name, want[i])
		}
	}

	reg.Register(OpEntry{Name: "avx512", SIMDLevel: cpu.SIMDAVX512, Priority: 30})
	if got := reg.Sorted()[0].Name; got != "avx512" {
		t.Fatalf("late registration: first entry %s, want avx512", got)
	}
}
