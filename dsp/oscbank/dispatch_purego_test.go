//go:build purego

package oscbank

import (
	"testing"

	"github.com/cwbudde/algo-synth/internal/cpu"
)

func TestSelect_PureGoUsesGeneric(t *testing.T) {
	f, err := Select(cpu.Features{HasSSE2: true, HasAVX2: true, HasNEON: true}, cpu.SIMDNone)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "generic" {
		t.Fatalf("expected generic, got %q", f.Name())
	}

	if _, err := Select(cpu.Features{HasAVX2: true}, cpu.SIMDSSE2); err == nil {
		t.Fatal("expected floor error with only the scalar kernel")
	}
}
