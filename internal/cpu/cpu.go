// Package cpu reports the vector instruction sets available to the
// oscillator bank kernels.
//
// Detection runs once, on first use, and is cached. Tests override the
// result with SetForcedFeatures and restore it with ResetDetection.
package cpu

import (
	"fmt"
	"strings"
	"sync"
)

// SIMDLevel is an instruction set extension a kernel may be built for.
// Levels of different architectures are compared by lane width only.
type SIMDLevel int

const (
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX
	SIMDAVX2
	SIMDAVX512
	SIMDNEON
	SIMDSVELTE
)

func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	case SIMDSVELTE:
		return "SVE"
	default:
		return "Unknown"
	}
}

// Lanes returns the number of float64 lanes of one vector register at
// this level.
func (s SIMDLevel) Lanes() int {
	switch s {
	case SIMDSSE2, SIMDNEON:
		return 2
	case SIMDAVX, SIMDAVX2:
		return 4
	case SIMDAVX512:
		return 8
	default:
		return 1
	}
}

// Meets reports whether s is at least as wide as floor.
func (s SIMDLevel) Meets(floor SIMDLevel) bool {
	return s.Lanes() >= floor.Lanes()
}

// ParseLevel parses a level name as printed by String, case-insensitive.
// "generic" and "" map to SIMDNone.
func ParseLevel(name string) (SIMDLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "generic":
		return SIMDNone, nil
	case "sse2":
		return SIMDSSE2, nil
	case "avx":
		return SIMDAVX, nil
	case "avx2":
		return SIMDAVX2, nil
	case "avx-512", "avx512":
		return SIMDAVX512, nil
	case "neon":
		return SIMDNEON, nil
	default:
		return SIMDNone, fmt.Errorf("cpu: unknown SIMD level %q", name)
	}
}

// Features describes the capabilities relevant to kernel selection.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric restricts selection to SIMDNone kernels.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the running CPU, or the forced
// set if one is installed. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features can run kernels built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

// BestLevel returns the widest supported level.
func BestLevel(features Features) SIMDLevel {
	best := SIMDNone
	for _, level := range []SIMDLevel{SIMDSSE2, SIMDNEON, SIMDAVX, SIMDAVX2, SIMDAVX512} {
		if Supports(features, level) && level.Lanes() >= best.Lanes() {
			best = level
		}
	}
	return best
}
