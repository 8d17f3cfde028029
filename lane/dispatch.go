package lane

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the SIMD width class selected at startup.
type DispatchLevel int

const (
	// DispatchScalar indicates the 16-byte scalar-equivalent fallback.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit lanes (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates 256-bit lanes.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit lanes.
	DispatchAVX512
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the lane register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the SIMD width class being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the lane register width in bytes:
// 16 for SSE2/scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current width class.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks whether the RAYKIT_NO_SIMD environment variable is set.
// When set, the scalar fallback width is used regardless of CPU capabilities.
// Useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("RAYKIT_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes for element type T at the current
// width. With AVX2 (32 bytes): float32 -> 8 lanes, float64 -> 4 lanes.
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // 16-byte vectors even in scalar mode for consistency
}
