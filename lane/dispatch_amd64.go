//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// Pick the widest register width the CPU reports. The emulated lane
	// loops run at any width, so no per-ISA build is needed; the width is
	// what callers observe through MaxLanes.
	switch {
	case cpu.X86.HasAVX512:
		currentLevel = DispatchAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
	default:
		// SSE2 is the amd64 baseline.
		currentLevel = DispatchSSE2
		currentWidth = 16
	}
}
