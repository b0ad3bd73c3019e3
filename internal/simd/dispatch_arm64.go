//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func detect() target {
	// ASIMD is part of the ARMv8-A base architecture; the check only guards
	// against emulators that report nothing.
	if cpu.ARM64.HasASIMD {
		return target{level: NEON, bytes: 16}
	}
	return target{level: Scalar}
}
