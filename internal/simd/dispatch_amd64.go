//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func detect() target {
	switch {
	case cpu.X86.HasAVX512F:
		return target{level: AVX512, bytes: 64}
	case cpu.X86.HasAVX2, cpu.X86.HasAVX:
		return target{level: AVX, bytes: 32}
	case cpu.X86.HasSSE2:
		return target{level: SSE2, bytes: 16}
	default:
		return target{level: Scalar}
	}
}
