//go:build !amd64 && !arm64

package simd

func detect() target {
	return target{level: Scalar}
}
