package ndarray

import (
	"fmt"
	"testing"

	"github.com/born-ml/numcore/internal/simd"
)

func BenchmarkMaterializeAdd(b *testing.B) {
	for _, n := range []int{100, 10_000, 1_000_000} {
		x, y := arange(n), arange(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			for b.Loop() {
				Materialize(Add(x, y))
			}
		})
	}
}

func BenchmarkMaterializeScalarPath(b *testing.B) {
	restore := simd.Force(simd.Scalar, 0)
	defer restore()

	x := arange(10_000)
	b.SetBytes(10_000 * 8)
	for b.Loop() {
		Materialize(Neg(AddScalar(x, 1)))
	}
}

func BenchmarkAt(b *testing.B) {
	a := arange(64, 64)
	for b.Loop() {
		_ = a.Get(31, 17)
	}
}
