package kernels

import (
	"math"

	"github.com/born-ml/numcore/internal/ndarray"
	"github.com/born-ml/numcore/internal/simd"
)

// AbsOp is the element-wise absolute value. Unsigned elements pass through;
// the most negative signed value maps to itself.
type AbsOp[T ndarray.Elem] struct{}

// Apply returns |x|.
func (AbsOp[T]) Apply(x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ApplyLanes writes |x[j]| to dst[j].
func (AbsOp[T]) ApplyLanes(dst, x []T) {
	x = x[:len(dst)]
	for j, v := range x {
		if v < 0 {
			v = -v
		}
		dst[j] = v
	}
}

// SqrtOp is the element-wise square root. Negative inputs give NaN.
type SqrtOp[T simd.Floats] struct{}

// Apply returns √x.
func (SqrtOp[T]) Apply(x T) T { return T(math.Sqrt(float64(x))) }

// ApplyLanes writes √x[j] to dst[j].
func (SqrtOp[T]) ApplyLanes(dst, x []T) {
	x = x[:len(dst)]
	for j := range dst {
		dst[j] = T(math.Sqrt(float64(x[j])))
	}
}

// Abs builds |a|.
func Abs[T ndarray.Elem](a ndarray.Expr[T]) *ndarray.Unary[T] {
	return ndarray.Apply[T](AbsOp[T]{}, a)
}

// Sqrt builds √a.
func Sqrt[T simd.Floats](a ndarray.Expr[T]) *ndarray.Unary[T] {
	return ndarray.Apply[T](SqrtOp[T]{}, a)
}
