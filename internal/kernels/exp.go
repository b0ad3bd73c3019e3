package kernels

import (
	"math"

	"github.com/born-ml/numcore/internal/ndarray"
	"github.com/born-ml/numcore/internal/simd"
)

// exp64 computes e^x as 2^k * e^r with |r| <= ln2/2.
func exp64(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > expOverflow:
		return math.Inf(1)
	case x < expUnderflow:
		return 0
	}

	k := math.RoundToEven(x * expInvLn2)
	r := x - k*expLn2Hi
	r -= k * expLn2Lo

	p := expC11
	p = p*r + expC10
	p = p*r + expC9
	p = p*r + expC8
	p = p*r + expC7
	p = p*r + expC6
	p = p*r + expC5
	p = p*r + expC4
	p = p*r + expC3
	p = p*r + expC2
	p = p*r + 1
	p = p*r + 1
	return math.Ldexp(p, int(k))
}

// ExpOp is the element-wise natural exponential functor.
type ExpOp[T simd.Floats] struct{}

// Apply returns e^x.
func (ExpOp[T]) Apply(x T) T { return T(exp64(float64(x))) }

// ApplyLanes writes e^x[j] to dst[j].
func (ExpOp[T]) ApplyLanes(dst, x []T) {
	x = x[:len(dst)]
	for j := range dst {
		dst[j] = T(exp64(float64(x[j])))
	}
}

// Exp builds e^a.
func Exp[T simd.Floats](a ndarray.Expr[T]) *ndarray.Unary[T] {
	return ndarray.Apply[T](ExpOp[T]{}, a)
}
