package kernels

import (
	"math"

	"github.com/born-ml/numcore/internal/ndarray"
	"github.com/born-ml/numcore/internal/simd"
)

func sinPoly(r float64) float64 {
	z := r * r
	p := sinS6
	p = p*z + sinS5
	p = p*z + sinS4
	p = p*z + sinS3
	p = p*z + sinS2
	p = p*z + sinS1
	return r + r*z*p
}

func cosPoly(r float64) float64 {
	z := r * r
	p := cosC7
	p = p*z + cosC6
	p = p*z + cosC5
	p = p*z + cosC4
	p = p*z + cosC3
	p = p*z + cosC2
	p = p*z + cosC1
	return 1 + z*p
}

// sin64 evaluates sin(x). Arguments beyond MaxReducible go through
// math.Sin, whose Payne-Hanek reduction keeps the full quadrant count.
func sin64(x float64) float64 {
	if math.Abs(x) > MaxReducible {
		return math.Sin(x)
	}
	q, r := RemPio2(x)
	switch q {
	case 0:
		return sinPoly(r)
	case 1:
		return cosPoly(r)
	case 2:
		return -sinPoly(r)
	default:
		return -cosPoly(r)
	}
}

// cos64 evaluates cos(x), as sin with the quadrant shifted by one.
func cos64(x float64) float64 {
	if math.Abs(x) > MaxReducible {
		return math.Cos(x)
	}
	q, r := RemPio2(x)
	switch q {
	case 0:
		return cosPoly(r)
	case 1:
		return -sinPoly(r)
	case 2:
		return -cosPoly(r)
	default:
		return sinPoly(r)
	}
}

// SinOp is the element-wise sine functor.
type SinOp[T simd.Floats] struct{}

// Apply returns sin(x).
func (SinOp[T]) Apply(x T) T { return T(sin64(float64(x))) }

// ApplyLanes writes sin(x[j]) to dst[j].
func (SinOp[T]) ApplyLanes(dst, x []T) {
	x = x[:len(dst)]
	for j := range dst {
		dst[j] = T(sin64(float64(x[j])))
	}
}

// CosOp is the element-wise cosine functor.
type CosOp[T simd.Floats] struct{}

// Apply returns cos(x).
func (CosOp[T]) Apply(x T) T { return T(cos64(float64(x))) }

// ApplyLanes writes cos(x[j]) to dst[j].
func (CosOp[T]) ApplyLanes(dst, x []T) {
	x = x[:len(dst)]
	for j := range dst {
		dst[j] = T(cos64(float64(x[j])))
	}
}

// Sin builds sin(a).
func Sin[T simd.Floats](a ndarray.Expr[T]) *ndarray.Unary[T] {
	return ndarray.Apply[T](SinOp[T]{}, a)
}

// Cos builds cos(a).
func Cos[T simd.Floats](a ndarray.Expr[T]) *ndarray.Unary[T] {
	return ndarray.Apply[T](CosOp[T]{}, a)
}
