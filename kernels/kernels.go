// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernels provides element-wise math functors that plug into
// ndarray expressions.
//
// Example:
//
//	x := ndarray.FromSlice([]float64{0, 0.5, 1})
//	y := ndarray.Materialize(kernels.Sin(x))
package kernels

import (
	"github.com/born-ml/numcore/internal/kernels"
	"github.com/born-ml/numcore/internal/simd"
	"github.com/born-ml/numcore/ndarray"
)

// Float is the constraint for the floating-point kernels.
type Float = simd.Floats

// Functors implementing ndarray.UnaryOp.
type (
	SinOp[T Float]        = kernels.SinOp[T]
	CosOp[T Float]        = kernels.CosOp[T]
	ExpOp[T Float]        = kernels.ExpOp[T]
	SqrtOp[T Float]       = kernels.SqrtOp[T]
	AbsOp[T ndarray.Elem] = kernels.AbsOp[T]
)

// MaxReducible is the largest magnitude RemPio2 reduces accurately. Sin and
// Cos hand larger arguments to math.Sin and math.Cos.
const MaxReducible = kernels.MaxReducible

// RemPio2 reduces x modulo π/2, returning the quadrant (0 to 3) and the
// remainder in [-π/4, π/4].
func RemPio2(x float64) (quadrant int, r float64) { return kernels.RemPio2(x) }

// Sin builds sin(a).
func Sin[T Float](a ndarray.Expr[T]) *ndarray.Unary[T] { return kernels.Sin(a) }

// Cos builds cos(a).
func Cos[T Float](a ndarray.Expr[T]) *ndarray.Unary[T] { return kernels.Cos(a) }

// Exp builds e^a.
func Exp[T Float](a ndarray.Expr[T]) *ndarray.Unary[T] { return kernels.Exp(a) }

// Sqrt builds √a.
func Sqrt[T Float](a ndarray.Expr[T]) *ndarray.Unary[T] { return kernels.Sqrt(a) }

// Abs builds |a|.
func Abs[T ndarray.Elem](a ndarray.Expr[T]) *ndarray.Unary[T] { return kernels.Abs(a) }
