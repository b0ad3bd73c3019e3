// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "github.com/born-ml/numcore/internal/ndarray"

// Expr is an unevaluated element-wise expression. *Array is an Expr.
type Expr[T Elem] = ndarray.Expr[T]

// Expression nodes.
type (
	Unary[T Elem]     = ndarray.Unary[T]
	Binary[T Elem]    = ndarray.Binary[T]
	Broadcast[T Elem] = ndarray.Broadcast[T]
)

// UnaryOp and BinaryOp are the functor contracts for Apply and Combine.
type (
	UnaryOp[T Elem]  = ndarray.UnaryOp[T]
	BinaryOp[T Elem] = ndarray.BinaryOp[T]
)

// UnaryFunc and BinaryFunc adapt plain functions to the functor contracts.
type (
	UnaryFunc[T Elem]  = ndarray.UnaryFunc[T]
	BinaryFunc[T Elem] = ndarray.BinaryFunc[T]
)

// Scalar wraps v as an operand that broadcasts to any size.
func Scalar[T Elem](v T) *Broadcast[T] { return ndarray.Scalar(v) }

// Apply builds op(a).
func Apply[T Elem](op UnaryOp[T], a Expr[T]) *Unary[T] { return ndarray.Apply(op, a) }

// Combine builds op(a, b).
func Combine[T Elem](op BinaryOp[T], a, b Expr[T]) *Binary[T] { return ndarray.Combine(op, a, b) }

// Add builds a + b.
func Add[T Elem](a, b Expr[T]) *Binary[T] { return ndarray.Add(a, b) }

// Sub builds a - b.
func Sub[T Elem](a, b Expr[T]) *Binary[T] { return ndarray.Sub(a, b) }

// Mul builds a * b.
func Mul[T Elem](a, b Expr[T]) *Binary[T] { return ndarray.Mul(a, b) }

// Neg builds -a.
func Neg[T Elem](a Expr[T]) *Unary[T] { return ndarray.Neg(a) }

// AddScalar builds a + c.
func AddScalar[T Elem](a Expr[T], c T) *Binary[T] { return ndarray.AddScalar(a, c) }

// ScalarAdd builds c + a.
func ScalarAdd[T Elem](c T, a Expr[T]) *Binary[T] { return ndarray.ScalarAdd(c, a) }

// MulScalar builds a * c.
func MulScalar[T Elem](a Expr[T], c T) *Binary[T] { return ndarray.MulScalar(a, c) }

// Materialize evaluates e into a new rank-1 array.
func Materialize[T Elem](e Expr[T]) *Array[T] { return ndarray.Materialize(e) }

// TryMaterialize is Materialize that returns ErrShapeMismatch instead of
// panicking when operand sizes disagree.
func TryMaterialize[T Elem](e Expr[T]) (*Array[T], error) { return ndarray.TryMaterialize(e) }
