// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides reference-counted, view-aware N-dimensional
// arrays with lazily evaluated element-wise expressions.
//
// # Values and views
//
// An Array is a handle onto a shared buffer. Copy aliases it in O(1); At
// with fewer indices than the rank returns a zero-copy view of a sub-array:
//
//	m := ndarray.New[float64](3, 4)
//	row := m.At(1)  // view of shape [4]
//	row.Set(7, 2)   // m.Get(1, 2) == 7
//
// Assigning to a view writes through into the region it views. Assigning
// to a full owner rebinds it to the source's storage.
//
// # Expressions
//
// Add, Neg and the other operators build an expression tree without doing
// any arithmetic. Materialize (or Array.AssignExpr) evaluates it in one
// pass, a vector lane block at a time, in parallel for large sizes:
//
//	a := ndarray.FromSlice([]float64{1, 2, 3, 4})
//	b := ndarray.Materialize(ndarray.Neg(a))       // [-1 -2 -3 -4]
//	b.AssignExpr(ndarray.AddScalar(ndarray.Add(a, a), 1)) // [3 5 7 9]
//
// Operands of different sizes are not checked: a scalar operand (Scalar)
// stretches to the other side, and any other mismatch is a programming
// error. TryMaterialize validates sizes and returns ErrShapeMismatch.
//
// # Concurrency
//
// Reference counts are atomic. Everything else about a shared buffer is
// unsynchronized: concurrent writes through aliasing arrays race.
package ndarray
