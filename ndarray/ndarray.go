// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/numcore/internal/ndarray"
	"github.com/born-ml/numcore/internal/parallel"
)

// Elem is the constraint for array element types: the floating-point and
// integer kinds.
type Elem = ndarray.Elem

// Shape lists the extents of an array, outermost first.
type Shape = ndarray.Shape

// Tuple is a multi-index for Array.Tuple.
type Tuple = ndarray.Tuple

// Array is an N-dimensional array over a shared, reference-counted buffer.
type Array[T Elem] = ndarray.Array[T]

// Reader is the read-only view of an array produced by ConstElemIter.
type Reader[T Elem] = ndarray.Reader[T]

// Iterators over an array's leading dimension and over its flat elements.
type (
	ElemIter[T Elem]      = ndarray.ElemIter[T]
	ConstElemIter[T Elem] = ndarray.ConstElemIter[T]
	FlatIter[T Elem]      = ndarray.FlatIter[T]
	ConstFlatIter[T Elem] = ndarray.ConstFlatIter[T]
)

// IndexError reports an index outside a dimension's extent.
type IndexError = ndarray.IndexError

// Errors.
var (
	ErrIndexOutOfRange = ndarray.ErrIndexOutOfRange
	ErrShapeMismatch   = ndarray.ErrShapeMismatch
)

// Config controls how materialization and fills are split across
// goroutines.
type Config = parallel.Config

// DefaultConfig returns the configuration used at start-up.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// ParallelConfig returns the engine-wide parallel configuration.
func ParallelConfig() Config { return ndarray.ParallelConfig() }

// SetParallelConfig replaces the engine-wide parallel configuration.
func SetParallelConfig(cfg Config) { ndarray.SetParallelConfig(cfg) }

// New creates a zero-filled array with the given extents.
//
// Example:
//
//	m := ndarray.New[float32](2, 3)
func New[T Elem](dims ...int) *Array[T] { return ndarray.New[T](dims...) }

// Full creates an array with every element set to value.
func Full[T Elem](value T, dims ...int) *Array[T] { return ndarray.Full(value, dims...) }

// FromSlice creates a rank-1 array holding a copy of values.
func FromSlice[T Elem](values []T) *Array[T] { return ndarray.FromSlice(values) }

// FromSliceShape creates an array of the given shape holding a copy of
// values. len(values) must equal the shape's element count.
func FromSliceShape[T Elem](values []T, dims ...int) (*Array[T], error) {
	return ndarray.FromSliceShape(values, dims...)
}

// FromRange creates a rank-1 array from the elements in [first, last).
func FromRange[T Elem](first, last ConstFlatIter[T]) *Array[T] {
	return ndarray.FromRange(first, last)
}

// Wrap creates an array over caller-owned memory without copying it. The
// memory is never freed by the array.
func Wrap[T Elem](data []T, dims ...int) (*Array[T], error) {
	return ndarray.Wrap(data, dims...)
}

// Transform creates an array of src's shape with fn applied to every
// element.
func Transform[T, U Elem](src *Array[U], fn func(U) T) *Array[T] {
	return ndarray.Transform(src, fn)
}
