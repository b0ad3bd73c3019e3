// Package ndarray implements numcore's view-aware array values and their lazy
// element-wise expressions.
//
// An Array is three shared handles: a reference-counted buffer, an offset
// cell and a shape descriptor. Indexing shares the buffer and yields views;
// arithmetic builds Expr trees that only run when materialized.
package ndarray

import "github.com/born-ml/numcore/internal/simd"

// Elem is a constraint for supported element types.
// It uses Go generics to ensure compile-time type safety.
type Elem interface {
	simd.Lanes
}
