package ndarray

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements in the array.
func (s Shape) NumElements() int {
	// A rank-0 shape has 1 element.
	return lo.Reduce(s, func(n, dim, _ int) int { return n * dim }, 1)
}

// Validate checks that no extent is negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether both shapes have the same extents in the same order.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone copies the extents so a descriptor never aliases a caller's slice.
// The result is non-nil even for a rank-0 shape.
func (s Shape) Clone() Shape {
	return append(make(Shape, 0, len(s)), s...)
}

// ComputeStrides returns the row-major stride table a descriptor stores:
// entry i is the buffer distance between neighbouring indices of dimension
// i. Views reuse suffixes of the table, which stay valid because a stride
// only depends on the extents to its right.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}

// descriptor is the shared shape state of one or more array values: the
// extents, their precomputed row-major strides and the element count.
//
// Views taken by indexing point at the trailing part of their parent's
// extents and strides instead of copying them.
type descriptor struct {
	dims    Shape
	strides []int
	size    int
}

func newDescriptor(dims Shape) *descriptor {
	return &descriptor{
		dims:    dims,
		strides: dims.ComputeStrides(),
		size:    dims.NumElements(),
	}
}

// trailing returns the descriptor left after consuming k leading indices.
// Row-major strides depend only on the extents to their right, so the
// parent's stride table stays valid for the suffix.
func (d *descriptor) trailing(k int) *descriptor {
	dims := d.dims[k:]
	return &descriptor{
		dims:    dims,
		strides: d.strides[k:],
		size:    dims.NumElements(),
	}
}
