package ndarray

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tuple is a packed multi-index, equivalent to passing its elements to At.
type Tuple []int

// locate returns the buffer position of the leading len(idx) indices:
// offset + Σ idx[i]·stride[i]. Indices are not bounds-checked.
func (a *Array[T]) locate(idx []int) int {
	pos := a.off.v
	for i, x := range idx {
		pos += x * a.desc.strides[i]
	}
	return pos
}

func (a *Array[T]) checkArity(k int, exact bool) {
	rank := a.Rank()
	if a.buf == nil {
		panic("ndarray: indexing an empty array")
	}
	if k > rank || (exact && k != rank) || (!exact && k == 0 && rank > 0) {
		panic(fmt.Sprintf("ndarray: %d indices for rank %d array", k, rank))
	}
}

// viewAt returns the view starting at buffer position pos after k indices
// have been consumed.
func (a *Array[T]) viewAt(pos, k int) *Array[T] {
	a.buf.Retain()
	return &Array[T]{
		buf:  a.buf,
		off:  &offset{v: pos},
		desc: a.desc.trailing(k),
		view: true,
	}
}

// At consumes 1 ≤ k ≤ Rank() leading indices and returns the zero-copy view
// of rank Rank()-k they select. With k == Rank() the result is a rank-0
// view of a single element (see Item and SetItem).
//
// Indices are not bounds-checked: an out-of-range index yields a view of
// the wrong elements or panics when the view is read. Use Index for a
// checked leading-dimension access.
//
// Example:
//
//	a := ndarray.New[float64](2, 3)
//	row := a.At(1)     // rank 1, shares a's buffer
//	cell := a.At(1, 2) // rank 0
func (a *Array[T]) At(idx ...int) *Array[T] {
	a.checkArity(len(idx), false)
	return a.viewAt(a.locate(idx), len(idx))
}

// Ref returns a pointer to the element selected by exactly Rank() indices.
// Indices are not bounds-checked beyond the buffer's own capacity.
func (a *Array[T]) Ref(idx ...int) *T {
	a.checkArity(len(idx), true)
	return &a.buf.Data()[a.locate(idx)]
}

// Get returns the element selected by exactly Rank() indices.
func (a *Array[T]) Get(idx ...int) T {
	return *a.Ref(idx...)
}

// Set stores value at the element selected by exactly Rank() indices.
func (a *Array[T]) Set(value T, idx ...int) {
	*a.Ref(idx...) = value
}

// Index selects i along the leading dimension, checking it against that
// dimension's extent. It returns a view of rank Rank()-1; for a rank-1 array
// the view is rank 0 and holds the element itself.
func (a *Array[T]) Index(i int) (*Array[T], error) {
	a.checkArity(1, false)
	if extent := a.desc.dims[0]; i < 0 || i >= extent {
		return nil, errors.WithStack(&IndexError{Dim: 0, Index: i, Extent: extent})
	}
	return a.viewAt(a.off.v+i*a.desc.strides[0], 1), nil
}

// Tuple indexes with a packed multi-index. The tuple is folded from its last
// element to its first into a position and then reduced exactly as At does.
func (a *Array[T]) Tuple(t Tuple) *Array[T] {
	a.checkArity(len(t), false)
	pos := a.off.v
	for i := len(t) - 1; i >= 0; i-- {
		pos += t[i] * a.desc.strides[i]
	}
	return a.viewAt(pos, len(t))
}

// Item returns the single element of a rank-0 array.
func (a *Array[T]) Item() T {
	return *a.Ref()
}

// SetItem stores the single element of a rank-0 array.
func (a *Array[T]) SetItem(value T) {
	*a.Ref() = value
}
