package ndarray

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/born-ml/numcore/internal/buffer"
	"github.com/born-ml/numcore/internal/parallel"
	"github.com/born-ml/numcore/internal/simd"
)

// offset is the shared base offset of a lineage of array values.
type offset struct {
	v int
}

// Array is a rank-N array value over a shared buffer.
//
// Copies made with Copy alias the same buffer, offset cell and shape
// descriptor. Indexing returns views: new values sharing the buffer with
// their own offset and a narrower descriptor. Whether a value is a view is
// recorded when it is created and decides how Assign behaves.
//
// Array values are not safe for concurrent mutation.
type Array[T Elem] struct {
	buf  *buffer.Buffer[T]
	off  *offset
	desc *descriptor
	view bool
}

func owner[T Elem](buf *buffer.Buffer[T], dims Shape) *Array[T] {
	return &Array[T]{
		buf:  buf,
		off:  &offset{},
		desc: newDescriptor(dims),
	}
}

func mustValidate(dims Shape) {
	if err := dims.Validate(); err != nil {
		panic(fmt.Sprintf("ndarray: invalid shape %v: %v", []int(dims), err))
	}
}

// New creates an owning array with the given extents, zero-filled.
// With no extents it creates a rank-0 array holding one element.
//
// Example:
//
//	a := ndarray.New[float64](2, 3)
func New[T Elem](dims ...int) *Array[T] {
	shape := Shape(dims).Clone()
	mustValidate(shape)
	return owner(buffer.Allocate[T](shape.NumElements()), shape)
}

// Full creates an owning array with every element set to value.
//
// Example:
//
//	a := ndarray.Full[float32](3.14, 3, 3)
func Full[T Elem](value T, dims ...int) *Array[T] {
	a := New[T](dims...)
	data := a.Data()
	parallel.Range(len(data), simd.Width[T](), func(lo, hi int) {
		simd.Broadcast(data[lo:hi], value)
	}, ParallelConfig())
	return a
}

// FromSlice creates a rank-1 owning array holding a copy of values.
func FromSlice[T Elem](values []T) *Array[T] {
	a := New[T](len(values))
	copy(a.Data(), values)
	return a
}

// FromSliceShape creates an owning array of the given shape from a copy of
// values, which must hold exactly the shape's element count.
func FromSliceShape[T Elem](values []T, dims ...int) (*Array[T], error) {
	shape := Shape(dims)
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	if shape.NumElements() != len(values) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d",
			[]int(shape), shape.NumElements(), len(values))
	}
	a := New[T](dims...)
	copy(a.Data(), values)
	return a, nil
}

// FromRange creates a rank-1 owning array from the elements in [first, last).
// Both iterators must come from the same array.
func FromRange[T Elem](first, last ConstFlatIter[T]) *Array[T] {
	a := New[T](max(last.Distance(first), 0))
	data := a.Data()
	for it := first; it.Less(last); it = it.Next() {
		data[it.Distance(first)] = it.Value()
	}
	return a
}

// Wrap creates an array over caller memory without copying it.
// The buffer is foreign: releasing the array never drops data. If the
// shape covers fewer elements than data holds, the result is a view.
func Wrap[T Elem](data []T, dims ...int) (*Array[T], error) {
	shape := Shape(dims).Clone()
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	if shape.NumElements() > len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d",
			[]int(shape), shape.NumElements(), len(data))
	}
	a := owner(buffer.Wrap(data), shape)
	a.view = shape.NumElements() != len(data)
	return a, nil
}

// Transform creates an owning array with src's shape whose elements are
// fn applied to src's elements in flat order.
func Transform[T, U Elem](src *Array[U], fn func(U) T) *Array[T] {
	a := New[T](src.Shape()...)
	data := a.Data()
	i := 0
	for it, end := src.CFlatBegin(), src.CFlatEnd(); it.Less(end); it = it.Next() {
		data[i] = fn(it.Value())
		i++
	}
	return a
}

// Size returns the number of elements (product of the extents).
// A released or moved-from array has size 0.
func (a *Array[T]) Size() int {
	if a.desc == nil {
		return 0
	}
	return a.desc.size
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	if a.desc == nil {
		return 0
	}
	return len(a.desc.dims)
}

// Shape returns the array's extents.
// The slice is shared with every aliasing value and must not be modified.
func (a *Array[T]) Shape() Shape {
	if a.desc == nil {
		return nil
	}
	return a.desc.dims
}

// Strides returns the row-major strides of the array's extents.
func (a *Array[T]) Strides() []int {
	if a.desc == nil {
		return nil
	}
	return a.desc.strides
}

// Offset returns the array's base offset into its buffer.
func (a *Array[T]) Offset() int {
	if a.off == nil {
		return 0
	}
	return a.off.v
}

// IsFullOwner reports whether the array owns its whole buffer rather than
// viewing a slice of it. Assign rebinds owners and writes through views.
func (a *Array[T]) IsFullOwner() bool {
	return !a.view
}

// IsEmpty reports whether the array holds no handles (released or moved).
func (a *Array[T]) IsEmpty() bool {
	return a.buf == nil
}

// Buffer returns the shared buffer, nil for an empty array.
func (a *Array[T]) Buffer() *buffer.Buffer[T] {
	return a.buf
}

// Data returns the array's elements as a flat slice of its buffer
// (zero-copy).
//
// WARNING: Modifications to the returned slice modify the array and every
// value sharing its buffer.
func (a *Array[T]) Data() []T {
	if a.buf == nil {
		return nil
	}
	lo := a.off.v
	hi := lo + a.desc.size
	return a.buf.Data()[lo:hi:hi]
}

// Values returns a copy of the array's elements in flat order.
func (a *Array[T]) Values() []T {
	return append([]T(nil), a.Data()...)
}

// Addr returns the address of the array's first element, 0 if it has none.
func (a *Array[T]) Addr() uintptr {
	data := a.Data()
	if len(data) == 0 {
		return 0
	}
	//nolint:gosec // identity only
	return uintptr(unsafe.Pointer(&data[0]))
}

// Copy returns an alias of the array: the same buffer, offset cell and
// shape descriptor, with the buffer's reference count incremented.
func (a *Array[T]) Copy() *Array[T] {
	if a.buf != nil {
		a.buf.Retain()
	}
	return &Array[T]{buf: a.buf, off: a.off, desc: a.desc, view: a.view}
}

// Move transfers the array's handles to a new value and leaves a empty.
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{buf: a.buf, off: a.off, desc: a.desc, view: a.view}
	*a = Array[T]{}
	return moved
}

// Release drops the array's handles. The buffer is freed when its last
// holder releases it.
func (a *Array[T]) Release() {
	if a.buf != nil {
		a.buf.Release()
	}
	*a = Array[T]{}
}

// String returns a human-readable description of the array.
func (a *Array[T]) String() string {
	var zero T
	kind := "owner"
	if a.view {
		kind = "view"
	}
	return fmt.Sprintf("Array[%T]%v %s", zero, []int(a.Shape()), kind)
}

// LogValue reports the array's shape, offset and sharing state to slog.
func (a *Array[T]) LogValue() slog.Value {
	var zero T
	if a.buf == nil {
		return slog.GroupValue(slog.Bool("empty", true))
	}
	return slog.GroupValue(
		slog.String("dtype", fmt.Sprintf("%T", zero)),
		slog.Any("shape", []int(a.desc.dims)),
		slog.Int("offset", a.off.v),
		slog.Bool("view", a.view),
		slog.Int("refs", a.buf.RefCount()),
	)
}
