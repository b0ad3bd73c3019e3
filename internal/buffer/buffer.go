// Package buffer provides the reference-counted element storage behind every
// array value.
//
// A Buffer either owns its memory (allocated aligned to the vector width and
// dropped when the last reference is released) or wraps caller memory it
// never frees. Capacity is fixed at construction.
package buffer

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/born-ml/numcore/internal/simd"
)

// Buffer is a contiguous block of elements shared through reference counting.
type Buffer[T simd.Lanes] struct {
	data    []T
	foreign bool
	refs    atomic.Int32
}

// Allocate returns an owning buffer of n zeroed elements with refCount = 1.
// The first element is aligned to simd.Alignment() bytes.
//
// A negative n panics. Running out of memory is fatal in the Go runtime, so
// there is no error to return.
func Allocate[T simd.Lanes](n int) *Buffer[T] {
	if n < 0 {
		panic(fmt.Sprintf("buffer: cannot allocate %d elements", n))
	}
	b := &Buffer[T]{data: alignedSlice[T](n, simd.Alignment())}
	b.refs.Store(1)
	return b
}

// Wrap returns a foreign buffer over data with refCount = 1.
// The memory stays owned by the caller and is never dropped by Release.
func Wrap[T simd.Lanes](data []T) *Buffer[T] {
	b := &Buffer[T]{data: data[:len(data):len(data)], foreign: true}
	b.refs.Store(1)
	return b
}

// alignedSlice over-allocates by one alignment unit and slices from the
// first aligned element.
func alignedSlice[T simd.Lanes](n, align int) []T {
	if n == 0 {
		return []T{}
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	pad := (align + size - 1) / size
	raw := make([]T, n+pad)
	skip := 0
	//nolint:gosec // address arithmetic only, the pointer is not retained
	for skip < pad && uintptr(unsafe.Pointer(&raw[skip]))%uintptr(align) != 0 {
		skip++
	}
	return raw[skip : skip+n : skip+n]
}

// Retain increments the reference count.
func (b *Buffer[T]) Retain() {
	b.refs.Add(1)
}

// Release decrements the reference count. When it reaches zero an owning
// buffer drops its memory; a foreign buffer keeps pointing at the caller's.
func (b *Buffer[T]) Release() {
	if b.refs.Add(-1) == 0 && !b.foreign {
		b.data = nil
	}
}

// RefCount returns the current number of holders.
func (b *Buffer[T]) RefCount() int {
	return int(b.refs.Load())
}

// IsUnique reports whether exactly one holder references the buffer.
func (b *Buffer[T]) IsUnique() bool {
	return b.refs.Load() == 1
}

// Owning reports whether the buffer allocated (and will drop) its memory.
func (b *Buffer[T]) Owning() bool {
	return !b.foreign
}

// Cap returns the fixed element capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Data returns the whole element block (zero-copy).
//
// WARNING: the slice aliases every array value sharing this buffer.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Addr returns the address of the first element, or 0 for an empty or
// released buffer. It identifies storage in tests and diagnostics.
func (b *Buffer[T]) Addr() uintptr {
	if len(b.data) == 0 {
		return 0
	}
	//nolint:gosec // identity only
	return uintptr(unsafe.Pointer(&b.data[0]))
}
