package ndarray

import "iter"

// Reader is the read-only surface of an array, handed out by const
// iterators.
type Reader[T Elem] interface {
	Size() int
	Rank() int
	Shape() Shape
	Get(idx ...int) T
	Item() T
	Values() []T
	String() string
}

var _ Reader[float64] = (*Array[float64])(nil)

// leading returns the extent and stride of dimension 0, or zeros for a
// rank-0 or empty array.
func (a *Array[T]) leading() (extent, stride int) {
	if a.Rank() == 0 {
		return 0, 0
	}
	return a.desc.dims[0], a.desc.strides[0]
}

// ElemIter walks an array along its leading dimension. Dereferencing yields
// the rank N-1 view at the current position. Positions advance by one
// index, which moves Step() elements through the buffer.
type ElemIter[T Elem] struct {
	arr  *Array[T]
	i    int
	step int
}

// Begin returns an element iterator at index 0.
func (a *Array[T]) Begin() ElemIter[T] {
	_, step := a.leading()
	return ElemIter[T]{arr: a, step: step}
}

// End returns the element iterator one past the last leading index.
func (a *Array[T]) End() ElemIter[T] {
	n, step := a.leading()
	return ElemIter[T]{arr: a, i: n, step: step}
}

// Value returns the view at the current position.
func (it ElemIter[T]) Value() *Array[T] {
	return it.arr.viewAt(it.arr.off.v+it.i*it.step, 1)
}

// Ptr returns a pointer to the current element of a rank-1 array.
func (it ElemIter[T]) Ptr() *T {
	return it.arr.Ref(it.i)
}

// Index returns the current leading index.
func (it ElemIter[T]) Index() int { return it.i }

// Step returns the element distance between consecutive positions.
func (it ElemIter[T]) Step() int { return it.step }

// Next returns the iterator advanced by one position.
func (it ElemIter[T]) Next() ElemIter[T] { it.i++; return it }

// Prev returns the iterator moved back by one position.
func (it ElemIter[T]) Prev() ElemIter[T] { it.i--; return it }

// Add returns the iterator advanced by n positions.
func (it ElemIter[T]) Add(n int) ElemIter[T] { it.i += n; return it }

// Sub returns the iterator moved back by n positions.
func (it ElemIter[T]) Sub(n int) ElemIter[T] { it.i -= n; return it }

// Advance moves the iterator by n positions in place.
func (it *ElemIter[T]) Advance(n int) { it.i += n }

// Distance returns the number of positions from other to it.
func (it ElemIter[T]) Distance(other ElemIter[T]) int { return it.i - other.i }

// Equal reports whether both iterators are at the same position.
func (it ElemIter[T]) Equal(other ElemIter[T]) bool { return it.i == other.i }

// Less reports whether it is before other.
func (it ElemIter[T]) Less(other ElemIter[T]) bool { return it.i < other.i }

// ConstElemIter is the read-only counterpart of ElemIter.
type ConstElemIter[T Elem] struct {
	it ElemIter[T]
}

// CBegin returns a read-only element iterator at index 0.
func (a *Array[T]) CBegin() ConstElemIter[T] { return ConstElemIter[T]{a.Begin()} }

// CEnd returns the read-only element iterator one past the end.
func (a *Array[T]) CEnd() ConstElemIter[T] { return ConstElemIter[T]{a.End()} }

// Value returns the view at the current position as a Reader.
func (it ConstElemIter[T]) Value() Reader[T] { return it.it.Value() }

// Index returns the current leading index.
func (it ConstElemIter[T]) Index() int { return it.it.i }

// Next returns the iterator advanced by one position.
func (it ConstElemIter[T]) Next() ConstElemIter[T] { return ConstElemIter[T]{it.it.Next()} }

// Prev returns the iterator moved back by one position.
func (it ConstElemIter[T]) Prev() ConstElemIter[T] { return ConstElemIter[T]{it.it.Prev()} }

// Add returns the iterator advanced by n positions.
func (it ConstElemIter[T]) Add(n int) ConstElemIter[T] { return ConstElemIter[T]{it.it.Add(n)} }

// Sub returns the iterator moved back by n positions.
func (it ConstElemIter[T]) Sub(n int) ConstElemIter[T] { return ConstElemIter[T]{it.it.Sub(n)} }

// Advance moves the iterator by n positions in place.
func (it *ConstElemIter[T]) Advance(n int) { it.it.i += n }

// Distance returns the number of positions from other to it.
func (it ConstElemIter[T]) Distance(other ConstElemIter[T]) int { return it.it.i - other.it.i }

// Equal reports whether both iterators are at the same position.
func (it ConstElemIter[T]) Equal(other ConstElemIter[T]) bool { return it.it.i == other.it.i }

// Less reports whether it is before other.
func (it ConstElemIter[T]) Less(other ConstElemIter[T]) bool { return it.it.i < other.it.i }

// FlatIter walks an array's elements one at a time in buffer order,
// ignoring its shape.
type FlatIter[T Elem] struct {
	arr *Array[T]
	i   int
}

// FlatBegin returns a flat iterator at the first element.
func (a *Array[T]) FlatBegin() FlatIter[T] { return FlatIter[T]{arr: a} }

// FlatEnd returns the flat iterator one past the last element.
func (a *Array[T]) FlatEnd() FlatIter[T] { return FlatIter[T]{arr: a, i: a.Size()} }

// Ptr returns a pointer to the current element.
func (it FlatIter[T]) Ptr() *T { return &it.arr.buf.Data()[it.arr.off.v+it.i] }

// Value returns the current element.
func (it FlatIter[T]) Value() T { return *it.Ptr() }

// Set stores v at the current element.
func (it FlatIter[T]) Set(v T) { *it.Ptr() = v }

// Index returns the current flat position.
func (it FlatIter[T]) Index() int { return it.i }

// Next returns the iterator advanced by one element.
func (it FlatIter[T]) Next() FlatIter[T] { it.i++; return it }

// Prev returns the iterator moved back by one element.
func (it FlatIter[T]) Prev() FlatIter[T] { it.i--; return it }

// Add returns the iterator advanced by n elements.
func (it FlatIter[T]) Add(n int) FlatIter[T] { it.i += n; return it }

// Sub returns the iterator moved back by n elements.
func (it FlatIter[T]) Sub(n int) FlatIter[T] { it.i -= n; return it }

// Advance moves the iterator by n elements in place.
func (it *FlatIter[T]) Advance(n int) { it.i += n }

// Distance returns the number of elements from other to it.
func (it FlatIter[T]) Distance(other FlatIter[T]) int { return it.i - other.i }

// Equal reports whether both iterators are at the same element.
func (it FlatIter[T]) Equal(other FlatIter[T]) bool { return it.i == other.i }

// Less reports whether it is before other.
func (it FlatIter[T]) Less(other FlatIter[T]) bool { return it.i < other.i }

// Const returns the read-only iterator at the same position.
func (it FlatIter[T]) Const() ConstFlatIter[T] { return ConstFlatIter[T]{it} }

// ConstFlatIter is the read-only counterpart of FlatIter.
type ConstFlatIter[T Elem] struct {
	it FlatIter[T]
}

// CFlatBegin returns a read-only flat iterator at the first element.
func (a *Array[T]) CFlatBegin() ConstFlatIter[T] { return ConstFlatIter[T]{a.FlatBegin()} }

// CFlatEnd returns the read-only flat iterator one past the last element.
func (a *Array[T]) CFlatEnd() ConstFlatIter[T] { return ConstFlatIter[T]{a.FlatEnd()} }

// Value returns the current element.
func (it ConstFlatIter[T]) Value() T { return it.it.Value() }

// Index returns the current flat position.
func (it ConstFlatIter[T]) Index() int { return it.it.i }

// Next returns the iterator advanced by one element.
func (it ConstFlatIter[T]) Next() ConstFlatIter[T] { return ConstFlatIter[T]{it.it.Next()} }

// Prev returns the iterator moved back by one element.
func (it ConstFlatIter[T]) Prev() ConstFlatIter[T] { return ConstFlatIter[T]{it.it.Prev()} }

// Add returns the iterator advanced by n elements.
func (it ConstFlatIter[T]) Add(n int) ConstFlatIter[T] { return ConstFlatIter[T]{it.it.Add(n)} }

// Sub returns the iterator moved back by n elements.
func (it ConstFlatIter[T]) Sub(n int) ConstFlatIter[T] { return ConstFlatIter[T]{it.it.Sub(n)} }

// Advance moves the iterator by n elements in place.
func (it *ConstFlatIter[T]) Advance(n int) { it.it.i += n }

// Distance returns the number of elements from other to it.
func (it ConstFlatIter[T]) Distance(other ConstFlatIter[T]) int { return it.it.i - other.it.i }

// Equal reports whether both iterators are at the same element.
func (it ConstFlatIter[T]) Equal(other ConstFlatIter[T]) bool { return it.it.i == other.it.i }

// Less reports whether it is before other.
func (it ConstFlatIter[T]) Less(other ConstFlatIter[T]) bool { return it.it.i < other.it.i }

// All returns an iterator over the leading dimension yielding each index
// and its view.
//
// Example:
//
//	for i, row := range a.All() {
//	    fmt.Println(i, row.Values())
//	}
func (a *Array[T]) All() iter.Seq2[int, *Array[T]] {
	return func(yield func(int, *Array[T]) bool) {
		for it, end := a.Begin(), a.End(); it.Less(end); it = it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}

// Flat returns an iterator over every element in flat order.
func (a *Array[T]) Flat() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for it, end := a.CFlatBegin(), a.CFlatEnd(); it.Less(end); it = it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}
