package ndarray

import "github.com/born-ml/numcore/internal/simd"

// Expr is an unevaluated element-wise expression.
//
// Building an expression does no arithmetic and allocates no element
// storage; Materialize (or Array.AssignExpr) evaluates it. Arrays are Exprs
// too, and are hoisted to their raw element window when used as operands.
//
// Operands must stay alive and unmodified until the statement that
// materializes the expression finishes.
type Expr[T Elem] interface {
	// Size is the number of elements the expression produces. A size of 0
	// means the operand broadcasts to whatever it is combined with.
	Size() int

	// ElemAt returns element i.
	ElemAt(i int) T

	// LoadLanes returns the len(dst) elements starting at the lane-aligned
	// index i. The result is either dst or a slice the expression owns and
	// must not be written to. scratch holds at least
	// ScratchLanes()*len(dst) elements the expression may use.
	LoadLanes(i int, dst, scratch []T) []T

	// ScratchLanes returns how many lane blocks of scratch LoadLanes needs.
	ScratchLanes() int

	// Compatible reports whether every non-broadcast operand produces
	// exactly n elements.
	Compatible(n int) bool
}

// operand hoists arrays to their element window so the expression no longer
// goes through the array's shared handles.
func operand[T Elem](e Expr[T]) Expr[T] {
	if a, ok := e.(*Array[T]); ok {
		return leaf[T]{data: a.Data()}
	}
	return e
}

// leaf is an array operand reduced to its raw element window.
type leaf[T Elem] struct {
	data []T
}

func (l leaf[T]) Size() int { return len(l.data) }

func (l leaf[T]) ElemAt(i int) T { return l.data[i] }

func (l leaf[T]) ScratchLanes() int { return 0 }

func (l leaf[T]) Compatible(n int) bool { return len(l.data) == n }

func (l leaf[T]) LoadLanes(i int, dst, _ []T) []T {
	return simd.Load(l.data[i:], len(dst))
}

// Broadcast is a scalar operand repeated as often as needed.
type Broadcast[T Elem] struct {
	value T
}

// Scalar wraps v as a broadcast operand.
func Scalar[T Elem](v T) *Broadcast[T] {
	return &Broadcast[T]{value: v}
}

// Value returns the broadcast scalar.
func (b *Broadcast[T]) Value() T { return b.value }

// Size returns 0: a broadcast operand imposes no size.
func (b *Broadcast[T]) Size() int { return 0 }

// ElemAt returns the scalar for every i.
func (b *Broadcast[T]) ElemAt(int) T { return b.value }

// LoadLanes fills dst with the scalar and returns it.
func (b *Broadcast[T]) LoadLanes(_ int, dst, _ []T) []T {
	simd.Broadcast(dst, b.value)
	return dst
}

// ScratchLanes returns 0.
func (b *Broadcast[T]) ScratchLanes() int { return 0 }

// Compatible returns true: a scalar matches any size.
func (b *Broadcast[T]) Compatible(int) bool { return true }

// Unary applies Op to every element of one operand.
type Unary[T Elem] struct {
	op UnaryOp[T]
	a  Expr[T]
}

// Size returns the operand's size.
func (u *Unary[T]) Size() int { return u.a.Size() }

// ElemAt returns Op(a[i]).
func (u *Unary[T]) ElemAt(i int) T { return u.op.Apply(u.a.ElemAt(i)) }

// LoadLanes computes Op over one lane block into dst.
func (u *Unary[T]) LoadLanes(i int, dst, scratch []T) []T {
	x := u.a.LoadLanes(i, dst, scratch)
	u.op.ApplyLanes(dst, x)
	return dst
}

// ScratchLanes returns the operand's scratch need.
func (u *Unary[T]) ScratchLanes() int { return u.a.ScratchLanes() }

// Compatible checks the operand.
func (u *Unary[T]) Compatible(n int) bool { return u.a.Compatible(n) }

// Binary applies Op pairwise to two operands.
// Its size is the larger of the two, which stretches a broadcast operand
// (size 0) to the other side. Sizes are otherwise not validated here; see
// TryMaterialize.
type Binary[T Elem] struct {
	op   BinaryOp[T]
	a, b Expr[T]
	size int
}

// Size returns max(size(a), size(b)).
func (n *Binary[T]) Size() int { return n.size }

// ElemAt returns Op(a[i], b[i]).
func (n *Binary[T]) ElemAt(i int) T { return n.op.Apply(n.a.ElemAt(i), n.b.ElemAt(i)) }

// LoadLanes computes Op over one lane block into dst. The left operand is
// evaluated first with the whole scratch; the right one then lands in the
// first scratch block and uses the rest.
func (n *Binary[T]) LoadLanes(i int, dst, scratch []T) []T {
	w := len(dst)
	x := n.a.LoadLanes(i, dst, scratch)
	y := n.b.LoadLanes(i, scratch[:w:w], scratch[w:])
	n.op.ApplyLanes(dst, x, y)
	return dst
}

// ScratchLanes returns the scratch need of the deeper side, counting the
// block holding the right operand.
func (n *Binary[T]) ScratchLanes() int {
	return max(n.a.ScratchLanes(), 1+n.b.ScratchLanes())
}

// Compatible checks both operands.
func (n *Binary[T]) Compatible(size int) bool {
	return n.a.Compatible(size) && n.b.Compatible(size)
}

// Apply builds the expression op(a) without evaluating it.
func Apply[T Elem](op UnaryOp[T], a Expr[T]) *Unary[T] {
	return &Unary[T]{op: op, a: operand(a)}
}

// Combine builds the expression op(a, b) without evaluating it.
func Combine[T Elem](op BinaryOp[T], a, b Expr[T]) *Binary[T] {
	a, b = operand(a), operand(b)
	return &Binary[T]{op: op, a: a, b: b, size: max(a.Size(), b.Size())}
}

var _ Expr[float64] = (*Array[float64])(nil)

// ElemAt returns element i in flat order.
func (a *Array[T]) ElemAt(i int) T { return a.Data()[i] }

// LoadLanes returns the len(dst) elements starting at flat index i.
func (a *Array[T]) LoadLanes(i int, dst, _ []T) []T {
	return simd.Load(a.Data()[i:], len(dst))
}

// ScratchLanes returns 0.
func (a *Array[T]) ScratchLanes() int { return 0 }

// Compatible reports whether the array holds exactly n elements.
func (a *Array[T]) Compatible(n int) bool { return a.Size() == n }
