package ndarray

// UnaryOp is an element-wise functor usable in a Unary expression.
// ApplyLanes writes op(x[j]) to dst[j] for every lane; x may alias dst.
type UnaryOp[T Elem] interface {
	Apply(x T) T
	ApplyLanes(dst, x []T)
}

// BinaryOp is an element-wise functor usable in a Binary expression.
// ApplyLanes writes op(x[j], y[j]) to dst[j]; x may alias dst.
type BinaryOp[T Elem] interface {
	Apply(x, y T) T
	ApplyLanes(dst, x, y []T)
}

// UnaryFunc adapts a scalar function to UnaryOp with a per-lane loop.
type UnaryFunc[T Elem] func(T) T

// Apply calls f.
func (f UnaryFunc[T]) Apply(x T) T { return f(x) }

// ApplyLanes calls f for every lane.
func (f UnaryFunc[T]) ApplyLanes(dst, x []T) {
	for j := range dst {
		dst[j] = f(x[j])
	}
}

// BinaryFunc adapts a scalar function to BinaryOp with a per-lane loop.
type BinaryFunc[T Elem] func(T, T) T

// Apply calls f.
func (f BinaryFunc[T]) Apply(x, y T) T { return f(x, y) }

// ApplyLanes calls f for every lane.
func (f BinaryFunc[T]) ApplyLanes(dst, x, y []T) {
	for j := range dst {
		dst[j] = f(x[j], y[j])
	}
}

// Plus is element-wise addition.
type Plus[T Elem] struct{}

func (Plus[T]) Apply(x, y T) T { return x + y }

func (Plus[T]) ApplyLanes(dst, x, y []T) {
	y = y[:len(dst)]
	x = x[:len(dst)]
	for j := range dst {
		dst[j] = x[j] + y[j]
	}
}

// Minus is element-wise subtraction.
type Minus[T Elem] struct{}

func (Minus[T]) Apply(x, y T) T { return x - y }

func (Minus[T]) ApplyLanes(dst, x, y []T) {
	y = y[:len(dst)]
	x = x[:len(dst)]
	for j := range dst {
		dst[j] = x[j] - y[j]
	}
}

// Times is element-wise multiplication.
type Times[T Elem] struct{}

func (Times[T]) Apply(x, y T) T { return x * y }

func (Times[T]) ApplyLanes(dst, x, y []T) {
	y = y[:len(dst)]
	x = x[:len(dst)]
	for j := range dst {
		dst[j] = x[j] * y[j]
	}
}

// Negate is element-wise negation. Unsigned types wrap around.
type Negate[T Elem] struct{}

func (Negate[T]) Apply(x T) T { return -x }

func (Negate[T]) ApplyLanes(dst, x []T) {
	x = x[:len(dst)]
	for j := range dst {
		dst[j] = -x[j]
	}
}

// Add builds a + b.
//
// Example:
//
//	b := ndarray.Materialize(ndarray.Add(a, a))
func Add[T Elem](a, b Expr[T]) *Binary[T] { return Combine[T](Plus[T]{}, a, b) }

// Sub builds a - b.
func Sub[T Elem](a, b Expr[T]) *Binary[T] { return Combine[T](Minus[T]{}, a, b) }

// Mul builds a * b.
func Mul[T Elem](a, b Expr[T]) *Binary[T] { return Combine[T](Times[T]{}, a, b) }

// Neg builds -a.
func Neg[T Elem](a Expr[T]) *Unary[T] { return Apply[T](Negate[T]{}, a) }

// AddScalar builds a + c with c broadcast.
func AddScalar[T Elem](a Expr[T], c T) *Binary[T] { return Add[T](a, Scalar(c)) }

// ScalarAdd builds c + a with c broadcast.
func ScalarAdd[T Elem](c T, a Expr[T]) *Binary[T] { return Add[T](Scalar(c), a) }

// MulScalar builds a * c with c broadcast.
func MulScalar[T Elem](a Expr[T], c T) *Binary[T] { return Mul[T](a, Scalar(c)) }
