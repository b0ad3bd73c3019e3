package ndarray

// Assign gives a the contents of src.
//
// If a is a view, src's elements are copied into the region a views; a
// keeps its buffer, offset and shape. Element counts are not validated:
// min(a.Size(), src.Size()) elements are copied.
//
// If a is a full owner, a is rebound to src's buffer, offset and shape
// (shared, not copied) and a's previous buffer is released.
func (a *Array[T]) Assign(src *Array[T]) {
	if a == src {
		return
	}
	if a.view {
		copy(a.Data(), src.Data())
		return
	}
	if src.buf != nil {
		src.buf.Retain()
	}
	a.rebind(src)
}

// AssignMove is Assign taking src's handles. When a is a full owner, src is
// left empty; when a is a view, the elements are copied and src is kept.
func (a *Array[T]) AssignMove(src *Array[T]) {
	if a == src {
		return
	}
	if a.view {
		copy(a.Data(), src.Data())
		return
	}
	a.rebind(src)
	*src = Array[T]{}
}

// rebind replaces a's handles with src's, releasing a's old buffer. The
// caller accounts for src's reference.
func (a *Array[T]) rebind(src *Array[T]) {
	old := a.buf
	a.buf, a.off, a.desc, a.view = src.buf, src.off, src.desc, src.view
	if old != nil {
		old.Release()
	}
}

// AssignExpr materializes e into a fresh buffer and rebinds a to it. This
// happens for views and owners alike; afterwards a is a rank-1 full owner
// of e.Size() elements.
func (a *Array[T]) AssignExpr(e Expr[T]) {
	a.rebind(Materialize(e))
}
