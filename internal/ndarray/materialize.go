package ndarray

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/born-ml/numcore/internal/buffer"
	"github.com/born-ml/numcore/internal/parallel"
	"github.com/born-ml/numcore/internal/simd"
)

var config atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	config.Store(&cfg)
}

// ParallelConfig returns the configuration materialization and fills use to
// split work across goroutines.
func ParallelConfig() parallel.Config {
	return *config.Load()
}

// SetParallelConfig replaces the engine-wide parallel configuration.
func SetParallelConfig(cfg parallel.Config) {
	config.Store(&cfg)
}

// Materialize evaluates e into a new owning rank-1 array of e.Size()
// elements. Passing an array makes a deep copy of it.
//
// The first Size()/lanes*lanes elements are computed a lane block at a time,
// split across goroutines when there are more than the configured threshold;
// the remainder goes through the scalar path. The result buffer is fresh,
// so operands never overlap it.
//
// Operand sizes are not validated: an operand shorter than the expression
// panics with an index out of range. Use TryMaterialize to get an error.
func Materialize[T Elem](e Expr[T]) *Array[T] {
	e = operand(e)
	n := e.Size()
	buf := buffer.Allocate[T](n)
	evaluate(e, buf.Data(), ParallelConfig())
	return owner(buf, Shape{n})
}

// TryMaterialize is Materialize with the operand sizes checked first. It
// returns ErrShapeMismatch if any non-broadcast operand does not produce
// exactly Size() elements.
func TryMaterialize[T Elem](e Expr[T]) (*Array[T], error) {
	e = operand(e)
	if n := e.Size(); !e.Compatible(n) {
		return nil, errors.Wrapf(ErrShapeMismatch, "operands do not broadcast to %d elements", n)
	}
	return Materialize(e), nil
}

// evaluate writes e[i] to dst[i] for every i in [0, len(dst)).
func evaluate[T Elem](e Expr[T], dst []T, cfg parallel.Config) {
	n := len(dst)
	lanes := simd.Width[T]()
	bound := simd.Bound(n, lanes)

	parallel.Range(bound, lanes, func(lo, hi int) {
		if lanes == 1 {
			for i := lo; i < hi; i++ {
				dst[i] = e.ElemAt(i)
			}
			return
		}
		scratch := make([]T, lanes*e.ScratchLanes())
		for i := lo; i < hi; i += lanes {
			block := dst[i : i+lanes : i+lanes]
			if v := e.LoadLanes(i, block, scratch); &v[0] != &block[0] {
				simd.Store(block, v)
			}
		}
	}, cfg)

	for i := bound; i < n; i++ {
		dst[i] = e.ElemAt(i)
	}
}
