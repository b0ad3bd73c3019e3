// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernels_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/numcore/kernels"
	"github.com/born-ml/numcore/ndarray"
)

func TestFunctorsSatisfyUnaryOp(_ *testing.T) {
	var _ ndarray.UnaryOp[float64] = kernels.SinOp[float64]{}
	var _ ndarray.UnaryOp[float32] = kernels.CosOp[float32]{}
	var _ ndarray.UnaryOp[float64] = kernels.ExpOp[float64]{}
	var _ ndarray.UnaryOp[float32] = kernels.SqrtOp[float32]{}
	var _ ndarray.UnaryOp[int16] = kernels.AbsOp[int16]{}
}

func TestPublicKernels(t *testing.T) {
	x := ndarray.FromSlice([]float64{0, math.Pi / 6, math.Pi / 2, 1})

	s := ndarray.Materialize(kernels.Sin(x)).Values()
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, math.Sin(1)}, s, 1e-12)

	e := ndarray.Materialize(kernels.Exp(ndarray.Neg(x))).Values()
	for i, v := range x.Data() {
		assert.InDelta(t, math.Exp(-v), e[i], 1e-12)
	}

	q, r := kernels.RemPio2(math.Pi)
	assert.Equal(t, 2, q)
	assert.InDelta(t, 0, r, 1e-15)
}
