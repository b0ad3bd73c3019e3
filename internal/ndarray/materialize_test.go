package ndarray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numcore/internal/parallel"
	"github.com/born-ml/numcore/internal/simd"
)

func parallelTestConfig() parallel.Config {
	return parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16, Threshold: 64}
}

// widths runs f once per lane configuration, including scalar mode.
func widths(t *testing.T, f func(t *testing.T)) {
	for _, w := range []struct {
		level simd.Level
		bytes int
	}{{simd.Scalar, 0}, {simd.SSE2, 16}, {simd.AVX, 32}, {simd.AVX512, 64}} {
		t.Run(w.level.String(), func(t *testing.T) {
			restore := simd.Force(w.level, w.bytes)
			defer restore()
			f(t)
		})
	}
}

func TestMaterializeResultIsFreshOwner(t *testing.T) {
	a := arange(6)
	b := Materialize(AddScalar(a, 1))

	assert.True(t, b.IsFullOwner())
	assert.Equal(t, Shape{6}, b.Shape())
	assert.Equal(t, 1, b.Buffer().RefCount())
	assert.NotEqual(t, a.Addr(), b.Addr())
	assert.Zero(t, b.Addr()%uintptr(simd.Alignment()))
}

func TestMaterializeArrayIsDeepCopy(t *testing.T) {
	a := arange(2, 2)
	b := Materialize[float64](a)
	b.Set(-1, 0)
	assert.Equal(t, 0.0, a.Get(0, 0))
	assert.Equal(t, []float64{-1, 1, 2, 3}, b.Values())
}

func TestBroadcastCorrectness(t *testing.T) {
	widths(t, func(t *testing.T) {
		for _, n := range []int{1, 7, 33, 100} {
			a := arange(n)
			c := 2.5
			b := Materialize(AddScalar(a, c))
			require.Equal(t, n, b.Size())
			for i := range n {
				assert.Equal(t, a.Get(i)+c, b.Get(i), "n=%d i=%d", n, i)
			}
		}
	})
}

func TestVectorScalarConsistency(t *testing.T) {
	widths(t, func(t *testing.T) {
		lane := simd.Width[float64]()
		for _, n := range []int{lane, lane - 1, lane + 1, 3*lane + 1} {
			if n == 0 {
				continue
			}
			a := arange(n)
			b := Materialize(Neg(a))
			for i := range n {
				assert.Equal(t, -a.Get(i), b.Get(i), "lane=%d n=%d i=%d", lane, n, i)
			}
		}
	})
}

func TestMaterializeNestedLaneBlocks(t *testing.T) {
	widths(t, func(t *testing.T) {
		a := arange(37)
		b := New[float64](37)
		for i := range b.Data() {
			b.Data()[i] = float64(100 * i)
		}
		e := Add(Neg(a), Add(b, Mul(a, Scalar(3.0))))

		got := Materialize(e).Values()
		want := make([]float64, 37)
		for i := range want {
			want[i] = -float64(i) + 100*float64(i) + 3*float64(i)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("nested expression mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMaterializeParallelChunks(t *testing.T) {
	cfg := ParallelConfig()
	defer SetParallelConfig(cfg)
	SetParallelConfig(parallelTestConfig())

	widths(t, func(t *testing.T) {
		n := 4099
		a := arange(n)
		got := Materialize(Add(a, ScalarAdd(1.0, a))).Values()
		for i, v := range got {
			require.Equal(t, 2*float64(i)+1, v, "index %d", i)
		}
	})
}

func TestMaterializeEmpty(t *testing.T) {
	e := Add[float64](Scalar(1.0), Scalar(2.0))
	b := Materialize[float64](e)
	assert.Zero(t, b.Size())
	assert.True(t, b.IsFullOwner())
}

func TestTryMaterialize(t *testing.T) {
	a, b := arange(4), arange(3)

	got, err := TryMaterialize(Add(a, a))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6}, got.Values())

	_, err = TryMaterialize(Add(a, b))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	assert.Panics(t, func() { Materialize(Add(a, b)) },
		"mismatched operands overrun the shorter one")
}

func TestEndToEnd(t *testing.T) {
	a, err := FromSliceShape([]float64{1, 2, 3, 4}, 4)
	require.NoError(t, err)

	b := Materialize(Neg(a))
	assert.Equal(t, []float64{-1, -2, -3, -4}, b.Values())

	b.AssignExpr(Add(a, a))
	assert.Equal(t, []float64{2, 4, 6, 8}, b.Values())
}
