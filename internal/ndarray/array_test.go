package ndarray

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arange returns a row-major array of the given shape filled with 0, 1, ...
func arange(dims ...int) *Array[float64] {
	a := New[float64](dims...)
	for i := range a.Data() {
		a.Data()[i] = float64(i)
	}
	return a
}

func TestNewSizeIsProductOfExtents(t *testing.T) {
	shapes := [][]int{{}, {0}, {5}, {2, 3}, {4, 1, 7}, {2, 2, 2, 2}}
	for _, dims := range shapes {
		a := New[float32](dims...)
		want := 1
		for _, d := range dims {
			want *= d
		}
		assert.Equal(t, want, a.Size(), "shape %v", dims)
		assert.Equal(t, len(dims), a.Rank())
		assert.Equal(t, want, a.Buffer().Cap())
		assert.True(t, a.IsFullOwner())
		assert.Zero(t, a.Offset())
	}
}

func TestNewCopiesShapeArgument(t *testing.T) {
	dims := []int{2, 3}
	a := New[int32](dims...)
	dims[0] = 99
	assert.Equal(t, Shape{2, 3}, a.Shape())
}

func TestNewNegativeExtentPanics(t *testing.T) {
	assert.Panics(t, func() { New[float64](2, -1) })
}

func TestFull(t *testing.T) {
	a := Full[int64](7, 3, 5)
	require.Equal(t, 15, a.Size())
	for _, v := range a.Data() {
		assert.Equal(t, int64(7), v)
	}
}

func TestFullParallelFill(t *testing.T) {
	cfg := ParallelConfig()
	defer SetParallelConfig(cfg)
	SetParallelConfig(parallelTestConfig())

	a := Full(2.5, 5003)
	for i, v := range a.Data() {
		require.Equal(t, 2.5, v, "index %d", i)
	}
}

func TestFromSlice(t *testing.T) {
	src := []float64{1, 2, 3}
	a := FromSlice(src)
	src[0] = 100

	assert.Equal(t, Shape{3}, a.Shape())
	assert.Equal(t, []float64{1, 2, 3}, a.Values())
}

func TestFromSliceShape(t *testing.T) {
	a, err := FromSliceShape([]int32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(6), a.Get(1, 2))

	_, err = FromSliceShape([]int32{1, 2, 3}, 2, 3)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromSliceShape([]int32{}, -1)
	assert.Error(t, err)
}

func TestFromRange(t *testing.T) {
	a := arange(2, 4)
	first := a.CFlatBegin().Add(2)
	last := a.CFlatBegin().Add(6)

	b := FromRange(first, last)
	assert.Equal(t, Shape{4}, b.Shape())
	assert.Equal(t, []float64{2, 3, 4, 5}, b.Values())
	assert.NotSame(t, a.Buffer(), b.Buffer())

	empty := FromRange(last, first)
	assert.Zero(t, empty.Size())
}

func TestWrap(t *testing.T) {
	mem := []float64{1, 2, 3, 4, 5, 6}
	a, err := Wrap(mem, 2, 3)
	require.NoError(t, err)
	assert.True(t, a.IsFullOwner())
	assert.False(t, a.Buffer().Owning())

	a.Set(42, 0, 1)
	assert.Equal(t, 42.0, mem[1])

	a.Release()
	assert.Equal(t, 42.0, mem[1], "foreign memory survives release")

	part, err := Wrap(mem, 2)
	require.NoError(t, err)
	assert.False(t, part.IsFullOwner(), "shape smaller than the memory is a view")

	_, err = Wrap(mem, 7)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestTransform(t *testing.T) {
	a := arange(2, 3)
	b := Transform(a, func(v float64) int32 { return int32(v * 10) })

	assert.Equal(t, Shape{2, 3}, b.Shape())
	assert.Equal(t, []int32{0, 10, 20, 30, 40, 50}, b.Values())
}

func TestTransformOfView(t *testing.T) {
	a := arange(3, 2)
	row := a.At(2)
	b := Transform(row, func(v float64) float64 { return -v })
	assert.Equal(t, []float64{-4, -5}, b.Values())
	assert.Equal(t, 2, b.Buffer().Cap())
}

func TestCopyAliases(t *testing.T) {
	a := arange(4)
	b := a.Copy()

	assert.Equal(t, 2, a.Buffer().RefCount())
	assert.Equal(t, a.Addr(), b.Addr())

	b.Set(99, 0)
	assert.Equal(t, 99.0, a.Get(0))

	b.Release()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 1, a.Buffer().RefCount())
}

func TestMove(t *testing.T) {
	a := arange(4)
	addr := a.Addr()

	b := a.Move()
	assert.True(t, a.IsEmpty())
	assert.Zero(t, a.Size())
	assert.Equal(t, addr, b.Addr())
	assert.Equal(t, 1, b.Buffer().RefCount())
}

func TestReleaseFreesLastHolder(t *testing.T) {
	a := arange(4)
	buf := a.Buffer()
	v := a.At(1)

	a.Release()
	assert.NotNil(t, buf.Data(), "view still holds the buffer")
	assert.Equal(t, 1.0, v.Item())

	v.Release()
	assert.Nil(t, buf.Data())
}

func TestString(t *testing.T) {
	a := New[float32](2, 3)
	assert.Equal(t, "Array[float32][2 3] owner", a.String())
	assert.Equal(t, "Array[float32][3] view", a.At(1).String())
}

func TestLogValue(t *testing.T) {
	var sb strings.Builder
	logger := slog.New(slog.NewTextHandler(&sb, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	a := New[float32](2, 3)
	logger.Info("array", "a", a.At(1))
	assert.Equal(t,
		"level=INFO msg=array a.dtype=float32 a.shape=[3] a.offset=3 a.view=true a.refs=2\n",
		sb.String())

	sb.Reset()
	logger.Info("array", "a", new(Array[int8]))
	assert.Contains(t, sb.String(), "a.empty=true")
}
