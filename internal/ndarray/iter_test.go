package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElemIterRank2(t *testing.T) {
	a := arange(3, 2)
	begin, end := a.Begin(), a.End()

	assert.Equal(t, 3, end.Distance(begin))
	assert.Equal(t, 2, begin.Step())

	var rows [][]float64
	for it := begin; it.Less(end); it = it.Next() {
		rows = append(rows, it.Value().Values())
	}
	assert.Equal(t, [][]float64{{0, 1}, {2, 3}, {4, 5}}, rows)

	it := begin.Add(2)
	assert.Equal(t, []float64{4, 5}, it.Value().Values())
	assert.True(t, it.Sub(2).Equal(begin))
	assert.True(t, end.Prev().Equal(it))

	it.Advance(-1)
	assert.Equal(t, 1, it.Index())
}

func TestElemIterRank1YieldsElements(t *testing.T) {
	a := arange(4)
	for it := a.Begin(); it.Less(a.End()); it = it.Next() {
		*it.Ptr() *= 2
		assert.Equal(t, 0, it.Value().Rank())
	}
	assert.Equal(t, []float64{0, 2, 4, 6}, a.Values())
}

func TestElemIterValueIsView(t *testing.T) {
	a := arange(2, 2)
	row := a.Begin().Next().Value()
	row.Set(9, 0)
	assert.Equal(t, 9.0, a.Get(1, 0))
}

func TestConstElemIter(t *testing.T) {
	a := arange(2, 3)
	var sums []float64
	for it := a.CBegin(); !it.Equal(a.CEnd()); it = it.Next() {
		var s float64
		for _, v := range it.Value().Values() {
			s += v
		}
		sums = append(sums, s)
	}
	assert.Equal(t, []float64{3, 12}, sums)
	assert.Equal(t, 2, a.CEnd().Distance(a.CBegin()))
	assert.Equal(t, 4.0, a.CBegin().Add(1).Value().Get(1))
}

func TestFlatIterIgnoresShape(t *testing.T) {
	a := arange(2, 3)
	begin, end := a.FlatBegin(), a.FlatEnd()
	require.Equal(t, 6, end.Distance(begin))

	for it := begin; it.Less(end); it = it.Next() {
		it.Set(it.Value() + 1)
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Values())

	it := begin.Add(4)
	assert.Equal(t, 5.0, it.Value())
	it.Advance(1)
	assert.Equal(t, 6.0, *it.Ptr())
	assert.True(t, it.Sub(5).Equal(begin))
	assert.True(t, it.Const().Equal(a.CFlatEnd().Prev()))
}

func TestFlatIterOverView(t *testing.T) {
	a := arange(3, 2)
	row := a.At(1)
	var got []float64
	for it := row.CFlatBegin(); it.Less(row.CFlatEnd()); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []float64{2, 3}, got)
}

func TestRangeOverFunc(t *testing.T) {
	a := arange(3, 2)

	var firsts []float64
	for i, row := range a.All() {
		assert.Equal(t, i*2, row.Offset())
		firsts = append(firsts, row.Get(0))
	}
	assert.Equal(t, []float64{0, 2, 4}, firsts)

	var flat []float64
	for _, v := range a.Flat() {
		if v == 4 {
			break
		}
		flat = append(flat, v)
	}
	assert.Equal(t, []float64{0, 1, 2, 3}, flat)
}

func TestRank0Iteration(t *testing.T) {
	s := New[float64]()
	assert.True(t, s.Begin().Equal(s.End()))
	assert.Equal(t, 1, s.FlatEnd().Distance(s.FlatBegin()))
}
