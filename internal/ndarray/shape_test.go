package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{2, 0, 3}, []int{0, 3, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.ComputeStrides(), "shape %v", tt.shape)
	}
}

func TestShapeCloneAndEqual(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, Shape{2, 3}, s)
	assert.False(t, s.Equal(c))
	assert.True(t, s.Equal(Shape{2, 3}))
	assert.False(t, s.Equal(Shape{2, 3, 1}))

	assert.NotNil(t, Shape(nil).Clone())
	assert.True(t, Shape(nil).Equal(Shape{}))
}

func TestTrailingSharesStrideSuffix(t *testing.T) {
	d := newDescriptor(Shape{2, 3, 4})
	sub := d.trailing(1)
	assert.Equal(t, Shape{3, 4}, sub.dims)
	assert.Equal(t, []int{4, 1}, sub.strides)
	assert.Equal(t, 12, sub.size)
	assert.Same(t, &d.strides[1], &sub.strides[0])
}
