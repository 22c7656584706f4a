package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtentsOfRoundTrip(t *testing.T) {
	a := newTestArray(t, NewExtents(Size(2), Between(1, 4)), 0, 1, 2, 3, 4, 5)
	sub, err := a.Reduce(0, 1)
	require.NoError(t, err)
	view, err := a.Slice(Range{1, 2}, Range{2, 4})
	require.NoError(t, err)

	tests := []struct {
		name string
		c    Container[float64]
	}{
		{"array", a},
		{"sub-array", sub},
		{"view", view},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := ExtentsOf(tt.c)
			assert.Equal(t, tt.c.Rank(), ext.Rank())

			b, err := New[float64](ext)
			require.NoError(t, err)
			assert.Equal(t, tt.c.Shape(), b.Shape())
			assert.Equal(t, tt.c.IndexBases(), b.IndexBases())

			like, err := NewLike(tt.c)
			require.NoError(t, err)
			assert.True(t, like.Extents().Equal(ext))
		})
	}
}

func TestFromSlice(t *testing.T) {
	src := []int{4, 4, 5}
	a := FromSlice(src)
	src[0] = 0

	assert.Equal(t, []int{3}, a.Shape())
	assert.Equal(t, []int{4, 4, 5}, a.Data())
}

func TestFromRows(t *testing.T) {
	a, err := FromRows([][]int{{6, 7, 8}, {9, 10, 11}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11}, a.Data())

	_, err = FromRows([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrSizeMismatch)

	empty, err := FromRows[int](nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, empty.Shape())
}

func TestFromNested(t *testing.T) {
	a, err := FromNested[float32]([][][]int{
		{{1, 2}, {3, 4}, {5, 6}},
		{{7, 8}, {9, 10}, {11, 12}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2}, a.Shape())
	v, err := a.At(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(11), v)

	s, err := FromNested[int](5)
	require.NoError(t, err)
	assert.True(t, s.IsScalar())

	tests := []struct {
		name string
		src  any
		want error
	}{
		{"ragged rows", [][]int{{1, 2}, {3}}, ErrSizeMismatch},
		{"scalar among rows", []any{[]any{1, 2}, 3}, ErrSizeMismatch},
		{"row among scalars", []any{1, []any{2, 3}}, ErrSizeMismatch},
		{"strings", []string{"x"}, ErrElementType},
		{"nil leaf", []any{1, nil}, ErrElementType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromNested[int](tt.src)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClone(t *testing.T) {
	a, err := New[int](NewExtents(Size(3), Between(1, 5)))
	require.NoError(t, err)
	for i := range a.Data() {
		a.Data()[i] = i
	}

	v, err := a.Select(Interval(1, 3), Interval(2, 4))
	require.NoError(t, err)
	c, err := Clone[int](v)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, c.IndexBases())
	assert.Equal(t, []int{5, 6, 9, 10}, c.Data())

	require.NoError(t, c.Set(100, 1, 2))
	x, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, x, "clone must not alias its source")

	col, err := a.Reduce(1, 4)
	require.NoError(t, err)
	cc, err := Clone[int](col)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 11}, cc.Data())

	s, err := a.Select(Index(2), Index(1))
	require.NoError(t, err)
	sc, err := Clone[int](s)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, sc.Data())
}
