package ndarray

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorRowMajor(t *testing.T) {
	a := newTestArray(t, Dims(2, 3), 0, 1, 2, 3, 4, 5)

	var indices [][]int
	var values []float64
	end := End[float64](a)
	for it := Begin[float64](a); !it.Equal(end); it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		indices = append(indices, it.Index())
		values = append(values, v)
	}

	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, indices)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, values)
}

func TestIteratorVisitsEveryElementOnce(t *testing.T) {
	a, err := New[int](NewExtents(Between(-1, 1), Between(2, 5), Size(2)))
	require.NoError(t, err)
	for i := range a.Data() {
		a.Data()[i] = i
	}
	v, err := a.Slice(Range{-1, 1}, Range{3, 5}, Range{0, 2})
	require.NoError(t, err)

	tests := []struct {
		name string
		c    Container[int]
	}{
		{"array", a},
		{"view", v},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[string]bool{}
			var prev []int
			count := 0
			for idx := range All(tt.c) {
				key := fmt.Sprint(idx)
				assert.False(t, seen[key], "index %v visited twice", idx)
				seen[key] = true
				if prev != nil {
					assert.True(t, lessRowMajor(prev, idx), "%v not after %v", idx, prev)
				}
				prev = append(prev[:0], idx...)
				count++
			}
			assert.Equal(t, tt.c.NumElements(), count)
		})
	}
}

func lessRowMajor(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func TestIteratorEndState(t *testing.T) {
	a := newTestArray(t, NewExtents(Between(-1, 1), Size(2)), 0, 1, 2, 3)

	end := End[float64](a)
	assert.True(t, end.Done())
	assert.Equal(t, 1, end.Index()[0], "end is marked by base[0]+size[0]")

	it := Begin[float64](a)
	for i := 0; i < 4; i++ {
		assert.False(t, it.Equal(end))
		it.Next()
	}
	assert.True(t, it.Equal(end))
	assert.True(t, end.Equal(it))

	_, err := it.Value()
	assert.ErrorIs(t, err, ErrIteratorEnd)
	assert.ErrorIs(t, it.Set(1), ErrIteratorEnd)
	_, err = it.Ptr()
	assert.ErrorIs(t, err, ErrIteratorEnd)

	it.Next()
	assert.True(t, it.Done())
}

func TestIteratorEquality(t *testing.T) {
	a := newTestArray(t, Dims(2, 2), 0, 1, 2, 3)

	x, y := Begin[float64](a), Begin[float64](a)
	assert.True(t, x.Equal(y))
	x.Next()
	assert.False(t, x.Equal(y))
	y.Next()
	assert.True(t, x.Equal(y))
}

func TestIteratorSet(t *testing.T) {
	a, err := New[int](Dims(2, 3))
	require.NoError(t, err)
	row, err := a.Reduce(0, 1)
	require.NoError(t, err)

	n := 1
	for it := Begin[int](row); !it.Done(); it.Next() {
		require.NoError(t, it.Set(n))
		n++
	}
	assert.Equal(t, []int{0, 0, 0, 1, 2, 3}, a.Data())
}

func TestIteratorScalarAndEmpty(t *testing.T) {
	a := newTestArray(t, Dims(3), 7, 8, 9)
	s, err := a.Reduce(0, 2)
	require.NoError(t, err)

	it := Begin[float64](s)
	require.False(t, it.Done())
	assert.Empty(t, it.Index())
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
	it.Next()
	assert.True(t, it.Done())

	empty, err := New[float64](Dims(0, 4))
	require.NoError(t, err)
	assert.True(t, Begin[float64](empty).Equal(End[float64](empty)))
}

func TestAllStopsEarly(t *testing.T) {
	a := newTestArray(t, Dims(2, 3), 0, 1, 2, 3, 4, 5)

	var got []float64
	for _, v := range All[float64](a) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []float64{0, 1, 2}, got)
}

func TestIteratorKeepsExtentsAcrossReindex(t *testing.T) {
	a := newTestArray(t, Dims(2, 3), 0, 1, 2, 3, 4, 5)
	stale := Begin[float64](a)

	require.NoError(t, a.Reindex(10, 10))

	assert.Equal(t, []int{0, 0}, stale.Index())
	_, err := stale.Value()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	fresh := Begin[float64](a)
	assert.Equal(t, []int{10, 10}, fresh.Index())
	v, err := fresh.Value()
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}
