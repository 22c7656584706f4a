package ndarray

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	a := newTestArray(t, Dims(2, 3), 0, 1, 2, 3, 4, 5)
	b := newTestArray(t, NewExtents(Size(2), Between(1, 4)), 0, 1, 2, 3, 4, 5)
	cube, err := New[int](Dims(2, 2, 2))
	require.NoError(t, err)
	require.NoError(t, cube.Assign([]int{0, 1, 2, 3, 4, 5, 6, 7}))
	vec := FromSlice([]int{4, 4, 5})

	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"matrix", func() (string, error) { return Format[float64](a) }, "[[0,  1,  2],\n [3,  4,  5]]"},
		{"bases do not matter", func() (string, error) { return Format[float64](b) }, "[[0,  1,  2],\n [3,  4,  5]]"},
		{"compact", func() (string, error) { return Format[float64](a, WithCompact()) }, "[[0,1,2],[3,4,5]]"},
		{"vector", func() (string, error) { return Format[int](vec) }, "[4, 4, 5]"},
		{"cube", func() (string, error) { return Format[int](cube) }, "[[[0,   1],\n  [2,   3]],\n\n [[4,   5],\n  [6,   7]]]"},
		{"verb", func() (string, error) { return Format[float64](a, WithVerb("%.1f"), WithCompact()) }, "[[0.0,1.0,2.0],[3.0,4.0,5.0]]"},
		{"scalar", func() (string, error) { return Format[int](ScalarOf(3)) }, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatViews(t *testing.T) {
	a := newTestArray(t, Dims(2, 3), 0, 1, 2, 3, 4, 5)

	row, err := a.Reduce(0, 0)
	require.NoError(t, err)
	got, err := Format[float64](row)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 2]", got)

	v, err := a.Select(Index(1), Interval(1, 3))
	require.NoError(t, err)
	got, err = Format[float64](v)
	require.NoError(t, err)
	assert.Equal(t, "[4, 5]", got)

	cols, err := a.Slice(Range{0, 2}, Range{1, 3})
	require.NoError(t, err)
	got, err = Format[float64](cols, WithCompact())
	require.NoError(t, err)
	assert.Equal(t, "[[1,2],[4,5]]", got)
}

func TestFprint(t *testing.T) {
	a := newTestArray(t, Dims(2, 3), 0, 1, 2, 3, 4, 5)

	var buf bytes.Buffer
	require.NoError(t, Fprint[float64](&buf, a, WithCompact()))
	assert.Equal(t, "[[0,1,2],[3,4,5]]\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFprintErrors(t *testing.T) {
	a := newTestArray(t, Dims(2), 0, 1)

	assert.EqualError(t, Fprint[float64](failingWriter{}, a), "disk full")

	a.Release()
	var buf bytes.Buffer
	assert.ErrorIs(t, Fprint[float64](&buf, a), ErrReleased)
	assert.Empty(t, buf.String())
}
