package ndarray

import "github.com/cockroachdb/errors"

// ExtentsOf returns the current (base, size) pairs of c. The result has
// c's rank, so a reduced sub-array yields one entry fewer than its source.
// Pass it to New to build an array of identical shape and bases.
func ExtentsOf[T any](c Container[T]) Extents {
	return c.Extents()
}

// NewLike creates a zero-filled array with the extents of c.
func NewLike[T any](c Container[T]) (*Array[T], error) {
	return New[T](ExtentsOf(c))
}

// FromSlice creates a zero-based 1-D array holding a copy of values.
func FromSlice[T any](values []T) *Array[T] {
	a, _ := New[T](Dims(len(values)))
	copy(a.st.data, values)
	return a
}

// FromRows creates a zero-based 2-D array from a rectangular list of rows.
func FromRows[T any](rows [][]T) (*Array[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != cols {
			return nil, errors.Wrapf(ErrSizeMismatch, "row %d has %d elements, row 0 has %d", i, len(r), cols)
		}
	}
	a, err := New[T](Dims(len(rows), cols))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		copy(a.st.data[i*cols:], r)
	}
	return a, nil
}

// FromNested creates a zero-based array from a rectangular nested source
// of any depth, inferring the shape from the nesting.
func FromNested[T any](src any) (*Array[T], error) {
	values, shape, err := flatten[T](src)
	if err != nil {
		return nil, err
	}
	a, err := New[T](Dims(shape...))
	if err != nil {
		return nil, err
	}
	if err := a.Assign(values); err != nil {
		return nil, err
	}
	return a, nil
}

// Clone copies the elements of c into a new array with the same extents.
func Clone[T any](c Container[T]) (*Array[T], error) {
	dst, err := NewLike(c)
	if err != nil {
		return nil, err
	}
	var src *core[T]
	switch v := c.(type) {
	case *Array[T]:
		src = &v.core
	case *View[T]:
		src = &v.core
	}
	if src == nil {
		i := 0
		for _, x := range All(c) {
			dst.st.data[i] = x
			i++
		}
		return dst, nil
	}
	if err := src.st.live(); err != nil {
		return nil, err
	}
	if dst.n == 0 {
		return dst, nil
	}
	copyStrided(dst.st.data, src.st.data, src.ext, src.strides, dst.strides, src.offset, 0, 0)
	return dst, nil
}

// copyStrided copies the region described by ext and srcStrides into a
// contiguous row-major destination, one dimension per recursion level.
func copyStrided[T any](dst, src []T, ext Extents, srcStrides, dstStrides []int, srcOff, dstOff, dim int) {
	if len(ext) == 0 {
		dst[dstOff] = src[srcOff]
		return
	}
	n := ext[dim].Size
	if dim == len(ext)-1 {
		if srcStrides[dim] == 1 {
			copy(dst[dstOff:dstOff+n], src[srcOff:srcOff+n])
			return
		}
		for i := 0; i < n; i++ {
			dst[dstOff+i] = src[srcOff+i*srcStrides[dim]]
		}
		return
	}
	for i := 0; i < n; i++ {
		copyStrided(dst, src, ext, srcStrides, dstStrides,
			srcOff+i*srcStrides[dim], dstOff+i*dstStrides[dim], dim+1)
	}
}
