package ndarray

// Array is an N-dimensional dense array that owns a contiguous row-major
// buffer. Element (i0, ..., iD-1) lives at offset sum((ik-base[k])*stride[k])
// with the last dimension varying fastest.
//
// Views derived from an Array share its buffer. After Release every view
// and iterator derived from the array reports ErrReleased.
type Array[T any] struct {
	core[T]
}

// New creates an array with the given extents. Elements start at the zero
// value of T. The extents are copied.
func New[T any](ext Extents) (*Array[T], error) {
	if err := ext.Validate(); err != nil {
		return nil, err
	}
	ext = ext.Clone()
	if ext == nil {
		ext = Extents{}
	}
	l := newLayout(ext)
	return &Array[T]{core[T]{
		st:     &storage[T]{data: make([]T, l.n)},
		layout: l,
	}}, nil
}

// Assign copies src into the buffer in row-major order. len(src) must
// equal NumElements; on mismatch the array is left untouched.
func (a *Array[T]) Assign(src []T) error {
	if err := a.st.live(); err != nil {
		return err
	}
	if len(src) != a.n {
		return sizeMismatch(a.n, len(src))
	}
	copy(a.st.data, src)
	return nil
}

// AssignNested flattens a nested source (slices or arrays of any depth,
// including []any trees) and assigns it like Assign. Leaves must be
// convertible to T.
func (a *Array[T]) AssignNested(src any) error {
	if err := a.st.live(); err != nil {
		return err
	}
	values, _, err := flatten[T](src)
	if err != nil {
		return err
	}
	return a.Assign(values)
}

// Reindex replaces the index base of every dimension. Sizes and data
// layout are unchanged; views already derived keep their own bases.
func (a *Array[T]) Reindex(bases ...int) error {
	if err := a.st.live(); err != nil {
		return err
	}
	ext, err := a.ext.WithBases(bases...)
	if err != nil {
		return err
	}
	a.ext = ext
	return nil
}

// Data returns the owned buffer in row-major order. The slice aliases the
// array's storage; it is nil after Release.
func (a *Array[T]) Data() []T {
	return a.st.data
}

// Release ends the array's lifetime and drops its buffer.
func (a *Array[T]) Release() {
	a.st.released = true
	a.st.data = nil
}

// Released reports whether Release has been called.
func (a *Array[T]) Released() bool {
	return a.st.released
}
