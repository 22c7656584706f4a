package ndarray

// View is a non-owning window onto an Array's buffer: an offset, its own
// extents and the owner's strides. Views are produced by Select, Slice and
// Reduce on arrays or other views and behave like an Array of the same
// shape. A rank-0 view is a single element.
type View[T any] struct {
	core[T]
}

// Valid reports whether the owning array is still alive.
func (v *View[T]) Valid() bool {
	return v.st.live() == nil
}
