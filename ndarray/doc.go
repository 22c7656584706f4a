// Package ndarray provides N-dimensional dense arrays with arbitrary
// per-dimension index bases, views that alias an array's storage, a flat
// row-major iterator and recursive algorithms over arrays and views.
//
// # Arrays and extents
//
// An [Array] owns a contiguous row-major buffer. Its shape and index bases
// are described by [Extents], one [Extent] (base, size) per dimension:
//
//	a, err := ndarray.New[float64](ndarray.NewExtents(ndarray.Size(2), ndarray.Between(1, 4)))
//	err = a.Assign([]float64{0, 1, 2, 3, 4, 5})
//	v, err := a.At(1, 3) // 5
//
// [ExtentsOf] reads the extents back off any array or view so that a new
// array of identical shape and bases can be created with [New] or
// [NewLike]. [Array.Reindex] relabels the bases without moving data.
//
// # Views
//
// [Array.Select], [Array.Slice] and [Array.Reduce] (and the same methods
// on [View]) derive views that share the array's buffer. An [Index]
// selector drops its dimension, an [Interval] keeps it re-based at the
// interval's lower bound:
//
//	row, err := a.Reduce(0, 0)                                     // rank 1
//	v, err := a.Select(ndarray.Index(1), ndarray.Interval(2, 4))  // rank 1, base 2
//
// Views never outlive the data they alias: after [Array.Release] every
// derived view and iterator reports [ErrReleased].
//
// # Iteration
//
// [Begin] and [End] return a flat [Iterator] that walks the container in
// row-major order exposing the multi-index; [All] offers the same
// traversal as a range-over-func sequence.
//
// # Recursive algorithms
//
// A container of rank r is a sequence of rank r-1 containers, and a rank 0
// container is a scalar. The [Node] interface captures this, and
// [Fprint], [Format], [Sum] and [Walk] recurse over it, so they behave the
// same on arrays, views and reduced sub-arrays.
//
// # Errors
//
// Invalid extents, element count mismatches and out-of-range indices are
// reported as [ErrInvalidExtent], [ErrSizeMismatch] and
// [ErrIndexOutOfRange]; test for them with errors.Is. Failed mutations
// leave the array unchanged.
package ndarray
