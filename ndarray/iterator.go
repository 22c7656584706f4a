package ndarray

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// Iterator visits every element of a container exactly once in row-major
// order, tracking the current multi-index. It treats the index as a
// mixed-radix odometer whose last digit turns fastest.
//
// The end state is canonical: the first coordinate equals base[0]+size[0].
//
// The iterator captures the container's extents at creation. After
// Array.Reindex an existing iterator keeps walking the old indices: its
// element accessors fail with ErrIndexOutOfRange, or reach a different
// element where an old index falls inside the new range. Create a new
// iterator after reindexing.
type Iterator[T any] struct {
	c   Container[T]
	ext Extents
	idx []int
	end bool
}

// Begin returns an iterator positioned at the first element of c, or at
// the end when c has no elements.
func Begin[T any](c Container[T]) *Iterator[T] {
	it := &Iterator[T]{c: c, ext: c.Extents()}
	it.idx = it.ext.Bases()
	if c.NumElements() == 0 {
		it.toEnd()
	}
	return it
}

// End returns the end iterator of c.
func End[T any](c Container[T]) *Iterator[T] {
	it := &Iterator[T]{c: c, ext: c.Extents()}
	it.idx = it.ext.Bases()
	it.toEnd()
	return it
}

func (it *Iterator[T]) toEnd() {
	it.end = true
	if len(it.idx) > 0 {
		it.idx[0] = it.ext[0].End()
	}
}

// Next advances to the following element. At the end it does nothing.
func (it *Iterator[T]) Next() {
	if it.end {
		return
	}
	d := len(it.idx) - 1
	for d >= 0 && it.idx[d] == it.ext[d].End()-1 {
		it.idx[d] = it.ext[d].Base
		d--
	}
	if d < 0 {
		it.toEnd()
		return
	}
	it.idx[d]++
}

// Done reports whether the iterator is at the end.
func (it *Iterator[T]) Done() bool { return it.end }

// Index returns a copy of the current multi-index.
func (it *Iterator[T]) Index() []int { return slices.Clone(it.idx) }

// Value returns the current element.
func (it *Iterator[T]) Value() (T, error) {
	if it.end {
		var zero T
		return zero, ErrIteratorEnd
	}
	return it.c.At(it.idx...)
}

// Ptr returns a pointer to the current element.
func (it *Iterator[T]) Ptr() (*T, error) {
	if it.end {
		return nil, ErrIteratorEnd
	}
	return it.c.Ptr(it.idx...)
}

// Set stores v at the current element.
func (it *Iterator[T]) Set(v T) error {
	if it.end {
		return errors.Wrap(ErrIteratorEnd, "set")
	}
	return it.c.Set(v, it.idx...)
}

// Equal reports whether it and o are at the same position. All end
// iterators over the same container are equal.
func (it *Iterator[T]) Equal(o *Iterator[T]) bool {
	if it.end || o.end {
		return it.end == o.end
	}
	return slices.Equal(it.idx, o.idx)
}

// All returns the elements of c with their multi-indices in row-major
// order. The yielded index slice is reused between steps: copy it to keep
// it. Iteration stops early if the container's storage is released.
func All[T any](c Container[T]) iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for it := Begin(c); !it.Done(); it.Next() {
			v, err := it.Value()
			if err != nil {
				return
			}
			if !yield(it.idx, v) {
				return
			}
		}
	}
}
