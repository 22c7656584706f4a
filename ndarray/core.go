package ndarray

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// storage is the buffer owned by an Array and shared by pointer with every
// view and iterator derived from it.
type storage[T any] struct {
	data     []T
	released bool
}

func (s *storage[T]) live() error {
	if s.released {
		return ErrReleased
	}
	return nil
}

// core implements the element access, introspection and selection shared
// by Array and View.
type core[T any] struct {
	st *storage[T]
	layout
}

// Rank returns the number of dimensions.
func (c *core[T]) Rank() int { return len(c.ext) }

// Extents returns a copy of the per-dimension (base, size) pairs.
func (c *core[T]) Extents() Extents { return c.ext.Clone() }

// Shape returns the size of each dimension.
func (c *core[T]) Shape() []int { return c.ext.Shape() }

// IndexBases returns the smallest valid index of each dimension.
func (c *core[T]) IndexBases() []int { return c.ext.Bases() }

// NumElements returns the number of addressable elements.
func (c *core[T]) NumElements() int { return c.n }

// Ptr returns a pointer to the element at idx. Each coordinate must lie in
// its dimension's [base, base+size).
func (c *core[T]) Ptr(idx ...int) (*T, error) {
	if err := c.st.live(); err != nil {
		return nil, err
	}
	off, err := c.offsetOf(idx)
	if err != nil {
		return nil, err
	}
	return &c.st.data[off], nil
}

// At returns the element at idx.
func (c *core[T]) At(idx ...int) (T, error) {
	p, err := c.Ptr(idx...)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set stores v at idx.
func (c *core[T]) Set(v T, idx ...int) error {
	p, err := c.Ptr(idx...)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Select derives a view with one selector per dimension. Index selectors
// drop their dimension; Interval selectors keep it, re-based at the lower
// bound. No elements are copied.
func (c *core[T]) Select(sel ...Selector) (*View[T], error) {
	if err := c.st.live(); err != nil {
		return nil, err
	}
	l, err := c.derive(sel)
	if err != nil {
		return nil, err
	}
	return &View[T]{core[T]{st: c.st, layout: l}}, nil
}

// Slice derives a same-rank view over [Lo, Hi) in every dimension.
func (c *core[T]) Slice(ranges ...Range) (*View[T], error) {
	if len(ranges) != c.Rank() {
		return nil, errors.Wrapf(ErrRankMismatch, "expected %d ranges, got %d", c.Rank(), len(ranges))
	}
	sel := make([]Selector, len(ranges))
	for i, r := range ranges {
		sel[i] = Interval(r.Lo, r.Hi)
	}
	return c.Select(sel...)
}

// Reduce fixes dimension dim to index, returning a view of rank Rank()-1.
func (c *core[T]) Reduce(dim, index int) (*View[T], error) {
	if dim < 0 || dim >= c.Rank() {
		return nil, errors.Wrapf(ErrRankMismatch, "dimension %d not in [0, %d)", dim, c.Rank())
	}
	sel := slices.Repeat([]Selector{All()}, c.Rank())
	sel[dim] = Index(index)
	return c.Select(sel...)
}

// IsScalar reports whether the container has rank 0.
func (c *core[T]) IsScalar() bool { return len(c.ext) == 0 }

// Value returns the single element of a rank-0 container.
func (c *core[T]) Value() (T, error) {
	var zero T
	if !c.IsScalar() {
		return zero, errors.Wrapf(ErrNotScalar, "container has rank %d", c.Rank())
	}
	if err := c.st.live(); err != nil {
		return zero, err
	}
	return c.st.data[c.offset], nil
}

// Len returns the size of the outermost dimension.
func (c *core[T]) Len() int {
	if len(c.ext) == 0 {
		return 0
	}
	return c.ext[0].Size
}

// Elem returns the i-th sub-container along the outermost dimension.
func (c *core[T]) Elem(i int) (Node[T], error) {
	if c.IsScalar() {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "scalar has no element %d", i)
	}
	if i < 0 || i >= c.ext[0].Size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "element %d not in [0, %d)", i, c.ext[0].Size)
	}
	v, err := c.Reduce(0, c.ext[0].Base+i)
	if err != nil {
		return nil, err
	}
	return v, nil
}
