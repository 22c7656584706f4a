package ndarray

import "github.com/cockroachdb/errors"

// Node is the recursive structure the generic algorithms operate on. A
// node of rank r > 0 is an ordered sequence of Len() nodes of rank r-1; a
// node of rank 0 is a scalar.
//
// Arrays, views and Scalar values all implement Node, so Print, Sum and
// Walk work the same on an owning array, a slice of it or a single row.
type Node[T any] interface {
	// Rank returns the number of dimensions; 0 for a scalar.
	Rank() int

	// IsScalar reports whether the node is a single element.
	IsScalar() bool

	// Value returns the element of a scalar node. Containers return ErrNotScalar.
	Value() (T, error)

	// Len returns the number of direct elements (the size of dimension 0).
	Len() int

	// Elem returns the i-th direct element, counting from 0 regardless of
	// the dimension's index base.
	Elem(i int) (Node[T], error)
}

// Container is a Node with bounds and indexed element access. Both *Array
// and *View implement it.
type Container[T any] interface {
	Node[T]

	Extents() Extents
	Shape() []int
	IndexBases() []int
	NumElements() int

	Ptr(idx ...int) (*T, error)
	At(idx ...int) (T, error)
	Set(v T, idx ...int) error

	Select(sel ...Selector) (*View[T], error)
	Slice(ranges ...Range) (*View[T], error)
	Reduce(dim, index int) (*View[T], error)
}

// Scalar wraps a plain value as a rank-0 Node.
type Scalar[T any] struct {
	V T
}

// ScalarOf returns v as a Node.
func ScalarOf[T any](v T) Scalar[T] { return Scalar[T]{V: v} }

func (s Scalar[T]) Rank() int         { return 0 }
func (s Scalar[T]) IsScalar() bool    { return true }
func (s Scalar[T]) Value() (T, error) { return s.V, nil }
func (s Scalar[T]) Len() int          { return 0 }

func (s Scalar[T]) Elem(i int) (Node[T], error) {
	return nil, errors.Wrapf(ErrIndexOutOfRange, "scalar has no element %d", i)
}
