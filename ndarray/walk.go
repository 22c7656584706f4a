package ndarray

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// ErrStopWalk can be returned from a WalkFunc to stop walking without an error.
var ErrStopWalk = errors.New("walk stopped")

// WalkFunc is called for each node during traversal.
// path holds the index of the node in each enclosing dimension, using the
// container's index bases; it is empty for the root. n is either a
// sub-container or a scalar. Return nil to continue walking, or an error
// to stop.
type WalkFunc[T any] func(path []int, n Node[T]) error

// Walk traverses c depth-first, calling fn for c itself, then for every
// sub-container and scalar in row-major order.
//
// Example:
//
//	Walk(a, func(path []int, n Node[float64]) error {
//	    if n.IsScalar() {
//	        v, _ := n.Value()
//	        fmt.Println(path, v)
//	    }
//	    return nil
//	})
func Walk[T any](c Container[T], fn WalkFunc[T]) error {
	w := &walker[T]{bases: c.IndexBases(), fn: fn}
	err := w.walk(c, nil)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

type walker[T any] struct {
	bases []int
	fn    WalkFunc[T]
}

func (w *walker[T]) walk(n Node[T], path []int) error {
	if err := w.fn(slices.Clone(path), n); err != nil {
		return err
	}
	if n.IsScalar() {
		return nil
	}
	depth := len(path)
	for i := 0; i < n.Len(); i++ {
		e, err := n.Elem(i)
		if err != nil {
			return err
		}
		if err := w.walk(e, append(path, w.bases[depth]+i)); err != nil {
			return err
		}
	}
	return nil
}
