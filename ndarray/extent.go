package ndarray

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Extent is one dimension's index range: valid indices are [Base, Base+Size).
type Extent struct {
	Base int
	Size int
}

// Size returns a zero-based extent holding n indices.
func Size(n int) Extent {
	return Extent{Size: n}
}

// Between returns the extent covering [lo, hi). A reversed range, or one
// whose length does not fit in an int, yields a negative size that
// Validate rejects.
func Between(lo, hi int) Extent {
	return Extent{Base: lo, Size: hi - lo}
}

// End returns one past the last valid index.
func (e Extent) End() int { return e.Base + e.Size }

// Contains reports whether i is a valid index of e.
func (e Extent) Contains(i int) bool {
	return i >= e.Base && i < e.Base+e.Size
}

// Extents is the ordered list of per-dimension extents describing an
// array's shape and index bases. The first entry is the outermost dimension.
type Extents []Extent

// NewExtents returns an Extents holding the given dimensions.
func NewExtents(e ...Extent) Extents {
	return Extents(slices.Clone(e))
}

// Dims returns zero-based extents with the given sizes.
func Dims(sizes ...int) Extents {
	ext := make(Extents, len(sizes))
	for i, n := range sizes {
		ext[i] = Size(n)
	}
	return ext
}

// Rank returns the number of dimensions.
func (x Extents) Rank() int { return len(x) }

// Shape returns the size of each dimension.
func (x Extents) Shape() []int {
	shape := make([]int, len(x))
	for i, e := range x {
		shape[i] = e.Size
	}
	return shape
}

// Bases returns the index base of each dimension.
func (x Extents) Bases() []int {
	bases := make([]int, len(x))
	for i, e := range x {
		bases[i] = e.Base
	}
	return bases
}

// NumElements returns the product of the sizes. A rank-0 descriptor
// describes a single scalar element.
func (x Extents) NumElements() int {
	n := 1
	for _, e := range x {
		if e.Size <= 0 {
			return 0
		}
		n *= e.Size
	}
	return n
}

// Validate checks that every size is non-negative, that every index
// range ends within int, and that the element count and strides fit in
// an int. Zero-sized dimensions are skipped in the count check.
func (x Extents) Validate() error {
	n := 1
	for d, e := range x {
		if e.Size < 0 {
			return errors.Wrapf(ErrInvalidExtent, "dimension %d has negative size %d", d, e.Size)
		}
		if e.Base > 0 && e.Size > math.MaxInt-e.Base {
			return errors.Wrapf(ErrInvalidExtent, "dimension %d: range end %d+%d overflows int", d, e.Base, e.Size)
		}
		if e.Size == 0 {
			continue
		}
		if n > math.MaxInt/e.Size {
			return errors.Wrapf(ErrInvalidExtent, "dimension %d: element count overflows int", d)
		}
		n *= e.Size
	}
	return nil
}

// Strides returns the row-major element strides: the last dimension has
// stride 1 and strides[i] = strides[i+1] * size[i+1].
func (x Extents) Strides() []int {
	if len(x) == 0 {
		return nil
	}
	strides := make([]int, len(x))
	strides[len(x)-1] = 1
	for i := len(x) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * x[i+1].Size
	}
	return strides
}

// WithBases returns a copy of x with the bases replaced. The result must
// still pass Validate.
func (x Extents) WithBases(bases ...int) (Extents, error) {
	if len(bases) != len(x) {
		return nil, rankMismatch(len(x), len(bases))
	}
	out := x.Clone()
	for i, b := range bases {
		out[i].Base = b
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Clone returns an independent copy.
func (x Extents) Clone() Extents {
	return slices.Clone(x)
}

// Equal reports whether x and y have the same bases and sizes.
func (x Extents) Equal(y Extents) bool {
	return slices.Equal(x, y)
}

// String formats the extents one bracket per dimension: a zero-based
// dimension prints as [size], any other as [range(lo,hi)].
func (x Extents) String() string {
	var b strings.Builder
	for _, e := range x {
		if e.Base == 0 {
			fmt.Fprintf(&b, "[%d]", e.Size)
		} else {
			fmt.Fprintf(&b, "[range(%d,%d)]", e.Base, e.End())
		}
	}
	return b.String()
}
