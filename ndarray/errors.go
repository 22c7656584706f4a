package ndarray

import "github.com/cockroachdb/errors"

// Common errors
var (
	ErrInvalidExtent   = errors.New("invalid extent")
	ErrSizeMismatch    = errors.New("element count mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrRankMismatch    = errors.New("rank mismatch")
	ErrNotScalar       = errors.New("not a scalar")
	ErrIteratorEnd     = errors.New("iterator at end")
	ErrReleased        = errors.New("array storage released")
)

// outOfRange wraps ErrIndexOutOfRange with the offending dimension and bounds.
func outOfRange(dim, index int, e Extent) error {
	return errors.Wrapf(ErrIndexOutOfRange, "dimension %d: index %d not in [%d, %d)",
		dim, index, e.Base, e.Base+e.Size)
}

// rankMismatch wraps ErrRankMismatch with the expected and actual counts.
func rankMismatch(want, got int) error {
	return errors.Wrapf(ErrRankMismatch, "expected %d indices, got %d", want, got)
}

// sizeMismatch wraps ErrSizeMismatch with a hint about the expected count.
func sizeMismatch(want, got int) error {
	err := errors.Wrapf(ErrSizeMismatch, "source has %d elements, target holds %d", got, want)
	return errors.WithHintf(err, "supply exactly %d elements in row-major order", want)
}
