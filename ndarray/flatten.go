package ndarray

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// ErrElementType is returned when a nested source holds a leaf that cannot
// be converted to the array's element type.
var ErrElementType = errors.New("unsupported element type")

// flattener collects the leaves of a nested source in row-major order and
// infers its shape, rejecting ragged input.
type flattener[T any] struct {
	elem      reflect.Type
	values    []T
	shape     []int
	leafDepth int
}

// flatten walks src depth-first. Slices and arrays are treated as
// dimensions unless T itself is a slice or array type.
func flatten[T any](src any) ([]T, []int, error) {
	f := &flattener[T]{
		elem:      reflect.TypeFor[T](),
		leafDepth: -1,
	}
	if err := f.walk(reflect.ValueOf(src), 0); err != nil {
		return nil, nil, err
	}
	if f.shape == nil {
		f.shape = []int{}
	}
	return f.values, f.shape, nil
}

func (f *flattener[T]) walk(v reflect.Value, depth int) error {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return errors.Wrapf(ErrElementType, "nil value at depth %d", depth)
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return errors.Wrapf(ErrElementType, "nil value at depth %d", depth)
	}

	if f.isDimension(v) {
		n := v.Len()
		switch {
		case depth == len(f.shape):
			if f.leafDepth >= 0 && f.leafDepth <= depth {
				return errors.Wrapf(ErrSizeMismatch, "ragged source: nesting deeper than %d at depth %d", f.leafDepth, depth)
			}
			f.shape = append(f.shape, n)
		case f.shape[depth] != n:
			return errors.Wrapf(ErrSizeMismatch, "ragged source: length %d at depth %d, expected %d", n, depth, f.shape[depth])
		}
		for i := 0; i < n; i++ {
			if err := f.walk(v.Index(i), depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if f.leafDepth < 0 {
		if depth < len(f.shape) {
			return errors.Wrapf(ErrSizeMismatch, "ragged source: element at depth %d, expected nesting %d", depth, len(f.shape))
		}
		f.leafDepth = depth
	} else if f.leafDepth != depth {
		return errors.Wrapf(ErrSizeMismatch, "ragged source: element at depth %d, expected depth %d", depth, f.leafDepth)
	}
	x, err := f.convert(v)
	if err != nil {
		return err
	}
	f.values = append(f.values, x)
	return nil
}

func (f *flattener[T]) isDimension(v reflect.Value) bool {
	k := v.Kind()
	if k != reflect.Slice && k != reflect.Array {
		return false
	}
	ek := f.elem.Kind()
	return ek != reflect.Slice && ek != reflect.Array
}

// convert turns a leaf into T. Numeric kinds convert between each other;
// anything else must be assignable.
func (f *flattener[T]) convert(v reflect.Value) (T, error) {
	var zero T
	t := v.Type()
	switch {
	case t.AssignableTo(f.elem):
		out := reflect.New(f.elem).Elem()
		out.Set(v)
		return out.Interface().(T), nil
	case isNumeric(t.Kind()) && isNumeric(f.elem.Kind()) && t.ConvertibleTo(f.elem):
		return v.Convert(f.elem).Interface().(T), nil
	default:
		return zero, errors.Wrapf(ErrElementType, "cannot convert %s to %s", t, f.elem)
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
