package ndarray

// Number is the set of element types Sum accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Sum adds up every element of n by recursing one dimension at a time:
// a scalar sums to itself, a container to the sum of its elements' sums,
// starting from the zero value.
func Sum[T Number](n Node[T]) (T, error) {
	if n.IsScalar() {
		return n.Value()
	}
	var s T
	for i := 0; i < n.Len(); i++ {
		e, err := n.Elem(i)
		if err != nil {
			return 0, err
		}
		v, err := Sum(e)
		if err != nil {
			return 0, err
		}
		s += v
	}
	return s, nil
}
