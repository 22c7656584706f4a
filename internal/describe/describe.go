// Package describe produces diagnostic summaries of arrays and views.
package describe

import (
	"fmt"
	"io"
	"reflect"

	"github.com/robert-malhotra/go-ndarray/ndarray"
)

// Summary is the static description of a container.
type Summary struct {
	ContainerType string
	ElementType   string
	Rank          int
	Shape         string
	NumElements   int
}

// Describe summarizes c.
func Describe[T any](c ndarray.Container[T]) Summary {
	return Summary{
		ContainerType: fmt.Sprintf("%T", c),
		ElementType:   reflect.TypeFor[T]().String(),
		Rank:          c.Rank(),
		Shape:         c.Extents().String(),
		NumElements:   c.NumElements(),
	}
}

// Rows returns label/value pairs in display order.
func (s Summary) Rows() [][2]string {
	return [][2]string{
		{"Container type", s.ContainerType},
		{"Element type", s.ElementType},
		{"Dimensions", fmt.Sprint(s.Rank)},
		{"Shape", s.Shape},
		{"Number of elements", fmt.Sprint(s.NumElements)},
	}
}

// WriteTo writes one "Label: value" line per row.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, row := range s.Rows() {
		n, err := fmt.Fprintf(w, "%s: %s\n", row[0], row[1])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
