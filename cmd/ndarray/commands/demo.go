package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/robert-malhotra/go-ndarray/internal/describe"
	"github.com/robert-malhotra/go-ndarray/ndarray"
	"github.com/spf13/cobra"
)

// DemoCmd walks through array creation, views, the recursive algorithms
// and iteration on a few small arrays.
var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Demonstrate arrays, views, sums and iteration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

// demo writes to w and keeps the first error; later writes are skipped.
type demo struct {
	w    io.Writer
	opts []ndarray.PrintOption
	err  error
}

func (d *demo) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *demo) section(title string) {
	d.printf("%s\n", pterm.DefaultSection.Sprint(title))
}

func (d *demo) check(err error) bool {
	if d.err == nil {
		d.err = err
	}
	return d.err == nil
}

func info[T any](d *demo, c ndarray.Container[T]) {
	if d.err != nil {
		return
	}
	_, d.err = describe.Describe(c).WriteTo(d.w)
}

func show[T any](d *demo, name string, c ndarray.Container[T]) {
	d.printf("%s:\n", name)
	info(d, c)
	if d.err == nil {
		d.err = ndarray.Fprint[T](d.w, c, d.opts...)
	}
	d.printf("\n")
}

func runDemo(w io.Writer) error {
	d := &demo{w: w, opts: printOptions()}
	values := []float64{0, 1, 2, 3, 4, 5}
	values2 := [2][3]float64{{6, 7, 8}, {9, 10, 11}}
	shifted := ndarray.NewExtents(ndarray.Size(2), ndarray.Between(1, 4))

	d.section("Testing array creation:")
	a, err := ndarray.New[float64](ndarray.Dims(2, 3))
	if !d.check(err) || !d.check(a.Assign(values)) {
		return d.err
	}
	show[float64](d, "Array A", a)

	b, err := ndarray.New[float64](shifted)
	if !d.check(err) || !d.check(b.Assign(values)) {
		return d.err
	}
	show[float64](d, "Array B", b)

	c, err := ndarray.New[float64](shifted)
	if !d.check(err) || !d.check(c.AssignNested(values2)) {
		return d.err
	}
	show[float64](d, "Array C", c)

	d.section("Testing construction from literals:")
	b1 := ndarray.FromSlice([]int{4, 4, 5})
	show[int](d, "Array B1", b1)

	b2, err := ndarray.FromRows([][]int{{6, 7, 8}, {9, 10, 11}})
	if !d.check(err) {
		return d.err
	}
	show[int](d, "Array B2", b2)

	b3, err := ndarray.FromNested[float64](values2)
	if !d.check(err) || !d.check(b3.Reindex(2, -5)) {
		return d.err
	}
	show[float64](d, "Array B3", b3)

	d.section("Testing printing high-dimensional array:")
	hd, err := ndarray.New[float64](ndarray.Dims(3, 3, 3, 3))
	if !d.check(err) {
		return d.err
	}
	show[float64](d, "Array D", hd)

	d.section("Testing sum algorithm:")
	total, err := ndarray.Sum[float64](a)
	d.check(err)
	d.printf("Sum of elements of A: %f\n", total)
	row, err := a.Reduce(0, 0)
	if !d.check(err) {
		return d.err
	}
	total, err = ndarray.Sum[float64](row)
	d.check(err)
	d.printf("Sum of first slice: %f\n\n", total)

	d.section("Testing a view to A:")
	v, err := a.Select(ndarray.Index(1), ndarray.Interval(1, 3))
	if !d.check(err) {
		return d.err
	}
	info[float64](d, v)
	if d.err == nil {
		d.err = ndarray.Fprint[float64](d.w, v, d.opts...)
	}
	total, err = ndarray.Sum[float64](v)
	d.check(err)
	d.printf("Sum of view of A: %f\n\n", total)

	d.section("Testing subarray:")
	d.printf("B:\n")
	info[float64](d, b)
	d.printf("\nB[0]:\n")
	sub, err := b.Reduce(0, 0)
	if !d.check(err) {
		return d.err
	}
	info[float64](d, sub)
	total, err = ndarray.Sum[float64](sub)
	d.check(err)
	d.printf("Sum of subarray B[0]: %f\n\n", total)

	d.section("Testing extents round trip:")
	like, err := ndarray.NewLike[float64](b)
	if !d.check(err) {
		return d.err
	}
	info[float64](d, like)
	d.printf("\n")

	d.section("Testing element loops:")
	a1, err := ndarray.New[float64](ndarray.NewExtents(ndarray.Between(-1, 2)))
	if !d.check(err) {
		return d.err
	}
	d.printf("A1:\n")
	info[float64](d, a1)
	for idx, x := range ndarray.All[float64](a1) {
		d.printf("A1[%d]==%f\n", idx[0], x)
	}
	d.printf("\nA:\n")
	info[float64](d, a)
	for idx, x := range ndarray.All[float64](a) {
		d.printf("A[%d, %d]==%f\n", idx[0], idx[1], x)
	}
	d.printf("\n")

	d.section("Testing iterators:")
	end := ndarray.End[float64](a)
	for it := ndarray.Begin[float64](a); !it.Equal(end); it.Next() {
		x, err := it.Value()
		if !d.check(err) {
			break
		}
		d.printf("A[[%s]]==%f\n", joinIndex(it.Index()), x)
	}
	return d.err
}
