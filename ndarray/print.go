package ndarray

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes n in bracketed nested form followed by a newline.
//
// A container prints as "[" e0 sep e1 sep ... "]" where each element is
// printed recursively. The separator after every element but the last is
// "," followed by r-1 newlines and D-r+1 spaces, r being the rank of the
// container being printed and D the rank of n. This lines up nested
// dimensions:
//
//	[[0,  1,  2],
//	 [3,  4,  5]]
//
// Nothing is written if an element cannot be read.
func Fprint[T any](w io.Writer, n Node[T], opts ...PrintOption) error {
	s, err := Format(n, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// Format returns the text Fprint would write, without the trailing newline.
func Format[T any](n Node[T], opts ...PrintOption) (string, error) {
	o := defaultPrintOptions()
	for _, opt := range opts {
		opt(o)
	}
	p := &printer[T]{opts: o, total: n.Rank()}
	if err := p.print(n); err != nil {
		return "", err
	}
	return p.b.String(), nil
}

type printer[T any] struct {
	b     strings.Builder
	opts  *printOptions
	total int
}

func (p *printer[T]) print(n Node[T]) error {
	if n.IsScalar() {
		v, err := n.Value()
		if err != nil {
			return err
		}
		fmt.Fprintf(&p.b, p.opts.verb, v)
		return nil
	}

	r := n.Rank()
	p.b.WriteByte('[')
	for i := 0; i < n.Len(); i++ {
		e, err := n.Elem(i)
		if err != nil {
			return err
		}
		if err := p.print(e); err != nil {
			return err
		}
		if i < n.Len()-1 {
			p.b.WriteByte(',')
			if !p.opts.compact {
				p.b.WriteString(strings.Repeat("\n", r-1))
				p.b.WriteString(strings.Repeat(" ", p.total-r+1))
			}
		}
	}
	p.b.WriteByte(']')
	return nil
}
