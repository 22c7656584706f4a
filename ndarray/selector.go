package ndarray

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Range is a half-open index interval [Lo, Hi) used for slicing.
type Range struct {
	Lo, Hi int
}

type selectorKind uint8

const (
	selectAll selectorKind = iota
	selectIndex
	selectInterval
)

// Selector picks part of one dimension when deriving a view.
type Selector struct {
	kind  selectorKind
	index int
	rng   Range
}

// All keeps the whole dimension unchanged.
func All() Selector { return Selector{kind: selectAll} }

// Index fixes the dimension to a single index, dropping it from the view.
func Index(i int) Selector { return Selector{kind: selectIndex, index: i} }

// Interval keeps indices [lo, hi) of the dimension; the view's base for
// that dimension becomes lo.
func Interval(lo, hi int) Selector {
	return Selector{kind: selectInterval, rng: Range{Lo: lo, Hi: hi}}
}

// Drops reports whether the selector removes its dimension.
func (s Selector) Drops() bool { return s.kind == selectIndex }

func (s Selector) String() string {
	switch s.kind {
	case selectIndex:
		return strconv.Itoa(s.index)
	case selectInterval:
		return strconv.Itoa(s.rng.Lo) + ":" + strconv.Itoa(s.rng.Hi)
	default:
		return ":"
	}
}

// layout is the geometry shared by arrays and views: extents, the
// row-major strides of the owning buffer and the offset of the first
// element.
type layout struct {
	ext     Extents
	strides []int
	offset  int
	n       int
}

func newLayout(ext Extents) layout {
	return layout{
		ext:     ext,
		strides: ext.Strides(),
		n:       ext.NumElements(),
	}
}

// offsetOf maps a multi-index to a buffer offset.
func (l *layout) offsetOf(idx []int) (int, error) {
	if len(idx) != len(l.ext) {
		return 0, rankMismatch(len(l.ext), len(idx))
	}
	off := l.offset
	for d, i := range idx {
		e := l.ext[d]
		if !e.Contains(i) {
			return 0, outOfRange(d, i, e)
		}
		off += (i - e.Base) * l.strides[d]
	}
	return off, nil
}

// derive computes the geometry selected by sel. It touches no elements.
func (l *layout) derive(sel []Selector) (layout, error) {
	if len(sel) != len(l.ext) {
		return layout{}, errors.Wrapf(ErrRankMismatch, "expected %d selectors, got %d", len(l.ext), len(sel))
	}
	out := layout{offset: l.offset}
	for d, s := range sel {
		e := l.ext[d]
		switch s.kind {
		case selectIndex:
			if !e.Contains(s.index) {
				return layout{}, outOfRange(d, s.index, e)
			}
			out.offset += (s.index - e.Base) * l.strides[d]
		case selectInterval:
			r := s.rng
			if r.Lo < e.Base || r.Hi > e.End() || r.Lo > r.Hi {
				return layout{}, errors.Wrapf(ErrIndexOutOfRange, "dimension %d: range [%d, %d) not within [%d, %d)",
					d, r.Lo, r.Hi, e.Base, e.End())
			}
			out.offset += (r.Lo - e.Base) * l.strides[d]
			out.ext = append(out.ext, Between(r.Lo, r.Hi))
			out.strides = append(out.strides, l.strides[d])
		default:
			out.ext = append(out.ext, e)
			out.strides = append(out.strides, l.strides[d])
		}
	}
	if out.ext == nil {
		out.ext = Extents{}
	}
	out.n = out.ext.NumElements()
	return out, nil
}
