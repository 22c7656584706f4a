package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-ndarray/ndarray"
)

// ErrBadSelection is returned for a malformed --select expression.
var ErrBadSelection = errors.New("invalid selection")

// ParseSelection parses a comma-separated selection, one item per
// dimension: "i" fixes an index, "lo:hi" keeps the interval [lo, hi) and
// ":" keeps the whole dimension. Dimensions past the last item are kept
// whole, so "1" on a matrix selects row 1.
func ParseSelection(expr string, rank int) ([]ndarray.Selector, error) {
	parts := strings.Split(expr, ",")
	if len(parts) > rank {
		return nil, errors.Wrapf(ErrBadSelection, "%q has %d items for rank %d", expr, len(parts), rank)
	}

	sel := make([]ndarray.Selector, 0, rank)
	for d, part := range parts {
		s, err := parseSelector(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %d", d)
		}
		sel = append(sel, s)
	}
	for len(sel) < rank {
		sel = append(sel, ndarray.All())
	}
	return sel, nil
}

func parseSelector(s string) (ndarray.Selector, error) {
	if s == ":" {
		return ndarray.All(), nil
	}
	lo, hi, isRange := strings.Cut(s, ":")
	if !isRange {
		i, err := strconv.Atoi(s)
		if err != nil {
			return ndarray.Selector{}, errors.Wrapf(ErrBadSelection, "index %q", s)
		}
		return ndarray.Index(i), nil
	}
	l, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return ndarray.Selector{}, errors.Wrapf(ErrBadSelection, "lower bound %q", lo)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return ndarray.Selector{}, errors.Wrapf(ErrBadSelection, "upper bound %q", hi)
	}
	return ndarray.Interval(l, h), nil
}
