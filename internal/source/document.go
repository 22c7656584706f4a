package source

import (
	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-ndarray/internal/logger"
	"github.com/robert-malhotra/go-ndarray/ndarray"
)

// Document is the decoded form of an array file.
type Document struct {
	Bases []int `toml:"bases,omitempty" yaml:"bases,omitempty" json:"bases,omitempty"`
	Shape []int `toml:"shape,omitempty" yaml:"shape,omitempty" json:"shape,omitempty"`
	Data  any   `toml:"data,omitempty" yaml:"data,omitempty" json:"data,omitempty"`
}

// Array builds a float64 array from the document. Errors carry the ndarray
// sentinels, so callers can test them with errors.Is.
func (d *Document) Array() (*ndarray.Array[float64], error) {
	log := logger.ComponentLogger("source")

	if d.Shape == nil && d.Data != nil {
		a, err := ndarray.FromNested[float64](d.Data)
		if err != nil {
			return nil, errors.Wrap(err, "data")
		}
		if d.Bases != nil {
			if err := a.Reindex(d.Bases...); err != nil {
				return nil, errors.Wrap(err, "bases")
			}
		}
		log.Debugw("inferred shape from data",
			logger.FieldShape, a.Extents().String(),
			logger.FieldCount, a.NumElements())
		return a, nil
	}

	ext, err := d.Extents()
	if err != nil {
		return nil, err
	}
	a, err := ndarray.New[float64](ext)
	if err != nil {
		return nil, errors.Wrap(err, "shape")
	}
	if d.Data != nil {
		if err := a.AssignNested(d.Data); err != nil {
			return nil, errors.Wrap(err, "data")
		}
	}
	log.Debugw("built array",
		logger.FieldShape, ext.String(),
		logger.FieldCount, a.NumElements())
	return a, nil
}

// Extents returns the extents described by shape and bases. Missing bases
// default to zero.
func (d *Document) Extents() (ndarray.Extents, error) {
	ext := ndarray.Dims(d.Shape...)
	if d.Bases == nil {
		return ext, nil
	}
	ext, err := ext.WithBases(d.Bases...)
	if err != nil {
		return nil, errors.Wrap(err, "bases")
	}
	return ext, nil
}

// FromExtents returns a data-less document describing ext.
func FromExtents(ext ndarray.Extents) *Document {
	return &Document{
		Bases: ext.Bases(),
		Shape: ext.Shape(),
	}
}
