package source

import (
	"io"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/robert-malhotra/go-ndarray/ndarray"
)

// EncodeExtents writes ext as a TOML document without data. Loading it
// back yields a zero-filled array with the same extents.
func EncodeExtents(w io.Writer, ext ndarray.Extents) error {
	enc := gotoml.NewEncoder(w)
	enc.SetArraysMultiline(false)
	return enc.Encode(FromExtents(ext))
}
