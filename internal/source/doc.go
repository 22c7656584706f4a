// Package source reads and writes array documents: small TOML, YAML or
// JSON files describing the extents and contents of an array.
//
// # Document Keys
//
//	bases = [0, 1]
//	shape = [2, 3]
//	data  = [[0, 1, 2], [3, 4, 5]]
//
// Every key is optional:
//
//   - bases: index base of each dimension. Defaults to all zeros.
//   - shape: size of each dimension. When absent the shape is taken from
//     the nesting of data, which must then be rectangular.
//   - data: the elements, flat or nested, in row-major order. When absent
//     the array is zero-filled.
//
// A document with neither shape nor data describes a rank-0 array holding
// a single zero.
//
// # Formats
//
// The format is chosen from the file extension (.toml, .yaml/.yml, .json),
// falling back to a configured default. [EncodeExtents] writes the
// data-less TOML form of an array's extents, which loads back as a
// zero-filled array of the same shape and bases.
//
// Errors from building the array wrap the ndarray sentinels
// (ErrInvalidExtent, ErrSizeMismatch, ErrRankMismatch), so callers can
// test them with errors.Is.
package source
