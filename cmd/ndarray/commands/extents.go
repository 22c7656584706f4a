package commands

import (
	"io"

	"github.com/robert-malhotra/go-ndarray/internal/source"
	"github.com/robert-malhotra/go-ndarray/ndarray"
	"github.com/spf13/cobra"
)

// ExtentsCmd writes a data-less TOML document with the extents of an
// array or view. Printing it yields a zero-filled array of the same shape
// and index bases.
var ExtentsCmd = &cobra.Command{
	Use:   "extents FILE",
	Short: "Write the extents of an array document as TOML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, selection := fileArgs(cmd, args)
		return runExtents(cmd.OutOrStdout(), path, selection)
	},
}

func init() {
	addSelectFlag(ExtentsCmd)
}

func runExtents(w io.Writer, path, selection string) error {
	c, err := loadContainer(path, selection)
	if err != nil {
		return err
	}
	return source.EncodeExtents(w, ndarray.ExtentsOf(c))
}
