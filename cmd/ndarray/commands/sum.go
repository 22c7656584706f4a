package commands

import (
	"fmt"
	"io"

	"github.com/robert-malhotra/go-ndarray/ndarray"
	"github.com/spf13/cobra"
)

// SumCmd adds up every element of an array or a selected view.
var SumCmd = &cobra.Command{
	Use:   "sum FILE",
	Short: "Sum the elements of an array document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, selection := fileArgs(cmd, args)
		return runSum(cmd.OutOrStdout(), path, selection)
	},
}

func init() {
	addSelectFlag(SumCmd)
}

func runSum(w io.Writer, path, selection string) error {
	c, err := loadContainer(path, selection)
	if err != nil {
		return err
	}
	total, err := ndarray.Sum[float64](c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%f\n", total)
	return err
}
