package commands

import (
	"io"

	"github.com/robert-malhotra/go-ndarray/ndarray"
	"github.com/spf13/cobra"
)

// PrintCmd prints an array or a selected view.
var PrintCmd = &cobra.Command{
	Use:   "print FILE",
	Short: "Print an array document",
	Long: `Print the array described by FILE, nested one bracket per dimension.

The elements of a rank-r container are separated by a comma and r-1 line
breaks, so rows of a matrix start on new lines and matrices of a 3-D array
are separated by a blank line. Use --compact (or print.compact in the
config) for a single line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if compact, _ := cmd.Flags().GetBool("compact"); compact {
			settings.Print.Compact = true
		}
		path, selection := fileArgs(cmd, args)
		return runPrint(cmd.OutOrStdout(), path, selection)
	},
}

func init() {
	addSelectFlag(PrintCmd)
	PrintCmd.Flags().Bool("compact", false, "Print on a single line without padding")
}

func runPrint(w io.Writer, path, selection string) error {
	c, err := loadContainer(path, selection)
	if err != nil {
		return err
	}
	return ndarray.Fprint[float64](w, c, printOptions()...)
}
