package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-ndarray/ndarray"
	"github.com/spf13/cobra"
)

// IterCmd lists every element with its multi-index in row-major order.
var IterCmd = &cobra.Command{
	Use:   "iter FILE",
	Short: "List the elements of an array document with their indices",
	Long: `List every element as NAME[i, j, ...]==value in row-major order. Indices
are reported in the array's own index bases.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		path, selection := fileArgs(cmd, args)
		return runIter(cmd.OutOrStdout(), path, selection, name)
	},
}

func init() {
	addSelectFlag(IterCmd)
	IterCmd.Flags().String("name", "A", "Name printed in front of each index")
}

func runIter(w io.Writer, path, selection, name string) error {
	c, err := loadContainer(path, selection)
	if err != nil {
		return err
	}
	for idx, v := range ndarray.All(c) {
		if _, err := fmt.Fprintf(w, "%s[%s]==%f\n", name, joinIndex(idx), v); err != nil {
			return err
		}
	}
	return nil
}

func joinIndex(idx []int) string {
	parts := make([]string, len(idx))
	for i, x := range idx {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
