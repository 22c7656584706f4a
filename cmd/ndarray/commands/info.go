package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/robert-malhotra/go-ndarray/internal/describe"
	"github.com/spf13/cobra"
)

// InfoCmd shows the type, rank, shape and element count of an array.
var InfoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Describe an array document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		path, selection := fileArgs(cmd, args)
		return runInfo(cmd.OutOrStdout(), path, selection, plain)
	},
}

func init() {
	addSelectFlag(InfoCmd)
	InfoCmd.Flags().Bool("plain", false, "Print \"Label: value\" lines instead of a table")
}

func runInfo(w io.Writer, path, selection string, plain bool) error {
	c, err := loadContainer(path, selection)
	if err != nil {
		return err
	}
	summary := describe.Describe(c)
	if plain {
		_, err := summary.WriteTo(w)
		return err
	}

	data := pterm.TableData{{"Property", "Value"}}
	for _, row := range summary.Rows() {
		data = append(data, []string{row[0], row[1]})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
