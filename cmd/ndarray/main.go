// Command ndarray loads, slices, prints and summarizes N-dimensional arrays.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-ndarray/cmd/ndarray/commands"
	"github.com/robert-malhotra/go-ndarray/internal/config"
	"github.com/robert-malhotra/go-ndarray/internal/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ndarray",
	Short: "Inspect N-dimensional arrays with arbitrary index bases",
	Long: `ndarray reads array documents (TOML, YAML or JSON), optionally selects a
view, and prints, sums, iterates or describes the result.

Examples:
  ndarray demo                          # Walk through arrays, views and algorithms
  ndarray print a.toml                  # Print an array
  ndarray print a.toml --select 1,1:3   # Print row 1, columns [1, 3)
  ndarray info a.yaml --select :,2      # Describe column 2
  ndarray extents a.json > shape.toml   # Write a zero-filled document of the same extents`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if verbosity, _ := cmd.Flags().GetCount("verbose"); verbosity > cfg.Log.Verbosity {
			cfg.Log.Verbosity = verbosity
		}
		if cmd.Flags().Changed("json-log") {
			cfg.Log.JSON, _ = cmd.Flags().GetBool("json-log")
		}

		if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		commands.SetConfig(cfg)
		logger.Logger.Debugw("configuration loaded",
			logger.FieldCommand, cmd.Name(),
			"compact", cfg.Print.Compact,
			"verb", cfg.Print.Verb)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./ndarray.toml if present)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.DemoCmd)
	rootCmd.AddCommand(commands.PrintCmd)
	rootCmd.AddCommand(commands.InfoCmd)
	rootCmd.AddCommand(commands.SumCmd)
	rootCmd.AddCommand(commands.IterCmd)
	rootCmd.AddCommand(commands.ExtentsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		for _, h := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", h)
		}
		os.Exit(1)
	}
}
