// Package commands implements the ndarray subcommands.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-ndarray/internal/config"
	"github.com/robert-malhotra/go-ndarray/internal/logger"
	"github.com/robert-malhotra/go-ndarray/internal/source"
	"github.com/robert-malhotra/go-ndarray/ndarray"
	"github.com/spf13/cobra"
)

var settings = defaultSettings()

func defaultSettings() *config.Config {
	return &config.Config{
		Print:  config.PrintConfig{Verb: "%v"},
		Source: config.SourceConfig{DefaultFormat: source.FormatTOML},
	}
}

// SetConfig installs the configuration used by every command.
func SetConfig(cfg *config.Config) {
	if cfg == nil {
		cfg = defaultSettings()
	}
	settings = cfg
}

func printOptions() []ndarray.PrintOption {
	var opts []ndarray.PrintOption
	if settings.Print.Compact {
		opts = append(opts, ndarray.WithCompact())
	}
	if settings.Print.Verb != "" {
		opts = append(opts, ndarray.WithVerb(settings.Print.Verb))
	}
	return opts
}

// addSelectFlag registers --select on a file-reading command.
func addSelectFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("select", "s", "", "Per-dimension selection, e.g. 1,1:3 or :,2")
}

// loadContainer reads the document at path and applies the selection
// expression, if any.
func loadContainer(path, selection string) (ndarray.Container[float64], error) {
	log := logger.ComponentLogger("commands")

	doc, err := source.Load(path, settings.Source.DefaultFormat)
	if err != nil {
		return nil, err
	}
	a, err := doc.Array()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	log.Infow("loaded array",
		logger.FieldFile, path,
		logger.FieldShape, a.Extents().String())

	if selection == "" {
		return a, nil
	}
	sel, err := ParseSelection(selection, a.Rank())
	if err != nil {
		return nil, err
	}
	v, err := a.Select(sel...)
	if err != nil {
		log.Debugw("selection rejected",
			logger.FieldSelection, selection,
			logger.FieldError, err)
		return nil, errors.Wrapf(err, "select %q", selection)
	}
	log.Debugw("selected view",
		logger.FieldSelection, selection,
		logger.FieldRank, v.Rank(),
		logger.FieldShape, v.Extents().String())
	return v, nil
}

func fileArgs(cmd *cobra.Command, args []string) (string, string) {
	selection, _ := cmd.Flags().GetString("select")
	return args[0], selection
}
