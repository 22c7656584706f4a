package source

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-ndarray/internal/logger"
	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for a format no decoder handles.
var ErrUnknownFormat = errors.New("unknown document format")

// FormatOf picks a format from the file extension, falling back to
// defaultFormat when the extension names none.
func FormatOf(path, defaultFormat string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "toml":
		return FormatTOML
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	}
	if defaultFormat == "yml" {
		return FormatYAML
	}
	return defaultFormat
}

// Load reads the document at path.
func Load(path, defaultFormat string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	format := FormatOf(path, defaultFormat)
	logger.ComponentLogger("source").Debugw("loading document",
		logger.FieldFile, path,
		logger.FieldFormat, format)

	doc, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	return doc, nil
}

// Decode reads one document in the given format from r.
func Decode(r io.Reader, format string) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "toml")
		}
	case FormatYAML, "yml":
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "yaml")
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "json")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return &doc, nil
}
