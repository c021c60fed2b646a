package route

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Format names the encoding of a dataset file.
type Format string

// Supported dataset formats. FormatAuto infers the format from the file
// extension.
const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// validate is shared; validator caches struct metadata and is safe for reuse.
var validate = validator.New()

// ParseFormat maps a format name or file extension (".json", "yml", ...) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// File is a Source reading a dataset from disk.
type File struct {
	Path   string
	Format Format // FormatAuto infers from Path's extension
}

// Routes opens the file, decodes and validates it.
func (f File) Routes(_ context.Context) ([]Route, error) {
	format := f.Format
	if format == FormatAuto {
		var err error
		if format, err = ParseFormat(filepath.Ext(f.Path)); err != nil {
			return nil, fmt.Errorf("route: %s: %w", f.Path, err)
		}
	}

	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("route: open dataset: %w", err)
	}
	defer func() { _ = fh.Close() }()

	ds, err := Decode(fh, format)
	if err != nil {
		return nil, fmt.Errorf("route: %s: %w", f.Path, err)
	}

	return ds.Routes, nil
}

// Decode reads one dataset document from r and validates every route.
// An empty YAML document decodes to an empty dataset.
func Decode(r io.Reader, format Format) (Dataset, error) {
	var ds Dataset
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&ds); err != nil {
			return Dataset{}, fmt.Errorf("%w: decode json: %v", ErrInvalidRoute, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
			return Dataset{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidRoute, err)
		}
	default:
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}

	if err := Validate(ds); err != nil {
		return Dataset{}, err
	}

	return ds, nil
}

// Validate checks struct-tag constraints on every route of ds.
func Validate(ds Dataset) error {
	if err := validate.Struct(ds); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoute, err)
	}

	return nil
}
