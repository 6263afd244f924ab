package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/imonaar/uniqr/internal/domain"
	"github.com/imonaar/uniqr/internal/ports"
	"gopkg.in/yaml.v3"
)

// Loader reads uniqr settings from a YAML file.
type Loader struct{}

var _ ports.ConfigLoader = Loader{}

func NewLoader() Loader { return Loader{} }

func (Loader) LoadConfig(path string) (domain.Config, error) {
	return LoadConfig(path)
}

// LoadConfig applies the file at path on top of domain.DefaultConfig. An
// empty path returns the defaults untouched.
func LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindOpen,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Uniqr.Count != nil {
		cfg.Count = *y.Uniqr.Count
	}
	if y.Uniqr.CountWidth != nil {
		if *y.Uniqr.CountWidth < 1 {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("uniqr.count_width must be >= 1, got %d", *y.Uniqr.CountWidth),
			}
		}
		cfg.CountWidth = *y.Uniqr.CountWidth
	}
	if y.Uniqr.Log.Debug != nil {
		cfg.Log.Debug = *y.Uniqr.Log.Debug
	}
	if y.Uniqr.Log.File != "" {
		cfg.Log.File = y.Uniqr.Log.File
	}

	return cfg, nil
}
