// Package config loads the labelinfo configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-labels/labels"
	"github.com/cwbudde/algo-labels/report"
)

// Config is the labelinfo configuration.
type Config struct {
	// Format is the default output format of list and summarize.
	Format string `yaml:"format"`
	// Listen is the address serve binds to.
	Listen string `yaml:"listen"`
	// PlainLabels strips TeX markup from labels.
	PlainLabels bool `yaml:"plain_labels"`
	// MaxSuggestions bounds the "did you mean" list of lookup errors.
	MaxSuggestions *int `yaml:"max_suggestions"`
	// Labels overrides built-in display labels.
	Labels Overrides `yaml:"labels"`
}

// Overrides replaces display labels of known identifiers.
type Overrides struct {
	Filters map[string]string `yaml:"filters"`
	Metrics map[string]string `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format: string(report.FormatTable),
		Listen: "127.0.0.1:8080",
	}
}

// Load reads a YAML configuration file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML configuration on top of the defaults. Unknown fields
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}

	if c.Listen == "" {
		return errors.New("config: listen address must not be empty")
	}

	if c.MaxSuggestions != nil && *c.MaxSuggestions < 0 {
		return fmt.Errorf("config: max_suggestions must be >= 0: %d", *c.MaxSuggestions)
	}

	return nil
}

// ResolverOptions translates the configuration into resolver options.
func (c Config) ResolverOptions() []labels.Option {
	var opts []labels.Option

	if len(c.Labels.Filters) > 0 {
		opts = append(opts, labels.WithFilterLabels(c.Labels.Filters))
	}

	if len(c.Labels.Metrics) > 0 {
		opts = append(opts, labels.WithMetricLabels(c.Labels.Metrics))
	}

	if c.PlainLabels {
		opts = append(opts, labels.WithPlainLabels())
	}

	if c.MaxSuggestions != nil {
		opts = append(opts, labels.WithMaxSuggestions(*c.MaxSuggestions))
	}

	return opts
}

// Resolver builds the label resolver described by the configuration.
func (c Config) Resolver() (*labels.Resolver, error) {
	res, err := labels.New(c.ResolverOptions()...)
	if err != nil {
		return nil, fmt.Errorf("config: labels: %w", err)
	}

	return res, nil
}
