// Package config loads the optional hcalc configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "hcalc.yaml"

// EnvPath names the environment variable that overrides DefaultPath.
const EnvPath = "HCALC_CONFIG"

// Report formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats lists the supported report formats.
var Formats = []string{FormatText, FormatMarkdown, FormatJSON}

// Config holds the settings shared by every command. Command line flags
// take precedence over it.
type Config struct {
	Input    string `yaml:"input"`              // transaction file, "-" for stdin
	Output   string `yaml:"output"`             // report file, "-" for stdout
	Format   string `yaml:"format"`             // one of Formats
	Currency string `yaml:"currency,omitempty"` // ISO code used to format cash in markdown
	Verbose  bool   `yaml:"verbose,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Input:  "-",
		Output: "-",
		Format: FormatText,
	}
}

// Path returns the configuration file to load: $HCALC_CONFIG if set,
// DefaultPath otherwise.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads a YAML config file and expands environment variables. Missing
// values are taken from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return cfg, nil
}

// LoadAndValidate loads path, or the file returned by Path when path is
// empty, and validates it. A missing DefaultPath is not an error and yields
// Default; a missing file named explicitly is.
func LoadAndValidate(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit && path == DefaultPath {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("input must not be empty")
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown format %q, want one of %v", c.Format, Formats)
	}
	return nil
}

// Dump writes the configuration as YAML.
func Dump(path string, c *Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
