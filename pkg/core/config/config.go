// ============================================================================
// lined - Zeilenorientierter Texteditor
// ============================================================================
//
// Package:     config
// Description: Typed configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/lined/foundation/core/error"
	mdwlog "github.com/msto63/lined/foundation/core/log"
)

// EnvConfigPath names the environment variable holding a config file path
const EnvConfigPath = "LINED_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General     GeneralConfig     `toml:"general" yaml:"general"`
	Document    DocumentConfig    `toml:"document" yaml:"document"`
	Interpreter InterpreterConfig `toml:"interpreter" yaml:"interpreter"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// DocumentConfig holds document limits
type DocumentConfig struct {
	MaxLineSize int `toml:"max_line_size" yaml:"max_line_size"`
}

// InterpreterConfig holds read loop settings
type InterpreterConfig struct {
	Diagnostics bool   `toml:"diagnostics" yaml:"diagnostics"`
	Prompt      string `toml:"prompt" yaml:"prompt"`
}

// Format is a configuration file format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml", "":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", mdwerror.Newf("unsupported config format: %s", s).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.ParseFormat")
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithSeverity(mdwerror.SeverityHigh).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("invalid config file %s", path)).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes configuration content, applies defaults and validates it
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from LINED_CONFIG or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations LoadFromEnv probes, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/lined.toml",
		"./lined.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lined", "lined.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Document.MaxLineSize == 0 {
		c.Document.MaxLineSize = 80
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if c.Document.MaxLineSize <= 0 {
		return invalid("document.max_line_size", c.Document.MaxLineSize,
			fmt.Errorf("must be greater than zero"))
	}
	return nil
}

func invalid(key string, value interface{}, cause error) error {
	return mdwerror.Wrap(cause, fmt.Sprintf("invalid value for %s", key)).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// Encode writes the configuration in the given format
func (c *Config) Encode(w io.Writer, format Format) error {
	var err error
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(c)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = toml.NewEncoder(w).Encode(c)
	}
	if err != nil {
		return mdwerror.Wrap(err, "failed to encode config").
			WithCode(mdwerror.CodeInternal).
			WithOperation("config.Encode").
			WithDetail("format", string(format))
	}
	return nil
}
