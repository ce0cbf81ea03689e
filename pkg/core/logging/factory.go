// ============================================================================
// lined - Zeilenorientierter Texteditor
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured loggers
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	mdwlog "github.com/msto63/lined/foundation/core/log"
	"github.com/msto63/lined/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: text)
	Format string

	// Output writer (default: stderr, stdout carries command output)
	Output io.Writer

	// Record caller information on each entry
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// FromConfig derives a LoggerConfig from the [general] section. Verbose
// raises the level to debug.
func FromConfig(serviceName string, general config.GeneralConfig, verbose bool) LoggerConfig {
	cfg := DefaultLoggerConfig(serviceName)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	if verbose {
		cfg.Level = "debug"
		cfg.EnableCaller = true
	}
	return cfg
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	format := mdwlog.FormatText
	if strings.EqualFold(cfg.Format, "json") {
		format = mdwlog.FormatJSON
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.EnableCaller,
	})
}

// parseLevel converts a string level to mdwlog.Level, falling back to the
// default level for unknown input
func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.DefaultLevel()
	}
	return parsed
}
