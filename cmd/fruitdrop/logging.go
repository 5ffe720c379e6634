package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/plus3/fruitdrop/config"
)

var formatters = map[string]log.Formatter{
	"":       log.TextFormatter,
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// newLogger builds the process logger from the log section of the config.
func newLogger(cfg config.LogConfig, w io.Writer) (*log.Logger, error) {
	name := cfg.Level
	if name == "" {
		name = "info"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	formatter, ok := formatters[cfg.Format]
	if !ok {
		return nil, fmt.Errorf("log format %q: %w", cfg.Format, config.ErrInvalidConfig)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fruitdrop",
		Level:           level,
		Formatter:       formatter,
	}), nil
}
