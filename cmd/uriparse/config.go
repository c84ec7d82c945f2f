package main

import (
	"fmt"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/util"
)

const (
	logFormatConsole = "console"
	logFormatDev     = "dev"
	logFormatNone    = "none"

	outputText = "text"
	outputJSON = "json"
)

type config struct {
	LogFormat    string `toml:"log_format"`
	LogLevel     string `toml:"log_level"`
	OutputFormat string `toml:"output_format"`
}

func defaultConfig() config {
	return config{
		LogFormat:    logFormatConsole,
		LogLevel:     "warn",
		OutputFormat: outputText,
	}
}

// loadConfig reads the TOML file at path over the defaults.
// An empty path returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("load config %q: %w", path, err)))
	}
	return cfg, nil
}

// override applies explicitly set flags to the config.
func (c *config) override(flags *pflag.FlagSet) {
	if f := flags.Lookup("log-format"); f != nil && f.Changed {
		c.LogFormat = f.Value.String()
	}
	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		c.LogLevel = f.Value.String()
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		c.OutputFormat = f.Value.String()
	}
}

func (c *config) validate() error {
	switch util.LCase(c.LogFormat) {
	case logFormatConsole, logFormatDev, logFormatNone:
	default:
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log format %q", c.LogFormat))
	}
	switch util.LCase(c.OutputFormat) {
	case outputText, outputJSON:
	default:
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown output format %q", c.OutputFormat))
	}
	if _, err := c.level(); err != nil {
		return errtrace.Wrap(err)
	}
	return nil
}

func (c *config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return lvl, nil
}
