// Package config loads liteorm settings from defaults, a YAML file,
// LITEORM_* environment variables and command-line flags.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Supported drivers.
const (
	DriverSQLite = "sqlite"
	DriverDuckDB = "duckdb"
)

// Memory is the database path of a private in-memory database.
const Memory = ":memory:"

// Config holds the runtime settings of the liteorm command.
type Config struct {
	Driver    string `koanf:"driver"`
	Database  string `koanf:"database"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	Output    string `koanf:"output"`
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverDuckDB:
	default:
		return fmt.Errorf("unsupported driver %q (want %s or %s)", c.Driver, DriverSQLite, DriverDuckDB)
	}
	if c.Database == "" {
		return fmt.Errorf("database path is empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q (want text or json)", c.LogFormat)
	}
	switch c.Output {
	case "table", "csv", "md", "markdown":
	default:
		return fmt.Errorf("unsupported output format %q (want table, csv or markdown)", c.Output)
	}
	return nil
}

// DSN returns the data source name for Driver. SQLite files are opened with
// foreign keys enforced.
func (c *Config) DSN() string {
	if c.Driver == DriverDuckDB {
		if c.Database == Memory {
			return ""
		}
		return c.Database
	}
	return c.Database + "?_pragma=foreign_keys(1)"
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// NewLogger builds the slog logger described by LogLevel and LogFormat.
// Call it on a validated Config.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
