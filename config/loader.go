package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default configuration values.
const (
	DefaultDriver    = DriverSQLite
	DefaultDatabase  = "mydb.db"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultOutput    = "table"
)

// EnvPrefix is the prefix of environment overrides, e.g. LITEORM_DATABASE.
const EnvPrefix = "LITEORM_"

// ConfigFileNames are looked up in the working directory when no file is given.
var ConfigFileNames = []string{"liteorm.yaml", "liteorm.yml"}

// findConfigFile finds the config file to use.
// Priority: explicit path > liteorm.yaml > liteorm.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range ConfigFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds a Config. Precedence (highest to lowest):
// flags > env vars > config file > defaults. Only flags that were set
// explicitly override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"driver":     DefaultDriver,
		"database":   DefaultDatabase,
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
		"output":     DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// 3. Environment: LITEORM_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
