// Package config resolves dtlit settings from flags, DTLIT_* environment
// variables and an optional YAML config file, in that order of precedence.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to upper-cased keys to form environment variable names.
const EnvPrefix = "DTLIT"

const (
	KeyConfig   = "config"
	KeyDB       = "db"
	KeyFormat   = "format"
	KeyLogLevel = "log-level"
)

// Config holds the resolved settings.
type Config struct {
	// DB is the history database path. Empty disables history.
	DB string
	// Format is the output format name. Empty means pick by terminal.
	Format   string
	LogLevel string
}

// RegisterFlags adds the persistent flags shared by all commands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "path to a YAML config file")
	fs.String(KeyDB, "", "history database path (history is off when empty)")
	fs.String(KeyFormat, "", "output format: table, json, csv or yaml (default table on a terminal, json otherwise)")
	fs.String(KeyLogLevel, "warn", "log level: debug, info, warn or error")
}

// New returns a viper instance bound to fs and the DTLIT_ environment.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, "warn")
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return v, nil
}

// Load reads the config file named by the config key, if any, and returns the settings.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return &Config{
		DB:       v.GetString(KeyDB),
		Format:   v.GetString(KeyFormat),
		LogLevel: v.GetString(KeyLogLevel),
	}, nil
}

// OutputFormat returns the configured format, or table on a terminal and json otherwise.
func (c *Config) OutputFormat(terminal bool) string {
	if c.Format != "" {
		return c.Format
	}
	if terminal {
		return "table"
	}
	return "json"
}

// Logger builds a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
