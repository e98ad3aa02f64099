package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/jaskterm/internal/workspace"
)

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig
	Workspace WorkspaceConfig
	Search    SearchConfig
	Log       LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// WorkspaceConfig holds panel grid settings.
type WorkspaceConfig struct {
	DefaultLayout string `mapstructure:"default_layout"`
	HistorySize   int    `mapstructure:"history_size"`
}

// SearchConfig tunes the command-line autocomplete.
type SearchConfig struct {
	Debounce time.Duration
	Limit    int
}

// LogConfig selects where logs go. Path may be "stderr".
type LogConfig struct {
	Level      string
	Format     string
	Path       string
	MaxAgeDays int `mapstructure:"max_age_days"`
}

// Path returns the config file location: $JASKTERM_CONFIG or the default.
func Path() string {
	if p := os.Getenv("JASKTERM_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskterm", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix JASKTERM_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "jaskterm", "jaskterm.db"))
	v.SetDefault("workspace.default_layout", string(workspace.Single))
	v.SetDefault("workspace.history_size", 50)
	v.SetDefault("search.debounce", "150ms")
	v.SetDefault("search.limit", 8)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "jaskterm", "jaskterm.log"))
	v.SetDefault("log.max_age_days", 7)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("JASKTERM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first setting jaskterm cannot run with.
func (c Config) Validate() error {
	if _, err := workspace.ParseLayout(c.Workspace.DefaultLayout); err != nil {
		return fmt.Errorf("workspace.default_layout: %w", err)
	}
	if c.Workspace.HistorySize <= 0 {
		return fmt.Errorf("workspace.history_size must be positive, got %d", c.Workspace.HistorySize)
	}
	if c.Search.Limit <= 0 {
		return fmt.Errorf("search.limit must be positive, got %d", c.Search.Limit)
	}
	if c.Search.Debounce < 0 {
		return fmt.Errorf("search.debounce must not be negative, got %s", c.Search.Debounce)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Database.Path == "" {
		return errors.New("database.path is empty")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("workspace.default_layout", cfg.Workspace.DefaultLayout)
	v.Set("workspace.history_size", cfg.Workspace.HistorySize)
	v.Set("search.debounce", cfg.Search.Debounce.String())
	v.Set("search.limit", cfg.Search.Limit)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.max_age_days", cfg.Log.MaxAgeDays)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
