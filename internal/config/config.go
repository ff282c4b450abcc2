// Package config loads codepad settings from defaults, a YAML file and
// CODEPAD_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/codepad/internal/logging"
	"github.com/iw2rmb/codepad/runner"
	"github.com/iw2rmb/codepad/split"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved application configuration.
type Config struct {
	Language     string  `yaml:"language"`
	HistoryLimit int     `yaml:"history_limit"`
	SplitPercent float64 `yaml:"split_percent"`
	LineNumbers  bool    `yaml:"line_numbers"`
	Theme        string  `yaml:"theme"`
	LogLevel     string  `yaml:"log_level"`
	LogFile      string  `yaml:"log_file"`

	Runner   RunnerConfig   `yaml:"runner"`
	Snippets SnippetsConfig `yaml:"snippets"`
}

type RunnerConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

type SnippetsConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Language:     runner.DefaultLanguage,
		HistoryLimit: 500,
		SplitPercent: split.DefaultPercent,
		LineNumbers:  true,
		Theme:        "monokai",
		LogLevel:     "info",
		Runner: RunnerConfig{
			Endpoint: runner.DefaultEndpoint,
			Timeout:  runner.DefaultTimeout,
		},
		Snippets: SnippetsConfig{Dir: defaultSnippetsDir()},
	}
}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// ExplicitPath is an explicit config file path (from --config flag).
	// It must exist when set.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. Environment variables (CODEPAD_*)
//  2. Explicit config file, or $XDG_CONFIG_HOME/codepad/config.yaml when present
//  3. Defaults
func Load(opts LoadOptions) (Config, string, error) {
	cfg := Default()

	path := opts.ExplicitPath
	if path == "" {
		path = UserConfigPath()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, "", fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(&cfg); err != nil {
			return Config{}, "", fmt.Errorf("load environment: %w", err)
		}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// Validate checks value ranges and names.
func Validate(cfg Config) error {
	if _, ok := runner.Lookup(cfg.Language); !ok {
		return fmt.Errorf("%w: language %q is not supported", ErrInvalid, cfg.Language)
	}
	if cfg.SplitPercent < split.MinPercent || cfg.SplitPercent > split.MaxPercent {
		return fmt.Errorf("%w: split_percent %v outside [%v, %v]",
			ErrInvalid, cfg.SplitPercent, split.MinPercent, split.MaxPercent)
	}
	if cfg.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must not be negative", ErrInvalid)
	}
	if !logging.ParseLevel(cfg.LogLevel) {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, cfg.LogLevel)
	}
	if cfg.Runner.Endpoint == "" {
		return fmt.Errorf("%w: runner.endpoint is empty", ErrInvalid)
	}
	if cfg.Runner.Timeout <= 0 {
		return fmt.Errorf("%w: runner.timeout must be positive", ErrInvalid)
	}
	if cfg.Snippets.Dir == "" {
		return fmt.Errorf("%w: snippets.dir is empty", ErrInvalid)
	}
	return nil
}

// UserConfigPath returns $XDG_CONFIG_HOME/codepad/config.yaml, falling back
// to the OS user config dir.
func UserConfigPath() string {
	return filepath.Join(configHome(), "codepad", "config.yaml")
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}

func defaultSnippetsDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "codepad", "snippets")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "codepad", "snippets")
	}
	return filepath.Join(".", "snippets")
}
