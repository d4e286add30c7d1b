// Package config resolves selectr settings from defaults, the global and
// project config files and SELECTR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/mark3labs/selectr/internal/errors"
	"github.com/mark3labs/selectr/internal/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "selectr"
	fileName   = "selectr.yml"
	envPrefix  = "SELECTR"
	configType = "yaml"
)

// Config holds the resolved configuration.
type Config struct {
	LogLevel          string `mapstructure:"log_level" yaml:"log_level"`
	LogFile           string `mapstructure:"log_file" yaml:"log_file"`
	OptionsFile       string `mapstructure:"options_file" yaml:"options_file"`
	Multiple          bool   `mapstructure:"multiple" yaml:"multiple"`
	Placeholder       string `mapstructure:"placeholder" yaml:"placeholder"`
	MaxVisible        int    `mapstructure:"max_visible" yaml:"max_visible"`
	ResetSearchOnOpen bool   `mapstructure:"reset_search_on_open" yaml:"reset_search_on_open"`
	Theme             string `mapstructure:"theme" yaml:"theme"`
}

// Keys lists every configuration key in display order.
var Keys = []string{
	"log_level",
	"log_file",
	"options_file",
	"multiple",
	"placeholder",
	"max_visible",
	"reset_search_on_open",
	"theme",
}

// Themes lists the accepted theme names.
var Themes = []string{"mocha", "latte"}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		LogLevel:          "info",
		LogFile:           "",
		OptionsFile:       "",
		Multiple:          false,
		Placeholder:       "Select...",
		MaxVisible:        8,
		ResetSearchOnOpen: false,
		Theme:             "mocha",
	}
}

// GlobalPath returns the path of the user-wide config file.
func GlobalPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName, fileName)
}

// ProjectPath returns the path of the project-local config file.
func ProjectPath() string {
	return fileName
}

// Exists reports whether a global or project config file is present.
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// Load resolves configuration with the precedence
// env > project file > global file > defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType(configType)

	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("options_file", d.OptionsFile)
	v.SetDefault("multiple", d.Multiple)
	v.SetDefault("placeholder", d.Placeholder)
	v.SetDefault("max_visible", d.MaxVisible)
	v.SetDefault("reset_search_on_open", d.ResetSearchOnOpen)
	v.SetDefault("theme", d.Theme)

	for _, path := range []string{GlobalPath(), ProjectPath()} {
		if err := mergeFile(v, path); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func mergeFile(v *viper.Viper, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := v.MergeConfig(f); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	logger.Debug("Merged config file: %s", path)
	return nil
}

// Validate checks the configuration for values the picker cannot use.
func (c *Config) Validate() error {
	var errs apperrors.MultiError
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		errs.Append(apperrors.NewValidationError("log_level", c.LogLevel, "must be one of debug, info, warn, error"))
	}
	if c.MaxVisible < 1 {
		errs.Append(apperrors.NewValidationError("max_visible", fmt.Sprint(c.MaxVisible), "must be at least 1"))
	}
	known := false
	for _, name := range Themes {
		if c.Theme == name {
			known = true
			break
		}
	}
	if !known {
		errs.Append(apperrors.NewValidationError("theme", c.Theme, "must be one of "+strings.Join(Themes, ", ")))
	}
	return errs.ErrorOrNil()
}

// Value returns the string form of the named key, for display.
func (c *Config) Value(key string) string {
	switch key {
	case "log_level":
		return c.LogLevel
	case "log_file":
		return c.LogFile
	case "options_file":
		return c.OptionsFile
	case "multiple":
		return fmt.Sprint(c.Multiple)
	case "placeholder":
		return c.Placeholder
	case "max_visible":
		return fmt.Sprint(c.MaxVisible)
	case "reset_search_on_open":
		return fmt.Sprint(c.ResetSearchOnOpen)
	case "theme":
		return c.Theme
	}
	return ""
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}

// WriteGlobal writes cfg to the global config path.
func WriteGlobal(cfg *Config) error {
	return write(GlobalPath(), cfg)
}

// WriteProject writes cfg to the project config path.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
