// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultTitles are used when no titles are configured.
var DefaultTitles = []string{"Overview", "Activity", "Settings"}

// Config holds all configuration values for segctl.
type Config struct {
	Titles            []string         `mapstructure:"titles" yaml:"titles"`
	Height            int              `mapstructure:"height" yaml:"height"`
	Animate           bool             `mapstructure:"animate" yaml:"animate"`
	PreserveSelection bool             `mapstructure:"preserve_selection" yaml:"preserve_selection"`
	Theme             string           `mapstructure:"theme" yaml:"theme"`
	LogLevel          string           `mapstructure:"log_level" yaml:"log_level"`
	LogFile           string           `mapstructure:"log_file" yaml:"log_file"`
	Appearance        AppearanceConfig `mapstructure:"appearance" yaml:"appearance,omitempty"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"titles":             "titles",
	"height":             "height",
	"animate":            "animate",
	"preserve-selection": "preserve_selection",
	"theme":              "theme",
	"log-level":          "log_level",
	"log-file":           "log_file",
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Titles:   append([]string(nil), DefaultTitles...),
		Height:   3,
		Animate:  true,
		Theme:    "catppuccin-mocha",
		LogLevel: "info",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults.
// flags may be nil; only flags present in the set are bound.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("segctl")

	def := Default()
	v.SetDefault("titles", def.Titles)
	v.SetDefault("height", def.Height)
	v.SetDefault("animate", def.Animate)
	v.SetDefault("preserve_selection", def.PreserveSelection)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)

	// Setup ENV binding with SEGCTL_ prefix
	v.SetEnvPrefix("SEGCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range flagKeys {
		if err := v.BindEnv(key, "SEGCTL_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Appearance keys have no defaults, so AutomaticEnv cannot find them
	for _, key := range appearanceKeys {
		full := "appearance." + key
		if err := v.BindEnv(full, "SEGCTL_"+strings.ToUpper(strings.ReplaceAll(full, ".", "_"))); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", full, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding %s flag: %w", name, err)
			}
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Titles = cleanTitles(cfg.Titles)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values the control cannot be built without.
func (c *Config) Validate() error {
	if len(c.Titles) == 0 {
		return fmt.Errorf("titles: at least one title is required")
	}
	if c.Height < 1 {
		return fmt.Errorf("height must be >= 1, got %d", c.Height)
	}
	return nil
}

// cleanTitles trims whitespace and drops empty entries.
func cleanTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/segctl/segctl.yml or $XDG_CONFIG_HOME/segctl/segctl.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "segctl", "segctl.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "segctl", "segctl.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "segctl.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
