package main

import (
	"fmt"

	"github.com/mark3labs/segctl/internal/config"
	"github.com/mark3labs/segctl/internal/logger"
	"github.com/mark3labs/segctl/internal/tui"
	"github.com/mark3labs/segctl/internal/tui/theme"
	"github.com/spf13/pflag"
)

// addControlFlags registers the flags shared by run and render. Their names
// match the config keys they override.
func addControlFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringSliceP("titles", "t", def.Titles, "Segment titles, comma separated")
	fs.Int("height", def.Height, "Control height in rows")
	fs.Bool("animate", def.Animate, "Animate the selector")
	fs.Bool("preserve-selection", def.PreserveSelection, "Keep the selected segment when the control is rebuilt")
	fs.String("theme", def.Theme, "Color theme")
	fs.String("log-level", def.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-file", def.LogFile, "Log file path (logging is off when empty)")
}

// loadOptions resolves configuration, sets up logging and the theme, and
// returns the demo options.
func loadOptions(fs *pflag.FlagSet) (*config.Config, tui.Options, error) {
	cfg, err := config.Load(fs)
	if err != nil {
		return nil, tui.Options{}, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, tui.Options{}, fmt.Errorf("failed to configure logger: %w", err)
	}
	if err := theme.SetCurrent(cfg.Theme); err != nil {
		return nil, tui.Options{}, err
	}

	// Appearance defaults come from the theme, so build it after SetCurrent
	appearance, err := cfg.Appearance.Appearance()
	if err != nil {
		return nil, tui.Options{}, fmt.Errorf("invalid appearance: %w", err)
	}

	if !config.Exists() {
		logger.Debug("no config file found, using defaults")
	}
	logger.Debug("config loaded: titles=%v height=%d theme=%s", cfg.Titles, cfg.Height, cfg.Theme)
	return cfg, tui.Options{
		Titles:            cfg.Titles,
		ControlHeight:     cfg.Height,
		Animate:           cfg.Animate,
		PreserveSelection: cfg.PreserveSelection,
		Appearance:        appearance,
	}, nil
}
