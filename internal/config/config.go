// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading for fleetdeck.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.fleetdeck/config.toml
//   - ~/.fleetdeck/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete fleetdeck configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// UIConfig contains presentation settings for the TUI.
type UIConfig struct {
	// ThemeMode selects color handling: "auto", "dark", or "light".
	ThemeMode string `toml:"theme_mode" json:"theme_mode"`
	// SidebarWidth is the navigation sidebar width in columns.
	SidebarWidth int `toml:"sidebar_width" json:"sidebar_width"`
	// MobileBreakpoint is the terminal width in columns below which the
	// sidebar switches to the overlay (mobile) presentation.
	MobileBreakpoint int `toml:"mobile_breakpoint" json:"mobile_breakpoint"`
	// DefaultRoute is the path shown at startup.
	DefaultRoute string `toml:"default_route" json:"default_route"`
}

// Sidebar width and breakpoint bounds. Values outside are clamped, not
// rejected, so a hand-edited config never prevents startup.
const (
	MinSidebarWidth = 16
	MaxSidebarWidth = 48

	MinMobileBreakpoint = 40
	MaxMobileBreakpoint = 120
)

// ErrUnsupportedFormat is returned when a config path has an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format (want .toml or .json)")

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			ThemeMode:        "auto",
			SidebarWidth:     28,
			MobileBreakpoint: 80,
			DefaultRoute:     "/admin/dashboard",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the default locations, applies
// environment overrides, and validates the result. A missing config file is
// not an error; defaults are used.
func Load() (*Config, error) {
	cfg := Default()

	path, err := FindConfigFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	cfg.Validate()
	return cfg, nil
}

// LoadFile reads a single config file into cfg, dispatching on extension.
func LoadFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.DecodeFile(path, cfg)
		return err
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, cfg)
	default:
		return ErrUnsupportedFormat
	}
}

// ConfigDir returns the fleetdeck configuration directory (~/.fleetdeck).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".fleetdeck"), nil
}

// FindConfigFile returns the first existing config file path, or "" when
// none exists.
func FindConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	for _, name := range []string{"config.toml", "config.json"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// applyEnvOverrides applies FLEETDECK_* environment variables on top of the
// file-provided values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FLEETDECK_THEME_MODE"); v != "" {
		cfg.UI.ThemeMode = v
	}
	if v := os.Getenv("FLEETDECK_SIDEBAR_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.SidebarWidth = n
		}
	}
	if v := os.Getenv("FLEETDECK_MOBILE_BREAKPOINT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.MobileBreakpoint = n
		}
	}
	if v := os.Getenv("FLEETDECK_DEFAULT_ROUTE"); v != "" {
		cfg.UI.DefaultRoute = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate normalizes the configuration in place. Out-of-range numeric
// values are clamped and unknown enum values fall back to their defaults.
func (c *Config) Validate() {
	switch c.UI.ThemeMode {
	case "auto", "dark", "light":
	default:
		c.UI.ThemeMode = "auto"
	}

	if c.UI.SidebarWidth < MinSidebarWidth {
		c.UI.SidebarWidth = MinSidebarWidth
	}
	if c.UI.SidebarWidth > MaxSidebarWidth {
		c.UI.SidebarWidth = MaxSidebarWidth
	}

	if c.UI.MobileBreakpoint < MinMobileBreakpoint {
		c.UI.MobileBreakpoint = MinMobileBreakpoint
	}
	if c.UI.MobileBreakpoint > MaxMobileBreakpoint {
		c.UI.MobileBreakpoint = MaxMobileBreakpoint
	}

	if c.UI.DefaultRoute == "" || !strings.HasPrefix(c.UI.DefaultRoute, "/") {
		c.UI.DefaultRoute = Default().UI.DefaultRoute
	}
}
