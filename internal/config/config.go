// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for slackline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrMissingToken is returned by Validate when no authentication token is
// configured. main treats this as startup-fatal.
var ErrMissingToken = errors.New("SLACK_TOKEN undefined. Please add SLACK_TOKEN to the environment variables")

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete slackline configuration.
type Config struct {
	// Token is the Slack authentication token. Environment only; never
	// written to the config file.
	Token string `toml:"-"`

	// APIBaseURL is the base URL for the request/response API.
	APIBaseURL string `toml:"api_base_url"`

	// StreamProxy, when set, rewrites the streaming-connection host so
	// the websocket dials a plain forward proxy instead of the host the
	// session-start endpoint returned.
	StreamProxy string `toml:"stream_proxy"`

	// HTTPProxy is an optional proxy URL for the websocket dialer.
	HTTPProxy string `toml:"http_proxy"`

	// Log holds diagnostic log file locations.
	Log LogConfig `toml:"log"`

	// UI holds terminal UI options.
	UI UIConfig `toml:"ui"`
}

// LogConfig contains diagnostic log file locations.
type LogConfig struct {
	// StreamPath is the append-only raw stream traffic log. Written for
	// diagnostics only, never read back.
	StreamPath string `toml:"stream_path"`

	// ErrorPath receives the diagnostic for fatal errors before exit.
	ErrorPath string `toml:"error_path"`
}

// UIConfig contains terminal UI options.
type UIConfig struct {
	// ChannelListWidth is the width in columns of the channel list pane.
	ChannelListWidth int `toml:"channel_list_width"`

	// AltScreen runs the UI on the terminal's alternate screen.
	AltScreen bool `toml:"alt_screen"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		APIBaseURL: "https://slack.com",
		Log: LogConfig{
			StreamPath: "ws_log.txt",
			ErrorPath:  "error_log.txt",
		},
		UI: UIConfig{
			ChannelListWidth: 24,
			AltScreen:        true,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// ConfigDir returns the slackline configuration directory (~/.slackline).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".slackline"), nil
}

// ConfigPath returns the path of the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load builds the effective configuration: defaults, then the optional
// TOML file, then environment overrides. The result is not validated;
// call Validate before use.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if loadErr := LoadTOML(cfg, path); loadErr != nil {
			return nil, loadErr
		}
	}

	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// LoadTOML merges the TOML file at path into cfg. A missing file is not
// an error; a malformed one is.
func LoadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies environment variables on top of the current
// values. Unset variables leave the existing value alone.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SLACK_TOKEN"); v != "" {
		c.Token = v
	}
	if v := os.Getenv("SLACKLINE_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("PROXY"); v != "" {
		c.StreamProxy = v
	}
	if v := os.Getenv("HTTP_PROXY"); v != "" {
		c.HTTPProxy = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.APIBaseURL == "" {
		return errors.New("api_base_url must not be empty")
	}
	if c.UI.ChannelListWidth < 10 {
		return fmt.Errorf("ui.channel_list_width %d too small (minimum 10)", c.UI.ChannelListWidth)
	}
	return nil
}
