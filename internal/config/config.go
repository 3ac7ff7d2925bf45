// Package config loads sync settings from the settings file and environment.
//
// Priority: Env > File > Default. Environment variables use the
// SNIPSYNC_ prefix with the flat settings keys, e.g.
// SNIPSYNC_SERVER_URL or SNIPSYNC_CONFLICT_STRATEGY.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/snipsync/snipsync/internal/models"
)

// EnvPrefix is the environment variable prefix for settings overrides.
const EnvPrefix = "SNIPSYNC_"

// Load reads sync settings, starting from defaults and layering the JSON
// settings file (if it exists) and environment overrides on top.
// A missing file is not an error; a malformed one is.
func Load(path string) (models.SyncSettings, error) {
	settings := models.DefaultSettings()

	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
				return settings, fmt.Errorf("failed to load settings file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return settings, fmt.Errorf("failed to stat settings file %s: %w", path, err)
		}
	}

	// SNIPSYNC_SERVER_URL -> server_url
	envTransformer := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformer), nil); err != nil {
		return settings, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	if err := k.Unmarshal("", &settings); err != nil {
		return settings, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Save writes settings back to the JSON settings file, creating the
// parent directory when needed.
func Save(path string, settings models.SyncSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// DefaultDir returns the per-user snipsync data directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".snipsync"), nil
}

// DefaultSettingsPath returns the default settings file location.
func DefaultSettingsPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// DefaultDBPath returns the default local database location.
func DefaultDBPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "snipsync.db"), nil
}
