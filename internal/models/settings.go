package models

import (
	"fmt"
	"time"
)

// ConflictStrategy values. Applied deterministically: resolving the same
// conflict twice always yields the same outcome.
const (
	StrategyLatestWins = "latest_wins"
	StrategyLocalWins  = "local_wins"
	StrategyRemoteWins = "remote_wins"
	StrategyManual     = "manual"
)

// ValidStrategy reports whether s is a known conflict strategy.
func ValidStrategy(s string) bool {
	switch s {
	case StrategyLatestWins, StrategyLocalWins, StrategyRemoteWins, StrategyManual:
		return true
	}
	return false
}

// SyncSettings is the engine configuration. It is owned by the settings UI
// (or the config file in CLI use) and read-only to the engine.
type SyncSettings struct {
	ServerURL           string `json:"server_url" koanf:"server_url"`
	ConflictStrategy    string `json:"conflict_strategy" koanf:"conflict_strategy"`
	SyncIntervalSeconds int    `json:"sync_interval_seconds" koanf:"sync_interval_seconds"`
	DebounceSeconds     int    `json:"debounce_seconds" koanf:"debounce_seconds"`
	MetricsAddr         string `json:"metrics_addr,omitempty" koanf:"metrics_addr"`
	InboxDir            string `json:"inbox_dir,omitempty" koanf:"inbox_dir"`
	Enabled             bool   `json:"enabled" koanf:"enabled"`
	AutoSync            bool   `json:"auto_sync" koanf:"auto_sync"`
	SyncOnLaunch        bool   `json:"sync_on_launch" koanf:"sync_on_launch"`
	SyncOnBackground    bool   `json:"sync_on_background" koanf:"sync_on_background"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() SyncSettings {
	return SyncSettings{
		ServerURL:           "http://localhost:8080",
		ConflictStrategy:    StrategyLatestWins,
		SyncIntervalSeconds: 300,
		DebounceSeconds:     5,
		Enabled:             true,
		AutoSync:            true,
		SyncOnLaunch:        true,
		SyncOnBackground:    true,
	}
}

// Validate checks the settings for values the engine cannot work with.
func (s SyncSettings) Validate() error {
	if s.ServerURL == "" {
		return fmt.Errorf("server_url must not be empty")
	}
	if !ValidStrategy(s.ConflictStrategy) {
		return fmt.Errorf("unknown conflict strategy: %q", s.ConflictStrategy)
	}
	if s.SyncIntervalSeconds <= 0 {
		return fmt.Errorf("sync_interval_seconds must be positive, got %d", s.SyncIntervalSeconds)
	}
	if s.DebounceSeconds <= 0 {
		return fmt.Errorf("debounce_seconds must be positive, got %d", s.DebounceSeconds)
	}
	return nil
}

// Interval returns the background sync interval as a duration.
func (s SyncSettings) Interval() time.Duration {
	return time.Duration(s.SyncIntervalSeconds) * time.Second
}

// DebounceWindow returns the quiet window used by the debounce trigger.
func (s SyncSettings) DebounceWindow() time.Duration {
	return time.Duration(s.DebounceSeconds) * time.Second
}
