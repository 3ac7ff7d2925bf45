package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	assert.Equal(t, StrategyLatestWins, s.ConflictStrategy)
	assert.True(t, s.Enabled)
	assert.Equal(t, 5*time.Minute, s.Interval())
	assert.Equal(t, 5*time.Second, s.DebounceWindow())
}

func TestSyncSettings_Validate(t *testing.T) {
	tests := []struct {
		mutate  func(*SyncSettings)
		name    string
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(s *SyncSettings) {},
		},
		{
			name:    "empty server url",
			mutate:  func(s *SyncSettings) { s.ServerURL = "" },
			wantErr: "server_url",
		},
		{
			name:    "unknown strategy",
			mutate:  func(s *SyncSettings) { s.ConflictStrategy = "newest" },
			wantErr: "conflict strategy",
		},
		{
			name:    "zero interval",
			mutate:  func(s *SyncSettings) { s.SyncIntervalSeconds = 0 },
			wantErr: "sync_interval_seconds",
		},
		{
			name:    "negative debounce",
			mutate:  func(s *SyncSettings) { s.DebounceSeconds = -1 },
			wantErr: "debounce_seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidStrategy(t *testing.T) {
	for _, s := range []string{StrategyLatestWins, StrategyLocalWins, StrategyRemoteWins, StrategyManual} {
		assert.True(t, ValidStrategy(s))
	}
	assert.False(t, ValidStrategy("merge"))
	assert.False(t, ValidStrategy(""))
}

func TestSyncStatistics_SuccessRate(t *testing.T) {
	tests := []struct {
		name       string
		stats      SyncStatistics
		want       float64
	}{
		{
			name:  "no sessions yet",
			stats: SyncStatistics{},
			want:  0,
		},
		{
			name:  "all successful",
			stats: SyncStatistics{TotalSyncs: 4, SuccessfulSyncs: 4},
			want:  1,
		},
		{
			name:  "half failed",
			stats: SyncStatistics{TotalSyncs: 4, SuccessfulSyncs: 2, FailedSyncs: 2},
			want:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := tt.stats.SuccessRate()
			assert.InDelta(t, tt.want, rate, 1e-9)
			assert.GreaterOrEqual(t, rate, 0.0)
			assert.LessOrEqual(t, rate, 1.0)
		})
	}
}
