package models

import "time"

// SyncStatistics accumulates counters across sessions.
// Invariant: TotalSyncs == SuccessfulSyncs + FailedSyncs once every admitted
// session has reached a terminal state.
type SyncStatistics struct {
	LastSyncAt             time.Time `json:"last_sync_at"`
	TotalSyncs             int64     `json:"total_syncs"`
	SuccessfulSyncs        int64     `json:"successful_syncs"`
	FailedSyncs            int64     `json:"failed_syncs"`
	TotalRecordsUploaded   int64     `json:"total_records_uploaded"`
	TotalRecordsDownloaded int64     `json:"total_records_downloaded"`
	ConflictsResolved      int64     `json:"conflicts_resolved"`
}

// SuccessRate returns SuccessfulSyncs / TotalSyncs, or 0 when no session has
// run yet. The result is always within [0, 1].
func (s SyncStatistics) SuccessRate() float64 {
	if s.TotalSyncs == 0 {
		return 0
	}
	return float64(s.SuccessfulSyncs) / float64(s.TotalSyncs)
}
