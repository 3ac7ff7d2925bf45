package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

var statsKey = []byte("current")

// SaveStatistics persists the statistics counters
func (s *Storage) SaveStatistics(ctx context.Context, stats models.SyncStatistics) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStats)
		if bucket == nil {
			return fmt.Errorf("stats bucket not found")
		}

		data, err := json.Marshal(stats)
		if err != nil {
			return fmt.Errorf("failed to marshal statistics: %w", err)
		}

		if err := bucket.Put(statsKey, data); err != nil {
			return fmt.Errorf("failed to save statistics: %w", err)
		}

		return nil
	})
}

// GetStatistics retrieves the persisted statistics counters
// Returns zero statistics if no snapshot has been saved yet
func (s *Storage) GetStatistics(ctx context.Context) (models.SyncStatistics, error) {
	var stats models.SyncStatistics

	if s.db == nil {
		return stats, storage.ErrStorageClosed
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStats)
		if bucket == nil {
			return fmt.Errorf("stats bucket not found")
		}

		data := bucket.Get(statsKey)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &stats); err != nil {
			return fmt.Errorf("failed to unmarshal statistics: %w", err)
		}

		return nil
	})

	if err != nil {
		return models.SyncStatistics{}, fmt.Errorf("failed to get statistics: %w", err)
	}

	return stats, nil
}
