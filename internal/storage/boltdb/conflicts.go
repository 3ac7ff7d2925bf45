package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

// EnqueueConflict stores a conflict awaiting manual resolution.
// Entries are keyed by conflict ID, which is what listing surfaces and
// resolution looks up. Each session mints a fresh conflict ID, so
// re-detecting the same record conflict drops the previously queued
// entry instead of duplicating it.
func (s *Storage) EnqueueConflict(ctx context.Context, conflict *models.Conflict) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(conflict)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var queued models.Conflict
			if err := json.Unmarshal(v, &queued); err != nil {
				return fmt.Errorf("failed to unmarshal conflict: %w", err)
			}
			if queued.RecordID == conflict.RecordID {
				if err := bucket.Delete(k); err != nil {
					return fmt.Errorf("failed to replace conflict: %w", err)
				}
				break
			}
		}

		if err := bucket.Put([]byte(conflict.ID), data); err != nil {
			return fmt.Errorf("failed to save conflict: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetConflict retrieves a queued conflict by ID
func (s *Storage) GetConflict(ctx context.Context, id string) (*models.Conflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflict *models.Conflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return storage.ErrConflictNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		conflict = &models.Conflict{}
		if err := json.Unmarshal(data, conflict); err != nil {
			return fmt.Errorf("failed to unmarshal conflict: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return conflict, nil
}

// ListConflicts returns all queued conflicts
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.Conflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflicts []*models.Conflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var conflict models.Conflict
			if err := json.Unmarshal(v, &conflict); err != nil {
				return fmt.Errorf("failed to unmarshal conflict: %w", err)
			}
			conflicts = append(conflicts, &conflict)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	return conflicts, nil
}

// DeleteConflict removes a conflict from the queue
func (s *Storage) DeleteConflict(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrConflictNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete conflict: %w", err)
		}

		return nil
	})
}
