package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/snipsync/snipsync/internal/storage"
)

const keyChangeToken = "change_token"

// GetChangeToken retrieves the last persisted change token
// Returns "" if no sync has completed yet
func (s *Storage) GetChangeToken(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if data := bucket.Get([]byte(keyChangeToken)); data != nil {
			token = string(data)
		}
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get change token: %w", err)
	}

	return token, nil
}

// GetBaseline retrieves the baseline version for a record
// Returns 0 if the record has never been synced
func (s *Storage) GetBaseline(ctx context.Context, id string) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var version int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBaselines)
		if bucket == nil {
			return fmt.Errorf("baselines bucket not found")
		}

		if data := bucket.Get([]byte(id)); data != nil {
			version = int64(binary.BigEndian.Uint64(data))
		}
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get baseline: %w", err)
	}

	return version, nil
}

// ListBaselines returns all stored baselines keyed by record ID
func (s *Storage) ListBaselines(ctx context.Context) (map[string]int64, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	baselines := make(map[string]int64)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBaselines)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			baselines[string(k)] = int64(binary.BigEndian.Uint64(v))
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list baselines: %w", err)
	}

	return baselines, nil
}

// CommitSession persists the session outcome in a single transaction:
// final record states, advanced baselines and the new change token.
// BoltDB transactions are atomic, so a crash at any point either keeps the
// previous token with the previous records or the new token with the new
// records, never a mix.
func (s *Storage) CommitSession(ctx context.Context, commit storage.SessionCommit) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		records := tx.Bucket(bucketRecords)
		baselines := tx.Bucket(bucketBaselines)
		metadata := tx.Bucket(bucketMetadata)
		if records == nil || baselines == nil || metadata == nil {
			return fmt.Errorf("storage buckets not found")
		}

		for _, record := range commit.Records {
			data, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("failed to marshal record %s: %w", record.ID, err)
			}
			if err := records.Put([]byte(record.ID), data); err != nil {
				return fmt.Errorf("failed to save record %s: %w", record.ID, err)
			}
		}

		for id, version := range commit.Baselines {
			buf := make([]byte, 8)
			binary.BigEndian.PutUint64(buf, uint64(version))
			if err := baselines.Put([]byte(id), buf); err != nil {
				return fmt.Errorf("failed to save baseline %s: %w", id, err)
			}
		}

		if err := metadata.Put([]byte(keyChangeToken), []byte(commit.Token)); err != nil {
			return fmt.Errorf("failed to save change token: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	return nil
}
