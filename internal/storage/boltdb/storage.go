// Package boltdb implements the storage interfaces on a single BoltDB file.
package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketRecords   = []byte("records")
	bucketBaselines = []byte("baselines")
	bucketMetadata  = []byte("metadata")
	bucketConflicts = []byte("conflicts")
	bucketAuth      = []byte("auth")
	bucketStats     = []byte("stats")
)

// Storage represents the BoltDB storage implementation. One Storage value
// backs all the store interfaces: records, baselines, change token, manual
// conflict queue, auth data and statistics.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they don't exist yet
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{
			bucketRecords,
			bucketBaselines,
			bucketMetadata,
			bucketConflicts,
			bucketAuth,
			bucketStats,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
