package models

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/blake2b"
)

// RecordKind enumerates the content types the sync engine carries.
const (
	KindSnippet       = "snippet"
	KindTemplate      = "template"
	KindKnowledgeItem = "knowledge_item"
	KindHistoryEntry  = "history_entry"
)

// ValidKind reports whether kind is one of the known record kinds.
func ValidKind(kind string) bool {
	switch kind {
	case KindSnippet, KindTemplate, KindKnowledgeItem, KindHistoryEntry:
		return true
	}
	return false
}

// SyncableRecord is one unit of synchronized content. The payload is opaque
// to the engine; only the version counters, timestamp and deletion flag
// participate in sync decisions.
//
// LocalVersion increments on every local mutation. RemoteVersion is the last
// version acknowledged by the remote store for this record. A record with
// LocalVersion > RemoteVersion carries unsynced local edits.
type SyncableRecord struct {
	ModifiedAt    time.Time `json:"modified_at"`
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Payload       []byte    `json:"payload"`
	LocalVersion  int64     `json:"local_version"`
	RemoteVersion int64     `json:"remote_version"`
	Deleted       bool      `json:"deleted"`
}

// Dirty reports whether the record carries local edits not yet acknowledged
// by the remote store.
func (r *SyncableRecord) Dirty() bool {
	return r.LocalVersion > r.RemoteVersion
}

// Clone creates a deep copy of the record.
func (r *SyncableRecord) Clone() *SyncableRecord {
	payload := make([]byte, len(r.Payload))
	copy(payload, r.Payload)

	return &SyncableRecord{
		ID:            r.ID,
		Kind:          r.Kind,
		Payload:       payload,
		LocalVersion:  r.LocalVersion,
		RemoteVersion: r.RemoteVersion,
		ModifiedAt:    r.ModifiedAt,
		Deleted:       r.Deleted,
	}
}

// Checksum returns a hex-encoded BLAKE2b-256 digest of the record content:
// kind, payload and deletion flag. Version counters and timestamps are
// excluded so that two records with identical content compare equal even
// when edited independently on different devices.
func (r *SyncableRecord) Checksum() string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(r.Kind))
	h.Write([]byte{0})
	h.Write(r.Payload)
	if r.Deleted {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ContentEqual reports whether two records carry identical content,
// ignoring version counters and timestamps.
func (r *SyncableRecord) ContentEqual(other *SyncableRecord) bool {
	return r.Checksum() == other.Checksum()
}
