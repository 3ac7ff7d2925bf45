// Package api contains the wire types exchanged with the remote sync store.
package api

import "time"

// Record is the wire representation of one synced record.
//
// On push, RemoteVersion is the store version the client based its edit on;
// the store accepts the record only if that still matches its current
// version, and assigns the accepted record a new version no smaller than
// LocalVersion. On pull, RemoteVersion is the store's current version.
type Record struct {
	ModifiedAt    time.Time `json:"modified_at"`
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Checksum      string    `json:"checksum"`
	Payload       []byte    `json:"payload"`
	LocalVersion  int64     `json:"local_version"`
	RemoteVersion int64     `json:"remote_version"`
	Deleted       bool      `json:"deleted"`
}

// PullResponse is one page of the remote change stream. Token is the cursor
// to persist once the page (and everything before it) has been applied.
// HasMore signals that another Pull with the new token is needed.
type PullResponse struct {
	Records []Record `json:"records"`
	Token   string   `json:"token"`
	HasMore bool     `json:"has_more"`
}

// PushRequest uploads locally changed records to the remote store.
type PushRequest struct {
	Records []Record `json:"records"`
}

// AcceptedRecord acknowledges one pushed record and carries the remote
// version the store assigned to it.
type AcceptedRecord struct {
	ID            string `json:"id"`
	RemoteVersion int64  `json:"remote_version"`
}

// RejectedRecord reports a record the store refused because another device
// pushed a fresher version first. Current is the store's current version of
// the record so the client can re-run conflict detection without an extra
// round trip.
type RejectedRecord struct {
	ID            string  `json:"id"`
	RemoteVersion int64   `json:"remote_version"`
	Current       *Record `json:"current,omitempty"`
}

// PushResponse is the store's verdict on a push.
type PushResponse struct {
	Accepted []AcceptedRecord `json:"accepted"`
	Rejected []RejectedRecord `json:"rejected"`
}

// ErrorResponse is the error body returned by the remote store.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
