package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipsync/snipsync/pkg/api"
)

func TestCheckAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/sync/ping", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	err := client.CheckAvailability(context.Background())
	assert.NoError(t, err)
}

func TestCheckAvailability_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "token expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "stale")
	err := client.CheckAvailability(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)
	assert.True(t, IsUnauthorized(err))
}

func TestPull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sync/changes", r.URL.Path)
		assert.Equal(t, "tok-41", r.URL.Query().Get("token"))

		resp := api.PullResponse{
			Records: []api.Record{{
				ID:            "r1",
				Kind:          "snippet",
				Payload:       []byte("hello"),
				RemoteVersion: 7,
				ModifiedAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			}},
			Token:   "tok-42",
			HasMore: true,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	resp, err := client.Pull(context.Background(), "tok-41")
	require.NoError(t, err)

	assert.Equal(t, "tok-42", resp.Token)
	assert.True(t, resp.HasMore)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "r1", resp.Records[0].ID)
	assert.Equal(t, int64(7), resp.Records[0].RemoteVersion)
}

func TestPull_EmptyTokenOmitted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("token"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.PullResponse{Token: "first"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	resp, err := client.Pull(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Token)
}

func TestPush(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sync/records", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.PushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Records, 2)

		resp := api.PushResponse{
			Accepted: []api.AcceptedRecord{{ID: req.Records[0].ID, RemoteVersion: req.Records[0].LocalVersion}},
			Rejected: []api.RejectedRecord{{
				ID:            req.Records[1].ID,
				RemoteVersion: 9,
				Current:       &api.Record{ID: req.Records[1].ID, RemoteVersion: 9},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	resp, err := client.Push(context.Background(), []api.Record{
		{ID: "a", LocalVersion: 2},
		{ID: "b", LocalVersion: 5},
	})
	require.NoError(t, err)

	require.Len(t, resp.Accepted, 1)
	assert.Equal(t, int64(2), resp.Accepted[0].RemoteVersion)
	require.Len(t, resp.Rejected, 1)
	require.NotNil(t, resp.Rejected[0].Current)
	assert.Equal(t, int64(9), resp.Rejected[0].Current.RemoteVersion)
}

func TestDoRequest_PlainTextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.Pull(context.Background(), "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "upstream exploded")
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"cancelled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"server error", &APIError{StatusCode: 500}, true},
		{"bad gateway", &APIError{StatusCode: 502}, true},
		{"quota 507", &APIError{StatusCode: 507}, false},
		{"unauthorized", &APIError{StatusCode: 401}, false},
		{"rate limited", &APIError{StatusCode: 429}, false},
		{"net timeout", &net.DNSError{IsTimeout: true}, true},
		{"plain transport failure", errors.New("connection reset by peer"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{StatusCode: 401}))
	assert.True(t, IsUnauthorized(&APIError{StatusCode: 403}))
	assert.False(t, IsUnauthorized(&APIError{StatusCode: 500}))
	assert.False(t, IsUnauthorized(errors.New("nope")))

	assert.True(t, IsQuotaExceeded(&APIError{StatusCode: 429}))
	assert.True(t, IsQuotaExceeded(&APIError{StatusCode: 507}))
	assert.False(t, IsQuotaExceeded(&APIError{StatusCode: 500}))
}
