package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// APIError is a non-2xx response from the remote store.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsTransient reports whether err is worth retrying with backoff: timeouts,
// connection failures and 5xx responses. Context cancellation is never
// transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		// 507 means the account is over quota; retrying cannot help.
		return apiErr.StatusCode >= 500 && apiErr.StatusCode != 507
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// http.Client wraps dial and read failures in *url.Error, which
	// implements net.Error only for timeouts. Treat any remaining
	// transport-level failure as transient.
	return true
}

// IsUnauthorized reports whether the store rejected the credentials.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsQuotaExceeded reports whether the store refused the request because the
// account is over its storage or rate quota.
func IsQuotaExceeded(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429 || apiErr.StatusCode == 507
	}
	return false
}
