package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSyncTokenExpired is returned by the delta listing when the server
// answers HTTP 410 Gone: the presented sync token is no longer usable and
// the caller must fall back to a full snapshot fetch. It is never retried.
var ErrSyncTokenExpired = errors.New("sync token expired")

// retryableStatus is the set of HTTP statuses worth retrying on the fixed
// backoff schedule.
var retryableStatus = map[int]struct{}{
	http.StatusRequestTimeout:      {},
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// APIError is a failed Google API call. Status 0 means the request never
// produced an HTTP response (transport failure), which is always
// retryable; any other status is retryable only if listed in
// retryableStatus.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("google api network error: %s", e.Body)
	}
	return fmt.Sprintf("google api error (status %d): %s", e.Status, e.Body)
}

// Retryable reports whether the failure is transient.
func (e *APIError) Retryable() bool {
	if e.Status == 0 {
		return true
	}

	_, ok := retryableStatus[e.Status]
	return ok
}

// IsAuthError reports whether err is a Google API authorization failure
// (HTTP 401 or 403). Auth failures are never retried and surface to the
// user as a re-authentication prompt.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}
