package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapAPIError converts a resty response/error pair into the package's error
// taxonomy. A transport error (no response) becomes an [*APIError] with
// Status 0; HTTP 410 becomes [ErrSyncTokenExpired] before retry
// classification so token expiry is surfaced immediately; any other non-2xx
// status becomes an [*APIError] carrying the status and trimmed body.
func mapAPIError(resp *resty.Response, err error) error {
	if err != nil {
		return &APIError{Status: 0, Body: err.Error()}
	}

	if resp.StatusCode() == http.StatusGone {
		return ErrSyncTokenExpired
	}

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &APIError{Status: resp.StatusCode(), Body: body}
}
