package models

// SyncState is the persisted checkpoint of the Google Tasks import: the
// resolved inbox list and the last sync token accepted from the server.
// Both fields are empty before the first successful import.
type SyncState struct {
	ListID    string `json:"listId,omitempty"`
	SyncToken string `json:"syncToken,omitempty"`
}

// ErrorCode is the user-facing classification of a failed export.
type ErrorCode string

const (
	ErrorCodeAuthRequired ErrorCode = "auth_required"
	ErrorCodeAuthFailed   ErrorCode = "auth_failed"
	ErrorCodeNetwork      ErrorCode = "network"
	ErrorCodeRateLimited  ErrorCode = "rate_limited"
	ErrorCodeAPIError     ErrorCode = "api_error"
)

// ImportResult summarizes one SyncToBrainDump run.
type ImportResult struct {
	ImportedCount        int  `json:"importedCount"`
	SkippedCount         int  `json:"skippedCount"`
	MarkedCompletedCount int  `json:"markedCompletedCount"`
	SyncTokenUpdated     bool `json:"syncTokenUpdated"`
}

// ExportResult summarizes one ExportSortedItems run. ErrorCode is set only
// when the whole run was cut short or degraded; per-item failures surface
// as a higher SkippedCount.
type ExportResult struct {
	CreatedTasks  int       `json:"createdTasks"`
	CreatedEvents int       `json:"createdEvents"`
	SkippedCount  int       `json:"skippedCount"`
	AuthRequired  bool      `json:"authRequired"`
	ErrorCode     ErrorCode `json:"errorCode,omitempty"`
	ErrorMessage  string    `json:"errorMessage,omitempty"`
}
