package models

const (
	TaskStatusNeedsAction = "needsAction"
	TaskStatusCompleted   = "completed"
)

// TaskList is a Google Tasks task list as returned by the lists endpoint.
type TaskList struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// RemoteTask is the narrow view of a Google Tasks task this application
// reads. The remote service owns the full resource; we only inspect these
// fields and patch the status.
type RemoteTask struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Updated string `json:"updated,omitempty"`
	Status  string `json:"status,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

// TaskDelta is the accumulated result of one delta listing: all changed
// tasks across every page plus the newest sync token the server returned.
// NextSyncToken is empty if no page carried a token.
type TaskDelta struct {
	Items         []RemoteTask
	NextSyncToken string
}
