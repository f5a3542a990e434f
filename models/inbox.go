package models

const (
	InboxSourceText   = "text"
	InboxSourceAudio  = "audio"
	InboxSourceGoogle = "google"
)

// BrainDumpItem is one entry of the local brain-dump inbox. Items imported
// from Google carry source "google" and keep the originating task id so the
// same remote task is never imported twice.
type BrainDumpItem struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	CreatedAt    string `json:"createdAt"`
	Source       string `json:"source"`
	GoogleTaskID string `json:"googleTaskId,omitempty"`
}
