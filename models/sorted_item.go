package models

// SortCategory classifies a brain-dump entry after AI sorting.
type SortCategory string

const (
	CategoryTask     SortCategory = "task"
	CategoryEvent    SortCategory = "event"
	CategoryReminder SortCategory = "reminder"
	CategoryThought  SortCategory = "thought"
	CategoryWorry    SortCategory = "worry"
	CategoryIdea     SortCategory = "idea"
)

// SortPriority is the AI-assigned priority of a sorted item.
type SortPriority string

const (
	PriorityHigh   SortPriority = "high"
	PriorityMedium SortPriority = "medium"
	PriorityLow    SortPriority = "low"
)

// SortedItem is a categorized brain-dump entry produced by the AI sorting
// step and consumed once by the export engine. DueDate is a YYYY-MM-DD day;
// Start and End are RFC 3339 timestamps and only meaningful for events.
type SortedItem struct {
	Text     string       `json:"text"`
	Category SortCategory `json:"category"`
	Priority SortPriority `json:"priority"`
	DueDate  string       `json:"dueDate,omitempty"`
	Start    string       `json:"start,omitempty"`
	End      string       `json:"end,omitempty"`
}
