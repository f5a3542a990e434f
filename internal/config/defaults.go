package config

import "time"

// Defaults mirror the production service constants: the Google API bases,
// the 15-minute foreground poll, the fixed retry schedule, width-4 batches,
// and the bounded dedup sets (500 processed ids, 1000 fingerprints).
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			TasksBaseURL:    "https://tasks.googleapis.com/tasks/v1",
			CalendarBaseURL: "https://www.googleapis.com/calendar/v3",
			RequestTimeout:  15 * time.Second,
			RetryDelays: []time.Duration{
				350 * time.Millisecond,
				900 * time.Millisecond,
				1800 * time.Millisecond,
			},
		},
		Sync: Sync{
			PollInterval:      15 * time.Minute,
			InboxListName:     "BrainSync Inbox",
			MarkConcurrency:   4,
			ExportConcurrency: 4,
			MaxProcessedIDs:   500,
			MaxFingerprints:   1000,
		},
		Storage: Storage{
			DB: DB{DSN: "brainsync.db"},
		},
	}
}
