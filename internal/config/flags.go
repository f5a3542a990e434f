package config

import (
	"flag"
	"strings"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-tasks-url Google Tasks API base URL
//	-calendar-url Google Calendar API base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-retry-delays comma-separated retry backoff schedule (e.g., "350ms,900ms,1800ms")
//	-d database DSN (SQLite file path)
//	-token-file token file path
//	-list-name remote inbox task list title
//	-poll-interval foreground poll interval (e.g., "15m")
//	-no-sync disable the sync engine (no-op variant)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var tasksBaseURL string
	var calendarBaseURL string
	var requestTimeout time.Duration
	var retryDelays string
	var databaseDSN string
	var tokenFile string
	var inboxListName string
	var pollInterval time.Duration
	var syncDisabled bool
	var jsonConfigPath string

	flag.StringVar(&tasksBaseURL, "tasks-url", "", "Google Tasks API base URL")
	flag.StringVar(&calendarBaseURL, "calendar-url", "", "Google Calendar API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&retryDelays, "retry-delays", "", "Comma-separated retry delays (e.g., 350ms,900ms,1800ms)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&tokenFile, "token-file", "", "Token file path")
	flag.StringVar(&inboxListName, "list-name", "", "Remote inbox task list title")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Foreground poll interval (e.g., 15m)")
	flag.BoolVar(&syncDisabled, "no-sync", false, "Disable the sync engine")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			TasksBaseURL:    tasksBaseURL,
			CalendarBaseURL: calendarBaseURL,
			RequestTimeout:  requestTimeout,
			RetryDelays:     parseRetryDelays(retryDelays),
		},
		Sync: Sync{
			Disabled:      syncDisabled,
			PollInterval:  pollInterval,
			InboxListName: inboxListName,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Auth: Auth{
			TokenFile: tokenFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// parseRetryDelays converts a comma-separated duration list into a slice,
// ignoring empty segments. Unparseable segments invalidate the whole flag
// value so a typo cannot silently shorten the schedule.
func parseRetryDelays(s string) []time.Duration {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	delays := make([]time.Duration, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		d, err := time.ParseDuration(part)
		if err != nil {
			return nil
		}
		delays = append(delays, d)
	}

	return delays
}
