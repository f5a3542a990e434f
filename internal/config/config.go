// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for brain-sync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file,
// and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds endpoint addresses, timeouts, and the retry schedule
	// for the Google Tasks and Calendar REST adapters.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds tuning knobs for the import/export engine and the
	// foreground polling job.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds the token source settings consumed by the token gateway.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for outbound Google API calls.
type Adapter struct {
	// TasksBaseURL is the Google Tasks REST API base URL.
	// Env: ADAPTER_TASKS_BASE_URL
	TasksBaseURL string `env:"TASKS_BASE_URL"`

	// CalendarBaseURL is the Google Calendar REST API base URL.
	// Env: ADAPTER_CALENDAR_BASE_URL
	CalendarBaseURL string `env:"CALENDAR_BASE_URL"`

	// RequestTimeout is the per-request timeout of the HTTP client.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryDelays is the fixed backoff schedule applied to retryable
	// request failures; its length bounds the number of retries.
	// Env: ADAPTER_RETRY_DELAYS (comma-separated durations)
	RetryDelays []time.Duration `env:"RETRY_DELAYS" envSeparator:","`
}

// Sync holds the sync-engine tuning parameters.
type Sync struct {
	// Disabled turns the whole engine into its no-op variant. Hosts
	// without Google API support set this instead of shipping a second
	// implementation.
	// Env: SYNC_DISABLED
	Disabled bool `env:"DISABLED"`

	// PollInterval is the foreground polling period of the import job.
	// Env: SYNC_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// InboxListName is the display title of the well-known Google Tasks
	// list used as the remote inbox. Resolved by title, created on first
	// use.
	// Env: SYNC_INBOX_LIST_NAME
	InboxListName string `env:"INBOX_LIST_NAME"`

	// MarkConcurrency bounds the number of in-flight status PATCH calls
	// while acknowledging imported tasks.
	// Env: SYNC_MARK_CONCURRENCY
	MarkConcurrency int `env:"MARK_CONCURRENCY"`

	// ExportConcurrency bounds the number of in-flight create calls
	// during export.
	// Env: SYNC_EXPORT_CONCURRENCY
	ExportConcurrency int `env:"EXPORT_CONCURRENCY"`

	// MaxProcessedIDs caps the persisted set of acknowledged remote task
	// ids; oldest entries are evicted first.
	// Env: SYNC_MAX_PROCESSED_IDS
	MaxProcessedIDs int `env:"MAX_PROCESSED_IDS"`

	// MaxFingerprints caps the persisted set of exported content
	// fingerprints; oldest entries are evicted first.
	// Env: SYNC_MAX_FINGERPRINTS
	MaxFingerprints int `env:"MAX_FINGERPRINTS"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the local key-value database connection settings.
type DB struct {
	// DSN is the SQLite connection string (a file path).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Auth holds the settings of the file token gateway.
type Auth struct {
	// TokenFile is the path of the JSON token file maintained by the
	// companion sign-in flow.
	// Env: AUTH_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first non-zero
// value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
