// Package store implements local persistence for brain-sync: a SQLite
// key-value table plus typed stores for sync checkpoints, bounded dedup
// sets, and the brain-dump inbox.
//
// All reads are fail-open: a missing key, unreadable database, or corrupt
// value surfaces as the zero value with ok=false, never as an error. "No
// persisted state" is a valid, common case — the engine resynchronizes from
// scratch rather than refusing to run.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValue is the minimal persistence contract of the sync engine. All
// methods are best-effort: failures are logged and reported through the
// boolean return, and never propagate as errors.
type KeyValue interface {
	// Get returns the string stored under key.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) bool

	// GetJSON unmarshals the value stored under key into v.
	GetJSON(ctx context.Context, key string, v any) bool

	// SetJSON marshals v and stores it under key.
	SetJSON(ctx context.Context, key string, v any) bool
}
