package store

import (
	"context"
	"time"

	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/models"
)

// Persisted key names. These match the original mobile app's storage keys
// so an existing database keeps its checkpoints across the port.
const (
	keySyncState    = "googleTasksSyncState"
	keyProcessedIDs = "googleTasksProcessedIds"
	keyLastSyncAt   = "googleTasksLastSyncAt"
	keyFingerprints = "googleTasksExportedFingerprints"
)

// StateStore persists the import checkpoint and the two bounded dedup sets.
// Reads fail open to zero values; writes report success but failures only
// cost redundant remote work, never correctness.
type StateStore struct {
	kv KeyValue

	maxProcessedIDs int
	maxFingerprints int
}

func NewStateStore(kv KeyValue, cfg config.Sync) *StateStore {
	return &StateStore{
		kv:              kv,
		maxProcessedIDs: cfg.MaxProcessedIDs,
		maxFingerprints: cfg.MaxFingerprints,
	}
}

// SyncState returns the persisted {listID, syncToken} checkpoint, or the
// zero state when nothing (or garbage) is stored.
func (s *StateStore) SyncState(ctx context.Context) models.SyncState {
	var state models.SyncState
	s.kv.GetJSON(ctx, keySyncState, &state)
	return state
}

func (s *StateStore) WriteSyncState(ctx context.Context, state models.SyncState) bool {
	return s.kv.SetJSON(ctx, keySyncState, state)
}

// ProcessedIDs returns the ordered set of remote task ids that have already
// been imported and acknowledged, oldest first.
func (s *StateStore) ProcessedIDs(ctx context.Context) []string {
	var ids []string
	s.kv.GetJSON(ctx, keyProcessedIDs, &ids)
	return ids
}

// WriteProcessedIDs persists ids after deduplication, keeping only the most
// recent maxProcessedIDs entries.
func (s *StateStore) WriteProcessedIDs(ctx context.Context, ids []string) bool {
	return s.kv.SetJSON(ctx, keyProcessedIDs, truncateRecent(ids, s.maxProcessedIDs))
}

// Fingerprints returns the ordered set of exported content fingerprints,
// oldest first.
func (s *StateStore) Fingerprints(ctx context.Context) []string {
	var fingerprints []string
	s.kv.GetJSON(ctx, keyFingerprints, &fingerprints)
	return fingerprints
}

// WriteFingerprints persists fingerprints after deduplication, keeping only
// the most recent maxFingerprints entries.
func (s *StateStore) WriteFingerprints(ctx context.Context, fingerprints []string) bool {
	return s.kv.SetJSON(ctx, keyFingerprints, truncateRecent(fingerprints, s.maxFingerprints))
}

// WriteLastSyncAt records the wall-clock time of the last successful import.
func (s *StateStore) WriteLastSyncAt(ctx context.Context, t time.Time) bool {
	return s.kv.Set(ctx, keyLastSyncAt, t.UTC().Format(time.RFC3339))
}

// truncateRecent removes duplicates (first occurrence wins, order is
// preserved) and keeps the trailing max entries, i.e. the most recent ones
// under the append-recency convention.
func truncateRecent(values []string, max int) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}

	if max > 0 && len(unique) > max {
		unique = unique[len(unique)-max:]
	}

	return unique
}
