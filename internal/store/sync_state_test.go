// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStateStore(t *testing.T, maxProcessedIDs, maxFingerprints int) *StateStore {
	t.Helper()

	return NewStateStore(newTestKV(t), config.Sync{
		MaxProcessedIDs: maxProcessedIDs,
		MaxFingerprints: maxFingerprints,
	})
}

// ── SyncState ───────────────────────────────────────────────────────────────

func TestStateStore_SyncStateRoundTrip(t *testing.T) {
	s := newTestStateStore(t, 500, 1000)
	ctx := context.Background()

	assert.Empty(t, s.SyncState(ctx), "fresh store yields the zero state")

	want := models.SyncState{ListID: "list-1", SyncToken: "tok-1"}
	require.True(t, s.WriteSyncState(ctx, want))
	assert.Equal(t, want, s.SyncState(ctx))
}

// ── ProcessedIDs ────────────────────────────────────────────────────────────

func TestStateStore_ProcessedIDsRoundTrip(t *testing.T) {
	s := newTestStateStore(t, 500, 1000)
	ctx := context.Background()

	assert.Empty(t, s.ProcessedIDs(ctx))

	require.True(t, s.WriteProcessedIDs(ctx, []string{"a", "b", "c"}))
	assert.Equal(t, []string{"a", "b", "c"}, s.ProcessedIDs(ctx))
}

func TestStateStore_ProcessedIDsDeduplicated(t *testing.T) {
	s := newTestStateStore(t, 500, 1000)
	ctx := context.Background()

	require.True(t, s.WriteProcessedIDs(ctx, []string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{"a", "b", "c"}, s.ProcessedIDs(ctx))
}

func TestStateStore_ProcessedIDsKeepMostRecent(t *testing.T) {
	s := newTestStateStore(t, 3, 1000)
	ctx := context.Background()

	require.True(t, s.WriteProcessedIDs(ctx, []string{"a", "b", "c", "d", "e"}))
	assert.Equal(t, []string{"c", "d", "e"}, s.ProcessedIDs(ctx))
}

func TestStateStore_ProcessedIDsLargeSet(t *testing.T) {
	s := newTestStateStore(t, 500, 1000)
	ctx := context.Background()

	ids := make([]string, 600)
	for i := range ids {
		ids[i] = fmt.Sprintf("task-%03d", i)
	}

	require.True(t, s.WriteProcessedIDs(ctx, ids))

	got := s.ProcessedIDs(ctx)
	require.Len(t, got, 500)
	assert.Equal(t, "task-100", got[0], "oldest entries are evicted first")
	assert.Equal(t, "task-599", got[499])
}

// ── Fingerprints ────────────────────────────────────────────────────────────

func TestStateStore_FingerprintsBounded(t *testing.T) {
	s := newTestStateStore(t, 500, 2)
	ctx := context.Background()

	require.True(t, s.WriteFingerprints(ctx, []string{"fp1", "fp2", "fp3"}))
	assert.Equal(t, []string{"fp2", "fp3"}, s.Fingerprints(ctx))
}

// ── LastSyncAt ──────────────────────────────────────────────────────────────

func TestStateStore_WriteLastSyncAt(t *testing.T) {
	kv := newTestKV(t)
	s := NewStateStore(kv, config.Sync{MaxProcessedIDs: 500, MaxFingerprints: 1000})
	ctx := context.Background()

	at := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	require.True(t, s.WriteLastSyncAt(ctx, at))

	raw, ok := kv.Get(ctx, keyLastSyncAt)
	require.True(t, ok)
	assert.Equal(t, "2026-03-02T10:30:00Z", raw)
}

// ── truncateRecent ──────────────────────────────────────────────────────────

func TestTruncateRecent(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		max    int
		want   []string
	}{
		{name: "under cap", values: []string{"a", "b"}, max: 5, want: []string{"a", "b"}},
		{name: "at cap", values: []string{"a", "b"}, max: 2, want: []string{"a", "b"}},
		{name: "over cap keeps tail", values: []string{"a", "b", "c"}, max: 2, want: []string{"b", "c"}},
		{name: "duplicates collapse before truncation", values: []string{"a", "a", "b", "c"}, max: 3, want: []string{"a", "b", "c"}},
		{name: "zero max keeps everything", values: []string{"a", "b"}, max: 0, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateRecent(tt.values, tt.max))
		})
	}
}
