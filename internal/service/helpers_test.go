// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/MKhiriev/brain-sync/internal/adapter"
	"github.com/MKhiriev/brain-sync/internal/auth"
	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/internal/logger"
	"github.com/MKhiriev/brain-sync/internal/store"
	"github.com/MKhiriev/brain-sync/internal/utils"
	"github.com/MKhiriev/brain-sync/models"
)

// fakeKV is an in-memory KeyValue used to drive the real state and inbox
// stores in service tests.
type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.data[key]
	return v, ok
}

func (f *fakeKV) Set(_ context.Context, key, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = value
	return true
}

func (f *fakeKV) GetJSON(ctx context.Context, key string, v any) bool {
	raw, ok := f.Get(ctx, key)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

func (f *fakeKV) SetJSON(ctx context.Context, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return f.Set(ctx, key, string(raw))
}

var _ store.KeyValue = (*fakeKV)(nil)

func testSyncConfig() config.Sync {
	return config.Sync{
		PollInterval:      15 * time.Minute,
		InboxListName:     "BrainSync Inbox",
		MarkConcurrency:   4,
		ExportConcurrency: 4,
		MaxProcessedIDs:   500,
		MaxFingerprints:   1000,
	}
}

// newTestService wires a googleSyncService over the given doubles with a
// fixed clock.
func newTestService(tasks adapter.TasksAPI, calendar adapter.CalendarAPI, gateway auth.TokenGateway, kv store.KeyValue, observer func(int)) *googleSyncService {
	svc := NewGoogleSyncService(
		tasks,
		calendar,
		gateway,
		store.NewStateStore(kv, testSyncConfig()),
		store.NewInboxStore(kv),
		testSyncConfig(),
		observer,
		logger.Nop(),
	).(*googleSyncService)

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	svc.ids = utils.NewUUIDGenerator()
	return svc
}

// storedSyncState reads the checkpoint the service persisted.
func storedSyncState(kv store.KeyValue) models.SyncState {
	var state models.SyncState
	kv.GetJSON(context.Background(), "googleTasksSyncState", &state)
	return state
}

func storedProcessedIDs(kv store.KeyValue) []string {
	var ids []string
	kv.GetJSON(context.Background(), "googleTasksProcessedIds", &ids)
	return ids
}

func storedFingerprints(kv store.KeyValue) []string {
	var fingerprints []string
	kv.GetJSON(context.Background(), "googleTasksExportedFingerprints", &fingerprints)
	return fingerprints
}

func storedInbox(kv store.KeyValue) []models.BrainDumpItem {
	var items []models.BrainDumpItem
	kv.GetJSON(context.Background(), "brainDump", &items)
	return items
}
