package store

import (
	"context"

	"github.com/MKhiriev/brain-sync/models"
)

const keyBrainDump = "brainDump"

// InboxStore persists the local brain-dump inbox as one JSON document,
// newest item first. The sync engine only reads the collection and writes
// it back with imported items prepended; other producers own the rest of
// its lifecycle.
type InboxStore struct {
	kv KeyValue
}

func NewInboxStore(kv KeyValue) *InboxStore {
	return &InboxStore{kv: kv}
}

// Items returns the current inbox, or an empty slice when nothing is
// stored.
func (s *InboxStore) Items(ctx context.Context) []models.BrainDumpItem {
	var items []models.BrainDumpItem
	s.kv.GetJSON(ctx, keyBrainDump, &items)
	return items
}

// Replace writes the full inbox collection in one batch.
func (s *InboxStore) Replace(ctx context.Context, items []models.BrainDumpItem) bool {
	return s.kv.SetJSON(ctx, keyBrainDump, items)
}
