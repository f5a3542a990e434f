package service

import (
	"context"
	"time"

	"github.com/MKhiriev/brain-sync/models"
)

// noopSyncService satisfies [SyncService] when sync is disabled by
// configuration. Exports report every item as skipped so callers always see
// an accounted-for result.
type noopSyncService struct{}

func NewNoopSyncService() SyncService {
	return noopSyncService{}
}

func (noopSyncService) SyncToBrainDump(context.Context) (models.ImportResult, error) {
	return models.ImportResult{}, nil
}

func (noopSyncService) ExportSortedItems(_ context.Context, items []models.SortedItem) models.ExportResult {
	return models.ExportResult{SkippedCount: len(items)}
}

type noopSyncJob struct{}

func NewNoopSyncJob() SyncJob {
	return noopSyncJob{}
}

func (noopSyncJob) Start(context.Context, time.Duration) {}

func (noopSyncJob) Stop() {}
