// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the brain-sync engine: the delta importer that
// pulls changed Google Tasks into the local brain-dump inbox, the export
// engine that pushes AI-sorted items to Google Tasks and Calendar, and the
// foreground polling job that drives periodic imports.
//
// Two implementations of [SyncService] exist: the full Google-backed one
// and a no-op variant for hosts without remote API support, selected by
// configuration in [NewServices].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/brain-sync/models"
)

// SyncService is the bidirectional synchronization engine.
type SyncService interface {
	// SyncToBrainDump imports remote changes since the last checkpoint
	// into the local inbox, acknowledges them remotely, and advances the
	// sync token. At most one import runs at a time: concurrent calls
	// return an empty result immediately. A missing access token is a
	// silent no-op, not an error.
	SyncToBrainDump(ctx context.Context) (models.ImportResult, error)

	// ExportSortedItems pushes categorized items to Google Tasks and
	// Calendar with content-fingerprint dedup. It never returns an
	// error: failures surface as skip counts and a result error code.
	//
	// There is no single-flight guard on this path: two overlapping
	// exports may read the same fingerprint set and double-create items
	// before either writes back. Callers are expected to serialize
	// export invocations.
	ExportSortedItems(ctx context.Context, items []models.SortedItem) models.ExportResult
}

// SyncJob is the foreground polling scheduler. The host starts it when the
// application enters the foreground and stops it when backgrounded.
type SyncJob interface {
	// Start launches the polling loop. Calling Start while the job is
	// already running is a no-op; the running loop keeps its interval.
	Start(ctx context.Context, interval time.Duration)

	// Stop halts the polling loop and waits for it to exit. Safe to call
	// when the job is not running.
	Stop()
}
