// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/brain-sync/internal/adapter"
	"github.com/MKhiriev/brain-sync/internal/workers"
	"github.com/MKhiriev/brain-sync/models"
)

// exportRun accumulates the outcome of one export across worker
// goroutines. All mutation goes through the mutex; newFingerprints keeps
// insertion order so recency truncation stays meaningful.
type exportRun struct {
	mu sync.Mutex

	result          models.ExportResult
	seen            map[string]struct{}
	newFingerprints []string
}

func (r *exportRun) skip() {
	r.mu.Lock()
	r.result.SkippedCount++
	r.mu.Unlock()
}

func (r *exportRun) fail(err error) {
	code, authRequired := classifyExportError(err)

	r.mu.Lock()
	r.result.SkippedCount++
	r.result.ErrorCode = code
	r.result.ErrorMessage = err.Error()
	if authRequired {
		r.result.AuthRequired = true
	}
	r.mu.Unlock()
}

// alreadyExported reports whether fp was exported before (or claimed by a
// concurrent worker of this run) and claims it otherwise.
func (r *exportRun) alreadyExported(fp string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[fp]; ok {
		return true
	}
	r.seen[fp] = struct{}{}
	return false
}

func (r *exportRun) created(fp string, event bool) {
	r.mu.Lock()
	if event {
		r.result.CreatedEvents++
	} else {
		r.result.CreatedTasks++
	}
	r.newFingerprints = append(r.newFingerprints, fp)
	r.mu.Unlock()
}

// release un-claims a fingerprint whose creation failed so a later run can
// retry it.
func (r *exportRun) release(fp string) {
	r.mu.Lock()
	delete(r.seen, fp)
	r.mu.Unlock()
}

// ExportSortedItems implements [SyncService].
func (s *googleSyncService) ExportSortedItems(ctx context.Context, items []models.SortedItem) models.ExportResult {
	if len(items) == 0 {
		return models.ExportResult{}
	}

	token, ok := s.gateway.AccessToken(ctx)
	if !ok {
		return models.ExportResult{
			SkippedCount: len(items),
			AuthRequired: true,
			ErrorCode:    models.ErrorCodeAuthRequired,
			ErrorMessage: "sign-in required before exporting",
		}
	}

	state := s.state.SyncState(ctx)
	listID := state.ListID
	if listID == "" {
		var err error
		listID, err = s.ensureInboxList(ctx, token)
		if err != nil {
			code, authRequired := classifyExportError(err)
			return models.ExportResult{
				SkippedCount: len(items),
				AuthRequired: authRequired,
				ErrorCode:    code,
				ErrorMessage: err.Error(),
			}
		}
		state.ListID = listID
		s.state.WriteSyncState(ctx, state)
	}

	exported := s.state.Fingerprints(ctx)
	run := &exportRun{seen: make(map[string]struct{}, len(exported)+len(items))}
	for _, fp := range exported {
		run.seen[fp] = struct{}{}
	}

	workers.RunChunked(len(items), s.cfg.ExportConcurrency, func(i int) {
		s.exportOne(ctx, token, listID, items[i], run)
	})

	if len(run.newFingerprints) > 0 {
		s.state.WriteFingerprints(ctx, append(exported, run.newFingerprints...))
	}

	s.logger.Info().
		Int("created_tasks", run.result.CreatedTasks).
		Int("created_events", run.result.CreatedEvents).
		Int("skipped", run.result.SkippedCount).
		Msg("export finished")

	return run.result
}

// exportOne routes a single sorted item to the right remote surface.
// Thoughts, worries and ideas stay local. An event that cannot land on the
// calendar, whether it has no start time or the creation itself fails,
// degrades to a plain task so the suggestion is not lost.
func (s *googleSyncService) exportOne(ctx context.Context, token, listID string, item models.SortedItem, run *exportRun) {
	switch item.Category {
	case models.CategoryTask, models.CategoryReminder, models.CategoryEvent:
	default:
		run.skip()
		return
	}

	if normalizeExportText(item.Text) == "" {
		run.skip()
		return
	}

	fp := exportFingerprint(item)
	if run.alreadyExported(fp) {
		s.logger.Debug().Str("category", string(item.Category)).Msg("item already exported, skipping")
		run.skip()
		return
	}

	if item.Category == models.CategoryEvent && item.Start != "" {
		err := s.calendar.CreateEvent(ctx, token, item)
		if err == nil {
			run.created(fp, true)
			return
		}
		s.logger.Warn().Err(err).Msg("creating calendar event failed, falling back to task")
	}

	if err := s.tasks.CreateTask(ctx, token, listID, item); err != nil {
		s.logger.Warn().Err(err).Str("category", string(item.Category)).Msg("exporting item failed")
		run.release(fp)
		run.fail(err)
		return
	}

	run.created(fp, false)
}

// classifyExportError maps a remote-call error to the user-facing code and
// reports whether re-authentication would help. Network is reserved for
// transport failures that never produced an HTTP status; anything else,
// including errors outside the adapter's taxonomy, reads as an API failure.
func classifyExportError(err error) (models.ErrorCode, bool) {
	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return models.ErrorCodeAPIError, false
	}

	switch {
	case apiErr.Status == 0:
		return models.ErrorCodeNetwork, false
	case adapter.IsAuthError(err):
		return models.ErrorCodeAuthFailed, true
	case apiErr.Status == 429:
		return models.ErrorCodeRateLimited, false
	default:
		return models.ErrorCodeAPIError, false
	}
}
