// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/brain-sync/internal/adapter"
	"github.com/MKhiriev/brain-sync/internal/workers"
	"github.com/MKhiriev/brain-sync/models"
)

// googleTaskIDPrefix marks inbox items created by the importer so they can
// be told apart from locally captured ones.
const googleTaskIDPrefix = "google-"

// SyncToBrainDump implements [SyncService].
func (s *googleSyncService) SyncToBrainDump(ctx context.Context) (models.ImportResult, error) {
	var result models.ImportResult

	if !s.beginSync() {
		s.logger.Debug().Msg("import already in flight, skipping")
		return result, nil
	}
	defer s.endSync()

	token, ok := s.gateway.AccessToken(ctx)
	if !ok {
		s.logger.Debug().Msg("no access token, skipping import")
		return result, nil
	}

	state := s.state.SyncState(ctx)

	listID := state.ListID
	if listID == "" {
		var err error
		listID, err = s.ensureInboxList(ctx, token)
		if err != nil {
			return result, err
		}
	}

	delta, err := s.tasks.ListTasksDelta(ctx, token, listID, state.SyncToken)
	if errors.Is(err, adapter.ErrSyncTokenExpired) {
		s.logger.Info().Msg("sync token expired, falling back to full sync")
		delta, err = s.tasks.ListTasksDelta(ctx, token, listID, "")
	}
	if err != nil {
		return result, err
	}

	processed := s.state.ProcessedIDs(ctx)
	processedSet := make(map[string]struct{}, len(processed))
	for _, id := range processed {
		processedSet[id] = struct{}{}
	}

	// Existing inbox items guard against re-import even when the remote
	// acknowledgement never landed and the processed set lost the id.
	existing := s.inbox.Items(ctx)
	linked := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		if item.GoogleTaskID != "" {
			linked[item.GoogleTaskID] = struct{}{}
		}
	}

	now := s.now().UTC().Format(time.RFC3339)

	var imported []models.BrainDumpItem
	var toMark []models.RemoteTask
	for _, task := range delta.Items {
		if task.ID == "" || task.Deleted || task.Status == models.TaskStatusCompleted {
			result.SkippedCount++
			continue
		}
		if _, done := processedSet[task.ID]; done {
			result.SkippedCount++
			continue
		}
		if _, present := linked[task.ID]; present {
			result.SkippedCount++
			continue
		}
		text := joinTaskText(task.Title, task.Notes)
		if text == "" {
			result.SkippedCount++
			continue
		}

		createdAt := task.Updated
		if createdAt == "" {
			createdAt = now
		}

		imported = append(imported, models.BrainDumpItem{
			ID:           googleTaskIDPrefix + s.ids.Generate(),
			Text:         text,
			CreatedAt:    createdAt,
			Source:       models.InboxSourceGoogle,
			GoogleTaskID: task.ID,
		})
		toMark = append(toMark, task)
	}

	if len(imported) > 0 {
		next := append(imported, existing...)
		if !s.inbox.Replace(ctx, next) {
			return result, errors.New("persisting imported inbox items failed")
		}
		result.ImportedCount = len(imported)
		if s.onInboxCountChanged != nil {
			s.onInboxCountChanged(len(next))
		}

		marked := s.markImportedCompleted(ctx, token, listID, toMark)
		for i, ok := range marked {
			if ok {
				processed = append(processed, toMark[i].ID)
				result.MarkedCompletedCount++
			}
		}
		s.state.WriteProcessedIDs(ctx, processed)
	}

	nextState := models.SyncState{ListID: listID, SyncToken: state.SyncToken}
	if delta.NextSyncToken != "" {
		result.SyncTokenUpdated = delta.NextSyncToken != state.SyncToken
		nextState.SyncToken = delta.NextSyncToken
	}
	s.state.WriteSyncState(ctx, nextState)
	s.state.WriteLastSyncAt(ctx, s.now())

	s.logger.Info().
		Int("imported", result.ImportedCount).
		Int("skipped", result.SkippedCount).
		Int("marked_completed", result.MarkedCompletedCount).
		Msg("import finished")

	return result, nil
}

// markImportedCompleted acknowledges imported tasks remotely so the next
// delta does not re-deliver them. Patches run in bounded-width chunks; a
// failed patch is logged and its task stays out of the processed-id set so
// a later delivery gets another chance to acknowledge it.
func (s *googleSyncService) markImportedCompleted(ctx context.Context, token, listID string, tasks []models.RemoteTask) []bool {
	marked := make([]bool, len(tasks))

	workers.RunChunked(len(tasks), s.cfg.MarkConcurrency, func(i int) {
		err := s.tasks.PatchTaskStatus(ctx, token, listID, tasks[i].ID, models.TaskStatusCompleted)
		if err != nil {
			s.logger.Warn().Err(err).Str("task_id", tasks[i].ID).Msg("marking imported task completed failed")
			return
		}
		marked[i] = true
	})

	return marked
}

// joinTaskText merges a task's title and notes into the inbox item text.
// A task without a usable title yields "" so the caller skips it; notes
// alone never become an inbox item.
func joinTaskText(title, notes string) string {
	title = strings.TrimSpace(title)
	notes = strings.TrimSpace(notes)

	switch {
	case title == "":
		return ""
	case notes == "":
		return title
	default:
		return title + "\n\n" + notes
	}
}
