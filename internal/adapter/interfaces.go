// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport layer for the Google
// Tasks and Google Calendar REST APIs.
//
// The primary abstractions are [TasksAPI] and [CalendarAPI], which decouple
// the sync services from HTTP details. Every request is routed through a
// fixed-schedule retrier that retries transport failures and a small set of
// retryable HTTP statuses.
//
// Error values defined in errors.go are produced by mapAPIError so that
// callers can use [errors.Is]/[errors.As] for transport-agnostic handling
// ([ErrSyncTokenExpired] for 410 on the delta listing, [*APIError] carrying
// the HTTP status for everything else).
package adapter

import (
	"context"

	"github.com/MKhiriev/brain-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TasksAPI defines the narrow Google Tasks surface the sync engine needs.
// Implementations are responsible for serialisation, bearer-token headers,
// retrying, and mapping transport-level errors to the values defined in
// this package. The token argument is the OAuth bearer token obtained from
// the token gateway for the current operation.
type TasksAPI interface {
	// ListTaskLists returns all task lists of the authenticated user.
	ListTaskLists(ctx context.Context, token string) ([]models.TaskList, error)

	// CreateTaskList creates a task list with the given display title and
	// returns its remote representation.
	CreateTaskList(ctx context.Context, token, title string) (models.TaskList, error)

	// ListTasksDelta lists every task of listID changed since syncToken,
	// following nextPageToken pages internally until exhaustion. The
	// returned delta accumulates all items and the newest sync token seen.
	// An empty syncToken requests a full snapshot plus a starting token.
	// Returns [ErrSyncTokenExpired] when the server rejects syncToken
	// with HTTP 410; callers are expected to repeat the call without a
	// token.
	ListTasksDelta(ctx context.Context, token, listID, syncToken string) (models.TaskDelta, error)

	// PatchTaskStatus patches the status field of a single task
	// (models.TaskStatusCompleted / models.TaskStatusNeedsAction).
	PatchTaskStatus(ctx context.Context, token, listID, taskID, status string) error

	// CreateTask creates a task in listID from a sorted item: normalized
	// text becomes the title, category and event times are annotated in
	// the notes, and the due date is mapped to end of day UTC.
	CreateTask(ctx context.Context, token, listID string, item models.SortedItem) error
}

// CalendarAPI defines the single Google Calendar operation the export
// engine needs.
type CalendarAPI interface {
	// CreateEvent creates an event on the primary calendar from a sorted
	// item. The item must carry a start time; a missing end time defaults
	// to one hour after start.
	CreateEvent(ctx context.Context, token string, item models.SortedItem) error
}
