// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/internal/logger"
	"github.com/MKhiriev/brain-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalendarAdapter(t *testing.T, serverURL string) CalendarAPI {
	t.Helper()

	a, err := NewGoogleCalendarAdapter(config.Adapter{
		CalendarBaseURL: serverURL,
		RequestTimeout:  5 * time.Second,
		RetryDelays:     []time.Duration{time.Millisecond},
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── CreateEvent ─────────────────────────────────────────────────────────────

func TestCreateEvent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var body createEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "dentist appointment", body.Summary)
		assert.Equal(t, "2026-03-02T10:00:00Z", body.Start.DateTime)
		assert.Equal(t, "2026-03-02T10:30:00Z", body.End.DateTime)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestCalendarAdapter(t, srv.URL)
	err := a.CreateEvent(context.Background(), "token-1", models.SortedItem{
		Text:     "dentist  appointment",
		Category: models.CategoryEvent,
		Start:    "2026-03-02T10:00:00Z",
		End:      "2026-03-02T10:30:00Z",
	})

	assert.NoError(t, err)
}

func TestCreateEvent_DefaultsEndToOneHourAfterStart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body createEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2026-03-02T11:00:00Z", body.End.DateTime)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestCalendarAdapter(t, srv.URL)
	err := a.CreateEvent(context.Background(), "token-1", models.SortedItem{
		Text:     "standup",
		Category: models.CategoryEvent,
		Start:    "2026-03-02T10:00:00Z",
	})

	assert.NoError(t, err)
}

func TestCreateEvent_MissingStart(t *testing.T) {
	a := newTestCalendarAdapter(t, "http://127.0.0.1:1")
	err := a.CreateEvent(context.Background(), "token-1", models.SortedItem{Text: "standup"})

	assert.Error(t, err)
}

func TestCreateEvent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("calendar scope missing"))
	}))
	defer srv.Close()

	a := newTestCalendarAdapter(t, srv.URL)
	err := a.CreateEvent(context.Background(), "token-1", models.SortedItem{
		Text:  "standup",
		Start: "2026-03-02T10:00:00Z",
	})

	require.Error(t, err)
	assert.True(t, IsAuthError(err))
}
