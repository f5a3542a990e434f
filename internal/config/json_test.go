// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"adapter": {
			"tasks_base_url": "https://tasks.example.com/v1",
			"calendar_base_url": "https://calendar.example.com/v3",
			"request_timeout": "30s",
			"retry_delays": ["100ms", "200ms"]
		},
		"sync": {
			"disabled": true,
			"poll_interval": "5m",
			"inbox_list_name": "Custom Inbox",
			"mark_concurrency": 2,
			"export_concurrency": 8,
			"max_processed_ids": 100,
			"max_fingerprints": 200
		},
		"storage": {
			"db": { "dsn": "/var/lib/brainsync/brainsync.db" }
		},
		"auth": {
			"token_file": "/var/lib/brainsync/token.json"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://tasks.example.com/v1", cfg.Adapter.TasksBaseURL)
	assert.Equal(t, "https://calendar.example.com/v3", cfg.Adapter.CalendarBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, cfg.Adapter.RetryDelays)

	assert.True(t, cfg.Sync.Disabled)
	assert.Equal(t, 5*time.Minute, cfg.Sync.PollInterval)
	assert.Equal(t, "Custom Inbox", cfg.Sync.InboxListName)
	assert.Equal(t, 2, cfg.Sync.MarkConcurrency)
	assert.Equal(t, 8, cfg.Sync.ExportConcurrency)
	assert.Equal(t, 100, cfg.Sync.MaxProcessedIDs)
	assert.Equal(t, 200, cfg.Sync.MaxFingerprints)

	assert.Equal(t, "/var/lib/brainsync/brainsync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/brainsync/token.json", cfg.Auth.TokenFile)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{broken"), 0o600))

	cfg, err := parseJSON(p)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// ── Duration ────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", raw: `"15m"`, want: 15 * time.Minute},
		{name: "numeric nanoseconds", raw: `1000000000`, want: time.Second},
		{name: "invalid string", raw: `"fast"`, wantErr: true},
		{name: "invalid type", raw: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.raw), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Duration(90 * time.Second))

	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(raw))
}
