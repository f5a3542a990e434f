// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, "https://tasks.googleapis.com/tasks/v1", cfg.Adapter.TasksBaseURL)
	assert.Equal(t, "https://www.googleapis.com/calendar/v3", cfg.Adapter.CalendarBaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []time.Duration{350 * time.Millisecond, 900 * time.Millisecond, 1800 * time.Millisecond}, cfg.Adapter.RetryDelays)

	assert.Equal(t, 15*time.Minute, cfg.Sync.PollInterval)
	assert.Equal(t, "BrainSync Inbox", cfg.Sync.InboxListName)
	assert.Equal(t, 4, cfg.Sync.MarkConcurrency)
	assert.Equal(t, 4, cfg.Sync.ExportConcurrency)
	assert.Equal(t, 500, cfg.Sync.MaxProcessedIDs)
	assert.Equal(t, 1000, cfg.Sync.MaxFingerprints)

	assert.Equal(t, "brainsync.db", cfg.Storage.DB.DSN)
}

func TestBuild_EnvOverridesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SYNC_POLL_INTERVAL": "5m",
		"STORAGE_DB_DSN":     "custom.db",
	})

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Sync.PollInterval)
	assert.Equal(t, "custom.db", cfg.Storage.DB.DSN)

	// Untouched fields fall through to defaults.
	assert.Equal(t, "BrainSync Inbox", cfg.Sync.InboxListName)
	assert.Equal(t, 4, cfg.Sync.MarkConcurrency)
}

func TestBuild_JSONBelowEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"sync": { "poll_interval": "1h", "inbox_list_name": "From JSON" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	setEnvVars(t, map[string]string{
		"CONFIG":             p,
		"SYNC_POLL_INTERVAL": "5m",
	})

	cfg, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Sync.PollInterval, "env wins over JSON")
	assert.Equal(t, "From JSON", cfg.Sync.InboxListName, "JSON wins over defaults")
}

func TestBuild_MissingJSONFileFailsBuild(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": filepath.Join(t.TempDir(), "missing.json"),
	})

	cfg, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// ── validation ──────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig { return defaultConfig() }

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "in-memory dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "file::memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing tasks url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.TasksBaseURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing calendar url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.CalendarBaseURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero poll interval", mutate: func(cfg *StructuredConfig) { cfg.Sync.PollInterval = 0 }, wantErr: ErrInvalidSyncConfigs},
		{name: "empty list name", mutate: func(cfg *StructuredConfig) { cfg.Sync.InboxListName = "" }, wantErr: ErrInvalidSyncConfigs},
		{name: "zero mark concurrency", mutate: func(cfg *StructuredConfig) { cfg.Sync.MarkConcurrency = 0 }, wantErr: ErrInvalidSyncConfigs},
		{name: "zero export concurrency", mutate: func(cfg *StructuredConfig) { cfg.Sync.ExportConcurrency = 0 }, wantErr: ErrInvalidSyncConfigs},
		{name: "zero processed ids cap", mutate: func(cfg *StructuredConfig) { cfg.Sync.MaxProcessedIDs = 0 }, wantErr: ErrInvalidSyncConfigs},
		{name: "zero fingerprints cap", mutate: func(cfg *StructuredConfig) { cfg.Sync.MaxFingerprints = 0 }, wantErr: ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
