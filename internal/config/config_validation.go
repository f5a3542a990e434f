// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error from
// errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.TasksBaseURL == "" || cfg.Adapter.CalendarBaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.PollInterval <= 0 || cfg.Sync.InboxListName == "" {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.MarkConcurrency < 1 || cfg.Sync.ExportConcurrency < 1 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.MaxProcessedIDs < 1 || cfg.Sync.MaxFingerprints < 1 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
