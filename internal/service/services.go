// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/brain-sync/internal/adapter"
	"github.com/MKhiriev/brain-sync/internal/auth"
	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/internal/logger"
	"github.com/MKhiriev/brain-sync/internal/store"
)

// Services bundles the sync engine's service layer for the composition
// root.
type Services struct {
	Sync SyncService
	Job  SyncJob
}

// NewServices wires the service layer. With cfg.Disabled set it returns
// no-op implementations so the rest of the app needs no nil checks.
// onInboxCountChanged may be nil.
func NewServices(
	tasks adapter.TasksAPI,
	calendar adapter.CalendarAPI,
	gateway auth.TokenGateway,
	kv store.KeyValue,
	cfg config.Sync,
	onInboxCountChanged func(count int),
	log *logger.Logger,
) *Services {
	if cfg.Disabled {
		log.Info().Msg("sync disabled by configuration")
		return &Services{
			Sync: NewNoopSyncService(),
			Job:  NewNoopSyncJob(),
		}
	}

	state := store.NewStateStore(kv, cfg)
	inbox := store.NewInboxStore(kv)

	syncService := NewGoogleSyncService(
		tasks,
		calendar,
		gateway,
		state,
		inbox,
		cfg,
		onInboxCountChanged,
		log.GetChildLogger(),
	)

	return &Services{
		Sync: syncService,
		Job:  NewPollSyncJob(syncService, log.GetChildLogger()),
	}
}
