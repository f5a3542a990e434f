package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/brain-sync/internal/adapter"
	"github.com/MKhiriev/brain-sync/internal/auth"
	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/internal/logger"
	"github.com/MKhiriev/brain-sync/internal/store"
	"github.com/MKhiriev/brain-sync/internal/utils"
)

type googleSyncService struct {
	tasks    adapter.TasksAPI
	calendar adapter.CalendarAPI
	gateway  auth.TokenGateway
	state    *store.StateStore
	inbox    *store.InboxStore

	cfg config.Sync
	// onInboxCountChanged is invoked with the new inbox total after every
	// successful import write. Nil when no observer is registered.
	onInboxCountChanged func(count int)

	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger

	mu      sync.Mutex
	syncing bool
}

// NewGoogleSyncService constructs the Google-backed [SyncService].
// onInboxCountChanged may be nil.
func NewGoogleSyncService(
	tasks adapter.TasksAPI,
	calendar adapter.CalendarAPI,
	gateway auth.TokenGateway,
	state *store.StateStore,
	inbox *store.InboxStore,
	cfg config.Sync,
	onInboxCountChanged func(count int),
	log *logger.Logger,
) SyncService {
	return &googleSyncService{
		tasks:               tasks,
		calendar:            calendar,
		gateway:             gateway,
		state:               state,
		inbox:               inbox,
		cfg:                 cfg,
		onInboxCountChanged: onInboxCountChanged,
		ids:                 utils.NewUUIDGenerator(),
		now:                 time.Now,
		logger:              log,
	}
}

// beginSync flips the single-flight flag; false means an import is already
// running and the caller must no-op.
func (s *googleSyncService) beginSync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.syncing {
		return false
	}
	s.syncing = true
	return true
}

func (s *googleSyncService) endSync() {
	s.mu.Lock()
	s.syncing = false
	s.mu.Unlock()
}

// ensureInboxList resolves the well-known inbox list by title, creating it
// when absent, and returns its id.
func (s *googleSyncService) ensureInboxList(ctx context.Context, token string) (string, error) {
	lists, err := s.tasks.ListTaskLists(ctx, token)
	if err != nil {
		return "", err
	}

	for _, list := range lists {
		if list.ID != "" && list.Title == s.cfg.InboxListName {
			return list.ID, nil
		}
	}

	created, err := s.tasks.CreateTaskList(ctx, token, s.cfg.InboxListName)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}
