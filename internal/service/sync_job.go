package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/brain-sync/internal/logger"
)

// pollSyncJob runs the import on a fixed ticker while the app is in the
// foreground. The first import fires on the first tick, a full interval
// after Start.
type pollSyncJob struct {
	service SyncService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPollSyncJob constructs a [SyncJob] that drives service.SyncToBrainDump.
func NewPollSyncJob(service SyncService, log *logger.Logger) SyncJob {
	return &pollSyncJob{
		service: service,
		logger:  log,
	}
}

// Start implements [SyncJob]. Calling Start while the job is running is a
// no-op; the existing schedule keeps its phase.
func (j *pollSyncJob) Start(ctx context.Context, interval time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancel != nil {
		j.logger.Debug().Msg("sync job already running")
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.done = make(chan struct{})

	go j.run(runCtx, interval, j.done)
	j.logger.Info().Dur("interval", interval).Msg("sync job started")
}

// Stop implements [SyncJob]. It blocks until the loop goroutine exits and
// is safe to call when the job never started.
func (j *pollSyncJob) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	j.logger.Info().Msg("sync job stopped")
}

func (j *pollSyncJob) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.syncOnce(ctx)
		}
	}
}

func (j *pollSyncJob) syncOnce(ctx context.Context) {
	if _, err := j.service.SyncToBrainDump(ctx); err != nil {
		j.logger.Warn().Err(err).Msg("scheduled import failed")
	}
}
