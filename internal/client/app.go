package client

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/brain-sync/internal/logger"
	"github.com/MKhiriev/brain-sync/internal/service"
)

type App struct {
	services *service.Services

	pollInterval time.Duration
	logger       *logger.Logger
}

func NewApp(services *service.Services, pollInterval time.Duration, log *logger.Logger) *App {
	return &App{
		services:     services,
		pollInterval: pollInterval,
		logger:       log,
	}
}

// Run starts the polling sync job and blocks until SIGINT or SIGTERM. The
// job is stopped before Run returns so the last import finishes its writes.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.services.Job.Start(ctx, a.pollInterval)
	defer a.services.Job.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("shutdown signal received")

	return nil
}
