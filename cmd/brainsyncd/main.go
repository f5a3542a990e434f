package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/brain-sync/internal/adapter"
	"github.com/MKhiriev/brain-sync/internal/auth"
	"github.com/MKhiriev/brain-sync/internal/client"
	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/internal/logger"
	"github.com/MKhiriev/brain-sync/internal/service"
	"github.com/MKhiriev/brain-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("brainsyncd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect local database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate local database")
	}

	tasksAdapter, err := adapter.NewGoogleTasksAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create tasks adapter")
	}

	calendarAdapter, err := adapter.NewGoogleCalendarAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create calendar adapter")
	}

	gateway := auth.NewFileTokenGateway(cfg.Auth, log)
	kv := store.NewKeyValueStorage(db, log)

	services := service.NewServices(tasksAdapter, calendarAdapter, gateway, kv, cfg.Sync, nil, log)

	app := client.NewApp(services, cfg.Sync.PollInterval, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
