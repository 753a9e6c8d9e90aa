package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/note-pilot/internal/adapter"
	"github.com/MKhiriev/note-pilot/internal/client"
	"github.com/MKhiriev/note-pilot/internal/config"
	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/service"
	"github.com/MKhiriev/note-pilot/internal/store"
	"github.com/MKhiriev/note-pilot/internal/tui"
	"github.com/MKhiriev/note-pilot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("note-pilot-client").Fatal().Err(err).Msg("error getting configs")
	}

	// stdout belongs to the terminal UI, so the client logs to a file.
	log := logger.NewClientLogger("note-pilot-client", cfg.LogFile)

	var serverAdapter adapter.ServerAdapter
	if cfg.Adapter.HTTPAddress != "" {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create server adapter")
		}
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
