package main

import (
	"fmt"

	"github.com/MKhiriev/note-pilot/internal/config"
	"github.com/MKhiriev/note-pilot/internal/handler"
	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/server"
	"github.com/MKhiriev/note-pilot/internal/service"
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

	log := logger.NewLogger("note-pilot-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	// an explicit APP_VERSION wins over the linker-injected one
	if cfg.App.Version == config.DefaultVersion && buildInfo.Version != models.NotAvailable {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().
		Str("address", cfg.Server.Address()).
		Str("static_dir", cfg.Server.StaticDir).
		Str("model", cfg.Provider.Model).
		Str("version", cfg.App.Version).
		Bool("credential_set", cfg.Provider.APIKey != "").
		Msg("received configs")

	services, err := service.NewServices(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	if services.CompletionService.Ready() != nil {
		log.Warn().Msg("OPENAI_API_KEY is not set, /api/openai will answer 500")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
