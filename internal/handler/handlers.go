package handler

import (
	"fmt"
	"os"

	"github.com/MKhiriev/note-pilot/internal/config"
	"github.com/MKhiriev/note-pilot/internal/handler/http"
	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	info, err := os.Stat(cfg.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errStaticDirUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", errStaticDirUnavailable, cfg.StaticDir)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.StaticDir, logger),
	}, nil
}
