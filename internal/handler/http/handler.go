package http

import (
	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/service"
)

type Handler struct {
	services *service.Services

	// staticDir is the base directory for every non-API path.
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, staticDir string, logger *logger.Logger) *Handler {
	logger.Info().Str("static_dir", staticDir).Msg("http handler created")
	return &Handler{
		services:  services,
		staticDir: staticDir,
		logger:    logger,
	}
}
