package service

import (
	"fmt"

	"github.com/MKhiriev/note-pilot/internal/config"
	"github.com/MKhiriev/note-pilot/internal/logger"
)

type Services struct {
	CompletionService CompletionService
	AppInfoService    AppInfoService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		CompletionService: NewCompletionService(cfg.Provider, cfg.Server.RequestTimeout, logger),
		AppInfoService:    appInfo,
	}, nil
}
