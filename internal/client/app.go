package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/note-pilot/internal/adapter"
	"github.com/MKhiriev/note-pilot/internal/logger"
)

// versionProbeTimeout bounds the start-up check of the companion server.
const versionProbeTimeout = 2 * time.Second

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui            UI
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewApp builds the client application. serverAdapter may be nil, in which
// case every suggestion is the offline placeholder.
func NewApp(ui UI, serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, serverAdapter: serverAdapter, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.probeServer(ctx)

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// probeServer logs whether the companion server answers. A missing server
// is not fatal: suggestions fall back to the placeholder.
func (a *App) probeServer(ctx context.Context) {
	if a.serverAdapter == nil {
		a.logger.Info().Msg("no companion server configured, running offline")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	version, err := a.serverAdapter.GetServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("companion server is not reachable, suggestions may be placeholders")
		return
	}
	a.logger.Info().Str("server_version", version).Msg("companion server is up")
}
