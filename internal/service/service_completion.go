package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/note-pilot/internal/config"
	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/utils"
	"github.com/MKhiriev/note-pilot/models"
)

const chatCompletionsPath = "/v1/chat/completions"

type completionService struct {
	client *utils.HTTPClient
	apiKey string
	model  string

	logger *logger.Logger
}

// NewCompletionService returns a [CompletionService] calling the provider
// described by cfg. timeout bounds each upstream call; zero means no bound.
func NewCompletionService(cfg config.Provider, timeout time.Duration, logger *logger.Logger) CompletionService {
	return &completionService{
		client: utils.NewHTTPClient(cfg.BaseURL, timeout),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: logger,
	}
}

func (s *completionService) Ready() error {
	if s.apiKey == "" {
		return ErrMissingCredential
	}
	return nil
}

func (s *completionService) Complete(ctx context.Context, prompt string) (CompletionResult, error) {
	if err := s.Ready(); err != nil {
		return CompletionResult{}, err
	}
	if prompt == "" {
		return CompletionResult{}, ErrEmptyPrompt
	}

	log := logger.FromContext(ctx)

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewChatCompletionRequest(s.model, prompt)).
		Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).Str("func", "completionService.Complete").Msg("upstream request failed")
		return CompletionResult{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	var body bytes.Buffer
	if err = json.Compact(&body, resp.Body()); err != nil {
		log.Warn().
			Str("func", "completionService.Complete").
			Int("status", resp.StatusCode()).
			Msg("upstream answered with invalid JSON")
		return CompletionResult{}, ErrUpstreamInvalidJSON
	}

	log.Debug().
		Str("func", "completionService.Complete").
		Int("status", resp.StatusCode()).
		Dur("upstream_time", resp.Time()).
		Msg("upstream answered")

	return CompletionResult{StatusCode: resp.StatusCode(), Body: body.Bytes()}, nil
}
