package service

import (
	"context"
	"encoding/json"
)

// CompletionResult is the upstream answer relayed by the proxy endpoint.
type CompletionResult struct {
	// StatusCode is the upstream HTTP status, forwarded unchanged.
	StatusCode int
	// Body is the compacted upstream JSON document.
	Body json.RawMessage
}

// CompletionService forwards prompts to the upstream chat-completion
// provider on behalf of clients that must never see the credential.
type CompletionService interface {
	// Ready returns [ErrMissingCredential] when no provider key is configured.
	Ready() error

	// Complete sends a single user message to the provider.
	// Errors: [ErrMissingCredential], [ErrEmptyPrompt],
	// [ErrUpstreamUnavailable] (transport failure),
	// [ErrUpstreamInvalidJSON] (non-JSON answer).
	Complete(ctx context.Context, prompt string) (CompletionResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
