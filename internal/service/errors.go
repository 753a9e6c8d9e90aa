package service

import "errors"

var (
	ErrEmptyTopic = errors.New("note topic is empty")

	ErrMissingCredential   = errors.New("provider credential is not configured")
	ErrEmptyPrompt         = errors.New("missing prompt")
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
	ErrUpstreamInvalidJSON = errors.New("invalid JSON from upstream provider")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// Classified chat-tier failures, see mapAdapterError.
	ErrChatMisconfigured = errors.New("chat backend misconfigured")
	ErrChatUnavailable   = errors.New("chat backend unavailable")
	ErrChatRejected      = errors.New("chat request rejected")
	ErrChatEmptyAnswer   = errors.New("chat answer is empty")
)
