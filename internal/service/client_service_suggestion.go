package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/note-pilot/internal/adapter"
	"github.com/MKhiriev/note-pilot/internal/logger"
)

// Prompt is the instruction sent to the chat backend for topic.
func Prompt(topic string) string {
	return `Explain the topic "` + topic + `" in a single, clear, and concise sentence.`
}

// Placeholder is the deterministic answer used when no live answer is
// available.
func Placeholder(topic string) string {
	return fmt.Sprintf("%s — a brief placeholder: this topic is about %s. (Live AI unavailable.)", topic, topic)
}

type suggestionService struct {
	chat adapter.ServerAdapter

	logger *logger.Logger
}

// NewSuggestionService returns a [SuggestionService] that asks chat first and
// falls back to [Placeholder]. chat may be nil, in which case every
// suggestion is the placeholder.
func NewSuggestionService(chat adapter.ServerAdapter, logger *logger.Logger) SuggestionService {
	return &suggestionService{chat: chat, logger: logger}
}

func (s *suggestionService) Suggest(ctx context.Context, topic string) string {
	answer, err := s.fromChat(ctx, topic)
	if err == nil {
		return answer
	}

	s.logger.Warn().Err(err).
		Str("func", "suggestionService.Suggest").
		Str("topic", topic).
		Msg("live suggestion unavailable, using placeholder")
	return Placeholder(topic)
}

func (s *suggestionService) fromChat(ctx context.Context, topic string) (answer string, err error) {
	if s.chat == nil {
		return "", ErrChatMisconfigured
	}

	defer func() {
		if r := recover(); r != nil {
			answer, err = "", fmt.Errorf("%w: panic: %v", ErrChatUnavailable, r)
		}
	}()

	raw, err := s.chat.Complete(ctx, Prompt(topic))
	if err != nil {
		return "", mapAdapterError(err)
	}

	reply := DecodeReply(raw)
	if reply.Kind == ReplyUnrecognized {
		s.logger.Debug().
			Str("func", "suggestionService.fromChat").
			Msg("chat reply has an unrecognized shape, returning raw dump")
	}
	if reply.Text == "" {
		return "", ErrChatEmptyAnswer
	}

	return reply.Text, nil
}
