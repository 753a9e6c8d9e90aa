package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/note-pilot/internal/adapter"
	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/mock"
)

func TestPrompt(t *testing.T) {
	assert.Equal(t, `Explain the topic "Entropy" in a single, clear, and concise sentence.`, Prompt("Entropy"))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "Entropy — a brief placeholder: this topic is about Entropy. (Live AI unavailable.)", Placeholder("Entropy"))
}

func TestSuggest_NoChatBackend(t *testing.T) {
	svc := NewSuggestionService(nil, logger.Nop())

	got := svc.Suggest(context.Background(), "Monads")
	assert.Equal(t, Placeholder("Monads"), got)
}

func TestSuggest_ChatAnswers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "choices message", raw: `{"choices":[{"message":{"content":"  Entropy measures disorder. "}}]}`, want: "Entropy measures disorder."},
		{name: "bare string", raw: `"A sentence."`, want: "A sentence."},
		{name: "unrecognized shape is dumped", raw: `{"foo": 1}`, want: `{"foo":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chat := mock.NewMockServerAdapter(ctrl)
			chat.EXPECT().
				Complete(gomock.Any(), Prompt("Entropy")).
				Return(json.RawMessage(tt.raw), nil)

			svc := NewSuggestionService(chat, logger.Nop())
			assert.Equal(t, tt.want, svc.Suggest(context.Background(), "Entropy"))
		})
	}
}

func TestSuggest_FallsBackToPlaceholder(t *testing.T) {
	tests := []struct {
		name  string
		setup func(chat *mock.MockServerAdapter)
	}{
		{
			name: "transport error",
			setup: func(chat *mock.MockServerAdapter) {
				chat.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
		},
		{
			name: "server misconfigured",
			setup: func(chat *mock.MockServerAdapter) {
				chat.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: no key", adapter.ErrInternalServerError))
			},
		},
		{
			name: "empty answer",
			setup: func(chat *mock.MockServerAdapter) {
				chat.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(json.RawMessage(`"   "`), nil)
			},
		},
		{
			name: "panic in backend",
			setup: func(chat *mock.MockServerAdapter) {
				chat.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
					func(context.Context, string) (json.RawMessage, error) { panic("boom") })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chat := mock.NewMockServerAdapter(ctrl)
			tt.setup(chat)

			svc := NewSuggestionService(chat, logger.Nop())
			got := svc.Suggest(context.Background(), "Go")
			assert.Equal(t, Placeholder("Go"), got)
		})
	}
}

func TestSuggest_NeverEmpty(t *testing.T) {
	svc := NewSuggestionService(nil, logger.Nop())
	for _, topic := range []string{"a", "Quantum tunnelling", "日本語"} {
		assert.NotEmpty(t, svc.Suggest(context.Background(), topic))
	}
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "500", err: adapter.ErrInternalServerError, want: ErrChatMisconfigured},
		{name: "502", err: adapter.ErrBadGateway, want: ErrChatUnavailable},
		{name: "invalid body", err: adapter.ErrInvalidResponse, want: ErrChatUnavailable},
		{name: "400", err: adapter.ErrBadRequest, want: ErrChatRejected},
		{name: "forwarded status", err: adapter.ErrUpstreamStatus, want: ErrChatRejected},
		{name: "transport", err: errors.New("dial tcp"), want: ErrChatUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	require.NoError(t, mapAdapterError(nil))
}
