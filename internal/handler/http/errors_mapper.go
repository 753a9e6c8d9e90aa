package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/note-pilot/internal/app"
	"github.com/MKhiriev/note-pilot/internal/service"
	"github.com/MKhiriev/note-pilot/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrMissingCredential:   http.StatusInternalServerError,
	service.ErrEmptyPrompt:         http.StatusBadRequest,
	service.ErrUpstreamUnavailable: http.StatusBadGateway,
	service.ErrUpstreamInvalidJSON: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError renders the plain-text body sent along with statusFromError(err).
func messageFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingCredential):
		return app.MsgMissingCredential
	case errors.Is(err, service.ErrEmptyPrompt):
		return app.MsgMissingPrompt
	case errors.Is(err, service.ErrUpstreamInvalidJSON):
		return app.MsgInvalidUpstream
	case errors.Is(err, service.ErrUpstreamUnavailable):
		return app.MsgBadGatewayPrefix + err.Error()
	default:
		return app.MsgInternalPrefix + err.Error()
	}
}

func writeError(w http.ResponseWriter, err error) {
	utils.WriteText(w, statusFromError(err), messageFromError(err))
}
