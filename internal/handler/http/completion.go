package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/note-pilot/internal/app"
	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/utils"
	"github.com/MKhiriev/note-pilot/models"
)

// maxProxyBody bounds the JSON document accepted by the proxy endpoint.
const maxProxyBody = 1 << 20

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.CompletionService.Ready(); err != nil {
		log.Error().Err(err).Str("func", "*Handler.complete").Msg("provider credential is missing")
		writeError(w, err)
		return
	}

	request, err := decodeProxyRequest(http.MaxBytesReader(w, r.Body, maxProxyBody))
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.complete").Msg("invalid proxy request body")
		utils.WriteText(w, http.StatusBadRequest, app.MsgInvalidBody)
		return
	}
	if request.Prompt == "" {
		utils.WriteText(w, http.StatusBadRequest, app.MsgMissingPrompt)
		return
	}

	result, err := h.services.CompletionService.Complete(r.Context(), request.Prompt)
	if err != nil {
		log.Err(err).Str("func", "*Handler.complete").Msg("completion failed")
		writeError(w, err)
		return
	}

	utils.WriteRawJSON(w, result.StatusCode, result.Body)
}

var errTrailingData = errors.New("unexpected data after JSON document")

// decodeProxyRequest reads exactly one JSON document. An empty or blank body
// decodes as {} so that it is reported as a missing prompt.
func decodeProxyRequest(body io.Reader) (models.ProxyRequest, error) {
	var request models.ProxyRequest

	raw, err := io.ReadAll(body)
	if err != nil {
		return request, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return request, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err = dec.Decode(&request); err != nil {
		return request, err
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return request, errTrailingData
	}
	return request, nil
}
