package http

import (
	"net/http"

	"github.com/MKhiriev/note-pilot/internal/utils"
)

// getServerVersion answers the client's start-up probe.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteText(w, http.StatusOK, h.services.AppInfoService.GetAppVersion(r.Context()))
}
