package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/note-pilot/internal/app"
	"github.com/MKhiriev/note-pilot/internal/utils"
)

const indexFile = "index.html"

var contentTypes = map[string]string{
	".html": "text/html",
	".js":   "application/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".txt":  "text/plain",
}

func contentTypeFor(name string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// staticPath maps a request path onto a file below base. The path is
// cleaned as an absolute URL path first, so ".." can never climb above base.
func staticPath(base, urlPath string) string {
	name := path.Clean("/" + urlPath)
	if name == "/" || strings.HasSuffix(urlPath, "/") {
		name = path.Join(name, indexFile)
	}
	return filepath.Join(base, filepath.FromSlash(name))
}

func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	filePath := staticPath(h.staticDir, r.URL.Path)

	content, err := os.ReadFile(filePath)
	if err != nil {
		utils.WriteText(w, http.StatusNotFound, app.MsgNotFound)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(filePath))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
