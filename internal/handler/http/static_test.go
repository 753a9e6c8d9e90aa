package http

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticPath(t *testing.T) {
	base := filepath.FromSlash("/srv/www")

	tests := []struct {
		urlPath string
		want    string
	}{
		{"/", "/srv/www/index.html"},
		{"", "/srv/www/index.html"},
		{"/app.js", "/srv/www/app.js"},
		{"/docs/", "/srv/www/docs/index.html"},
		{"/a/../b.css", "/srv/www/b.css"},
		{"/../../etc/passwd", "/srv/www/etc/passwd"},
		{"/..", "/srv/www/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.urlPath, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), staticPath(base, tt.urlPath))
		})
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := map[string]string{
		"index.html":  "text/html",
		"app.js":      "application/javascript",
		"style.css":   "text/css",
		"notes.json":  "application/json",
		"logo.png":    "image/png",
		"photo.jpg":   "image/jpeg",
		"photo.JPEG":  "image/jpeg",
		"icon.svg":    "image/svg+xml",
		"favicon.ico": "image/x-icon",
		"readme.txt":  "text/plain",
		"archive.zip": "application/octet-stream",
		"Makefile":    "application/octet-stream",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, contentTypeFor(name))
		})
	}
}
