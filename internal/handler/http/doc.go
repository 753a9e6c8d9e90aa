// Package http implements the HTTP transport layer of the companion server.
//
// It exposes the AI proxy endpoint (POST /api/openai), the version endpoint
// and a static file fallback for every other path. Request tracing, access
// logging, CORS and response compression are applied as middleware before
// requests reach the service layer.
package http
