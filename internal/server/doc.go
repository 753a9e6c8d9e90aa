// Package server runs the companion HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown once SIGINT, SIGTERM or SIGQUIT arrives.
package server
