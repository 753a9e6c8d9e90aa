// Package utils provides small helpers shared by the server and the client:
// a preconfigured resty HTTP client, plain-text and raw-JSON response
// writers, and identifier generation.
package utils
