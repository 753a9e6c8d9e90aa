package utils

import (
	"encoding/json"
	"net/http"
)

// WriteText writes body as a text/plain response with statusCode.
//
//	utils.WriteText(w, http.StatusNotFound, "Not found")
func WriteText(w http.ResponseWriter, statusCode int, body string) (int, error) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(statusCode)
	return w.Write([]byte(body))
}

// WriteRawJSON writes an already encoded JSON document unchanged.
// It is used to relay upstream answers without a decode/encode round trip.
func WriteRawJSON(w http.ResponseWriter, statusCode int, body json.RawMessage) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}
