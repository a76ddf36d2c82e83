package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// The body is marshaled before any header is written, so a marshaling
// failure still leaves the response untouched and the caller free to send a
// fallback. In that case a wrapped error is returned and nothing is written.
//
// Example usage:
//
//	WriteJSON(w, models.NewHealthFailure(ts), http.StatusServiceUnavailable)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteFallbackJSON writes a pre-rendered JSON body. It is used when the
// regular response could not be marshaled.
func WriteFallbackJSON(w http.ResponseWriter, body string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}
