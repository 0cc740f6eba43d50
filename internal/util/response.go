package util

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type errorBody struct {
	Error string `json:"error"`
}

//WithBodyAndStatus writes body as JSON with the given status code
func WithBodyAndStatus(body interface{}, status int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	if body == nil {
		w.WriteHeader(status)
		return
	}

	b, err := json.Marshal(body)
	if err != nil {
		log.WithError(err).Errorf("failed to marshal response body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		log.WithError(err).Warn("failed to write response body")
	}
}

//WithError writes an {"error": message} body
func WithError(message string, status int, w http.ResponseWriter) {
	WithBodyAndStatus(errorBody{Error: message}, status, w)
}
