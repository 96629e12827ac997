package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"quick-bite/internal/model"

	"github.com/rs/zerolog"
)

// messageResponse is the uniform acknowledgement/failure envelope.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// dataResponse wraps list payloads.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// writeJSON writes a response. Application outcomes always travel in the
// body; the transport status stays 200 so existing clients keep working.
func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// fail maps an error to the failure envelope. Domain errors keep their exact
// client-facing message; everything else collapses to "Error".
func fail(w http.ResponseWriter, logger zerolog.Logger, err error) {
	message := "Error"
	var derr *model.DomainError
	if errors.As(err, &derr) {
		message = derr.Message
	}

	logger.Warn().Err(err).Str("message", message).Msg("request failed")
	writeJSON(w, messageResponse{Success: false, Message: message})
}
