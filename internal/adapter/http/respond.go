package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

type errorBody struct {
	Error string `json:"error"`
}

// envelope is the {"success": true, "data": ...} wrapper used by the
// mitigation, forecast, and contact routes.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

var errBodyTooLarge = errors.New("request body too large")

func writeData(w http.ResponseWriter, message string, data any) {
	sharedobs.WriteJSON(w, http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// writeError maps domain errors onto status codes. Unrecognised errors are
// logged and reported as a generic 500.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, errBodyTooLarge):
		sharedobs.WriteJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: "Request body too large"})
	case errors.Is(err, domain.ErrInvalidInput):
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		sharedobs.WriteJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrUpstreamUnauthorized):
		sharedobs.WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "Invalid API key"})
	case errors.Is(err, domain.ErrUpstreamRateLimited):
		sharedobs.WriteJSON(w, http.StatusTooManyRequests, errorBody{Error: "API rate limit exceeded"})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		logger.Warn("weather provider unavailable", "error", err)
		sharedobs.WriteJSON(w, http.StatusBadGateway, errorBody{Error: "Weather data unavailable"})
	default:
		logger.Error("request failed", "error", err)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
	}
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return fmt.Errorf("%w: malformed JSON body: %w", domain.ErrInvalidInput, err)
	}
	return nil
}
