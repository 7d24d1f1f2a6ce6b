package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error             string `json:"error"`
	Retryable         bool   `json:"retryable,omitempty"`
	RetryAfterSeconds int64  `json:"retry_after_seconds,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error onto a status code and writes it.
// Cooldowns also set the Retry-After header.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	status, resp := mapServiceError(err)
	if resp.RetryAfterSeconds > 0 {
		w.Header().Set("Retry-After", strconv.FormatInt(resp.RetryAfterSeconds, 10))
	}

	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Debug(opName+" rejected", "error", err, "status", status)
	}

	respondJSON(w, status, resp)
}

// mapServiceError converts a domain error into an HTTP status and a user-facing body.
// Terminal errors keep their own message because it tells the player what to do.
func mapServiceError(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgUnknownError}
	}

	var cooldown *domain.OnCooldownError
	if errors.As(err, &cooldown) {
		return http.StatusTooManyRequests, ErrorResponse{
			Error:             cooldown.Error(),
			RetryAfterSeconds: cooldown.RemainingSeconds(),
		}
	}

	for _, target := range []error{
		domain.ErrMissionNotFound,
		domain.ErrItemNotFound,
		domain.ErrUserNotFound,
		domain.ErrStackNotFound,
	} {
		if errors.Is(err, target) {
			return http.StatusNotFound, ErrorResponse{Error: target.Error()}
		}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgResourceNotFound}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ErrorResponse{Error: domain.ErrMsgUnauthorized}
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrorResponse{Error: domain.ErrMsgOnCooldown}
	case errors.Is(err, domain.ErrConcurrentModification):
		return http.StatusConflict, ErrorResponse{Error: domain.ErrMsgConcurrentModification, Retryable: true}
	case errors.Is(err, domain.ErrStoreFailure):
		return http.StatusServiceUnavailable, ErrorResponse{Error: ErrMsgUnavailable, Retryable: true}
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrorResponse{Error: domain.ErrMsgInvalidQuantity}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: domain.ErrMsgInvalidInput}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
}
