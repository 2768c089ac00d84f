package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/pkg/logger"
)

// errorResponse is the wire shape for every error: {"error": message}.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string, log *logger.Logger) {
	writeJSON(w, status, errorResponse{Error: message}, log)
}

// writeDomainError maps the error taxonomy onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error, log *logger.Logger) {
	switch {
	case errors.Is(err, domain.ErrAlreadyVoted):
		writeError(w, http.StatusForbidden, err.Error(), log)
	case errors.Is(err, domain.ErrQuestionActive):
		writeError(w, http.StatusConflict, err.Error(), log)
	case errors.Is(err, domain.ErrInvalidVote),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrMissingQuestionID),
		errors.Is(err, domain.ErrMissingChatFields):
		writeError(w, http.StatusBadRequest, err.Error(), log)
	default:
		log.WithError(err).Error("Request failed")
		writeError(w, http.StatusInternalServerError, "internal server error", log)
	}
}

// MethodNotAllowed answers unsupported verbs with the Allow header every
// endpoint shares.
func MethodNotAllowed(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "Method "+r.Method+" Not Allowed", log)
	}
}
