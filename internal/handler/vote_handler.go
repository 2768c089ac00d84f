package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/internal/service"
	"liquidacenter-live/pkg/logger"
)

// VoteHandler serves vote submission and the tally read model.
type VoteHandler struct {
	service *service.VoteService
	logger  *logger.Logger
}

func NewVoteHandler(service *service.VoteService, log *logger.Logger) *VoteHandler {
	return &VoteHandler{service: service, logger: log}
}

// RegisterRoutes registers vote routes with the router.
func (h *VoteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/live-vote", h.Results)
	r.Post("/live-vote", h.Cast)
}

// voteResponse acknowledges an accepted vote.
type voteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Results handles GET /live-vote?questionId=
func (h *VoteHandler) Results(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Results(r.Context(), r.URL.Query().Get("questionId"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, results, h.logger)
}

// Cast handles POST /live-vote
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req domain.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", h.logger)
		return
	}

	if err := h.service.Cast(r.Context(), req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, voteResponse{Success: true, Message: "Vote registered."}, h.logger)
}
