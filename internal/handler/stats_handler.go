package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/internal/service"
	"liquidacenter-live/pkg/logger"
)

// StatsHandler serves the viewer/like counters.
type StatsHandler struct {
	service *service.StatsService
	logger  *logger.Logger
}

func NewStatsHandler(service *service.StatsService, log *logger.Logger) *StatsHandler {
	return &StatsHandler{service: service, logger: log}
}

// RegisterRoutes registers stats routes with the router.
func (h *StatsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/live-stats", h.Get)
	r.Post("/live-stats", h.Apply)
}

type statsActionRequest struct {
	Action string `json:"action"`
}

// Get handles GET /live-stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Get(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats, h.logger)
}

// Apply handles POST /live-stats
func (h *StatsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req statsActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", h.logger)
		return
	}

	stats, err := h.service.Apply(r.Context(), domain.StatsAction(req.Action))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats, h.logger)
}
