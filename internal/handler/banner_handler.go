package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"liquidacenter-live/internal/service"
	"liquidacenter-live/pkg/logger"
)

// BannerHandler serves the storefront live banner (/quiz-state).
type BannerHandler struct {
	service *service.BannerService
	logger  *logger.Logger
}

func NewBannerHandler(service *service.BannerService, log *logger.Logger) *BannerHandler {
	return &BannerHandler{service: service, logger: log}
}

// RegisterRoutes registers banner routes with the router.
func (h *BannerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/quiz-state", h.Get)
	r.Post("/quiz-state", h.Update)
}

type bannerRequest struct {
	Active  bool   `json:"active"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Get handles GET /quiz-state
func (h *BannerHandler) Get(w http.ResponseWriter, r *http.Request) {
	banner, err := h.service.Get(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, banner, h.logger)
}

// Update handles POST /quiz-state
func (h *BannerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", h.logger)
		return
	}

	banner, err := h.service.Update(r.Context(), req.Active, req.Title, req.Message)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, banner, h.logger)
}
