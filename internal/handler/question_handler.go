package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/internal/service"
	"liquidacenter-live/pkg/logger"
)

// QuestionHandler serves the live question resource.
type QuestionHandler struct {
	service *service.QuestionService
	logger  *logger.Logger
}

func NewQuestionHandler(service *service.QuestionService, log *logger.Logger) *QuestionHandler {
	return &QuestionHandler{service: service, logger: log}
}

// RegisterRoutes registers question routes with the router.
func (h *QuestionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/live-question", h.Get)
	r.Post("/live-question", h.Set)
}

// liveQuestionRequest mirrors the wire shape; pointer fields separate
// "absent" from zero values so presence checks work.
type liveQuestionRequest struct {
	Active             *bool                 `json:"active"`
	ID                 *string               `json:"id"`
	Question           string                `json:"question"`
	OptionA            string                `json:"optionA"`
	OptionB            string                `json:"optionB"`
	CorrectAnswerIndex *int                  `json:"correctAnswerIndex"`
	Difficulty         *domain.Difficulty    `json:"difficulty"`
	Status             domain.QuestionStatus `json:"status"`
	StartedAt          *time.Time            `json:"startedAt"`
}

// Get handles GET /live-question
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.Get(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, q, h.logger)
}

// Set handles POST /live-question
func (h *QuestionHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req liveQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", h.logger)
		return
	}
	if req.Active == nil {
		writeError(w, http.StatusBadRequest, "Invalid active status", h.logger)
		return
	}

	q := domain.LiveQuestion{
		Active:             *req.Active,
		ID:                 req.ID,
		Question:           req.Question,
		OptionA:            req.OptionA,
		OptionB:            req.OptionB,
		CorrectAnswerIndex: req.CorrectAnswerIndex,
		Difficulty:         req.Difficulty,
		Status:             req.Status,
		StartedAt:          req.StartedAt,
	}

	stored, err := h.service.Set(r.Context(), q)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stored, h.logger)
}
