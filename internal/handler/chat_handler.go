package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/internal/service"
	"liquidacenter-live/pkg/logger"
)

// ChatHandler serves the live chat window.
type ChatHandler struct {
	service *service.ChatService
	logger  *logger.Logger
}

func NewChatHandler(service *service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: log}
}

// RegisterRoutes registers chat routes with the router.
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Get("/live-chat", h.List)
	r.Post("/live-chat", h.Post)
}

type chatPostRequest struct {
	UserName string          `json:"userName"`
	Role     domain.UserRole `json:"role"`
	Text     string          `json:"text"`
}

// List handles GET /live-chat
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, messages, h.logger)
}

// Post handles POST /live-chat
func (h *ChatHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req chatPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", h.logger)
		return
	}

	msg, err := h.service.Post(r.Context(), req.UserName, req.Role, req.Text)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, msg, h.logger)
}
