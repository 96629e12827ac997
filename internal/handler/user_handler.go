package handler

import (
	"encoding/json"
	"net/http"

	"quick-bite/internal/model"
	"quick-bite/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles registration and login requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// authResponse is returned on successful registration or login.
type authResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	Role    model.Role `json:"role"`
}

// Register handles POST /api/user/register requests.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, h.logger, err)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	writeJSON(w, authResponse{Success: true, Token: result.Token, Role: result.Role})
}

// Login handles POST /api/user/login requests.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, h.logger, err)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	writeJSON(w, authResponse{Success: true, Token: result.Token, Role: result.Role})
}
