package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/services"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authSvc *services.AuthService
	logger  *zap.SugaredLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(as *services.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{authSvc: as, logger: logger}
}

// Login handles POST /api/v1/auth/login.
// One endpoint serves both admins and police offices; the response carries
// which role matched.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
