package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/services"
)

// CitizenHandler handles citizen account endpoints
type CitizenHandler struct {
	citizenSvc *services.CitizenService
	logger     *zap.SugaredLogger
}

// NewCitizenHandler creates a new citizen handler
func NewCitizenHandler(cs *services.CitizenService, logger *zap.SugaredLogger) *CitizenHandler {
	return &CitizenHandler{citizenSvc: cs, logger: logger}
}

// Register handles POST /api/v1/citizens
func (h *CitizenHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCitizenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	citizen, err := h.citizenSvc.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, citizen)
}

// Get handles GET /api/v1/citizens/{id}
func (h *CitizenHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid citizen id")
		return
	}

	citizen, err := h.citizenSvc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, citizen)
}

// Delete handles DELETE /api/v1/citizens/{id}
func (h *CitizenHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid citizen id")
		return
	}

	if err := h.citizenSvc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Citizen account deleted"})
}
