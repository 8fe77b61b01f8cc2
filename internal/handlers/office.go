package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/services"
)

// OfficeHandler handles police office account endpoints
type OfficeHandler struct {
	officeSvc *services.OfficeService
	logger    *zap.SugaredLogger
}

// NewOfficeHandler creates a new office handler
func NewOfficeHandler(os *services.OfficeService, logger *zap.SugaredLogger) *OfficeHandler {
	return &OfficeHandler{officeSvc: os, logger: logger}
}

// Create handles POST /api/v1/police-offices
func (h *OfficeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	office, err := h.officeSvc.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, office)
}

// Get handles GET /api/v1/police-offices/{id}
func (h *OfficeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid office id")
		return
	}

	office, err := h.officeSvc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, office)
}

// List handles GET /api/v1/police-offices
func (h *OfficeHandler) List(w http.ResponseWriter, r *http.Request) {
	offices, err := h.officeSvc.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, offices)
}

// Update handles PUT /api/v1/police-offices/{id}
func (h *OfficeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid office id")
		return
	}

	var req models.UpdateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	office, err := h.officeSvc.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, office)
}

// Delete handles DELETE /api/v1/police-offices/{id}
func (h *OfficeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid office id")
		return
	}

	if err := h.officeSvc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Police office deleted"})
}
