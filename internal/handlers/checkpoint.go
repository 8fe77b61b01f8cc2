package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/services"
)

// CheckpointHandler handles patrol checkpoint endpoints
type CheckpointHandler struct {
	checkpointSvc *services.CheckpointService
	logger        *zap.SugaredLogger
}

// NewCheckpointHandler creates a new checkpoint handler
func NewCheckpointHandler(cs *services.CheckpointService, logger *zap.SugaredLogger) *CheckpointHandler {
	return &CheckpointHandler{checkpointSvc: cs, logger: logger}
}

// Create handles POST /api/v1/checkpoints
func (h *CheckpointHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCheckpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	checkpoint, err := h.checkpointSvc.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, checkpoint)
}

// Get handles GET /api/v1/checkpoints/{id}
func (h *CheckpointHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid checkpoint id")
		return
	}

	checkpoint, err := h.checkpointSvc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, checkpoint)
}

// List handles GET /api/v1/checkpoints
func (h *CheckpointHandler) List(w http.ResponseWriter, r *http.Request) {
	checkpoints, err := h.checkpointSvc.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, checkpoints)
}

// ListActive handles GET /api/v1/checkpoints/active
// Returns checkpoints whose shift window contains the server's current time.
func (h *CheckpointHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	checkpoints, err := h.checkpointSvc.ListActiveAt(r.Context(), time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, checkpoints)
}

// Update handles PUT /api/v1/checkpoints/{id}
func (h *CheckpointHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid checkpoint id")
		return
	}

	var req models.UpdateCheckpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	checkpoint, err := h.checkpointSvc.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, checkpoint)
}

// Delete handles DELETE /api/v1/checkpoints/{id}
func (h *CheckpointHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid checkpoint id")
		return
	}

	if err := h.checkpointSvc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Checkpoint deleted"})
}
