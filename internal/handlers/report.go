package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/services"
)

// ReportHandler handles incident report endpoints, including the
// report-scoped chat and the routing helper.
type ReportHandler struct {
	reportSvc  *services.ReportService
	messageSvc *services.MessageService
	logger     *zap.SugaredLogger
}

// NewReportHandler creates a new report handler
func NewReportHandler(rs *services.ReportService, ms *services.MessageService, logger *zap.SugaredLogger) *ReportHandler {
	return &ReportHandler{reportSvc: rs, messageSvc: ms, logger: logger}
}

// Submit handles POST /api/v1/reports
// Assigns the nearest police office and resolves the incident address.
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := h.reportSvc.Submit(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, report)
}

// Get handles GET /api/v1/reports/{id}
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	report, err := h.reportSvc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// ListActive handles GET /api/v1/reports
// Returns the dashboard projection of every unresolved report, newest first.
func (h *ReportHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	views, err := h.reportSvc.ListActive(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}

// UpdateStatus handles PUT /api/v1/reports/{id}
func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	var req models.UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := h.reportSvc.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// Delete handles DELETE /api/v1/reports/{id}
// Removes the report with its chat history and media metadata.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	if err := h.reportSvc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Report deleted"})
}

// Route handles GET /api/v1/reports/{id}/route
// Returns a directions URL from the assigned office to the incident plus a
// QR code for it.
func (h *ReportHandler) Route(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	directions, err := h.reportSvc.Route(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, directions)
}

// PostMessage handles POST /api/v1/reports/{id}/messages
func (h *ReportHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	var req models.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.messageSvc.Post(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

// ListMessages handles GET /api/v1/reports/{id}/messages
func (h *ReportHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	msgs, err := h.messageSvc.List(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, msgs)
}
