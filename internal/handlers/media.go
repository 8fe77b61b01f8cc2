package handlers

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/services"
)

// maxUploadBytes caps a single media upload at 32 MiB.
const maxUploadBytes = 32 << 20

// MediaHandler handles media attachment endpoints
type MediaHandler struct {
	mediaSvc *services.MediaService
	logger   *zap.SugaredLogger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(ms *services.MediaService, logger *zap.SugaredLogger) *MediaHandler {
	return &MediaHandler{mediaSvc: ms, logger: logger}
}

// Upload handles POST /api/v1/media
// Multipart form: report (uuid), sender_id (uuid), file_type (image|video),
// file (the payload).
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	reportID, err := uuid.Parse(r.FormValue("report"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}
	senderID, err := uuid.Parse(r.FormValue("sender_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid sender id")
		return
	}
	kind := models.MediaKind(r.FormValue("file_type"))

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	item, err := h.mediaSvc.Attach(r.Context(), reportID, senderID, kind,
		header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// List handles GET /api/v1/media
// An optional ?report= query narrows to one report's attachments.
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("report"); raw != "" {
		reportID, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid report id")
			return
		}
		items, err := h.mediaSvc.ListByReport(r.Context(), reportID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
		return
	}

	items, err := h.mediaSvc.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}
