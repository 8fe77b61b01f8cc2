package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/services"
)

// DashboardHandler serves the admin map aggregate
type DashboardHandler struct {
	reportSvc     *services.ReportService
	officeSvc     *services.OfficeService
	checkpointSvc *services.CheckpointService
	logger        *zap.SugaredLogger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(rs *services.ReportService, os *services.OfficeService, cs *services.CheckpointService, logger *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{reportSvc: rs, officeSvc: os, checkpointSvc: cs, logger: logger}
}

// Map handles GET /api/v1/admin/map. One payload feeds the dashboard map:
// open reports, every office location, and the checkpoints on shift right now.
func (h *DashboardHandler) Map(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reports, err := h.reportSvc.ListActive(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	offices, err := h.officeSvc.List(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	checkpoints, err := h.checkpointSvc.ListActiveAt(ctx, time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"active_reports":     reports,
		"police_offices":     offices,
		"active_checkpoints": checkpoints,
	})
}
