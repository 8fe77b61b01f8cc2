package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/services"
)

// AnalyticsHandler handles aggregate reporting endpoints
type AnalyticsHandler struct {
	analyticsSvc *services.AnalyticsService
	logger       *zap.SugaredLogger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(as *services.AnalyticsService, logger *zap.SugaredLogger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: as, logger: logger}
}

// Overview handles GET /api/v1/analytics/summary/overview
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.analyticsSvc.Overview(r.Context(), filters)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// Locations handles GET /api/v1/analytics/hotspots/locations
func (h *AnalyticsHandler) Locations(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	locations, err := h.analyticsSvc.TopLocations(r.Context(), filters)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

// Categories handles GET /api/v1/analytics/hotspots/categories
func (h *AnalyticsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	shares, err := h.analyticsSvc.CategoryConcentration(r.Context(), filters)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, shares)
}

// ResolvedCases handles GET /api/v1/reports/resolved. It accepts the same
// filter parameters as the analytics endpoints.
func (h *AnalyticsHandler) ResolvedCases(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cases, err := h.analyticsSvc.ResolvedCases(r.Context(), filters)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(cases),
		"results": cases,
	})
}

// parseFilters reads the shared analytics query parameters: days (default
// 30, 0 = all time), office_id, city, barangay, category ("all" = none).
func parseFilters(r *http.Request) (services.AnalyticsFilters, error) {
	f := services.AnalyticsFilters{Days: 30}
	q := r.URL.Query()

	if raw := q.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return f, fmt.Errorf("invalid query parameter: days")
		}
		f.Days = days
	}
	if raw := q.Get("office_id"); raw != "" {
		officeID, err := uuid.Parse(raw)
		if err != nil {
			return f, fmt.Errorf("invalid query parameter: office_id")
		}
		f.OfficeID = &officeID
	}
	f.City = q.Get("city")
	f.Barangay = q.Get("barangay")
	if raw := q.Get("category"); raw != "" && raw != "all" {
		f.Category = models.ReportCategory(raw)
	}
	return f, nil
}
