package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/geocode"
	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/routing"
	"github.com/crash-ph/crash-server/internal/store"
)

// ReportService owns the report lifecycle: creation with nearest-office
// assignment, status transitions, the active-report dashboard and the
// report-scoped routing query.
type ReportService struct {
	reports  store.ReportStore
	offices  store.OfficeStore
	citizens store.CitizenStore
	geocoder geocode.Geocoder // nil disables reverse geocoding
	logger   *zap.SugaredLogger
}

// NewReportService creates a new report service. geocoder may be nil.
func NewReportService(reports store.ReportStore, offices store.OfficeStore, citizens store.CitizenStore, geocoder geocode.Geocoder, logger *zap.SugaredLogger) *ReportService {
	return &ReportService{reports: reports, offices: offices, citizens: citizens, geocoder: geocoder, logger: logger}
}

// Submit creates a report in status Pending and assigns the nearest office.
// With no offices registered the report is still created, unassigned.
func (s *ReportService) Submit(ctx context.Context, req *models.SubmitReportRequest) (*models.Report, error) {
	if !req.Category.Valid() {
		return nil, invalidf("category %q is not one of Accident, Crime, Fire, Medical, Other", req.Category)
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, invalidf("latitude and longitude are required")
	}
	lat, lng := *req.Latitude, *req.Longitude
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, invalidf("coordinates (%v, %v) out of range", lat, lng)
	}

	offices, err := s.offices.ListOffices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}

	report := &models.Report{
		ID:          uuid.New(),
		ReporterID:  req.Reporter,
		Category:    req.Category,
		Description: req.Description,
		Status:      models.StatusPending,
		Latitude:    lat,
		Longitude:   lng,
		CreatedAt:   time.Now(),
	}
	if nearest := nearestOffice(offices, lat, lng); nearest != nil {
		id := nearest.ID
		report.AssignedOfficeID = &id
	}

	// Best effort: a geocoder failure never fails the submission.
	if s.geocoder != nil {
		city, barangay, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
		if err != nil {
			s.logger.Warnw("Reverse geocoding failed", "report_id", report.ID, "error", err)
		} else {
			report.LocationCity = city
			report.LocationBarangay = barangay
		}
	}

	if err := s.reports.CreateReport(ctx, report); err != nil {
		return nil, fromStore(err, "report")
	}

	s.logger.Infow("Report submitted",
		"report_id", report.ID,
		"category", report.Category,
		"assigned_office", report.AssignedOfficeID,
	)
	return report, nil
}

// nearestOffice picks the office minimizing squared planar distance to the
// incident. Exact ties go to the lowest office id so assignment is
// deterministic regardless of listing order.
func nearestOffice(offices []models.PoliceOffice, lat, lng float64) *models.PoliceOffice {
	var best *models.PoliceOffice
	var bestDist float64
	for i := range offices {
		o := &offices[i]
		dLat, dLng := o.Latitude-lat, o.Longitude-lng
		dist := dLat*dLat + dLng*dLng
		switch {
		case best == nil, dist < bestDist:
			best, bestDist = o, dist
		case dist == bestDist && o.ID.String() < best.ID.String():
			best = o
		}
	}
	return best
}

// UpdateStatus overwrites status and remarks. Any status may move to any
// other; only membership in the five-value enum is enforced.
func (s *ReportService) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateReportRequest) (*models.Report, error) {
	if !req.Status.Valid() {
		return nil, invalidf("status %q is not a known report status", req.Status)
	}

	report, err := s.reports.UpdateReportStatus(ctx, id, req.Status, req.Remarks)
	if err != nil {
		return nil, fromStore(err, fmt.Sprintf("report %s", id))
	}

	s.logger.Infow("Report status updated", "report_id", id, "status", req.Status)
	return report, nil
}

// Get returns one report.
func (s *ReportService) Get(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report, err := s.reports.GetReport(ctx, id)
	if err != nil {
		return nil, fromStore(err, fmt.Sprintf("report %s", id))
	}
	return report, nil
}

// ListActive returns the police dashboard view: every report that is not
// Resolved or Canceled, newest first, with related names resolved.
func (s *ReportService) ListActive(ctx context.Context) ([]models.ReportView, error) {
	reports, err := s.reports.ListActiveReports(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.ReportView, 0, len(reports))
	for i := range reports {
		views = append(views, s.buildView(ctx, &reports[i]))
	}
	return views, nil
}

// buildView resolves the office and reporter names for the dashboard. Broken
// references render as placeholders, matching the SET NULL semantics.
func (s *ReportService) buildView(ctx context.Context, r *models.Report) models.ReportView {
	view := models.ReportView{
		ID:                 r.ID,
		Category:           r.Category,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		Description:        r.Description,
		AssignedOfficeName: "N/A",
		ReporterFullName:   "N/A",
		IncidentAddress:    "Address Pending",
	}
	if r.AssignedOfficeID != nil {
		if office, err := s.offices.GetOffice(ctx, *r.AssignedOfficeID); err == nil {
			view.AssignedOfficeName = office.OfficeName
		}
	}
	if r.ReporterID != nil {
		if citizen, err := s.citizens.GetCitizen(ctx, *r.ReporterID); err == nil {
			view.ReporterFullName = citizen.FirstName + " " + citizen.LastName
		}
	}
	if r.LocationBarangay != "" && r.LocationCity != "" {
		view.IncidentAddress = r.LocationBarangay + ", " + r.LocationCity
	}
	return view
}

// Delete removes a report. Its messages and media go with it.
func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reports.DeleteReport(ctx, id); err != nil {
		return fromStore(err, fmt.Sprintf("report %s", id))
	}
	s.logger.Infow("Report deleted", "report_id", id)
	return nil
}

// Route builds directions from the report's assigned office to the incident,
// plus a QR code of the link. Missing report or assignment is a NotFound.
func (s *ReportService) Route(ctx context.Context, id uuid.UUID) (*routing.Directions, error) {
	report, err := s.reports.GetReport(ctx, id)
	if err != nil {
		return nil, fromStore(err, fmt.Sprintf("report %s", id))
	}
	if report.AssignedOfficeID == nil {
		return nil, notFoundf("report %s has no assigned office", id)
	}

	office, err := s.offices.GetOffice(ctx, *report.AssignedOfficeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFoundf("assigned office for report %s", id)
		}
		return nil, err
	}

	directions, err := routing.Build(office.Latitude, office.Longitude, report.Latitude, report.Longitude)
	if err != nil {
		return nil, invalidf("build directions: %v", err)
	}
	return directions, nil
}
