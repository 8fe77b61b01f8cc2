package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/crash-ph/crash-server/internal/models"
)

const reportColumns = `SELECT report_id, reporter_id, assigned_office_id, category, description, status,
	latitude, longitude, location_city, location_barangay, remarks, created_at, updated_at
	FROM reports`

func (s *Store) CreateReport(ctx context.Context, r *models.Report) error {
	query := `
		INSERT INTO reports (report_id, reporter_id, assigned_office_id, category, description, status,
			latitude, longitude, location_city, location_barangay, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.Exec(ctx, query,
		r.ID, r.ReporterID, r.AssignedOfficeID, r.Category, r.Description, r.Status,
		r.Latitude, r.Longitude, r.LocationCity, r.LocationBarangay, r.Remarks, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	row := s.db.QueryRow(ctx, reportColumns+` WHERE report_id = $1`, id)
	return scanReport(row)
}

func (s *Store) ListActiveReports(ctx context.Context) ([]models.Report, error) {
	query := reportColumns + ` WHERE status NOT IN ('Resolved', 'Canceled') ORDER BY created_at DESC`
	return s.queryReports(ctx, query)
}

func (s *Store) ListReports(ctx context.Context) ([]models.Report, error) {
	return s.queryReports(ctx, reportColumns+` ORDER BY created_at DESC`)
}

func (s *Store) UpdateReportStatus(ctx context.Context, id uuid.UUID, status models.ReportStatus, remarks string) (*models.Report, error) {
	// updated_at is advanced by the reports_updated_at trigger.
	query := `
		UPDATE reports SET status = $2, remarks = $3
		WHERE report_id = $1
		RETURNING report_id, reporter_id, assigned_office_id, category, description, status,
			latitude, longitude, location_city, location_barangay, remarks, created_at, updated_at
	`
	row := s.db.QueryRow(ctx, query, id, status, remarks)
	return scanReport(row)
}

func (s *Store) DeleteReport(ctx context.Context, id uuid.UUID) error {
	// Messages and media go with it via ON DELETE CASCADE.
	tag, err := s.db.Exec(ctx, `DELETE FROM reports WHERE report_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErrorNoRows()
	}
	return nil
}

func (s *Store) queryReports(ctx context.Context, query string) ([]models.Report, error) {
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}

func scanReport(row pgx.Row) (*models.Report, error) {
	var r models.Report
	if err := row.Scan(&r.ID, &r.ReporterID, &r.AssignedOfficeID, &r.Category, &r.Description, &r.Status,
		&r.Latitude, &r.Longitude, &r.LocationCity, &r.LocationBarangay, &r.Remarks,
		&r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return &r, nil
}
