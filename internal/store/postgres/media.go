package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/crash-ph/crash-server/internal/models"
)

const mediaColumns = `SELECT media_id, file_url, report_id, file_type, sender_id, uploaded_at FROM media`

func (s *Store) CreateMedia(ctx context.Context, m *models.MediaItem) error {
	query := `
		INSERT INTO media (media_id, file_url, report_id, file_type, sender_id, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.Exec(ctx, query, m.ID, m.FileURL, m.ReportID, m.FileType, m.SenderID, m.UploadedAt)
	if err != nil {
		return fmt.Errorf("insert media: %w", mapError(err))
	}
	return nil
}

func (s *Store) ListMedia(ctx context.Context) ([]models.MediaItem, error) {
	return s.queryMedia(ctx, mediaColumns+` ORDER BY uploaded_at DESC`)
}

func (s *Store) ListMediaByReport(ctx context.Context, reportID uuid.UUID) ([]models.MediaItem, error) {
	return s.queryMedia(ctx, mediaColumns+` WHERE report_id = $1 ORDER BY uploaded_at`, reportID)
}

func (s *Store) queryMedia(ctx context.Context, query string, args ...interface{}) ([]models.MediaItem, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query media: %w", err)
	}
	defer rows.Close()

	items := make([]models.MediaItem, 0)
	for rows.Next() {
		var m models.MediaItem
		if err := rows.Scan(&m.ID, &m.FileURL, &m.ReportID, &m.FileType, &m.SenderID, &m.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
