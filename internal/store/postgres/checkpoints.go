package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/crash-ph/crash-server/internal/models"
)

const checkpointColumns = `SELECT checkpoint_id, office_id, checkpoint_name, contact_number,
	COALESCE(to_char(time_start, 'HH24:MI'), ''), COALESCE(to_char(time_end, 'HH24:MI'), ''),
	latitude, longitude, assigned_officers, created_at
	FROM checkpoints`

func (s *Store) CreateCheckpoint(ctx context.Context, c *models.Checkpoint) error {
	query := `
		INSERT INTO checkpoints (checkpoint_id, office_id, checkpoint_name, contact_number,
			time_start, time_end, latitude, longitude, assigned_officers, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::time, NULLIF($6, '')::time, $7, $8, $9, $10)
	`
	_, err := s.db.Exec(ctx, query,
		c.ID, c.OfficeID, c.CheckpointName, c.ContactNumber,
		c.TimeStart, c.TimeEnd, c.Latitude, c.Longitude, c.AssignedOfficers, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert checkpoint: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetCheckpoint(ctx context.Context, id uuid.UUID) (*models.Checkpoint, error) {
	row := s.db.QueryRow(ctx, checkpointColumns+` WHERE checkpoint_id = $1`, id)
	return scanCheckpoint(row)
}

func (s *Store) ListCheckpoints(ctx context.Context) ([]models.Checkpoint, error) {
	rows, err := s.db.Query(ctx, checkpointColumns+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query checkpoints: %w", err)
	}
	defer rows.Close()

	var checkpoints []models.Checkpoint
	for rows.Next() {
		c, err := scanCheckpoint(rows)
		if err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, *c)
	}
	return checkpoints, rows.Err()
}

func (s *Store) UpdateCheckpoint(ctx context.Context, c *models.Checkpoint) error {
	query := `
		UPDATE checkpoints
		SET checkpoint_name = $2, contact_number = $3, time_start = NULLIF($4, '')::time,
			time_end = NULLIF($5, '')::time, latitude = $6, longitude = $7, assigned_officers = $8
		WHERE checkpoint_id = $1
	`
	tag, err := s.db.Exec(ctx, query,
		c.ID, c.CheckpointName, c.ContactNumber, c.TimeStart, c.TimeEnd,
		c.Latitude, c.Longitude, c.AssignedOfficers,
	)
	if err != nil {
		return fmt.Errorf("update checkpoint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErrorNoRows()
	}
	return nil
}

func (s *Store) DeleteCheckpoint(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM checkpoints WHERE checkpoint_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete checkpoint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErrorNoRows()
	}
	return nil
}

func scanCheckpoint(row pgx.Row) (*models.Checkpoint, error) {
	var c models.Checkpoint
	if err := row.Scan(&c.ID, &c.OfficeID, &c.CheckpointName, &c.ContactNumber,
		&c.TimeStart, &c.TimeEnd, &c.Latitude, &c.Longitude, &c.AssignedOfficers, &c.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}
