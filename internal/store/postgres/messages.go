package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/crash-ph/crash-server/internal/models"
)

func (s *Store) CreateMessage(ctx context.Context, m *models.Message) error {
	query := `
		INSERT INTO messages (message_id, report_id, sender_id, sender_type, receiver_id, message_content, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.Exec(ctx, query,
		m.ID, m.ReportID, m.SenderID, m.SenderKind, m.ReceiverID, m.Content, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", mapError(err))
	}
	return nil
}

func (s *Store) ListMessages(ctx context.Context, reportID uuid.UUID) ([]models.Message, error) {
	query := `
		SELECT message_id, report_id, sender_id, sender_type, receiver_id, message_content, timestamp
		FROM messages
		WHERE report_id = $1
		ORDER BY timestamp
	`
	rows, err := s.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ReportID, &m.SenderID, &m.SenderKind,
			&m.ReceiverID, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
