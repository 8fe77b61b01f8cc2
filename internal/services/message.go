package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/store"
)

// MessageService is the append-only chat log scoped to one report.
type MessageService struct {
	messages store.MessageStore
	reports  store.ReportStore
	logger   *zap.SugaredLogger
}

// NewMessageService creates a new message service.
func NewMessageService(messages store.MessageStore, reports store.ReportStore, logger *zap.SugaredLogger) *MessageService {
	return &MessageService{messages: messages, reports: reports, logger: logger}
}

// Post appends a message to a report's chat. The report must exist; nothing
// is persisted otherwise.
func (s *MessageService) Post(ctx context.Context, reportID uuid.UUID, req *models.PostMessageRequest) (*models.Message, error) {
	if !req.SenderKind.Valid() {
		return nil, invalidf("sender_type %q must be citizen or police", req.SenderKind)
	}
	if req.Content == "" {
		return nil, invalidf("message_content is required")
	}
	if req.SenderID == uuid.Nil || req.ReceiverID == uuid.Nil {
		return nil, invalidf("sender_id and receiver_id are required")
	}

	if _, err := s.reports.GetReport(ctx, reportID); err != nil {
		return nil, fromStore(err, fmt.Sprintf("report %s", reportID))
	}

	message := &models.Message{
		ID:         uuid.New(),
		ReportID:   reportID,
		SenderID:   req.SenderID,
		SenderKind: req.SenderKind,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Timestamp:  time.Now(),
	}

	if err := s.messages.CreateMessage(ctx, message); err != nil {
		return nil, fromStore(err, fmt.Sprintf("report %s", reportID))
	}

	s.logger.Infow("Message posted", "report_id", reportID, "sender_type", req.SenderKind)
	return message, nil
}

// List returns the full chat history for a report, oldest first. Unknown
// reports are a NotFound, not an empty list.
func (s *MessageService) List(ctx context.Context, reportID uuid.UUID) ([]models.Message, error) {
	if _, err := s.reports.GetReport(ctx, reportID); err != nil {
		return nil, fromStore(err, fmt.Sprintf("report %s", reportID))
	}
	return s.messages.ListMessages(ctx, reportID)
}
