package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/objectstore"
	"github.com/crash-ph/crash-server/internal/store"
)

// MediaService records metadata for evidence files. The bytes go to the
// object store first; metadata is only persisted once a public URL exists,
// so a failed upload leaves no MediaItem behind.
type MediaService struct {
	media   store.MediaStore
	reports store.ReportStore
	objects objectstore.ObjectStore
	logger  *zap.SugaredLogger
}

// NewMediaService creates a new media service.
func NewMediaService(media store.MediaStore, reports store.ReportStore, objects objectstore.ObjectStore, logger *zap.SugaredLogger) *MediaService {
	return &MediaService{media: media, reports: reports, objects: objects, logger: logger}
}

// Attach uploads the file bytes and persists the resulting MediaItem.
// Storage keys are reports/{reportID}/{uuid}{ext} so one report's evidence
// stays under one prefix.
func (s *MediaService) Attach(ctx context.Context, reportID, senderID uuid.UUID, kind models.MediaKind, filename, contentType string, data []byte) (*models.MediaItem, error) {
	if !kind.Valid() {
		return nil, invalidf("file_type %q must be image or video", kind)
	}
	if senderID == uuid.Nil {
		return nil, invalidf("sender_id is required")
	}
	if len(data) == 0 {
		return nil, invalidf("file is empty")
	}

	if _, err := s.reports.GetReport(ctx, reportID); err != nil {
		return nil, fromStore(err, fmt.Sprintf("report %s", reportID))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("reports/%s/%s%s", reportID, uuid.New().String(), ext)

	url, err := s.objects.Put(ctx, key, data, contentType)
	if err != nil {
		s.logger.Errorw("Media upload failed", "report_id", reportID, "key", key, "error", err)
		return nil, fmt.Errorf("upload %s: %w", key, ErrUpstream)
	}

	item := &models.MediaItem{
		ID:         uuid.New(),
		FileURL:    url,
		ReportID:   reportID,
		FileType:   kind,
		SenderID:   senderID,
		UploadedAt: time.Now(),
	}

	if err := s.media.CreateMedia(ctx, item); err != nil {
		// The uploaded object stays unreferenced in the bucket; metadata was
		// never committed so the operation still fails atomically for callers.
		return nil, fromStore(err, fmt.Sprintf("report %s", reportID))
	}

	s.logger.Infow("Media attached", "media_id", item.ID, "report_id", reportID, "file_type", kind)
	return item, nil
}

// List returns all media items, newest first.
func (s *MediaService) List(ctx context.Context) ([]models.MediaItem, error) {
	return s.media.ListMedia(ctx)
}

// ListByReport returns a report's media, oldest first.
func (s *MediaService) ListByReport(ctx context.Context, reportID uuid.UUID) ([]models.MediaItem, error) {
	return s.media.ListMediaByReport(ctx, reportID)
}
