package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/store"
)

// CheckpointService manages patrol checkpoints owned by police offices.
type CheckpointService struct {
	checkpoints store.CheckpointStore
	offices     store.OfficeStore
	logger      *zap.SugaredLogger
}

// NewCheckpointService creates a new checkpoint service.
func NewCheckpointService(checkpoints store.CheckpointStore, offices store.OfficeStore, logger *zap.SugaredLogger) *CheckpointService {
	return &CheckpointService{checkpoints: checkpoints, offices: offices, logger: logger}
}

// Create registers a checkpoint under an existing office.
func (s *CheckpointService) Create(ctx context.Context, req *models.CreateCheckpointRequest) (*models.Checkpoint, error) {
	switch {
	case req.CheckpointName == "":
		return nil, invalidf("checkpoint_name is required")
	case req.OfficeID == uuid.Nil:
		return nil, invalidf("office_id is required")
	case req.Latitude == nil || req.Longitude == nil:
		return nil, invalidf("latitude and longitude are required")
	}
	if err := validateClock(req.TimeStart); err != nil {
		return nil, err
	}
	if err := validateClock(req.TimeEnd); err != nil {
		return nil, err
	}

	if _, err := s.offices.GetOffice(ctx, req.OfficeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFoundf("office %s", req.OfficeID)
		}
		return nil, err
	}

	checkpoint := &models.Checkpoint{
		ID:               uuid.New(),
		OfficeID:         req.OfficeID,
		CheckpointName:   req.CheckpointName,
		ContactNumber:    req.ContactNumber,
		TimeStart:        req.TimeStart,
		TimeEnd:          req.TimeEnd,
		Latitude:         *req.Latitude,
		Longitude:        *req.Longitude,
		AssignedOfficers: req.AssignedOfficers,
		CreatedAt:        time.Now(),
	}

	if err := s.checkpoints.CreateCheckpoint(ctx, checkpoint); err != nil {
		return nil, fromStore(err, "checkpoint")
	}

	s.logger.Infow("Checkpoint created", "checkpoint_id", checkpoint.ID, "office_id", req.OfficeID)
	return checkpoint, nil
}

// Get returns one checkpoint.
func (s *CheckpointService) Get(ctx context.Context, id uuid.UUID) (*models.Checkpoint, error) {
	checkpoint, err := s.checkpoints.GetCheckpoint(ctx, id)
	if err != nil {
		return nil, fromStore(err, "checkpoint")
	}
	return checkpoint, nil
}

// List returns all checkpoints, newest first.
func (s *CheckpointService) List(ctx context.Context) ([]models.Checkpoint, error) {
	return s.checkpoints.ListCheckpoints(ctx)
}

// ListActiveAt returns checkpoints whose shift window contains t. Windows
// with start after end span midnight (overnight shifts).
func (s *CheckpointService) ListActiveAt(ctx context.Context, t time.Time) ([]models.Checkpoint, error) {
	checkpoints, err := s.checkpoints.ListCheckpoints(ctx)
	if err != nil {
		return nil, err
	}

	now := t.Hour()*60 + t.Minute()
	active := make([]models.Checkpoint, 0)
	for _, c := range checkpoints {
		start, okStart := clockMinutes(c.TimeStart)
		end, okEnd := clockMinutes(c.TimeEnd)
		if !okStart || !okEnd {
			continue
		}
		if start < end {
			// Same-day shift, e.g. 06:00-14:00.
			if start <= now && now < end {
				active = append(active, c)
			}
		} else {
			// Overnight shift, e.g. 20:00-04:00.
			if now >= start || now < end {
				active = append(active, c)
			}
		}
	}
	return active, nil
}

// Update applies the non-nil fields of req to the checkpoint.
func (s *CheckpointService) Update(ctx context.Context, id uuid.UUID, req *models.UpdateCheckpointRequest) (*models.Checkpoint, error) {
	checkpoint, err := s.checkpoints.GetCheckpoint(ctx, id)
	if err != nil {
		return nil, fromStore(err, "checkpoint")
	}

	if req.CheckpointName != nil {
		checkpoint.CheckpointName = *req.CheckpointName
	}
	if req.ContactNumber != nil {
		checkpoint.ContactNumber = *req.ContactNumber
	}
	if req.TimeStart != nil {
		if err := validateClock(*req.TimeStart); err != nil {
			return nil, err
		}
		checkpoint.TimeStart = *req.TimeStart
	}
	if req.TimeEnd != nil {
		if err := validateClock(*req.TimeEnd); err != nil {
			return nil, err
		}
		checkpoint.TimeEnd = *req.TimeEnd
	}
	if req.Latitude != nil {
		checkpoint.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		checkpoint.Longitude = *req.Longitude
	}
	if req.AssignedOfficers != nil {
		checkpoint.AssignedOfficers = *req.AssignedOfficers
	}

	if err := s.checkpoints.UpdateCheckpoint(ctx, checkpoint); err != nil {
		return nil, fromStore(err, "checkpoint")
	}
	return checkpoint, nil
}

// Delete removes a checkpoint.
func (s *CheckpointService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.checkpoints.DeleteCheckpoint(ctx, id); err != nil {
		return fromStore(err, "checkpoint")
	}
	s.logger.Infow("Checkpoint deleted", "checkpoint_id", id)
	return nil
}

// validateClock accepts "" (unset) or "HH:MM".
func validateClock(v string) error {
	if v == "" {
		return nil
	}
	if _, ok := clockMinutes(v); !ok {
		return invalidf("time %q must be HH:MM", v)
	}
	return nil
}

// clockMinutes parses "HH:MM" into minutes since midnight.
func clockMinutes(v string) (int, bool) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
