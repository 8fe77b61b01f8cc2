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

// OfficeService manages police office accounts. Offices are created by
// admins; the creator reference survives as SET NULL if the admin is removed.
type OfficeService struct {
	offices store.OfficeStore
	admins  store.AdminStore
	logger  *zap.SugaredLogger
}

// NewOfficeService creates a new office service.
func NewOfficeService(offices store.OfficeStore, admins store.AdminStore, logger *zap.SugaredLogger) *OfficeService {
	return &OfficeService{offices: offices, admins: admins, logger: logger}
}

// Create registers a police office. The plaintext password is hashed before
// it reaches the store; the creating admin must exist.
func (s *OfficeService) Create(ctx context.Context, req *models.CreateOfficeRequest) (*models.PoliceOffice, error) {
	switch {
	case req.OfficeName == "":
		return nil, invalidf("office_name is required")
	case req.Email == "":
		return nil, invalidf("email is required")
	case req.Password == "":
		return nil, invalidf("password is required")
	case req.Latitude == nil || req.Longitude == nil:
		return nil, invalidf("latitude and longitude are required")
	case req.CreatedBy == uuid.Nil:
		return nil, invalidf("created_by is required")
	}

	if _, err := s.admins.GetAdmin(ctx, req.CreatedBy); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFoundf("admin %s", req.CreatedBy)
		}
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	createdBy := req.CreatedBy
	office := &models.PoliceOffice{
		ID:            uuid.New(),
		OfficeName:    req.OfficeName,
		Email:         req.Email,
		PasswordHash:  hash,
		HeadOfficer:   req.HeadOfficer,
		ContactNumber: req.ContactNumber,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		CreatedBy:     &createdBy,
		CreatedAt:     time.Now(),
	}

	if err := s.offices.CreateOffice(ctx, office); err != nil {
		return nil, fromStore(err, "office email")
	}

	s.logger.Infow("Police office created", "office_id", office.ID, "created_by", createdBy)
	return office, nil
}

// Get returns one office.
func (s *OfficeService) Get(ctx context.Context, id uuid.UUID) (*models.PoliceOffice, error) {
	office, err := s.offices.GetOffice(ctx, id)
	if err != nil {
		return nil, fromStore(err, "office")
	}
	return office, nil
}

// List returns all offices, oldest first.
func (s *OfficeService) List(ctx context.Context) ([]models.PoliceOffice, error) {
	return s.offices.ListOffices(ctx)
}

// Update applies the non-nil fields of req to the office.
func (s *OfficeService) Update(ctx context.Context, id uuid.UUID, req *models.UpdateOfficeRequest) (*models.PoliceOffice, error) {
	office, err := s.offices.GetOffice(ctx, id)
	if err != nil {
		return nil, fromStore(err, "office")
	}

	if req.OfficeName != nil {
		office.OfficeName = *req.OfficeName
	}
	if req.HeadOfficer != nil {
		office.HeadOfficer = *req.HeadOfficer
	}
	if req.ContactNumber != nil {
		office.ContactNumber = *req.ContactNumber
	}
	if req.Latitude != nil {
		office.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		office.Longitude = *req.Longitude
	}

	if err := s.offices.UpdateOffice(ctx, office); err != nil {
		return nil, fromStore(err, "office")
	}
	return office, nil
}

// Delete removes an office. Its checkpoints go with it; reports assigned to
// it keep existing with a cleared assignment.
func (s *OfficeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.offices.DeleteOffice(ctx, id); err != nil {
		return fromStore(err, "office")
	}
	s.logger.Infow("Police office deleted", "office_id", id)
	return nil
}
