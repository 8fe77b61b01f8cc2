package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/store"
)

// CitizenService manages citizen accounts. Deleting a citizen clears the
// reporter reference on their reports; it never deletes the reports.
type CitizenService struct {
	citizens store.CitizenStore
	logger   *zap.SugaredLogger
}

// NewCitizenService creates a new citizen service.
func NewCitizenService(citizens store.CitizenStore, logger *zap.SugaredLogger) *CitizenService {
	return &CitizenService{citizens: citizens, logger: logger}
}

// Register creates a citizen account. Email and phone must be unique.
func (s *CitizenService) Register(ctx context.Context, req *models.RegisterCitizenRequest) (*models.Citizen, error) {
	switch {
	case req.Email == "":
		return nil, invalidf("email is required")
	case req.Password == "":
		return nil, invalidf("password is required")
	case req.FirstName == "" || req.LastName == "":
		return nil, invalidf("first_name and last_name are required")
	case req.Birthdate == "":
		return nil, invalidf("birthdate is required")
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, invalidf("birthdate must be YYYY-MM-DD")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	citizen := &models.Citizen{
		ID:                     uuid.New(),
		Email:                  req.Email,
		Phone:                  req.Phone,
		PasswordHash:           hash,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Birthdate:              birthdate,
		Sex:                    req.Sex,
		EmergencyContactName:   req.EmergencyContactName,
		EmergencyContactNumber: req.EmergencyContactNumber,
		Region:                 req.Region,
		City:                   req.City,
		Barangay:               req.Barangay,
		CreatedAt:              time.Now(),
	}

	if err := s.citizens.CreateCitizen(ctx, citizen); err != nil {
		return nil, fromStore(err, "citizen email or phone")
	}

	s.logger.Infow("Citizen registered", "user_id", citizen.ID)
	return citizen, nil
}

// Get returns one citizen.
func (s *CitizenService) Get(ctx context.Context, id uuid.UUID) (*models.Citizen, error) {
	citizen, err := s.citizens.GetCitizen(ctx, id)
	if err != nil {
		return nil, fromStore(err, "citizen")
	}
	return citizen, nil
}

// Delete removes a citizen account.
func (s *CitizenService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.citizens.DeleteCitizen(ctx, id); err != nil {
		return fromStore(err, "citizen")
	}
	s.logger.Infow("Citizen deleted", "user_id", id)
	return nil
}
