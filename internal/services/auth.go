// Package services contains business logic layers.
// Services are called by handlers and interact with the stores.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/store"
)

// Roles carried in the session token.
const (
	RoleAdmin  = "admin"
	RolePolice = "police"
)

// AuthService verifies credentials against the admin and police office
// registries (in that order) and issues signed, expiring session tokens.
type AuthService struct {
	admins  store.AdminStore
	offices store.OfficeStore
	secret  []byte
	ttl     time.Duration
	logger  *zap.SugaredLogger
}

// NewAuthService creates a new auth service.
func NewAuthService(admins store.AdminStore, offices store.OfficeStore, secret string, ttl time.Duration, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{admins: admins, offices: offices, secret: []byte(secret), ttl: ttl, logger: logger}
}

// Login checks email+password against admins first, then police offices.
// A hit returns the role, a safe profile projection and a session token; any
// miss or hash mismatch returns ErrUnauthorized without revealing which.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, invalidf("email and password are required")
	}

	if admin, err := s.admins.GetAdminByEmail(ctx, email); err == nil {
		if checkPassword(admin.PasswordHash, password) {
			token, err := s.issueToken(admin.ID.String(), RoleAdmin)
			if err != nil {
				return nil, err
			}
			s.logger.Infow("Admin login", "admin_id", admin.ID)
			return &models.LoginResponse{
				Message: "Admin login successful",
				Role:    RoleAdmin,
				User: models.AdminProfile{
					ID: admin.ID, Username: admin.Username, Email: admin.Email, ContactNo: admin.ContactNo,
				},
				Token: token,
			}, nil
		}
		return nil, ErrUnauthorized
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	office, err := s.offices.GetOfficeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !checkPassword(office.PasswordHash, password) {
		return nil, ErrUnauthorized
	}

	token, err := s.issueToken(office.ID.String(), RolePolice)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Police login", "office_id", office.ID)
	return &models.LoginResponse{
		Message: "Police login successful",
		Role:    RolePolice,
		User: models.OfficeProfile{
			ID: office.ID, OfficeName: office.OfficeName, Email: office.Email,
			HeadOfficer: office.HeadOfficer, ContactNumber: office.ContactNumber,
		},
		Token: token,
	}, nil
}

func (s *AuthService) issueToken(subject, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// HashPassword produces a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
