package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/crash-ph/crash-server/internal/models"
)

// --- admins ---

func (s *Store) CreateAdmin(ctx context.Context, a *models.Admin) error {
	query := `
		INSERT INTO admins (admin_id, username, email, password_hash, contact_no, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.Exec(ctx, query, a.ID, a.Username, a.Email, a.PasswordHash, a.ContactNo, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert admin: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return s.scanAdmin(ctx, `SELECT admin_id, username, email, password_hash, contact_no, created_at
		FROM admins WHERE admin_id = $1`, id)
}

func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return s.scanAdmin(ctx, `SELECT admin_id, username, email, password_hash, contact_no, created_at
		FROM admins WHERE email = $1`, email)
}

func (s *Store) scanAdmin(ctx context.Context, query string, arg interface{}) (*models.Admin, error) {
	var a models.Admin
	row := s.db.QueryRow(ctx, query, arg)
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.ContactNo, &a.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (s *Store) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM admins WHERE admin_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErrorNoRows()
	}
	return nil
}

// --- citizens ---

func (s *Store) CreateCitizen(ctx context.Context, c *models.Citizen) error {
	query := `
		INSERT INTO citizens (user_id, email, phone, password_hash, first_name, last_name, birthdate, sex,
			emergency_contact_name, emergency_contact_number, region, city, barangay, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := s.db.Exec(ctx, query,
		c.ID, c.Email, c.Phone, c.PasswordHash, c.FirstName, c.LastName, c.Birthdate, c.Sex,
		c.EmergencyContactName, c.EmergencyContactNumber, c.Region, c.City, c.Barangay, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert citizen: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetCitizen(ctx context.Context, id uuid.UUID) (*models.Citizen, error) {
	return s.scanCitizen(ctx, citizenColumns+` WHERE user_id = $1`, id)
}

func (s *Store) GetCitizenByEmail(ctx context.Context, email string) (*models.Citizen, error) {
	return s.scanCitizen(ctx, citizenColumns+` WHERE email = $1`, email)
}

const citizenColumns = `SELECT user_id, email, COALESCE(phone, ''), password_hash, first_name, last_name,
	birthdate, sex, emergency_contact_name, emergency_contact_number, region, city, barangay, created_at
	FROM citizens`

func (s *Store) scanCitizen(ctx context.Context, query string, arg interface{}) (*models.Citizen, error) {
	var c models.Citizen
	row := s.db.QueryRow(ctx, query, arg)
	if err := row.Scan(&c.ID, &c.Email, &c.Phone, &c.PasswordHash, &c.FirstName, &c.LastName,
		&c.Birthdate, &c.Sex, &c.EmergencyContactName, &c.EmergencyContactNumber,
		&c.Region, &c.City, &c.Barangay, &c.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (s *Store) DeleteCitizen(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM citizens WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete citizen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErrorNoRows()
	}
	return nil
}

// --- police offices ---

const officeColumns = `SELECT office_id, office_name, email, password_hash, head_officer, contact_number,
	latitude, longitude, created_by, created_at
	FROM police_offices`

func (s *Store) CreateOffice(ctx context.Context, o *models.PoliceOffice) error {
	query := `
		INSERT INTO police_offices (office_id, office_name, email, password_hash, head_officer,
			contact_number, latitude, longitude, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.Exec(ctx, query,
		o.ID, o.OfficeName, o.Email, o.PasswordHash, o.HeadOfficer,
		o.ContactNumber, o.Latitude, o.Longitude, o.CreatedBy, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert office: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetOffice(ctx context.Context, id uuid.UUID) (*models.PoliceOffice, error) {
	return s.scanOffice(ctx, officeColumns+` WHERE office_id = $1`, id)
}

func (s *Store) GetOfficeByEmail(ctx context.Context, email string) (*models.PoliceOffice, error) {
	return s.scanOffice(ctx, officeColumns+` WHERE email = $1`, email)
}

func (s *Store) scanOffice(ctx context.Context, query string, arg interface{}) (*models.PoliceOffice, error) {
	var o models.PoliceOffice
	row := s.db.QueryRow(ctx, query, arg)
	if err := row.Scan(&o.ID, &o.OfficeName, &o.Email, &o.PasswordHash, &o.HeadOfficer,
		&o.ContactNumber, &o.Latitude, &o.Longitude, &o.CreatedBy, &o.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

func (s *Store) ListOffices(ctx context.Context) ([]models.PoliceOffice, error) {
	rows, err := s.db.Query(ctx, officeColumns+` ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	defer rows.Close()

	var offices []models.PoliceOffice
	for rows.Next() {
		var o models.PoliceOffice
		if err := rows.Scan(&o.ID, &o.OfficeName, &o.Email, &o.PasswordHash, &o.HeadOfficer,
			&o.ContactNumber, &o.Latitude, &o.Longitude, &o.CreatedBy, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan office: %w", err)
		}
		offices = append(offices, o)
	}
	return offices, rows.Err()
}

func (s *Store) UpdateOffice(ctx context.Context, o *models.PoliceOffice) error {
	query := `
		UPDATE police_offices
		SET office_name = $2, head_officer = $3, contact_number = $4, latitude = $5, longitude = $6
		WHERE office_id = $1
	`
	tag, err := s.db.Exec(ctx, query, o.ID, o.OfficeName, o.HeadOfficer, o.ContactNumber, o.Latitude, o.Longitude)
	if err != nil {
		return fmt.Errorf("update office: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErrorNoRows()
	}
	return nil
}

func (s *Store) DeleteOffice(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM police_offices WHERE office_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete office: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErrorNoRows()
	}
	return nil
}
