// Package models defines the data structures used across the application.
// These map to the PostgreSQL schema in internal/database/schema.sql.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus is the lifecycle status of an incident report.
type ReportStatus string

const (
	StatusPending      ReportStatus = "Pending"
	StatusAcknowledged ReportStatus = "Acknowledged"
	StatusEnRoute      ReportStatus = "En Route"
	StatusResolved     ReportStatus = "Resolved"
	StatusCanceled     ReportStatus = "Canceled"
)

// Valid reports whether s is one of the five known statuses.
func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAcknowledged, StatusEnRoute, StatusResolved, StatusCanceled:
		return true
	}
	return false
}

// Active reports whether a report in this status still needs police attention.
// Resolved and Canceled reports are closed.
func (s ReportStatus) Active() bool {
	return s != StatusResolved && s != StatusCanceled
}

// ReportCategory is the incident type chosen at submission.
type ReportCategory string

const (
	CategoryAccident ReportCategory = "Accident"
	CategoryCrime    ReportCategory = "Crime"
	CategoryFire     ReportCategory = "Fire"
	CategoryMedical  ReportCategory = "Medical"
	CategoryOther    ReportCategory = "Other"
)

// Valid reports whether c is one of the enumerated categories.
func (c ReportCategory) Valid() bool {
	switch c {
	case CategoryAccident, CategoryCrime, CategoryFire, CategoryMedical, CategoryOther:
		return true
	}
	return false
}

// SenderKind tags which registry a message sender id belongs to.
type SenderKind string

const (
	SenderCitizen SenderKind = "citizen"
	SenderPolice  SenderKind = "police"
)

// Valid reports whether k is one of the two sender kinds.
func (k SenderKind) Valid() bool {
	return k == SenderCitizen || k == SenderPolice
}

// MediaKind tags an uploaded file as image or video.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Valid reports whether k is one of the two media kinds.
func (k MediaKind) Valid() bool {
	return k == MediaImage || k == MediaVideo
}

// Admin is a full-privilege platform account. Admins create police offices.
type Admin struct {
	ID           uuid.UUID `json:"admin_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ContactNo    string    `json:"contact_no,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Citizen is a community member who submits incident reports.
type Citizen struct {
	ID                     uuid.UUID `json:"user_id"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone,omitempty"`
	PasswordHash           string    `json:"-"`
	FirstName              string    `json:"first_name"`
	LastName               string    `json:"last_name"`
	Birthdate              time.Time `json:"birthdate"`
	Sex                    string    `json:"sex,omitempty"`
	EmergencyContactName   string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactNumber string    `json:"emergency_contact_number,omitempty"`
	Region                 string    `json:"region,omitempty"`
	City                   string    `json:"city,omitempty"`
	Barangay               string    `json:"barangay,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// PoliceOffice is a station account. Officers of the station log in with the
// office credentials; the office coordinates drive nearest-office assignment.
type PoliceOffice struct {
	ID            uuid.UUID  `json:"office_id"`
	OfficeName    string     `json:"office_name"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	HeadOfficer   string     `json:"head_officer,omitempty"`
	ContactNumber string     `json:"contact_number,omitempty"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	CreatedBy     *uuid.UUID `json:"created_by,omitempty"` // SET NULL when the admin is removed
	CreatedAt     time.Time  `json:"created_at"`
}

// Report is a citizen-submitted incident record.
// ReporterID and AssignedOfficeID may independently become nil when the
// referenced account is deleted; the report itself stays valid.
type Report struct {
	ID               uuid.UUID      `json:"report_id"`
	ReporterID       *uuid.UUID     `json:"reporter,omitempty"`
	AssignedOfficeID *uuid.UUID     `json:"assigned_office,omitempty"`
	Category         ReportCategory `json:"category"`
	Description      string         `json:"description,omitempty"`
	Status           ReportStatus   `json:"status"`
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	LocationCity     string         `json:"location_city,omitempty"`
	LocationBarangay string         `json:"location_barangay,omitempty"`
	Remarks          string         `json:"remarks,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"` // advanced by the storage layer on every change
}

// Message is one chat entry scoped to a report. Immutable once created;
// removed only when its report is removed.
type Message struct {
	ID         uuid.UUID  `json:"message_id"`
	ReportID   uuid.UUID  `json:"report_id"`
	SenderID   uuid.UUID  `json:"sender_id"`
	SenderKind SenderKind `json:"sender_type"`
	ReceiverID uuid.UUID  `json:"receiver_id"`
	Content    string     `json:"message_content"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Checkpoint is a patrol post owned by exactly one police office.
// TimeStart/TimeEnd are clock times ("15:04"); a window with start after end
// spans midnight.
type Checkpoint struct {
	ID               uuid.UUID `json:"checkpoint_id"`
	OfficeID         uuid.UUID `json:"office_id"`
	CheckpointName   string    `json:"checkpoint_name"`
	ContactNumber    string    `json:"contact_number,omitempty"`
	TimeStart        string    `json:"time_start,omitempty"`
	TimeEnd          string    `json:"time_end,omitempty"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	AssignedOfficers string    `json:"assigned_officers,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// MediaItem is metadata for a file already stored in external object storage.
// Only the public URL is persisted; the bytes live in the bucket.
type MediaItem struct {
	ID         uuid.UUID `json:"media_id"`
	FileURL    string    `json:"file_url"`
	ReportID   uuid.UUID `json:"report_id"`
	FileType   MediaKind `json:"file_type"`
	SenderID   uuid.UUID `json:"sender_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}
