package models

import "github.com/google/uuid"

// Each operation has its own request/response shape rather than one
// all-purpose projection toggled per call site.

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the role, a safe profile projection and the session token.
type LoginResponse struct {
	Message string      `json:"message"`
	Role    string      `json:"role"` // "admin" | "police"
	User    interface{} `json:"user"`
	Token   string      `json:"token"`
}

// AdminProfile is the admin projection returned after login. Never includes
// the password hash.
type AdminProfile struct {
	ID        uuid.UUID `json:"admin_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ContactNo string    `json:"contact_no,omitempty"`
}

// OfficeProfile is the police office projection returned after login and in
// office listings.
type OfficeProfile struct {
	ID            uuid.UUID `json:"office_id"`
	OfficeName    string    `json:"office_name"`
	Email         string    `json:"email"`
	HeadOfficer   string    `json:"head_officer,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
}

// CreateOfficeRequest is the body for creating a police office account.
// The plaintext password is hashed before storage.
type CreateOfficeRequest struct {
	OfficeName    string    `json:"office_name"`
	Email         string    `json:"email"`
	Password      string    `json:"password"`
	HeadOfficer   string    `json:"head_officer"`
	ContactNumber string    `json:"contact_number"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	CreatedBy     uuid.UUID `json:"created_by"`
}

// UpdateOfficeRequest carries the mutable office fields. Nil pointers mean
// "leave unchanged" so PATCH and PUT share one shape.
type UpdateOfficeRequest struct {
	OfficeName    *string  `json:"office_name"`
	HeadOfficer   *string  `json:"head_officer"`
	ContactNumber *string  `json:"contact_number"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// RegisterCitizenRequest is the body for citizen registration.
type RegisterCitizenRequest struct {
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	Password               string `json:"password"`
	FirstName              string `json:"first_name"`
	LastName               string `json:"last_name"`
	Birthdate              string `json:"birthdate"` // "2006-01-02"
	Sex                    string `json:"sex"`
	EmergencyContactName   string `json:"emergency_contact_name"`
	EmergencyContactNumber string `json:"emergency_contact_number"`
	Region                 string `json:"region"`
	City                   string `json:"city"`
	Barangay               string `json:"barangay"`
}

// SubmitReportRequest is the body of POST /reports. Coordinates are pointers
// so a missing field is distinguishable from zero.
type SubmitReportRequest struct {
	Category    ReportCategory `json:"category"`
	Description string         `json:"description"`
	Latitude    *float64       `json:"latitude"`
	Longitude   *float64       `json:"longitude"`
	Reporter    *uuid.UUID     `json:"reporter"`
}

// UpdateReportRequest is the body of PUT/PATCH /reports/{id}. Police may
// change status and remarks, nothing else.
type UpdateReportRequest struct {
	Status  ReportStatus `json:"status"`
	Remarks string       `json:"remarks"`
}

// ReportView is the dashboard projection of a report: related names resolved
// so the frontend does not have to chase UUIDs.
type ReportView struct {
	ID                 uuid.UUID      `json:"report_id"`
	Category           ReportCategory `json:"category"`
	Status             ReportStatus   `json:"status"`
	CreatedAt          string         `json:"created_at"`
	Latitude           float64        `json:"latitude"`
	Longitude          float64        `json:"longitude"`
	Description        string         `json:"description,omitempty"`
	AssignedOfficeName string         `json:"assigned_office_name"`
	ReporterFullName   string         `json:"reporter_full_name"`
	IncidentAddress    string         `json:"incident_address"`
}

// PostMessageRequest is the body of POST /reports/{id}/messages.
type PostMessageRequest struct {
	SenderID   uuid.UUID  `json:"sender_id"`
	SenderKind SenderKind `json:"sender_type"`
	ReceiverID uuid.UUID  `json:"receiver_id"`
	Content    string     `json:"message_content"`
}

// CreateCheckpointRequest is the body for creating a checkpoint.
type CreateCheckpointRequest struct {
	OfficeID         uuid.UUID `json:"office_id"`
	CheckpointName   string    `json:"checkpoint_name"`
	ContactNumber    string    `json:"contact_number"`
	TimeStart        string    `json:"time_start"`
	TimeEnd          string    `json:"time_end"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
	AssignedOfficers string    `json:"assigned_officers"`
}

// UpdateCheckpointRequest carries the mutable checkpoint fields; nil means
// "leave unchanged".
type UpdateCheckpointRequest struct {
	CheckpointName   *string  `json:"checkpoint_name"`
	ContactNumber    *string  `json:"contact_number"`
	TimeStart        *string  `json:"time_start"`
	TimeEnd          *string  `json:"time_end"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	AssignedOfficers *string  `json:"assigned_officers"`
}
