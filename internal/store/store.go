// Package store defines the persistence interfaces the services depend on.
// Two implementations exist: store/postgres (pgx, production) and
// store/memory (tests). Cascade and SET NULL rules are a storage concern:
// deleting a report removes its messages and media, deleting an office
// removes its checkpoints and clears assignments, deleting an admin or a
// citizen only clears references.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/crash-ph/crash-server/internal/models"
)

// AdminStore persists admin accounts.
type AdminStore interface {
	CreateAdmin(ctx context.Context, a *models.Admin) error
	GetAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
}

// CitizenStore persists citizen accounts.
type CitizenStore interface {
	CreateCitizen(ctx context.Context, c *models.Citizen) error
	GetCitizen(ctx context.Context, id uuid.UUID) (*models.Citizen, error)
	GetCitizenByEmail(ctx context.Context, email string) (*models.Citizen, error)
	DeleteCitizen(ctx context.Context, id uuid.UUID) error
}

// OfficeStore persists police office accounts.
type OfficeStore interface {
	CreateOffice(ctx context.Context, o *models.PoliceOffice) error
	GetOffice(ctx context.Context, id uuid.UUID) (*models.PoliceOffice, error)
	GetOfficeByEmail(ctx context.Context, email string) (*models.PoliceOffice, error)
	ListOffices(ctx context.Context) ([]models.PoliceOffice, error)
	UpdateOffice(ctx context.Context, o *models.PoliceOffice) error
	DeleteOffice(ctx context.Context, id uuid.UUID) error
}

// ReportStore persists incident reports. UpdateReportStatus advances
// updated_at; the postgres implementation does this with a trigger.
type ReportStore interface {
	CreateReport(ctx context.Context, r *models.Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	// ListActiveReports returns reports whose status is neither Resolved nor
	// Canceled, newest first.
	ListActiveReports(ctx context.Context) ([]models.Report, error)
	ListReports(ctx context.Context) ([]models.Report, error)
	UpdateReportStatus(ctx context.Context, id uuid.UUID, status models.ReportStatus, remarks string) (*models.Report, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
}

// MessageStore persists report-scoped chat messages.
type MessageStore interface {
	CreateMessage(ctx context.Context, m *models.Message) error
	// ListMessages returns the full history for one report, oldest first.
	ListMessages(ctx context.Context, reportID uuid.UUID) ([]models.Message, error)
}

// CheckpointStore persists patrol checkpoints.
type CheckpointStore interface {
	CreateCheckpoint(ctx context.Context, c *models.Checkpoint) error
	GetCheckpoint(ctx context.Context, id uuid.UUID) (*models.Checkpoint, error)
	ListCheckpoints(ctx context.Context) ([]models.Checkpoint, error)
	UpdateCheckpoint(ctx context.Context, c *models.Checkpoint) error
	DeleteCheckpoint(ctx context.Context, id uuid.UUID) error
}

// MediaStore persists media metadata.
type MediaStore interface {
	CreateMedia(ctx context.Context, m *models.MediaItem) error
	ListMedia(ctx context.Context) ([]models.MediaItem, error)
	ListMediaByReport(ctx context.Context, reportID uuid.UUID) ([]models.MediaItem, error)
}
