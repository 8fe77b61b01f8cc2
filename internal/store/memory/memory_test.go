package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/store"
)

func TestDuplicateDetection(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateAdmin(ctx, &models.Admin{ID: uuid.New(), Username: "root", Email: "a@x.ph"}))
	assert.ErrorIs(t, s.CreateAdmin(ctx, &models.Admin{ID: uuid.New(), Username: "other", Email: "a@x.ph"}), store.ErrDuplicate)
	assert.ErrorIs(t, s.CreateAdmin(ctx, &models.Admin{ID: uuid.New(), Username: "root", Email: "b@x.ph"}), store.ErrDuplicate)

	require.NoError(t, s.CreateCitizen(ctx, &models.Citizen{ID: uuid.New(), Email: "c@x.ph", Phone: "0917"}))
	assert.ErrorIs(t, s.CreateCitizen(ctx, &models.Citizen{ID: uuid.New(), Email: "d@x.ph", Phone: "0917"}), store.ErrDuplicate)
	// Empty phone is not a collision.
	require.NoError(t, s.CreateCitizen(ctx, &models.Citizen{ID: uuid.New(), Email: "e@x.ph"}))
	require.NoError(t, s.CreateCitizen(ctx, &models.Citizen{ID: uuid.New(), Email: "f@x.ph"}))
}

func TestReportCascade(t *testing.T) {
	s := New()
	ctx := context.Background()

	report := &models.Report{ID: uuid.New(), Category: models.CategoryCrime, Status: models.StatusPending, CreatedAt: time.Now()}
	require.NoError(t, s.CreateReport(ctx, report))
	require.NoError(t, s.CreateMessage(ctx, &models.Message{ID: uuid.New(), ReportID: report.ID, Timestamp: time.Now()}))
	require.NoError(t, s.CreateMedia(ctx, &models.MediaItem{ID: uuid.New(), ReportID: report.ID, UploadedAt: time.Now()}))

	require.NoError(t, s.DeleteReport(ctx, report.ID))

	msgs, err := s.ListMessages(ctx, report.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)
	media, err := s.ListMediaByReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Empty(t, media)
}

func TestChildRowsRequireParents(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.CreateMessage(ctx, &models.Message{ID: uuid.New(), ReportID: uuid.New()})
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.CreateMedia(ctx, &models.MediaItem{ID: uuid.New(), ReportID: uuid.New()})
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.CreateCheckpoint(ctx, &models.Checkpoint{ID: uuid.New(), OfficeID: uuid.New()})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOfficeDeleteCascadesAndUnassigns(t *testing.T) {
	s := New()
	ctx := context.Background()

	office := &models.PoliceOffice{ID: uuid.New(), OfficeName: "s4", Email: "s4@x.ph", CreatedAt: time.Now()}
	require.NoError(t, s.CreateOffice(ctx, office))
	checkpoint := &models.Checkpoint{ID: uuid.New(), OfficeID: office.ID, CheckpointName: "edsa", CreatedAt: time.Now()}
	require.NoError(t, s.CreateCheckpoint(ctx, checkpoint))
	report := &models.Report{ID: uuid.New(), AssignedOfficeID: &office.ID, Status: models.StatusPending, CreatedAt: time.Now()}
	require.NoError(t, s.CreateReport(ctx, report))

	require.NoError(t, s.DeleteOffice(ctx, office.ID))

	_, err := s.GetCheckpoint(ctx, checkpoint.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, err := s.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssignedOfficeID)
}

func TestUpdateReportStatusAdvancesUpdatedAt(t *testing.T) {
	s := New()
	ctx := context.Background()

	report := &models.Report{ID: uuid.New(), Status: models.StatusPending, CreatedAt: time.Now()}
	require.NoError(t, s.CreateReport(ctx, report))

	updated, err := s.UpdateReportStatus(ctx, report.ID, models.StatusAcknowledged, "received")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAcknowledged, updated.Status)
	assert.Equal(t, "received", updated.Remarks)
	require.NotNil(t, updated.UpdatedAt)
	assert.False(t, updated.UpdatedAt.Before(report.CreatedAt))

	_, err = s.UpdateReportStatus(ctx, uuid.New(), models.StatusResolved, "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListOrdering(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Now()
	older := &models.Report{ID: uuid.New(), Status: models.StatusPending, CreatedAt: base.Add(-time.Hour)}
	newer := &models.Report{ID: uuid.New(), Status: models.StatusPending, CreatedAt: base}
	closed := &models.Report{ID: uuid.New(), Status: models.StatusResolved, CreatedAt: base.Add(-time.Minute)}
	require.NoError(t, s.CreateReport(ctx, older))
	require.NoError(t, s.CreateReport(ctx, newer))
	require.NoError(t, s.CreateReport(ctx, closed))

	active, err := s.ListActiveReports(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, newer.ID, active[0].ID)
	assert.Equal(t, older.ID, active[1].ID)

	all, err := s.ListReports(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
