package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/services"
	"github.com/crash-ph/crash-server/internal/store/memory"
)

func TestAdminMapEndpoint(t *testing.T) {
	mem := memory.New()
	logger := zap.NewNop().Sugar()
	reportSvc := services.NewReportService(mem, mem, mem, nil, logger)
	officeSvc := services.NewOfficeService(mem, mem, logger)
	checkpointSvc := services.NewCheckpointService(mem, mem, logger)
	h := NewDashboardHandler(reportSvc, officeSvc, checkpointSvc, logger)

	router := chi.NewRouter()
	router.Get("/api/v1/admin/map", h.Map)

	ctx := context.Background()
	office := &models.PoliceOffice{
		ID: uuid.New(), OfficeName: "Station 2", Email: "s2@police.gov.ph",
		Latitude: 14.61, Longitude: 120.97, CreatedAt: time.Now(),
	}
	require.NoError(t, mem.CreateOffice(ctx, office))

	open := &models.Report{
		ID: uuid.New(), Category: models.CategoryCrime, Status: models.StatusPending,
		Latitude: 14.6, Longitude: 121.0, CreatedAt: time.Now(),
	}
	require.NoError(t, mem.CreateReport(ctx, open))
	closedAt := time.Now()
	require.NoError(t, mem.CreateReport(ctx, &models.Report{
		ID: uuid.New(), Category: models.CategoryFire, Status: models.StatusResolved,
		Latitude: 14.6, Longitude: 121.0, CreatedAt: time.Now().Add(-time.Hour), UpdatedAt: &closedAt,
	}))

	// A start equal to the end wraps the whole day; the round-the-clock post
	// is always on shift, the unscheduled one never.
	onShift := &models.Checkpoint{
		ID: uuid.New(), OfficeID: office.ID, CheckpointName: "EDSA corner Timog",
		TimeStart: "00:00", TimeEnd: "00:00", Latitude: 14.63, Longitude: 121.03, CreatedAt: time.Now(),
	}
	require.NoError(t, mem.CreateCheckpoint(ctx, onShift))
	require.NoError(t, mem.CreateCheckpoint(ctx, &models.Checkpoint{
		ID: uuid.New(), OfficeID: office.ID, CheckpointName: "Reserve post",
		Latitude: 14.64, Longitude: 121.04, CreatedAt: time.Now(),
	}))

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/map", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		ActiveReports     []models.ReportView   `json:"active_reports"`
		PoliceOffices     []models.PoliceOffice `json:"police_offices"`
		ActiveCheckpoints []models.Checkpoint   `json:"active_checkpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	require.Len(t, payload.ActiveReports, 1)
	assert.Equal(t, open.ID, payload.ActiveReports[0].ID)

	require.Len(t, payload.PoliceOffices, 1)
	assert.Equal(t, office.ID, payload.PoliceOffices[0].ID)

	require.Len(t, payload.ActiveCheckpoints, 1)
	assert.Equal(t, onShift.ID, payload.ActiveCheckpoints[0].ID)
}
