package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/objectstore"
	"github.com/crash-ph/crash-server/internal/store/memory"
)

func TestAttachMedia(t *testing.T) {
	mem := memory.New()
	objects := objectstore.NewMemory()
	reportSvc := NewReportService(mem, mem, mem, nil, testLogger())
	svc := NewMediaService(mem, mem, objects, testLogger())
	ctx := context.Background()

	report, err := reportSvc.Submit(ctx, submitReq(14.6, 121.0))
	require.NoError(t, err)

	item, err := svc.Attach(ctx, report.ID, uuid.New(), models.MediaImage,
		"crash.JPG", "image/jpeg", []byte("fake-jpeg"))
	require.NoError(t, err)

	assert.Equal(t, report.ID, item.ReportID)
	assert.Equal(t, models.MediaImage, item.FileType)
	// Keys carry the report prefix and the lowercased extension.
	assert.True(t, strings.Contains(item.FileURL, "reports/"+report.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(item.FileURL, ".jpg"))
	assert.Equal(t, 1, objects.Len())

	items, err := svc.ListByReport(ctx, report.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestAttachValidation(t *testing.T) {
	mem := memory.New()
	objects := objectstore.NewMemory()
	reportSvc := NewReportService(mem, mem, mem, nil, testLogger())
	svc := NewMediaService(mem, mem, objects, testLogger())
	ctx := context.Background()

	report, err := reportSvc.Submit(ctx, submitReq(14.6, 121.0))
	require.NoError(t, err)

	_, err = svc.Attach(ctx, report.ID, uuid.New(), "audio", "a.mp3", "audio/mpeg", []byte("x"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Attach(ctx, report.ID, uuid.Nil, models.MediaImage, "a.jpg", "image/jpeg", []byte("x"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Attach(ctx, report.ID, uuid.New(), models.MediaImage, "a.jpg", "image/jpeg", nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Attach(ctx, uuid.New(), uuid.New(), models.MediaImage, "a.jpg", "image/jpeg", []byte("x"))
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 0, objects.Len())
}

func TestAttachUploadFailurePersistsNothing(t *testing.T) {
	mem := memory.New()
	objects := objectstore.NewMemory()
	objects.Err = errors.New("bucket unreachable")
	reportSvc := NewReportService(mem, mem, mem, nil, testLogger())
	svc := NewMediaService(mem, mem, objects, testLogger())
	ctx := context.Background()

	report, err := reportSvc.Submit(ctx, submitReq(14.6, 121.0))
	require.NoError(t, err)

	_, err = svc.Attach(ctx, report.ID, uuid.New(), models.MediaVideo,
		"clip.mp4", "video/mp4", []byte("fake-mp4"))
	assert.ErrorIs(t, err, ErrUpstream)

	items, err := svc.ListByReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeletingReportRemovesItsMedia(t *testing.T) {
	mem := memory.New()
	objects := objectstore.NewMemory()
	reportSvc := NewReportService(mem, mem, mem, nil, testLogger())
	svc := NewMediaService(mem, mem, objects, testLogger())
	ctx := context.Background()

	report, err := reportSvc.Submit(ctx, submitReq(14.6, 121.0))
	require.NoError(t, err)
	_, err = svc.Attach(ctx, report.ID, uuid.New(), models.MediaImage,
		"scene.png", "image/png", []byte("fake-png"))
	require.NoError(t, err)

	require.NoError(t, reportSvc.Delete(ctx, report.ID))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
