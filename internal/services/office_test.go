package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/store/memory"
)

func officeReq(createdBy uuid.UUID) *models.CreateOfficeRequest {
	lat, lng := 14.60, 120.98
	return &models.CreateOfficeRequest{
		OfficeName: "Station 4",
		Email:      "station4@police.gov.ph",
		Password:   "patrol",
		Latitude:   &lat,
		Longitude:  &lng,
		CreatedBy:  createdBy,
	}
}

func TestCreateOffice(t *testing.T) {
	mem := memory.New()
	admin := seedAdmin(t, mem, "admin@crash.ph", "s3cret")
	svc := NewOfficeService(mem, mem, testLogger())
	ctx := context.Background()

	office, err := svc.Create(ctx, officeReq(admin.ID))
	require.NoError(t, err)
	require.NotNil(t, office.CreatedBy)
	assert.Equal(t, admin.ID, *office.CreatedBy)
	// Stored hashed, never the plaintext.
	assert.NotEqual(t, "patrol", office.PasswordHash)
	assert.NotEmpty(t, office.PasswordHash)

	// Duplicate email.
	_, err = svc.Create(ctx, officeReq(admin.ID))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateOfficeRequiresExistingAdmin(t *testing.T) {
	mem := memory.New()
	svc := NewOfficeService(mem, mem, testLogger())

	_, err := svc.Create(context.Background(), officeReq(uuid.New()))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOfficeValidation(t *testing.T) {
	mem := memory.New()
	admin := seedAdmin(t, mem, "admin@crash.ph", "s3cret")
	svc := NewOfficeService(mem, mem, testLogger())
	ctx := context.Background()

	req := officeReq(admin.ID)
	req.OfficeName = ""
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	req = officeReq(admin.ID)
	req.Longitude = nil
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	req = officeReq(admin.ID)
	req.CreatedBy = uuid.Nil
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateOfficeMergesFields(t *testing.T) {
	mem := memory.New()
	admin := seedAdmin(t, mem, "admin@crash.ph", "s3cret")
	svc := NewOfficeService(mem, mem, testLogger())
	ctx := context.Background()

	office, err := svc.Create(ctx, officeReq(admin.ID))
	require.NoError(t, err)

	head := "Cpt. Reyes"
	lat := 14.55
	updated, err := svc.Update(ctx, office.ID, &models.UpdateOfficeRequest{
		HeadOfficer: &head,
		Latitude:    &lat,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cpt. Reyes", updated.HeadOfficer)
	assert.Equal(t, 14.55, updated.Latitude)
	assert.Equal(t, office.OfficeName, updated.OfficeName)
	assert.Equal(t, office.Longitude, updated.Longitude)

	_, err = svc.Update(ctx, uuid.New(), &models.UpdateOfficeRequest{HeadOfficer: &head})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOfficeUnassignsReports(t *testing.T) {
	mem := memory.New()
	admin := seedAdmin(t, mem, "admin@crash.ph", "s3cret")
	svc := NewOfficeService(mem, mem, testLogger())
	reportSvc := NewReportService(mem, mem, mem, nil, testLogger())
	ctx := context.Background()

	office, err := svc.Create(ctx, officeReq(admin.ID))
	require.NoError(t, err)

	report, err := reportSvc.Submit(ctx, submitReq(14.6, 121.0))
	require.NoError(t, err)
	require.NotNil(t, report.AssignedOfficeID)

	require.NoError(t, svc.Delete(ctx, office.ID))

	got, err := reportSvc.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssignedOfficeID)
}

func TestDeletingAdminKeepsOffices(t *testing.T) {
	mem := memory.New()
	admin := seedAdmin(t, mem, "admin@crash.ph", "s3cret")
	svc := NewOfficeService(mem, mem, testLogger())
	ctx := context.Background()

	office, err := svc.Create(ctx, officeReq(admin.ID))
	require.NoError(t, err)

	require.NoError(t, mem.DeleteAdmin(ctx, admin.ID))

	got, err := svc.Get(ctx, office.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CreatedBy)
}

func TestRegisterCitizen(t *testing.T) {
	mem := memory.New()
	svc := NewCitizenService(mem, testLogger())
	ctx := context.Background()

	req := &models.RegisterCitizenRequest{
		Email:     "juan@example.com",
		Phone:     "09171234567",
		Password:  "hunter2",
		FirstName: "Juan",
		LastName:  "dela Cruz",
		Birthdate: "1994-06-12",
		City:      "Manila",
	}
	citizen, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1994, 6, 12, 0, 0, 0, 0, time.UTC), citizen.Birthdate)
	assert.NotEqual(t, "hunter2", citizen.PasswordHash)

	// Duplicate email.
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	bad := *req
	bad.Email = "maria@example.com"
	bad.Phone = "09179999999"
	bad.Birthdate = "12-06-1994"
	_, err = svc.Register(ctx, &bad)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteCitizenKeepsReports(t *testing.T) {
	mem := memory.New()
	svc := NewCitizenService(mem, testLogger())
	reportSvc := NewReportService(mem, mem, mem, nil, testLogger())
	ctx := context.Background()

	citizen, err := svc.Register(ctx, &models.RegisterCitizenRequest{
		Email: "juan@example.com", Password: "hunter2",
		FirstName: "Juan", LastName: "dela Cruz", Birthdate: "1994-06-12",
	})
	require.NoError(t, err)

	req := submitReq(14.6, 121.0)
	req.Reporter = &citizen.ID
	report, err := reportSvc.Submit(ctx, req)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, citizen.ID))

	got, err := reportSvc.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ReporterID)
}
