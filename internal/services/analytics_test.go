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

func seedReport(t *testing.T, mem *memory.Store, mutate func(*models.Report)) *models.Report {
	t.Helper()
	report := &models.Report{
		ID:        uuid.New(),
		Category:  models.CategoryOther,
		Status:    models.StatusPending,
		Latitude:  14.6,
		Longitude: 121.0,
		CreatedAt: time.Now(),
	}
	if mutate != nil {
		mutate(report)
	}
	require.NoError(t, mem.CreateReport(context.Background(), report))
	return report
}

func TestOverview(t *testing.T) {
	mem := memory.New()
	svc := NewAnalyticsService(mem, nil, time.Minute, testLogger())
	ctx := context.Background()

	created := time.Now().Add(-72 * time.Hour)
	resolved := created.Add(51*time.Hour + 45*time.Minute + 30*time.Second)
	seedReport(t, mem, func(r *models.Report) {
		r.Status = models.StatusResolved
		r.CreatedAt = created
		r.UpdatedAt = &resolved
	})
	seedReport(t, mem, nil)
	seedReport(t, mem, func(r *models.Report) { r.Status = models.StatusEnRoute })

	overview, err := svc.Overview(ctx, AnalyticsFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, overview.TotalReports)
	assert.Equal(t, 1, overview.ByStatus["Pending"])
	assert.Equal(t, 1, overview.ByStatus["En Route"])
	assert.Equal(t, 1, overview.ByStatus["Resolved"])
	assert.Equal(t, "2d 03:45:30", overview.AvgResolution)
}

func TestOverviewWithoutResolvedReports(t *testing.T) {
	mem := memory.New()
	svc := NewAnalyticsService(mem, nil, time.Minute, testLogger())

	seedReport(t, mem, nil)
	overview, err := svc.Overview(context.Background(), AnalyticsFilters{})
	require.NoError(t, err)
	assert.Equal(t, "N/A", overview.AvgResolution)
}

func TestTopLocations(t *testing.T) {
	mem := memory.New()
	svc := NewAnalyticsService(mem, nil, time.Minute, testLogger())

	locations := []struct {
		city, barangay string
		n              int
	}{
		{"Manila", "Ermita", 4},
		{"Manila", "Malate", 3},
		{"Quezon City", "Diliman", 2},
		{"Quezon City", "Cubao", 1},
		{"Pasig", "Kapitolyo", 1},
		{"Makati", "Poblacion", 1},
	}
	for _, loc := range locations {
		for i := 0; i < loc.n; i++ {
			loc := loc
			seedReport(t, mem, func(r *models.Report) {
				r.Status = models.StatusResolved
				r.LocationCity = loc.city
				r.LocationBarangay = loc.barangay
			})
		}
	}
	// Resolved but ungeocoded: counts toward the total, never ranks.
	seedReport(t, mem, func(r *models.Report) { r.Status = models.StatusResolved })
	// Pending reports are not hotspots at all.
	seedReport(t, mem, func(r *models.Report) {
		r.LocationCity = "Manila"
		r.LocationBarangay = "Ermita"
	})

	top, err := svc.TopLocations(context.Background(), AnalyticsFilters{})
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, "Ermita", top[0].Barangay)
	assert.Equal(t, 4, top[0].Count)
	// 4 of 13 resolved reports.
	assert.InDelta(t, 30.77, top[0].Percentage, 0.01)
	assert.Equal(t, "Malate", top[1].Barangay)
	assert.Equal(t, "Diliman", top[2].Barangay)
}

func TestCategoryConcentration(t *testing.T) {
	mem := memory.New()
	svc := NewAnalyticsService(mem, nil, time.Minute, testLogger())

	for i := 0; i < 3; i++ {
		seedReport(t, mem, func(r *models.Report) {
			r.Status = models.StatusResolved
			r.Category = models.CategoryCrime
		})
	}
	seedReport(t, mem, func(r *models.Report) {
		r.Status = models.StatusResolved
		r.Category = models.CategoryFire
	})
	// Open reports do not contribute.
	seedReport(t, mem, func(r *models.Report) { r.Category = models.CategoryMedical })

	shares, err := svc.CategoryConcentration(context.Background(), AnalyticsFilters{})
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, models.CategoryCrime, shares[0].Category)
	assert.Equal(t, 3, shares[0].Count)
	assert.InDelta(t, 75.0, shares[0].Percentage, 0.01)
	assert.Equal(t, models.CategoryFire, shares[1].Category)
	assert.InDelta(t, 25.0, shares[1].Percentage, 0.01)
}

func TestAnalyticsFilters(t *testing.T) {
	mem := memory.New()
	svc := NewAnalyticsService(mem, nil, time.Minute, testLogger())
	ctx := context.Background()

	officeID := uuid.New()
	seedReport(t, mem, func(r *models.Report) {
		r.AssignedOfficeID = &officeID
		r.LocationCity = "Manila"
		r.Category = models.CategoryCrime
	})
	seedReport(t, mem, func(r *models.Report) {
		r.LocationCity = "Pasig"
		r.CreatedAt = time.Now().AddDate(0, 0, -30)
	})

	overview, err := svc.Overview(ctx, AnalyticsFilters{OfficeID: &officeID})
	require.NoError(t, err)
	assert.Equal(t, 1, overview.TotalReports)

	overview, err = svc.Overview(ctx, AnalyticsFilters{City: "Pasig"})
	require.NoError(t, err)
	assert.Equal(t, 1, overview.TotalReports)

	overview, err = svc.Overview(ctx, AnalyticsFilters{Days: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, overview.TotalReports)

	overview, err = svc.Overview(ctx, AnalyticsFilters{Category: models.CategoryMedical})
	require.NoError(t, err)
	assert.Equal(t, 0, overview.TotalReports)

	_, err = svc.Overview(ctx, AnalyticsFilters{Category: "Typhoon"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Overview(ctx, AnalyticsFilters{Days: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAnalyticsFiltersIgnoreCase(t *testing.T) {
	mem := memory.New()
	svc := NewAnalyticsService(mem, nil, time.Minute, testLogger())
	ctx := context.Background()

	seedReport(t, mem, func(r *models.Report) {
		r.LocationCity = "Manila"
		r.LocationBarangay = "Ermita"
		r.Category = models.CategoryCrime
	})

	overview, err := svc.Overview(ctx, AnalyticsFilters{City: "manila"})
	require.NoError(t, err)
	assert.Equal(t, 1, overview.TotalReports)

	overview, err = svc.Overview(ctx, AnalyticsFilters{Barangay: "ERMITA"})
	require.NoError(t, err)
	assert.Equal(t, 1, overview.TotalReports)

	overview, err = svc.Overview(ctx, AnalyticsFilters{Category: "crime"})
	require.NoError(t, err)
	assert.Equal(t, 1, overview.TotalReports)

	_, err = svc.Overview(ctx, AnalyticsFilters{Category: "typhoon"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolvedCases(t *testing.T) {
	mem := memory.New()
	svc := NewAnalyticsService(mem, nil, time.Minute, testLogger())

	oldCreated := time.Now().Add(-96 * time.Hour)
	oldResolved := oldCreated.Add(50 * time.Hour)
	old := seedReport(t, mem, func(r *models.Report) {
		r.Status = models.StatusResolved
		r.CreatedAt = oldCreated
		r.UpdatedAt = &oldResolved
		r.LocationCity = "Manila"
		r.LocationBarangay = "Ermita"
		r.Remarks = "Suspect apprehended"
	})

	recentCreated := time.Now().Add(-2 * time.Hour)
	recentResolved := recentCreated.Add(5*time.Minute + 9*time.Second)
	recent := seedReport(t, mem, func(r *models.Report) {
		r.Status = models.StatusResolved
		r.CreatedAt = recentCreated
		r.UpdatedAt = &recentResolved
	})

	// Open reports stay out of the case file.
	seedReport(t, mem, nil)

	cases, err := svc.ResolvedCases(context.Background(), AnalyticsFilters{})
	require.NoError(t, err)
	require.Len(t, cases, 2)

	// Newest resolution first.
	assert.Equal(t, recent.ID, cases[0].ReportID)
	assert.Equal(t, "00:05:09", cases[0].ResolutionTime)
	assert.Equal(t, old.ID, cases[1].ReportID)
	assert.Equal(t, "2d 02:00:00", cases[1].ResolutionTime)
	assert.Equal(t, "Ermita", cases[1].LocationBarangay)
	assert.Equal(t, "Suspect apprehended", cases[1].Remarks)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00:00", formatDuration(0))
	assert.Equal(t, "00:05:09", formatDuration(5*time.Minute+9*time.Second))
	assert.Equal(t, "1d 00:00:00", formatDuration(24*time.Hour))
	assert.Equal(t, "2d 03:45:30", formatDuration(51*time.Hour+45*time.Minute+30*time.Second))
}
