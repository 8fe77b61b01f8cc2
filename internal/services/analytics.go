package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/store"
)

// AnalyticsFilters narrows the report population an aggregate is computed
// over. Zero values mean "no filter".
type AnalyticsFilters struct {
	Days     int
	OfficeID *uuid.UUID
	City     string
	Barangay string
	Category models.ReportCategory
}

// Overview is the headline aggregate: report counts by status plus the
// average time from submission to resolution.
type Overview struct {
	TotalReports  int            `json:"total_reports"`
	ByStatus      map[string]int `json:"by_status"`
	AvgResolution string         `json:"avg_resolution"`
}

// LocationCount is one hotspot row.
type LocationCount struct {
	City       string  `json:"city"`
	Barangay   string  `json:"barangay"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryShare is one category's slice of the filtered population.
type CategoryShare struct {
	Category   models.ReportCategory `json:"category"`
	Count      int                   `json:"count"`
	Percentage float64               `json:"percentage"`
}

// ResolvedCase is one row of the resolved-cases listing: a closed report
// with the time it took to resolve.
type ResolvedCase struct {
	ReportID         uuid.UUID             `json:"report_id"`
	Category         models.ReportCategory `json:"category"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	LocationCity     string                `json:"location_city,omitempty"`
	LocationBarangay string                `json:"location_barangay,omitempty"`
	Remarks          string                `json:"remarks,omitempty"`
	ResolutionTime   string                `json:"resolution_time"`
}

// AnalyticsService computes aggregates over reports. Results are cached in
// redis when a client is configured; a nil client disables caching.
type AnalyticsService struct {
	reports  store.ReportStore
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
}

// NewAnalyticsService creates a new analytics service. cache may be nil.
func NewAnalyticsService(reports store.ReportStore, cache *redis.Client, cacheTTL time.Duration, logger *zap.SugaredLogger) *AnalyticsService {
	return &AnalyticsService{reports: reports, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Overview returns total counts, per-status counts and the formatted
// average resolution time for the filtered population.
func (s *AnalyticsService) Overview(ctx context.Context, f AnalyticsFilters) (*Overview, error) {
	var out Overview
	if s.cached(ctx, cacheKey("overview", f), &out) {
		return &out, nil
	}

	reports, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}

	out.TotalReports = len(reports)
	out.ByStatus = make(map[string]int)
	var resolvedTotal time.Duration
	var resolvedCount int
	for _, r := range reports {
		out.ByStatus[string(r.Status)]++
		if r.Status == models.StatusResolved && r.UpdatedAt != nil {
			resolvedTotal += r.UpdatedAt.Sub(r.CreatedAt)
			resolvedCount++
		}
	}
	if resolvedCount == 0 {
		out.AvgResolution = "N/A"
	} else {
		out.AvgResolution = formatDuration(resolvedTotal / time.Duration(resolvedCount))
	}

	s.put(ctx, cacheKey("overview", f), &out)
	return &out, nil
}

// TopLocations returns up to five (city, barangay) pairs ranked by resolved
// report count, each with its share of the resolved population. Only resolved
// reports count: a hotspot is a place where incidents were confirmed, not
// merely reported.
func (s *AnalyticsService) TopLocations(ctx context.Context, f AnalyticsFilters) ([]LocationCount, error) {
	var out []LocationCount
	if s.cached(ctx, cacheKey("locations", f), &out) {
		return out, nil
	}

	reports, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	reports = resolvedOnly(reports)

	type locKey struct{ city, barangay string }
	counts := make(map[locKey]int)
	for _, r := range reports {
		if r.LocationCity == "" && r.LocationBarangay == "" {
			continue
		}
		counts[locKey{r.LocationCity, r.LocationBarangay}]++
	}

	out = make([]LocationCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, LocationCount{City: k.city, Barangay: k.barangay, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		return out[i].Barangay < out[j].Barangay
	})
	if len(out) > 5 {
		out = out[:5]
	}
	if total := len(reports); total > 0 {
		for i := range out {
			out[i].Percentage = round2(float64(out[i].Count) * 100 / float64(total))
		}
	}

	s.put(ctx, cacheKey("locations", f), out)
	return out, nil
}

// CategoryConcentration returns per-category counts and shares over resolved
// reports, largest first, capped at five.
func (s *AnalyticsService) CategoryConcentration(ctx context.Context, f AnalyticsFilters) ([]CategoryShare, error) {
	var out []CategoryShare
	if s.cached(ctx, cacheKey("categories", f), &out) {
		return out, nil
	}

	reports, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	reports = resolvedOnly(reports)

	counts := make(map[models.ReportCategory]int)
	for _, r := range reports {
		counts[r.Category]++
	}
	out = make([]CategoryShare, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryShare{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > 5 {
		out = out[:5]
	}
	if total := len(reports); total > 0 {
		for i := range out {
			out[i].Percentage = round2(float64(out[i].Count) * 100 / float64(total))
		}
	}

	s.put(ctx, cacheKey("categories", f), out)
	return out, nil
}

// ResolvedCases lists the filtered resolved reports newest first, each with
// its formatted resolution time. Uncached: the listing feeds a case-file
// table, not a dashboard tile.
func (s *AnalyticsService) ResolvedCases(ctx context.Context, f AnalyticsFilters) ([]ResolvedCase, error) {
	reports, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	reports = resolvedOnly(reports)

	out := make([]ResolvedCase, 0, len(reports))
	for _, r := range reports {
		if r.UpdatedAt == nil {
			continue
		}
		out = append(out, ResolvedCase{
			ReportID:         r.ID,
			Category:         r.Category,
			CreatedAt:        r.CreatedAt,
			UpdatedAt:        *r.UpdatedAt,
			LocationCity:     r.LocationCity,
			LocationBarangay: r.LocationBarangay,
			Remarks:          r.Remarks,
			ResolutionTime:   formatDuration(r.UpdatedAt.Sub(r.CreatedAt)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (s *AnalyticsService) filtered(ctx context.Context, f AnalyticsFilters) ([]models.Report, error) {
	if f.Category != "" {
		c, ok := matchCategory(f.Category)
		if !ok {
			return nil, invalidf("unknown category %q", f.Category)
		}
		f.Category = c
	}
	if f.Days < 0 {
		return nil, invalidf("days must not be negative")
	}

	reports, err := s.reports.ListReports(ctx)
	if err != nil {
		return nil, err
	}

	var cutoff time.Time
	if f.Days > 0 {
		cutoff = time.Now().AddDate(0, 0, -f.Days)
	}

	out := reports[:0]
	for _, r := range reports {
		if !cutoff.IsZero() && r.CreatedAt.Before(cutoff) {
			continue
		}
		if f.OfficeID != nil && (r.AssignedOfficeID == nil || *r.AssignedOfficeID != *f.OfficeID) {
			continue
		}
		if f.City != "" && !strings.EqualFold(r.LocationCity, f.City) {
			continue
		}
		if f.Barangay != "" && !strings.EqualFold(r.LocationBarangay, f.Barangay) {
			continue
		}
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// cached loads a previously computed aggregate into dst. A cache miss,
// a nil client or a decode failure all report false.
func (s *AnalyticsService) cached(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warnw("Analytics cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warnw("Analytics cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (s *AnalyticsService) put(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warnw("Analytics cache write failed", "key", key, "error", err)
	}
}

func resolvedOnly(reports []models.Report) []models.Report {
	out := reports[:0]
	for _, r := range reports {
		if r.Status == models.StatusResolved {
			out = append(out, r)
		}
	}
	return out
}

func cacheKey(kind string, f AnalyticsFilters) string {
	office := ""
	if f.OfficeID != nil {
		office = f.OfficeID.String()
	}
	return fmt.Sprintf("analytics:%s:%d:%s:%s:%s:%s", kind, f.Days, office, f.City, f.Barangay, f.Category)
}

// matchCategory resolves a filter value to its canonical category,
// ignoring case. Filters are user input; stored categories are canonical.
func matchCategory(c models.ReportCategory) (models.ReportCategory, bool) {
	for _, known := range []models.ReportCategory{
		models.CategoryAccident, models.CategoryCrime, models.CategoryFire,
		models.CategoryMedical, models.CategoryOther,
	} {
		if strings.EqualFold(string(c), string(known)) {
			return known, true
		}
	}
	return "", false
}

// formatDuration renders a duration as "2d 03:45:30", dropping the day
// segment when the duration is under a day.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	d -= time.Duration(days) * 24 * time.Hour
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if days == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%dd %02d:%02d:%02d", days, h, m, sec)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
