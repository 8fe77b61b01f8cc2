// Package memory is an in-memory implementation of the store interfaces.
// It mirrors the relational rules the postgres schema enforces (cascade
// deletes, SET NULL references, updated_at maintenance) so service tests can
// exercise them without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crash-ph/crash-server/internal/models"
	"github.com/crash-ph/crash-server/internal/store"
)

// Store holds every table in maps guarded by one mutex.
type Store struct {
	mu          sync.RWMutex
	admins      map[uuid.UUID]models.Admin
	citizens    map[uuid.UUID]models.Citizen
	offices     map[uuid.UUID]models.PoliceOffice
	reports     map[uuid.UUID]models.Report
	messages    map[uuid.UUID]models.Message
	checkpoints map[uuid.UUID]models.Checkpoint
	media       map[uuid.UUID]models.MediaItem
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		admins:      make(map[uuid.UUID]models.Admin),
		citizens:    make(map[uuid.UUID]models.Citizen),
		offices:     make(map[uuid.UUID]models.PoliceOffice),
		reports:     make(map[uuid.UUID]models.Report),
		messages:    make(map[uuid.UUID]models.Message),
		checkpoints: make(map[uuid.UUID]models.Checkpoint),
		media:       make(map[uuid.UUID]models.MediaItem),
	}
}

// --- admins ---

func (s *Store) CreateAdmin(_ context.Context, a *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.admins {
		if existing.Email == a.Email || existing.Username == a.Username {
			return store.ErrDuplicate
		}
	}
	s.admins[a.ID] = *a
	return nil
}

func (s *Store) GetAdmin(_ context.Context, id uuid.UUID) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

func (s *Store) GetAdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.admins {
		if a.Email == email {
			a := a
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteAdmin(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.admins, id)
	// SET NULL on offices created by this admin
	for oid, o := range s.offices {
		if o.CreatedBy != nil && *o.CreatedBy == id {
			o.CreatedBy = nil
			s.offices[oid] = o
		}
	}
	return nil
}

// --- citizens ---

func (s *Store) CreateCitizen(_ context.Context, c *models.Citizen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.citizens {
		if existing.Email == c.Email || (c.Phone != "" && existing.Phone == c.Phone) {
			return store.ErrDuplicate
		}
	}
	s.citizens[c.ID] = *c
	return nil
}

func (s *Store) GetCitizen(_ context.Context, id uuid.UUID) (*models.Citizen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.citizens[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (s *Store) GetCitizenByEmail(_ context.Context, email string) (*models.Citizen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.citizens {
		if c.Email == email {
			c := c
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteCitizen(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.citizens[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.citizens, id)
	// SET NULL on reports submitted by this citizen
	for rid, r := range s.reports {
		if r.ReporterID != nil && *r.ReporterID == id {
			r.ReporterID = nil
			s.reports[rid] = r
		}
	}
	return nil
}

// --- police offices ---

func (s *Store) CreateOffice(_ context.Context, o *models.PoliceOffice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.offices {
		if existing.Email == o.Email {
			return store.ErrDuplicate
		}
	}
	s.offices[o.ID] = *o
	return nil
}

func (s *Store) GetOffice(_ context.Context, id uuid.UUID) (*models.PoliceOffice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.offices[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &o, nil
}

func (s *Store) GetOfficeByEmail(_ context.Context, email string) (*models.PoliceOffice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.offices {
		if o.Email == email {
			o := o
			return &o, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListOffices(_ context.Context) ([]models.PoliceOffice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PoliceOffice, 0, len(s.offices))
	for _, o := range s.offices {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateOffice(_ context.Context, o *models.PoliceOffice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offices[o.ID]; !ok {
		return store.ErrNotFound
	}
	s.offices[o.ID] = *o
	return nil
}

func (s *Store) DeleteOffice(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offices[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.offices, id)
	// CASCADE to checkpoints owned by this office
	for cid, c := range s.checkpoints {
		if c.OfficeID == id {
			delete(s.checkpoints, cid)
		}
	}
	// SET NULL on reports assigned to this office
	for rid, r := range s.reports {
		if r.AssignedOfficeID != nil && *r.AssignedOfficeID == id {
			r.AssignedOfficeID = nil
			s.reports[rid] = r
		}
	}
	return nil
}

// --- reports ---

func (s *Store) CreateReport(_ context.Context, r *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = *r
	return nil
}

func (s *Store) GetReport(_ context.Context, id uuid.UUID) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &r, nil
}

func (s *Store) ListActiveReports(_ context.Context) ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if r.Status.Active() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) ListReports(_ context.Context) ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateReportStatus(_ context.Context, id uuid.UUID, status models.ReportStatus, remarks string) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	now := time.Now()
	r.Status = status
	r.Remarks = remarks
	r.UpdatedAt = &now
	s.reports[id] = r
	return &r, nil
}

func (s *Store) DeleteReport(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.reports, id)
	// CASCADE to messages and media scoped to this report
	for mid, m := range s.messages {
		if m.ReportID == id {
			delete(s.messages, mid)
		}
	}
	for mid, m := range s.media {
		if m.ReportID == id {
			delete(s.media, mid)
		}
	}
	return nil
}

// --- messages ---

func (s *Store) CreateMessage(_ context.Context, m *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[m.ReportID]; !ok {
		return store.ErrNotFound
	}
	s.messages[m.ID] = *m
	return nil
}

func (s *Store) ListMessages(_ context.Context, reportID uuid.UUID) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, 0)
	for _, m := range s.messages {
		if m.ReportID == reportID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

// --- checkpoints ---

func (s *Store) CreateCheckpoint(_ context.Context, c *models.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offices[c.OfficeID]; !ok {
		return store.ErrNotFound
	}
	s.checkpoints[c.ID] = *c
	return nil
}

func (s *Store) GetCheckpoint(_ context.Context, id uuid.UUID) (*models.Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.checkpoints[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (s *Store) ListCheckpoints(_ context.Context) ([]models.Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Checkpoint, 0, len(s.checkpoints))
	for _, c := range s.checkpoints {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateCheckpoint(_ context.Context, c *models.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checkpoints[c.ID]; !ok {
		return store.ErrNotFound
	}
	s.checkpoints[c.ID] = *c
	return nil
}

func (s *Store) DeleteCheckpoint(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checkpoints[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.checkpoints, id)
	return nil
}

// --- media ---

func (s *Store) CreateMedia(_ context.Context, m *models.MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[m.ReportID]; !ok {
		return store.ErrNotFound
	}
	s.media[m.ID] = *m
	return nil
}

func (s *Store) ListMedia(_ context.Context) ([]models.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MediaItem, 0, len(s.media))
	for _, m := range s.media {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

func (s *Store) ListMediaByReport(_ context.Context, reportID uuid.UUID) ([]models.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MediaItem, 0)
	for _, m := range s.media {
		if m.ReportID == reportID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.Before(out[j].UploadedAt) })
	return out, nil
}
