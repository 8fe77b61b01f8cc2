package handlers

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var startTime = time.Now()

// healthStatus is the health probe response body.
type healthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime,omitempty"`
	Database string `json:"database,omitempty"`
}

// HealthHandler provides health check endpoints
type HealthHandler struct {
	db      *pgxpool.Pool
	version string
	logger  *zap.SugaredLogger
}

// NewHealthHandler creates a new health handler. db may be nil when the
// server runs on the in-memory store.
func NewHealthHandler(db *pgxpool.Pool, version string, logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{db: db, version: version, logger: logger}
}

// Check handles GET /api/v1/health (liveness probe)
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthStatus{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(startTime).String(),
	})
}

// Ready handles GET /api/v1/health/ready (readiness probe)
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, healthStatus{
				Status:   "not ready",
				Version:  h.version,
				Database: "disconnected",
			})
			return
		}
	} else {
		dbStatus = "in-memory"
	}

	respondJSON(w, http.StatusOK, healthStatus{
		Status:   "ready",
		Version:  h.version,
		Uptime:   time.Since(startTime).String(),
		Database: dbStatus,
	})
}
