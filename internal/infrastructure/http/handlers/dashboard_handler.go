package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/application/dashboard"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/infrastructure/http/middleware"
)

// DashboardHandler handles /dashboard/*. Requires auth middleware.
type DashboardHandler struct {
	stats        *dashboard.Stats
	projectStats *dashboard.ProjectStats
	now          func() time.Time
	log          zerolog.Logger
}

func NewDashboardHandler(stats *dashboard.Stats, projectStats *dashboard.ProjectStats, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		stats:        stats,
		projectStats: projectStats,
		now:          time.Now,
		log:          log,
	}
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	stats, err := h.stats.Execute(r.Context(), userID, h.now())
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}

// ProjectStats handles GET /dashboard/projects/{projectId}/stats.
func (h *DashboardHandler) ProjectStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	projectID, err := uuid.Parse(chi.URLParam(r, "projectId"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid project id")
		return
	}
	counts, err := h.projectStats.Execute(r.Context(), userID, domain.NewProjectID(projectID))
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, counts)
}
