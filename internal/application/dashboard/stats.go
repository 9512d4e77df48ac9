// Package dashboard aggregates task counts for the dashboard endpoints.
package dashboard

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// weekWindow returns the inclusive [now, now+7d] bounds used for dueThisWeek.
func weekWindow(now time.Time) (time.Time, time.Time) {
	return now, now.Add(7 * 24 * time.Hour)
}

// Stats computes the owner-wide dashboard counters in a single pass over the
// store. An owner with no tasks gets explicit zeros, never an absent payload.
type Stats struct {
	tasks ports.TaskRepository
}

func NewStats(tasks ports.TaskRepository) *Stats {
	return &Stats{tasks: tasks}
}

func (uc *Stats) Execute(ctx context.Context, requester domain.UserID, now time.Time) (*ports.DashboardStats, error) {
	from, to := weekWindow(now)
	stats, err := uc.tasks.DashboardStats(ctx, requester, from, to)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &ports.DashboardStats{}
	}
	return stats, nil
}
