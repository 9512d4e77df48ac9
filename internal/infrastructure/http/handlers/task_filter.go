package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
)

// parseTaskFilter reads the optional listing criteria from query parameters.
// The owner scope is filled in by the use case from the authenticated identity.
func parseTaskFilter(r *http.Request) (ports.TaskFilter, error) {
	q := r.URL.Query()
	var filter ports.TaskFilter

	if v := q.Get("status"); v != "" {
		status, err := domain.ParseStatus(v)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if v := q.Get("priority"); v != "" {
		priority, err := domain.ParsePriority(v)
		if err != nil {
			return filter, err
		}
		filter.Priority = &priority
	}
	if v := q.Get("project"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, fmt.Errorf("invalid project id %q", v)
		}
		projectID := domain.NewProjectID(id)
		filter.ProjectID = &projectID
	}
	if v := q.Get("dueBefore"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return filter, fmt.Errorf("invalid dueBefore date %q", v)
		}
		filter.DueBefore = &t
	}
	if v := q.Get("dueAfter"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return filter, fmt.Errorf("invalid dueAfter date %q", v)
		}
		filter.DueAfter = &t
	}
	filter.Search = q.Get("search")
	return filter, nil
}
