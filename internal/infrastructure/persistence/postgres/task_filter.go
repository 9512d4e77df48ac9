package postgres

import (
	"fmt"
	"strings"

	"github.com/taskhive/taskhive/internal/application/ports"
)

const taskSelectColumns = `t.id, t.title, t.description, t.status, t.priority, t.due_date,
	t.project_id, t.owner_id, t.created_at, t.updated_at, p.title, u.name, u.email`

const taskFromJoins = `FROM tasks t
	LEFT JOIN projects p ON p.id = t.project_id
	JOIN users u ON u.id = t.owner_id`

// Soonest due date first, most urgent first within a day.
const taskOrderBy = `ORDER BY t.due_date ASC,
	CASE t.priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC`

// buildTaskListQuery renders a TaskFilter into a parameterized SELECT.
// The owner scope is always the first condition; optional criteria are ANDed on,
// and the search term matches title or description case-insensitively.
func buildTaskListQuery(filter ports.TaskFilter) (string, []any) {
	conds := []string{"t.owner_id = $1"}
	args := []any{filter.OwnerID.UUID}

	next := func() string { return fmt.Sprintf("$%d", len(args)+1) }

	if filter.Status != nil {
		conds = append(conds, "t.status = "+next())
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conds = append(conds, "t.priority = "+next())
		args = append(args, string(*filter.Priority))
	}
	if filter.ProjectID != nil {
		conds = append(conds, "t.project_id = "+next())
		args = append(args, filter.ProjectID.UUID)
	}
	if filter.DueAfter != nil {
		conds = append(conds, "t.due_date >= "+next())
		args = append(args, *filter.DueAfter)
	}
	if filter.DueBefore != nil {
		conds = append(conds, "t.due_date <= "+next())
		args = append(args, *filter.DueBefore)
	}
	if filter.Search != "" {
		p := next()
		conds = append(conds, "(t.title ILIKE "+p+" OR t.description ILIKE "+p+")")
		args = append(args, "%"+escapeLike(filter.Search)+"%")
	}

	query := "SELECT " + taskSelectColumns + "\n\t" + taskFromJoins +
		"\n\tWHERE " + strings.Join(conds, " AND ") + "\n\t" + taskOrderBy
	return query, args
}

// escapeLike neutralizes LIKE wildcards in user input so search terms match
// literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
