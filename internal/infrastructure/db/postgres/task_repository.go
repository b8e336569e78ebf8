package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/taskmate/taskmate-api/internal/core/domain"
)

var taskDescriptor = Descriptor{
	Table:       "tasks",
	IDColumn:    "taskid",
	OwnerColumn: "userid",
	Fields: map[string]string{
		"title":       "title",
		"description": "description",
		"duedate":     "duedate",
		"priority":    "priority",
		"status":      "status",
		"createdat":   "createdat",
		"updatedat":   "updatedat",
		"userid":      "userid",
		"categoryid":  "categoryid",
	},
}

type TaskRepository struct {
	*Repository[domain.Task]
	db Querier
}

func NewTaskRepository(db Querier) *TaskRepository {
	return &TaskRepository{
		Repository: NewRepository[domain.Task](db, taskDescriptor),
		db:         db,
	}
}

// FindDueBefore returns every not-yet-completed task due before the given
// instant, across all owners. Used by the reminder scheduler.
func (r *TaskRepository) FindDueBefore(ctx context.Context, deadline time.Time) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT * FROM tasks WHERE duedate <= $1 AND status <> $2`, deadline, domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("select due tasks: %w", err)
	}
	return collect[domain.Task](rows, "tasks")
}
