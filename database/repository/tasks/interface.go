// File: database/repository/tasks/interface.go
package taskRepo

import (
	"context"
	"time"

	"jalusi/models"
)

// TaskRepository stores registry items in insertion order.
type TaskRepository interface {
	Insert(ctx context.Context, task models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	// UpdateStatus sets the status of id. When expected is non-empty the
	// write only happens if the stored status still equals expected;
	// otherwise utils.ErrIllegalTransition is returned. Unknown ids return
	// utils.ErrNotFound.
	UpdateStatus(ctx context.Context, id string, expected, next models.TaskStatus, at time.Time) (*models.Task, error)
	// List returns a snapshot of every item, oldest first.
	List(ctx context.Context) ([]models.Task, error)
	Count(ctx context.Context) (int64, error)
}
