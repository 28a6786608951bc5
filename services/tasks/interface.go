package tasks

import (
	"context"
	"iter"

	"go.uber.org/zap"

	taskRepo "jalusi/database/repository/tasks"
	"jalusi/models"
	"jalusi/utils"
)

// TaskService is the task/appointment registry.
type TaskService interface {
	// Append stores a new item with a fresh id and status todo.
	Append(ctx context.Context, task models.NewTask) (*models.Task, error)
	// AddTask is the manual "Add Task" action: kind task, due today.
	AddTask(ctx context.Context, title, assignee string) (*models.Task, error)
	SetStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error)
	// List returns a restartable view, in insertion order, of the items
	// matching every filter.
	List(ctx context.Context, filters ...Filter) (iter.Seq[models.Task], error)
	// TodaySchedule lists appointments due today.
	TodaySchedule(ctx context.Context) (iter.Seq[models.Task], error)
	// Seed loads sample items into an empty registry, keeping their status.
	Seed(ctx context.Context, items []models.Task) error
}

// DefaultTaskService implements TaskService.
type DefaultTaskService struct {
	Repo    taskRepo.TaskRepository
	IDs     utils.IDGenerator
	Now     utils.Clock
	Catalog *models.Catalog
	Logger  *zap.Logger
	// Strict enforces the forward-only transition table.
	Strict bool
}
