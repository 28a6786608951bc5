package tasks

import (
	"context"
	"errors"
	"iter"
	"strings"

	"go.uber.org/zap"

	"jalusi/metrics"
	"jalusi/models"
	"jalusi/utils"
)

func (s *DefaultTaskService) Append(ctx context.Context, in models.NewTask) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, utils.NewValidationError("Please enter a task title.")
	}
	kind := in.Kind
	if kind == "" {
		kind = models.KindTask
	}
	if !kind.Valid() {
		return nil, utils.NewValidationError("unknown task type %q", in.Kind)
	}

	now := s.Now()
	task := models.Task{
		ID:         s.IDs.NewID(),
		Title:      title,
		AssignedTo: in.AssignedTo,
		DueDate:    in.DueDate,
		Status:     models.StatusTodo,
		Kind:       kind,
		Booking:    in.Booking,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Insert(ctx, task); err != nil {
		return nil, err
	}
	metrics.TasksCreated.WithLabelValues(string(kind)).Inc()
	s.Logger.Debug("Task appended",
		zap.String("taskID", task.ID),
		zap.String("type", string(kind)),
		zap.String("assignedTo", task.AssignedTo))
	return &task, nil
}

func (s *DefaultTaskService) AddTask(ctx context.Context, title, assignee string) (*models.Task, error) {
	if assignee == "" && s.Catalog != nil && len(s.Catalog.Roster) > 0 {
		assignee = s.Catalog.Roster[0]
	}
	return s.Append(ctx, models.NewTask{
		Title:      title,
		AssignedTo: assignee,
		DueDate:    utils.FormatDate(s.Now()),
		Kind:       models.KindTask,
	})
}

func (s *DefaultTaskService) SetStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, utils.NewValidationError("unknown status %q", status)
	}

	var expected models.TaskStatus
	if s.Strict {
		current, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			s.logMissing(err, id)
			return nil, err
		}
		if !CanTransition(current.Status, status) {
			return nil, utils.NewIllegalTransitionError(string(current.Status), string(status))
		}
		expected = current.Status
	}

	task, err := s.Repo.UpdateStatus(ctx, id, expected, status, s.Now())
	if err != nil {
		s.logMissing(err, id)
		return nil, err
	}
	metrics.TaskStatusChanges.WithLabelValues(string(status)).Inc()
	return task, nil
}

// logMissing reports status updates against unknown ids: callers only ever
// hold ids the registry handed out, so this is a bug upstream.
func (s *DefaultTaskService) logMissing(err error, id string) {
	if errors.Is(err, utils.ErrNotFound) {
		s.Logger.Error("Status update for unknown task", zap.String("taskID", id))
	}
}

func (s *DefaultTaskService) List(ctx context.Context, filters ...Filter) (iter.Seq[models.Task], error) {
	snapshot, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	match := All(filters...)
	return func(yield func(models.Task) bool) {
		for _, t := range snapshot {
			if !match(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}, nil
}

func (s *DefaultTaskService) TodaySchedule(ctx context.Context) (iter.Seq[models.Task], error) {
	return s.List(ctx, OfKind(models.KindAppointment), DueOn(utils.FormatDate(s.Now())))
}

func (s *DefaultTaskService) Seed(ctx context.Context, items []models.Task) error {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.Logger.Info("Task registry already populated, skipping seed", zap.Int64("count", n))
		return nil
	}
	now := s.Now()
	for _, item := range items {
		item.ID = s.IDs.NewID()
		if item.Status == "" {
			item.Status = models.StatusTodo
		}
		item.CreatedAt, item.UpdatedAt = now, now
		if err := s.Repo.Insert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
