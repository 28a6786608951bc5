package tasks

import "jalusi/models"

// CanTransition is the forward-only status table used in strict mode.
func CanTransition(from, to models.TaskStatus) bool {
	switch from {
	case models.StatusTodo:
		return to == models.StatusInProgress || to == models.StatusCompleted
	case models.StatusInProgress:
		return to == models.StatusCompleted
	default:
		return false
	}
}

// NextActions lists what the task list offers for an item in status: Start
// and Complete for todo, Complete for in-progress, nothing once completed.
func NextActions(status models.TaskStatus) []models.TaskStatus {
	switch status {
	case models.StatusTodo:
		return []models.TaskStatus{models.StatusCompleted, models.StatusInProgress}
	case models.StatusInProgress:
		return []models.TaskStatus{models.StatusCompleted}
	default:
		return nil
	}
}
