package handlers

import (
	"iter"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jalusi/models"
	"jalusi/services/tasks"
	"jalusi/utils"
)

type TaskHandler struct {
	Tasks  tasks.TaskService
	Logger *zap.Logger
}

func NewTaskHandler(svc tasks.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{Tasks: svc, Logger: logger}
}

// ListTasks handles GET /api/tasks?type=&status=&assignee=&due=.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var filters []tasks.Filter
	if v := c.Query("type"); v != "" {
		kind := models.TaskKind(v)
		if !kind.Valid() {
			utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid type", "type must be 'appointment' or 'task'")
			return
		}
		filters = append(filters, tasks.OfKind(kind))
	}
	if v := c.Query("status"); v != "" {
		status := models.TaskStatus(v)
		if !status.Valid() {
			utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid status", "status must be 'todo', 'in-progress' or 'completed'")
			return
		}
		filters = append(filters, tasks.WithStatus(status))
	}
	if v := c.Query("assignee"); v != "" {
		filters = append(filters, tasks.AssignedTo(v))
	}
	if v := c.Query("due"); v != "" {
		filters = append(filters, tasks.DueOn(v))
	}

	seq, err := h.Tasks.List(c.Request.Context(), filters...)
	if err != nil {
		utils.RespondError(c, h.Logger, "failed to list tasks", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": views(seq)})
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var body struct {
		Title      string `json:"title"`
		AssignedTo string `json:"assignedTo"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	task, err := h.Tasks.AddTask(c.Request.Context(), body.Title, body.AssignedTo)
	if err != nil {
		utils.RespondError(c, h.Logger, "failed to create task", err)
		return
	}
	c.JSON(http.StatusCreated, models.NewTaskView(*task))
}

// UpdateTaskStatus handles PATCH /api/tasks/:id/status.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var body struct {
		Status models.TaskStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	task, err := h.Tasks.SetStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		utils.RespondError(c, h.Logger, "failed to update task status", err)
		return
	}
	c.JSON(http.StatusOK, models.NewTaskView(*task))
}

// TodaySchedule handles GET /api/schedule/today.
func (h *TaskHandler) TodaySchedule(c *gin.Context) {
	seq, err := h.Tasks.TodaySchedule(c.Request.Context())
	if err != nil {
		utils.RespondError(c, h.Logger, "failed to load schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": views(seq)})
}

func views(seq iter.Seq[models.Task]) []models.TaskView {
	out := []models.TaskView{}
	for t := range seq {
		out = append(out, models.NewTaskView(t))
	}
	return out
}
