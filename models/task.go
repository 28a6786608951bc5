package models

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label is the text the task list shows for the status.
func (s TaskStatus) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

type TaskKind string

const (
	KindAppointment TaskKind = "appointment"
	KindTask        TaskKind = "task"
)

func (k TaskKind) Valid() bool {
	return k == KindAppointment || k == KindTask
}

// BookingLink ties an appointment item to the slot it occupies.
type BookingLink struct {
	Service     string `bson:"service" json:"service"`
	Time        string `bson:"time" json:"time"`
	ClientName  string `bson:"clientName" json:"clientName"`
	ClientEmail string `bson:"clientEmail,omitempty" json:"clientEmail,omitempty"`
	ClientPhone string `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
}

// Task is a registry item: either a staff task or an appointment created by
// a confirmed booking.
type Task struct {
	ID         string       `bson:"id" json:"id"`
	Title      string       `bson:"title" json:"title"`
	AssignedTo string       `bson:"assignedTo" json:"assignedTo"`
	DueDate    string       `bson:"dueDate" json:"dueDate"` // "YYYY-MM-DD"
	Status     TaskStatus   `bson:"status" json:"status"`
	Kind       TaskKind     `bson:"type" json:"type"`
	Booking    *BookingLink `bson:"booking,omitempty" json:"booking,omitempty"`
	CreatedAt  time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// NewTask is the caller-supplied part of a registry item.
type NewTask struct {
	Title      string       `json:"title"`
	AssignedTo string       `json:"assignedTo"`
	DueDate    string       `json:"dueDate"`
	Kind       TaskKind     `json:"type"`
	Booking    *BookingLink `json:"booking,omitempty"`
}

// TaskView is a task as rendered in the task and schedule lists.
type TaskView struct {
	Task
	StatusLabel string `json:"statusLabel"`
}

func NewTaskView(t Task) TaskView {
	return TaskView{Task: t, StatusLabel: t.Status.Label()}
}
