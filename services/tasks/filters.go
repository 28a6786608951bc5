package tasks

import "jalusi/models"

// Filter selects registry items.
type Filter func(models.Task) bool

func OfKind(kind models.TaskKind) Filter {
	return func(t models.Task) bool { return t.Kind == kind }
}

func WithStatus(status models.TaskStatus) Filter {
	return func(t models.Task) bool { return t.Status == status }
}

func AssignedTo(name string) Filter {
	return func(t models.Task) bool { return t.AssignedTo == name }
}

func DueOn(date string) Filter {
	return func(t models.Task) bool { return t.DueDate == date }
}

// All matches items accepted by every filter; with no filters it matches
// everything.
func All(filters ...Filter) Filter {
	return func(t models.Task) bool {
		for _, f := range filters {
			if f != nil && !f(t) {
				return false
			}
		}
		return true
	}
}
