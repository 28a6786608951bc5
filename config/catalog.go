package config

import "jalusi/models"

// DefaultCatalog is the salon's service menu, qualification table, hourly
// time slots and staff roster.
func DefaultCatalog() *models.Catalog {
	return &models.Catalog{
		Services: []models.Service{
			{Key: "microblading", Name: "Microblading", Specialists: []string{"Anna Smith", "Jessica Brown"}},
			{Key: "lash-lift", Name: "Lash Lift", Specialists: []string{"Maria Garcia", "Sarah Wilson"}},
			{Key: "brow-lamination", Name: "Brow Lamination", Specialists: []string{"Anna Smith", "Maria Garcia"}},
			{Key: "facial", Name: "Signature Facial", Specialists: []string{"Emily Davis", "Sarah Wilson"}},
			{Key: "waxing", Name: "Full Body Waxing", Specialists: []string{"Emily Davis", "Jessica Brown"}},
		},
		TimeSlots: []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		Roster:    []string{"Anna Smith", "Maria Garcia", "Emily Davis", "Sarah Wilson", "Jessica Brown"},
	}
}

// SampleData is what a fresh install starts with.
type SampleData struct {
	BookedSlots map[string][]string
	Tasks       []models.Task
}

func DefaultSampleData() SampleData {
	return SampleData{
		BookedSlots: map[string][]string{
			"2024-02-15": {"09:00", "11:00", "14:00"},
			"2024-02-16": {"10:00", "13:00", "15:00"},
			"2024-02-20": {"09:00", "11:30", "16:00"},
		},
		Tasks: []models.Task{
			{Title: "Client Consultation - Lisa", AssignedTo: "Anna Smith", DueDate: "2024-02-15", Status: models.StatusInProgress, Kind: models.KindAppointment},
			{Title: "Inventory Restock", AssignedTo: "Maria Garcia", DueDate: "2024-02-16", Status: models.StatusTodo, Kind: models.KindTask},
			{Title: "Microblading - Sarah", AssignedTo: "Anna Smith", DueDate: "2024-02-15", Status: models.StatusCompleted, Kind: models.KindAppointment},
			{Title: "Social Media Content", AssignedTo: "Emily Davis", DueDate: "2024-02-18", Status: models.StatusInProgress, Kind: models.KindTask},
		},
	}
}
