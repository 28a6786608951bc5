package models

import "slices"

// Service is one bookable treatment of the salon catalog.
type Service struct {
	Key         string   `json:"key"`                   // e.g. "lash-lift"
	Name        string   `json:"name"`                  // display name, e.g. "Lash Lift"
	Specialists []string `json:"specialists,omitempty"` // qualified roster members
}

// Catalog is the fixed configuration consumed at startup: the service list,
// the service→specialist qualification table, the selectable time slots and
// the staff roster. It is never mutated after construction.
type Catalog struct {
	Services  []Service `json:"services"`
	TimeSlots []string  `json:"timeSlots"`
	Roster    []string  `json:"roster"`
}

// Service looks up a service by key.
func (c *Catalog) Service(key string) (Service, bool) {
	for _, s := range c.Services {
		if s.Key == key {
			return s, true
		}
	}
	return Service{}, false
}

// ServiceName returns the display name for key, falling back to the key
// itself when the service is unknown.
func (c *Catalog) ServiceName(key string) string {
	if s, ok := c.Service(key); ok {
		return s.Name
	}
	return key
}

// SpecialistsFor returns the qualified specialists for a service, or nil.
func (c *Catalog) SpecialistsFor(key string) []string {
	s, ok := c.Service(key)
	if !ok {
		return nil
	}
	return slices.Clone(s.Specialists)
}

// IsQualified reports whether specialist may perform the service.
func (c *Catalog) IsQualified(service, specialist string) bool {
	s, ok := c.Service(service)
	if !ok {
		return false
	}
	return slices.Contains(s.Specialists, specialist)
}

func (c *Catalog) IsTimeSlot(t string) bool {
	return slices.Contains(c.TimeSlots, t)
}

func (c *Catalog) OnRoster(name string) bool {
	return slices.Contains(c.Roster, name)
}
